package parser

import (
	"strconv"
	"strings"

	"github.com/gracepriest/BasicLangvb-sub002/internal/ast"
)

// Expression parsing is classic precedence climbing, one method per level,
// lowest first: Or, And, equality, relational, additive (including string
// concatenation and shifts), multiplicative (including integer divide and
// Mod), unary, postfix, primary.

func (p *Parser) parseExpression() ast.Expr {
	return p.parseOr()
}

func (p *Parser) parseOr() ast.Expr {
	left := p.parseAnd()
	for p.check(OR) {
		op := p.advance()
		right := p.parseAnd()
		left = p.makeBinary(left, op, right)
	}
	return left
}

func (p *Parser) parseAnd() ast.Expr {
	left := p.parseEquality()
	for p.check(AND) {
		op := p.advance()
		right := p.parseEquality()
		left = p.makeBinary(left, op, right)
	}
	return left
}

func (p *Parser) parseEquality() ast.Expr {
	left := p.parseRelational()
	for p.checkAny(EQUAL, NOT_EQUAL) {
		op := p.advance()
		right := p.parseRelational()
		left = p.makeBinary(left, op, right)
	}
	return left
}

func (p *Parser) parseRelational() ast.Expr {
	left := p.parseAdditive()
	for p.checkAny(LESS, LESS_EQUAL, GREATER, GREATER_EQUAL) {
		op := p.advance()
		right := p.parseAdditive()
		left = p.makeBinary(left, op, right)
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.checkAny(PLUS, MINUS, AMPERSAND, LEFT_SHIFT, RIGHT_SHIFT) {
		op := p.advance()
		right := p.parseMultiplicative()
		left = p.makeBinary(left, op, right)
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for p.checkAny(STAR, SLASH, BACKSLASH, MOD) {
		op := p.advance()
		right := p.parseUnary()
		left = p.makeBinary(left, op, right)
	}
	return left
}

func (p *Parser) makeBinary(left ast.Expr, op Token, right ast.Expr) ast.Expr {
	return &ast.BinaryExpr{
		Pos:    left.NodePos(),
		EndPos: right.NodeEndPos(),
		Op:     op.Lexeme,
		Left:   left,
		Right:  right,
	}
}

func (p *Parser) parseUnary() ast.Expr {
	if p.checkAny(MINUS, PLUS, NOT) {
		op := p.advance()
		value := p.parseUnary()
		return &ast.UnaryExpr{
			Pos:    p.makePos(op),
			EndPos: value.NodeEndPos(),
			Op:     op.Lexeme,
			Value:  value,
		}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()

	for {
		switch p.peek().Type {
		case DOT:
			p.advance()
			member := p.consume(IDENTIFIER, "expected member name after '.'")
			expr = &ast.MemberExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(member),
				Target: expr,
				Member: member.Lexeme,
			}
		case LEFT_PAREN:
			p.advance()
			var args []ast.Expr
			if !p.check(RIGHT_PAREN) {
				args = append(args, p.parseExpression())
				for p.match(COMMA) {
					args = append(args, p.parseExpression())
				}
			}
			end := p.consume(RIGHT_PAREN, "expected ')' to close argument list")
			expr = &ast.CallExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(end),
				Callee: expr,
				Args:   args,
			}
		case INCREMENT, DECREMENT:
			op := p.advance()
			expr = &ast.IncDecExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(op),
				Target: expr,
				Op:     op.Lexeme,
			}
		case CARET:
			op := p.advance()
			expr = &ast.DerefExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(op),
				Target: expr,
			}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	switch p.peek().Type {
	case INTEGER_LITERAL, LONG_LITERAL, SINGLE_LITERAL, DOUBLE_LITERAL:
		return p.parseNumberLiteral()
	case STRING_LITERAL:
		tok := p.advance()
		return &ast.LiteralExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Kind:   ast.StringLit,
			Text:   tok.Lexeme,
			Str:    tok.Lexeme,
		}
	case TRUE, FALSE:
		tok := p.advance()
		return &ast.LiteralExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Kind:   ast.BooleanLit,
			Text:   tok.Lexeme,
			Bool:   tok.Type == TRUE,
		}
	case INTERP_STRING:
		return p.parseInterpolatedString()
	case IDENTIFIER:
		tok := p.advance()
		return &ast.IdentExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   tok.Lexeme,
		}
	case LEFT_PAREN:
		start := p.advance()
		value := p.parseExpression()
		end := p.consume(RIGHT_PAREN, "expected ')' to close expression")
		return &ast.ParenExpr{
			Pos:    p.makePos(start),
			EndPos: p.makeEndPos(end),
			Value:  value,
		}
	case LEFT_BRACE:
		return p.parseArrayLiteral()
	case NEW:
		return p.parseNewExpr()
	case CTYPE:
		return p.parseCastExpr()
	default:
		p.fail("expected expression")
		return nil // unreachable
	}
}

func (p *Parser) parseNumberLiteral() ast.Expr {
	tok := p.advance()
	lit := &ast.LiteralExpr{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Text:   tok.Lexeme,
	}

	text := tok.Lexeme
	if len(text) > 0 {
		switch text[len(text)-1] {
		case 'L', 'l', 'F', 'f':
			text = text[:len(text)-1]
		}
	}

	switch tok.Type {
	case INTEGER_LITERAL:
		lit.Kind = ast.IntegerLit
		lit.Int = p.parseIntText(tok, text)
	case LONG_LITERAL:
		lit.Kind = ast.LongLit
		lit.Int = p.parseIntText(tok, text)
	case SINGLE_LITERAL:
		lit.Kind = ast.SingleLit
		lit.Float = p.parseFloatText(tok, text)
	case DOUBLE_LITERAL:
		lit.Kind = ast.DoubleLit
		lit.Float = p.parseFloatText(tok, text)
	}
	return lit
}

func (p *Parser) parseIntText(tok Token, text string) int64 {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		p.failAt(tok, "integer literal "+quoted(tok.Lexeme)+" out of range")
	}
	return v
}

func (p *Parser) parseFloatText(tok Token, text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.failAt(tok, "number literal "+quoted(tok.Lexeme)+" out of range")
	}
	return v
}

func (p *Parser) parseArrayLiteral() ast.Expr {
	start := p.consume(LEFT_BRACE, "expected '{'")
	lit := &ast.ArrayLiteralExpr{Pos: p.makePos(start)}
	if !p.check(RIGHT_BRACE) {
		lit.Elements = append(lit.Elements, p.parseExpression())
		for p.match(COMMA) {
			lit.Elements = append(lit.Elements, p.parseExpression())
		}
	}
	end := p.consume(RIGHT_BRACE, "expected '}' to close array initializer")
	lit.EndPos = p.makeEndPos(end)
	return lit
}

func (p *Parser) parseNewExpr() ast.Expr {
	start := p.consume(NEW, "expected 'New'")
	typ := p.parseTypeRef()

	expr := &ast.NewExpr{
		Pos:    p.makePos(start),
		EndPos: typ.EndPos,
		Type:   typ,
	}
	if p.match(LEFT_PAREN) {
		if !p.check(RIGHT_PAREN) {
			expr.Args = append(expr.Args, p.parseExpression())
			for p.match(COMMA) {
				expr.Args = append(expr.Args, p.parseExpression())
			}
		}
		end := p.consume(RIGHT_PAREN, "expected ')' to close constructor arguments")
		expr.EndPos = p.makeEndPos(end)
	}
	return expr
}

func (p *Parser) parseCastExpr() ast.Expr {
	start := p.consume(CTYPE, "expected 'CType'")
	p.consume(LEFT_PAREN, "expected '(' after 'CType'")
	value := p.parseExpression()
	p.consume(COMMA, "expected ',' between value and target type in CType")
	typ := p.parseTypeRef()
	end := p.consume(RIGHT_PAREN, "expected ')' to close CType")
	return &ast.CastExpr{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Value:  value,
		Type:   typ,
	}
}

// parseInterpolatedString splits a $"..." token into literal text and
// embedded expression spans. The scanner captured the spans verbatim; each
// is lexed and parsed here, with positions shifted back into file
// coordinates.
func (p *Parser) parseInterpolatedString() ast.Expr {
	tok := p.advance()
	expr := &ast.InterpolatedStringExpr{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
	}

	raw := tok.Lexeme
	// Strip the $" prefix and closing quote.
	body := raw[2 : len(raw)-1]

	var text strings.Builder
	flushText := func() {
		if text.Len() > 0 {
			expr.Parts = append(expr.Parts, ast.InterpPart{Text: text.String()})
			text.Reset()
		}
	}

	i := 0
	for i < len(body) {
		c := body[i]
		switch c {
		case '{':
			spanStart := i + 1
			depth := 1
			i++
			for i < len(body) && depth > 0 {
				switch body[i] {
				case '{':
					depth++
				case '}':
					depth--
				case '"':
					i++
					for i < len(body) && body[i] != '"' {
						if body[i] == '\\' {
							i++
						}
						i++
					}
				}
				i++
			}
			if depth > 0 {
				p.fail("unclosed '{' in interpolated string")
			}
			flushText()
			span := body[spanStart : i-1]
			base := tok.Position
			base.Offset += 2 + spanStart
			base.Column += 2 + spanStart
			expr.Parts = append(expr.Parts, ast.InterpPart{
				Expr: p.parseEmbeddedExpr(span, base),
			})
		case '\\':
			if i+1 < len(body) {
				text.WriteByte(decodeEscape(body[i+1]))
				i += 2
			} else {
				i++
			}
		default:
			text.WriteByte(c)
			i++
		}
	}
	flushText()
	return expr
}

// parseEmbeddedExpr lexes and parses one interpolation span. The span sits
// on a single line, so rebasing positions is a pure offset shift.
func (p *Parser) parseEmbeddedExpr(span string, base Position) ast.Expr {
	scanner := NewScanner(span)
	tokens := scanner.ScanTokens()
	if len(scanner.Errors()) > 0 {
		p.err = &ParseError{
			Message:  scanner.Errors()[0].Message,
			Position: base,
		}
		panic(bailout{})
	}

	for i := range tokens {
		tokens[i].Position.Line = base.Line
		tokens[i].Position.Column += base.Column - 1
		tokens[i].Position.Offset += base.Offset
	}

	sub := NewParser(p.filename, tokens)
	expr := sub.parseGuarded()
	if sub.err != nil {
		p.err = sub.err
		panic(bailout{})
	}
	return expr
}

// parseGuarded parses a complete expression, requiring the whole span to be
// consumed, and converts the internal unwind into the error field.
func (p *Parser) parseGuarded() (expr ast.Expr) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			expr = nil
		}
	}()
	expr = p.parseExpression()
	if !p.isAtEnd() {
		p.fail("unexpected trailing input in interpolated expression")
	}
	return expr
}
