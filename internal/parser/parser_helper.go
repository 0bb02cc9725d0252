package parser

import "github.com/gracepriest/BasicLangvb-sub002/internal/ast"

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	return p.peek().Type == tt
}

func (p *Parser) checkAny(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			return true
		}
	}
	return false
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(tt TokenType, message string) Token {
	if p.check(tt) {
		return p.advance()
	}
	p.fail(message)
	return Token{} // unreachable
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) peekNext() Token {
	if p.current+1 < len(p.tokens) {
		return p.tokens[p.current+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

// fail records the first syntax error and unwinds out of the parse.
func (p *Parser) fail(message string) {
	if p.err == nil {
		tok := p.peek()
		got := tok.Lexeme
		if tok.Type == EOF {
			got = "end of input"
		} else if tok.Type == NEWLINE {
			got = "end of line"
		}
		p.err = &ParseError{
			Message:  message + ", found " + quoted(got),
			Position: tok.Position,
		}
	}
	panic(bailout{})
}

// failAt is fail for a token already consumed; the error points at that
// token instead of the lookahead.
func (p *Parser) failAt(tok Token, message string) {
	if p.err == nil {
		p.err = &ParseError{
			Message:  message,
			Position: tok.Position,
		}
	}
	panic(bailout{})
}

func quoted(s string) string {
	if s == "end of input" || s == "end of line" {
		return s
	}
	return "'" + s + "'"
}

// skipNewlines consumes any run of newline separators.
func (p *Parser) skipNewlines() {
	for p.check(NEWLINE) {
		p.advance()
	}
}

// expectSeparator requires the construct just parsed to be followed by a
// line break or the end of input.
func (p *Parser) expectSeparator() {
	if p.isAtEnd() || p.check(NEWLINE) {
		return
	}
	p.fail("expected end of line")
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset + len(tok.Lexeme),
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + len(tok.Lexeme),
	}
}

func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

func (p *Parser) consumeIdent(message string) ast.Ident {
	tok := p.consume(IDENTIFIER, message)
	return p.makeIdent(tok)
}
