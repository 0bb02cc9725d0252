package parser

import "github.com/gracepriest/BasicLangvb-sub002/internal/ast"

// parseBlock parses statements until one of the terminator tokens is next.
// The terminator itself is left for the caller, which knows what message
// to report when it is missing.
func (p *Parser) parseBlock(terminators ...TokenType) *ast.BlockStmt {
	block := &ast.BlockStmt{Pos: p.makePos(p.peek())}
	p.skipNewlines()
	for !p.checkAny(terminators...) && !p.isAtEnd() {
		block.Items = append(block.Items, p.parseStatement())
		if !p.checkAny(terminators...) {
			p.expectSeparator()
		}
		p.skipNewlines()
	}
	block.EndPos = p.makePos(p.peek())
	return block
}

func (p *Parser) parseStatement() ast.Stmt {
	switch p.peek().Type {
	case DIM:
		return p.parseDimDecl(ast.AccessDefault)
	case CONST:
		return p.parseConstDecl(ast.AccessDefault)
	case IF:
		return p.parseIfStmt()
	case SELECT:
		return p.parseSelectStmt()
	case FOR:
		return p.parseForStmt()
	case WHILE:
		return p.parseWhileStmt()
	case DO:
		return p.parseDoStmt()
	case TRY:
		return p.parseTryStmt()
	case RETURN:
		return p.parseReturnStmt()
	case EXIT:
		return p.parseExitStmt()
	default:
		return p.parseSimpleStatement()
	}
}

// parseIfStmt handles both forms. A newline right after Then commits to the
// multi-line block form; anything else commits to a single embedded
// statement.
func (p *Parser) parseIfStmt() *ast.IfStmt {
	start := p.consume(IF, "expected 'If'")
	cond := p.parseExpression()
	p.consume(THEN, "expected 'Then' after If condition")

	stmt := &ast.IfStmt{
		Pos:  p.makePos(start),
		Cond: cond,
	}

	if !p.check(NEWLINE) {
		stmt.SingleLine = true
		thenStmt := p.parseStatement()
		stmt.Then = &ast.BlockStmt{
			Pos:    thenStmt.NodePos(),
			EndPos: thenStmt.NodeEndPos(),
			Items:  []ast.Stmt{thenStmt},
		}
		stmt.EndPos = thenStmt.NodeEndPos()
		if p.match(ELSE) {
			elseStmt := p.parseStatement()
			stmt.Else = &ast.BlockStmt{
				Pos:    elseStmt.NodePos(),
				EndPos: elseStmt.NodeEndPos(),
				Items:  []ast.Stmt{elseStmt},
			}
			stmt.EndPos = elseStmt.NodeEndPos()
		}
		return stmt
	}

	stmt.Then = p.parseBlock(ELSEIF, ELSE, END_IF)

	for p.check(ELSEIF) {
		elseifTok := p.advance()
		clause := &ast.ElseIfClause{Pos: p.makePos(elseifTok)}
		clause.Cond = p.parseExpression()
		p.consume(THEN, "expected 'Then' after ElseIf condition")
		p.expectSeparator()
		clause.Body = p.parseBlock(ELSEIF, ELSE, END_IF)
		clause.EndPos = clause.Body.EndPos
		stmt.ElseIfs = append(stmt.ElseIfs, clause)
	}

	if p.match(ELSE) {
		p.expectSeparator()
		stmt.Else = p.parseBlock(END_IF)
	}

	end := p.consume(END_IF, "expected 'End If'")
	stmt.EndPos = p.makeEndPos(end)
	return stmt
}

func (p *Parser) parseSelectStmt() *ast.SelectStmt {
	start := p.consume(SELECT, "expected 'Select'")
	p.consume(CASE, "expected 'Case' after 'Select'")

	stmt := &ast.SelectStmt{Pos: p.makePos(start)}
	stmt.Value = p.parseExpression()
	p.expectSeparator()
	p.skipNewlines()

	for p.check(CASE) {
		caseTok := p.advance()
		if p.match(ELSE) {
			p.expectSeparator()
			stmt.Else = p.parseBlock(CASE, END_SELECT)
			if p.check(CASE) {
				p.fail("'Case Else' must be the last arm of Select Case")
			}
			break
		}

		clause := &ast.CaseClause{Pos: p.makePos(caseTok)}
		clause.Values = append(clause.Values, p.parseExpression())
		for p.match(COMMA) {
			clause.Values = append(clause.Values, p.parseExpression())
		}
		p.expectSeparator()
		clause.Body = p.parseBlock(CASE, END_SELECT)
		clause.EndPos = clause.Body.EndPos
		stmt.Cases = append(stmt.Cases, clause)
	}

	end := p.consume(END_SELECT, "expected 'End Select'")
	stmt.EndPos = p.makeEndPos(end)
	return stmt
}

func (p *Parser) parseForStmt() ast.Stmt {
	start := p.consume(FOR, "expected 'For'")

	if p.match(EACH) {
		loopVar := p.consumeIdent("expected loop variable after 'For Each'")
		p.consume(IN, "expected 'In' after loop variable")
		collection := p.parseExpression()
		p.expectSeparator()
		body := p.parseBlock(NEXT)
		end := p.consume(NEXT, "expected 'Next' to close For Each")
		return &ast.ForEachStmt{
			Pos:        p.makePos(start),
			EndPos:     p.makeEndPos(end),
			Var:        loopVar,
			Collection: collection,
			Body:       body,
		}
	}

	loopVar := p.consumeIdent("expected loop variable after 'For'")
	p.consume(EQUAL, "expected '=' after loop variable")
	from := p.parseExpression()
	p.consume(TO, "expected 'To' in For statement")
	to := p.parseExpression()

	stmt := &ast.ForStmt{
		Pos:  p.makePos(start),
		Var:  loopVar,
		From: from,
		To:   to,
	}
	if p.match(STEP) {
		stmt.Step = p.parseExpression()
	}
	p.expectSeparator()
	stmt.Body = p.parseBlock(NEXT)
	end := p.consume(NEXT, "expected 'Next' to close For")
	stmt.EndPos = p.makeEndPos(end)
	return stmt
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	start := p.consume(WHILE, "expected 'While'")
	cond := p.parseExpression()
	p.expectSeparator()
	body := p.parseBlock(END_WHILE)
	end := p.consume(END_WHILE, "expected 'End While'")
	return &ast.WhileStmt{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Cond:   cond,
		Body:   body,
	}
}

// parseDoStmt accepts the four Do/Loop spellings: the test may sit on the
// Do line (pre-tested) or the Loop line (post-tested), with While or Until
// sense.
func (p *Parser) parseDoStmt() *ast.DoStmt {
	start := p.consume(DO, "expected 'Do'")
	stmt := &ast.DoStmt{Pos: p.makePos(start)}

	preTested := true
	if p.match(WHILE) {
		stmt.Cond = p.parseExpression()
	} else if p.match(UNTIL) {
		stmt.Until = true
		stmt.Cond = p.parseExpression()
	} else {
		preTested = false
	}

	p.expectSeparator()
	stmt.Body = p.parseBlock(LOOP)
	end := p.consume(LOOP, "expected 'Loop'")
	stmt.EndPos = p.makeEndPos(end)

	if !preTested {
		stmt.PostTest = true
		if p.match(UNTIL) {
			stmt.Until = true
		} else if !p.match(WHILE) {
			p.fail("expected 'While' or 'Until' after 'Loop'")
		}
		stmt.Cond = p.parseExpression()
		stmt.EndPos = stmt.Cond.NodeEndPos()
	}
	return stmt
}

func (p *Parser) parseTryStmt() *ast.TryStmt {
	start := p.consume(TRY, "expected 'Try'")
	p.expectSeparator()

	stmt := &ast.TryStmt{Pos: p.makePos(start)}
	stmt.Body = p.parseBlock(CATCH, FINALLY, END_TRY)

	for p.check(CATCH) {
		catchTok := p.advance()
		clause := &ast.CatchClause{Pos: p.makePos(catchTok)}
		if p.check(IDENTIFIER) {
			catchVar := p.consumeIdent("expected exception variable")
			clause.Var = &catchVar
			if p.match(AS) {
				clause.Type = p.parseTypeRef()
			}
		}
		p.expectSeparator()
		clause.Body = p.parseBlock(CATCH, FINALLY, END_TRY)
		clause.EndPos = clause.Body.EndPos
		stmt.Catches = append(stmt.Catches, clause)
	}

	if p.match(FINALLY) {
		p.expectSeparator()
		stmt.Finally = p.parseBlock(END_TRY)
	}

	end := p.consume(END_TRY, "expected 'End Try'")
	stmt.EndPos = p.makeEndPos(end)
	return stmt
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	start := p.consume(RETURN, "expected 'Return'")
	stmt := &ast.ReturnStmt{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(start),
	}
	if !p.checkAny(NEWLINE, ELSE, EOF) {
		stmt.Value = p.parseExpression()
		stmt.EndPos = stmt.Value.NodeEndPos()
	}
	return stmt
}

func (p *Parser) parseExitStmt() *ast.ExitStmt {
	start := p.consume(EXIT, "expected 'Exit'")
	stmt := &ast.ExitStmt{Pos: p.makePos(start)}

	switch {
	case p.match(FOR):
		stmt.Kind = ast.ExitFor
	case p.match(WHILE):
		stmt.Kind = ast.ExitWhile
	case p.match(DO):
		stmt.Kind = ast.ExitDo
	case p.match(SELECT):
		stmt.Kind = ast.ExitSelect
	case p.match(SUB):
		stmt.Kind = ast.ExitSub
	case p.match(FUNCTION):
		stmt.Kind = ast.ExitFunction
	default:
		p.fail("expected 'For', 'While', 'Do', 'Select', 'Sub', or 'Function' after 'Exit'")
	}
	stmt.EndPos = p.makeEndPos(p.previous())
	return stmt
}

// parseSimpleStatement parses a full expression first, then decides whether
// it is an assignment by peeking for an assignment operator. Targets are
// validated structurally rather than grammatically: anything addressable
// qualifies.
func (p *Parser) parseSimpleStatement() ast.Stmt {
	expr := p.parseExpression()

	var op ast.AssignOp
	switch p.peek().Type {
	case EQUAL:
		op = ast.Assign
	case PLUS_EQUAL:
		op = ast.PlusAssign
	case MINUS_EQUAL:
		op = ast.MinusAssign
	case STAR_EQUAL:
		op = ast.StarAssign
	case SLASH_EQUAL:
		op = ast.SlashAssign
	default:
		return &ast.ExprStmt{
			Pos:    expr.NodePos(),
			EndPos: expr.NodeEndPos(),
			Expr:   expr,
		}
	}

	if !isAssignable(expr) {
		p.fail("left side of assignment is not assignable")
	}
	p.advance()
	value := p.parseExpression()
	return &ast.AssignStmt{
		Pos:    expr.NodePos(),
		EndPos: value.NodeEndPos(),
		Target: expr,
		Op:     op,
		Value:  value,
	}
}

// isAssignable reports whether an expression can appear on the left of an
// assignment. Calls qualify because array element stores share call syntax;
// the analyzer rejects assignments to actual routine invocations.
func isAssignable(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.IdentExpr, *ast.MemberExpr, *ast.DerefExpr, *ast.CallExpr:
		return true
	default:
		return false
	}
}
