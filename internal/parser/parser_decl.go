package parser

import "github.com/gracepriest/BasicLangvb-sub002/internal/ast"

func (p *Parser) parseAccess() ast.AccessModifier {
	if p.match(PUBLIC) {
		return ast.AccessPublic
	}
	if p.match(PRIVATE) {
		return ast.AccessPrivate
	}
	return ast.AccessDefault
}

func (p *Parser) parseDecl() ast.Decl {
	access := p.parseAccess()

	switch p.peek().Type {
	case NAMESPACE:
		if access != ast.AccessDefault {
			p.fail("access modifiers are not valid on Namespace")
		}
		return p.parseNamespaceDecl()
	case MODULE:
		if access != ast.AccessDefault {
			p.fail("access modifiers are not valid on Module")
		}
		return p.parseModuleDecl()
	case CLASS:
		return p.parseClassDecl(access)
	case STRUCTURE:
		return p.parseStructureDecl(access)
	case INTERFACE:
		return p.parseInterfaceDecl(access)
	case ENUM:
		return p.parseEnumDecl(access)
	case DELEGATE:
		return p.parseDelegateDecl(access)
	case SUB, FUNCTION:
		return p.parseFunctionDecl(access, true)
	case DIM:
		return p.parseDimDecl(access)
	case CONST:
		return p.parseConstDecl(access)
	case IDENTIFIER:
		// "Private balance As Double": a field spelled with the access
		// modifier standing in for Dim.
		if access != ast.AccessDefault {
			return p.parseFieldDecl(access)
		}
		p.fail("expected declaration")
		return nil // unreachable
	default:
		p.fail("expected declaration")
		return nil // unreachable
	}
}

// parseDeclBlock parses declarations up to (not through) the terminator.
func (p *Parser) parseDeclBlock(terminator TokenType) []ast.Decl {
	var decls []ast.Decl
	p.skipNewlines()
	for !p.check(terminator) && !p.isAtEnd() {
		decls = append(decls, p.parseDecl())
		p.expectSeparator()
		p.skipNewlines()
	}
	return decls
}

func (p *Parser) parseNamespaceDecl() *ast.NamespaceDecl {
	start := p.consume(NAMESPACE, "expected 'Namespace'")
	name := p.consumeIdent("expected namespace name")
	p.expectSeparator()

	decls := p.parseDeclBlock(END_NAMESPACE)
	end := p.consume(END_NAMESPACE, "expected 'End Namespace'")

	return &ast.NamespaceDecl{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Name:   name,
		Decls:  decls,
	}
}

func (p *Parser) parseModuleDecl() *ast.ModuleDecl {
	start := p.consume(MODULE, "expected 'Module'")
	name := p.consumeIdent("expected module name")
	p.expectSeparator()

	decls := p.parseDeclBlock(END_MODULE)
	end := p.consume(END_MODULE, "expected 'End Module'")

	return &ast.ModuleDecl{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Name:   name,
		Decls:  decls,
	}
}

func (p *Parser) parseClassDecl(access ast.AccessModifier) *ast.ClassDecl {
	start := p.consume(CLASS, "expected 'Class'")
	name := p.consumeIdent("expected class name")
	p.expectSeparator()
	p.skipNewlines()

	decl := &ast.ClassDecl{
		Pos:    p.makePos(start),
		Access: access,
		Name:   name,
	}

	if p.match(INHERITS) {
		decl.Inherits = p.parseTypeRef()
		p.expectSeparator()
		p.skipNewlines()
	}
	for p.match(IMPLEMENTS) {
		decl.Implements = append(decl.Implements, p.parseTypeRef())
		for p.match(COMMA) {
			decl.Implements = append(decl.Implements, p.parseTypeRef())
		}
		p.expectSeparator()
		p.skipNewlines()
	}

	decl.Members = p.parseDeclBlock(END_CLASS)
	end := p.consume(END_CLASS, "expected 'End Class'")
	decl.EndPos = p.makeEndPos(end)
	return decl
}

func (p *Parser) parseStructureDecl(access ast.AccessModifier) *ast.StructureDecl {
	start := p.consume(STRUCTURE, "expected 'Structure'")
	name := p.consumeIdent("expected structure name")
	p.expectSeparator()

	members := p.parseDeclBlock(END_STRUCTURE)
	end := p.consume(END_STRUCTURE, "expected 'End Structure'")

	return &ast.StructureDecl{
		Pos:     p.makePos(start),
		EndPos:  p.makeEndPos(end),
		Access:  access,
		Name:    name,
		Members: members,
	}
}

func (p *Parser) parseInterfaceDecl(access ast.AccessModifier) *ast.InterfaceDecl {
	start := p.consume(INTERFACE, "expected 'Interface'")
	name := p.consumeIdent("expected interface name")
	p.expectSeparator()
	p.skipNewlines()

	var members []ast.Decl
	for !p.check(END_INTERFACE) && !p.isAtEnd() {
		memberAccess := p.parseAccess()
		if !p.checkAny(SUB, FUNCTION) {
			p.fail("expected 'Sub' or 'Function' member signature")
		}
		members = append(members, p.parseFunctionDecl(memberAccess, false))
		p.expectSeparator()
		p.skipNewlines()
	}
	end := p.consume(END_INTERFACE, "expected 'End Interface'")

	return &ast.InterfaceDecl{
		Pos:     p.makePos(start),
		EndPos:  p.makeEndPos(end),
		Access:  access,
		Name:    name,
		Members: members,
	}
}

func (p *Parser) parseEnumDecl(access ast.AccessModifier) *ast.EnumDecl {
	start := p.consume(ENUM, "expected 'Enum'")
	name := p.consumeIdent("expected enum name")
	p.expectSeparator()
	p.skipNewlines()

	decl := &ast.EnumDecl{
		Pos:    p.makePos(start),
		Access: access,
		Name:   name,
	}
	for !p.check(END_ENUM) && !p.isAtEnd() {
		memberName := p.consumeIdent("expected enum member name")
		member := &ast.EnumMember{
			Pos:    memberName.Pos,
			EndPos: memberName.EndPos,
			Name:   memberName,
		}
		if p.match(EQUAL) {
			member.Value = p.parseExpression()
			member.EndPos = member.Value.NodeEndPos()
		}
		decl.Members = append(decl.Members, member)
		p.expectSeparator()
		p.skipNewlines()
	}
	end := p.consume(END_ENUM, "expected 'End Enum'")
	decl.EndPos = p.makeEndPos(end)
	return decl
}

func (p *Parser) parseDelegateDecl(access ast.AccessModifier) *ast.DelegateDecl {
	start := p.consume(DELEGATE, "expected 'Delegate'")

	isSub := false
	if p.match(SUB) {
		isSub = true
	} else {
		p.consume(FUNCTION, "expected 'Sub' or 'Function' after 'Delegate'")
	}

	name := p.consumeIdent("expected delegate name")
	params := p.parseParams()

	decl := &ast.DelegateDecl{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(p.previous()),
		Access: access,
		IsSub:  isSub,
		Name:   name,
		Params: params,
	}
	if p.match(AS) {
		if isSub {
			p.fail("a Sub delegate cannot declare a return type")
		}
		decl.Return = p.parseTypeRef()
		decl.EndPos = decl.Return.EndPos
	}
	return decl
}

// parseFunctionDecl parses a Sub or Function. Interface members pass
// withBody=false and stop after the signature.
func (p *Parser) parseFunctionDecl(access ast.AccessModifier, withBody bool) *ast.FunctionDecl {
	isSub := p.check(SUB)
	var start Token
	if isSub {
		start = p.consume(SUB, "expected 'Sub'")
	} else {
		start = p.consume(FUNCTION, "expected 'Function'")
	}

	name := p.consumeIdent("expected routine name")
	params := p.parseParams()

	decl := &ast.FunctionDecl{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(p.previous()),
		Access: access,
		IsSub:  isSub,
		Name:   name,
		Params: params,
	}

	if p.match(AS) {
		if isSub {
			p.fail("a Sub cannot declare a return type")
		}
		decl.Return = p.parseTypeRef()
		decl.EndPos = decl.Return.EndPos
	} else if !isSub {
		p.fail("expected 'As' and a return type for Function")
	}

	if !withBody {
		return decl
	}

	p.expectSeparator()
	terminator := END_FUNCTION
	message := "expected 'End Function'"
	if isSub {
		terminator = END_SUB
		message = "expected 'End Sub'"
	}
	decl.Body = p.parseBlock(terminator)
	end := p.consume(terminator, message)
	decl.EndPos = p.makeEndPos(end)
	return decl
}

func (p *Parser) parseParams() []*ast.Param {
	p.consume(LEFT_PAREN, "expected '(' to begin parameter list")
	var params []*ast.Param
	if !p.check(RIGHT_PAREN) {
		for {
			name := p.consumeIdent("expected parameter name")
			p.consume(AS, "expected 'As' after parameter name")
			typ := p.parseTypeRef()
			params = append(params, &ast.Param{
				Pos:    name.Pos,
				EndPos: typ.EndPos,
				Name:   name,
				Type:   typ,
			})
			if !p.match(COMMA) {
				break
			}
		}
	}
	p.consume(RIGHT_PAREN, "expected ')' to close parameter list")
	return params
}

func (p *Parser) parseDimDecl(access ast.AccessModifier) *ast.DimDecl {
	start := p.consume(DIM, "expected 'Dim'")
	name := p.consumeIdent("expected variable name")

	decl := &ast.DimDecl{
		Pos:    p.makePos(start),
		EndPos: name.EndPos,
		Access: access,
		Name:   name,
	}
	if p.match(AS) {
		decl.Type = p.parseTypeRef()
		decl.EndPos = decl.Type.EndPos
	}
	if p.match(EQUAL) {
		decl.Init = p.parseExpression()
		decl.EndPos = decl.Init.NodeEndPos()
	}
	if decl.Type == nil && decl.Init == nil {
		p.fail("expected 'As' or '=' in variable declaration")
	}
	return decl
}

// parseFieldDecl parses an access-modified member variable with no Dim
// keyword. The shape after the name matches parseDimDecl exactly.
func (p *Parser) parseFieldDecl(access ast.AccessModifier) *ast.DimDecl {
	name := p.consumeIdent("expected field name")

	decl := &ast.DimDecl{
		Pos:    name.Pos,
		EndPos: name.EndPos,
		Access: access,
		Name:   name,
	}
	if p.match(AS) {
		decl.Type = p.parseTypeRef()
		decl.EndPos = decl.Type.EndPos
	}
	if p.match(EQUAL) {
		decl.Init = p.parseExpression()
		decl.EndPos = decl.Init.NodeEndPos()
	}
	if decl.Type == nil && decl.Init == nil {
		p.fail("expected 'As' or '=' in field declaration")
	}
	return decl
}

func (p *Parser) parseConstDecl(access ast.AccessModifier) *ast.ConstDecl {
	start := p.consume(CONST, "expected 'Const'")
	name := p.consumeIdent("expected constant name")

	decl := &ast.ConstDecl{
		Pos:    p.makePos(start),
		Access: access,
		Name:   name,
	}
	if p.match(AS) {
		decl.Type = p.parseTypeRef()
	}
	p.consume(EQUAL, "expected '=' in constant declaration")
	decl.Value = p.parseExpression()
	decl.EndPos = decl.Value.NodeEndPos()
	return decl
}

// parseTypeRef parses a type name with optional generic arguments and
// array rank, e.g. "Integer", "List(Of String)", "Double(,)".
func (p *Parser) parseTypeRef() *ast.TypeRef {
	name := p.consumeIdent("expected type name")
	tr := &ast.TypeRef{
		Pos:    name.Pos,
		EndPos: name.EndPos,
		Name:   name,
	}

	if p.check(LEFT_PAREN) && p.peekNext().Type == OF {
		p.advance() // (
		p.advance() // Of
		tr.Generics = append(tr.Generics, p.parseTypeRef())
		for p.match(COMMA) {
			tr.Generics = append(tr.Generics, p.parseTypeRef())
		}
		end := p.consume(RIGHT_PAREN, "expected ')' to close generic arguments")
		tr.EndPos = p.makeEndPos(end)
	}

	if p.check(LEFT_PAREN) && (p.peekNext().Type == RIGHT_PAREN || p.peekNext().Type == COMMA) {
		p.advance() // (
		tr.ArrayRank = 1
		for p.match(COMMA) {
			tr.ArrayRank++
		}
		end := p.consume(RIGHT_PAREN, "expected ')' to close array type")
		tr.EndPos = p.makeEndPos(end)
	}

	if p.match(CARET) {
		tr.IsPointer = true
		tr.EndPos = p.makeEndPos(p.previous())
	}

	return tr
}
