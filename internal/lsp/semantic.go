package lsp

import (
	"github.com/gracepriest/BasicLangvb-sub002/internal/ast"
)

// SemanticToken is one LSP semantic token entry. Line and StartChar are
// 0-based; TokenType indexes SemanticTokenTypes and TokenModifiers is a
// bitmask over SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

const (
	modNone        = 0
	modDeclaration = 1 << 0
	modReadonly    = 1 << 1
	modStatic      = 1 << 2
)

// CollectSemanticTokens walks the AST in source order and produces the
// tokens the editor colors. Keywords, literals, and operators are left
// to the client's TextMate grammar; this pass contributes the names the
// scanner cannot classify: types, routines, parameters, and members.
func CollectSemanticTokens(file *ast.File) []SemanticToken {
	if file == nil {
		return nil
	}
	var tokens []SemanticToken
	for _, decl := range file.Decls {
		tokens = append(tokens, walkDecl(decl, false)...)
	}
	return tokens
}

func walkDecl(decl ast.Decl, insideType bool) []SemanticToken {
	var tokens []SemanticToken
	switch d := decl.(type) {
	case *ast.NamespaceDecl:
		tokens = append(tokens, makeToken(d.Name, "namespace", modDeclaration)...)
		for _, inner := range d.Decls {
			tokens = append(tokens, walkDecl(inner, insideType)...)
		}
	case *ast.ModuleDecl:
		tokens = append(tokens, makeToken(d.Name, "namespace", modDeclaration)...)
		for _, inner := range d.Decls {
			tokens = append(tokens, walkDecl(inner, insideType)...)
		}
	case *ast.ClassDecl:
		tokens = append(tokens, makeToken(d.Name, "type", modDeclaration)...)
		if d.Inherits != nil {
			tokens = append(tokens, walkTypeRef(d.Inherits)...)
		}
		for _, impl := range d.Implements {
			tokens = append(tokens, walkTypeRef(impl)...)
		}
		for _, member := range d.Members {
			tokens = append(tokens, walkDecl(member, true)...)
		}
	case *ast.StructureDecl:
		tokens = append(tokens, makeToken(d.Name, "type", modDeclaration)...)
		for _, member := range d.Members {
			tokens = append(tokens, walkDecl(member, true)...)
		}
	case *ast.InterfaceDecl:
		tokens = append(tokens, makeToken(d.Name, "type", modDeclaration)...)
		for _, member := range d.Members {
			tokens = append(tokens, walkDecl(member, true)...)
		}
	case *ast.EnumDecl:
		tokens = append(tokens, makeToken(d.Name, "type", modDeclaration)...)
		for _, member := range d.Members {
			tokens = append(tokens, makeToken(member.Name, "enumMember", modDeclaration|modReadonly)...)
			tokens = append(tokens, walkExpr(member.Value)...)
		}
	case *ast.DelegateDecl:
		tokens = append(tokens, makeToken(d.Name, "type", modDeclaration)...)
		tokens = append(tokens, walkParams(d.Params)...)
		if d.Return != nil {
			tokens = append(tokens, walkTypeRef(d.Return)...)
		}
	case *ast.FunctionDecl:
		kind := "function"
		if insideType {
			kind = "method"
		}
		tokens = append(tokens, makeToken(d.Name, kind, modDeclaration)...)
		tokens = append(tokens, walkParams(d.Params)...)
		if d.Return != nil {
			tokens = append(tokens, walkTypeRef(d.Return)...)
		}
		tokens = append(tokens, walkBlock(d.Body)...)
	case *ast.DimDecl:
		kind := "variable"
		if insideType {
			kind = "property"
		}
		tokens = append(tokens, makeToken(d.Name, kind, modDeclaration)...)
		if d.Type != nil {
			tokens = append(tokens, walkTypeRef(d.Type)...)
		}
		tokens = append(tokens, walkExpr(d.Init)...)
	case *ast.ConstDecl:
		kind := "variable"
		if insideType {
			kind = "property"
		}
		tokens = append(tokens, makeToken(d.Name, kind, modDeclaration|modReadonly)...)
		if d.Type != nil {
			tokens = append(tokens, walkTypeRef(d.Type)...)
		}
		tokens = append(tokens, walkExpr(d.Value)...)
	}
	return tokens
}

func walkParams(params []*ast.Param) []SemanticToken {
	var tokens []SemanticToken
	for _, p := range params {
		tokens = append(tokens, makeToken(p.Name, "parameter", modDeclaration)...)
		if p.Type != nil {
			tokens = append(tokens, walkTypeRef(p.Type)...)
		}
	}
	return tokens
}

func walkBlock(block *ast.BlockStmt) []SemanticToken {
	if block == nil {
		return nil
	}
	var tokens []SemanticToken
	for _, stmt := range block.Items {
		tokens = append(tokens, walkStmt(stmt)...)
	}
	return tokens
}

func walkStmt(stmt ast.Stmt) []SemanticToken {
	var tokens []SemanticToken
	switch s := stmt.(type) {
	case *ast.DimDecl:
		tokens = append(tokens, makeToken(s.Name, "variable", modDeclaration)...)
		if s.Type != nil {
			tokens = append(tokens, walkTypeRef(s.Type)...)
		}
		tokens = append(tokens, walkExpr(s.Init)...)
	case *ast.ConstDecl:
		tokens = append(tokens, makeToken(s.Name, "variable", modDeclaration|modReadonly)...)
		if s.Type != nil {
			tokens = append(tokens, walkTypeRef(s.Type)...)
		}
		tokens = append(tokens, walkExpr(s.Value)...)
	case *ast.AssignStmt:
		tokens = append(tokens, walkExpr(s.Target)...)
		tokens = append(tokens, walkExpr(s.Value)...)
	case *ast.ExprStmt:
		tokens = append(tokens, walkExpr(s.Expr)...)
	case *ast.ReturnStmt:
		tokens = append(tokens, walkExpr(s.Value)...)
	case *ast.IfStmt:
		tokens = append(tokens, walkExpr(s.Cond)...)
		tokens = append(tokens, walkBlock(s.Then)...)
		for _, elseif := range s.ElseIfs {
			tokens = append(tokens, walkExpr(elseif.Cond)...)
			tokens = append(tokens, walkBlock(elseif.Body)...)
		}
		tokens = append(tokens, walkBlock(s.Else)...)
	case *ast.SelectStmt:
		tokens = append(tokens, walkExpr(s.Value)...)
		for _, clause := range s.Cases {
			for _, v := range clause.Values {
				tokens = append(tokens, walkExpr(v)...)
			}
			tokens = append(tokens, walkBlock(clause.Body)...)
		}
		tokens = append(tokens, walkBlock(s.Else)...)
	case *ast.ForStmt:
		tokens = append(tokens, makeToken(s.Var, "variable", modDeclaration)...)
		tokens = append(tokens, walkExpr(s.From)...)
		tokens = append(tokens, walkExpr(s.To)...)
		tokens = append(tokens, walkExpr(s.Step)...)
		tokens = append(tokens, walkBlock(s.Body)...)
	case *ast.ForEachStmt:
		tokens = append(tokens, makeToken(s.Var, "variable", modDeclaration)...)
		tokens = append(tokens, walkExpr(s.Collection)...)
		tokens = append(tokens, walkBlock(s.Body)...)
	case *ast.WhileStmt:
		tokens = append(tokens, walkExpr(s.Cond)...)
		tokens = append(tokens, walkBlock(s.Body)...)
	case *ast.DoStmt:
		if !s.PostTest {
			tokens = append(tokens, walkExpr(s.Cond)...)
		}
		tokens = append(tokens, walkBlock(s.Body)...)
		if s.PostTest {
			tokens = append(tokens, walkExpr(s.Cond)...)
		}
	case *ast.TryStmt:
		tokens = append(tokens, walkBlock(s.Body)...)
		for _, catch := range s.Catches {
			if catch.Var != nil {
				tokens = append(tokens, makeToken(*catch.Var, "variable", modDeclaration)...)
			}
			if catch.Type != nil {
				tokens = append(tokens, walkTypeRef(catch.Type)...)
			}
			tokens = append(tokens, walkBlock(catch.Body)...)
		}
		tokens = append(tokens, walkBlock(s.Finally)...)
	case *ast.BlockStmt:
		tokens = append(tokens, walkBlock(s)...)
	}
	return tokens
}

func walkExpr(expr ast.Expr) []SemanticToken {
	if expr == nil {
		return nil
	}
	var tokens []SemanticToken
	switch e := expr.(type) {
	case *ast.IdentExpr:
		tokens = append(tokens, makeSpanToken(e.Pos, e.EndPos, e.Name, "variable", modNone)...)
	case *ast.BinaryExpr:
		tokens = append(tokens, walkExpr(e.Left)...)
		tokens = append(tokens, walkExpr(e.Right)...)
	case *ast.UnaryExpr:
		tokens = append(tokens, walkExpr(e.Value)...)
	case *ast.MemberExpr:
		tokens = append(tokens, walkExpr(e.Target)...)
	case *ast.CallExpr:
		if callee, ok := e.Callee.(*ast.IdentExpr); ok {
			tokens = append(tokens, makeSpanToken(callee.Pos, callee.EndPos, callee.Name, "function", modNone)...)
		} else {
			tokens = append(tokens, walkExpr(e.Callee)...)
		}
		for _, arg := range e.Args {
			tokens = append(tokens, walkExpr(arg)...)
		}
	case *ast.NewExpr:
		tokens = append(tokens, walkTypeRef(e.Type)...)
		for _, arg := range e.Args {
			tokens = append(tokens, walkExpr(arg)...)
		}
	case *ast.CastExpr:
		tokens = append(tokens, walkExpr(e.Value)...)
		tokens = append(tokens, walkTypeRef(e.Type)...)
	case *ast.ArrayLiteralExpr:
		for _, el := range e.Elements {
			tokens = append(tokens, walkExpr(el)...)
		}
	case *ast.IncDecExpr:
		tokens = append(tokens, walkExpr(e.Target)...)
	case *ast.DerefExpr:
		tokens = append(tokens, walkExpr(e.Target)...)
	case *ast.ParenExpr:
		tokens = append(tokens, walkExpr(e.Value)...)
	case *ast.InterpolatedStringExpr:
		for _, part := range e.Parts {
			tokens = append(tokens, walkExpr(part.Expr)...)
		}
	}
	return tokens
}

func walkTypeRef(ref *ast.TypeRef) []SemanticToken {
	if ref == nil {
		return nil
	}
	tokens := makeToken(ref.Name, "type", modNone)
	for _, generic := range ref.Generics {
		tokens = append(tokens, walkTypeRef(generic)...)
	}
	return tokens
}

func makeToken(name ast.Ident, tokenType string, modifiers int) []SemanticToken {
	return makeSpanToken(name.Pos, name.EndPos, name.Value, tokenType, modifiers)
}

func makeSpanToken(pos, endPos ast.Position, value, tokenType string, modifiers int) []SemanticToken {
	if value == "" || pos.Line <= 0 {
		return nil
	}
	length := endPos.Column - pos.Column
	if length <= 0 {
		length = len(value)
	}
	return []SemanticToken{{
		Line:           uint32(pos.Line - 1),
		StartChar:      uint32(pos.Column - 1),
		Length:         uint32(length),
		TokenType:      tokenTypeIndex(tokenType),
		TokenModifiers: modifiers,
	}}
}

func tokenTypeIndex(name string) int {
	for i, t := range SemanticTokenTypes {
		if t == name {
			return i
		}
	}
	return 0
}
