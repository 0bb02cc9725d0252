package ast

// Inspect traverses the tree rooted at node in depth-first order, calling fn
// for each node. If fn returns false the children of that node are skipped.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for _, child := range children(node) {
		Inspect(child, fn)
	}
}

func children(node Node) []Node {
	var out []Node
	add := func(n Node) {
		switch v := n.(type) {
		case nil:
		case *TypeRef:
			if v != nil {
				out = append(out, v)
			}
		case *BlockStmt:
			if v != nil {
				out = append(out, v)
			}
		default:
			out = append(out, n)
		}
	}
	addExpr := func(e Expr) {
		if e != nil {
			out = append(out, e)
		}
	}

	switch n := node.(type) {
	case *File:
		for _, d := range n.Decls {
			out = append(out, d)
		}
	case *TypeRef:
		out = append(out, &n.Name)
		for _, g := range n.Generics {
			add(g)
		}
	case *Param:
		out = append(out, &n.Name)
		add(n.Type)
	case *NamespaceDecl:
		out = append(out, &n.Name)
		for _, d := range n.Decls {
			out = append(out, d)
		}
	case *ModuleDecl:
		out = append(out, &n.Name)
		for _, d := range n.Decls {
			out = append(out, d)
		}
	case *ClassDecl:
		out = append(out, &n.Name)
		add(n.Inherits)
		for _, i := range n.Implements {
			add(i)
		}
		for _, m := range n.Members {
			out = append(out, m)
		}
	case *StructureDecl:
		out = append(out, &n.Name)
		for _, m := range n.Members {
			out = append(out, m)
		}
	case *InterfaceDecl:
		out = append(out, &n.Name)
		for _, m := range n.Members {
			out = append(out, m)
		}
	case *EnumDecl:
		out = append(out, &n.Name)
		for _, m := range n.Members {
			out = append(out, m)
		}
	case *EnumMember:
		out = append(out, &n.Name)
		addExpr(n.Value)
	case *DelegateDecl:
		out = append(out, &n.Name)
		for _, p := range n.Params {
			out = append(out, p)
		}
		add(n.Return)
	case *FunctionDecl:
		out = append(out, &n.Name)
		for _, p := range n.Params {
			out = append(out, p)
		}
		add(n.Return)
		add(n.Body)
	case *DimDecl:
		out = append(out, &n.Name)
		add(n.Type)
		addExpr(n.Init)
	case *ConstDecl:
		out = append(out, &n.Name)
		add(n.Type)
		addExpr(n.Value)
	case *BlockStmt:
		for _, s := range n.Items {
			out = append(out, s)
		}
	case *IfStmt:
		addExpr(n.Cond)
		add(n.Then)
		for _, ei := range n.ElseIfs {
			out = append(out, ei)
		}
		add(n.Else)
	case *ElseIfClause:
		addExpr(n.Cond)
		add(n.Body)
	case *SelectStmt:
		addExpr(n.Value)
		for _, c := range n.Cases {
			out = append(out, c)
		}
		add(n.Else)
	case *CaseClause:
		for _, v := range n.Values {
			addExpr(v)
		}
		add(n.Body)
	case *ForStmt:
		out = append(out, &n.Var)
		addExpr(n.From)
		addExpr(n.To)
		addExpr(n.Step)
		add(n.Body)
	case *ForEachStmt:
		out = append(out, &n.Var)
		addExpr(n.Collection)
		add(n.Body)
	case *WhileStmt:
		addExpr(n.Cond)
		add(n.Body)
	case *DoStmt:
		addExpr(n.Cond)
		add(n.Body)
	case *TryStmt:
		add(n.Body)
		for _, c := range n.Catches {
			out = append(out, c)
		}
		add(n.Finally)
	case *CatchClause:
		if n.Var != nil {
			out = append(out, n.Var)
		}
		add(n.Type)
		add(n.Body)
	case *ReturnStmt:
		addExpr(n.Value)
	case *AssignStmt:
		addExpr(n.Target)
		addExpr(n.Value)
	case *ExprStmt:
		addExpr(n.Expr)
	case *BinaryExpr:
		addExpr(n.Left)
		addExpr(n.Right)
	case *UnaryExpr:
		addExpr(n.Value)
	case *MemberExpr:
		addExpr(n.Target)
	case *CallExpr:
		addExpr(n.Callee)
		for _, a := range n.Args {
			addExpr(a)
		}
	case *NewExpr:
		add(n.Type)
		for _, a := range n.Args {
			addExpr(a)
		}
	case *CastExpr:
		addExpr(n.Value)
		add(n.Type)
	case *ArrayLiteralExpr:
		for _, e := range n.Elements {
			addExpr(e)
		}
	case *IncDecExpr:
		addExpr(n.Target)
	case *DerefExpr:
		addExpr(n.Target)
	case *ParenExpr:
		addExpr(n.Value)
	case *InterpolatedStringExpr:
		for _, p := range n.Parts {
			addExpr(p.Expr)
		}
	}
	return out
}
