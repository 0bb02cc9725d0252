package ast

import (
	"fmt"
	"strings"
)

// The printers render a canonical source form of each node. The output is
// deterministic for a given tree, which the tooling relies on when comparing
// parses of the same input.

func (f *File) String() string {
	var b strings.Builder
	for _, d := range f.Decls {
		b.WriteString(d.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (i *Ident) String() string { return i.Value }

func (t *TypeRef) String() string {
	var b strings.Builder
	b.WriteString(t.Name.Value)
	if len(t.Generics) > 0 {
		b.WriteString("(Of ")
		for i, g := range t.Generics {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(g.String())
		}
		b.WriteString(")")
	}
	if t.ArrayRank > 0 {
		b.WriteString("(")
		b.WriteString(strings.Repeat(",", t.ArrayRank-1))
		b.WriteString(")")
	}
	if t.IsPointer {
		b.WriteString("^")
	}
	return b.String()
}

func (p *Param) String() string {
	return p.Name.Value + " As " + p.Type.String()
}

func accessPrefix(a AccessModifier) string {
	if a == AccessDefault {
		return ""
	}
	return a.String() + " "
}

func indent(s string) string {
	if s == "" {
		return s
	}
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "    " + line
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func declsString(decls []Decl) string {
	var b strings.Builder
	for _, d := range decls {
		b.WriteString(d.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (n *NamespaceDecl) String() string {
	return "Namespace " + n.Name.Value + "\n" + indent(declsString(n.Decls)) + "End Namespace"
}

func (m *ModuleDecl) String() string {
	return "Module " + m.Name.Value + "\n" + indent(declsString(m.Decls)) + "End Module"
}

func (c *ClassDecl) String() string {
	var b strings.Builder
	b.WriteString(accessPrefix(c.Access))
	b.WriteString("Class ")
	b.WriteString(c.Name.Value)
	b.WriteString("\n")
	if c.Inherits != nil {
		b.WriteString("    Inherits " + c.Inherits.String() + "\n")
	}
	for _, impl := range c.Implements {
		b.WriteString("    Implements " + impl.String() + "\n")
	}
	b.WriteString(indent(declsString(c.Members)))
	b.WriteString("End Class")
	return b.String()
}

func (s *StructureDecl) String() string {
	return accessPrefix(s.Access) + "Structure " + s.Name.Value + "\n" +
		indent(declsString(s.Members)) + "End Structure"
}

func (i *InterfaceDecl) String() string {
	return accessPrefix(i.Access) + "Interface " + i.Name.Value + "\n" +
		indent(declsString(i.Members)) + "End Interface"
}

func (e *EnumDecl) String() string {
	var b strings.Builder
	b.WriteString(accessPrefix(e.Access))
	b.WriteString("Enum ")
	b.WriteString(e.Name.Value)
	b.WriteString("\n")
	for _, m := range e.Members {
		b.WriteString("    " + m.String() + "\n")
	}
	b.WriteString("End Enum")
	return b.String()
}

func (e *EnumMember) String() string {
	if e.Value != nil {
		return e.Name.Value + " = " + e.Value.String()
	}
	return e.Name.Value
}

func (d *DelegateDecl) String() string {
	var b strings.Builder
	b.WriteString(accessPrefix(d.Access))
	b.WriteString("Delegate ")
	if d.IsSub {
		b.WriteString("Sub ")
	} else {
		b.WriteString("Function ")
	}
	b.WriteString(d.Name.Value)
	b.WriteString(paramsString(d.Params))
	if d.Return != nil {
		b.WriteString(" As " + d.Return.String())
	}
	return b.String()
}

func paramsString(params []*Param) string {
	var b strings.Builder
	b.WriteString("(")
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(")")
	return b.String()
}

func (f *FunctionDecl) String() string {
	var b strings.Builder
	b.WriteString(accessPrefix(f.Access))
	kw := "Function"
	if f.IsSub {
		kw = "Sub"
	}
	b.WriteString(kw)
	b.WriteString(" ")
	b.WriteString(f.Name.Value)
	b.WriteString(paramsString(f.Params))
	if f.Return != nil {
		b.WriteString(" As " + f.Return.String())
	}
	if f.Body != nil {
		b.WriteString("\n")
		b.WriteString(indent(f.Body.String()))
		b.WriteString("End " + kw)
	}
	return b.String()
}

func (d *DimDecl) String() string {
	var b strings.Builder
	b.WriteString(accessPrefix(d.Access))
	b.WriteString("Dim ")
	b.WriteString(d.Name.Value)
	if d.Type != nil {
		b.WriteString(" As " + d.Type.String())
	}
	if d.Init != nil {
		b.WriteString(" = " + d.Init.String())
	}
	return b.String()
}

func (c *ConstDecl) String() string {
	var b strings.Builder
	b.WriteString(accessPrefix(c.Access))
	b.WriteString("Const ")
	b.WriteString(c.Name.Value)
	if c.Type != nil {
		b.WriteString(" As " + c.Type.String())
	}
	b.WriteString(" = " + c.Value.String())
	return b.String()
}

func (b *BlockStmt) String() string {
	var sb strings.Builder
	for _, s := range b.Items {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

func (i *IfStmt) String() string {
	if i.SingleLine {
		s := "If " + i.Cond.String() + " Then " + strings.TrimRight(i.Then.String(), "\n")
		if i.Else != nil {
			s += " Else " + strings.TrimRight(i.Else.String(), "\n")
		}
		return s
	}
	var b strings.Builder
	b.WriteString("If " + i.Cond.String() + " Then\n")
	b.WriteString(indent(i.Then.String()))
	for _, ei := range i.ElseIfs {
		b.WriteString("ElseIf " + ei.Cond.String() + " Then\n")
		b.WriteString(indent(ei.Body.String()))
	}
	if i.Else != nil {
		b.WriteString("Else\n")
		b.WriteString(indent(i.Else.String()))
	}
	b.WriteString("End If")
	return b.String()
}

func (e *ElseIfClause) String() string {
	return "ElseIf " + e.Cond.String() + " Then\n" + indent(e.Body.String())
}

func (s *SelectStmt) String() string {
	var b strings.Builder
	b.WriteString("Select Case " + s.Value.String() + "\n")
	for _, c := range s.Cases {
		b.WriteString(c.String())
	}
	if s.Else != nil {
		b.WriteString("Case Else\n")
		b.WriteString(indent(s.Else.String()))
	}
	b.WriteString("End Select")
	return b.String()
}

func (c *CaseClause) String() string {
	var b strings.Builder
	b.WriteString("Case ")
	for i, v := range c.Values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	b.WriteString("\n")
	b.WriteString(indent(c.Body.String()))
	return b.String()
}

func (f *ForStmt) String() string {
	var b strings.Builder
	b.WriteString("For " + f.Var.Value + " = " + f.From.String() + " To " + f.To.String())
	if f.Step != nil {
		b.WriteString(" Step " + f.Step.String())
	}
	b.WriteString("\n")
	b.WriteString(indent(f.Body.String()))
	b.WriteString("Next")
	return b.String()
}

func (f *ForEachStmt) String() string {
	return "For Each " + f.Var.Value + " In " + f.Collection.String() + "\n" +
		indent(f.Body.String()) + "Next"
}

func (w *WhileStmt) String() string {
	return "While " + w.Cond.String() + "\n" + indent(w.Body.String()) + "End While"
}

func (d *DoStmt) String() string {
	kw := "While"
	if d.Until {
		kw = "Until"
	}
	if d.PostTest {
		return "Do\n" + indent(d.Body.String()) + "Loop " + kw + " " + d.Cond.String()
	}
	return "Do " + kw + " " + d.Cond.String() + "\n" + indent(d.Body.String()) + "Loop"
}

func (t *TryStmt) String() string {
	var b strings.Builder
	b.WriteString("Try\n")
	b.WriteString(indent(t.Body.String()))
	for _, c := range t.Catches {
		b.WriteString(c.String())
	}
	if t.Finally != nil {
		b.WriteString("Finally\n")
		b.WriteString(indent(t.Finally.String()))
	}
	b.WriteString("End Try")
	return b.String()
}

func (c *CatchClause) String() string {
	var b strings.Builder
	b.WriteString("Catch")
	if c.Var != nil {
		b.WriteString(" " + c.Var.Value)
		if c.Type != nil {
			b.WriteString(" As " + c.Type.String())
		}
	}
	b.WriteString("\n")
	b.WriteString(indent(c.Body.String()))
	return b.String()
}

func (r *ReturnStmt) String() string {
	if r.Value != nil {
		return "Return " + r.Value.String()
	}
	return "Return"
}

func (e *ExitStmt) String() string { return "Exit " + e.Kind.String() }

func (a *AssignStmt) String() string {
	return a.Target.String() + " " + a.Op.String() + " " + a.Value.String()
}

func (e *ExprStmt) String() string { return e.Expr.String() }

func (l *LiteralExpr) String() string {
	if l.Kind == StringLit {
		return fmt.Sprintf("%q", l.Str)
	}
	return l.Text
}

func (i *IdentExpr) String() string { return i.Name }

func (b *BinaryExpr) String() string {
	return b.Left.String() + " " + b.Op + " " + b.Right.String()
}

func (u *UnaryExpr) String() string {
	if u.Op == "Not" {
		return "Not " + u.Value.String()
	}
	return u.Op + u.Value.String()
}

func (m *MemberExpr) String() string { return m.Target.String() + "." + m.Member }

func (c *CallExpr) String() string {
	return c.Callee.String() + exprListString(c.Args)
}

func exprListString(exprs []Expr) string {
	var b strings.Builder
	b.WriteString("(")
	for i, e := range exprs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteString(")")
	return b.String()
}

func (n *NewExpr) String() string {
	return "New " + n.Type.String() + exprListString(n.Args)
}

func (c *CastExpr) String() string {
	return "CType(" + c.Value.String() + ", " + c.Type.String() + ")"
}

func (a *ArrayLiteralExpr) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, e := range a.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteString("}")
	return b.String()
}

func (i *IncDecExpr) String() string { return i.Target.String() + i.Op }

func (d *DerefExpr) String() string { return d.Target.String() + "^" }

func (p *ParenExpr) String() string { return "(" + p.Value.String() + ")" }

func (i *InterpolatedStringExpr) String() string {
	var b strings.Builder
	b.WriteString("$\"")
	for _, part := range i.Parts {
		if part.Expr != nil {
			b.WriteString("{" + part.Expr.String() + "}")
		} else {
			b.WriteString(part.Text)
		}
	}
	b.WriteString("\"")
	return b.String()
}
