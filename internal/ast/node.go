package ast

// Node is the interface every AST node satisfies. Nodes are created once
// by the parser and never mutated afterwards; semantic annotations live in
// out-of-band identity-keyed maps, not on the nodes themselves.
type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (f *File) NodePos() Position    { return f.Pos }
func (f *File) NodeEndPos() Position { return f.EndPos }
func (*File) NodeType() NodeType     { return FILE }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (t *TypeRef) NodePos() Position    { return t.Pos }
func (t *TypeRef) NodeEndPos() Position { return t.EndPos }
func (*TypeRef) NodeType() NodeType     { return TYPE_REF }

func (p *Param) NodePos() Position    { return p.Pos }
func (p *Param) NodeEndPos() Position { return p.EndPos }
func (*Param) NodeType() NodeType     { return PARAM }

func (n *NamespaceDecl) NodePos() Position    { return n.Pos }
func (n *NamespaceDecl) NodeEndPos() Position { return n.EndPos }
func (*NamespaceDecl) NodeType() NodeType     { return NAMESPACE_DECL }

func (m *ModuleDecl) NodePos() Position    { return m.Pos }
func (m *ModuleDecl) NodeEndPos() Position { return m.EndPos }
func (*ModuleDecl) NodeType() NodeType     { return MODULE_DECL }

func (c *ClassDecl) NodePos() Position    { return c.Pos }
func (c *ClassDecl) NodeEndPos() Position { return c.EndPos }
func (*ClassDecl) NodeType() NodeType     { return CLASS_DECL }

func (s *StructureDecl) NodePos() Position    { return s.Pos }
func (s *StructureDecl) NodeEndPos() Position { return s.EndPos }
func (*StructureDecl) NodeType() NodeType     { return STRUCTURE_DECL }

func (i *InterfaceDecl) NodePos() Position    { return i.Pos }
func (i *InterfaceDecl) NodeEndPos() Position { return i.EndPos }
func (*InterfaceDecl) NodeType() NodeType     { return INTERFACE_DECL }

func (e *EnumDecl) NodePos() Position    { return e.Pos }
func (e *EnumDecl) NodeEndPos() Position { return e.EndPos }
func (*EnumDecl) NodeType() NodeType     { return ENUM_DECL }

func (e *EnumMember) NodePos() Position    { return e.Pos }
func (e *EnumMember) NodeEndPos() Position { return e.EndPos }
func (*EnumMember) NodeType() NodeType     { return ENUM_MEMBER }

func (d *DelegateDecl) NodePos() Position    { return d.Pos }
func (d *DelegateDecl) NodeEndPos() Position { return d.EndPos }
func (*DelegateDecl) NodeType() NodeType     { return DELEGATE_DECL }

func (f *FunctionDecl) NodePos() Position    { return f.Pos }
func (f *FunctionDecl) NodeEndPos() Position { return f.EndPos }
func (*FunctionDecl) NodeType() NodeType     { return FUNCTION_DECL }

func (d *DimDecl) NodePos() Position    { return d.Pos }
func (d *DimDecl) NodeEndPos() Position { return d.EndPos }
func (*DimDecl) NodeType() NodeType     { return DIM_DECL }

func (c *ConstDecl) NodePos() Position    { return c.Pos }
func (c *ConstDecl) NodeEndPos() Position { return c.EndPos }
func (*ConstDecl) NodeType() NodeType     { return CONST_DECL }

func (b *BlockStmt) NodePos() Position    { return b.Pos }
func (b *BlockStmt) NodeEndPos() Position { return b.EndPos }
func (*BlockStmt) NodeType() NodeType     { return BLOCK_STMT }

func (i *IfStmt) NodePos() Position    { return i.Pos }
func (i *IfStmt) NodeEndPos() Position { return i.EndPos }
func (*IfStmt) NodeType() NodeType     { return IF_STMT }

func (e *ElseIfClause) NodePos() Position    { return e.Pos }
func (e *ElseIfClause) NodeEndPos() Position { return e.EndPos }
func (*ElseIfClause) NodeType() NodeType     { return ELSEIF_CLAUSE }

func (s *SelectStmt) NodePos() Position    { return s.Pos }
func (s *SelectStmt) NodeEndPos() Position { return s.EndPos }
func (*SelectStmt) NodeType() NodeType     { return SELECT_STMT }

func (c *CaseClause) NodePos() Position    { return c.Pos }
func (c *CaseClause) NodeEndPos() Position { return c.EndPos }
func (*CaseClause) NodeType() NodeType     { return CASE_CLAUSE }

func (f *ForStmt) NodePos() Position    { return f.Pos }
func (f *ForStmt) NodeEndPos() Position { return f.EndPos }
func (*ForStmt) NodeType() NodeType     { return FOR_STMT }

func (f *ForEachStmt) NodePos() Position    { return f.Pos }
func (f *ForEachStmt) NodeEndPos() Position { return f.EndPos }
func (*ForEachStmt) NodeType() NodeType     { return FOR_EACH_STMT }

func (w *WhileStmt) NodePos() Position    { return w.Pos }
func (w *WhileStmt) NodeEndPos() Position { return w.EndPos }
func (*WhileStmt) NodeType() NodeType     { return WHILE_STMT }

func (d *DoStmt) NodePos() Position    { return d.Pos }
func (d *DoStmt) NodeEndPos() Position { return d.EndPos }
func (*DoStmt) NodeType() NodeType     { return DO_STMT }

func (t *TryStmt) NodePos() Position    { return t.Pos }
func (t *TryStmt) NodeEndPos() Position { return t.EndPos }
func (*TryStmt) NodeType() NodeType     { return TRY_STMT }

func (c *CatchClause) NodePos() Position    { return c.Pos }
func (c *CatchClause) NodeEndPos() Position { return c.EndPos }
func (*CatchClause) NodeType() NodeType     { return CATCH_CLAUSE }

func (r *ReturnStmt) NodePos() Position    { return r.Pos }
func (r *ReturnStmt) NodeEndPos() Position { return r.EndPos }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (e *ExitStmt) NodePos() Position    { return e.Pos }
func (e *ExitStmt) NodeEndPos() Position { return e.EndPos }
func (*ExitStmt) NodeType() NodeType     { return EXIT_STMT }

func (a *AssignStmt) NodePos() Position    { return a.Pos }
func (a *AssignStmt) NodeEndPos() Position { return a.EndPos }
func (*AssignStmt) NodeType() NodeType     { return ASSIGN_STMT }

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (l *LiteralExpr) NodePos() Position    { return l.Pos }
func (l *LiteralExpr) NodeEndPos() Position { return l.EndPos }
func (*LiteralExpr) NodeType() NodeType     { return LITERAL_EXPR }

func (i *IdentExpr) NodePos() Position    { return i.Pos }
func (i *IdentExpr) NodeEndPos() Position { return i.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (u *UnaryExpr) NodePos() Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() Position { return u.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (m *MemberExpr) NodePos() Position    { return m.Pos }
func (m *MemberExpr) NodeEndPos() Position { return m.EndPos }
func (*MemberExpr) NodeType() NodeType     { return MEMBER_EXPR }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (n *NewExpr) NodePos() Position    { return n.Pos }
func (n *NewExpr) NodeEndPos() Position { return n.EndPos }
func (*NewExpr) NodeType() NodeType     { return NEW_EXPR }

func (c *CastExpr) NodePos() Position    { return c.Pos }
func (c *CastExpr) NodeEndPos() Position { return c.EndPos }
func (*CastExpr) NodeType() NodeType     { return CAST_EXPR }

func (a *ArrayLiteralExpr) NodePos() Position    { return a.Pos }
func (a *ArrayLiteralExpr) NodeEndPos() Position { return a.EndPos }
func (*ArrayLiteralExpr) NodeType() NodeType     { return ARRAY_LITERAL_EXPR }

func (i *IncDecExpr) NodePos() Position    { return i.Pos }
func (i *IncDecExpr) NodeEndPos() Position { return i.EndPos }
func (*IncDecExpr) NodeType() NodeType     { return INC_DEC_EXPR }

func (d *DerefExpr) NodePos() Position    { return d.Pos }
func (d *DerefExpr) NodeEndPos() Position { return d.EndPos }
func (*DerefExpr) NodeType() NodeType     { return DEREF_EXPR }

func (p *ParenExpr) NodePos() Position    { return p.Pos }
func (p *ParenExpr) NodeEndPos() Position { return p.EndPos }
func (*ParenExpr) NodeType() NodeType     { return PAREN_EXPR }

func (i *InterpolatedStringExpr) NodePos() Position    { return i.Pos }
func (i *InterpolatedStringExpr) NodeEndPos() Position { return i.EndPos }
func (*InterpolatedStringExpr) NodeType() NodeType     { return INTERP_STRING_EXPR }
