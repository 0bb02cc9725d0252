package ast

// LiteralKind classifies literal expressions by the token that produced them.
type LiteralKind int

const (
	IntegerLit LiteralKind = iota
	LongLit
	SingleLit
	DoubleLit
	StringLit
	BooleanLit
)

// LiteralExpr represents literal values; the decoded value lives in the
// field matching Kind, Text keeps the original spelling.
// Example: "42", "3.14", "10L", "2.5F", "\"hello\"", "True"
type LiteralExpr struct {
	Pos    Position
	EndPos Position
	Kind   LiteralKind
	Text   string
	Int    int64
	Float  float64
	Str    string
	Bool   bool
}

// IdentExpr represents a bare identifier read
// Example: "total", "i"
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

// BinaryExpr represents binary operations
// Example: "a + b", "n <= 1", "first & last"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

// UnaryExpr represents prefix operations
// Example: "-x", "Not done"
type UnaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Value  Expr
}

// MemberExpr represents member access
// Example: "account.Balance", "p.Name"
type MemberExpr struct {
	Pos    Position
	EndPos Position
	Target Expr
	Member string
}

// CallExpr represents routine invocation or array element access; the two
// share one syntax, so the analyzer decides which from the callee's symbol
// Example: "Fibonacci(n - 1)", "cells(i)", "grid(row, col)"
type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee Expr
	Args   []Expr
}

// NewExpr represents object construction
// Example: "New Account(100)"
type NewExpr struct {
	Pos    Position
	EndPos Position
	Type   *TypeRef
	Args   []Expr
}

// CastExpr represents an explicit conversion
// Example: "CType(total, Double)"
type CastExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
	Type   *TypeRef
}

// ArrayLiteralExpr represents a brace-delimited initializer
// Example: "{1, 2, 3}"
type ArrayLiteralExpr struct {
	Pos      Position
	EndPos   Position
	Elements []Expr
}

// IncDecExpr represents postfix increment/decrement
// Example: "i++", "count--"
type IncDecExpr struct {
	Pos    Position
	EndPos Position
	Target Expr
	Op     string // "++" or "--"
}

// DerefExpr represents postfix pointer dereference
// Example: "p^"
type DerefExpr struct {
	Pos    Position
	EndPos Position
	Target Expr
}

// ParenExpr represents parenthesized grouping
// Example: "(a + b) * c"
type ParenExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// InterpPart is one segment of an interpolated string: either literal text
// or an embedded expression parsed lazily from the captured span.
type InterpPart struct {
	Text string
	Expr Expr // nil for text parts
}

// InterpolatedStringExpr represents $"..." strings
// Example: "$\"hello {name}, you are {age} years old\""
type InterpolatedStringExpr struct {
	Pos    Position
	EndPos Position
	Parts  []InterpPart
}

// Decl is implemented by declaration nodes.
type Decl interface {
	Node
	isDecl()
}

// Stmt is implemented by statement nodes. Variable and constant
// declarations double as statements inside routine bodies.
type Stmt interface {
	Node
	isStmt()
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	isExpr()
}

func (*NamespaceDecl) isDecl() {}
func (*ModuleDecl) isDecl()    {}
func (*ClassDecl) isDecl()     {}
func (*StructureDecl) isDecl() {}
func (*InterfaceDecl) isDecl() {}
func (*EnumDecl) isDecl()      {}
func (*DelegateDecl) isDecl()  {}
func (*FunctionDecl) isDecl()  {}
func (*DimDecl) isDecl()       {}
func (*ConstDecl) isDecl()     {}

func (*BlockStmt) isStmt()   {}
func (*IfStmt) isStmt()      {}
func (*SelectStmt) isStmt()  {}
func (*ForStmt) isStmt()     {}
func (*ForEachStmt) isStmt() {}
func (*WhileStmt) isStmt()   {}
func (*DoStmt) isStmt()      {}
func (*TryStmt) isStmt()     {}
func (*ReturnStmt) isStmt()  {}
func (*ExitStmt) isStmt()    {}
func (*AssignStmt) isStmt()  {}
func (*ExprStmt) isStmt()    {}
func (*DimDecl) isStmt()     {}
func (*ConstDecl) isStmt()   {}

func (*LiteralExpr) isExpr()            {}
func (*IdentExpr) isExpr()              {}
func (*BinaryExpr) isExpr()             {}
func (*UnaryExpr) isExpr()              {}
func (*MemberExpr) isExpr()             {}
func (*CallExpr) isExpr()               {}
func (*NewExpr) isExpr()                {}
func (*CastExpr) isExpr()               {}
func (*ArrayLiteralExpr) isExpr()       {}
func (*IncDecExpr) isExpr()             {}
func (*DerefExpr) isExpr()              {}
func (*ParenExpr) isExpr()              {}
func (*InterpolatedStringExpr) isExpr() {}
