package ast

// File represents a single compilation unit (one .bas source file)
// Example: "Module Main\n    Sub Main()\n    End Sub\nEnd Module"
type File struct {
	Pos    Position
	EndPos Position
	Name   string // source path, informational only
	Decls  []Decl
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents any identifier like variable names, type names, etc.
// Example: "counter", "Fibonacci", "Person"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// AccessModifier is the declared visibility of a declaration.
type AccessModifier int

const (
	AccessDefault AccessModifier = iota
	AccessPublic
	AccessPrivate
)

func (a AccessModifier) String() string {
	switch a {
	case AccessPublic:
		return "Public"
	case AccessPrivate:
		return "Private"
	default:
		return ""
	}
}

// TypeRef represents a type annotation as written in source
// Example: "Integer", "Double()", "List(Of Integer)"
type TypeRef struct {
	Pos       Position
	EndPos    Position
	Name      Ident
	ArrayRank int        // 0 when not an array; N for an N-dimensional array
	IsPointer bool       // trailing ^, e.g. Integer^
	Generics  []*TypeRef // type arguments, e.g. List(Of Integer)
}

// NamespaceDecl groups declarations under a dotted name
// Example: "Namespace App.Models ... End Namespace"
type NamespaceDecl struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Decls  []Decl
}

// ModuleDecl represents a module (a static container of routines and fields)
// Example: "Module Main ... End Module"
type ModuleDecl struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Decls  []Decl
}

// ClassDecl represents a class declaration
// Example: "Class Account Inherits Entity ... End Class"
type ClassDecl struct {
	Pos        Position
	EndPos     Position
	Access     AccessModifier
	Name       Ident
	Inherits   *TypeRef   // nil when the class has no base
	Implements []*TypeRef // implemented interfaces
	Members    []Decl
}

// StructureDecl represents a value-type aggregate
// Example: "Structure Point ... End Structure"
type StructureDecl struct {
	Pos     Position
	EndPos  Position
	Access  AccessModifier
	Name    Ident
	Members []Decl
}

// InterfaceDecl represents an interface; members are bodiless routines
// Example: "Interface IShape ... End Interface"
type InterfaceDecl struct {
	Pos     Position
	EndPos  Position
	Access  AccessModifier
	Name    Ident
	Members []Decl
}

// EnumDecl represents an enumeration of named integer constants
// Example: "Enum Color\n    Red\n    Green = 5\nEnd Enum"
type EnumDecl struct {
	Pos     Position
	EndPos  Position
	Access  AccessModifier
	Name    Ident
	Members []*EnumMember
}

// EnumMember is a single enum entry with an optional explicit value
type EnumMember struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Value  Expr // nil when implicit (previous + 1)
}

// DelegateDecl represents a named routine signature
// Example: "Delegate Function Comparer(a As Integer, b As Integer) As Integer"
type DelegateDecl struct {
	Pos    Position
	EndPos Position
	Access AccessModifier
	IsSub  bool
	Name   Ident
	Params []*Param
	Return *TypeRef // nil for Sub delegates
}

// FunctionDecl represents both Function and Sub declarations; IsSub
// distinguishes subroutines (no return value) from functions.
// Example: "Function Add(a As Integer, b As Integer) As Integer ... End Function"
type FunctionDecl struct {
	Pos    Position
	EndPos Position
	Access AccessModifier
	IsSub  bool
	Name   Ident
	Params []*Param
	Return *TypeRef   // nil for subroutines
	Body   *BlockStmt // nil for interface members
}

// Param represents a routine parameter
// Example: "count As Integer"
type Param struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   *TypeRef
}

// DimDecl represents a variable declaration, at file, type, or block level.
// With no declared type the initializer is mandatory and supplies the type.
// Example: "Dim x As Integer = 42", "Dim name = \"basic\""
type DimDecl struct {
	Pos    Position
	EndPos Position
	Access AccessModifier
	Name   Ident
	Type   *TypeRef // nil when type-inferred
	Init   Expr     // nil when defaulted
}

// ConstDecl represents a constant declaration; the value is mandatory
// Example: "Const PI As Double = 3.14159"
type ConstDecl struct {
	Pos    Position
	EndPos Position
	Access AccessModifier
	Name   Ident
	Type   *TypeRef // nil when type-inferred
	Value  Expr
}
