package ast

// BlockStmt is a sequence of statements, bounded in source by whichever
// terminator keywords the surrounding construct accepts.
type BlockStmt struct {
	Pos    Position
	EndPos Position
	Items  []Stmt
}

// IfStmt represents both the multi-line block form and the single-line form
// Example: "If n <= 1 Then\n    Return n\nEnd If", "If ok Then Return 1"
type IfStmt struct {
	Pos        Position
	EndPos     Position
	Cond       Expr
	Then       *BlockStmt
	ElseIfs    []*ElseIfClause
	Else       *BlockStmt // nil when absent
	SingleLine bool
}

// ElseIfClause is one "ElseIf cond Then" arm of an If statement
type ElseIfClause struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   *BlockStmt
}

// SelectStmt represents Select Case dispatch
// Example: "Select Case x\nCase 1, 2\n    ...\nCase Else\n    ...\nEnd Select"
type SelectStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr
	Cases  []*CaseClause
	Else   *BlockStmt // Case Else body, nil when absent
}

// CaseClause is one Case arm; Values holds the comparison candidates
type CaseClause struct {
	Pos    Position
	EndPos Position
	Values []Expr
	Body   *BlockStmt
}

// ForStmt represents counted iteration
// Example: "For i = 0 To 10 Step 2 ... Next"
type ForStmt struct {
	Pos    Position
	EndPos Position
	Var    Ident
	From   Expr
	To     Expr
	Step   Expr // nil means 1
	Body   *BlockStmt
}

// ForEachStmt represents element iteration over an array
// Example: "For Each item In values ... Next"
type ForEachStmt struct {
	Pos        Position
	EndPos     Position
	Var        Ident
	Collection Expr
	Body       *BlockStmt
}

// WhileStmt represents a pre-tested loop
// Example: "While n > 0 ... End While"
type WhileStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   *BlockStmt
}

// DoStmt represents Do/Loop in its four spellings. Until inverts the
// condition sense, PostTest places the test after the body.
// Example: "Do While x < 3 ... Loop", "Do ... Loop Until done"
type DoStmt struct {
	Pos      Position
	EndPos   Position
	Cond     Expr
	Until    bool
	PostTest bool
	Body     *BlockStmt
}

// TryStmt represents Try/Catch/Finally
// Example: "Try ... Catch e As Error ... Finally ... End Try"
type TryStmt struct {
	Pos     Position
	EndPos  Position
	Body    *BlockStmt
	Catches []*CatchClause
	Finally *BlockStmt // nil when absent
}

// CatchClause is one Catch arm with an optional typed binding
type CatchClause struct {
	Pos    Position
	EndPos Position
	Var    *Ident   // nil for a bare Catch
	Type   *TypeRef // nil when untyped
	Body   *BlockStmt
}

// ReturnStmt represents a return, with or without a value
// Example: "Return n * 2", "Return"
type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr // nil for a bare Return
}

// ExitKind names the construct an Exit statement leaves.
type ExitKind int

const (
	ExitFor ExitKind = iota
	ExitWhile
	ExitDo
	ExitSelect
	ExitSub
	ExitFunction
)

func (k ExitKind) String() string {
	switch k {
	case ExitFor:
		return "For"
	case ExitWhile:
		return "While"
	case ExitDo:
		return "Do"
	case ExitSelect:
		return "Select"
	case ExitSub:
		return "Sub"
	case ExitFunction:
		return "Function"
	default:
		return "?"
	}
}

// ExitStmt represents "Exit For", "Exit Sub", etc.
type ExitStmt struct {
	Pos    Position
	EndPos Position
	Kind   ExitKind
}

// AssignOp is the operator of an assignment statement.
type AssignOp int

const (
	Assign AssignOp = iota
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
)

func (op AssignOp) String() string {
	switch op {
	case PlusAssign:
		return "+="
	case MinusAssign:
		return "-="
	case StarAssign:
		return "*="
	case SlashAssign:
		return "/="
	default:
		return "="
	}
}

// AssignStmt represents an assignment recognized at statement level; the
// target is validated structurally (must be addressable), not grammatically.
// Example: "x = 42", "account.Balance += amount", "cells(i) = v"
type AssignStmt struct {
	Pos    Position
	EndPos Position
	Target Expr
	Op     AssignOp
	Value  Expr
}

// ExprStmt wraps an expression evaluated for its effect
// Example: "Print(total)"
type ExprStmt struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}
