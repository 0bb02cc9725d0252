package semantic

import (
	"github.com/gracepriest/BasicLangvb-sub002/internal/ast"
	"github.com/gracepriest/BasicLangvb-sub002/internal/errors"
	"github.com/gracepriest/BasicLangvb-sub002/internal/types"
)

// Result is what analysis produces: the accumulated diagnostics plus
// identity-keyed annotation maps. Nodes stay immutable; every fact the
// later stages need is looked up here by node pointer.
type Result struct {
	Diagnostics []errors.CompilerError

	exprTypes   map[ast.Expr]*types.TypeInfo
	symbols     map[ast.Node]*Symbol
	arrayAccess map[*ast.CallExpr]bool
}

func newResult() *Result {
	return &Result{
		exprTypes:   make(map[ast.Expr]*types.TypeInfo),
		symbols:     make(map[ast.Node]*Symbol),
		arrayAccess: make(map[*ast.CallExpr]bool),
	}
}

// Success reports whether analysis finished without error-severity
// diagnostics. Warnings alone do not fail a compilation.
func (r *Result) Success() bool {
	return !errors.HasErrors(r.Diagnostics)
}

// TypeOf returns the type recorded for an expression, or nil when the
// expression never typed (because of an earlier error).
func (r *Result) TypeOf(expr ast.Expr) *types.TypeInfo {
	return r.exprTypes[expr]
}

// SymbolOf returns the symbol a name node resolved to.
func (r *Result) SymbolOf(node ast.Node) *Symbol {
	return r.symbols[node]
}

// IsArrayAccess reports whether a call expression is actually array
// indexing. Calls and element access share parenthesized syntax; the
// analyzer settles each one from the callee's resolved symbol.
func (r *Result) IsArrayAccess(call *ast.CallExpr) bool {
	return r.arrayAccess[call]
}

func (r *Result) setType(expr ast.Expr, t *types.TypeInfo) *types.TypeInfo {
	if t != nil {
		r.exprTypes[expr] = t
	}
	return t
}

func (r *Result) setSymbol(node ast.Node, sym *Symbol) {
	if sym != nil {
		r.symbols[node] = sym
	}
}
