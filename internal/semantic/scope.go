package semantic

import (
	"strings"

	"github.com/gracepriest/BasicLangvb-sub002/internal/ast"
	"github.com/gracepriest/BasicLangvb-sub002/internal/types"
)

// SymbolKind classifies what a name refers to.
type SymbolKind int

const (
	VariableSymbol SymbolKind = iota
	ConstantSymbol
	ParameterSymbol
	RoutineSymbol
	TypeSymbol
)

var symbolKindNames = map[SymbolKind]string{
	VariableSymbol:  "variable",
	ConstantSymbol:  "constant",
	ParameterSymbol: "parameter",
	RoutineSymbol:   "routine",
	TypeSymbol:      "type",
}

func (k SymbolKind) String() string {
	if name, ok := symbolKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Symbol is one named entity. For routines, Params and Result carry the
// signature; Result is the Void type for Subs.
type Symbol struct {
	Name   string
	Kind   SymbolKind
	Type   *types.TypeInfo
	Decl   ast.Node
	Params []*types.TypeInfo
	Result *types.TypeInfo
	IsSub  bool
}

// ScopeKind records what construct opened a scope. Return validation climbs
// to the nearest routine scope; everything else only needs the chain.
type ScopeKind int

const (
	GlobalScope ScopeKind = iota
	NamespaceScope
	ModuleScope
	ClassScope
	RoutineScope
	BlockScope
)

// Scope is one level of the lexical chain. Names are case-insensitive, like
// everything else in the language.
type Scope struct {
	kind    ScopeKind
	parent  *Scope
	symbols map[string]*Symbol

	// routine is set on RoutineScope entries so FunctionScope callers can
	// see which routine they are inside.
	routine *ast.FunctionDecl
}

func NewScope(kind ScopeKind, parent *Scope) *Scope {
	return &Scope{
		kind:    kind,
		parent:  parent,
		symbols: make(map[string]*Symbol),
	}
}

// Define adds a symbol to this scope. It returns false when the name is
// already taken here; shadowing an outer scope is always permitted.
func (s *Scope) Define(sym *Symbol) bool {
	key := strings.ToLower(sym.Name)
	if _, exists := s.symbols[key]; exists {
		return false
	}
	s.symbols[key] = sym
	return true
}

// Resolve walks the chain to the root looking for a name.
func (s *Scope) Resolve(name string) *Symbol {
	key := strings.ToLower(name)
	for scope := s; scope != nil; scope = scope.parent {
		if sym, ok := scope.symbols[key]; ok {
			return sym
		}
	}
	return nil
}

// ResolveLocal looks only in this scope.
func (s *Scope) ResolveLocal(name string) *Symbol {
	return s.symbols[strings.ToLower(name)]
}

// FunctionScope climbs to the nearest enclosing routine scope, or nil at
// top level. Return statements are valid exactly when this is non-nil.
func (s *Scope) FunctionScope() *Scope {
	for scope := s; scope != nil; scope = scope.parent {
		if scope.kind == RoutineScope {
			return scope
		}
	}
	return nil
}

// Routine returns the routine a RoutineScope belongs to.
func (s *Scope) Routine() *ast.FunctionDecl {
	return s.routine
}
