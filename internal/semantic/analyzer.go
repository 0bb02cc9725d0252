package semantic

import (
	"fmt"

	"github.com/gracepriest/BasicLangvb-sub002/internal/ast"
	"github.com/gracepriest/BasicLangvb-sub002/internal/errors"
	"github.com/gracepriest/BasicLangvb-sub002/internal/stdlib"
	"github.com/gracepriest/BasicLangvb-sub002/internal/types"
)

// Analyzer walks the AST once per file, accumulating diagnostics rather
// than stopping at the first problem. Declarations register symbols and
// types in two passes so routines can call each other regardless of
// declaration order.
type Analyzer struct {
	catalog *types.Catalog
	result  *Result
	scope   *Scope

	currentFn *ast.FunctionDecl

	// Enclosing-construct depths, for validating Exit statements.
	forDepth    int
	whileDepth  int
	doDepth     int
	selectDepth int
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		catalog: types.NewCatalog(),
	}
}

// Catalog exposes the type catalog built during analysis; the IR builder
// reuses it for value types.
func (a *Analyzer) Catalog() *types.Catalog {
	return a.catalog
}

// Analyze checks one file and returns the accumulated result. A panic
// inside the walk is a compiler bug; it is recovered here and surfaced as
// a synthetic internal-error diagnostic so callers always get a Result.
func (a *Analyzer) Analyze(file *ast.File) (result *Result) {
	a.result = newResult()
	a.scope = NewScope(GlobalScope, nil)
	result = a.result

	defer func() {
		if r := recover(); r != nil {
			a.report(errors.Internal(fmt.Sprint(r), file.NodePos()))
			result = a.result
		}
	}()

	a.declareAll(file.Decls)
	a.analyzeAll(file.Decls)

	errors.SortByPosition(a.result.Diagnostics)
	return a.result
}

func (a *Analyzer) report(err errors.CompilerError) {
	a.result.Diagnostics = append(a.result.Diagnostics, err)
}

func (a *Analyzer) pushScope(kind ScopeKind) {
	a.scope = NewScope(kind, a.scope)
}

func (a *Analyzer) popScope() {
	a.scope = a.scope.parent
}

// resolveTypeRef maps a syntactic type reference to a TypeInfo, reporting
// unknown names. Generic and array forms are built structurally.
func (a *Analyzer) resolveTypeRef(ref *ast.TypeRef) *types.TypeInfo {
	if ref == nil {
		return nil
	}

	var base *types.TypeInfo
	if len(ref.Generics) > 0 {
		args := make([]*types.TypeInfo, 0, len(ref.Generics))
		for _, g := range ref.Generics {
			arg := a.resolveTypeRef(g)
			if arg == nil {
				return nil
			}
			args = append(args, arg)
		}
		base = a.catalog.GenericOf(ref.Name.Value, args)
	} else {
		base = a.catalog.Get(ref.Name.Value)
		if base == nil {
			a.report(errors.UndefinedType(ref.Name.Value, ref.Name.Pos))
			return nil
		}
		if base.Kind == types.KindVoid {
			a.report(errors.UndefinedType(ref.Name.Value, ref.Name.Pos))
			return nil
		}
	}

	if ref.ArrayRank > 0 {
		base = a.catalog.ArrayOf(base, ref.ArrayRank)
	}
	if ref.IsPointer {
		base = a.catalog.PointerOf(base)
	}
	return base
}

// routineSymbol builds the symbol for a Sub or Function declaration.
func (a *Analyzer) routineSymbol(fn *ast.FunctionDecl) *Symbol {
	sym := &Symbol{
		Name:  fn.Name.Value,
		Kind:  RoutineSymbol,
		Decl:  fn,
		IsSub: fn.IsSub,
	}
	for _, p := range fn.Params {
		sym.Params = append(sym.Params, a.resolveTypeRef(p.Type))
	}
	if fn.IsSub {
		sym.Result = a.catalog.Void()
	} else {
		sym.Result = a.resolveTypeRef(fn.Return)
	}
	return sym
}

// stdlibSymbol materializes a runtime routine's signature as a symbol.
func (a *Analyzer) stdlibSymbol(def stdlib.RoutineDefinition) *Symbol {
	sym := &Symbol{
		Name:  def.Name,
		Kind:  RoutineSymbol,
		IsSub: def.ReturnType == nil,
	}
	for _, p := range def.Parameters {
		sym.Params = append(sym.Params, a.stdlibType(p.Type))
	}
	if def.ReturnType != nil {
		sym.Result = a.stdlibType(*def.ReturnType)
	} else {
		sym.Result = a.catalog.Void()
	}
	return sym
}

func (a *Analyzer) stdlibType(ref stdlib.TypeRef) *types.TypeInfo {
	t := a.catalog.Get(ref.Name)
	if t != nil && ref.Rank > 0 {
		t = a.catalog.ArrayOf(t, ref.Rank)
	}
	return t
}
