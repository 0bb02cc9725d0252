package semantic

import (
	"github.com/gracepriest/BasicLangvb-sub002/internal/ast"
	"github.com/gracepriest/BasicLangvb-sub002/internal/errors"
	"github.com/gracepriest/BasicLangvb-sub002/internal/types"
)

// declareAll is the first pass: register every named type and every
// module-level routine, variable, and constant before any body is checked,
// so declaration order never matters. Type shells go in first, then their
// members, because a member can reference a type declared later in the
// file.
func (a *Analyzer) declareAll(decls []ast.Decl) {
	a.collectTypes(decls)
	a.fillTypes(decls)
	a.collectValues(decls)
}

func (a *Analyzer) collectTypes(decls []ast.Decl) {
	for _, decl := range decls {
		switch d := decl.(type) {
		case *ast.NamespaceDecl:
			a.collectTypes(d.Decls)
		case *ast.ModuleDecl:
			a.collectTypes(d.Decls)
		case *ast.ClassDecl:
			a.defineTypeShell(d.Name, types.KindClass, d)
		case *ast.StructureDecl:
			a.defineTypeShell(d.Name, types.KindStructure, d)
		case *ast.InterfaceDecl:
			a.defineTypeShell(d.Name, types.KindInterface, d)
		case *ast.EnumDecl:
			a.defineTypeShell(d.Name, types.KindEnum, d)
		case *ast.DelegateDecl:
			a.defineTypeShell(d.Name, types.KindDelegate, d)
		}
	}
}

func (a *Analyzer) defineTypeShell(name ast.Ident, kind types.TypeKind, decl ast.Decl) {
	info := &types.TypeInfo{Name: name.Value, Kind: kind}
	if !a.catalog.Define(info) {
		a.report(errors.DuplicateDeclaration(name.Value, name.Pos))
		return
	}
	sym := &Symbol{Name: name.Value, Kind: TypeSymbol, Type: info, Decl: decl}
	a.scope.Define(sym)
	a.result.setSymbol(decl, sym)
}

func (a *Analyzer) fillTypes(decls []ast.Decl) {
	for _, decl := range decls {
		switch d := decl.(type) {
		case *ast.NamespaceDecl:
			a.fillTypes(d.Decls)
		case *ast.ModuleDecl:
			a.fillTypes(d.Decls)
		case *ast.ClassDecl:
			a.fillClass(d)
		case *ast.StructureDecl:
			a.fillComposite(d.Name, d.Members)
		case *ast.InterfaceDecl:
			a.fillComposite(d.Name, d.Members)
		case *ast.EnumDecl:
			a.fillEnum(d)
		case *ast.DelegateDecl:
			a.fillDelegate(d)
		}
	}
}

func (a *Analyzer) fillClass(d *ast.ClassDecl) {
	info := a.catalog.Get(d.Name.Value)
	if info == nil || info.Kind != types.KindClass {
		return // duplicate shell; already reported
	}

	if d.Inherits != nil {
		base := a.resolveTypeRef(d.Inherits)
		if base != nil {
			if base.Kind != types.KindClass {
				a.report(errors.NewError(errors.ErrorTypeMismatch,
					"'"+base.Name+"' is not a class and cannot be inherited", d.Inherits.Pos).Build())
			} else {
				info.Base = base
			}
		}
	}
	for _, impl := range d.Implements {
		iface := a.resolveTypeRef(impl)
		if iface != nil {
			if iface.Kind != types.KindInterface {
				a.report(errors.NewError(errors.ErrorTypeMismatch,
					"'"+iface.Name+"' is not an interface", impl.Pos).Build())
			} else {
				info.Interfaces = append(info.Interfaces, iface)
			}
		}
	}

	a.fillMembers(info, d.Members)
}

func (a *Analyzer) fillComposite(name ast.Ident, members []ast.Decl) {
	info := a.catalog.Get(name.Value)
	if info == nil {
		return
	}
	a.fillMembers(info, members)
}

func (a *Analyzer) fillMembers(info *types.TypeInfo, members []ast.Decl) {
	for _, member := range members {
		switch m := member.(type) {
		case *ast.DimDecl:
			a.addMember(info, m.Name, &types.Member{
				Name: m.Name.Value,
				Kind: types.FieldMember,
				Type: a.memberValueType(m.Type, m.Init),
			})
		case *ast.ConstDecl:
			a.addMember(info, m.Name, &types.Member{
				Name: m.Name.Value,
				Kind: types.ConstantMember,
				Type: a.memberValueType(m.Type, m.Value),
			})
		case *ast.FunctionDecl:
			method := &types.Member{
				Name: m.Name.Value,
				Kind: types.MethodMember,
			}
			for _, p := range m.Params {
				method.Params = append(method.Params, a.resolveTypeRef(p.Type))
			}
			if !m.IsSub {
				method.Type = a.resolveTypeRef(m.Return)
			}
			a.addMember(info, m.Name, method)
		}
	}
}

func (a *Analyzer) addMember(info *types.TypeInfo, name ast.Ident, member *types.Member) {
	if info.Member(name.Value) != nil {
		a.report(errors.DuplicateDeclaration(name.Value, name.Pos))
		return
	}
	info.Members = append(info.Members, member)
}

// memberValueType resolves a field's declared type, falling back to the
// initializer's literal type for inferred fields.
func (a *Analyzer) memberValueType(ref *ast.TypeRef, init ast.Expr) *types.TypeInfo {
	if ref != nil {
		return a.resolveTypeRef(ref)
	}
	if init != nil {
		return a.analyzeExpr(init)
	}
	return nil
}

func (a *Analyzer) fillEnum(d *ast.EnumDecl) {
	info := a.catalog.Get(d.Name.Value)
	if info == nil || info.Kind != types.KindEnum {
		return
	}
	for _, m := range d.Members {
		if m.Value != nil {
			valueType := a.analyzeExpr(m.Value)
			if valueType != nil && !valueType.IsNumeric() {
				a.report(errors.TypeMismatch("Integer", valueType.String(), m.Value))
			}
		}
		a.addMember(info, m.Name, &types.Member{
			Name: m.Name.Value,
			Kind: types.ConstantMember,
			Type: info,
		})
	}
}

func (a *Analyzer) fillDelegate(d *ast.DelegateDecl) {
	info := a.catalog.Get(d.Name.Value)
	if info == nil || info.Kind != types.KindDelegate {
		return
	}
	invoke := &types.Member{Name: "Invoke", Kind: types.MethodMember}
	for _, p := range d.Params {
		invoke.Params = append(invoke.Params, a.resolveTypeRef(p.Type))
	}
	if !d.IsSub {
		invoke.Type = a.resolveTypeRef(d.Return)
	}
	info.Members = append(info.Members, invoke)
}

// collectValues registers module-level routines, variables, and constants.
// Module members are visible program-wide, so they land in the global
// scope; bodies later shadow them with locals as usual.
func (a *Analyzer) collectValues(decls []ast.Decl) {
	for _, decl := range decls {
		switch d := decl.(type) {
		case *ast.NamespaceDecl:
			a.collectValues(d.Decls)
		case *ast.ModuleDecl:
			a.collectValues(d.Decls)
		case *ast.FunctionDecl:
			sym := a.routineSymbol(d)
			if !a.scope.Define(sym) {
				a.report(errors.DuplicateDeclaration(d.Name.Value, d.Name.Pos))
				continue
			}
			a.result.setSymbol(d, sym)
		case *ast.DimDecl:
			a.defineValue(d, d.Name, VariableSymbol, d.Type, d.Init)
		case *ast.ConstDecl:
			a.defineValue(d, d.Name, ConstantSymbol, d.Type, d.Value)
		}
	}
}

func (a *Analyzer) defineValue(decl ast.Node, name ast.Ident, kind SymbolKind, ref *ast.TypeRef, init ast.Expr) *Symbol {
	declared := a.resolveTypeRef(ref)

	var initType *types.TypeInfo
	if init != nil {
		initType = a.operandType(init)
	}

	valueType := declared
	if valueType == nil {
		valueType = initType
	} else if initType != nil && !a.catalog.IsAssignableFrom(valueType, initType) {
		a.report(errors.TypeMismatch(valueType.String(), initType.String(), init))
	}

	sym := &Symbol{Name: name.Value, Kind: kind, Type: valueType, Decl: decl}
	if !a.scope.Define(sym) {
		a.report(errors.DuplicateDeclaration(name.Value, name.Pos))
		return nil
	}
	a.result.setSymbol(decl, sym)
	return sym
}

// analyzeAll is the second pass: check every routine body with the full
// symbol and type context in place.
func (a *Analyzer) analyzeAll(decls []ast.Decl) {
	for _, decl := range decls {
		switch d := decl.(type) {
		case *ast.NamespaceDecl:
			a.pushScope(NamespaceScope)
			a.analyzeAll(d.Decls)
			a.popScope()
		case *ast.ModuleDecl:
			a.pushScope(ModuleScope)
			a.analyzeAll(d.Decls)
			a.popScope()
		case *ast.ClassDecl:
			a.analyzeClassBodies(d)
		case *ast.StructureDecl:
			a.analyzeMethodBodies(d.Name, d.Members)
		case *ast.FunctionDecl:
			a.analyzeRoutineBody(d)
		}
	}
}

// analyzeClassBodies opens a class scope, brings the fields and methods in
// as symbols (inherited members included), and then checks each method.
func (a *Analyzer) analyzeClassBodies(d *ast.ClassDecl) {
	info := a.catalog.Get(d.Name.Value)
	if info == nil {
		return
	}

	a.pushScope(ClassScope)
	for t := info; t != nil; t = t.Base {
		a.defineMemberSymbols(t)
	}
	for _, member := range d.Members {
		if fn, ok := member.(*ast.FunctionDecl); ok {
			a.analyzeRoutineBody(fn)
		}
	}
	a.popScope()
}

func (a *Analyzer) analyzeMethodBodies(name ast.Ident, members []ast.Decl) {
	info := a.catalog.Get(name.Value)
	if info == nil {
		return
	}

	a.pushScope(ClassScope)
	a.defineMemberSymbols(info)
	for _, member := range members {
		if fn, ok := member.(*ast.FunctionDecl); ok && fn.Body != nil {
			a.analyzeRoutineBody(fn)
		}
	}
	a.popScope()
}

func (a *Analyzer) defineMemberSymbols(info *types.TypeInfo) {
	for _, m := range info.Members {
		sym := &Symbol{Name: m.Name, Type: m.Type}
		switch m.Kind {
		case types.FieldMember:
			sym.Kind = VariableSymbol
		case types.ConstantMember:
			sym.Kind = ConstantSymbol
		case types.MethodMember:
			sym.Kind = RoutineSymbol
			sym.Params = m.Params
			if m.Type == nil {
				sym.Result = a.catalog.Void()
				sym.IsSub = true
			} else {
				sym.Result = m.Type
			}
		}
		a.scope.Define(sym)
	}
}

func (a *Analyzer) analyzeRoutineBody(fn *ast.FunctionDecl) {
	if fn.Body == nil {
		return
	}

	prev := a.currentFn
	a.currentFn = fn

	a.scope = &Scope{
		kind:    RoutineScope,
		parent:  a.scope,
		symbols: make(map[string]*Symbol),
		routine: fn,
	}

	for _, p := range fn.Params {
		sym := &Symbol{
			Name: p.Name.Value,
			Kind: ParameterSymbol,
			Type: a.resolveTypeRef(p.Type),
			Decl: p,
		}
		if !a.scope.Define(sym) {
			a.report(errors.DuplicateDeclaration(p.Name.Value, p.Name.Pos))
		}
		a.result.setSymbol(p, sym)
	}

	a.analyzeBlock(fn.Body)

	a.popScope()
	a.currentFn = prev
}
