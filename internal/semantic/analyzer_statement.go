package semantic

import (
	"github.com/gracepriest/BasicLangvb-sub002/internal/ast"
	"github.com/gracepriest/BasicLangvb-sub002/internal/errors"
	"github.com/gracepriest/BasicLangvb-sub002/internal/types"
)

func (a *Analyzer) analyzeBlock(block *ast.BlockStmt) {
	a.pushScope(BlockScope)
	for _, stmt := range block.Items {
		a.analyzeStmt(stmt)
	}
	a.popScope()
}

func (a *Analyzer) analyzeStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.DimDecl:
		a.defineValue(s, s.Name, VariableSymbol, s.Type, s.Init)
	case *ast.ConstDecl:
		a.defineValue(s, s.Name, ConstantSymbol, s.Type, s.Value)
	case *ast.AssignStmt:
		a.analyzeAssign(s)
	case *ast.ExprStmt:
		a.analyzeExprStmt(s)
	case *ast.IfStmt:
		a.analyzeIf(s)
	case *ast.SelectStmt:
		a.analyzeSelect(s)
	case *ast.ForStmt:
		a.analyzeFor(s)
	case *ast.ForEachStmt:
		a.analyzeForEach(s)
	case *ast.WhileStmt:
		a.analyzeWhile(s)
	case *ast.DoStmt:
		a.analyzeDo(s)
	case *ast.TryStmt:
		a.analyzeTry(s)
	case *ast.ReturnStmt:
		a.analyzeReturn(s)
	case *ast.ExitStmt:
		a.analyzeExit(s)
	}
}

func (a *Analyzer) analyzeAssign(s *ast.AssignStmt) {
	targetType := a.analyzeExpr(s.Target)
	valueType := a.operandType(s.Value)

	// A Const target is an error even when the types line up.
	if ident, ok := s.Target.(*ast.IdentExpr); ok {
		if sym := a.result.SymbolOf(ident); sym != nil && sym.Kind == ConstantSymbol {
			a.report(errors.AssignToConstant(ident.Name, ident.Pos))
			return
		}
	}
	if call, ok := s.Target.(*ast.CallExpr); ok && !a.result.IsArrayAccess(call) {
		a.report(errors.NewError(errors.ErrorNotAssignable,
			"cannot assign to the result of a call", s.Target.NodePos()).Build())
		return
	}

	if targetType == nil || valueType == nil {
		return
	}

	if s.Op != ast.Assign {
		// Compound assignment needs the arithmetic operator to be defined
		// for the operand types first.
		if !targetType.IsNumeric() || !valueType.IsNumeric() {
			a.report(errors.InvalidOperation(s.Op.String(), targetType.String(), valueType.String(), s))
			return
		}
	}
	if !a.catalog.IsAssignableFrom(targetType, valueType) {
		a.report(errors.TypeMismatch(targetType.String(), valueType.String(), s.Value))
	}
}

func (a *Analyzer) analyzeExprStmt(s *ast.ExprStmt) {
	a.analyzeExpr(s.Expr)

	// Calls and increments have effects; a bare arithmetic expression at
	// statement level computes a value nobody reads.
	switch s.Expr.(type) {
	case *ast.CallExpr, *ast.IncDecExpr, *ast.NewExpr:
	default:
		a.report(errors.NewWarning(errors.WarningValueDiscarded,
			"expression result is discarded", s.NodePos()).Build())
	}
}

func (a *Analyzer) requireBoolean(cond ast.Expr) {
	condType := a.operandType(cond)
	if condType != nil && condType != a.catalog.Boolean() {
		a.report(errors.ConditionNotBoolean(condType.String(), cond))
	}
}

func (a *Analyzer) analyzeIf(s *ast.IfStmt) {
	a.requireBoolean(s.Cond)
	a.analyzeBlock(s.Then)
	for _, clause := range s.ElseIfs {
		a.requireBoolean(clause.Cond)
		a.analyzeBlock(clause.Body)
	}
	if s.Else != nil {
		a.analyzeBlock(s.Else)
	}
}

func (a *Analyzer) analyzeSelect(s *ast.SelectStmt) {
	valueType := a.operandType(s.Value)

	a.selectDepth++
	for _, clause := range s.Cases {
		for _, candidate := range clause.Values {
			candidateType := a.operandType(candidate)
			if valueType != nil && candidateType != nil && !a.catalog.AreCompatible(valueType, candidateType) {
				a.report(errors.TypeMismatch(valueType.String(), candidateType.String(), candidate))
			}
		}
		a.analyzeBlock(clause.Body)
	}
	if s.Else != nil {
		a.analyzeBlock(s.Else)
	}
	a.selectDepth--
}

func (a *Analyzer) analyzeFor(s *ast.ForStmt) {
	fromType := a.operandType(s.From)
	toType := a.operandType(s.To)
	var stepType *types.TypeInfo
	if s.Step != nil {
		stepType = a.operandType(s.Step)
	}

	for _, bound := range []struct {
		t    *types.TypeInfo
		node ast.Expr
	}{{fromType, s.From}, {toType, s.To}, {stepType, s.Step}} {
		if bound.t != nil && !bound.t.IsNumeric() {
			a.report(errors.TypeMismatch("Integer", bound.t.String(), bound.node))
		}
	}

	// The loop variable lives in the loop's own scope and takes the common
	// type of the bounds.
	varType := a.catalog.CommonType(fromType, toType)
	if varType == nil || !varType.IsNumeric() {
		varType = a.catalog.Integer()
	}

	a.pushScope(BlockScope)
	loopSym := &Symbol{Name: s.Var.Value, Kind: VariableSymbol, Type: varType, Decl: s}
	a.scope.Define(loopSym)
	a.result.setSymbol(s, loopSym)

	a.forDepth++
	a.analyzeBlock(s.Body)
	a.forDepth--
	a.popScope()
}

func (a *Analyzer) analyzeForEach(s *ast.ForEachStmt) {
	collectionType := a.operandType(s.Collection)

	elementType := a.catalog.Integer()
	if collectionType != nil {
		if collectionType.Kind == types.KindArray {
			elementType = collectionType.Element
		} else {
			a.report(errors.NewError(errors.ErrorNotIndexable,
				"For Each requires an array, not "+collectionType.String(),
				s.Collection.NodePos()).Build())
		}
	}

	a.pushScope(BlockScope)
	loopSym := &Symbol{Name: s.Var.Value, Kind: VariableSymbol, Type: elementType, Decl: s}
	a.scope.Define(loopSym)
	a.result.setSymbol(s, loopSym)

	a.forDepth++
	a.analyzeBlock(s.Body)
	a.forDepth--
	a.popScope()
}

func (a *Analyzer) analyzeWhile(s *ast.WhileStmt) {
	a.requireBoolean(s.Cond)
	a.whileDepth++
	a.analyzeBlock(s.Body)
	a.whileDepth--
}

func (a *Analyzer) analyzeDo(s *ast.DoStmt) {
	a.requireBoolean(s.Cond)
	a.doDepth++
	a.analyzeBlock(s.Body)
	a.doDepth--
}

func (a *Analyzer) analyzeTry(s *ast.TryStmt) {
	a.analyzeBlock(s.Body)

	for _, clause := range s.Catches {
		a.pushScope(BlockScope)
		if clause.Var != nil {
			caughtType := a.catalog.ErrorClass()
			if clause.Type != nil {
				if resolved := a.resolveTypeRef(clause.Type); resolved != nil {
					caughtType = resolved
				}
			}
			sym := &Symbol{Name: clause.Var.Value, Kind: VariableSymbol, Type: caughtType, Decl: clause}
			a.scope.Define(sym)
			a.result.setSymbol(clause, sym)
		}
		a.analyzeBlock(clause.Body)
		a.popScope()
	}

	if s.Finally != nil {
		a.analyzeBlock(s.Finally)
	}
}

func (a *Analyzer) analyzeReturn(s *ast.ReturnStmt) {
	fnScope := a.scope.FunctionScope()
	if fnScope == nil {
		a.report(errors.ReturnOutsideRoutine(s.Pos))
		if s.Value != nil {
			a.analyzeExpr(s.Value)
		}
		return
	}

	fn := fnScope.Routine()
	if fn.IsSub {
		if s.Value != nil {
			a.analyzeExpr(s.Value)
			a.report(errors.ReturnValueFromSub(s))
		}
		return
	}

	returnType := a.resolveTypeRef(fn.Return)
	if s.Value == nil {
		name := "the declared type"
		if returnType != nil {
			name = returnType.String()
		}
		a.report(errors.MissingReturnValue(name, s.Pos))
		return
	}

	valueType := a.operandType(s.Value)
	if returnType != nil && valueType != nil && !a.catalog.IsAssignableFrom(returnType, valueType) {
		a.report(errors.TypeMismatch(returnType.String(), valueType.String(), s.Value))
	}
}

func (a *Analyzer) analyzeExit(s *ast.ExitStmt) {
	ok := false
	switch s.Kind {
	case ast.ExitFor:
		ok = a.forDepth > 0
	case ast.ExitWhile:
		ok = a.whileDepth > 0
	case ast.ExitDo:
		ok = a.doDepth > 0
	case ast.ExitSelect:
		ok = a.selectDepth > 0
	case ast.ExitSub:
		ok = a.currentFn != nil && a.currentFn.IsSub
	case ast.ExitFunction:
		ok = a.currentFn != nil && !a.currentFn.IsSub
	}
	if !ok {
		a.report(errors.ExitOutsideConstruct(s.Kind.String(), s.Pos))
	}
}
