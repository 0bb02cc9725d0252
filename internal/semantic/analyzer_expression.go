package semantic

import (
	"strings"

	"github.com/gracepriest/BasicLangvb-sub002/internal/ast"
	"github.com/gracepriest/BasicLangvb-sub002/internal/errors"
	"github.com/gracepriest/BasicLangvb-sub002/internal/stdlib"
	"github.com/gracepriest/BasicLangvb-sub002/internal/types"
)

// analyzeExpr types one expression, recording the result in the Result
// maps. A nil return means the expression failed to type; callers treat
// nil as "already reported" and stay quiet to avoid cascading diagnostics.
func (a *Analyzer) analyzeExpr(expr ast.Expr) *types.TypeInfo {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return a.result.setType(e, a.literalType(e))
	case *ast.IdentExpr:
		return a.result.setType(e, a.analyzeIdent(e))
	case *ast.BinaryExpr:
		return a.result.setType(e, a.analyzeBinary(e))
	case *ast.UnaryExpr:
		return a.result.setType(e, a.analyzeUnary(e))
	case *ast.MemberExpr:
		return a.result.setType(e, a.analyzeMember(e))
	case *ast.CallExpr:
		return a.result.setType(e, a.analyzeCall(e))
	case *ast.NewExpr:
		return a.result.setType(e, a.analyzeNew(e))
	case *ast.CastExpr:
		return a.result.setType(e, a.analyzeCast(e))
	case *ast.ArrayLiteralExpr:
		return a.result.setType(e, a.analyzeArrayLiteral(e))
	case *ast.IncDecExpr:
		return a.result.setType(e, a.analyzeIncDec(e))
	case *ast.DerefExpr:
		return a.result.setType(e, a.analyzeDeref(e))
	case *ast.ParenExpr:
		return a.result.setType(e, a.analyzeExpr(e.Value))
	case *ast.InterpolatedStringExpr:
		return a.result.setType(e, a.analyzeInterpolated(e))
	default:
		return nil
	}
}

// operandType types an expression for a value context, rejecting Sub
// calls, which produce nothing.
func (a *Analyzer) operandType(expr ast.Expr) *types.TypeInfo {
	t := a.analyzeExpr(expr)
	if t != nil && t.Kind == types.KindVoid {
		name := "this call"
		if call, ok := expr.(*ast.CallExpr); ok {
			if ident, ok := call.Callee.(*ast.IdentExpr); ok {
				name = ident.Name
			}
		}
		a.report(errors.VoidInExpression(name, expr))
		return nil
	}
	return t
}

func (a *Analyzer) literalType(e *ast.LiteralExpr) *types.TypeInfo {
	switch e.Kind {
	case ast.IntegerLit:
		return a.catalog.Integer()
	case ast.LongLit:
		return a.catalog.Long()
	case ast.SingleLit:
		return a.catalog.Single()
	case ast.DoubleLit:
		return a.catalog.Double()
	case ast.StringLit:
		return a.catalog.StringType()
	case ast.BooleanLit:
		return a.catalog.Boolean()
	default:
		return nil
	}
}

func (a *Analyzer) analyzeIdent(e *ast.IdentExpr) *types.TypeInfo {
	sym := a.scope.Resolve(e.Name)
	if sym == nil {
		a.report(errors.UndefinedVariable(e.Name, e.Pos))
		return nil
	}
	a.result.setSymbol(e, sym)

	switch sym.Kind {
	case TypeSymbol:
		a.report(errors.NewError(errors.ErrorTypeMismatch,
			"type '"+sym.Name+"' cannot be used as a value", e.Pos).
			WithLength(len(e.Name)).Build())
		return nil
	case RoutineSymbol:
		// A bare routine name only makes sense as a call; the call path
		// resolves it itself, so reaching here is a misuse.
		a.report(errors.NewError(errors.ErrorTypeMismatch,
			"routine '"+sym.Name+"' must be called", e.Pos).
			WithLength(len(e.Name)).Build())
		return nil
	default:
		return sym.Type
	}
}

func isFloat(t *types.TypeInfo) bool {
	if t == nil {
		return false
	}
	name := strings.ToLower(t.Name)
	return t.Kind == types.KindPrimitive && (name == "single" || name == "double")
}

func isIntegral(t *types.TypeInfo) bool {
	if t == nil {
		return false
	}
	name := strings.ToLower(t.Name)
	return t.Kind == types.KindPrimitive && (name == "integer" || name == "long")
}

func (a *Analyzer) analyzeBinary(e *ast.BinaryExpr) *types.TypeInfo {
	left := a.operandType(e.Left)
	right := a.operandType(e.Right)
	if left == nil || right == nil {
		return nil
	}

	invalid := func() *types.TypeInfo {
		a.report(errors.InvalidOperation(e.Op, left.String(), right.String(), e))
		return nil
	}

	switch strings.ToLower(e.Op) {
	case "+", "-", "*":
		if left.IsNumeric() && right.IsNumeric() {
			return a.catalog.CommonType(left, right)
		}
		return invalid()

	case "/":
		// True division always produces a floating result; \ is the
		// integer form.
		if left.IsNumeric() && right.IsNumeric() {
			common := a.catalog.CommonType(left, right)
			if isIntegral(common) {
				return a.catalog.Double()
			}
			return common
		}
		return invalid()

	case "\\", "mod", "<<", ">>":
		if isIntegral(left) && isIntegral(right) {
			return a.catalog.CommonType(left, right)
		}
		return invalid()

	case "&":
		// Concatenation stringifies the other side, but one operand must
		// already be a String.
		if (left == a.catalog.StringType() || right == a.catalog.StringType()) &&
			left.Kind == types.KindPrimitive && right.Kind == types.KindPrimitive {
			return a.catalog.StringType()
		}
		return invalid()

	case "<", "<=", ">", ">=":
		if left.IsNumeric() && right.IsNumeric() {
			return a.catalog.Boolean()
		}
		return invalid()

	case "=", "<>":
		// Equality across unrelated types is legal but pointless, so it
		// warns instead of failing the compilation.
		if !a.catalog.AreCompatible(left, right) {
			a.report(errors.IncompatibleEquality(e.Op, left.String(), right.String(), e))
		} else if isFloat(left) || isFloat(right) {
			a.report(errors.FloatEquality(e))
		}
		return a.catalog.Boolean()

	case "and", "or":
		if left == a.catalog.Boolean() && right == a.catalog.Boolean() {
			return a.catalog.Boolean()
		}
		return invalid()

	default:
		return invalid()
	}
}

func (a *Analyzer) analyzeUnary(e *ast.UnaryExpr) *types.TypeInfo {
	value := a.operandType(e.Value)
	if value == nil {
		return nil
	}

	switch strings.ToLower(e.Op) {
	case "-", "+":
		if value.IsNumeric() {
			return value
		}
	case "not":
		if value == a.catalog.Boolean() {
			return value
		}
	}
	a.report(errors.InvalidOperation(e.Op, value.String(), value.String(), e))
	return nil
}

func (a *Analyzer) analyzeMember(e *ast.MemberExpr) *types.TypeInfo {
	// Type-name targets access static members: enum constants and class
	// constants.
	if ident, ok := e.Target.(*ast.IdentExpr); ok {
		if sym := a.scope.Resolve(ident.Name); sym != nil && sym.Kind == TypeSymbol {
			a.result.setSymbol(ident, sym)
			member := sym.Type.Member(e.Member)
			if member == nil {
				a.report(errors.MemberNotFound(sym.Type.String(), e.Member, e.Target.NodeEndPos()))
				return nil
			}
			return member.Type
		}
	}

	targetType := a.operandType(e.Target)
	if targetType == nil {
		return nil
	}

	member := targetType.Member(e.Member)
	if member == nil {
		a.report(errors.MemberNotFound(targetType.String(), e.Member, e.Target.NodeEndPos()))
		return nil
	}
	if member.Kind == types.MethodMember && member.Type == nil {
		return a.catalog.Void()
	}
	return member.Type
}

func (a *Analyzer) analyzeCall(e *ast.CallExpr) *types.TypeInfo {
	switch callee := e.Callee.(type) {
	case *ast.IdentExpr:
		return a.analyzeNamedCall(e, callee)
	case *ast.MemberExpr:
		return a.analyzeMethodCall(e, callee)
	default:
		// Anything else must itself evaluate to an array or delegate.
		calleeType := a.operandType(e.Callee)
		if calleeType == nil {
			return nil
		}
		return a.analyzeValueCall(e, calleeType, e.Callee.String())
	}
}

func (a *Analyzer) analyzeNamedCall(e *ast.CallExpr, callee *ast.IdentExpr) *types.TypeInfo {
	sym := a.scope.Resolve(callee.Name)
	if sym == nil {
		// Not in scope: the built-in runtime routines are the fallback.
		if def, ok := stdlib.Lookup(callee.Name); ok {
			builtin := a.stdlibSymbol(def)
			a.result.setSymbol(callee, builtin)
			a.checkArgs(builtin.Name, builtin.Params, e.Args, e)
			return builtin.Result
		}
		a.report(errors.UndefinedRoutine(callee.Name, callee.Pos))
		a.analyzeArgs(e.Args)
		return nil
	}
	a.result.setSymbol(callee, sym)

	switch sym.Kind {
	case RoutineSymbol:
		a.checkArgs(sym.Name, sym.Params, e.Args, e)
		return sym.Result
	case VariableSymbol, ParameterSymbol, ConstantSymbol:
		if sym.Type == nil {
			a.analyzeArgs(e.Args)
			return nil
		}
		return a.analyzeValueCall(e, sym.Type, sym.Name)
	default:
		a.report(errors.NotCallable(callee.Name, callee.Pos))
		a.analyzeArgs(e.Args)
		return nil
	}
}

func (a *Analyzer) analyzeMethodCall(e *ast.CallExpr, callee *ast.MemberExpr) *types.TypeInfo {
	targetType := a.operandType(callee.Target)
	if targetType == nil {
		a.analyzeArgs(e.Args)
		return nil
	}

	member := targetType.Member(callee.Member)
	if member == nil {
		a.report(errors.MemberNotFound(targetType.String(), callee.Member, callee.Target.NodeEndPos()))
		a.analyzeArgs(e.Args)
		return nil
	}

	switch member.Kind {
	case types.MethodMember:
		a.checkArgs(member.Name, member.Params, e.Args, e)
		if member.Type == nil {
			return a.catalog.Void()
		}
		return member.Type
	case types.FieldMember:
		if member.Type != nil {
			return a.analyzeValueCall(e, member.Type, member.Name)
		}
	}
	a.report(errors.NotCallable(callee.Member, callee.Target.NodeEndPos()))
	a.analyzeArgs(e.Args)
	return nil
}

// analyzeValueCall handles call syntax applied to a non-routine value:
// array indexing and delegate invocation.
func (a *Analyzer) analyzeValueCall(e *ast.CallExpr, valueType *types.TypeInfo, name string) *types.TypeInfo {
	switch valueType.Kind {
	case types.KindArray:
		a.result.arrayAccess[e] = true
		if len(e.Args) != valueType.Rank {
			a.report(errors.WrongIndexCount(valueType.Rank, len(e.Args), e))
		}
		for _, index := range e.Args {
			indexType := a.operandType(index)
			if indexType != nil && !isIntegral(indexType) {
				a.report(errors.TypeMismatch("Integer", indexType.String(), index))
			}
		}
		return valueType.Element

	case types.KindDelegate:
		if invoke := valueType.Member("Invoke"); invoke != nil {
			a.checkArgs(name, invoke.Params, e.Args, e)
			if invoke.Type == nil {
				return a.catalog.Void()
			}
			return invoke.Type
		}
	}

	a.report(errors.NotCallable(name, e.Callee.NodePos()))
	a.analyzeArgs(e.Args)
	return nil
}

func (a *Analyzer) analyzeArgs(args []ast.Expr) {
	for _, arg := range args {
		a.analyzeExpr(arg)
	}
}

func (a *Analyzer) checkArgs(name string, params []*types.TypeInfo, args []ast.Expr, at ast.Node) {
	if len(args) != len(params) {
		a.report(errors.WrongArgumentCount(name, len(params), len(args), at))
	}
	for i, arg := range args {
		argType := a.operandType(arg)
		if i >= len(params) || params[i] == nil || argType == nil {
			continue
		}
		if !a.catalog.IsAssignableFrom(params[i], argType) {
			a.report(errors.ArgumentType(name, params[i].String(), argType.String(), arg))
		}
	}
}

func (a *Analyzer) analyzeNew(e *ast.NewExpr) *types.TypeInfo {
	constructed := a.resolveTypeRef(e.Type)
	if constructed == nil {
		a.analyzeArgs(e.Args)
		return nil
	}

	if constructed.Kind != types.KindClass && constructed.Kind != types.KindStructure &&
		constructed.Kind != types.KindGeneric {
		a.report(errors.NewError(errors.ErrorTypeMismatch,
			"cannot construct a value of type "+constructed.String(), e.Type.Pos).Build())
		a.analyzeArgs(e.Args)
		return nil
	}

	// When the type declares a New method, the arguments are checked
	// against it; otherwise any argument list is accepted.
	if ctor := constructed.Member("New"); ctor != nil && ctor.Kind == types.MethodMember {
		a.checkArgs("New", ctor.Params, e.Args, e)
	} else {
		a.analyzeArgs(e.Args)
	}
	return constructed
}

func (a *Analyzer) analyzeCast(e *ast.CastExpr) *types.TypeInfo {
	target := a.resolveTypeRef(e.Type)
	source := a.operandType(e.Value)
	if target == nil {
		return nil
	}
	if source == nil {
		return target
	}

	ok := (source.IsNumeric() && target.IsNumeric()) ||
		a.catalog.AreCompatible(source, target) ||
		(source == a.catalog.StringType() && target.IsNumeric()) ||
		(target == a.catalog.StringType() && source.IsNumeric())
	if !ok {
		a.report(errors.InvalidCast(source.String(), target.String(), e))
	}
	return target
}

func (a *Analyzer) analyzeArrayLiteral(e *ast.ArrayLiteralExpr) *types.TypeInfo {
	if len(e.Elements) == 0 {
		return a.catalog.ArrayOf(a.catalog.Integer(), 1)
	}

	common := a.operandType(e.Elements[0])
	for _, element := range e.Elements[1:] {
		elementType := a.operandType(element)
		if common == nil || elementType == nil {
			continue
		}
		merged := a.catalog.CommonType(common, elementType)
		if merged == nil {
			a.report(errors.TypeMismatch(common.String(), elementType.String(), element))
			continue
		}
		common = merged
	}
	if common == nil {
		return nil
	}
	return a.catalog.ArrayOf(common, 1)
}

func (a *Analyzer) analyzeIncDec(e *ast.IncDecExpr) *types.TypeInfo {
	targetType := a.operandType(e.Target)
	if targetType == nil {
		return nil
	}

	if ident, ok := e.Target.(*ast.IdentExpr); ok {
		if sym := a.result.SymbolOf(ident); sym != nil && sym.Kind == ConstantSymbol {
			a.report(errors.AssignToConstant(ident.Name, ident.Pos))
			return nil
		}
	}
	if !targetType.IsNumeric() {
		a.report(errors.InvalidOperation(e.Op, targetType.String(), targetType.String(), e))
		return nil
	}
	return targetType
}

func (a *Analyzer) analyzeDeref(e *ast.DerefExpr) *types.TypeInfo {
	targetType := a.operandType(e.Target)
	if targetType == nil {
		return nil
	}
	if targetType.Kind != types.KindPointer {
		a.report(errors.InvalidOperation("^", targetType.String(), targetType.String(), e))
		return nil
	}
	return targetType.Element
}

func (a *Analyzer) analyzeInterpolated(e *ast.InterpolatedStringExpr) *types.TypeInfo {
	for _, part := range e.Parts {
		if part.Expr == nil {
			continue
		}
		partType := a.operandType(part.Expr)
		if partType != nil && partType.Kind != types.KindPrimitive && partType.Kind != types.KindEnum {
			a.report(errors.TypeMismatch("a primitive value", partType.String(), part.Expr))
		}
	}
	return a.catalog.StringType()
}
