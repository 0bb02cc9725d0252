package errors

import (
	"fmt"

	"github.com/gracepriest/BasicLangvb-sub002/internal/ast"
)

// Builder assembles a diagnostic fluently. The analyzer uses the
// constructors below for the common cases and falls back to the builder
// for anything bespoke.
type Builder struct {
	err CompilerError
}

func NewError(code, message string, pos ast.Position) *Builder {
	return &Builder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

func NewWarning(code, message string, pos ast.Position) *Builder {
	return &Builder{
		err: CompilerError{
			Level:    Warning,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

func (b *Builder) WithLength(length int) *Builder {
	b.err.Length = length
	return b
}

func (b *Builder) WithSuggestion(message string) *Builder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

func (b *Builder) WithReplacement(message, replacement string) *Builder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
	})
	return b
}

func (b *Builder) WithNote(note string) *Builder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *Builder) Build() CompilerError {
	return b.err
}

func spanLength(node ast.Node) int {
	length := node.NodeEndPos().Offset - node.NodePos().Offset
	if length <= 0 {
		return 1
	}
	return length
}

// UndefinedVariable reports a read of an undeclared name.
func UndefinedVariable(name string, pos ast.Position) CompilerError {
	return NewError(ErrorUndefinedVariable, fmt.Sprintf("undefined variable '%s'", name), pos).
		WithLength(len(name)).
		WithSuggestion("declare the variable with 'Dim' before using it").
		Build()
}

// UndefinedRoutine reports a call to an undeclared routine.
func UndefinedRoutine(name string, pos ast.Position) CompilerError {
	return NewError(ErrorUndefinedRoutine, fmt.Sprintf("undefined routine '%s'", name), pos).
		WithLength(len(name)).
		Build()
}

// UndefinedType reports a reference to an unknown type name.
func UndefinedType(name string, pos ast.Position) CompilerError {
	return NewError(ErrorUndefinedType, fmt.Sprintf("undefined type '%s'", name), pos).
		WithLength(len(name)).
		Build()
}

// DuplicateDeclaration reports a name already declared in the same scope.
func DuplicateDeclaration(name string, pos ast.Position) CompilerError {
	return NewError(ErrorDuplicateDeclaration,
		fmt.Sprintf("'%s' is already declared in this scope", name), pos).
		WithLength(len(name)).
		WithNote("shadowing is allowed in a nested scope, but not redeclaration in the same one").
		Build()
}

// AssignToConstant reports an assignment whose target is a Const.
func AssignToConstant(name string, pos ast.Position) CompilerError {
	return NewError(ErrorAssignToConstant,
		fmt.Sprintf("cannot assign to constant '%s'", name), pos).
		WithLength(len(name)).
		Build()
}

// TypeMismatch reports a value of the wrong type in a typed context.
func TypeMismatch(expected, actual string, node ast.Node) CompilerError {
	return NewError(ErrorTypeMismatch,
		fmt.Sprintf("cannot use value of type %s where %s is required", actual, expected),
		node.NodePos()).
		WithLength(spanLength(node)).
		Build()
}

// InvalidOperation reports an operator applied to operand types it does not
// support.
func InvalidOperation(op, left, right string, node ast.Node) CompilerError {
	return NewError(ErrorInvalidOperation,
		fmt.Sprintf("operator '%s' is not defined for %s and %s", op, left, right),
		node.NodePos()).
		WithLength(spanLength(node)).
		Build()
}

// InvalidCast reports a CType between unrelated types.
func InvalidCast(from, to string, node ast.Node) CompilerError {
	return NewError(ErrorInvalidCast,
		fmt.Sprintf("cannot convert %s to %s", from, to), node.NodePos()).
		WithLength(spanLength(node)).
		Build()
}

// VoidInExpression reports a Sub call in value position.
func VoidInExpression(name string, node ast.Node) CompilerError {
	return NewError(ErrorVoidInExpression,
		fmt.Sprintf("'%s' is a Sub and does not produce a value", name), node.NodePos()).
		WithLength(spanLength(node)).
		Build()
}

// ConditionNotBoolean reports a non-Boolean condition.
func ConditionNotBoolean(actual string, node ast.Node) CompilerError {
	return NewError(ErrorConditionNotBoolean,
		fmt.Sprintf("condition must be Boolean, not %s", actual), node.NodePos()).
		WithLength(spanLength(node)).
		Build()
}

// NotCallable reports call syntax applied to a value that is neither a
// routine nor an array.
func NotCallable(name string, pos ast.Position) CompilerError {
	return NewError(ErrorNotCallable,
		fmt.Sprintf("'%s' is not a routine or an array", name), pos).
		WithLength(len(name)).
		Build()
}

// WrongArgumentCount reports an arity mismatch.
func WrongArgumentCount(name string, want, got int, node ast.Node) CompilerError {
	return NewError(ErrorWrongArgumentCount,
		fmt.Sprintf("'%s' expects %d argument(s), got %d", name, want, got),
		node.NodePos()).
		WithLength(spanLength(node)).
		Build()
}

// ArgumentType reports one argument of the wrong type.
func ArgumentType(routine, expected, actual string, node ast.Node) CompilerError {
	return NewError(ErrorArgumentType,
		fmt.Sprintf("argument to '%s' must be %s, not %s", routine, expected, actual),
		node.NodePos()).
		WithLength(spanLength(node)).
		Build()
}

// MemberNotFound reports member access on a type lacking the member.
func MemberNotFound(typeName, member string, pos ast.Position) CompilerError {
	return NewError(ErrorMemberNotFound,
		fmt.Sprintf("type %s has no member '%s'", typeName, member), pos).
		WithLength(len(member)).
		Build()
}

// WrongIndexCount reports an index expression whose index count does not
// match the array rank.
func WrongIndexCount(rank, got int, node ast.Node) CompilerError {
	return NewError(ErrorWrongIndexCount,
		fmt.Sprintf("array of rank %d requires %d index(es), got %d", rank, rank, got),
		node.NodePos()).
		WithLength(spanLength(node)).
		Build()
}

// ReturnOutsideRoutine reports a Return with no enclosing routine.
func ReturnOutsideRoutine(pos ast.Position) CompilerError {
	return NewError(ErrorReturnOutsideRoutine,
		"Return is only valid inside a Sub or Function", pos).Build()
}

// ReturnValueFromSub reports a valued Return inside a Sub.
func ReturnValueFromSub(node ast.Node) CompilerError {
	return NewError(ErrorReturnValueFromSub,
		"a Sub cannot return a value", node.NodePos()).
		WithLength(spanLength(node)).
		Build()
}

// MissingReturnValue reports a bare Return inside a Function.
func MissingReturnValue(returnType string, pos ast.Position) CompilerError {
	return NewError(ErrorMissingReturnValue,
		fmt.Sprintf("Return must carry a value of type %s", returnType), pos).Build()
}

// ExitOutsideConstruct reports an Exit that names no enclosing construct.
func ExitOutsideConstruct(kind string, pos ast.Position) CompilerError {
	return NewError(ErrorExitOutsideConstruct,
		fmt.Sprintf("'Exit %s' has no enclosing %s", kind, kind), pos).Build()
}

// FloatEquality warns about = or <> between floating-point operands.
func FloatEquality(node ast.Node) CompilerError {
	return NewWarning(WarningFloatEquality,
		"equality comparison of floating-point values is unreliable", node.NodePos()).
		WithLength(spanLength(node)).
		WithSuggestion("compare the absolute difference against a tolerance instead").
		Build()
}

// IncompatibleEquality warns about = or <> between operand types with no
// conversion between them. The comparison stays legal; its outcome never
// varies.
func IncompatibleEquality(op, left, right string, node ast.Node) CompilerError {
	return NewWarning(WarningIncompatibleEquality,
		fmt.Sprintf("'%s' between %s and %s always yields the same result", op, left, right),
		node.NodePos()).
		WithLength(spanLength(node)).
		WithSuggestion("convert one operand so both sides share a type").
		Build()
}

// Internal wraps a recovered analyzer panic as a diagnostic so a compiler
// bug surfaces as output instead of a crash.
func Internal(detail string, pos ast.Position) CompilerError {
	return NewError(ErrorInternal,
		fmt.Sprintf("internal error during analysis: %s", detail), pos).
		WithNote("this is a bug in the compiler, not in the source program").
		Build()
}
