package errors

// Diagnostic codes used across the toolchain. Codes are stable identifiers:
// editors and docs key off them, so existing codes never change meaning.
//
// Ranges:
// E0001-E0099: scope and symbol errors
// E0100-E0199: syntax errors
// E0200-E0299: type errors
// E0300-E0399: call and member errors
// E0600-E0699: flow control errors
// E0900-E0999: internal errors
// W0001-W0099: warnings

const (
	// Scope and symbol errors
	ErrorUndefinedVariable    = "E0001"
	ErrorUndefinedRoutine     = "E0002"
	ErrorUndefinedType        = "E0003"
	ErrorDuplicateDeclaration = "E0004"
	ErrorAssignToConstant     = "E0005"

	// Syntax errors
	ErrorSyntax = "E0100"
	ErrorLexical = "E0101"

	// Type errors
	ErrorTypeMismatch       = "E0200"
	ErrorInvalidOperation   = "E0201"
	ErrorInvalidCast        = "E0202"
	ErrorVoidInExpression   = "E0203"
	ErrorNotAssignable      = "E0204"
	ErrorConditionNotBoolean = "E0205"

	// Call and member errors
	ErrorNotCallable       = "E0300"
	ErrorWrongArgumentCount = "E0301"
	ErrorArgumentType      = "E0302"
	ErrorMemberNotFound    = "E0303"
	ErrorNotIndexable      = "E0304"
	ErrorWrongIndexCount   = "E0305"

	// Flow control errors
	ErrorReturnOutsideRoutine = "E0600"
	ErrorReturnValueFromSub   = "E0601"
	ErrorMissingReturnValue   = "E0602"
	ErrorExitOutsideConstruct = "E0603"

	// Internal errors
	ErrorInternal = "E0900"

	// Warnings
	WarningFloatEquality        = "W0001"
	WarningUnusedVariable       = "W0002"
	WarningValueDiscarded       = "W0003"
	WarningIncompatibleEquality = "W0004"
)

var codeDescriptions = map[string]string{
	ErrorUndefinedVariable:    "use of an undeclared variable",
	ErrorUndefinedRoutine:     "call to an undeclared routine",
	ErrorUndefinedType:        "reference to an unknown type",
	ErrorDuplicateDeclaration: "a name declared twice in the same scope",
	ErrorAssignToConstant:     "assignment to a constant",
	ErrorSyntax:               "syntax error",
	ErrorLexical:              "lexical error",
	ErrorTypeMismatch:         "incompatible types",
	ErrorInvalidOperation:     "operator not defined for these operand types",
	ErrorInvalidCast:          "conversion between unrelated types",
	ErrorVoidInExpression:     "a Sub call used where a value is required",
	ErrorNotAssignable:        "assignment target is not assignable",
	ErrorConditionNotBoolean:  "condition is not a Boolean expression",
	ErrorNotCallable:          "value is not callable or indexable",
	ErrorWrongArgumentCount:   "wrong number of arguments",
	ErrorArgumentType:         "argument type does not match the parameter",
	ErrorMemberNotFound:       "type has no such member",
	ErrorNotIndexable:         "value is not an array",
	ErrorWrongIndexCount:      "index count does not match the array rank",
	ErrorReturnOutsideRoutine: "Return outside a Sub or Function",
	ErrorReturnValueFromSub:   "Return with a value inside a Sub",
	ErrorMissingReturnValue:   "Return without a value inside a Function",
	ErrorExitOutsideConstruct: "Exit does not match an enclosing construct",
	ErrorInternal:             "internal analyzer failure",
	WarningFloatEquality:        "equality comparison of floating-point values",
	WarningUnusedVariable:       "variable is never used",
	WarningValueDiscarded:       "expression result is discarded",
	WarningIncompatibleEquality: "equality comparison between unrelated types",
}

// Describe returns a human-readable description of a diagnostic code.
func Describe(code string) string {
	if d, ok := codeDescriptions[code]; ok {
		return d
	}
	return "unknown diagnostic code"
}
