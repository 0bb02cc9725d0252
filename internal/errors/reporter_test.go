package errors

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/gracepriest/BasicLangvb-sub002/internal/ast"
)

func init() {
	// Plain output keeps the assertions free of ANSI escapes.
	color.NoColor = true
}

func TestFormatErrorShowsSourceAndMarker(t *testing.T) {
	source := "Module Main\n    Dim x = undefined\nEnd Module"
	reporter := NewErrorReporter("test.bas", source)

	err := UndefinedVariable("undefined", ast.Position{Line: 2, Column: 13, Offset: 24})
	out := reporter.FormatError(err)

	assert.Contains(t, out, "error[E0001]: undefined variable 'undefined'")
	assert.Contains(t, out, "test.bas:2:13")
	assert.Contains(t, out, "Dim x = undefined")
	assert.Contains(t, out, "^^^^^^^^^", "marker should span the name")
	assert.Contains(t, out, "help: declare the variable with 'Dim'")
}

func TestFormatWarning(t *testing.T) {
	reporter := NewErrorReporter("test.bas", "If a = b Then\nEnd If")

	warn := NewWarning(WarningFloatEquality, "equality comparison of floating-point values is unreliable",
		ast.Position{Line: 1, Column: 4}).Build()
	out := reporter.FormatError(warn)

	assert.Contains(t, out, "warning[W0001]")
	assert.True(t, warn.IsWarning())
	assert.False(t, warn.IsError())
}

func TestSortByPosition(t *testing.T) {
	diags := []CompilerError{
		NewError(ErrorTypeMismatch, "late", ast.Position{Offset: 50}).Build(),
		NewError(ErrorTypeMismatch, "early", ast.Position{Offset: 3}).Build(),
		NewError(ErrorTypeMismatch, "middle", ast.Position{Offset: 20}).Build(),
	}
	SortByPosition(diags)

	assert.Equal(t, "early", diags[0].Message)
	assert.Equal(t, "middle", diags[1].Message)
	assert.Equal(t, "late", diags[2].Message)
}

func TestHasErrors(t *testing.T) {
	onlyWarnings := []CompilerError{
		NewWarning(WarningUnusedVariable, "unused", ast.Position{}).Build(),
	}
	assert.False(t, HasErrors(onlyWarnings))

	mixed := append(onlyWarnings,
		NewError(ErrorTypeMismatch, "bad", ast.Position{}).Build())
	assert.True(t, HasErrors(mixed))
}

func TestDescribeKnownAndUnknownCodes(t *testing.T) {
	assert.Equal(t, "use of an undeclared variable", Describe(ErrorUndefinedVariable))
	assert.Equal(t, "unknown diagnostic code", Describe("E9999"))
}

func TestBuilderAccumulates(t *testing.T) {
	err := NewError(ErrorMemberNotFound, "type Account has no member 'Ballance'",
		ast.Position{Line: 4, Column: 9}).
		WithLength(8).
		WithSuggestion("did you mean 'Balance'?").
		WithNote("member names are case-insensitive").
		Build()

	assert.Equal(t, 8, err.Length)
	assert.Len(t, err.Suggestions, 1)
	assert.Len(t, err.Notes, 1)
}
