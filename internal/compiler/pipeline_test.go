package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracepriest/BasicLangvb-sub002/internal/errors"
)

func TestCleanProgramProducesIR(t *testing.T) {
	result := Compile("math.bas", `
Module Math
    Function Square(n As Integer) As Integer
        Return n * n
    End Function
End Module
`)
	assert.True(t, result.Success())
	assert.Empty(t, result.Diagnostics())
	require.NotNil(t, result.Module)
	assert.Len(t, result.Module.Functions, 1)
}

func TestScanErrorStopsBeforeParsing(t *testing.T) {
	result := Compile("bad.bas", `
Module M
    Sub Main()
        Dim s As String = "unterminated
    End Sub
End Module
`)
	assert.False(t, result.Success())
	require.NotEmpty(t, result.ScanErrors)
	assert.Nil(t, result.File, "no AST for a program that failed to scan")
	assert.Nil(t, result.Analysis)

	diags := result.Diagnostics()
	require.NotEmpty(t, diags)
	assert.Equal(t, errors.ErrorLexical, diags[0].Code)
}

func TestSyntaxErrorStopsBeforeAnalysis(t *testing.T) {
	result := Compile("bad.bas", `
Module M
    Sub Main(
End Module
`)
	assert.False(t, result.Success())
	require.NotNil(t, result.ParseError)
	assert.Nil(t, result.Analysis)

	diags := result.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, errors.ErrorSyntax, diags[0].Code)
}

func TestSemanticErrorsStopBeforeLowering(t *testing.T) {
	result := Compile("bad.bas", `
Module M
    Sub Main()
        missing = 1
    End Sub
End Module
`)
	assert.False(t, result.Success())
	require.NotNil(t, result.Analysis)
	assert.Nil(t, result.Module, "no partial IR for a program that failed analysis")

	diags := result.Diagnostics()
	require.NotEmpty(t, diags)
	assert.Equal(t, errors.ErrorUndefinedVariable, diags[0].Code)
}

func TestWarningsAloneStillProduceIR(t *testing.T) {
	result := Compile("warn.bas", `
Module M
    Function Same(a As Double, b As Double) As Boolean
        Return a = b
    End Function
End Module
`)
	assert.True(t, result.Success())
	diags := result.Diagnostics()
	require.NotEmpty(t, diags)
	assert.True(t, diags[0].IsWarning())
}

func TestFormatIncludesSourceContext(t *testing.T) {
	result := Compile("ctx.bas", `Module M
    Sub Main()
        boom = 1
    End Sub
End Module
`)
	text := result.Format()
	assert.Contains(t, text, "ctx.bas")
	assert.Contains(t, text, "boom")
}
