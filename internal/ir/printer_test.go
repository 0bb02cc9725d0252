package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintModule(t *testing.T) {
	m := buildModule(t, `
Module Math
    Dim calls As Integer = 0

    Function Add(a As Integer, b As Integer) As Integer
        Return a + b
    End Function
End Module
`)
	text := Print(m)
	assert.Contains(t, text, "module test.bas")
	assert.Contains(t, text, "global calls Integer")
	assert.Contains(t, text, "func Add(a.0 Integer, b.0 Integer) Integer")
	assert.Contains(t, text, "entry:")
	assert.Contains(t, text, "ret")
}

func TestPrintBranchAndLabels(t *testing.T) {
	m := buildModule(t, `
Module M
    Function Max(a As Integer, b As Integer) As Integer
        If a > b Then
            Return a
        End If
        Return b
    End Function
End Module
`)
	fn := findFunction(t, m, "Max")
	text := PrintFunction(fn)
	assert.Contains(t, text, "cmp gt a.0, b.0")
	assert.Contains(t, text, "br ")
	assert.Contains(t, text, "if.then:")
	assert.Contains(t, text, "if.merge:")
	assert.Contains(t, text, "ret a.0")
	assert.Contains(t, text, "ret b.0")
}

func TestPrintSwitchInstruction(t *testing.T) {
	one := &BasicBlock{Label: "one"}
	rest := &BasicBlock{Label: "rest"}
	sw := &SwitchInstruction{
		ID:      1,
		Value:   &Value{Name: "n", Type: nil},
		Cases:   []SwitchCase{{Value: &Value{Literal: "1", IsConst: true}, Target: one}},
		Default: rest,
	}
	assert.Equal(t, "switch n.0 [1: one], default rest", sw.String())
	require.Len(t, sw.GetSuccessors(), 2)
}

func TestValueRendering(t *testing.T) {
	assert.Equal(t, "42", (&Value{Literal: "42", IsConst: true}).String())
	assert.Equal(t, "x.3", (&Value{Name: "x", Version: 3}).String())
	assert.Equal(t, "%t7", (&Value{ID: 7}).String())
}
