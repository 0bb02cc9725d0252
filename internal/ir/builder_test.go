package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracepriest/BasicLangvb-sub002/internal/parser"
	"github.com/gracepriest/BasicLangvb-sub002/internal/semantic"
)

func buildModule(t *testing.T, source string) *Module {
	t.Helper()
	file, parseErr, scanErrs := parser.ParseSource("test.bas", source)
	require.Empty(t, scanErrs)
	require.Nil(t, parseErr)

	analyzer := semantic.NewAnalyzer()
	result := analyzer.Analyze(file)
	require.True(t, result.Success(), "analysis diagnostics: %v", result.Diagnostics)

	return Build(file, result, analyzer.Catalog())
}

func findFunction(t *testing.T, m *Module, name string) *Function {
	t.Helper()
	for _, fn := range m.Functions {
		if fn.Name == name {
			return fn
		}
	}
	for _, class := range m.Classes {
		for _, fn := range class.Methods {
			if fn.Name == name {
				return fn
			}
		}
	}
	t.Fatalf("function %s not found in module", name)
	return nil
}

func findBlock(t *testing.T, fn *Function, label string) *BasicBlock {
	t.Helper()
	for _, blk := range fn.Blocks {
		if blk.Label == label {
			return blk
		}
	}
	t.Fatalf("block %s not found in %s (have %v)", label, fn.Name, blockLabels(fn))
	return nil
}

func blockLabels(fn *Function) []string {
	labels := make([]string, len(fn.Blocks))
	for i, blk := range fn.Blocks {
		labels[i] = blk.Label
	}
	return labels
}

func TestFibonacciLowering(t *testing.T) {
	m := buildModule(t, `
Module Math
    Function Fibonacci(n As Integer) As Integer
        If n <= 1 Then
            Return n
        End If
        Return Fibonacci(n - 1) + Fibonacci(n - 2)
    End Function
End Module
`)
	fn := findFunction(t, m, "Fibonacci")
	assert.GreaterOrEqual(t, len(fn.Blocks), 3, "entry, then path, and merge at minimum")

	returns := 0
	for _, blk := range fn.Blocks {
		if ret, ok := blk.Terminator.(*ReturnInstruction); ok {
			returns++
			require.NotNil(t, ret.Value, "every Return in a Function carries a value")
		}
	}
	assert.GreaterOrEqual(t, returns, 2, "one return per live path")
}

func TestForLoopShape(t *testing.T) {
	m := buildModule(t, `
Module M
    Function Sum(upper As Integer) As Integer
        Dim total As Integer = 0
        For i = 0 To 10
            total = total + i
        Next
        Return total
    End Function
End Module
`)
	fn := findFunction(t, m, "Sum")
	for _, label := range []string{"for.cond", "for.body", "for.inc", "for.end"} {
		findBlock(t, fn, label)
	}

	cond := findBlock(t, fn, "for.cond")
	require.Len(t, cond.Instructions, 1)
	cmp, ok := cond.Instructions[0].(*CompareInstruction)
	require.True(t, ok, "condition block computes a comparison")
	assert.Equal(t, "le", cmp.Op)
	assert.Equal(t, "i", cmp.Left.Name, "loop variable against the end bound")
	assert.Equal(t, "10", cmp.Right.Literal)

	branch, ok := cond.Terminator.(*BranchInstruction)
	require.True(t, ok)
	assert.Equal(t, "for.body", branch.True.Label)
	assert.Equal(t, "for.end", branch.False.Label)
}

func TestEveryBlockHasExactlyOneTerminator(t *testing.T) {
	m := buildModule(t, `
Module M
    Function Classify(n As Integer) As String
        Dim label As String = ""
        If n < 0 Then
            label = "negative"
        ElseIf n = 0 Then
            label = "zero"
        Else
            label = "positive"
        End If
        Select Case n
            Case 1, 2
                label = label & "!"
            Case Else
                label = label & "."
        End Select
        While n > 0
            n -= 1
        End While
        Return label
    End Function
End Module
`)
	fn := findFunction(t, m, "Classify")
	for _, blk := range fn.Blocks {
		require.NotNil(t, blk.Terminator, "block %s must be terminated", blk.Label)
		assert.True(t, blk.Terminator.IsTerminator())
		for _, inst := range blk.Instructions {
			assert.False(t, inst.IsTerminator(),
				"block %s carries a terminator in its body", blk.Label)
		}
	}
}

func TestSubFallThroughSynthesizesBareReturn(t *testing.T) {
	m := buildModule(t, `
Module M
    Sub Ping()
        Dim x As Integer = 1
    End Sub
End Module
`)
	fn := findFunction(t, m, "Ping")
	ret, ok := fn.Entry().Terminator.(*ReturnInstruction)
	require.True(t, ok)
	assert.Nil(t, ret.Value)
}

func TestFunctionFallThroughSynthesizesDefaultReturn(t *testing.T) {
	m := buildModule(t, `
Module M
    Function Zero() As Integer
        Dim unused As Integer = 1
    End Function
End Module
`)
	fn := findFunction(t, m, "Zero")
	ret, ok := fn.Entry().Terminator.(*ReturnInstruction)
	require.True(t, ok)
	require.NotNil(t, ret.Value)
	assert.Equal(t, "0", ret.Value.Literal)
}

func TestDoUntilInvertsBranchArms(t *testing.T) {
	m := buildModule(t, `
Module M
    Sub Drain(n As Integer)
        Do Until n = 0
            n -= 1
        Loop
    End Sub
End Module
`)
	fn := findFunction(t, m, "Drain")
	cond := findBlock(t, fn, "do.cond")
	branch, ok := cond.Terminator.(*BranchInstruction)
	require.True(t, ok)
	assert.Equal(t, "do.end", branch.True.Label, "Until exits when the condition holds")
	assert.Equal(t, "do.body", branch.False.Label)
}

func TestDoLoopPostTestRunsBodyFirst(t *testing.T) {
	m := buildModule(t, `
Module M
    Sub Once(n As Integer)
        Do
            n -= 1
        Loop While n > 0
    End Sub
End Module
`)
	fn := findFunction(t, m, "Once")
	entry := fn.Entry()
	jump, ok := entry.Terminator.(*JumpInstruction)
	require.True(t, ok)
	assert.Equal(t, "do.body", jump.Target.Label)
}

func TestDirectAssignmentRenamesInstructionResult(t *testing.T) {
	m := buildModule(t, `
Module M
    Function Add(a As Integer, b As Integer) As Integer
        Dim sum As Integer = a + b
        Return sum
    End Function
End Module
`)
	fn := findFunction(t, m, "Add")
	entry := fn.Entry()
	require.Len(t, entry.Instructions, 1, "the add binds directly, no copy")

	bin, ok := entry.Instructions[0].(*BinaryInstruction)
	require.True(t, ok)
	assert.Equal(t, "add", bin.Op)
	assert.Equal(t, "sum", bin.Result.Name)

	ret, ok := entry.Terminator.(*ReturnInstruction)
	require.True(t, ok)
	assert.Same(t, bin.Result, ret.Value, "the read sees the renamed result")
}

func TestReassignmentMintsNewVersions(t *testing.T) {
	m := buildModule(t, `
Module M
    Sub Twice()
        Dim x As Integer = 1
        x = 2
    End Sub
End Module
`)
	fn := findFunction(t, m, "Twice")
	var versions []int
	for _, inst := range fn.Entry().Instructions {
		if c, ok := inst.(*ConstInstruction); ok && c.Result.Name == "x" {
			versions = append(versions, c.Result.Version)
		}
	}
	assert.Equal(t, []int{0, 1}, versions)
}

func TestArrayAccessLowersToElementAddress(t *testing.T) {
	m := buildModule(t, `
Module M
    Function Swap(cells As Integer(), i As Integer) As Integer
        Dim old As Integer = cells(i)
        cells(i) = 0
        Return old
    End Function
End Module
`)
	fn := findFunction(t, m, "Swap")
	var geps, loads, stores int
	for _, blk := range fn.Blocks {
		for _, inst := range blk.Instructions {
			switch inst.(type) {
			case *GetElementPtrInstruction:
				geps++
			case *LoadInstruction:
				loads++
			case *StoreInstruction:
				stores++
			}
		}
	}
	assert.Equal(t, 2, geps, "one address per element access")
	assert.Equal(t, 1, loads, "the read loads through the address")
	assert.Equal(t, 1, stores, "the write stores through the address")
}

func TestForEachLowersToIndexedIteration(t *testing.T) {
	m := buildModule(t, `
Module M
    Function Total(values As Integer()) As Integer
        Dim sum As Integer = 0
        For Each v In values
            sum = sum + v
        Next
        Return sum
    End Function
End Module
`)
	fn := findFunction(t, m, "Total")
	for _, label := range []string{"foreach.cond", "foreach.body", "foreach.inc", "foreach.end"} {
		findBlock(t, fn, label)
	}

	body := findBlock(t, fn, "foreach.body")
	var gep *GetElementPtrInstruction
	var load *LoadInstruction
	for _, inst := range body.Instructions {
		switch i := inst.(type) {
		case *GetElementPtrInstruction:
			gep = i
		case *LoadInstruction:
			load = i
		}
	}
	require.NotNil(t, gep, "element address computed per iteration")
	require.NotNil(t, load, "element loaded into the loop variable")
	assert.Equal(t, "v", load.Result.Name)

	entry := fn.Entry()
	var bound *CallInstruction
	for _, inst := range entry.Instructions {
		if c, ok := inst.(*CallInstruction); ok && c.Callee == "UBound" {
			bound = c
		}
	}
	require.NotNil(t, bound, "iteration bound comes from UBound")
}

func TestExitForJumpsToLoopEnd(t *testing.T) {
	m := buildModule(t, `
Module M
    Sub Scan()
        For i = 0 To 10
            If i = 5 Then
                Exit For
            End If
        Next
    End Sub
End Module
`)
	fn := findFunction(t, m, "Scan")
	then := findBlock(t, fn, "if.then")
	jump, ok := then.Terminator.(*JumpInstruction)
	require.True(t, ok)
	assert.Equal(t, "for.end", jump.Target.Label)
}

func TestSelectLowersToComparisonChain(t *testing.T) {
	m := buildModule(t, `
Module M
    Function Name(n As Integer) As String
        Select Case n
            Case 1
                Return "one"
            Case 2, 3
                Return "couple"
            Case Else
                Return "many"
        End Select
    End Function
End Module
`)
	fn := findFunction(t, m, "Name")
	findBlock(t, fn, "select.end")

	var eqCompares int
	for _, blk := range fn.Blocks {
		for _, inst := range blk.Instructions {
			if cmp, ok := inst.(*CompareInstruction); ok && cmp.Op == "eq" {
				eqCompares++
			}
		}
	}
	assert.Equal(t, 3, eqCompares, "one equality test per case value, no jump table")
}

func TestGlobalsAndClassesCollected(t *testing.T) {
	m := buildModule(t, `
Module App
    Dim counter As Integer = 0

    Class Point
        Public x As Double
        Public y As Double

        Public Function Norm2() As Double
            Return x * x + y * y
        End Function
    End Class

    Sub Main()
        counter = 1
    End Sub
End Module
`)
	require.Contains(t, m.Globals, "counter")
	assert.Equal(t, "Integer", m.Globals["counter"].Type.Name)

	require.Len(t, m.Classes, 1)
	class := m.Classes[0]
	assert.Equal(t, "Point", class.Name)
	assert.Len(t, class.Fields, 2)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "Point.Norm2", class.Methods[0].Name)
}

func TestNamespaceQualifiesFunctionNames(t *testing.T) {
	m := buildModule(t, `
Namespace App
    Module Tools
        Sub Helper()
        End Sub
    End Module
End Namespace
`)
	findFunction(t, m, "App.Helper")
}

func TestStatementsAfterReturnAreIsolated(t *testing.T) {
	m := buildModule(t, `
Module M
    Function Answer() As Integer
        Return 42
        Dim dead As Integer = 1
    End Function
End Module
`)
	fn := findFunction(t, m, "Answer")
	entry := fn.Entry()
	ret, ok := entry.Terminator.(*ReturnInstruction)
	require.True(t, ok)
	assert.Equal(t, "42", ret.Value.Literal)

	for _, blk := range fn.Blocks {
		require.NotNil(t, blk.Terminator, "even unreachable blocks are terminated")
	}
}

func TestInterpolatedStringConcatChain(t *testing.T) {
	m := buildModule(t, `
Module M
    Function Greet(name As String, age As Integer) As String
        Return $"hi {name}, age {age}"
    End Function
End Module
`)
	fn := findFunction(t, m, "Greet")
	var concats, strCalls int
	for _, inst := range fn.Entry().Instructions {
		switch i := inst.(type) {
		case *BinaryInstruction:
			if i.Op == "concat" {
				concats++
			}
		case *CallInstruction:
			if i.Callee == "Str" {
				strCalls++
			}
		}
	}
	assert.Equal(t, 3, concats, "four parts fold into three joins")
	assert.Equal(t, 1, strCalls, "the Integer part goes through Str")
}
