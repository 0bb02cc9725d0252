package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracepriest/BasicLangvb-sub002/internal/ast"
)

func parseOne(t *testing.T, source string) *ast.File {
	t.Helper()
	file, parseErr, scanErrs := ParseSource("test.bas", source)
	require.Empty(t, scanErrs, "should have no scan errors")
	require.Nil(t, parseErr, "should have no parse error")
	require.NotNil(t, file)
	return file
}

func firstFunction(t *testing.T, file *ast.File) *ast.FunctionDecl {
	t.Helper()
	mod, ok := file.Decls[0].(*ast.ModuleDecl)
	require.True(t, ok, "first decl should be a Module")
	fn, ok := mod.Decls[0].(*ast.FunctionDecl)
	require.True(t, ok, "first module member should be a routine")
	return fn
}

func TestParseEmptyModule(t *testing.T) {
	file := parseOne(t, "Module Main\nEnd Module")
	require.Len(t, file.Decls, 1)

	mod, ok := file.Decls[0].(*ast.ModuleDecl)
	require.True(t, ok)
	assert.Equal(t, "Main", mod.Name.Value)
	assert.Empty(t, mod.Decls)
}

func TestParseFunction(t *testing.T) {
	source := `Module Main
    Function Fibonacci(n As Integer) As Integer
        If n <= 1 Then
            Return n
        End If
        Return Fibonacci(n - 1) + Fibonacci(n - 2)
    End Function
End Module`

	fn := firstFunction(t, parseOne(t, source))
	assert.Equal(t, "Fibonacci", fn.Name.Value)
	assert.False(t, fn.IsSub)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, "n", fn.Params[0].Name.Value)
	assert.Equal(t, "Integer", fn.Params[0].Type.Name.Value)
	assert.Equal(t, "Integer", fn.Return.Name.Value)
	require.Len(t, fn.Body.Items, 2)

	ifStmt, ok := fn.Body.Items[0].(*ast.IfStmt)
	require.True(t, ok)
	assert.False(t, ifStmt.SingleLine)

	ret, ok := fn.Body.Items[1].(*ast.ReturnStmt)
	require.True(t, ok)
	sum, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", sum.Op)
}

func TestParseSubHasNoReturnType(t *testing.T) {
	source := `Module Main
    Sub Greet(name As String)
        Print(name)
    End Sub
End Module`

	fn := firstFunction(t, parseOne(t, source))
	assert.True(t, fn.IsSub)
	assert.Nil(t, fn.Return)
}

func TestFunctionRequiresReturnType(t *testing.T) {
	source := `Module Main
    Function Broken(n As Integer)
    End Function
End Module`

	_, parseErr, _ := ParseSource("test.bas", source)
	require.NotNil(t, parseErr)
	assert.Contains(t, parseErr.Message, "return type")
}

func TestParseSingleLineIf(t *testing.T) {
	source := `Module Main
    Function Sign(n As Integer) As Integer
        If n < 0 Then Return -1 Else Return 1
    End Function
End Module`

	fn := firstFunction(t, parseOne(t, source))
	ifStmt, ok := fn.Body.Items[0].(*ast.IfStmt)
	require.True(t, ok)
	assert.True(t, ifStmt.SingleLine)
	require.Len(t, ifStmt.Then.Items, 1)
	require.NotNil(t, ifStmt.Else)
	require.Len(t, ifStmt.Else.Items, 1)
}

func TestParseIfElseIfChain(t *testing.T) {
	source := `Module Main
    Function Bucket(n As Integer) As Integer
        If n < 10 Then
            Return 0
        ElseIf n < 100 Then
            Return 1
        ElseIf n < 1000 Then
            Return 2
        Else
            Return 3
        End If
    End Function
End Module`

	fn := firstFunction(t, parseOne(t, source))
	ifStmt := fn.Body.Items[0].(*ast.IfStmt)
	assert.Len(t, ifStmt.ElseIfs, 2)
	assert.NotNil(t, ifStmt.Else)
}

func TestParseSelectCase(t *testing.T) {
	source := `Module Main
    Function Describe(n As Integer) As String
        Select Case n
        Case 1, 2
            Return "small"
        Case 3
            Return "medium"
        Case Else
            Return "large"
        End Select
    End Function
End Module`

	fn := firstFunction(t, parseOne(t, source))
	sel, ok := fn.Body.Items[0].(*ast.SelectStmt)
	require.True(t, ok)
	require.Len(t, sel.Cases, 2)
	assert.Len(t, sel.Cases[0].Values, 2)
	assert.Len(t, sel.Cases[1].Values, 1)
	assert.NotNil(t, sel.Else)
}

func TestParseForLoop(t *testing.T) {
	source := `Module Main
    Function Total() As Integer
        Dim sum As Integer = 0
        For i = 1 To 10 Step 2
            sum += i
        Next
        Return sum
    End Function
End Module`

	fn := firstFunction(t, parseOne(t, source))
	forStmt, ok := fn.Body.Items[1].(*ast.ForStmt)
	require.True(t, ok)
	assert.Equal(t, "i", forStmt.Var.Value)
	assert.NotNil(t, forStmt.Step)

	assign, ok := forStmt.Body.Items[0].(*ast.AssignStmt)
	require.True(t, ok)
	assert.Equal(t, ast.PlusAssign, assign.Op)
}

func TestParseForEach(t *testing.T) {
	source := `Module Main
    Sub Show(values As Integer())
        For Each v In values
            Print(v)
        Next
    End Sub
End Module`

	fn := firstFunction(t, parseOne(t, source))
	assert.Equal(t, 1, fn.Params[0].Type.ArrayRank)

	each, ok := fn.Body.Items[0].(*ast.ForEachStmt)
	require.True(t, ok)
	assert.Equal(t, "v", each.Var.Value)
}

func TestParseDoLoopVariants(t *testing.T) {
	source := `Module Main
    Sub Run()
        Do While x < 3
            x++
        Loop
        Do Until done
            Step1()
        Loop
        Do
            Step2()
        Loop While x < 9
        Do
            Step3()
        Loop Until done
    End Sub
End Module`

	fn := firstFunction(t, parseOne(t, source))
	require.Len(t, fn.Body.Items, 4)

	first := fn.Body.Items[0].(*ast.DoStmt)
	assert.False(t, first.Until)
	assert.False(t, first.PostTest)

	second := fn.Body.Items[1].(*ast.DoStmt)
	assert.True(t, second.Until)
	assert.False(t, second.PostTest)

	third := fn.Body.Items[2].(*ast.DoStmt)
	assert.False(t, third.Until)
	assert.True(t, third.PostTest)

	fourth := fn.Body.Items[3].(*ast.DoStmt)
	assert.True(t, fourth.Until)
	assert.True(t, fourth.PostTest)
}

func TestParseTryCatchFinally(t *testing.T) {
	source := `Module Main
    Sub Risky()
        Try
            Work()
        Catch e As Error
            Report(e)
        Catch
            Cleanup()
        Finally
            Close()
        End Try
    End Sub
End Module`

	fn := firstFunction(t, parseOne(t, source))
	try, ok := fn.Body.Items[0].(*ast.TryStmt)
	require.True(t, ok)
	require.Len(t, try.Catches, 2)
	assert.Equal(t, "e", try.Catches[0].Var.Value)
	assert.Equal(t, "Error", try.Catches[0].Type.Name.Value)
	assert.Nil(t, try.Catches[1].Var)
	assert.NotNil(t, try.Finally)
}

func TestParseExitStatements(t *testing.T) {
	source := `Module Main
    Sub Run()
        For i = 1 To 10
            Exit For
        Next
        While True
            Exit While
        End While
    End Sub
End Module`

	fn := firstFunction(t, parseOne(t, source))
	forStmt := fn.Body.Items[0].(*ast.ForStmt)
	exit := forStmt.Body.Items[0].(*ast.ExitStmt)
	assert.Equal(t, ast.ExitFor, exit.Kind)
}

func TestOperatorPrecedence(t *testing.T) {
	source := `Module Main
    Function Check(a As Integer, b As Integer) As Boolean
        Return a + b * 2 < 10 And Not done Or a = b
    End Function
End Module`

	fn := firstFunction(t, parseOne(t, source))
	ret := fn.Body.Items[0].(*ast.ReturnStmt)

	// Or binds loosest.
	or, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "Or", or.Op)

	and, ok := or.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "And", and.Op)

	cmp, ok := and.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "<", cmp.Op)

	// b * 2 binds tighter than a + ...
	plus, ok := cmp.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", plus.Op)
	times, ok := plus.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", times.Op)
}

func TestParsePostfixChain(t *testing.T) {
	source := `Module Main
    Sub Run()
        account.Owner.Name = "b"
        cells(i)++
        ptr^ = 5
    End Sub
End Module`

	fn := firstFunction(t, parseOne(t, source))

	assign := fn.Body.Items[0].(*ast.AssignStmt)
	member, ok := assign.Target.(*ast.MemberExpr)
	require.True(t, ok)
	assert.Equal(t, "Name", member.Member)

	incStmt := fn.Body.Items[1].(*ast.ExprStmt)
	inc, ok := incStmt.Expr.(*ast.IncDecExpr)
	require.True(t, ok)
	_, ok = inc.Target.(*ast.CallExpr)
	assert.True(t, ok, "indexing parses as call syntax")

	derefAssign := fn.Body.Items[2].(*ast.AssignStmt)
	_, ok = derefAssign.Target.(*ast.DerefExpr)
	assert.True(t, ok)
}

func TestAssignmentTargetMustBeAddressable(t *testing.T) {
	source := `Module Main
    Sub Run()
        a + b = 3
    End Sub
End Module`

	_, parseErr, _ := ParseSource("test.bas", source)
	require.NotNil(t, parseErr)
	assert.Contains(t, parseErr.Message, "not assignable")
}

func TestParseInterpolatedString(t *testing.T) {
	source := `Module Main
    Function Greet(name As String, age As Integer) As String
        Return $"hello {name}, you are {age + 1} years old"
    End Function
End Module`

	fn := firstFunction(t, parseOne(t, source))
	ret := fn.Body.Items[0].(*ast.ReturnStmt)
	interp, ok := ret.Value.(*ast.InterpolatedStringExpr)
	require.True(t, ok)
	require.Len(t, interp.Parts, 4)

	assert.Equal(t, "hello ", interp.Parts[0].Text)
	ident, ok := interp.Parts[1].Expr.(*ast.IdentExpr)
	require.True(t, ok)
	assert.Equal(t, "name", ident.Name)
	assert.Equal(t, ", you are ", interp.Parts[2].Text)
	sum, ok := interp.Parts[3].Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", sum.Op)
}

func TestParseNewCTypeAndArrayLiteral(t *testing.T) {
	source := `Module Main
    Sub Run()
        Dim acct = New Account(100)
        Dim d = CType(total, Double)
        Dim xs = {1, 2, 3}
    End Sub
End Module`

	fn := firstFunction(t, parseOne(t, source))

	newDim := fn.Body.Items[0].(*ast.DimDecl)
	newExpr, ok := newDim.Init.(*ast.NewExpr)
	require.True(t, ok)
	assert.Equal(t, "Account", newExpr.Type.Name.Value)
	assert.Len(t, newExpr.Args, 1)

	castDim := fn.Body.Items[1].(*ast.DimDecl)
	cast, ok := castDim.Init.(*ast.CastExpr)
	require.True(t, ok)
	assert.Equal(t, "Double", cast.Type.Name.Value)

	arrDim := fn.Body.Items[2].(*ast.DimDecl)
	arr, ok := arrDim.Init.(*ast.ArrayLiteralExpr)
	require.True(t, ok)
	assert.Len(t, arr.Elements, 3)
}

func TestParseClassWithInheritsAndImplements(t *testing.T) {
	source := `Namespace Bank
    Public Class SavingsAccount
        Inherits Account
        Implements IAuditable, IClosable

        Private Dim rate As Double

        Public Function Interest() As Double
            Return balance * rate
        End Function
    End Class
End Namespace`

	file := parseOne(t, source)
	ns := file.Decls[0].(*ast.NamespaceDecl)
	cls, ok := ns.Decls[0].(*ast.ClassDecl)
	require.True(t, ok)
	assert.Equal(t, ast.AccessPublic, cls.Access)
	assert.Equal(t, "Account", cls.Inherits.Name.Value)
	require.Len(t, cls.Implements, 2)
	require.Len(t, cls.Members, 2)

	field, ok := cls.Members[0].(*ast.DimDecl)
	require.True(t, ok)
	assert.Equal(t, ast.AccessPrivate, field.Access)
}

func TestParseEnumInterfaceDelegate(t *testing.T) {
	source := `Module Shapes
    Enum Kind
        Circle
        Square = 4
    End Enum

    Interface IDrawable
        Sub Draw(depth As Integer)
        Function Area() As Double
    End Interface

    Delegate Function Comparer(a As Integer, b As Integer) As Integer
End Module`

	file := parseOne(t, source)
	mod := file.Decls[0].(*ast.ModuleDecl)
	require.Len(t, mod.Decls, 3)

	enum := mod.Decls[0].(*ast.EnumDecl)
	require.Len(t, enum.Members, 2)
	assert.Nil(t, enum.Members[0].Value)
	assert.NotNil(t, enum.Members[1].Value)

	iface := mod.Decls[1].(*ast.InterfaceDecl)
	require.Len(t, iface.Members, 2)
	sig := iface.Members[0].(*ast.FunctionDecl)
	assert.Nil(t, sig.Body, "interface members have no body")

	del := mod.Decls[2].(*ast.DelegateDecl)
	assert.False(t, del.IsSub)
	assert.Len(t, del.Params, 2)
}

func TestParseGenericTypeRef(t *testing.T) {
	source := `Module Main
    Dim items As List(Of String)
    Dim grid As Integer(,)
End Module`

	file := parseOne(t, source)
	mod := file.Decls[0].(*ast.ModuleDecl)

	list := mod.Decls[0].(*ast.DimDecl)
	require.Len(t, list.Type.Generics, 1)
	assert.Equal(t, "String", list.Type.Generics[0].Name.Value)

	grid := mod.Decls[1].(*ast.DimDecl)
	assert.Equal(t, 2, grid.Type.ArrayRank)
}

func TestFirstSyntaxErrorAbortsParse(t *testing.T) {
	source := `Module Main
    Sub Run()
        Dim = 1
        Dim also broken here
    End Sub
End Module`

	file, parseErr, _ := ParseSource("test.bas", source)
	assert.Nil(t, file)
	require.NotNil(t, parseErr)
	// Only the first error is reported, with its position.
	assert.Equal(t, 3, parseErr.Position.Line)
}

func TestParseErrorCarriesPosition(t *testing.T) {
	_, parseErr, _ := ParseSource("test.bas", "Module Main\n    Dim x As \nEnd Module")
	require.NotNil(t, parseErr)
	assert.Equal(t, 2, parseErr.Position.Line)
	assert.Contains(t, parseErr.Message, "type name")
}

func TestIntegerLiteralOutOfRangeIsRejected(t *testing.T) {
	source := `Module Main
    Sub Run()
        Dim big As Integer = 99999999999999999999
    End Sub
End Module`

	file, parseErr, _ := ParseSource("test.bas", source)
	assert.Nil(t, file)
	require.NotNil(t, parseErr)
	assert.Contains(t, parseErr.Message, "out of range")
	assert.Contains(t, parseErr.Message, "99999999999999999999")
	assert.Equal(t, 3, parseErr.Position.Line)
}

func TestPrintedTreeReparsesIdentically(t *testing.T) {
	source := `Module Main
    Function Fibonacci(n As Integer) As Integer
        If n <= 1 Then
            Return n
        End If
        Return Fibonacci(n - 1) + Fibonacci(n - 2)
    End Function
End Module`

	first := parseOne(t, source)
	second := parseOne(t, first.String())
	assert.Equal(t, first.String(), second.String())
}
