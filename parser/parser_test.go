package parser_test

import (
	"testing"

	"github.com/sigmaf-lang/sigmaf/ast"
	"github.com/sigmaf-lang/sigmaf/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := parser.New(src)
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "parser errors: %v", p.Errors())
	return program
}

func TestParseLetStatement(t *testing.T) {
	program := parseProgram(t, `let a = 5;`)
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.LetStatement)
	require.True(t, ok)
	assert.Equal(t, "a", stmt.Name.Value)
	assert.Nil(t, stmt.Name.DeclaredType)

	intLit, ok := stmt.Value.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(5), intLit.Value)
}

func TestParseLetStatementWithDeclaredType(t *testing.T) {
	program := parseProgram(t, `let a :: int = 5;`)
	stmt := program.Statements[0].(*ast.LetStatement)
	require.NotNil(t, stmt.Name.DeclaredType)
	assert.Equal(t, "int", stmt.Name.DeclaredType.String())
}

func TestParseReturnStatement(t *testing.T) {
	program := parseProgram(t, `=> 5;`)
	stmt, ok := program.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok)
	assert.Equal(t, "5", stmt.Value.String())
}

func TestParseInfixPrecedence(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3;", "(1 + (2 * 3))"},
		{"(1 + 2) * 3;", "((1 + 2) * 3)"},
		{"1 + 2 + 3;", "((1 + 2) + 3)"},
		{"2 ** 3 ** 2;", "(2 ** (3 ** 2))"},
		{"-5 + 3;", "((-5) + 3)"},
		{"1 < 2 == true;", "((1 < 2) == true)"},
		{"1 && 2 || 3;", "((1 && 2) || 3)"},
	}

	for _, c := range cases {
		program := parseProgram(t, c.input)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		assert.Equal(t, c.want, stmt.Expression.String())
	}
}

func TestParseTupleLiteral(t *testing.T) {
	program := parseProgram(t, `(1, "a", true);`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	tuple, ok := stmt.Expression.(*ast.TupleLiteral)
	require.True(t, ok)
	assert.Len(t, tuple.Values, 3)
}

func TestParseGroupingIsNotTuple(t *testing.T) {
	program := parseProgram(t, `(1 + 2);`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	_, isTuple := stmt.Expression.(*ast.TupleLiteral)
	assert.False(t, isTuple)
}

func TestParseListLiteral(t *testing.T) {
	program := parseProgram(t, `[1, 2, 3];`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	list, ok := stmt.Expression.(*ast.ListLiteral)
	require.True(t, ok)
	assert.Len(t, list.Values, 3)
}

func TestParseListLiteralHeterogeneousIsError(t *testing.T) {
	p := parser.New(`[1, 2.0];`)
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
}

func TestParseEmptyListLiteral(t *testing.T) {
	program := parseProgram(t, `[];`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	list := stmt.Expression.(*ast.ListLiteral)
	assert.Empty(t, list.Values)
}

func TestParseIfExpression(t *testing.T) {
	program := parseProgram(t, `if x == 1 then { => 1; } else { => 2; }`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	ifExpr, ok := stmt.Expression.(*ast.IfExpression)
	require.True(t, ok)
	require.NotNil(t, ifExpr.Alternative)
	assert.Len(t, ifExpr.Consequence.Statements, 1)
}

func TestParseFunctionLiteral(t *testing.T) {
	program := parseProgram(t, `fn x::int, y::int -> int { => x + y; }`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fn, ok := stmt.Expression.(*ast.FunctionLiteral)
	require.True(t, ok)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "x", fn.Parameters[0].Value)
	assert.Equal(t, "int", fn.TypeParameters[0].String())
	assert.Equal(t, "int", fn.TypeOutput.String())
}

func TestParseFunctionLiteralWithListAndTupleTypes(t *testing.T) {
	program := parseProgram(t, `fn xs::[int], t::(int,str) -> [int] { => xs; }`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fn := stmt.Expression.(*ast.FunctionLiteral)
	assert.Equal(t, "[int]", fn.TypeParameters[0].String())
	assert.Equal(t, "(int, str)", fn.TypeParameters[1].String())
	assert.Equal(t, "[int]", fn.TypeOutput.String())
}

func TestParseCallExpression(t *testing.T) {
	program := parseProgram(t, `add(1, 2);`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expression.(*ast.CallExpression)
	require.True(t, ok)
	assert.Equal(t, "add", call.Function.String())
	assert.Len(t, call.Arguments, 2)
}

func TestParseCompositionExpression(t *testing.T) {
	program := parseProgram(t, `five . two;`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	infix, ok := stmt.Expression.(*ast.InfixExpression)
	require.True(t, ok)
	assert.Equal(t, ".", infix.Operator)
}

func TestParseIndexAndSlice(t *testing.T) {
	program := parseProgram(t, `xs[0]; xs[0, 2]; xs[0, 2, 1];`)
	require.Len(t, program.Statements, 3)

	for i, want := range []int{1, 2, 3} {
		stmt := program.Statements[i].(*ast.ExpressionStatement)
		cl, ok := stmt.Expression.(*ast.CallListExpression)
		require.True(t, ok)
		assert.Len(t, cl.Range, want)
	}
}

func TestParseErrorsAreCollectedAndParsingContinues(t *testing.T) {
	p := parser.New(`let = 5; let b = 3;`)
	program := p.ParseProgram()
	assert.NotEmpty(t, p.Errors())
	assert.NotEmpty(t, program.Statements)
}

func TestParseRecursiveFunctionProgram(t *testing.T) {
	src := `let sum = fn xs::[int] -> int { if length(xs) == 0 then { => 0; }; => xs[0] + sum(xs[1, length(xs)]); } sum([1,2,3,4,5]);`
	program := parseProgram(t, src)
	require.Len(t, program.Statements, 2)
}
