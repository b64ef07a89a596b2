package parser

import (
	"errors"
	"testing"

	"github.com/RZakaria1/LDI-Interpreter/ast"
	"github.com/RZakaria1/LDI-Interpreter/lexer"
	"github.com/RZakaria1/LDI-Interpreter/token"
)

func parse(t *testing.T, input string) ast.Statement {
	t.Helper()
	p := New(lexer.New(input))
	stmt, err := p.ParseStatement()
	checkParserErrors(t, input, err)
	if stmt == nil {
		t.Fatalf("%q: ParseStatement returned nil", input)
	}
	return stmt
}

func checkParserErrors(t *testing.T, input string, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("%q: parser error: %v", input, err)
	}
}

func TestAssignStatements(t *testing.T) {
	tests := []struct {
		input              string
		expectedIdentifier string
		expectedValue      interface{}
	}{
		{"x = 5", "x", 5.0},
		{"y = true", "y", true},
		{"Foo_bar = y", "Foo_bar", "y"},
	}

	for _, tt := range tests {
		stmt := parse(t, tt.input)

		assign, ok := stmt.(*ast.AssignStatement)
		if !ok {
			t.Fatalf("%q: stmt not *ast.AssignStatement. got=%T", tt.input, stmt)
		}
		if assign.Name.Value != tt.expectedIdentifier {
			t.Errorf("assign.Name.Value not '%s'. got=%s", tt.expectedIdentifier, assign.Name.Value)
		}
		testLiteralExpression(t, assign.Value, tt.expectedValue)
	}
}

func TestPrintStatement(t *testing.T) {
	stmt := parse(t, `PRINT "a" + 1`)

	ps, ok := stmt.(*ast.PrintStatement)
	if !ok {
		t.Fatalf("stmt not *ast.PrintStatement. got=%T", stmt)
	}
	if ps.String() != `print ("a" + 1)` {
		t.Errorf("ps.String() wrong. got=%q", ps.String())
	}
}

func TestIdentifierWithoutAssignIsExpression(t *testing.T) {
	stmt := parse(t, "x == 5")

	es, ok := stmt.(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("stmt not *ast.ExpressionStatement. got=%T", stmt)
	}
	testInfixExpression(t, es.Expression, "x", "==", 5.0)

	stmt = parse(t, "x")
	es, ok = stmt.(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("stmt not *ast.ExpressionStatement. got=%T", stmt)
	}
	testIdentifier(t, es.Expression, "x")
}

func TestParsingPrefixExpressions(t *testing.T) {
	prefixTests := []struct {
		input    string
		operator string
		value    interface{}
	}{
		{"-15", "-", 15.0},
		{"not 5", "not", 5.0},
		{"NOT true", "not", true},
		{"-x", "-", "x"},
	}

	for _, tt := range prefixTests {
		stmt := parse(t, tt.input).(*ast.ExpressionStatement)

		exp, ok := stmt.Expression.(*ast.PrefixExpression)
		if !ok {
			t.Fatalf("stmt is not ast.PrefixExpression. got=%T", stmt.Expression)
		}
		if exp.Operator != tt.operator {
			t.Fatalf("exp.Operator is not '%s'. got=%s", tt.operator, exp.Operator)
		}
		testLiteralExpression(t, exp.Right, tt.value)
	}
}

func TestParsingInfixExpressions(t *testing.T) {
	infixTests := []struct {
		input      string
		leftValue  interface{}
		operator   string
		rightValue interface{}
	}{
		{"5 + 5", 5.0, "+", 5.0},
		{"5 - 5", 5.0, "-", 5.0},
		{"5 * 5", 5.0, "*", 5.0},
		{"5 / 5", 5.0, "/", 5.0},
		{"5 > 5", 5.0, ">", 5.0},
		{"5 < 5", 5.0, "<", 5.0},
		{"5 >= 5", 5.0, ">=", 5.0},
		{"5 <= 5", 5.0, "<=", 5.0},
		{"5 == 5", 5.0, "==", 5.0},
		{"5 != 5", 5.0, "!=", 5.0},
		{"true and false", true, "and", false},
		{"a OR b", "a", "or", "b"},
	}

	for _, tt := range infixTests {
		stmt := parse(t, tt.input).(*ast.ExpressionStatement)
		testInfixExpression(t, stmt.Expression, tt.leftValue, tt.operator, tt.rightValue)
	}
}

func TestOperatorPrecedenceParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"-2 + 3", "((-2) + 3)"},
		{"-a * b", "((-a) * b)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a - b - c", "((a - b) - c)"},
		{"1 < 2 and 2 < 3", "((1 < 2) and (2 < 3))"},
		{"a or b and c", "((a or b) and c)"},
		{"a == b != c", "((a == b) != c)"},
		{"not a == b", "((not a) == b)"},
		{"not (a == b)", "(not (a == b))"},
		{"- -1", "(-(-1))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"(((a)))", "a"},
		{"x = a + b * c", "x = (a + (b * c))"},
		{`print "s" + -x`, `print ("s" + (-x))`},
	}

	for _, tt := range tests {
		actual := parse(t, tt.input).String()
		if actual != tt.expected {
			t.Errorf("%q: expected=%q, got=%q", tt.input, tt.expected, actual)
		}
	}
}

func TestEmptyLine(t *testing.T) {
	stmt, err := New(lexer.New("   ")).ParseStatement()
	if err != nil || stmt != nil {
		t.Fatalf("expected nil statement and nil error, got %v, %v", stmt, err)
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		got      token.TokenType
	}{
		{"1 2", "EOF", token.NUMBER},
		{"(1 + 2", ")", token.EOF},
		{"x = ", "", token.EOF},
		{"print", "", token.EOF},
		{"1 +", "", token.EOF},
		{"* 3", "", token.ASTERISK},
		{"(1) = 2", "EOF", token.ASSIGN},
		{"x = y = 2", "EOF", token.ASSIGN},
		{"print print 1", "", token.PRINT},
	}

	for _, tt := range tests {
		stmt, err := New(lexer.New(tt.input)).ParseStatement()
		if stmt != nil {
			t.Errorf("%q: expected nil statement, got %s", tt.input, stmt)
		}

		var synErr *Error
		if !errors.As(err, &synErr) {
			t.Fatalf("%q: expected *Error, got %v", tt.input, err)
		}
		if synErr.Expected != tt.expected {
			t.Errorf("%q: expected Expected=%q, got %q", tt.input, tt.expected, synErr.Expected)
		}
		if synErr.Got != tt.got {
			t.Errorf("%q: expected Got=%s, got %s", tt.input, tt.got, synErr.Got)
		}
	}
}

func TestLexicalErrorsSurface(t *testing.T) {
	for _, input := range []string{"1 + $", "$", `print "oops`, "(1 # 2)", "x = 1.2.3"} {
		_, err := New(lexer.New(input)).ParseStatement()

		var lexErr *lexer.Error
		if !errors.As(err, &lexErr) {
			t.Errorf("%q: expected *lexer.Error, got %v", input, err)
		}
	}
}

func testInfixExpression(t *testing.T, exp ast.Expression, left interface{},
	operator string, right interface{}) bool {
	t.Helper()

	opExp, ok := exp.(*ast.InfixExpression)
	if !ok {
		t.Errorf("exp is not ast.InfixExpression. got=%T(%s)", exp, exp)
		return false
	}

	if !testLiteralExpression(t, opExp.Left, left) {
		return false
	}

	if opExp.Operator != operator {
		t.Errorf("exp.Operator is not '%s'. got=%q", operator, opExp.Operator)
		return false
	}

	return testLiteralExpression(t, opExp.Right, right)
}

func testLiteralExpression(t *testing.T, exp ast.Expression, expected interface{}) bool {
	t.Helper()

	switch v := expected.(type) {
	case float64:
		return testNumberLiteral(t, exp, v)
	case string:
		return testIdentifier(t, exp, v)
	case bool:
		return testBooleanLiteral(t, exp, v)
	}
	t.Errorf("type of exp not handled. got=%T", exp)
	return false
}

func testNumberLiteral(t *testing.T, nl ast.Expression, value float64) bool {
	t.Helper()

	num, ok := nl.(*ast.NumberLiteral)
	if !ok {
		t.Errorf("nl not *ast.NumberLiteral. got=%T", nl)
		return false
	}
	if num.Value != value {
		t.Errorf("num.Value not %g. got=%g", value, num.Value)
		return false
	}
	return true
}

func testIdentifier(t *testing.T, exp ast.Expression, value string) bool {
	t.Helper()

	ident, ok := exp.(*ast.Identifier)
	if !ok {
		t.Errorf("exp not *ast.Identifier. got=%T", exp)
		return false
	}
	if ident.Value != value {
		t.Errorf("ident.Value not %s. got=%s", value, ident.Value)
		return false
	}
	return true
}

func testBooleanLiteral(t *testing.T, exp ast.Expression, value bool) bool {
	t.Helper()

	bo, ok := exp.(*ast.BooleanLiteral)
	if !ok {
		t.Errorf("exp not *ast.BooleanLiteral. got=%T", exp)
		return false
	}
	if bo.Value != value {
		t.Errorf("bo.Value not %t. got=%t", value, bo.Value)
		return false
	}
	return true
}
