package eval

import (
	"errors"
	"math"
	"testing"

	"codeberg.org/rileyq/calc/internal/compile/ast"
	"codeberg.org/rileyq/calc/internal/compile/parser"
	"codeberg.org/rileyq/calc/internal/compile/token"
)

func num(v float64) *ast.NumberLit {
	return &ast.NumberLit{ValuePos: token.NoPos, ValueEnd: token.NoPos, Value: v}
}

func bin(op token.Type, a, b ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{Left: a, OpPos: token.NoPos, Op: op, Right: b}
}

func TestSource(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1+2*3", 7},
		{"(1+2)*(3+4)", 21},
		{"-1+(-2.0)", -3},
		{"-(-(-4))", -4},
		{"100 / 8 / 5", 2.5},
	}

	for _, tt := range tests {
		got, err := Source(tt.input)
		if err != nil {
			t.Errorf("Source(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Source(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	tests := []struct {
		input string
		check func(float64) bool
	}{
		{"1/0", func(v float64) bool { return math.IsInf(v, 1) }},
		{"-1/0", func(v float64) bool { return math.IsInf(v, -1) }},
		{"0/0", math.IsNaN},
	}

	for _, tt := range tests {
		got, err := Source(tt.input)
		if err != nil {
			t.Errorf("Source(%q) error: %v", tt.input, err)
			continue
		}
		if !tt.check(got) {
			t.Errorf("Source(%q) = %v", tt.input, got)
		}
	}
}

func TestSourceReportsParseErrors(t *testing.T) {
	_, err := Source("1 ** 2.5")
	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *parser.ParseError", err)
	}
	var eerr *Error
	if errors.As(err, &eerr) {
		t.Error("parse failure reported as an evaluation error")
	}
}

func TestIncorrectTree(t *testing.T) {
	var nilLit *ast.NumberLit
	tests := []struct {
		name string
		x    ast.Expr
	}{
		{"nil", nil},
		{"typed nil", nilLit},
		{"missing right", bin(token.Plus, num(1), nil)},
		{"missing left", bin(token.Mul, nil, num(1))},
		{"nested typed nil", bin(token.Div, num(1), bin(token.Minus, nilLit, num(2)))},
		{"unary without operand", &ast.UnaryExpr{Op: token.Minus}},
		{"unary plus", &ast.UnaryExpr{Op: token.Plus, X: num(1)}},
		{"bad operator", bin(token.OpenParenthesis, num(1), num(2))},
	}

	for _, tt := range tests {
		_, err := Evaluate(tt.x)
		var eerr *Error
		if !errors.As(err, &eerr) {
			t.Errorf("%s: error = %v, want *Error", tt.name, err)
			continue
		}
		if eerr.Msg != "Incorrect syntax tree" {
			t.Errorf("%s: message = %q", tt.name, eerr.Msg)
		}
	}
}

func TestSimplifyPreservesValue(t *testing.T) {
	inputs := []string{"1", "1+2*3", "8/2/2", "1-2-3", "-(4-6)*2/8", "(1+2)*(3+4)"}

	for _, input := range inputs {
		uniform, err := parser.ParseStringMode(input, parser.UniformTree)
		if err != nil {
			t.Fatal(err)
		}
		want, err := Evaluate(uniform)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Evaluate(ast.Simplify(uniform))
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%q: simplified %v, uniform %v", input, got, want)
		}
	}
}
