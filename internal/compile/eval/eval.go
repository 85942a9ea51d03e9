// Package eval reduces expression trees to a float64.
package eval

import (
	"codeberg.org/rileyq/calc/internal/compile/ast"
	"codeberg.org/rileyq/calc/internal/compile/parser"
	"codeberg.org/rileyq/calc/internal/compile/token"
)

// Error reports a tree that cannot be evaluated. The parser never builds
// such trees.
type Error struct {
	Msg string
}

func (err *Error) Error() string {
	return "eval error: " + err.Msg
}

var errIncorrectTree = &Error{Msg: "Incorrect syntax tree"}

// Evaluate walks x in post order. Division follows IEEE 754, so dividing
// by zero yields an infinity or NaN rather than an error.
func Evaluate(x ast.Expr) (float64, error) {
	switch x := x.(type) {
	case *ast.NumberLit:
		if x == nil {
			return 0, errIncorrectTree
		}
		return x.Value, nil
	case *ast.UnaryExpr:
		if x == nil || x.Op != token.Minus {
			return 0, errIncorrectTree
		}
		v, err := Evaluate(x.X)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case *ast.BinaryExpr:
		if x == nil {
			return 0, errIncorrectTree
		}
		a, err := Evaluate(x.Left)
		if err != nil {
			return 0, err
		}
		b, err := Evaluate(x.Right)
		if err != nil {
			return 0, err
		}
		switch x.Op {
		case token.Plus:
			return a + b, nil
		case token.Minus:
			return a - b, nil
		case token.Mul:
			return a * b, nil
		case token.Div:
			return a / b, nil
		}
	}
	return 0, errIncorrectTree
}

// Source parses and evaluates src.
func Source(src string) (float64, error) {
	x, err := parser.ParseString(src)
	if err != nil {
		return 0, err
	}
	return Evaluate(x)
}
