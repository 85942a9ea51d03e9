// Package ast declares the expression tree built by the parser.
package ast

import "codeberg.org/rileyq/calc/internal/compile/token"

type Node interface {
	Pos() token.Pos
	End() token.Pos

	astNode()
}

type Expr interface {
	Node

	astExpr()
}

// BinaryExpr applies one of + - * / to two operands.
type BinaryExpr struct {
	Left  Expr
	OpPos token.Pos
	Op    token.Type
	Right Expr
}

func (expr *BinaryExpr) Pos() token.Pos { return expr.Left.Pos() }
func (expr *BinaryExpr) End() token.Pos { return expr.Right.End() }

func (*BinaryExpr) astNode() {}
func (*BinaryExpr) astExpr() {}

// UnaryExpr is a prefix minus.
type UnaryExpr struct {
	OpPos token.Pos
	Op    token.Type
	X     Expr
}

func (expr *UnaryExpr) Pos() token.Pos { return expr.OpPos }
func (expr *UnaryExpr) End() token.Pos { return expr.X.End() }

func (*UnaryExpr) astNode() {}
func (*UnaryExpr) astExpr() {}

// NumberLit is a numeric value. Implicit literals are identity operands
// inserted by the parser rather than read from the source.
type NumberLit struct {
	ValuePos token.Pos
	ValueEnd token.Pos
	Value    float64
	Implicit bool
}

func (expr *NumberLit) Pos() token.Pos { return expr.ValuePos }
func (expr *NumberLit) End() token.Pos { return expr.ValueEnd }

func (*NumberLit) astNode() {}
func (*NumberLit) astExpr() {}

type Kind int

const (
	Undefined Kind = iota
	OperatorPlus
	OperatorMinus
	OperatorMul
	OperatorDiv
	UnaryMinus
	NumberValue
)

var kindNames = [...]string{
	Undefined:     "Undefined",
	OperatorPlus:  "OperatorPlus",
	OperatorMinus: "OperatorMinus",
	OperatorMul:   "OperatorMul",
	OperatorDiv:   "OperatorDiv",
	UnaryMinus:    "UnaryMinus",
	NumberValue:   "NumberValue",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		k = Undefined
	}
	return kindNames[k]
}

// KindOf classifies x. Nodes with an operator outside the grammar are
// Undefined.
func KindOf(x Expr) Kind {
	switch x := x.(type) {
	case *BinaryExpr:
		switch x.Op {
		case token.Plus:
			return OperatorPlus
		case token.Minus:
			return OperatorMinus
		case token.Mul:
			return OperatorMul
		case token.Div:
			return OperatorDiv
		}
	case *UnaryExpr:
		if x.Op == token.Minus {
			return UnaryMinus
		}
	case *NumberLit:
		return NumberValue
	}
	return Undefined
}
