package ast

import "codeberg.org/rileyq/calc/internal/compile/token"

// Simplify removes implicit identity operands from x, returning a tree
// with the same value. Literals written in the source are left alone.
// The input tree is not modified.
func Simplify(x Expr) Expr {
	switch x := x.(type) {
	case *BinaryExpr:
		if x == nil {
			return x
		}
		left, right := Simplify(x.Left), Simplify(x.Right)
		switch x.Op {
		case token.Plus:
			if isImplicit(right, 0) {
				return left
			}
			if isImplicit(left, 0) {
				return right
			}
		case token.Minus:
			if isImplicit(right, 0) {
				return left
			}
		case token.Mul:
			if isImplicit(right, 1) {
				return left
			}
			if isImplicit(left, 1) {
				return right
			}
		case token.Div:
			if isImplicit(right, 1) {
				return left
			}
		}
		return &BinaryExpr{Left: left, OpPos: x.OpPos, Op: x.Op, Right: right}
	case *UnaryExpr:
		if x == nil {
			return x
		}
		return &UnaryExpr{OpPos: x.OpPos, Op: x.Op, X: Simplify(x.X)}
	default:
		return x
	}
}

func isImplicit(x Expr, value float64) bool {
	lit, ok := x.(*NumberLit)
	return ok && lit != nil && lit.Implicit && lit.Value == value
}
