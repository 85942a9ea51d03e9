package printer

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"codeberg.org/rileyq/calc/internal/compile/ast"
	"codeberg.org/rileyq/calc/internal/compile/token"
)

// Fprint writes node in infix form with the fewest parentheses that keep
// the tree shape when the output is parsed again. Infinite and NaN values
// have no literal form and are reported as errors.
func Fprint(w io.Writer, node ast.Node) error {
	return fprint(w, node)
}

// Sprint is like Fprint but drops the error; output stops at the first node
// that cannot be printed.
func Sprint(node ast.Node) string {
	var b strings.Builder
	_ = Fprint(&b, node)
	return b.String()
}

func fprint(w io.Writer, node ast.Node) error {
	var err error
	switch node := node.(type) {
	case *ast.BinaryExpr:
		prec := node.Op.Precedence()
		err = operand(w, node.Left, precedence(node.Left) < prec)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, " "+node.Op.String()+" ")
		if err != nil {
			return err
		}
		err = operand(w, node.Right, precedence(node.Right) <= prec)
		if err != nil {
			return err
		}
		return nil
	case *ast.UnaryExpr:
		_, err = io.WriteString(w, node.Op.String())
		if err != nil {
			return err
		}
		return operand(w, node.X, precedence(node.X) < token.PrecedenceUnary)
	case *ast.NumberLit:
		if math.IsInf(node.Value, 0) || math.IsNaN(node.Value) {
			return fmt.Errorf("number at position %d has no literal form: %v", node.ValuePos, node.Value)
		}
		_, err = io.WriteString(w, strconv.FormatFloat(node.Value, 'f', -1, 64))
		return err
	case nil:
		_, err = io.WriteString(w, "<nil>")
		return err
	default:
		return fmt.Errorf("unhandled node: %T", node)
	}
}

func operand(w io.Writer, x ast.Expr, parens bool) error {
	if !parens {
		return fprint(w, x)
	}
	_, err := io.WriteString(w, "(")
	if err != nil {
		return err
	}
	err = fprint(w, x)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, ")")
	return err
}

func precedence(x ast.Expr) token.Precedence {
	switch x := x.(type) {
	case *ast.BinaryExpr:
		return x.Op.Precedence()
	default:
		return token.PrecedenceUnary
	}
}

// Fdump writes the tree under node, one node per line, children indented
// below their parent.
func Fdump(w io.Writer, node ast.Node) error {
	return fdump(w, node, 0)
}

func fdump(w io.Writer, node ast.Node, depth int) error {
	const pad = "  "

	_, err := io.WriteString(w, strings.Repeat(pad, depth))
	if err != nil {
		return err
	}

	switch node := node.(type) {
	case *ast.BinaryExpr:
		_, err = fmt.Fprintln(w, ast.KindOf(node))
		if err != nil {
			return err
		}
		err = fdump(w, node.Left, depth+1)
		if err != nil {
			return err
		}
		return fdump(w, node.Right, depth+1)
	case *ast.UnaryExpr:
		_, err = fmt.Fprintln(w, ast.KindOf(node))
		if err != nil {
			return err
		}
		return fdump(w, node.X, depth+1)
	case *ast.NumberLit:
		suffix := ""
		if node.Implicit {
			suffix = " (implicit)"
		}
		_, err = fmt.Fprintf(w, "%s %s%s\n", ast.NumberValue, strconv.FormatFloat(node.Value, 'g', -1, 64), suffix)
		return err
	case nil:
		_, err = io.WriteString(w, "<nil>\n")
		return err
	default:
		return fmt.Errorf("unhandled node: %T", node)
	}
}
