package parser_test

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"codeberg.org/rileyq/calc/internal/compile/ast"
	"codeberg.org/rileyq/calc/internal/compile/eval"
	"codeberg.org/rileyq/calc/internal/compile/parser"
	"codeberg.org/rileyq/calc/internal/compile/scanner"
	"codeberg.org/rileyq/calc/internal/compile/token"
)

func TestParseAndEvaluate(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"1+2*3", 7},
		{"(1+2)*(3+4)", 21},
		{"-1+(-2.0)", -3},
		{"42", 42},
		{"  3.5  ", 3.5},
		{"1-2-3", -4},
		{"1-2+3", 2},
		{"8/2/2", 2},
		{"8/2*4", 16},
		{"2*3-4/8", 5.5},
		{"--2", 2},
		{"-(1+2)*3", -9},
		{"((((7))))", 7},
		{"10 / 4", 2.5},
		{"1.", 1},
	}

	for _, mode := range []parser.Mode{0, parser.UniformTree} {
		for _, tt := range tests {
			x, err := parser.ParseStringMode(tt.src, mode)
			if err != nil {
				t.Errorf("mode %d: Parse(%q) error: %v", mode, tt.src, err)
				continue
			}
			got, err := eval.Evaluate(x)
			if err != nil {
				t.Errorf("mode %d: Evaluate(%q) error: %v", mode, tt.src, err)
				continue
			}
			if got != tt.want {
				t.Errorf("mode %d: %q = %v, want %v", mode, tt.src, got, tt.want)
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src string
		pos token.Pos
		msg string
	}{
		{"1 ** 2.5", 3, "Unexpected token '*' at position 3"},
		{"M1 + 2.5", 0, "Unexpected token 'M' at position 0"},
		{"(1+2", 4, "Expected token ')' at position 4"},
		{"(1+2 3)", 5, "Expected token ')' at position 5"},
		{"1 2", 2, "Unexpected token '2' at position 2"},
		{"(1+2))", 5, "Unexpected token ')' at position 5"},
		{"", 0, "Unexpected end of text at position 0"},
		{"1+", 2, "Unexpected end of text at position 2"},
		{"()", 1, "Unexpected token ')' at position 1"},
		{"2 * x", 4, "Unexpected token 'x' at position 4"},
	}

	for _, mode := range []parser.Mode{0, parser.UniformTree} {
		for _, tt := range tests {
			x, err := parser.ParseStringMode(tt.src, mode)
			if x != nil {
				t.Errorf("mode %d: Parse(%q) returned a tree with error %v", mode, tt.src, err)
			}
			var perr *parser.ParseError
			if !errors.As(err, &perr) {
				t.Errorf("mode %d: Parse(%q) error = %v, want *ParseError", mode, tt.src, err)
				continue
			}
			if perr.Pos() != tt.pos {
				t.Errorf("mode %d: Parse(%q) position = %d, want %d", mode, tt.src, perr.Pos(), tt.pos)
			}
			if got := errors.Unwrap(perr).Error(); got != tt.msg {
				t.Errorf("mode %d: Parse(%q) message = %q, want %q", mode, tt.src, got, tt.msg)
			}
			if !strings.HasPrefix(perr.Error(), "parse error: ") {
				t.Errorf("mode %d: Parse(%q) Error() = %q", mode, tt.src, perr.Error())
			}
		}
	}
}

func TestScannerErrorIsWrapped(t *testing.T) {
	_, err := parser.ParseString("1 + $")
	var serr *scanner.Error
	if !errors.As(err, &serr) {
		t.Fatalf("error %v does not wrap *scanner.Error", err)
	}
	if serr.Pos != 4 {
		t.Errorf("scanner error position = %d, want 4", serr.Pos)
	}
}

func TestMinimalTreeIsLeftAssociative(t *testing.T) {
	x, err := parser.ParseString("1-2-3")
	if err != nil {
		t.Fatal(err)
	}
	root, ok := x.(*ast.BinaryExpr)
	if !ok || ast.KindOf(root) != ast.OperatorMinus {
		t.Fatalf("root = %#v, want OperatorMinus", x)
	}
	if ast.KindOf(root.Left) != ast.OperatorMinus || ast.KindOf(root.Right) != ast.NumberValue {
		t.Errorf("got %v(%v, %v), want OperatorMinus(OperatorMinus, NumberValue)",
			ast.KindOf(root), ast.KindOf(root.Left), ast.KindOf(root.Right))
	}
	if root.Pos() != 0 || root.End() != 5 || root.OpPos != 3 {
		t.Errorf("positions: pos %d end %d op %d", root.Pos(), root.End(), root.OpPos)
	}
}

func TestUniformTreeShape(t *testing.T) {
	x, err := parser.ParseStringMode("2", parser.UniformTree)
	if err != nil {
		t.Fatal(err)
	}
	// 2 parses as (2 * 1) + 0.
	plus, ok := x.(*ast.BinaryExpr)
	if !ok || plus.Op != token.Plus {
		t.Fatalf("root = %#v, want +", x)
	}
	mul, ok := plus.Left.(*ast.BinaryExpr)
	if !ok || mul.Op != token.Mul {
		t.Fatalf("left = %#v, want *", plus.Left)
	}
	if lit := plus.Right.(*ast.NumberLit); !lit.Implicit || lit.Value != 0 {
		t.Errorf("right of + = %#v, want implicit 0", lit)
	}
	if lit := mul.Right.(*ast.NumberLit); !lit.Implicit || lit.Value != 1 {
		t.Errorf("right of * = %#v, want implicit 1", lit)
	}
	if lit := mul.Left.(*ast.NumberLit); lit.Implicit || lit.Value != 2 {
		t.Errorf("left of * = %#v, want literal 2", lit)
	}

	if got := ast.Simplify(x); !reflect.DeepEqual(got, mul.Left) {
		t.Errorf("Simplify = %#v, want the literal 2", got)
	}
}

func TestParseIsRepeatable(t *testing.T) {
	const src = "(1.5 - -2) * 3 / (4 + 5)"
	for _, mode := range []parser.Mode{0, parser.UniformTree} {
		a, err := parser.ParseStringMode(src, mode)
		if err != nil {
			t.Fatal(err)
		}
		b, err := parser.ParseStringMode(src, mode)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("mode %d: parsing twice gave different trees", mode)
		}
	}
}

func TestNestingLimit(t *testing.T) {
	ok := strings.Repeat("(", 500) + "1" + strings.Repeat(")", 500)
	if _, err := parser.ParseString(ok); err != nil {
		t.Errorf("500 levels: %v", err)
	}

	deep := strings.Repeat("(", 2000) + "1" + strings.Repeat(")", 2000)
	var perr *parser.ParseError
	if _, err := parser.ParseString(deep); !errors.As(err, &perr) {
		t.Errorf("2000 levels: error = %v, want *ParseError", err)
	}

	negs := strings.Repeat("-", 2000) + "1"
	if _, err := parser.ParseString(negs); !errors.As(err, &perr) {
		t.Errorf("2000 unary minuses: error = %v, want *ParseError", err)
	}
}

// TestConventionalPrecedence checks random operator chains against a
// two-level left-to-right reduction.
func TestConventionalPrecedence(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	ops := []byte{'+', '-', '*', '/'}

	for range 500 {
		n := 1 + rng.IntN(8)
		nums := make([]float64, n+1)
		opers := make([]byte, n)
		var b strings.Builder
		for i := range nums {
			nums[i] = float64(1 + rng.IntN(9))
			if rng.IntN(4) == 0 {
				nums[i] += 0.5
			}
			b.WriteString(strconv.FormatFloat(nums[i], 'f', -1, 64))
			if i < n {
				opers[i] = ops[rng.IntN(len(ops))]
				b.WriteByte(' ')
				b.WriteByte(opers[i])
				b.WriteByte(' ')
			}
		}
		src := b.String()
		want := reference(nums, opers)

		for _, mode := range []parser.Mode{0, parser.UniformTree} {
			if mode == parser.UniformTree && !exactInUniformOrder(opers) {
				continue
			}
			got, err := evalMode(src, mode)
			if err != nil {
				t.Fatalf("%q: %v", src, err)
			}
			if got != want {
				t.Errorf("mode %d: %q = %v, want %v", mode, src, got, want)
			}
		}
	}
}

// exactInUniformOrder reports whether the chain is free of operators whose
// regrouping in the uniform tree could change floating point rounding.
func exactInUniformOrder(opers []byte) bool {
	for _, op := range opers {
		if op == '/' {
			return false
		}
	}
	return true
}

func evalMode(src string, mode parser.Mode) (float64, error) {
	x, err := parser.ParseStringMode(src, mode)
	if err != nil {
		return 0, err
	}
	return eval.Evaluate(x)
}

func reference(nums []float64, opers []byte) float64 {
	terms := []float64{nums[0]}
	var signs []byte
	for i, op := range opers {
		switch op {
		case '*':
			terms[len(terms)-1] *= nums[i+1]
		case '/':
			terms[len(terms)-1] /= nums[i+1]
		default:
			terms = append(terms, nums[i+1])
			signs = append(signs, op)
		}
	}
	sum := terms[0]
	for i, op := range signs {
		if op == '+' {
			sum += terms[i+1]
		} else {
			sum -= terms[i+1]
		}
	}
	return sum
}
