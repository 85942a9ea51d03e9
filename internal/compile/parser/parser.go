// Package parser builds expression trees with a recursive-descent parser
// over the grammar
//
//	Expression  := Term Expression'
//	Expression' := ('+' | '-') Term Expression' | ε
//	Term        := Factor Term'
//	Term'       := ('*' | '/') Factor Term' | ε
//	Factor      := '(' Expression ')' | '-' Factor | Number
//
// The first error aborts the parse; no partial tree is returned.
package parser

import (
	"errors"
	"fmt"

	"codeberg.org/rileyq/calc/internal/compile/ast"
	"codeberg.org/rileyq/calc/internal/compile/scanner"
	"codeberg.org/rileyq/calc/internal/compile/token"
)

// Mode controls the shape of the tree built by the parser.
type Mode uint

const (
	// UniformTree builds a node for every rule, including an implicit
	// identity operand (0 for Expression', 1 for Term') where a primed
	// rule matches ε. Primed rules put the accumulated tail first and the
	// freshly parsed operand second. Values are the same as in the
	// default minimal tree; ast.Simplify folds the identities away.
	UniformTree Mode = 1 << iota
)

// maxDepth bounds nesting of parentheses and unary minus.
const maxDepth = 1000

type Parser struct {
	scn   Scanner
	mode  Mode
	t     *token.Token
	depth int
}

func New(scn Scanner, mode Mode) *Parser {
	return &Parser{scn: scn, mode: mode}
}

func ParseString(src string) (ast.Expr, error) {
	return ParseStringMode(src, 0)
}

func ParseStringMode(src string, mode Mode) (ast.Expr, error) {
	return New(scanner.New(src), mode).Parse()
}

// Parse reads a complete expression. The whole input must be consumed.
func (p *Parser) Parse() (ast.Expr, error) {
	if err := p.next(); err != nil {
		return nil, err
	}

	x, err := p.expression()
	if err != nil {
		return nil, err
	}

	if p.t.Type != token.EndOfText {
		return nil, p.unexpected()
	}

	return x, nil
}

func (p *Parser) expression() (ast.Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}

	if p.mode&UniformTree == 0 {
		return p.expressionTail(left)
	}

	tail, err := p.uniformExpressionTail()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{Left: left, OpPos: token.NoPos, Op: token.Plus, Right: tail}, nil
}

func (p *Parser) expressionTail(left ast.Expr) (ast.Expr, error) {
	op := p.t
	if op.Type != token.Plus && op.Type != token.Minus {
		return left, nil
	}
	if err := p.next(); err != nil {
		return nil, err
	}

	right, err := p.term()
	if err != nil {
		return nil, err
	}

	return p.expressionTail(&ast.BinaryExpr{Left: left, OpPos: op.Pos, Op: op.Type, Right: right})
}

func (p *Parser) uniformExpressionTail() (ast.Expr, error) {
	op := p.t
	if op.Type != token.Plus && op.Type != token.Minus {
		return p.identity(0), nil
	}
	if err := p.next(); err != nil {
		return nil, err
	}

	right, err := p.term()
	if err != nil {
		return nil, err
	}
	tail, err := p.uniformExpressionTail()
	if err != nil {
		return nil, err
	}

	return &ast.BinaryExpr{Left: tail, OpPos: op.Pos, Op: op.Type, Right: right}, nil
}

func (p *Parser) term() (ast.Expr, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}

	if p.mode&UniformTree == 0 {
		return p.termTail(left)
	}

	tail, err := p.uniformTermTail()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{Left: left, OpPos: token.NoPos, Op: token.Mul, Right: tail}, nil
}

func (p *Parser) termTail(left ast.Expr) (ast.Expr, error) {
	op := p.t
	if op.Type != token.Mul && op.Type != token.Div {
		return left, nil
	}
	if err := p.next(); err != nil {
		return nil, err
	}

	right, err := p.factor()
	if err != nil {
		return nil, err
	}

	return p.termTail(&ast.BinaryExpr{Left: left, OpPos: op.Pos, Op: op.Type, Right: right})
}

func (p *Parser) uniformTermTail() (ast.Expr, error) {
	op := p.t
	if op.Type != token.Mul && op.Type != token.Div {
		return p.identity(1), nil
	}
	if err := p.next(); err != nil {
		return nil, err
	}

	right, err := p.factor()
	if err != nil {
		return nil, err
	}
	tail, err := p.uniformTermTail()
	if err != nil {
		return nil, err
	}

	return &ast.BinaryExpr{Left: tail, OpPos: op.Pos, Op: op.Type, Right: right}, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	switch p.t.Type {
	case token.OpenParenthesis:
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()

		if err := p.next(); err != nil {
			return nil, err
		}
		x, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.match(token.CloseParenthesis); err != nil {
			return nil, err
		}
		return x, nil
	case token.Minus:
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()

		op := p.t
		if err := p.next(); err != nil {
			return nil, err
		}
		x, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{OpPos: op.Pos, Op: token.Minus, X: x}, nil
	case token.Number:
		tok := p.t
		if err := p.next(); err != nil {
			return nil, err
		}
		return &ast.NumberLit{ValuePos: tok.Pos, ValueEnd: tok.End, Value: tok.Value}, nil
	default:
		return nil, p.unexpected()
	}
}

func (p *Parser) identity(value float64) *ast.NumberLit {
	return &ast.NumberLit{
		ValuePos: p.t.Pos,
		ValueEnd: p.t.Pos,
		Value:    value,
		Implicit: true,
	}
}

func (p *Parser) match(typ token.Type) error {
	if p.t.Type != typ {
		return NewParseError(p.t.Pos, p.t.End, fmt.Errorf("Expected token '%s' at position %d", typ, p.t.Pos))
	}
	return p.next()
}

func (p *Parser) next() error {
	t, err := p.scn.Scan()
	if err != nil {
		var serr *scanner.Error
		if errors.As(err, &serr) {
			return NewParseError(serr.Pos, serr.Pos+1, err)
		}
		return NewParseError(token.NoPos, token.NoPos, err)
	}
	p.t = t
	return nil
}

func (p *Parser) enter() error {
	if p.depth >= maxDepth {
		return NewParseError(p.t.Pos, p.t.End, fmt.Errorf("expression nested too deeply at position %d", p.t.Pos))
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) unexpected() error {
	if p.t.Type == token.EndOfText {
		return NewParseError(p.t.Pos, p.t.End, fmt.Errorf("Unexpected end of text at position %d", p.t.Pos))
	}
	return NewParseError(p.t.Pos, p.t.End, fmt.Errorf("Unexpected token '%s' at position %d", p.t.Text, p.t.Pos))
}

type Scanner interface {
	Scan() (*token.Token, error)
}

type ParseError struct {
	pos, end token.Pos
	err      error
}

func NewParseError(pos, end token.Pos, err error) *ParseError {
	return &ParseError{pos, end, err}
}

func (err *ParseError) Pos() token.Pos { return err.pos }
func (err *ParseError) End() token.Pos { return err.end }

func (err *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", err.err)
}

func (err *ParseError) Unwrap() error {
	return err.err
}
