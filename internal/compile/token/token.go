// Package token defines the lexical tokens of arithmetic expressions.
package token

// Pos is a byte offset into the source text.
type Pos int

const NoPos Pos = -1

func (p Pos) IsValid() bool { return p >= 0 }

type Type int

const (
	Error Type = iota
	Plus
	Minus
	Mul
	Div
	EndOfText
	OpenParenthesis
	CloseParenthesis
	Number
)

var names = [...]string{
	Error:            "<error>",
	Plus:             "+",
	Minus:            "-",
	Mul:              "*",
	Div:              "/",
	EndOfText:        "<end of text>",
	OpenParenthesis:  "(",
	CloseParenthesis: ")",
	Number:           "<number>",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(names) {
		t = Error
	}
	return names[t]
}

// Token is a single lexeme. Value is set for Number tokens only.
type Token struct {
	Type  Type
	Pos   Pos
	End   Pos
	Text  string
	Value float64
}
