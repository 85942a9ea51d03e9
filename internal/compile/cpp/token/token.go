// Package token defines the tokens produced by the C++ scanner.
package token

import "strconv"

//go:generate go run ../../../../tools/generate_tokens.go tokens.json tables.go

// Token is a single lexeme. Text is the exact source span.
type Token struct {
	Kind   Kind
	Line   int
	Offset int
	Text   string
}

func (t Token) String() string {
	return t.Kind.String() + " " + strconv.Quote(t.Text)
}
