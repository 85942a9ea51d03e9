// Package scanner splits C++ source into tokens using a set of independent
// longest-match recognizers. It never fails: input no recognizer accepts
// becomes a one-byte Unknown token.
package scanner

import (
	"io"
	"iter"
	"slices"

	"codeberg.org/rileyq/calc/internal/compile/cpp/token"
	"codeberg.org/rileyq/calc/internal/compile/cursor"
)

var recognizers = []struct {
	kind  token.Kind
	match Recognizer
}{
	{token.Comment, Comment},
	{token.Preprocess, Preprocess},
	{token.Keyword, Keyword},
	{token.Identifier, Identifier},
	{token.Punctuation, Punctuation},
	{token.IntegerLiteral, IntegerLiteral},
	{token.FloatingLiteral, FloatingLiteral},
	{token.StringLiteral, StringLiteral},
	{token.CharacterLiteral, CharacterLiteral},
}

type Scanner struct {
	cur cursor.Cursor
}

func New(src string) *Scanner {
	return &Scanner{cur: cursor.New(src)}
}

// Scan returns the next token, or io.EOF once the input is exhausted.
// Every recognizer is tried at the current position and the longest match
// wins; on equal lengths the one listed first in recognizers is kept.
func (s *Scanner) Scan() (token.Token, error) {
	s.cur = skipSpace(s.cur)
	if s.cur.IsAtEnd() {
		return token.Token{}, io.EOF
	}

	start := s.cur
	kind, end := token.Unknown, start.Advance()
	longest := 0
	for _, r := range recognizers {
		next, ok := r.match(start)
		if !ok {
			continue
		}
		// Ties keep the earlier recognizer.
		if n := next.Offset() - start.Offset(); n > longest {
			kind, end, longest = r.kind, next, n
		}
	}
	s.cur = end

	return token.Token{
		Kind:   kind,
		Line:   start.Line(),
		Offset: start.Offset(),
		Text:   start.Slice(end),
	}, nil
}

// Tokens yields the tokens of src in order.
func Tokens(src string) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		s := New(src)
		for {
			tok, err := s.Scan()
			if err != nil {
				return
			}
			if !yield(tok) {
				return
			}
		}
	}
}

func ScanAll(src string) []token.Token {
	return slices.Collect(Tokens(src))
}

func skipSpace(c cursor.Cursor) cursor.Cursor {
	return skip(c, isSpace)
}
