// Package scanner tokenizes arithmetic expressions one token at a time.
package scanner

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"codeberg.org/rileyq/calc/internal/compile/token"
)

type Scanner struct {
	src string
	off int
}

func New(src string) *Scanner {
	return &Scanner{src: src}
}

// Scan returns the next token. At the end of the text it keeps returning
// EndOfText tokens.
func (s *Scanner) Scan() (*token.Token, error) {
	s.skipSpace()

	if s.off >= len(s.src) {
		return &token.Token{
			Type: token.EndOfText,
			Pos:  token.Pos(s.off),
			End:  token.Pos(s.off),
		}, nil
	}

	ch := s.src[s.off]
	if isDigit(ch) {
		return s.number()
	}

	var typ token.Type
	switch ch {
	case '+':
		typ = token.Plus
	case '-':
		typ = token.Minus
	case '*':
		typ = token.Mul
	case '/':
		typ = token.Div
	case '(':
		typ = token.OpenParenthesis
	case ')':
		typ = token.CloseParenthesis
	default:
		r, _ := utf8.DecodeRuneInString(s.src[s.off:])
		return nil, NewError(token.Pos(s.off), fmt.Sprintf("Unexpected token '%c' at position %d", r, s.off))
	}

	start := s.off
	s.off++
	return s.token(typ, start), nil
}

// number scans a digit run with at most one decimal point.
func (s *Scanner) number() (*token.Token, error) {
	start := s.off
	s.skipDigits()
	if s.off < len(s.src) && s.src[s.off] == '.' {
		s.off++
		s.skipDigits()
	}
	if s.off == start {
		return nil, NewError(token.Pos(s.off), "Number expected but not found!")
	}

	tok := s.token(token.Number, start)
	// Out of range literals saturate to +Inf.
	value, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, NewError(tok.Pos, fmt.Sprintf("Malformed number %q at position %d", tok.Text, start))
	}
	tok.Value = value
	return tok, nil
}

func (s *Scanner) token(typ token.Type, start int) *token.Token {
	return &token.Token{
		Type: typ,
		Pos:  token.Pos(start),
		End:  token.Pos(s.off),
		Text: s.src[start:s.off],
	}
}

func (s *Scanner) skipDigits() {
	for s.off < len(s.src) && isDigit(s.src[s.off]) {
		s.off++
	}
}

func (s *Scanner) skipSpace() {
	for s.off < len(s.src) && isSpace(s.src[s.off]) {
		s.off++
	}
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Error is a lexical error at a byte offset.
type Error struct {
	Pos token.Pos
	Msg string
}

func NewError(pos token.Pos, msg string) *Error {
	return &Error{Pos: pos, Msg: msg}
}

func (err *Error) Error() string {
	return err.Msg
}
