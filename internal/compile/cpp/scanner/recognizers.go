package scanner

import (
	"codeberg.org/rileyq/calc/internal/compile/cpp/token"
	"codeberg.org/rileyq/calc/internal/compile/cursor"
)

// A Recognizer reports whether a token of its category starts at c and,
// if so, returns the cursor just past the longest such token.
type Recognizer func(c cursor.Cursor) (cursor.Cursor, bool)

// Comment matches // and /* */ comments. Line comments include their
// newline; an unterminated block comment runs to the end of input.
func Comment(c cursor.Cursor) (cursor.Cursor, bool) {
	switch {
	case c.StartsWith("//"):
		c = c.AdvanceN(2)
		for !c.IsAtEnd() {
			ch := c.Peek(0)
			c = c.Advance()
			if ch == '\n' {
				break
			}
		}
		return c, true
	case c.StartsWith("/*"):
		c = c.AdvanceN(2)
		for !c.IsAtEnd() {
			if c.StartsWith("*/") {
				return c.AdvanceN(2), true
			}
			c = c.Advance()
		}
		return c, true
	}
	return c, false
}

// Preprocess matches a directive from '#' to the end of its line. A line
// whose last non-blank character is a backslash continues the directive.
func Preprocess(c cursor.Cursor) (cursor.Cursor, bool) {
	if c.Peek(0) != '#' {
		return c, false
	}
	c = c.Advance()
	continued := false
	for !c.IsAtEnd() {
		ch := c.Peek(0)
		c = c.Advance()
		switch {
		case ch == '\n':
			if !continued {
				return c, true
			}
			continued = false
		case ch == '\\':
			continued = true
		case !isSpace(ch):
			continued = false
		}
	}
	return c, true
}

// Keyword matches a reserved word followed by whitespace or end of input.
func Keyword(c cursor.Cursor) (cursor.Cursor, bool) {
	for _, kw := range token.Keywords {
		if !c.StartsWith(kw) {
			continue
		}
		next := c.AdvanceN(len(kw))
		if next.IsAtEnd() || isSpace(next.Peek(0)) {
			return next, true
		}
	}
	return c, false
}

func Identifier(c cursor.Cursor) (cursor.Cursor, bool) {
	if !isIdentifierStart(c.Peek(0)) {
		return c, false
	}
	c = c.Advance()
	for isIdentifierContinue(c.Peek(0)) {
		c = c.Advance()
	}
	return c, true
}

func Punctuation(c cursor.Cursor) (cursor.Cursor, bool) {
	if lit, ok := prefix(c, token.Punctuators); ok {
		return c.AdvanceN(len(lit)), true
	}
	return c, false
}

// IntegerLiteral matches decimal, binary, hexadecimal and octal integers
// with an optional suffix. Decimal literals may use ' as a digit separator.
func IntegerLiteral(c cursor.Cursor) (cursor.Cursor, bool) {
	ch := c.Peek(0)
	if !isDigit(ch) {
		return c, false
	}
	if ch != '0' {
		c = c.Advance()
		for isDigit(c.Peek(0)) || c.Peek(0) == '\'' {
			c = c.Advance()
		}
	} else {
		c = c.Advance()
		switch base := c.Peek(0); {
		case (base == 'b' || base == 'B') && isBinaryDigit(c.Peek(1)):
			c = skip(c.Advance(), isBinaryDigit)
		case (base == 'x' || base == 'X') && isHexDigit(c.Peek(1)):
			c = skip(c.Advance(), isHexDigit)
		default:
			c = skip(c, isOctalDigit)
		}
	}
	if suffix, ok := prefix(c, token.IntegerSuffixes); ok {
		c = c.AdvanceN(len(suffix))
	}
	return c, true
}

// FloatingLiteral matches digits with an optional fraction, an optional
// exponent and an optional suffix. At least one digit is required.
func FloatingLiteral(c cursor.Cursor) (cursor.Cursor, bool) {
	start := c
	c = skip(c, isDigit)
	digits := c.Offset() - start.Offset()
	if c.Peek(0) == '.' {
		frac := skip(c.Advance(), isDigit)
		digits += frac.Offset() - c.Offset() - 1
		c = frac
	}
	if digits == 0 {
		return start, false
	}
	if e := c.Peek(0); e == 'e' || e == 'E' {
		exp := c.Advance()
		if sign := exp.Peek(0); sign == '+' || sign == '-' {
			exp = exp.Advance()
		}
		if isDigit(exp.Peek(0)) {
			c = skip(exp, isDigit)
		}
	}
	if suffix, ok := prefix(c, token.FloatingSuffixes); ok {
		c = c.AdvanceN(len(suffix))
	}
	return c, true
}

// StringLiteral matches ordinary and raw string literals with an optional
// encoding prefix. The closing quote is part of the match.
func StringLiteral(c cursor.Cursor) (cursor.Cursor, bool) {
	p, ok := literalPrefix(c, token.StringPrefixes, '"')
	if !ok {
		return c, false
	}
	c = c.AdvanceN(len(p) + 1)
	if len(p) > 0 && p[len(p)-1] == 'R' {
		return rawString(c), true
	}
	return quoted(c, '"'), true
}

func CharacterLiteral(c cursor.Cursor) (cursor.Cursor, bool) {
	p, ok := literalPrefix(c, token.CharacterPrefixes, '\'')
	if !ok {
		return c, false
	}
	return quoted(c.AdvanceN(len(p)+1), '\''), true
}

// rawString scans the body of R"delim( ... )delim" starting just past the
// opening quote.
func rawString(c cursor.Cursor) cursor.Cursor {
	open := c
	for !c.IsAtEnd() && c.Peek(0) != '(' {
		c = c.Advance()
	}
	closing := ")" + open.Slice(c) + "\""
	for !c.IsAtEnd() {
		if c.StartsWith(closing) {
			return c.AdvanceN(len(closing))
		}
		c = c.Advance()
	}
	return c
}

// quoted scans to the first unescaped delim and consumes it.
func quoted(c cursor.Cursor, delim byte) cursor.Cursor {
	for !c.IsAtEnd() {
		switch c.Peek(0) {
		case '\\':
			c = c.AdvanceN(2)
		case delim:
			return c.Advance()
		default:
			c = c.Advance()
		}
	}
	return c
}

func literalPrefix(c cursor.Cursor, prefixes []string, quote byte) (string, bool) {
	if c.Peek(0) == quote {
		return "", true
	}
	for _, p := range prefixes {
		if c.StartsWith(p) && c.Peek(len(p)) == quote {
			return p, true
		}
	}
	return "", false
}

func prefix(c cursor.Cursor, table []string) (string, bool) {
	for _, lit := range table {
		if c.StartsWith(lit) {
			return lit, true
		}
	}
	return "", false
}

func skip(c cursor.Cursor, class func(byte) bool) cursor.Cursor {
	for class(c.Peek(0)) {
		c = c.Advance()
	}
	return c
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(ch byte) bool       { return '0' <= ch && ch <= '9' }
func isOctalDigit(ch byte) bool  { return '0' <= ch && ch <= '7' }
func isBinaryDigit(ch byte) bool { return ch == '0' || ch == '1' }

func isHexDigit(ch byte) bool {
	return isDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isIdentifierStart(ch byte) bool {
	return ch == '_' || isLetter(ch)
}

func isIdentifierContinue(ch byte) bool {
	return ch == '_' || isLetter(ch) || isDigit(ch)
}
