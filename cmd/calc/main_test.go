package main

import (
	"strings"
	"testing"

	"codeberg.org/rileyq/calc/internal/compile/parser"
)

func TestEvaluate(t *testing.T) {
	for _, m := range []parser.Mode{0, parser.UniformTree} {
		v, err := evaluate("2 * (3 + 4) - 1", m)
		if err != nil {
			t.Fatal(err)
		}
		if got := formatValue(v); got != "13" {
			t.Errorf("mode %d: got %s, want 13", m, got)
		}
	}
}

func TestReportPointsAtColumn(t *testing.T) {
	src := "1 ** 2.5"
	_, err := evaluate(src, 0)
	if err == nil {
		t.Fatal("expected a parse error")
	}

	var b strings.Builder
	report(&b, src, err)
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), b.String())
	}
	if lines[2] != "     ^" {
		t.Errorf("caret line = %q", lines[2])
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1/4", "0.25"},
		{"1/0", "+Inf"},
		{"-1/0", "-Inf"},
		{"0/0", "NaN"},
	}
	for _, tt := range tests {
		v, err := evaluate(tt.src, 0)
		if err != nil {
			t.Fatal(err)
		}
		if got := formatValue(v); got != tt.want {
			t.Errorf("%s = %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestWriteTokensStripsByteOrderMark(t *testing.T) {
	var b strings.Builder
	writeTokens(&b, []byte("\uFEFFint x;\n"))

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d tokens:\n%s", len(lines), b.String())
	}
	first := strings.Fields(lines[0])
	want := []string{"1", "Keyword", `"int"`}
	if strings.Join(first, " ") != strings.Join(want, " ") {
		t.Errorf("first token = %q, want %q", first, want)
	}
	if strings.Contains(b.String(), "\uFEFF") || strings.Contains(b.String(), `\ufeff`) {
		t.Errorf("byte order mark leaked into output:\n%s", b.String())
	}
}
