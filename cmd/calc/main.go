package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"codeberg.org/rileyq/calc/internal/compile/ast"
	"codeberg.org/rileyq/calc/internal/compile/ast/printer"
	"codeberg.org/rileyq/calc/internal/compile/codegen/qbe"
	cppscanner "codeberg.org/rileyq/calc/internal/compile/cpp/scanner"
	"codeberg.org/rileyq/calc/internal/compile/eval"
	"codeberg.org/rileyq/calc/internal/compile/parser"
)

const (
	appName     = "calc"
	version     = "0.1.0"
	historyFile = ".calc_history"
	prompt      = "calc> "
)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	cmd := os.Args[1]
	args := os.Args[2:]
	switch cmd {
	case "eval":
		os.Exit(cmdEval(args))
	case "repl":
		os.Exit(cmdRepl(args))
	case "fmt":
		os.Exit(cmdFmt(args))
	case "tree":
		os.Exit(cmdTree(args))
	case "qbe":
		os.Exit(cmdQBE(args))
	case "lex":
		os.Exit(cmdLex(args))
	case "version":
		fmt.Println(version)
	case "-h", "--help", "help":
		usage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage(os.Stderr)
		os.Exit(2)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `Usage:
  %[1]s eval [-uniform] <expr>...         Evaluate expressions.
  %[1]s repl                              Start an interactive session.
  %[1]s fmt <expr>...                     Print expressions in canonical form.
  %[1]s tree [-uniform] [-simplify] <expr>  Print the syntax tree.
  %[1]s qbe [-func name] [-o file] <expr>  Compile an expression to QBE IL.
  %[1]s lex <file|->                      Print the C++ tokens of a file.
  %[1]s version                           Print the version.
`, appName)
}

func cmdEval(args []string) int {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	uniform := fs.Bool("uniform", false, "build uniform trees with identity operands")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s eval [-uniform] <expr>...\n", appName)
		return 2
	}

	var errs []error
	for _, src := range fs.Args() {
		v, err := evaluate(src, mode(*uniform))
		if err != nil {
			report(os.Stderr, src, err)
			errs = append(errs, err)
			continue
		}
		fmt.Println(formatValue(v))
	}
	if err := errors.Join(errs...); err != nil {
		return 1
	}
	return 0
}

func cmdRepl(_ []string) int {
	fmt.Printf("%s %s\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.\n", appName, version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	showTree := false
	uniform := false
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Println()
			return 0
		}

		src := strings.TrimSpace(line)
		switch src {
		case "":
			continue
		case ":quit", ":q":
			return 0
		case ":tree":
			showTree = !showTree
			fmt.Printf("tree display %s\n", onOff(showTree))
			continue
		case ":uniform":
			uniform = !uniform
			fmt.Printf("uniform trees %s\n", onOff(uniform))
			continue
		case ":help":
			fmt.Println(":tree     toggle syntax tree display\n:uniform  toggle uniform trees\n:quit     exit")
			continue
		}
		ln.AppendHistory(line)

		x, err := parser.ParseStringMode(src, mode(uniform))
		if err != nil {
			report(os.Stderr, src, err)
			continue
		}
		if showTree {
			_ = printer.Fdump(os.Stdout, x)
		}
		v, err := eval.Evaluate(x)
		if err != nil {
			report(os.Stderr, src, err)
			continue
		}
		fmt.Println(blue(formatValue(v)))
	}
}

func cmdFmt(args []string) int {
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s fmt <expr>...\n", appName)
		return 2
	}
	status := 0
	for _, src := range args {
		x, err := parser.ParseString(src)
		if err != nil {
			report(os.Stderr, src, err)
			status = 1
			continue
		}
		var b strings.Builder
		if err := printer.Fprint(&b, x); err != nil {
			report(os.Stderr, src, err)
			status = 1
			continue
		}
		fmt.Println(b.String())
	}
	return status
}

func cmdTree(args []string) int {
	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	uniform := fs.Bool("uniform", false, "build a uniform tree with identity operands")
	simplify := fs.Bool("simplify", false, "fold identity operands before printing")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s tree [-uniform] [-simplify] <expr>\n", appName)
		return 2
	}

	src := fs.Arg(0)
	x, err := parser.ParseStringMode(src, mode(*uniform))
	if err != nil {
		report(os.Stderr, src, err)
		return 1
	}
	if *simplify {
		x = ast.Simplify(x)
	}
	if err := printer.Fdump(os.Stdout, x); err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}
	return 0
}

func cmdQBE(args []string) int {
	fs := flag.NewFlagSet("qbe", flag.ContinueOnError)
	name := fs.String("func", "", "emit only a function with this name instead of a program")
	output := fs.String("o", "-", "output file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s qbe [-func name] [-o file] <expr>\n", appName)
		return 2
	}

	src := fs.Arg(0)
	x, err := parser.ParseString(src)
	if err != nil {
		report(os.Stderr, src, err)
		return 1
	}

	var module *qbe.Module
	if *name != "" {
		module, err = qbe.Translate(x, *name)
	} else {
		module, err = qbe.TranslateProgram(x)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}

	w := io.Writer(os.Stdout)
	if *output != "-" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return 1
		}
		defer f.Close()
		w = f
	}
	if _, err := module.WriteTo(w); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}

func cmdLex(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s lex <file|->\n", appName)
		return 2
	}

	var src []byte
	var err error
	if args[0] == "-" {
		src, err = io.ReadAll(os.Stdin)
	} else {
		src, err = os.ReadFile(args[0])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		return 1
	}

	writeTokens(os.Stdout, src)
	return 0
}

// writeTokens prints one C++ token per line as line, kind and quoted text.
func writeTokens(w io.Writer, src []byte) {
	// Editors on Windows save UTF-8 with a byte order mark.
	text := strings.TrimPrefix(string(src), "\uFEFF")
	for tok := range cppscanner.Tokens(text) {
		fmt.Fprintf(w, "%d\t%-18s %s\n", tok.Line, tok.Kind, strconv.Quote(tok.Text))
	}
}

func evaluate(src string, m parser.Mode) (float64, error) {
	x, err := parser.ParseStringMode(src, m)
	if err != nil {
		return 0, err
	}
	return eval.Evaluate(x)
}

// report prints err, pointing at the offending column for parse errors.
func report(w io.Writer, src string, err error) {
	fmt.Fprintln(w, red(err.Error()))
	var perr *parser.ParseError
	if errors.As(err, &perr) && perr.Pos().IsValid() && int(perr.Pos()) <= len(src) {
		fmt.Fprintf(w, "  %s\n  %s^\n", src, strings.Repeat(" ", int(perr.Pos())))
	}
}

func mode(uniform bool) parser.Mode {
	if uniform {
		return parser.UniformTree
	}
	return 0
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
