/*
File   : lox/internal/repl/repl.go

Package repl implements Lox's interactive Read-Eval-Print Loop (§6.4).
Each line (or block) the user submits is lexed, parsed, resolved, and
interpreted against one Interpreter that persists across the session, so
variables and functions declared on one line are visible on the next.
Errors of any stage are reported and the prompt returns; only EOF (Ctrl+D)
or '.exit' ends the session — grounded closely on go-mix's repl/repl.go,
generalized from its single-evaluator-per-line design to Lox's
lex/parse/resolve/interpret pipeline.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/loxlang/lox/internal/diagnostics"
	"github.com/loxlang/lox/internal/interpreter"
	"github.com/loxlang/lox/internal/lexer"
	"github.com/loxlang/lox/internal/parser"
	"github.com/loxlang/lox/internal/resolver"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session: banner text plus the prompt
// string readline shows before each line.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
	EnvJSON string
}

// New creates a Repl with the given banner/version/prompt configuration.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBanner writes the startup banner and basic usage instructions to w.
func (r *Repl) PrintBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Welcome to Lox!")
	cyanColor.Fprintf(w, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(w, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL loop, writing to out and reading lines via a
// readline instance wired to in (so history/line-editing work over any io.Reader,
// including a plain net.Conn for the server subcommand). It returns once
// the session ends (EOF or '.exit').
func (r *Repl) Start(in io.Reader, out io.Writer) {
	r.PrintBanner(out)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(in),
		Stdout: out,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	report := diagnostics.New(out)
	interp := interpreter.New(out, nil, true, r.EnvJSON)

	for {
		line, err := rl.Readline()
		if err != nil {
			out.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			out.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)

		r.evalLine(interp, report, line)
	}
}

// evalLine runs one submitted line through the full pipeline. Static
// errors from any stage are reported without touching the interpreter;
// a runtime error is reported but never terminates the session — the
// persistent interpreter keeps whatever globals it already had.
func (r *Repl) evalLine(interp *interpreter.Interpreter, report *diagnostics.Reporter, line string) {
	lex := lexer.New(line)
	tokens := lex.ScanTokens()
	if lex.HasErrors() {
		report.Static(lex.Errors())
		return
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if p.HasErrors() {
		report.Static(p.Errors())
		return
	}

	res := resolver.New()
	res.Resolve(stmts)
	if res.HasErrors() {
		report.Static(res.Errors())
		return
	}
	interp.AddLocals(res.Locals())

	if err := interp.Interpret(stmts); err != nil {
		report.Runtime(err)
	}
}
