/*
File   : lox/cmd/lox/cmd/root.go

Package cmd wires the Lox interpreter into a cobra command tree, grounded
on go-mix's main/main.go dispatch (file mode / REPL mode / server mode)
rebuilt as a cobra root command plus `server` and `version` subcommands,
following the dwscript-style command-tree layout.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/loxlang/lox/internal/diagnostics"
	"github.com/loxlang/lox/internal/interpreter"
	"github.com/loxlang/lox/internal/lexer"
	"github.com/loxlang/lox/internal/parser"
	"github.com/loxlang/lox/internal/repl"
	"github.com/loxlang/lox/internal/resolver"
	"github.com/spf13/cobra"
)

// Exit codes, per §6.2: 0 success, 64 any static (scan/parse/resolve)
// error or usage mistake, 70 a runtime error.
const (
	exitOK        = 0
	exitUsage     = 64
	exitDataError = 70
)

// ExitCode is set by whichever command ran and read by main() after
// Execute returns, so a RunE can report 64/70 without cobra's own error
// path (which would print "Error: ..." atop diagnostics already written).
var ExitCode = exitOK

var envJSON string

var rootCmd = &cobra.Command{
	Use:   "lox [script]",
	Short: "Lox: a tree-walking interpreter",
	Long: `lox is a tree-walking interpreter for the Lox language.

Usage:
  lox                Start the interactive REPL
  lox <path>          Execute a Lox source file
  lox server <port>   Start a REPL server, one session per connection
  lox version         Print version information`,
	Args: cobra.ArbitraryArgs,
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envJSON, "env-json", "", "JSON document exposed to scripts via envGet(path)")
}

// Execute runs the command tree. The caller reads ExitCode afterward.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if ExitCode == exitOK {
			ExitCode = exitUsage
		}
	}
}

func runRoot(c *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		runREPL(os.Stdin, os.Stdout)
		return nil
	case 1:
		runFile(args[0])
		return nil
	default:
		fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		ExitCode = exitUsage
		return nil
	}
}

func runFile(path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Could not read file %q: %v\n", path, err)
		ExitCode = exitUsage
		return
	}
	ExitCode = runSource(raw, os.Stdout, os.Stderr)
}

// runSource executes one file's worth of already-read bytes against
// stdout/stderr and returns the process exit code it earned (§6.2). It
// is the whole of runFile's pipeline pulled out from the package-level
// os.Stdout/os.Stderr so it can be driven with buffers in tests.
func runSource(raw []byte, stdout, stderr io.Writer) int {
	src, err := lexer.PrepareSource(raw)
	if err != nil {
		color.New(color.FgRed).Fprintf(stderr, "invalid source encoding: %v\n", err)
		return exitUsage
	}

	report := diagnostics.New(stderr)

	lex := lexer.New(src)
	tokens := lex.ScanTokens()
	if lex.HasErrors() {
		report.Static(lex.Errors())
		return exitUsage
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if p.HasErrors() {
		report.Static(p.Errors())
		return exitUsage
	}

	res := resolver.New()
	res.Resolve(stmts)
	if res.HasErrors() {
		report.Static(res.Errors())
		return exitUsage
	}

	interp := interpreter.New(stdout, res.Locals(), false, envJSON)
	if err := interp.Interpret(stmts); err != nil {
		report.Runtime(err)
		return exitDataError
	}
	return exitOK
}

func runREPL(in *os.File, out *os.File) {
	r := repl.New(banner, version, author, line, license, prompt)
	r.EnvJSON = envJSON
	r.Start(in, out)
}
