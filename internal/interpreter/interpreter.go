/*
File   : lox/internal/interpreter/interpreter.go

Package interpreter tree-walks a resolved Lox program and executes it
(spec §4.5). It implements ast.StmtVisitor and ast.ExprVisitor directly,
exactly the shape 9578ac80_letung3105-lox's Interpreter uses, generalized
to this repo's own values/callable/environment packages.
*/
package interpreter

import (
	"io"
	"math"

	"github.com/loxlang/lox/internal/ast"
	"github.com/loxlang/lox/internal/callable"
	"github.com/loxlang/lox/internal/environment"
	"github.com/loxlang/lox/internal/token"
	"github.com/loxlang/lox/internal/values"
)

// divideByZeroEpsilon preserves the source behavior flagged as an open
// question in DESIGN.md: any divisor whose absolute value is below this
// threshold — not just exact zero — is rejected.
const divideByZeroEpsilon = 1e-5

// Interpreter holds the two environments the evaluator needs at any
// moment: globals (the outermost frame, also where natives live) and
// current (the frame active right now). current is swapped in and
// restored around every block/call per the §4.4 restoration discipline.
type Interpreter struct {
	globals *environment.Environment
	current *environment.Environment
	locals  map[ast.Expr]int
	output  io.Writer
	isREPL  bool
}

// New creates an Interpreter writing Print output to output. locals is
// the side table produced by the resolver; envJSON, if non-empty, backs
// the envGet native (see internal/callable/natives.go).
func New(output io.Writer, locals map[ast.Expr]int, isREPL bool, envJSON string) *Interpreter {
	globals := environment.New(nil)
	globals.Bind("clock", callable.NewClock())
	if envJSON != "" {
		globals.Bind("envGet", callable.NewEnvGet(envJSON))
		globals.Bind("envSet", callable.NewEnvSet(envJSON))
	}

	if locals == nil {
		locals = make(map[ast.Expr]int)
	}

	return &Interpreter{
		globals: globals,
		current: globals,
		locals:  locals,
		output:  output,
		isREPL:  isREPL,
	}
}

// AddLocals merges a resolver pass's distance table into the
// interpreter's own. The REPL resolves each submitted line on its own,
// so this is called once per line to extend the same interpreter's
// knowledge rather than replacing it — node pointers never collide
// across lines, since each line parses to a fresh set of AST nodes.
func (in *Interpreter) AddLocals(locals map[ast.Expr]int) {
	for expr, distance := range locals {
		in.locals[expr] = distance
	}
}

// Interpret executes a sequence of top-level statements, stopping and
// returning the first runtime error encountered.
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := in.exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) exec(s ast.Stmt) error {
	return s.Accept(in)
}

func (in *Interpreter) eval(e ast.Expr) (values.Value, error) {
	v, err := e.Accept(in)
	if err != nil {
		return nil, err
	}
	return v.(values.Value), nil
}

// execBlock runs stmts in env, then restores the previously active frame
// no matter how execution ends — normal completion, a runtime error, or
// a return unwind (I5). This mirrors the teacher's defer-based restore
// in go-mix's block-entry helpers and glox's execBlock exactly.
func (in *Interpreter) execBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := in.current
	in.current = env
	defer func() { in.current = previous }()

	for _, s := range stmts {
		if err := in.exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (values.Value, error) {
	if distance, ok := in.locals[expr]; ok {
		return in.current.GetAt(distance, name.Lexeme).(values.Value), nil
	}
	v, ok := in.globals.LookUp(name.Lexeme)
	if !ok {
		return nil, newRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
	}
	return v.(values.Value), nil
}

// stringify renders a value the way `print` and the REPL's auto-print
// mode do, per §4.5.
func stringify(v values.Value) string {
	return v.String()
}

func checkNumberOperand(operator token.Token, operand values.Value) (values.Number, error) {
	if n, ok := operand.(values.Number); ok {
		return n, nil
	}
	return 0, newRuntimeError(operator, "Operand must be a number.")
}

func checkNumberOperands(operator token.Token, left, right values.Value) (values.Number, values.Number, error) {
	ln, lok := left.(values.Number)
	rn, rok := right.(values.Number)
	if lok && rok {
		return ln, rn, nil
	}
	return 0, 0, newRuntimeError(operator, "Operands must be numbers.")
}

func isDivideByZero(divisor values.Number) bool {
	return math.Abs(float64(divisor)) < divideByZeroEpsilon
}
