/*
File   : lox/internal/resolver/resolver.go

Package resolver performs the static variable-resolution pass described
in spec §4.3: a single walk over the parsed tree, after parsing and
before evaluation, that computes how many enclosing scopes separate each
variable reference from its declaration. The interpreter uses that
distance to jump directly to the right environment frame instead of
walking the whole chain, which is what makes closures capture the
*binding* rather than a snapshot of values taken at closure-creation
time — see the REDESIGN FLAGS entry on environment.Copy in SPEC_FULL.md.
This pass also catches the handful of errors that are only detectable
statically (I6): top-level return, self-referential initializers,
`this`/`super` used outside a class, and so on.
*/
package resolver

import (
	"fmt"

	"github.com/loxlang/lox/internal/ast"
	"github.com/loxlang/lox/internal/token"
)

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnInitializer
	fnMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Resolver walks a parsed program once and records, for every variable
// reference that resolves to a local binding, the number of scopes
// between the reference and its declaration.
type Resolver struct {
	scopes []map[string]bool
	locals map[ast.Expr]int

	currentFunction functionType
	currentClass    classType

	errors []string
}

// New creates a Resolver ready to walk a program's top-level statements.
func New() *Resolver {
	return &Resolver{locals: make(map[ast.Expr]int)}
}

// HasErrors reports whether any static error was recorded.
func (r *Resolver) HasErrors() bool { return len(r.errors) > 0 }

// Errors returns the static errors recorded so far, in source order.
func (r *Resolver) Errors() []string { return r.errors }

// Locals returns the lexical-distance side table computed by Resolve,
// keyed on the same *VariableExpr/*AssignExpr/*ThisExpr/*SuperExpr
// pointers the interpreter will later evaluate. An entry's absence means
// the reference is global.
func (r *Resolver) Locals() map[ast.Expr]int { return r.locals }

// Resolve walks every statement in program, in order.
func (r *Resolver) Resolve(program []ast.Stmt) {
	r.resolveStmts(program)
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	// StmtVisitor methods never actually fail; a resolver error is
	// recorded and walking continues, matching the parser and lexer's
	// "collect everything, then report" recovery style.
	_ = s.Accept(r)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	_, _ = e.Accept(r)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) errorAt(tok token.Token, message string) {
	r.errors = append(r.errors, fmt.Sprintf("[line %d] Error at '%s': %s", tok.Line, tok.Lexeme, message))
}

// declare records name as bound in the innermost scope, but not yet
// ready for use — this is what makes `var a = a;` a static error instead
// of silently reading an outer `a` or an uninitialized local.
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.errorAt(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

// define marks name as fully initialized, making it visible to
// subsequent references within the same scope.
func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost to outermost looking
// for name, and records the distance the first time it's found. No
// match means the reference is global and is left unannotated.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}
