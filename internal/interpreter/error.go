/*
File   : lox/internal/interpreter/error.go
*/
package interpreter

import (
	"fmt"

	"github.com/loxlang/lox/internal/token"
	"github.com/loxlang/lox/internal/values"
)

// RuntimeError carries the token whose line a runtime fault is
// attributed to, plus the message shown to the user. §6.3 formats it as
// "message\n[line L]" on stderr — the two-line shape (unlike the static
// "[line L] Error..." form) is deliberate, matching how the reference
// interpreter distinguishes the two error classes at a glance.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

func newRuntimeError(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// returnSignal is how a `return` statement unwinds back to the call that
// invoked the enclosing function. It is returned as an ordinary error
// value rather than raised via panic/recover — VisitReturnStmt produces
// it, every statement-executing call site propagates it exactly like any
// other error, and callFunction is the one place that recognizes and
// unwraps it. This keeps the environment-restoration discipline (I5)
// uniform: the same "return the error, let execBlock's deferred restore
// fire" path handles a runtime error and a return unwind alike.
type returnSignal struct {
	value values.Value
}

func (r *returnSignal) Error() string { return "return" }
