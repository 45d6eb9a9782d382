/*
File   : lox/internal/interpreter/call.go
*/
package interpreter

import (
	"github.com/loxlang/lox/internal/callable"
	"github.com/loxlang/lox/internal/environment"
	"github.com/loxlang/lox/internal/token"
	"github.com/loxlang/lox/internal/values"
)

// callValue dispatches a call to whichever concrete Callable fn is. The
// interpreter owns this dispatch (rather than a Call method on each
// type) so that callable.Function/Class/Instance never need to import
// this package back — see internal/callable's package doc. paren is the
// call's closing-paren token, attached to a native's plain error (which
// carries no line of its own) so it surfaces like every other runtime
// error (§6.3).
func (in *Interpreter) callValue(fn callable.Callable, paren token.Token, args []values.Value) (values.Value, error) {
	switch c := fn.(type) {
	case *callable.Native:
		v, err := c.Fn(args)
		if err != nil {
			return nil, newRuntimeError(paren, "%s", err.Error())
		}
		return v, nil
	case *callable.Function:
		return in.callFunction(c, args)
	case *callable.Class:
		return in.instantiate(c, args)
	default:
		return nil, nil
	}
}

// callFunction runs fn's body in a fresh frame enclosed by its closure,
// binding each parameter to its argument. A `return` surfaces here as a
// *returnSignal propagated up through execBlock like any other error;
// this is the one place that recognizes and unwraps it. An initializer
// always yields `this`, even past a bare `return;` (I3).
func (in *Interpreter) callFunction(fn *callable.Function, args []values.Value) (values.Value, error) {
	env := environment.New(fn.Closure)
	for i, param := range fn.Decl.Params {
		env.Bind(param.Lexeme, args[i])
	}

	err := in.execBlock(fn.Decl.Body, env)
	if ret, ok := err.(*returnSignal); ok {
		if fn.IsInitializer {
			return fn.Closure.GetAt(0, "this").(values.Value), nil
		}
		if ret.value == nil {
			return values.Nil, nil
		}
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}

	if fn.IsInitializer {
		return fn.Closure.GetAt(0, "this").(values.Value), nil
	}
	return values.Nil, nil
}

// instantiate constructs a new Instance of class and, if it declares an
// init() method, runs it against that instance before returning it — the
// constructed instance is always the result, never init's own return
// value (I3).
func (in *Interpreter) instantiate(class *callable.Class, args []values.Value) (values.Value, error) {
	instance := callable.NewInstance(class)
	if init, ok := class.FindMethod("init"); ok {
		if _, err := in.callFunction(init.Bind(instance), args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
