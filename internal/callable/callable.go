/*
File   : lox/internal/callable/callable.go

Package callable holds the data shapes for everything a Lox call
expression can invoke: user-defined functions, classes (whose "call" is
construction), and the handful of native functions exposed to scripts.
Mirroring how the teacher's function package carries no dependency on its
evaluator, this package carries no dependency on internal/interpreter —
it only describes what a function *is*, not how to run its body. The
interpreter imports callable and type-switches on these concrete types
to actually invoke them, which keeps the obvious import cycle (function
needs to call back into eval; eval needs function's types) from ever
existing.
*/
package callable

import (
	"fmt"

	"github.com/loxlang/lox/internal/ast"
	"github.com/loxlang/lox/internal/environment"
	"github.com/loxlang/lox/internal/values"
)

// Callable is implemented by every invocable value. Arity is consulted
// by the interpreter before a call executes, to report an arg-count
// mismatch without ever touching user code.
type Callable interface {
	values.Value
	Arity() int
}

// Function is a user-defined function or method: its declaration plus
// the environment frame that was live when it was declared. Closure is
// the live frame, not a copy of its bindings — see internal/environment.
type Function struct {
	Decl          *ast.FunctionStmt
	Closure       *environment.Environment
	IsInitializer bool
}

func (f *Function) Type() values.Type { return values.CallableType }
func (f *Function) String() string    { return fmt.Sprintf("<fn %s>", f.Decl.Name.Lexeme) }
func (f *Function) Arity() int        { return len(f.Decl.Params) }

// Bind returns a copy of f whose closure is a new frame, enclosed by f's
// own closure, with "this" bound to instance. This is how a method
// looked up off an instance knows which receiver to use, without the
// Function's declaration ever needing to know about instances.
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.New(f.Closure)
	env.Bind("this", instance)
	return &Function{Decl: f.Decl, Closure: env, IsInitializer: f.IsInitializer}
}

// Class is a Lox class: optionally a superclass, plus its own method
// table. Calling a Class constructs an Instance (§4.6) — the interpreter
// handles that dispatch, since it requires running the init() method.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (c *Class) Type() values.Type { return values.CallableType }
func (c *Class) String() string    { return c.Name }

// Arity is the arity of the class's init() method, or zero if it has
// none — constructing a class with no explicit initializer takes no
// arguments.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// FindMethod looks up name on c, then walks the superclass chain,
// exactly mirroring how Environment.LookUp walks the scope chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Instance is a single object: a back-pointer to its class plus its own
// field bindings. Methods are not copied onto instances — Get binds a
// freshly looked-up method to this instance on every access.
type Instance struct {
	Class  *Class
	Fields map[string]values.Value
}

// NewInstance creates a zero-field instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]values.Value)}
}

func (i *Instance) Type() values.Type { return values.InstanceType }
func (i *Instance) String() string    { return i.Class.Name + " instance" }

// Get reads a field or a bound method off the instance. Fields shadow
// methods of the same name, matching §4.6.
func (i *Instance) Get(name string) (values.Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return m.Bind(i), true
	}
	return nil, false
}

// Set writes a field, creating it if it doesn't already exist — Lox
// instances are open, unlike their classes' fixed method tables.
func (i *Instance) Set(name string, value values.Value) {
	i.Fields[name] = value
}

// Native is a builtin exposed to Lox scripts without any Lox-level
// declaration, such as clock() or envGet().
type Native struct {
	NameStr  string
	ArityVal int
	Fn       func(args []values.Value) (values.Value, error)
}

func (n *Native) Type() values.Type { return values.CallableType }
func (n *Native) String() string    { return "<native fn>" }
func (n *Native) Arity() int        { return n.ArityVal }
