/*
File   : lox/internal/environment/environment.go

Package environment implements the runtime scope chain described in spec
§3.4/§4.4: a tree of frames, each holding its own variable bindings and a
pointer to the enclosing frame. A closure stores the *Environment that
was live at the point its function was declared, not a copy of its
contents — so writes made after the closure is created, through any
alias of that frame, are visible to the closure. That is the whole point
of the resolver: it computes exactly how many Parent links to follow so
a lookup never has to fall back to walking the chain by name.
*/
package environment

// Environment is one frame of the runtime scope chain.
type Environment struct {
	Variables map[string]interface{}
	Parent    *Environment
}

// New creates an Environment enclosed by parent, or a top-level (global)
// environment when parent is nil.
func New(parent *Environment) *Environment {
	return &Environment{Variables: make(map[string]interface{}), Parent: parent}
}

// Bind creates or overwrites a binding in this frame only. Used for `var`
// declarations and for binding function parameters and `this`/`super` —
// never for plain assignment, which must find the existing binding
// instead of shadowing it (see Assign).
func (e *Environment) Bind(name string, value interface{}) {
	e.Variables[name] = value
}

// LookUp searches this frame and then each enclosing frame in turn for
// name. This is the fallback path used only for references the resolver
// left unannotated (globals); every resolved local reference goes
// through GetAt instead.
func (e *Environment) LookUp(name string) (interface{}, bool) {
	if v, ok := e.Variables[name]; ok {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.LookUp(name)
	}
	return nil, false
}

// Assign updates name in place in whichever frame it was declared in,
// walking outward from this frame. It reports false without modifying
// anything if name is not bound anywhere in the chain.
func (e *Environment) Assign(name string, value interface{}) bool {
	if _, ok := e.Variables[name]; ok {
		e.Variables[name] = value
		return true
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, value)
	}
	return false
}

// ancestor walks exactly distance Parent links outward. A distance
// computed by the resolver is always satisfiable — it counted these
// same links at resolve time — so an out-of-range distance reaching nil
// indicates a resolver/interpreter mismatch rather than a user error.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Parent
	}
	return env
}

// GetAt reads name from the frame exactly distance scopes out, with no
// chain fallback — the counterpart to the resolver's recorded lexical
// distance. This is what lets a closure keep reading the binding it
// closed over even after an inner scope redeclares the same name.
func (e *Environment) GetAt(distance int, name string) interface{} {
	return e.ancestor(distance).Variables[name]
}

// AssignAt writes value into the frame exactly distance scopes out.
func (e *Environment) AssignAt(distance int, name string, value interface{}) {
	e.ancestor(distance).Variables[name] = value
}
