/*
File   : lox/internal/callable/callable_test.go
*/
package callable

import (
	"testing"

	"github.com/loxlang/lox/internal/ast"
	"github.com/loxlang/lox/internal/environment"
	"github.com/loxlang/lox/internal/token"
	"github.com/loxlang/lox/internal/values"
	"github.com/stretchr/testify/assert"
)

func TestClass_FindMethod_WalksSuperclassChain(t *testing.T) {
	base := &Class{Name: "Base", Methods: map[string]*Function{
		"greet": {Decl: &ast.FunctionStmt{Name: token.Token{Lexeme: "greet"}}},
	}}
	sub := &Class{Name: "Sub", Superclass: base, Methods: map[string]*Function{}}

	m, ok := sub.FindMethod("greet")
	assert.True(t, ok)
	assert.Equal(t, "greet", m.Decl.Name.Lexeme)
}

func TestClass_Arity_FromInitMethod(t *testing.T) {
	init := &Function{Decl: &ast.FunctionStmt{
		Name:   token.Token{Lexeme: "init"},
		Params: []token.Token{{Lexeme: "a"}, {Lexeme: "b"}},
	}}
	class := &Class{Name: "Point", Methods: map[string]*Function{"init": init}}
	assert.Equal(t, 2, class.Arity())

	noInit := &Class{Name: "Empty", Methods: map[string]*Function{}}
	assert.Equal(t, 0, noInit.Arity())
}

func TestInstance_GetSet_FieldsShadowMethods(t *testing.T) {
	method := &Function{Decl: &ast.FunctionStmt{Name: token.Token{Lexeme: "name"}}}
	class := &Class{Name: "Thing", Methods: map[string]*Function{"name": method}}
	inst := NewInstance(class)

	_, ok := inst.Get("name")
	assert.True(t, ok) // falls through to the bound method

	inst.Set("name", values.String("override"))
	v, ok := inst.Get("name")
	assert.True(t, ok)
	assert.Equal(t, values.String("override"), v)
}

func TestFunction_Bind_CreatesThisInNewFrame(t *testing.T) {
	global := environment.New(nil)
	fn := &Function{Decl: &ast.FunctionStmt{Name: token.Token{Lexeme: "speak"}}, Closure: global}
	class := &Class{Name: "Dog"}
	inst := NewInstance(class)

	bound := fn.Bind(inst)
	v, ok := bound.Closure.LookUp("this")
	assert.True(t, ok)
	assert.Same(t, inst, v)

	// The original function's closure is untouched.
	_, ok = global.LookUp("this")
	assert.False(t, ok)
}

func TestNewClock_ReturnsPositiveNumber(t *testing.T) {
	clock := NewClock()
	assert.Equal(t, 0, clock.Arity())

	v1, err := clock.Fn(nil)
	assert.NoError(t, err)
	n1, ok := v1.(values.Number)
	assert.True(t, ok)
	assert.Greater(t, float64(n1), 0.0)
}

func TestNewEnvGet_ResolvesDottedPathOrNil(t *testing.T) {
	env := NewEnvGet(`{"server":{"port":8080,"name":"lox"}}`)
	assert.Equal(t, 1, env.Arity())

	v, err := env.Fn([]values.Value{values.String("server.port")})
	assert.NoError(t, err)
	assert.Equal(t, values.Number(8080), v)

	v, err = env.Fn([]values.Value{values.String("server.missing")})
	assert.NoError(t, err)
	assert.Equal(t, values.Nil, v)
}

func TestNewEnvSet_ReturnsUpdatedJSONWithoutMutatingSource(t *testing.T) {
	blob := `{"server":{"port":8080}}`
	set := NewEnvSet(blob)
	assert.Equal(t, 2, set.Arity())

	v, err := set.Fn([]values.Value{values.String("server.port"), values.Number(9090)})
	assert.NoError(t, err)
	updated, ok := v.(values.String)
	assert.True(t, ok)
	assert.Contains(t, string(updated), `"port":9090`)

	get := NewEnvGet(blob)
	original, err := get.Fn([]values.Value{values.String("server.port")})
	assert.NoError(t, err)
	assert.Equal(t, values.Number(8080), original)
}

func TestNewEnvSet_RejectsNonPrimitiveValue(t *testing.T) {
	set := NewEnvSet(`{}`)
	class := &Class{Name: "Thing"}
	_, err := set.Fn([]values.Value{values.String("x"), NewInstance(class)})
	assert.Error(t, err)
}
