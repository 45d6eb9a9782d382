/*
File   : lox/internal/interpreter/interpreter_test.go
*/
package interpreter

import (
	"bytes"
	"testing"

	"github.com/loxlang/lox/internal/lexer"
	"github.com/loxlang/lox/internal/parser"
	"github.com/loxlang/lox/internal/resolver"
	"github.com/stretchr/testify/assert"
)

// run lexes, parses, resolves, and interprets src, returning stdout and
// any runtime error.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	lex := lexer.New(src)
	tokens := lex.ScanTokens()
	assert.False(t, lex.HasErrors(), "lexer errors: %v", lex.Errors())

	p := parser.New(tokens)
	stmts := p.Parse()
	assert.False(t, p.HasErrors(), "parser errors: %v", p.Errors())

	res := resolver.New()
	res.Resolve(stmts)
	assert.False(t, res.HasErrors(), "resolver errors: %v", res.Errors())

	var out bytes.Buffer
	interp := New(&out, res.Locals(), false, "")
	err := interp.Interpret(stmts)
	return out.String(), err
}

// Scenario 1: arithmetic & print.
func TestInterpret_ArithmeticAndPrint(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	assert.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

// Scenario 2: closure capture correctness (I2).
func TestInterpret_ClosureCapturesDeclarationBinding(t *testing.T) {
	out, err := run(t, `
		var a = "global";
		{
			fun showA() {
				print a;
			}
			showA();
			var a = "block";
			showA();
		}
	`)
	assert.NoError(t, err)
	assert.Equal(t, "global\nglobal\n", out)
}

// Scenario 3: class instantiation and a bound method call.
func TestInterpret_ClassMethodCall(t *testing.T) {
	out, err := run(t, `
		class Bacon {
			eat() {
				print "Crunch!";
			}
		}
		Bacon().eat();
	`)
	assert.NoError(t, err)
	assert.Equal(t, "Crunch!\n", out)
}

// Scenario 4 (I3): init() always yields the instance, even past a bare return.
func TestInterpret_InitializerAlwaysReturnsInstance(t *testing.T) {
	out, err := run(t, `
		class Thing {
			init(n) {
				this.n = n;
				return;
			}
		}
		var t = Thing(1);
		print t.n;
	`)
	assert.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

// Inheritance + super dispatch.
func TestInterpret_SuperCallsParentMethod(t *testing.T) {
	out, err := run(t, `
		class Doughnut {
			cook() {
				print "Fry until golden brown.";
			}
		}
		class BostonCream < Doughnut {
			cook() {
				super.cook();
				print "Pipe full of custard and coat with chocolate.";
			}
		}
		BostonCream().cook();
	`)
	assert.NoError(t, err)
	assert.Equal(t, "Fry until golden brown.\nPipe full of custard and coat with chocolate.\n", out)
}

// Scenario 5: for loop.
func TestInterpret_ForLoopPrintsSequence(t *testing.T) {
	out, err := run(t, `
		for (var i = 0; i < 3; i = i + 1) {
			print i;
		}
	`)
	assert.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

// Scenario 6: shadowing inside nested blocks.
func TestInterpret_BlockShadowing(t *testing.T) {
	out, err := run(t, `
		var a = "A";
		{
			print a;
			var a = "B";
			print a;
		}
	`)
	assert.NoError(t, err)
	assert.Equal(t, "A\nB\n", out)
}

// Scenario 7 (and §6.3's runtime error format).
func TestInterpret_TypeErrorProducesCorrectMessage(t *testing.T) {
	out, err := run(t, `print "a" - 1;`)
	assert.Empty(t, out)
	assert.Error(t, err)
	assert.Equal(t, "Operands must be numbers.\n[line 1]", err.Error())
}

func TestInterpret_DivideByZeroEpsilon(t *testing.T) {
	_, err := run(t, `print 1 / 0.000001;`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot divide by 0.")
}

func TestInterpret_StringConcatenationAndNumberAddition(t *testing.T) {
	out, err := run(t, `
		print "foo" + "bar";
		print 1 + 2;
	`)
	assert.NoError(t, err)
	assert.Equal(t, "foobar\n3\n", out)
}

func TestInterpret_EqualityAcrossTypesNeverCoerces(t *testing.T) {
	out, err := run(t, `
		print 1 == "1";
		print nil == false;
	`)
	assert.NoError(t, err)
	assert.Equal(t, "false\nfalse\n", out)
}

func TestInterpret_FieldShadowsMethodOfSameName(t *testing.T) {
	out, err := run(t, `
		class Box {
			value() { return "method"; }
		}
		var b = Box();
		b.value = "field";
		print b.value;
	`)
	assert.NoError(t, err)
	assert.Equal(t, "field\n", out)
}

func TestInterpret_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print nope;`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable")
}

func TestInterpret_CallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		var x = 1;
		x();
	`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Can only call functions and classes.")
}

func TestInterpret_WrongArityIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		fun f(a, b) { return a + b; }
		f(1);
	`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 2 arguments but got 1.")
}

// A native's own error carries no line of its own; callValue must attach
// the call's paren token so it surfaces exactly like any other runtime
// error (§6.3's "message\n[line L]" shape).
func TestInterpret_NativeErrorCarriesCallsLineNumber(t *testing.T) {
	lex := lexer.New("envGet(123);")
	tokens := lex.ScanTokens()
	assert.False(t, lex.HasErrors())

	p := parser.New(tokens)
	stmts := p.Parse()
	assert.False(t, p.HasErrors())

	res := resolver.New()
	res.Resolve(stmts)
	assert.False(t, res.HasErrors())

	var out bytes.Buffer
	interp := New(&out, res.Locals(), false, `{"a":1}`)
	err := interp.Interpret(stmts)
	assert.Error(t, err)
	assert.Equal(t, "envGet() path must be a string\n[line 1]", err.Error())
}
