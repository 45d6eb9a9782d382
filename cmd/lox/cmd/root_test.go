/*
File   : lox/cmd/lox/cmd/root_test.go
*/
package cmd

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestRunSource_SuccessExitsZeroAndPrints(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runSource([]byte(`print 1 + 2;`), &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "3\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunSource_ParseErrorExits64(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runSource([]byte(`var;`), &stdout, &stderr)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), "Error")
	assert.Empty(t, stdout.String())
}

func TestRunSource_ResolveErrorExits64(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runSource([]byte(`{ var x = x; }`), &stdout, &stderr)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), "Can't read local variable")
}

func TestRunSource_RuntimeErrorExits70(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runSource([]byte(`print "a" - 1;`), &stdout, &stderr)
	assert.Equal(t, exitDataError, code)
	assert.Contains(t, stderr.String(), "Operands must be numbers.")
}

func TestRunSource_FullProgramSnapshot(t *testing.T) {
	var stdout, stderr bytes.Buffer
	src := `
		class Greeter {
			init(name) {
				this.name = name;
			}
			greet() {
				print "Hello, " + this.name + "!";
			}
		}
		var g = Greeter("Lox");
		g.greet();
		for (var i = 0; i < 3; i = i + 1) {
			print i;
		}
	`
	code := runSource([]byte(src), &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.Empty(t, stderr.String())
	snaps.MatchSnapshot(t, stdout.String())
}
