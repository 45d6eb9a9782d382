/*
File   : lox/internal/repl/repl_test.go
*/
package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestStart_EchoesPrintOutputAndPersistsState(t *testing.T) {
	in := strings.NewReader("var x = 1;\nprint x + 1;\n")
	var out bytes.Buffer

	r := New("LOX", "v0", "", "---", "MIT", "lox> ")
	r.Start(in, &out)

	assert.Contains(t, out.String(), "2\n")
}

func TestStart_ExitCommandEndsSession(t *testing.T) {
	in := strings.NewReader(".exit\n")
	var out bytes.Buffer

	r := New("LOX", "v0", "", "---", "MIT", "lox> ")
	r.Start(in, &out)

	assert.Contains(t, out.String(), "Good Bye!")
}

func TestStart_ParseErrorIsReportedAndSessionContinues(t *testing.T) {
	in := strings.NewReader("var;\nprint 1 + 1;\n")
	var out bytes.Buffer

	r := New("LOX", "v0", "", "---", "MIT", "lox> ")
	r.Start(in, &out)

	assert.Contains(t, out.String(), "Error")
	assert.Contains(t, out.String(), "2\n")
}

func TestStart_RuntimeErrorIsReportedAndSessionContinues(t *testing.T) {
	in := strings.NewReader("print 1 / 0;\nprint 9;\n")
	var out bytes.Buffer

	r := New("LOX", "v0", "", "---", "MIT", "lox> ")
	r.Start(in, &out)

	assert.Contains(t, out.String(), "Cannot divide by 0.")
	assert.Contains(t, out.String(), "9\n")
}

func TestStart_ReplAutoPrintsBareExpression(t *testing.T) {
	in := strings.NewReader("1 + 2;\n")
	var out bytes.Buffer

	r := New("LOX", "v0", "", "---", "MIT", "lox> ")
	r.Start(in, &out)

	assert.Contains(t, out.String(), "3\n")
}
