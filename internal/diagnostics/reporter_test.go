/*
File   : lox/internal/diagnostics/reporter_test.go
*/
package diagnostics

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestStatic_PrintsEachMessageOnItsOwnLine(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Static([]string{"[line 1] Error at 'x': oops", "[line 2] Error: bad token"})
	assert.Equal(t, "[line 1] Error at 'x': oops\n[line 2] Error: bad token\n", buf.String())
}

func TestRuntime_PrintsErrorVerbatim(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Runtime(errors.New("Operands must be numbers.\n[line 1]"))
	assert.Equal(t, "Operands must be numbers.\n[line 1]\n", buf.String())
}
