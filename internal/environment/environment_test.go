/*
File   : lox/internal/environment/environment_test.go
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookUp_FindsInParentChain(t *testing.T) {
	global := New(nil)
	global.Bind("a", "global-a")

	local := New(global)
	local.Bind("b", "local-b")

	v, ok := local.LookUp("a")
	assert.True(t, ok)
	assert.Equal(t, "global-a", v)

	_, ok = global.LookUp("b")
	assert.False(t, ok)
}

func TestAssign_UpdatesOriginalFrameNotShadow(t *testing.T) {
	global := New(nil)
	global.Bind("x", 1.0)

	local := New(global)
	ok := local.Assign("x", 2.0)
	assert.True(t, ok)

	v, _ := global.LookUp("x")
	assert.Equal(t, 2.0, v)
	_, foundLocally := local.Variables["x"]
	assert.False(t, foundLocally)
}

func TestAssign_UndeclaredNameFails(t *testing.T) {
	global := New(nil)
	ok := global.Assign("nope", 1.0)
	assert.False(t, ok)
}

// GetAt/AssignAt must see a later rebinding through the same live frame
// pointer — this is the closure-capture behavior the resolver's fixed
// distances exist to guarantee, as opposed to a snapshot taken once at
// closure-creation time.
func TestGetAt_SeesLiveFrameNotASnapshot(t *testing.T) {
	outer := New(nil)
	outer.Bind("a", "first")

	inner := New(outer)

	assert.Equal(t, "first", inner.GetAt(1, "a"))

	outer.Bind("a", "second")
	assert.Equal(t, "second", inner.GetAt(1, "a"))
}

func TestAssignAt_WritesExactFrame(t *testing.T) {
	outer := New(nil)
	outer.Bind("a", 1.0)
	middle := New(outer)
	inner := New(middle)

	inner.AssignAt(2, "a", 9.0)
	v, _ := outer.LookUp("a")
	assert.Equal(t, 9.0, v)

	_, ok := middle.Variables["a"]
	assert.False(t, ok)
}
