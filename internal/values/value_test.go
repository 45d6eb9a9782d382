/*
File   : lox/internal/values/value_test.go
*/
package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(Nil))
	assert.False(t, Truthy(Bool(false)))
	assert.True(t, Truthy(Bool(true)))
	assert.True(t, Truthy(Number(0)))
	assert.True(t, Truthy(String("")))
}

func TestEqual_NoCoercionAcrossTypes(t *testing.T) {
	assert.False(t, Equal(Number(0), Bool(false)))
	assert.False(t, Equal(String("1"), Number(1)))
}

func TestEqual_NilOnlyEqualsNil(t *testing.T) {
	assert.True(t, Equal(Nil, Nil))
	assert.False(t, Equal(Nil, Bool(false)))
}

func TestEqual_NumbersAndStringsByValue(t *testing.T) {
	assert.True(t, Equal(Number(3), Number(3)))
	assert.False(t, Equal(Number(3), Number(4)))
	assert.True(t, Equal(String("a"), String("a")))
}

func TestNumberString_IntegralHasNoFraction(t *testing.T) {
	assert.Equal(t, "4", Number(4).String())
	assert.Equal(t, "0", Number(0).String())
	assert.Equal(t, "3.25", Number(3.25).String())
}
