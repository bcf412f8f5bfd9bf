/*
File    : glox/environment/environment_test.go
Package : environment
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineAndGet(t *testing.T) {
	env := New()
	env.Define("x", 1.0)

	v, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestGetWalksParentChain(t *testing.T) {
	parent := New()
	parent.Define("x", "outer")
	child := NewChild(parent)

	v, ok := child.Get("x")
	require.True(t, ok)
	assert.Equal(t, "outer", v)
}

func TestGetUnknownNameFails(t *testing.T) {
	env := New()
	_, ok := env.Get("nope")
	assert.False(t, ok)
}

func TestAssignWalksChainAndMutatesOwner(t *testing.T) {
	parent := New()
	parent.Define("x", 1.0)
	child := NewChild(parent)

	ok := child.Assign("x", 2.0)
	require.True(t, ok)

	v, _ := parent.Get("x")
	assert.Equal(t, 2.0, v, "assign should mutate the environment that owns the binding")
}

func TestAssignUndeclaredNameFails(t *testing.T) {
	env := New()
	ok := env.Assign("nope", 1.0)
	assert.False(t, ok)
}

func TestGetAtSkipsExactlyDistanceLinks(t *testing.T) {
	global := New()
	global.Define("x", "global")
	middle := NewChild(global)
	middle.Define("x", "middle")
	inner := NewChild(middle)
	inner.Define("x", "inner")

	assert.Equal(t, "inner", inner.GetAt(0, "x"))
	assert.Equal(t, "middle", inner.GetAt(1, "x"))
	assert.Equal(t, "global", inner.GetAt(2, "x"))
}

func TestAssignAtMutatesExactAncestor(t *testing.T) {
	global := New()
	global.Define("x", "global")
	child := NewChild(global)

	child.AssignAt(1, "x", "changed")
	v, _ := global.Get("x")
	assert.Equal(t, "changed", v)
}

func TestClosureSharedEnvironmentObservesMutation(t *testing.T) {
	// Two "calls" sharing one captured environment (the scenario a real
	// closure relies on): mutating through one handle is visible through
	// the other, because both point at the very same Environment value
	// rather than independent copies.
	shared := New()
	shared.Define("counter", 0.0)

	firstView := NewChild(shared)
	secondView := NewChild(shared)

	firstView.Assign("counter", 1.0)
	v, ok := secondView.Get("counter")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}
