/*
File    : mesa/scope/scope_test.go
Package : scope
*/

package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesa-lang/mesa/objects"
)

func TestDeclareAndLookup(t *testing.T) {
	s := New(nil)
	require.NoError(t, s.Declare("a", &objects.Integer{Value: 5}, objects.IntType))
	v, ok := s.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "5", v.String())
}

func TestDeclare_RedeclarationInSameScopeFails(t *testing.T) {
	s := New(nil)
	require.NoError(t, s.Declare("a", &objects.Integer{Value: 1}, objects.IntType))
	err := s.Declare("a", &objects.Integer{Value: 2}, objects.IntType)
	assert.Error(t, err)
}

func TestDeclare_TypeMismatchFails(t *testing.T) {
	s := New(nil)
	err := s.Declare("a", &objects.String{Value: "x"}, objects.IntType)
	assert.Error(t, err)
}

func TestDeclare_InferredTypeFromValue(t *testing.T) {
	s := New(nil)
	require.NoError(t, s.Declare("a", &objects.Integer{Value: 1}, ""))
	typ, ok := s.DeclaredType("a")
	require.True(t, ok)
	assert.Equal(t, objects.IntType, typ)
}

func TestAssign_UpdatesValueInOwningScope(t *testing.T) {
	outer := New(nil)
	require.NoError(t, outer.Declare("a", &objects.Integer{Value: 1}, objects.IntType))
	inner := New(outer)
	require.NoError(t, inner.Assign("a", &objects.Integer{Value: 2}))
	v, ok := outer.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "2", v.String())
}

func TestAssign_UndefinedNameFails(t *testing.T) {
	s := New(nil)
	err := s.Assign("missing", &objects.Integer{Value: 1})
	assert.Error(t, err)
}

func TestAssign_TypeMismatchFails(t *testing.T) {
	s := New(nil)
	require.NoError(t, s.Declare("a", &objects.Integer{Value: 1}, objects.IntType))
	err := s.Assign("a", &objects.Double{Value: 1.5})
	assert.Error(t, err)
}

func TestAssign_AnyTypeAcceptsAnything(t *testing.T) {
	s := New(nil)
	require.NoError(t, s.Declare("f", &objects.Integer{Value: 1}, objects.AnyType))
	assert.NoError(t, s.Assign("f", &objects.String{Value: "now a string"}))
}

func TestShadowing_InnerDeclarationDoesNotMutateOuter(t *testing.T) {
	outer := New(nil)
	require.NoError(t, outer.Declare("a", &objects.Integer{Value: 1}, objects.IntType))
	inner := New(outer)
	require.NoError(t, inner.Declare("a", &objects.Integer{Value: 99}, objects.IntType))

	innerVal, _ := inner.Lookup("a")
	outerVal, _ := outer.Lookup("a")
	assert.Equal(t, "99", innerVal.String())
	assert.Equal(t, "1", outerVal.String())
}

func TestLookup_WalksEnclosingChain(t *testing.T) {
	outer := New(nil)
	require.NoError(t, outer.Declare("a", &objects.Integer{Value: 1}, objects.IntType))
	inner := New(outer)
	v, ok := inner.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "1", v.String())
}

func TestNames_ReturnsOnlyThisScopesBindings(t *testing.T) {
	outer := New(nil)
	require.NoError(t, outer.Declare("a", &objects.Integer{Value: 1}, objects.IntType))
	inner := New(outer)
	require.NoError(t, inner.Declare("b", &objects.Integer{Value: 2}, objects.IntType))
	assert.ElementsMatch(t, []string{"b"}, inner.Names())
	assert.ElementsMatch(t, []string{"a"}, outer.Names())
}
