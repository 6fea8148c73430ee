/*
File    : mesa/objects/objects_test.go
Package : objects
*/

package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueStrings(t *testing.T) {
	assert.Equal(t, "42", (&Integer{Value: 42}).String())
	assert.Equal(t, "3.5", (&Double{Value: 3.5}).String())
	assert.Equal(t, "hi", (&String{Value: "hi"}).String())
	assert.Equal(t, "true", (&Boolean{Value: true}).String())
	assert.Equal(t, "unit", Unit.String())
}

func TestBoolValue_ReturnsSingletons(t *testing.T) {
	assert.Same(t, True, BoolValue(true))
	assert.Same(t, False, BoolValue(false))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric(IntType))
	assert.True(t, IsNumeric(DoubleType))
	assert.False(t, IsNumeric(StringType))
	assert.False(t, IsNumeric(BooleanType))
}

func TestList_String(t *testing.T) {
	list := &List{Elements: []Value{&Integer{Value: 1}, &Integer{Value: 2}}}
	assert.Equal(t, "[1, 2]", list.String())
	assert.Equal(t, Type("LIST"), list.Type())
}

func TestUnit_IsNotAnyDeclaredType(t *testing.T) {
	for _, declared := range []Type{IntType, DoubleType, StringType, BooleanType, FunctionType, NativeType, AnyType} {
		assert.NotEqual(t, declared, Unit.Type())
	}
}
