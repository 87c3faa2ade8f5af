/*
File    : cou/objects/objects_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestObjects_CanonicalStrings verifies the canonical string form of every
// kind: the form say prints and string concatenation coerces to.
func TestObjects_CanonicalStrings(t *testing.T) {
	tests := []struct {
		Object   CouObject
		Expected string
	}{
		{&Integer{Value: 42}, "42"},
		{&Integer{Value: -3}, "-3"},
		{&Float{Value: 2.5}, "2.5"},
		{&Float{Value: 5}, "5"},
		{&Boolean{Value: true}, "true"},
		{&Boolean{Value: false}, "false"},
		{&String{Value: "hello"}, "hello"},
		{&Nil{}, "nothing"},
		{&Array{Elements: []CouObject{
			&Integer{Value: 1}, &String{Value: "hi"}, &Nil{},
		}}, "[1, hi, nothing]"},
		{&Array{Elements: []CouObject{
			&Array{Elements: []CouObject{&Integer{Value: 1}, &Integer{Value: 2}}},
			&Boolean{Value: true},
		}}, "[[1, 2], true]"},
	}

	for _, test := range tests {
		assert.Equal(t, test.Expected, test.Object.ToString())
	}
}

// TestObjects_Inspection verifies the detailed ToObject forms.
func TestObjects_Inspection(t *testing.T) {
	assert.Equal(t, "<int(42)>", (&Integer{Value: 42}).ToObject())
	assert.Equal(t, "<float(2.5)>", (&Float{Value: 2.5}).ToObject())
	assert.Equal(t, "<str(hi)>", (&String{Value: "hi"}).ToObject())
	assert.Equal(t, "<bool(true)>", (&Boolean{Value: true}).ToObject())
	assert.Equal(t, "<nil>", (&Nil{}).ToObject())
	assert.Equal(t, "<error(boom)>", (&Error{Message: "boom"}).ToObject())
}

// TestObjects_TypeOf verifies the mapping from runtime kinds onto the
// declared type set: integers and floats both have the declared type num.
func TestObjects_TypeOf(t *testing.T) {
	assert.Equal(t, NumTypeName, TypeOf(&Integer{Value: 1}))
	assert.Equal(t, NumTypeName, TypeOf(&Float{Value: 1.5}))
	assert.Equal(t, BoolTypeName, TypeOf(&Boolean{Value: true}))
	assert.Equal(t, StrTypeName, TypeOf(&String{Value: "x"}))
	assert.Equal(t, NilTypeName, TypeOf(&Nil{}))
	assert.Equal(t, ArrTypeName, TypeOf(NewArray(0)))
	assert.Equal(t, "", TypeOf(&Error{Message: "boom"}))
}

// TestObjects_NewArray verifies that a fresh array has every slot holding
// nothing.
func TestObjects_NewArray(t *testing.T) {
	array := NewArray(3)

	assert.Len(t, array.Elements, 3)
	for _, element := range array.Elements {
		assert.Equal(t, NilType, element.GetType())
	}
	assert.Equal(t, "[nothing, nothing, nothing]", array.ToString())

	empty := NewArray(0)
	assert.Len(t, empty.Elements, 0)
	assert.Equal(t, "[]", empty.ToString())
}
