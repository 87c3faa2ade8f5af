/*
File    : cou/validate/validate_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package validate

import (
	"testing"

	"github.com/akashmaji946/cou/lexer"
	"github.com/akashmaji946/cou/objects"
	"github.com/stretchr/testify/assert"
)

// TestValidate_Operation exercises the per-type operator sets for binary
// operations, including the string-coercion special case for '+'.
func TestValidate_Operation(t *testing.T) {
	one := &objects.Integer{Value: 1}
	half := &objects.Float{Value: 0.5}
	yes := &objects.Boolean{Value: true}
	hi := &objects.String{Value: "hi"}
	none := &objects.Nil{}
	arr := objects.NewArray(1)

	tests := []struct {
		Op       lexer.TokenType
		A, B     objects.CouObject
		Expected bool
	}{
		// num admits the arithmetic and comparison operators
		{lexer.PLUS_OP, one, one, true},
		{lexer.MINUS_OP, one, half, true},
		{lexer.MUL_OP, half, half, true},
		{lexer.DIV_OP, one, one, true},
		{lexer.MOD_OP, one, one, true},
		{lexer.IDIV_OP, one, half, true},
		{lexer.LE_OP, one, one, true},
		{lexer.GT_OP, half, one, true},
		// but not the logical ones
		{lexer.AND_OP, one, one, false},
		{lexer.OR_OP, one, one, false},

		// bool admits logical and equality operators only
		{lexer.AND_OP, yes, yes, true},
		{lexer.OR_OP, yes, yes, true},
		{lexer.EQ_OP, yes, yes, true},
		{lexer.NE_OP, yes, yes, true},
		{lexer.PLUS_OP, yes, yes, false},
		{lexer.LT_OP, yes, yes, false},

		// str admits + and equality
		{lexer.PLUS_OP, hi, hi, true},
		{lexer.EQ_OP, hi, hi, true},
		{lexer.NE_OP, hi, hi, true},
		{lexer.MINUS_OP, hi, hi, false},
		{lexer.LT_OP, hi, hi, false},

		// nil and arr admit equality only
		{lexer.EQ_OP, none, none, true},
		{lexer.NE_OP, none, none, true},
		{lexer.PLUS_OP, none, none, false},
		{lexer.EQ_OP, arr, arr, true},
		{lexer.NE_OP, arr, arr, true},
		{lexer.MUL_OP, arr, arr, false},

		// mismatched operand types are rejected
		{lexer.EQ_OP, one, yes, false},
		{lexer.MINUS_OP, one, hi, false},
		{lexer.AND_OP, yes, none, false},

		// '+' with one string operand coerces the other
		{lexer.PLUS_OP, hi, one, true},
		{lexer.PLUS_OP, one, hi, true},
		{lexer.PLUS_OP, hi, none, true},
		{lexer.PLUS_OP, arr, hi, true},
	}

	for _, test := range tests {
		got := Operation(test.Op, test.A, test.B)
		assert.Equal(t, test.Expected, got,
			"Operation(%s, %s, %s)", test.Op, test.A.ToObject(), test.B.ToObject())
	}
}

// TestValidate_UnaryOperation exercises unary operator admissibility.
func TestValidate_UnaryOperation(t *testing.T) {
	assert.True(t, Operation(lexer.MINUS_OP, &objects.Integer{Value: 1}, nil))
	assert.True(t, Operation(lexer.PLUS_OP, &objects.Float{Value: 1.5}, nil))
	assert.True(t, Operation(lexer.NOT_OP, &objects.Boolean{Value: true}, nil))

	assert.False(t, Operation(lexer.NOT_OP, &objects.Integer{Value: 1}, nil))
	assert.False(t, Operation(lexer.MINUS_OP, &objects.String{Value: "x"}, nil))
	assert.False(t, Operation(lexer.MINUS_OP, &objects.Nil{}, nil))
}

// TestValidate_Assignment verifies assignment kind checks: the value's
// runtime kind must equal the declared type, with no implicit widening.
func TestValidate_Assignment(t *testing.T) {
	assert.True(t, Assignment(objects.NumTypeName, &objects.Integer{Value: 1}))
	assert.True(t, Assignment(objects.NumTypeName, &objects.Float{Value: 1.5}))
	assert.True(t, Assignment(objects.BoolTypeName, &objects.Boolean{Value: true}))
	assert.True(t, Assignment(objects.StrTypeName, &objects.String{Value: "x"}))
	assert.True(t, Assignment(objects.NilTypeName, &objects.Nil{}))
	assert.True(t, Assignment(objects.ArrTypeName, objects.NewArray(2)))

	assert.False(t, Assignment(objects.NumTypeName, &objects.String{Value: "1"}))
	assert.False(t, Assignment(objects.BoolTypeName, &objects.Integer{Value: 1}))
	assert.False(t, Assignment(objects.NumTypeName, &objects.Nil{}))
}

// TestValidate_Condition verifies that only booleans may drive conditions.
func TestValidate_Condition(t *testing.T) {
	assert.True(t, Condition(&objects.Boolean{Value: false}))
	assert.False(t, Condition(&objects.Integer{Value: 1}))
	assert.False(t, Condition(&objects.Nil{}))
	assert.False(t, Condition(&objects.String{Value: "true"}))
}

// TestValidate_Return verifies return kind checks.
func TestValidate_Return(t *testing.T) {
	assert.True(t, Return(objects.NumTypeName, &objects.Integer{Value: 1}))
	assert.True(t, Return(objects.NilTypeName, &objects.Nil{}))
	assert.False(t, Return(objects.NumTypeName, &objects.String{Value: "x"}))
	assert.False(t, Return(objects.StrTypeName, &objects.Nil{}))
}

// TestValidate_ArrayIndex verifies index kind and bounds checks.
func TestValidate_ArrayIndex(t *testing.T) {
	array := objects.NewArray(3)

	assert.True(t, ArrayIndex(&objects.Integer{Value: 0}, array))
	assert.True(t, ArrayIndex(&objects.Integer{Value: 2}, array))

	assert.False(t, ArrayIndex(&objects.Integer{Value: 3}, array))
	assert.False(t, ArrayIndex(&objects.Integer{Value: -1}, array))
	assert.False(t, ArrayIndex(&objects.Float{Value: 0}, array))
	assert.False(t, ArrayIndex(&objects.String{Value: "0"}, array))
	assert.False(t, ArrayIndex(&objects.Integer{Value: 0}, &objects.Integer{Value: 1}))
	assert.False(t, ArrayIndex(&objects.Integer{Value: 0}, objects.NewArray(0)))
}

// TestValidate_ArraySize verifies array size checks.
func TestValidate_ArraySize(t *testing.T) {
	assert.True(t, ArraySize(&objects.Integer{Value: 0}))
	assert.True(t, ArraySize(&objects.Integer{Value: 10}))

	assert.False(t, ArraySize(&objects.Integer{Value: -1}))
	assert.False(t, ArraySize(&objects.Float{Value: 2}))
	assert.False(t, ArraySize(&objects.Nil{}))
}
