/*
File    : cou/validate/validate.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package validate is a library of pure predicates used by the evaluator to
// perform runtime type checks: operator admissibility, assignment and return
// compatibility, condition kinds, and array indexing/sizing. The predicates
// never mutate their arguments and never produce errors themselves; the
// evaluator turns a false answer into a positioned diagnostic.
package validate

import (
	"github.com/akashmaji946/cou/lexer"
	"github.com/akashmaji946/cou/objects"
)

// operatorSets maps each declared type onto the set of operators it admits.
// The sets mirror the language definition:
//
//	num:  + - * / % %/ == != >= <= > <
//	bool: && || ! == !=
//	str:  + == !=
//	nil:  == !=
//	arr:  == !=
var operatorSets = map[string]map[lexer.TokenType]bool{
	objects.NumTypeName: {
		lexer.PLUS_OP: true, lexer.MINUS_OP: true, lexer.MUL_OP: true,
		lexer.DIV_OP: true, lexer.MOD_OP: true, lexer.IDIV_OP: true,
		lexer.EQ_OP: true, lexer.NE_OP: true,
		lexer.GE_OP: true, lexer.LE_OP: true, lexer.GT_OP: true, lexer.LT_OP: true,
	},
	objects.BoolTypeName: {
		lexer.AND_OP: true, lexer.OR_OP: true, lexer.NOT_OP: true,
		lexer.EQ_OP: true, lexer.NE_OP: true,
	},
	objects.StrTypeName: {
		lexer.PLUS_OP: true, lexer.EQ_OP: true, lexer.NE_OP: true,
	},
	objects.NilTypeName: {
		lexer.EQ_OP: true, lexer.NE_OP: true,
	},
	objects.ArrTypeName: {
		lexer.EQ_OP: true, lexer.NE_OP: true,
	},
}

// Operation reports whether op is admissible between the operands a and b.
// Pass b as nil for unary operators (unary +, unary -, !).
//
// Rules:
//   - operand types must match, and op must belong to the per-type set above
//   - special case: '+' with at least one string operand is always valid,
//     the non-string operand being coerced to its canonical string form
func Operation(op lexer.TokenType, a objects.CouObject, b objects.CouObject) bool {
	aType := objects.TypeOf(a)

	if b == nil {
		// Unary operator: a alone decides
		return operatorSets[aType][op]
	}

	bType := objects.TypeOf(b)

	// String concatenation coerces the other operand
	if op == lexer.PLUS_OP && (aType == objects.StrTypeName || bType == objects.StrTypeName) {
		return true
	}

	if aType != bType {
		return false
	}

	return operatorSets[aType][op]
}

// Assignment reports whether a value may be stored in a target declared with
// the given type. The value's runtime kind must equal the declared type; there
// is no implicit widening.
func Assignment(declared string, value objects.CouObject) bool {
	return objects.TypeOf(value) == declared
}

// Condition reports whether a value may drive an if/elif test or an as-loop
// test: its kind must be bool.
func Condition(value objects.CouObject) bool {
	return objects.TypeOf(value) == objects.BoolTypeName
}

// Return reports whether a value may be returned from a process with the
// given declared return type.
func Return(declared string, value objects.CouObject) bool {
	return objects.TypeOf(value) == declared
}

// ArrayIndex reports whether idx may index arr: idx must be an integer, arr
// must be an array, and 0 <= idx < len(arr).
func ArrayIndex(idx objects.CouObject, arr objects.CouObject) bool {
	index, ok := idx.(*objects.Integer)
	if !ok {
		return false
	}
	array, ok := arr.(*objects.Array)
	if !ok {
		return false
	}
	return index.Value >= 0 && index.Value < int64(len(array.Elements))
}

// ArraySize reports whether size may size a fresh array: it must be an
// integer and non-negative.
func ArraySize(size objects.CouObject) bool {
	value, ok := size.(*objects.Integer)
	if !ok {
		return false
	}
	return value.Value >= 0
}
