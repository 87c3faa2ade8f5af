/*
File    : cou/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/cou/objects"
	"github.com/akashmaji946/cou/parser"
	"github.com/akashmaji946/cou/validate"
)

// evalVariableDeclaration executes a bare declaration: the name is bound to
// nothing in the current frame. Reads before the first assignment therefore
// produce a first-class nothing value, never a host-level nil.
func (e *Evaluator) evalVariableDeclaration(node *parser.VariableDeclaration) objects.CouObject {
	e.Stack.Peek().Bind(node.Name, &objects.Nil{})
	return &objects.Nil{}
}

// evalAssignment executes an assignment: the right-hand side is evaluated
// first, then validated against the target's declared type, then stored.
//
// Target forms:
//   - VariableDeclaration: declare-and-assign binds in the current frame
//   - Variable: the nearest enclosing frame binding the name is updated
//   - ArrayElement: the indexed slot is replaced (slots are untyped, so no
//     kind check applies)
func (e *Evaluator) evalAssignment(node *parser.Assignment) objects.CouObject {
	value := e.eval(node.Value)
	if isError(value) {
		return value
	}

	switch target := node.Target.(type) {

	case *parser.VariableDeclaration:
		if !validate.Assignment(target.VarType, value) {
			return e.CreateError(target.Token,
				"TypeError: cannot assign type '%s' to '%s'", objects.TypeOf(value), target.VarType)
		}
		e.Stack.Peek().Bind(target.Name, value)

	case *parser.Variable:
		if !validate.Assignment(target.VarType, value) {
			return e.CreateError(target.Token,
				"TypeError: cannot assign type '%s' to '%s'", objects.TypeOf(value), target.VarType)
		}
		record := e.Stack.Peek()
		if !record.Set(target.Name, value) {
			// Declared in a block scope of this frame but not executed yet
			record.Bind(target.Name, value)
		}

	case *parser.ArrayElement:
		return e.evalArrayElementAssignment(target, value)

	default:
		return e.CreateError(node.Token,
			"RuntimeError: invalid assignment target '%s'", node.Target.Literal())
	}

	return &objects.Nil{}
}

// evalArrayElementAssignment stores a value into an indexed slot. All but
// the final index step navigate into nested arrays; each step validates the
// index kind and bounds.
func (e *Evaluator) evalArrayElementAssignment(target *parser.ArrayElement, value objects.CouObject) objects.CouObject {
	current, ok := e.Stack.Peek().Get(target.Name)
	if !ok {
		return e.CreateError(target.Token,
			"RuntimeError: '%s' referenced before assignment", target.Name)
	}

	last := len(target.Indices) - 1
	for step, indexExpr := range target.Indices {
		index := e.eval(indexExpr)
		if isError(index) {
			return index
		}
		if !validate.ArrayIndex(index, current) {
			return e.CreateError(indexExpr.TokenInfo(),
				"RuntimeError: invalid array index %s into %s", index.ToString(), current.ToString())
		}

		array := current.(*objects.Array)
		position := index.(*objects.Integer).Value

		if step == last {
			array.Elements[position] = value
			return &objects.Nil{}
		}
		current = array.Elements[position]
	}

	return &objects.Nil{}
}

// evalSay prints one line: the canonical string form of the evaluated
// expression, the same coercion string concatenation uses.
func (e *Evaluator) evalSay(node *parser.Say) objects.CouObject {
	value := e.eval(node.Value)
	if isError(value) {
		return value
	}

	fmt.Fprintln(e.Writer, value.ToString())
	return &objects.Nil{}
}

// evalReturn executes a return statement: the return slot of the current
// frame is filled and the Returned flag raised. Block evaluation checks the
// flag after every statement, so execution stops in the current block and
// in every enclosing block up to the call boundary. A bare return carries
// nothing.
func (e *Evaluator) evalReturn(node *parser.Return) objects.CouObject {
	var value objects.CouObject = &objects.Nil{}

	if node.Value != nil {
		value = e.eval(node.Value)
		if isError(value) {
			return value
		}
	}

	record := e.Stack.Peek()
	record.ReturnValue = value
	record.Returned = true

	return &objects.Nil{}
}

// evalConditions walks an if/elif/else chain in order: each test must be a
// boolean; the first true test's block runs and the walk stops. The else
// arm was encoded by the parser as a literal-true tail test.
func (e *Evaluator) evalConditions(node *parser.Conditions) objects.CouObject {
	for _, arm := range node.Arms {
		test := e.eval(arm.Test)
		if isError(test) {
			return test
		}
		if !validate.Condition(test) {
			return e.CreateError(arm.Test.TokenInfo(),
				"TypeError: condition must be 'bool', got '%s'", objects.TypeOf(test))
		}

		if test.(*objects.Boolean).Value {
			return e.eval(arm.Body)
		}
	}

	return &objects.Nil{}
}

// evalAsLoop executes a loop: the optional init runs once; while the test
// holds, the body runs followed by the optional step. The test is validated
// as a boolean on every evaluation. A return inside the body raises the
// frame's Returned flag, which stops both the body and the loop itself.
func (e *Evaluator) evalAsLoop(node *parser.As) objects.CouObject {
	record := e.Stack.Peek()

	if node.Init != nil {
		if result := e.eval(node.Init); isError(result) {
			return result
		}
	}

	for {
		test := e.eval(node.Test)
		if isError(test) {
			return test
		}
		if !validate.Condition(test) {
			return e.CreateError(node.Test.TokenInfo(),
				"TypeError: condition must be 'bool', got '%s'", objects.TypeOf(test))
		}
		if !test.(*objects.Boolean).Value {
			break
		}

		if result := e.eval(node.Body); isError(result) {
			return result
		}
		if record.Returned {
			break
		}

		if node.Step != nil {
			if result := e.eval(node.Step); isError(result) {
				return result
			}
		}
	}

	return &objects.Nil{}
}
