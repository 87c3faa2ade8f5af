/*
File    : cou/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator for Cou. It executes
// the parser's AST directly: statements run for their side effects against a
// call stack of activation records, and expressions produce runtime values
// from the objects package. Runtime type checks go through the validate
// package; a failed check becomes an in-band Error object that propagates
// up the walk, halts the interpreter, and carries the offending token's
// position.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/cou/lexer"
	"github.com/akashmaji946/cou/objects"
	"github.com/akashmaji946/cou/parser"
)

// Evaluator holds the state for evaluating Cou AST nodes: the parsed
// program, the call stack, and the output sink for say statements.
type Evaluator struct {
	Par    *parser.Parser // Parser instance whose output is being evaluated
	Stack  *CallStack     // Call stack of activation records
	Writer io.Writer      // Output sink for say statements (default: os.Stdout)
}

// NewEvaluator creates and initializes a new Evaluator for the given
// parser's output. The output sink defaults to standard output; tests
// redirect it with SetWriter.
//
// Example usage:
//
//	par := parser.NewParser(source)
//	program := par.Parse()
//	ev := eval.NewEvaluator(par)
//	result := ev.Interpret(program)
func NewEvaluator(par *parser.Parser) *Evaluator {
	return &Evaluator{
		Par:    par,
		Stack:  NewCallStack(),
		Writer: os.Stdout,
	}
}

// SetWriter configures the output destination for say statements.
//
// This is particularly useful for testing: capture output in a buffer to
// verify program behavior.
//
// Example usage:
//
//	var buf bytes.Buffer
//	ev.SetWriter(&buf)
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// CreateError creates an in-band error object whose message carries the
// canonical position suffix of the given token.
func (e *Evaluator) CreateError(tok lexer.Token, format string, args ...interface{}) *objects.Error {
	return &objects.Error{Message: fmt.Sprintf(format, args...) + tok.Position()}
}

// isError reports whether an evaluation result is an in-band error.
func isError(obj objects.CouObject) bool {
	if obj == nil {
		return false
	}
	return obj.GetType() == objects.ErrorType
}

// Interpret executes a parsed program. It pushes the top-level "main"
// activation record at level 1, executes the top-level statements in order,
// and pops the record on every exit path, so the stack is empty again when
// Interpret returns.
//
// A top-level return statement halts the program. The returned object is an
// *objects.Error when evaluation failed, nil otherwise.
func (e *Evaluator) Interpret(program *parser.Program) objects.CouObject {
	record := NewActivationRecord("main", 1, nil)
	e.Stack.Push(record)

	var result objects.CouObject
	for _, statement := range program.Statements {
		result = e.eval(statement)
		if isError(result) || record.Returned {
			break
		}
	}

	e.Stack.Pop()

	if isError(result) {
		return result
	}
	return nil
}

// eval dispatches a node to its handler. The switch is exhaustive over the
// AST node set; an unhandled kind is an interpreter defect and reports as an
// error rather than panicking.
func (e *Evaluator) eval(node parser.Node) objects.CouObject {
	switch n := node.(type) {

	// Expressions
	case *parser.Number:
		return n.Value
	case *parser.Boolean:
		return &objects.Boolean{Value: n.Value}
	case *parser.StringLiteral:
		return &objects.String{Value: n.Value}
	case *parser.Nothing:
		return &objects.Nil{}
	case *parser.Variable:
		return e.evalVariable(n)
	case *parser.UnaryOp:
		return e.evalUnaryOp(n)
	case *parser.BinaryOp:
		return e.evalBinaryOp(n)
	case *parser.ArrayInitialization:
		return e.evalArrayInitialization(n)
	case *parser.ArrayElement:
		return e.evalArrayElement(n)
	case *parser.ProcessCall:
		return e.evalProcessCall(n)

	// Statements
	case *parser.Program:
		return e.evalBlockStatements(n.Statements)
	case *parser.Block:
		return e.evalBlockStatements(n.Statements)
	case *parser.Empty:
		return &objects.Nil{}
	case *parser.VariableDeclaration:
		return e.evalVariableDeclaration(n)
	case *parser.Assignment:
		return e.evalAssignment(n)
	case *parser.Say:
		return e.evalSay(n)
	case *parser.Return:
		return e.evalReturn(n)
	case *parser.Conditions:
		return e.evalConditions(n)
	case *parser.As:
		return e.evalAsLoop(n)
	case *parser.Process:
		// Definition only: the symbol was registered at parse time
		return &objects.Nil{}

	default:
		return e.CreateError(node.TokenInfo(), "RuntimeError: unhandled node '%s'", node.Literal())
	}
}

// evalBlockStatements executes statements in order, stopping at the first
// error and as soon as the current activation record has returned. The
// returned-check after every statement is what propagates a return out of
// nested blocks up to the call boundary.
func (e *Evaluator) evalBlockStatements(statements []parser.Node) objects.CouObject {
	record := e.Stack.Peek()

	for _, statement := range statements {
		result := e.eval(statement)
		if isError(result) {
			return result
		}
		if record.Returned {
			break
		}
	}

	return &objects.Nil{}
}
