/*
File    : cou/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"
	"reflect"

	"github.com/akashmaji946/cou/lexer"
	"github.com/akashmaji946/cou/objects"
	"github.com/akashmaji946/cou/parser"
	"github.com/akashmaji946/cou/validate"
)

// evalVariable reads a variable through the current frame's lexical chain.
// Declared-but-unassigned names were bound to nothing at declaration, so a
// miss here only happens for declarations whose statement has not executed
// yet inside the current frame; those read as nothing too.
func (e *Evaluator) evalVariable(node *parser.Variable) objects.CouObject {
	if value, ok := e.Stack.Peek().Get(node.Name); ok {
		return value
	}
	return &objects.Nil{}
}

// evalUnaryOp applies a prefix operator: unary '+' is identity, unary '-'
// negates a number, '!' negates a boolean.
func (e *Evaluator) evalUnaryOp(node *parser.UnaryOp) objects.CouObject {
	child := e.eval(node.Child)
	if isError(child) {
		return child
	}

	if !validate.Operation(node.Operator, child, nil) {
		return e.CreateError(node.Token,
			"TypeError: invalid operation '%s' for type '%s'", node.Operator, objects.TypeOf(child))
	}

	switch node.Operator {
	case lexer.PLUS_OP:
		return child
	case lexer.MINUS_OP:
		if integer, ok := child.(*objects.Integer); ok {
			return &objects.Integer{Value: -integer.Value}
		}
		return &objects.Float{Value: -child.(*objects.Float).Value}
	case lexer.NOT_OP:
		return &objects.Boolean{Value: !child.(*objects.Boolean).Value}
	default:
		return e.CreateError(node.Token, "RuntimeError: unhandled unary operator '%s'", node.Operator)
	}
}

// evalBinaryOp evaluates a binary operator. The logical operators are
// short-circuiting and handled first; for everything else the left operand
// is evaluated, then the right, then the operation is validated and applied.
func (e *Evaluator) evalBinaryOp(node *parser.BinaryOp) objects.CouObject {
	if node.Operator == lexer.AND_OP || node.Operator == lexer.OR_OP {
		return e.evalLogicalOp(node)
	}

	left := e.eval(node.Left)
	if isError(left) {
		return left
	}
	right := e.eval(node.Right)
	if isError(right) {
		return right
	}

	if !validate.Operation(node.Operator, left, right) {
		return e.CreateError(node.Token,
			"TypeError: invalid operation '%s' between types '%s' and '%s'",
			node.Operator, objects.TypeOf(left), objects.TypeOf(right))
	}

	// String concatenation coerces the non-string operand
	if node.Operator == lexer.PLUS_OP &&
		(left.GetType() == objects.StringType || right.GetType() == objects.StringType) {
		return &objects.String{Value: left.ToString() + right.ToString()}
	}

	switch objects.TypeOf(left) {
	case objects.NumTypeName:
		return e.evalNumericOp(node, left, right)
	case objects.StrTypeName:
		return evalEquality(node.Operator, left.(*objects.String).Value == right.(*objects.String).Value)
	case objects.BoolTypeName:
		return evalEquality(node.Operator, left.(*objects.Boolean).Value == right.(*objects.Boolean).Value)
	case objects.NilTypeName:
		return evalEquality(node.Operator, true)
	case objects.ArrTypeName:
		return evalEquality(node.Operator, reflect.DeepEqual(left, right))
	default:
		return e.CreateError(node.Token, "RuntimeError: unhandled operand type '%s'", objects.TypeOf(left))
	}
}

// evalLogicalOp evaluates '&&' and '||' with short-circuiting: the right
// operand is evaluated only when the left does not determine the result.
func (e *Evaluator) evalLogicalOp(node *parser.BinaryOp) objects.CouObject {
	left := e.eval(node.Left)
	if isError(left) {
		return left
	}
	if !validate.Operation(node.Operator, left, nil) {
		return e.CreateError(node.Token,
			"TypeError: invalid operation '%s' for type '%s'", node.Operator, objects.TypeOf(left))
	}

	leftValue := left.(*objects.Boolean).Value
	if node.Operator == lexer.AND_OP && !leftValue {
		return &objects.Boolean{Value: false}
	}
	if node.Operator == lexer.OR_OP && leftValue {
		return &objects.Boolean{Value: true}
	}

	right := e.eval(node.Right)
	if isError(right) {
		return right
	}
	if !validate.Operation(node.Operator, right, nil) {
		return e.CreateError(node.Token,
			"TypeError: invalid operation '%s' for type '%s'", node.Operator, objects.TypeOf(right))
	}

	return &objects.Boolean{Value: right.(*objects.Boolean).Value}
}

// evalEquality resolves '==' and '!=' from a computed equality answer.
// Validation already guaranteed the operator is one of the two.
func evalEquality(op lexer.TokenType, equal bool) objects.CouObject {
	if op == lexer.NE_OP {
		return &objects.Boolean{Value: !equal}
	}
	return &objects.Boolean{Value: equal}
}

// evalNumericOp applies an arithmetic or comparison operator to two numbers.
//
// Promotion rules: when both operands are integers the operation stays in
// integers, except '/' which always yields a float. When either operand is
// a float both are promoted. '%/' yields an integer for two integers and
// the floor of the float quotient otherwise. '%' and '%/' use floored
// semantics, so x %/ y * y + x % y == x holds for y != 0.
func (e *Evaluator) evalNumericOp(node *parser.BinaryOp, left, right objects.CouObject) objects.CouObject {
	leftInt, leftIsInt := left.(*objects.Integer)
	rightInt, rightIsInt := right.(*objects.Integer)

	if leftIsInt && rightIsInt {
		return e.evalIntegerOp(node, leftInt.Value, rightInt.Value)
	}
	return e.evalFloatOp(node, toFloat(left), toFloat(right))
}

// toFloat widens a numeric object to float64.
func toFloat(obj objects.CouObject) float64 {
	if integer, ok := obj.(*objects.Integer); ok {
		return float64(integer.Value)
	}
	return obj.(*objects.Float).Value
}

// evalIntegerOp applies an operator to two integers.
func (e *Evaluator) evalIntegerOp(node *parser.BinaryOp, a, b int64) objects.CouObject {
	switch node.Operator {
	case lexer.PLUS_OP:
		return &objects.Integer{Value: a + b}
	case lexer.MINUS_OP:
		return &objects.Integer{Value: a - b}
	case lexer.MUL_OP:
		return &objects.Integer{Value: a * b}
	case lexer.DIV_OP:
		// Real division regardless of operand kinds
		if b == 0 {
			return e.CreateError(node.Token, "RuntimeError: division by zero")
		}
		return &objects.Float{Value: float64(a) / float64(b)}
	case lexer.IDIV_OP:
		if b == 0 {
			return e.CreateError(node.Token, "RuntimeError: division by zero")
		}
		return &objects.Integer{Value: floorDiv(a, b)}
	case lexer.MOD_OP:
		if b == 0 {
			return e.CreateError(node.Token, "RuntimeError: division by zero")
		}
		return &objects.Integer{Value: a - floorDiv(a, b)*b}
	case lexer.EQ_OP:
		return &objects.Boolean{Value: a == b}
	case lexer.NE_OP:
		return &objects.Boolean{Value: a != b}
	case lexer.GT_OP:
		return &objects.Boolean{Value: a > b}
	case lexer.LT_OP:
		return &objects.Boolean{Value: a < b}
	case lexer.GE_OP:
		return &objects.Boolean{Value: a >= b}
	case lexer.LE_OP:
		return &objects.Boolean{Value: a <= b}
	default:
		return e.CreateError(node.Token, "RuntimeError: unhandled operator '%s'", node.Operator)
	}
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	quotient := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		quotient--
	}
	return quotient
}

// evalFloatOp applies an operator to two numbers of which at least one is a
// float; both have been promoted.
func (e *Evaluator) evalFloatOp(node *parser.BinaryOp, a, b float64) objects.CouObject {
	switch node.Operator {
	case lexer.PLUS_OP:
		return &objects.Float{Value: a + b}
	case lexer.MINUS_OP:
		return &objects.Float{Value: a - b}
	case lexer.MUL_OP:
		return &objects.Float{Value: a * b}
	case lexer.DIV_OP:
		if b == 0 {
			return e.CreateError(node.Token, "RuntimeError: division by zero")
		}
		return &objects.Float{Value: a / b}
	case lexer.IDIV_OP:
		if b == 0 {
			return e.CreateError(node.Token, "RuntimeError: division by zero")
		}
		return &objects.Float{Value: math.Floor(a / b)}
	case lexer.MOD_OP:
		if b == 0 {
			return e.CreateError(node.Token, "RuntimeError: division by zero")
		}
		return &objects.Float{Value: a - math.Floor(a/b)*b}
	case lexer.EQ_OP:
		return &objects.Boolean{Value: a == b}
	case lexer.NE_OP:
		return &objects.Boolean{Value: a != b}
	case lexer.GT_OP:
		return &objects.Boolean{Value: a > b}
	case lexer.LT_OP:
		return &objects.Boolean{Value: a < b}
	case lexer.GE_OP:
		return &objects.Boolean{Value: a >= b}
	case lexer.LE_OP:
		return &objects.Boolean{Value: a <= b}
	default:
		return e.CreateError(node.Token, "RuntimeError: unhandled operator '%s'", node.Operator)
	}
}

// evalArrayInitialization constructs a fresh array of the requested size
// with every slot holding nothing. The size must be a non-negative integer.
func (e *Evaluator) evalArrayInitialization(node *parser.ArrayInitialization) objects.CouObject {
	size := e.eval(node.Size)
	if isError(size) {
		return size
	}
	if !validate.ArraySize(size) {
		return e.CreateError(node.Token, "RuntimeError: invalid array size %s", size.ToString())
	}

	return objects.NewArray(size.(*objects.Integer).Value)
}

// evalArrayElement reads an indexed slot. Multi-dimensional access is
// repeated single-step indexing; every step validates the index kind and
// bounds against the array being stepped into.
func (e *Evaluator) evalArrayElement(node *parser.ArrayElement) objects.CouObject {
	current, ok := e.Stack.Peek().Get(node.Name)
	if !ok {
		return e.CreateError(node.Token, "RuntimeError: '%s' referenced before assignment", node.Name)
	}

	for _, indexExpr := range node.Indices {
		index := e.eval(indexExpr)
		if isError(index) {
			return index
		}
		if !validate.ArrayIndex(index, current) {
			return e.CreateError(indexExpr.TokenInfo(),
				"RuntimeError: invalid array index %s into %s", index.ToString(), current.ToString())
		}

		current = current.(*objects.Array).Elements[index.(*objects.Integer).Value]
	}

	return current
}

// evalProcessCall invokes a process:
//
//  1. The callee's lexical enclosing frame is resolved by level arithmetic:
//     following (caller.level - callee.declared_level) Enclosing links up
//     from the caller's record lands on the frame of the scope the process
//     was declared in (the callee's own level is declared_level + 1). This realizes static scoping over the declaring frame while
//     keeping the caller chain out of name resolution.
//  2. Arguments are evaluated left to right in the caller's frame and bound
//     to the parameter names in the fresh record.
//  3. The record is pushed, the body block runs, and the record is popped
//     on every exit path.
//  4. The return value is validated against the declared return type.
func (e *Evaluator) evalProcessCall(node *parser.ProcessCall) objects.CouObject {
	symbol := node.Symbol
	caller := e.Stack.Peek()

	// Resolve the lexical enclosing frame
	enclosing := caller
	for hop := 1; hop < caller.Level-symbol.ScopeLevel+1; hop++ {
		enclosing = enclosing.Enclosing
	}

	record := NewActivationRecord(symbol.Name, symbol.ScopeLevel+1, enclosing)

	// Bind arguments in declaration order, evaluated in the caller's frame
	for i, param := range symbol.Params {
		argument := e.eval(node.Args[i])
		if isError(argument) {
			return argument
		}
		record.Bind(param.Name, argument)
	}

	e.Stack.Push(record)
	result := e.eval(symbol.Body.Body)
	returnValue := e.Stack.Pop()

	if isError(result) {
		return result
	}

	if returnValue == nil {
		returnValue = &objects.Nil{}
	}

	if !validate.Return(symbol.ReturnType, returnValue) {
		return e.CreateError(node.Token,
			"TypeError: process '%s' declared '%s' cannot return type '%s'",
			symbol.Name, symbol.ReturnType, objects.TypeOf(returnValue))
	}

	return returnValue
}
