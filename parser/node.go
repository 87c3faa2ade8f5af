/*
File    : cou/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// This file defines the abstract syntax tree for Cou. Each construct is a
// tagged struct implementing the Node interface; the evaluator dispatches
// over the node set with an exhaustive type switch. Every node carries the
// token it originated from, so diagnostics can always point at a source
// position.
package parser

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/cou/lexer"
	"github.com/akashmaji946/cou/objects"
)

// Node is the interface implemented by every AST node.
type Node interface {
	// TokenInfo returns the originating token, used for diagnostics
	TokenInfo() lexer.Token
	// Literal returns a compact source-like rendering of the node,
	// used for debugging and structural tests
	Literal() string
}

// Program is the root node: the ordered top-level statements of a source file.
type Program struct {
	Statements []Node
}

// TokenInfo returns the first statement's token, or a zero token when empty
func (node *Program) TokenInfo() lexer.Token {
	if len(node.Statements) > 0 {
		return node.Statements[0].TokenInfo()
	}
	return lexer.Token{}
}

// Literal renders all top-level statements
func (node *Program) Literal() string {
	return renderStatements(node.Statements)
}

// Block is a brace-delimited statement sequence forming a lexical scope.
type Block struct {
	Token      lexer.Token // The '{' token
	Statements []Node
}

// TokenInfo returns the opening brace token
func (node *Block) TokenInfo() lexer.Token { return node.Token }

// Literal renders the block's statements between braces
func (node *Block) Literal() string {
	return "{ " + renderStatements(node.Statements) + " }"
}

// Empty is an empty statement (a bare ';').
type Empty struct {
	Token lexer.Token
}

// TokenInfo returns the semicolon token
func (node *Empty) TokenInfo() lexer.Token { return node.Token }

// Literal renders the empty statement
func (node *Empty) Literal() string { return ";" }

// Number is an integer or real literal. The parser resolves the token text
// into a runtime value eagerly, so evaluation is a constant lookup.
type Number struct {
	Token lexer.Token
	Value objects.CouObject // *objects.Integer or *objects.Float
}

// TokenInfo returns the literal's token
func (node *Number) TokenInfo() lexer.Token { return node.Token }

// Literal renders the number as written
func (node *Number) Literal() string { return node.Token.Literal }

// Boolean is a true/false literal.
type Boolean struct {
	Token lexer.Token
	Value bool
}

// TokenInfo returns the literal's token
func (node *Boolean) TokenInfo() lexer.Token { return node.Token }

// Literal renders the boolean as written
func (node *Boolean) Literal() string { return node.Token.Literal }

// StringLiteral is a single-quoted string literal, escapes already decoded.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

// TokenInfo returns the literal's token
func (node *StringLiteral) TokenInfo() lexer.Token { return node.Token }

// Literal renders the string in quotes
func (node *StringLiteral) Literal() string { return "'" + node.Value + "'" }

// Nothing is the nothing (null) literal.
type Nothing struct {
	Token lexer.Token
}

// TokenInfo returns the literal's token
func (node *Nothing) TokenInfo() lexer.Token { return node.Token }

// Literal renders the nothing literal
func (node *Nothing) Literal() string { return "nothing" }

// Variable is a reference to a declared name. The parser attaches the
// declared type resolved through the symbol table, so the evaluator never
// re-resolves types.
type Variable struct {
	Token   lexer.Token
	Name    string
	VarType string // Declared type resolved at parse time
}

// TokenInfo returns the identifier's token
func (node *Variable) TokenInfo() lexer.Token { return node.Token }

// Literal renders the variable name
func (node *Variable) Literal() string { return node.Name }

// VariableDeclaration introduces a name with a declared type in the current
// scope. As a bare statement it binds the name to nothing at run time.
type VariableDeclaration struct {
	Token   lexer.Token
	Name    string
	VarType string
}

// TokenInfo returns the identifier's token
func (node *VariableDeclaration) TokenInfo() lexer.Token { return node.Token }

// Literal renders "name: type"
func (node *VariableDeclaration) Literal() string {
	return node.Name + ": " + node.VarType
}

// UnaryOp applies a prefix operator (+, -, !) to a child expression.
type UnaryOp struct {
	Token    lexer.Token
	Operator lexer.TokenType
	Child    Node
}

// TokenInfo returns the operator's token
func (node *UnaryOp) TokenInfo() lexer.Token { return node.Token }

// Literal renders "(<op><child>)", e.g. "(-2)"
func (node *UnaryOp) Literal() string {
	return fmt.Sprintf("(%s%s)", node.Operator, node.Child.Literal())
}

// BinaryOp applies an infix operator between two expressions.
type BinaryOp struct {
	Token    lexer.Token
	Operator lexer.TokenType
	Left     Node
	Right    Node
}

// TokenInfo returns the operator's token
func (node *BinaryOp) TokenInfo() lexer.Token { return node.Token }

// Literal renders "(left op right)"
func (node *BinaryOp) Literal() string {
	return fmt.Sprintf("(%s %s %s)", node.Left.Literal(), node.Operator, node.Right.Literal())
}

// Assignment stores the value of an expression into a target. The target is
// a VariableDeclaration (declare-and-assign), a Variable, or an ArrayElement.
type Assignment struct {
	Token  lexer.Token // The '=' token
	Target Node
	Value  Node
}

// TokenInfo returns the '=' token
func (node *Assignment) TokenInfo() lexer.Token { return node.Token }

// Literal renders "target = value"
func (node *Assignment) Literal() string {
	return node.Target.Literal() + " = " + node.Value.Literal()
}

// ArrayInitialization constructs a fresh array: arr[size]. Every slot of the
// new array holds nothing.
type ArrayInitialization struct {
	Token lexer.Token // The 'arr' keyword token
	Size  Node
}

// TokenInfo returns the 'arr' keyword token
func (node *ArrayInitialization) TokenInfo() lexer.Token { return node.Token }

// Literal renders "arr[size]"
func (node *ArrayInitialization) Literal() string {
	return "arr[" + node.Size.Literal() + "]"
}

// ArrayElement reads (or, as an assignment target, writes) an indexed slot.
// Multi-dimensional access carries one index expression per step.
type ArrayElement struct {
	Token   lexer.Token
	Name    string
	VarType string // Declared type of the named variable, resolved at parse time
	Indices []Node
}

// TokenInfo returns the identifier's token
func (node *ArrayElement) TokenInfo() lexer.Token { return node.Token }

// Literal renders "name[i][j]..."
func (node *ArrayElement) Literal() string {
	var builder strings.Builder
	builder.WriteString(node.Name)
	for _, index := range node.Indices {
		builder.WriteString("[" + index.Literal() + "]")
	}
	return builder.String()
}

// Say prints one line: the canonical string form of its expression.
type Say struct {
	Token lexer.Token // The 'say' keyword token
	Value Node
}

// TokenInfo returns the 'say' keyword token
func (node *Say) TokenInfo() lexer.Token { return node.Token }

// Literal renders "say expr"
func (node *Say) Literal() string { return "say " + node.Value.Literal() }

// Return exits the nearest enclosing process with an optional value.
// Value is nil for a bare "return;".
type Return struct {
	Token lexer.Token // The 'return' keyword token
	Value Node
}

// TokenInfo returns the 'return' keyword token
func (node *Return) TokenInfo() lexer.Token { return node.Token }

// Literal renders "return [expr]"
func (node *Return) Literal() string {
	if node.Value == nil {
		return "return"
	}
	return "return " + node.Value.Literal()
}

// Condition pairs one test with its block: a single if/elif arm, or the else
// arm encoded with a literal-true test.
type Condition struct {
	Token lexer.Token // The 'if'/'elif'/'else' keyword token
	Test  Node
	Body  *Block
}

// TokenInfo returns the keyword token
func (node *Condition) TokenInfo() lexer.Token { return node.Token }

// Literal renders "(test) block"
func (node *Condition) Literal() string {
	return "(" + node.Test.Literal() + ") " + node.Body.Literal()
}

// Conditions is an ordered if/elif/else chain. The first arm whose test
// evaluates true runs, and the walk stops.
type Conditions struct {
	Token lexer.Token // The 'if' keyword token
	Arms  []*Condition
}

// TokenInfo returns the 'if' keyword token
func (node *Conditions) TokenInfo() lexer.Token { return node.Token }

// Literal renders the chain
func (node *Conditions) Literal() string {
	arms := make([]string, len(node.Arms))
	for i, arm := range node.Arms {
		arms[i] = arm.Literal()
	}
	return "if " + strings.Join(arms, " elif ")
}

// As is the loop construct: optional init assignment, mandatory boolean
// test, optional step assignment, and a body block.
type As struct {
	Token lexer.Token // The 'as' keyword token
	Init  Node        // nil when absent
	Test  Node
	Step  Node // nil when absent
	Body  *Block
}

// TokenInfo returns the 'as' keyword token
func (node *As) TokenInfo() lexer.Token { return node.Token }

// Literal renders "as (init; test; step) block"
func (node *As) Literal() string {
	var builder strings.Builder
	builder.WriteString("as (")
	if node.Init != nil {
		builder.WriteString(node.Init.Literal() + "; ")
	}
	builder.WriteString(node.Test.Literal())
	if node.Step != nil {
		builder.WriteString("; " + node.Step.Literal())
	}
	builder.WriteString(") " + node.Body.Literal())
	return builder.String()
}

// ProcessDeclaration is the header of a process: its name, declared return
// type, and parameter declarations in order.
type ProcessDeclaration struct {
	Token      lexer.Token // The process name token
	Name       string
	ReturnType string
	Params     []*VariableDeclaration
}

// TokenInfo returns the process name token
func (node *ProcessDeclaration) TokenInfo() lexer.Token { return node.Token }

// Literal renders "proc name: type(params)"
func (node *ProcessDeclaration) Literal() string {
	params := make([]string, len(node.Params))
	for i, param := range node.Params {
		params[i] = param.Literal()
	}
	return fmt.Sprintf("proc %s: %s(%s)", node.Name, node.ReturnType, strings.Join(params, ", "))
}

// Process is a full process definition: its declaration header and body.
// Symbol points at the process symbol registered in the enclosing scope,
// which in turn points back here via Body.
type Process struct {
	Decl   *ProcessDeclaration
	Body   *Block
	Symbol *ProcessSymbol
}

// TokenInfo returns the process name token
func (node *Process) TokenInfo() lexer.Token { return node.Decl.Token }

// Literal renders the declaration and body
func (node *Process) Literal() string {
	return node.Decl.Literal() + " " + node.Body.Literal()
}

// ProcessCall invokes a process with argument expressions. The parser
// resolves the callee to its ProcessSymbol, and checks arity, at parse time.
type ProcessCall struct {
	Token  lexer.Token // The process name token at the call site
	Name   string
	Args   []Node
	Symbol *ProcessSymbol
}

// TokenInfo returns the call site's name token
func (node *ProcessCall) TokenInfo() lexer.Token { return node.Token }

// Literal renders "name(args)"
func (node *ProcessCall) Literal() string {
	args := make([]string, len(node.Args))
	for i, arg := range node.Args {
		args[i] = arg.Literal()
	}
	return node.Name + "(" + strings.Join(args, ", ") + ")"
}

// renderStatements joins statement renderings with "; " for debug output.
func renderStatements(statements []Node) string {
	parts := make([]string, len(statements))
	for i, statement := range statements {
		parts[i] = statement.Literal()
	}
	return strings.Join(parts, "; ")
}
