/*
File    : cou/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a recursive-descent parser for the Cou programming
language.

The parser converts a stream of tokens from the lexer into an Abstract Syntax
Tree (AST). It handles:
- Expressions through a precedence ladder (disjunction, conjunction,
  comparison, sum, term, factor)
- Statements (declarations, assignments, say, return, conditions, as loops)
- Processes (declarations and calls)
- Arrays (initialization, element access, element assignment)

While parsing, the parser maintains a chain of lexically scoped symbol
tables. Scope and type-name resolution happen at parse time and fail fast:
- Referenced identifier not found in any enclosing scope
- Declaring a name already visible through the accessible chain
- Invalid type keyword in a declaration
- Calling a non-process symbol, or calling with the wrong arity

Every Variable node carries the declared type resolved through the symbol
table, and every ProcessCall node carries a direct reference to the resolved
process symbol, so the evaluator never re-resolves names.

Errors are collected rather than panicked on; parsing stops at the first
recorded error and the driver reports it.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/cou/lexer"
)

// Parser represents the parser state. It maintains the token stream, a
// two-token lookahead window, the current symbol table, and collected errors.
type Parser struct {
	Lex       lexer.Lexer // Lexer instance for tokenizing source code
	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // Next token (for lookahead)

	// Scope is the current symbol table; it starts at the global table
	// (level 1) and moves down/up a chain of child tables as the parser
	// enters and leaves blocks that form scopes
	Scope *SymbolTable

	// Collect parsing errors instead of panicking. Parsing halts after the
	// first recorded error; the slice shape matches the driver's reporting.
	Errors []string
}

// NewParser creates and initializes a new Parser instance for the given Cou
// source code. The parser is ready to use immediately after creation; call
// Parse() to build the AST.
func NewParser(src string) *Parser {
	par := &Parser{
		Lex:    lexer.NewLexer(src),
		Scope:  NewSymbolTable("global", 1, nil),
		Errors: make([]string, 0),
	}

	// Prime the two-token lookahead window
	par.advance()
	par.advance()

	return par
}

// advance moves the lookahead window one token forward. Lexical errors
// surface here as INVALID tokens; the first one is recorded and the stream
// is cut to EOF so parsing halts.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()

	if par.NextToken.Type == lexer.INVALID_TYPE {
		par.syntaxError(par.NextToken, "%s", par.NextToken.Literal)
		par.NextToken = lexer.NewTokenWithMetadata(
			lexer.EOF_TYPE, "EOF", par.NextToken.Line, par.NextToken.Column)
	}
}

// expectAdvance consumes the current token if it has the expected type,
// recording a syntax error otherwise. Returns true when the token matched.
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if par.CurrToken.Type != expected {
		par.syntaxError(par.CurrToken,
			"unexpected token '%s', expected '%s'", par.CurrToken.Literal, expected)
		return false
	}
	par.advance()
	return true
}

// addError appends a fully formatted error message to the parser's error list.
func (par *Parser) addError(msg string) {
	par.Errors = append(par.Errors, msg)
}

// syntaxError records a syntax error at the given token's position.
func (par *Parser) syntaxError(tok lexer.Token, format string, args ...interface{}) {
	par.addError("SyntaxError: " + fmt.Sprintf(format, args...) + tok.Position())
}

// scopeError records a scope error (undeclared reference, duplicate
// declaration, non-process call, arity mismatch) at the token's position.
func (par *Parser) scopeError(tok lexer.Token, format string, args ...interface{}) {
	par.addError("ScopeError: " + fmt.Sprintf(format, args...) + tok.Position())
}

// HasErrors reports whether any errors were recorded during parsing.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns the recorded error messages, in discovery order.
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// enterScope pushes a fresh child symbol table for a nested lexical scope.
func (par *Parser) enterScope(name string) {
	par.Scope = NewSymbolTable(name, par.Scope.Level+1, par.Scope)
}

// exitScope pops back to the enclosing symbol table.
func (par *Parser) exitScope() {
	par.Scope = par.Scope.Enclosing
}

// Parse builds the AST for a whole program:
//
//	program := statement* eof
//
// Parsing halts at the first recorded error; callers must consult
// HasErrors() before evaluating the returned tree.
func (par *Parser) Parse() *Program {
	program := &Program{Statements: make([]Node, 0)}

	for par.CurrToken.Type != lexer.EOF_TYPE && !par.HasErrors() {
		statement := par.parseStatement()
		if statement != nil {
			program.Statements = append(program.Statements, statement)
		}
	}

	return program
}
