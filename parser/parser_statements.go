/*
File    : cou/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/cou/lexer"
)

// parseStatement parses one statement:
//
//	statement := process | condition | as_loop
//	           | ( declaration | assignment | say | return | expr | empty ) ';'
//
// Statement-level dispatch uses the current token plus one token of
// lookahead: "id:" starts a declaration, while "id=", "id(" and "id[" all
// flow through the expression parser and are promoted to assignments when
// an '=' follows.
func (par *Parser) parseStatement() Node {
	switch par.CurrToken.Type {
	case lexer.PROC_KEY:
		return par.parseProcess()
	case lexer.IF_KEY:
		return par.parseConditions()
	case lexer.AS_KEY:
		return par.parseAsLoop()
	case lexer.SAY_KEY:
		return par.parseSay()
	case lexer.RETURN_KEY:
		return par.parseReturn()
	case lexer.SEMICOLON_DELIM:
		node := &Empty{Token: par.CurrToken}
		par.advance()
		return node
	default:
		return par.parseSimpleStatement()
	}
}

// parseSimpleStatement parses the semicolon-terminated statement forms:
// a declaration (optionally with an initializer), an assignment, or a bare
// expression statement (typically a process call).
func (par *Parser) parseSimpleStatement() Node {
	var node Node

	if par.CurrToken.Type == lexer.IDENTIFIER_ID && par.NextToken.Type == lexer.COLON_DELIM {
		// Declaration: id ':' type, optionally followed by '=' rhs
		declaration := par.parseDeclaration()
		node = declaration

		if par.CurrToken.Type == lexer.ASSIGN_OP {
			assignTok := par.CurrToken
			par.advance()
			node = &Assignment{Token: assignTok, Target: declaration, Value: par.parseExpression()}
		}
	} else {
		node = par.parseExpressionStatement()
	}

	par.expectAdvance(lexer.SEMICOLON_DELIM)
	return node
}

// parseExpressionStatement parses an expression and, when an '=' follows,
// promotes it to an assignment. Only variables and array elements are legal
// assignment targets.
func (par *Parser) parseExpressionStatement() Node {
	expr := par.parseExpression()

	if par.CurrToken.Type != lexer.ASSIGN_OP {
		return expr
	}

	switch expr.(type) {
	case *Variable, *ArrayElement:
		// Legal targets
	default:
		par.syntaxError(par.CurrToken, "invalid assignment target '%s'", expr.Literal())
	}

	assignTok := par.CurrToken
	par.advance()
	return &Assignment{Token: assignTok, Target: expr, Value: par.parseExpression()}
}

// parseDeclaration parses a variable declaration:
//
//	vdecl := id ':' type
//
// The name is declared in the current scope; redeclaring a name already
// visible anywhere through the accessible chain is a scope error.
func (par *Parser) parseDeclaration() *VariableDeclaration {
	nameTok := par.CurrToken
	par.expectAdvance(lexer.IDENTIFIER_ID)
	par.expectAdvance(lexer.COLON_DELIM)

	varType := par.parseType()

	declaration := &VariableDeclaration{
		Token:   nameTok,
		Name:    nameTok.Literal,
		VarType: varType,
	}

	if !par.Scope.Declare(&VariableSymbol{Name: nameTok.Literal, Type: varType}) {
		par.scopeError(nameTok, "'%s' declared more than once in accessible scope", nameTok.Literal)
	}

	return declaration
}

// parseType parses one of the builtin type keywords:
//
//	type := 'num' | 'bool' | 'str' | 'nil' | 'arr'
func (par *Parser) parseType() string {
	if !lexer.TYPE_KEYWORDS[par.CurrToken.Type] {
		par.syntaxError(par.CurrToken, "invalid type '%s'", par.CurrToken.Literal)
		return ""
	}
	typeName := par.CurrToken.Literal
	par.advance()
	return typeName
}

// parseBlock parses a brace-delimited statement sequence:
//
//	block := '{' statement* '}'
//
// The caller owns the scope: processes, condition arms and as loops each
// enter their child symbol table before parsing their block.
func (par *Parser) parseBlock() *Block {
	braceTok := par.CurrToken
	par.expectAdvance(lexer.LEFT_BRACE)

	block := &Block{Token: braceTok, Statements: make([]Node, 0)}

	for par.CurrToken.Type != lexer.RIGHT_BRACE &&
		par.CurrToken.Type != lexer.EOF_TYPE && !par.HasErrors() {
		statement := par.parseStatement()
		if statement != nil {
			block.Statements = append(block.Statements, statement)
		}
	}

	par.expectAdvance(lexer.RIGHT_BRACE)
	return block
}

// parseProcess parses a process definition:
//
//	process := 'proc' id ':' type '(' [vdecl (',' vdecl)*] ')' block
//
// The process symbol is declared in the enclosing scope (so recursive calls
// resolve), while the parameters are declared in the process's own scope.
// The symbol records the scope level of its declaration; the evaluator uses
// it at call time to resolve the lexical enclosing frame.
func (par *Parser) parseProcess() Node {
	par.expectAdvance(lexer.PROC_KEY)

	nameTok := par.CurrToken
	par.expectAdvance(lexer.IDENTIFIER_ID)
	par.expectAdvance(lexer.COLON_DELIM)
	returnType := par.parseType()

	symbol := &ProcessSymbol{
		Name:       nameTok.Literal,
		ReturnType: returnType,
		Params:     make([]*VariableSymbol, 0),
		ScopeLevel: par.Scope.Level,
	}

	if !par.Scope.Declare(symbol) {
		par.scopeError(nameTok, "'%s' declared more than once in accessible scope", nameTok.Literal)
	}

	declaration := &ProcessDeclaration{
		Token:      nameTok,
		Name:       nameTok.Literal,
		ReturnType: returnType,
		Params:     make([]*VariableDeclaration, 0),
	}

	// Parameters live in the process's own scope
	par.enterScope(nameTok.Literal)
	par.expectAdvance(lexer.LEFT_PAREN)

	for par.CurrToken.Type != lexer.RIGHT_PAREN && !par.HasErrors() {
		param := par.parseDeclaration()
		declaration.Params = append(declaration.Params, param)
		symbol.Params = append(symbol.Params, &VariableSymbol{Name: param.Name, Type: param.VarType})

		if par.CurrToken.Type != lexer.COMMA_DELIM {
			break
		}
		par.advance()
	}

	par.expectAdvance(lexer.RIGHT_PAREN)
	body := par.parseBlock()
	par.exitScope()

	process := &Process{Decl: declaration, Body: body, Symbol: symbol}
	symbol.Body = process

	return process
}

// parseConditions parses an if/elif/else chain:
//
//	condition := 'if' '(' expr ')' block ('elif' '(' expr ')' block)* ['else' block]
//
// Each arm's block forms its own lexical scope. The else arm is encoded as a
// condition whose test is the literal true, so the evaluator only ever walks
// an ordered list of (test, block) pairs.
func (par *Parser) parseConditions() Node {
	ifTok := par.CurrToken
	conditions := &Conditions{Token: ifTok, Arms: make([]*Condition, 0)}

	conditions.Arms = append(conditions.Arms, par.parseConditionArm("if"))

	for par.CurrToken.Type == lexer.ELIF_KEY && !par.HasErrors() {
		conditions.Arms = append(conditions.Arms, par.parseConditionArm("elif"))
	}

	if par.CurrToken.Type == lexer.ELSE_KEY && !par.HasErrors() {
		elseTok := par.CurrToken
		par.advance()

		par.enterScope("else")
		body := par.parseBlock()
		par.exitScope()

		// else is an always-true arm at the tail
		trueTok := lexer.NewTokenWithMetadata(lexer.TRUE_KEY, "true", elseTok.Line, elseTok.Column)
		conditions.Arms = append(conditions.Arms, &Condition{
			Token: elseTok,
			Test:  &Boolean{Token: trueTok, Value: true},
			Body:  body,
		})
	}

	return conditions
}

// parseConditionArm parses a single 'if' or 'elif' arm with its own scope.
func (par *Parser) parseConditionArm(scopeName string) *Condition {
	armTok := par.CurrToken
	par.advance() // consume 'if' or 'elif'

	par.expectAdvance(lexer.LEFT_PAREN)
	test := par.parseExpression()
	par.expectAdvance(lexer.RIGHT_PAREN)

	par.enterScope(scopeName)
	body := par.parseBlock()
	par.exitScope()

	return &Condition{Token: armTok, Test: test, Body: body}
}

// parseAsLoop parses a loop:
//
//	as_loop := 'as' '(' [assignment ';'] expr [';' assignment] ')' block
//
// The whole loop, header included, forms one lexical scope.
func (par *Parser) parseAsLoop() Node {
	asTok := par.CurrToken
	par.expectAdvance(lexer.AS_KEY)

	par.enterScope("as")
	par.expectAdvance(lexer.LEFT_PAREN)

	var init, test Node
	if par.CurrToken.Type == lexer.IDENTIFIER_ID &&
		(par.NextToken.Type == lexer.COLON_DELIM || par.NextToken.Type == lexer.ASSIGN_OP) {
		init = par.parseLoopAssignment()
		par.expectAdvance(lexer.SEMICOLON_DELIM)
	} else if par.CurrToken.Type == lexer.IDENTIFIER_ID && par.NextToken.Type == lexer.LEFT_BRACKET {
		// An array element opens either the init assignment or the test
		expr := par.parseExpression()
		if _, ok := expr.(*ArrayElement); ok && par.CurrToken.Type == lexer.ASSIGN_OP {
			assignTok := par.CurrToken
			par.advance()
			init = &Assignment{Token: assignTok, Target: expr, Value: par.parseExpression()}
			par.expectAdvance(lexer.SEMICOLON_DELIM)
		} else {
			test = expr
		}
	}

	if test == nil {
		test = par.parseExpression()
	}

	var step Node
	if par.CurrToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
		step = par.parseLoopAssignment()
	}

	par.expectAdvance(lexer.RIGHT_PAREN)
	body := par.parseBlock()
	par.exitScope()

	return &As{Token: asTok, Init: init, Test: test, Step: step, Body: body}
}

// parseLoopAssignment parses the init or step clause of an as loop:
//
//	assignment := (vdecl | var | array_elem) '=' (array_init | expr)
func (par *Parser) parseLoopAssignment() Node {
	var target Node

	if par.CurrToken.Type == lexer.IDENTIFIER_ID && par.NextToken.Type == lexer.COLON_DELIM {
		target = par.parseDeclaration()
	} else {
		expr := par.parseExpression()
		switch expr.(type) {
		case *Variable, *ArrayElement:
			// Legal targets
		default:
			par.syntaxError(par.CurrToken, "invalid assignment target '%s'", expr.Literal())
		}
		target = expr
	}

	assignTok := par.CurrToken
	par.expectAdvance(lexer.ASSIGN_OP)

	return &Assignment{Token: assignTok, Target: target, Value: par.parseExpression()}
}

// parseSay parses a print statement:
//
//	say := 'say' expr ';'
func (par *Parser) parseSay() Node {
	sayTok := par.CurrToken
	par.expectAdvance(lexer.SAY_KEY)

	node := &Say{Token: sayTok, Value: par.parseExpression()}

	par.expectAdvance(lexer.SEMICOLON_DELIM)
	return node
}

// parseReturn parses a return statement:
//
//	return := 'return' [expr] ';'
//
// The value is nil for a bare return.
func (par *Parser) parseReturn() Node {
	returnTok := par.CurrToken
	par.expectAdvance(lexer.RETURN_KEY)

	node := &Return{Token: returnTok}
	if par.CurrToken.Type != lexer.SEMICOLON_DELIM {
		node.Value = par.parseExpression()
	}

	par.expectAdvance(lexer.SEMICOLON_DELIM)
	return node
}
