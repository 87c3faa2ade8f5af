/*
File    : cou/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/cou/lexer"
	"github.com/akashmaji946/cou/objects"
)

// The expression grammar is a precedence ladder; each level parses the next
// tighter level and then folds same-level operators left-associatively:
//
//	expr        := disjunction
//	disjunction := conjunction ('||' conjunction)*
//	conjunction := comparison  ('&&' comparison)*
//	comparison  := sum ( ('=='|'!='|'<='|'>='|'<'|'>') sum )*
//	sum         := term (('+'|'-') term)*
//	term        := factor (('*'|'/'|'%'|'%/') factor)*

// parseExpression parses a full expression.
func (par *Parser) parseExpression() Node {
	return par.parseDisjunction()
}

// parseDisjunction folds '||' operators over conjunctions.
func (par *Parser) parseDisjunction() Node {
	node := par.parseConjunction()

	for par.CurrToken.Type == lexer.OR_OP {
		opTok := par.CurrToken
		par.advance()
		node = &BinaryOp{Token: opTok, Operator: opTok.Type, Left: node, Right: par.parseConjunction()}
	}

	return node
}

// parseConjunction folds '&&' operators over comparisons.
func (par *Parser) parseConjunction() Node {
	node := par.parseComparison()

	for par.CurrToken.Type == lexer.AND_OP {
		opTok := par.CurrToken
		par.advance()
		node = &BinaryOp{Token: opTok, Operator: opTok.Type, Left: node, Right: par.parseComparison()}
	}

	return node
}

// comparisonOps is the operator set folded at the comparison level.
var comparisonOps = map[lexer.TokenType]bool{
	lexer.EQ_OP: true, lexer.NE_OP: true,
	lexer.LE_OP: true, lexer.GE_OP: true,
	lexer.LT_OP: true, lexer.GT_OP: true,
}

// parseComparison folds comparison operators over sums.
func (par *Parser) parseComparison() Node {
	node := par.parseSum()

	for comparisonOps[par.CurrToken.Type] {
		opTok := par.CurrToken
		par.advance()
		node = &BinaryOp{Token: opTok, Operator: opTok.Type, Left: node, Right: par.parseSum()}
	}

	return node
}

// parseSum folds '+' and '-' operators over terms.
func (par *Parser) parseSum() Node {
	node := par.parseTerm()

	for par.CurrToken.Type == lexer.PLUS_OP || par.CurrToken.Type == lexer.MINUS_OP {
		opTok := par.CurrToken
		par.advance()
		node = &BinaryOp{Token: opTok, Operator: opTok.Type, Left: node, Right: par.parseTerm()}
	}

	return node
}

// termOps is the operator set folded at the term level.
var termOps = map[lexer.TokenType]bool{
	lexer.MUL_OP: true, lexer.DIV_OP: true,
	lexer.MOD_OP: true, lexer.IDIV_OP: true,
}

// parseTerm folds '*', '/', '%' and '%/' operators over factors.
func (par *Parser) parseTerm() Node {
	node := par.parseFactor()

	for termOps[par.CurrToken.Type] {
		opTok := par.CurrToken
		par.advance()
		node = &BinaryOp{Token: opTok, Operator: opTok.Type, Left: node, Right: par.parseFactor()}
	}

	return node
}

// parseFactor parses the atoms of the grammar:
//
//	factor := number | string | 'true' | 'false' | 'nothing'
//	        | ('+'|'-'|'!') factor
//	        | '(' expr ')'
//	        | id '(' [expr (',' expr)*] ')'    -- process call
//	        | id ('[' expr ']')+               -- array access
//	        | id                               -- variable
//	        | 'arr' '[' expr ']'               -- array initialization
func (par *Parser) parseFactor() Node {
	tok := par.CurrToken

	switch tok.Type {
	case lexer.NUMBER_LIT:
		par.advance()
		return &Number{Token: tok, Value: parseNumberValue(tok.Literal)}

	case lexer.STRING_LIT:
		par.advance()
		return &StringLiteral{Token: tok, Value: tok.Literal}

	case lexer.TRUE_KEY, lexer.FALSE_KEY:
		par.advance()
		return &Boolean{Token: tok, Value: tok.Type == lexer.TRUE_KEY}

	case lexer.NOTHING_KEY:
		par.advance()
		return &Nothing{Token: tok}

	case lexer.PLUS_OP, lexer.MINUS_OP, lexer.NOT_OP:
		par.advance()
		return &UnaryOp{Token: tok, Operator: tok.Type, Child: par.parseFactor()}

	case lexer.LEFT_PAREN:
		par.advance()
		node := par.parseExpression()
		par.expectAdvance(lexer.RIGHT_PAREN)
		return node

	case lexer.ARR_KEY:
		par.advance()
		par.expectAdvance(lexer.LEFT_BRACKET)
		size := par.parseExpression()
		par.expectAdvance(lexer.RIGHT_BRACKET)
		return &ArrayInitialization{Token: tok, Size: size}

	case lexer.IDENTIFIER_ID:
		return par.parseIdentifierExpression()

	default:
		par.syntaxError(tok, "unexpected token '%s'", tok.Literal)
		par.advance()
		return &Empty{Token: tok}
	}
}

// parseNumberValue converts a number literal's text into its runtime value.
// The presence of '.' distinguishes a real from an integer.
func parseNumberValue(literal string) objects.CouObject {
	if strings.Contains(literal, ".") {
		value, _ := strconv.ParseFloat(literal, 64)
		return &objects.Float{Value: value}
	}
	value, _ := strconv.ParseInt(literal, 10, 64)
	return &objects.Integer{Value: value}
}

// parseIdentifierExpression parses the identifier-led factor forms: a process
// call, an array element access, or a bare variable reference. The name is
// resolved through the symbol table chain here, and the resolved declared
// type travels on the node.
func (par *Parser) parseIdentifierExpression() Node {
	if par.NextToken.Type == lexer.LEFT_PAREN {
		return par.parseProcessCall()
	}

	tok := par.CurrToken
	par.advance()

	varType := ""
	symbol, found := par.Scope.Lookup(tok.Literal)
	if !found {
		par.scopeError(tok, "'%s' referenced before declaration", tok.Literal)
	} else if varSym, ok := symbol.(*VariableSymbol); ok {
		varType = varSym.Type
	} else {
		par.scopeError(tok, "'%s' is not a variable", tok.Literal)
	}

	if par.CurrToken.Type == lexer.LEFT_BRACKET {
		element := &ArrayElement{Token: tok, Name: tok.Literal, VarType: varType, Indices: make([]Node, 0)}
		for par.CurrToken.Type == lexer.LEFT_BRACKET && !par.HasErrors() {
			par.advance()
			element.Indices = append(element.Indices, par.parseExpression())
			par.expectAdvance(lexer.RIGHT_BRACKET)
		}
		return element
	}

	return &Variable{Token: tok, Name: tok.Literal, VarType: varType}
}

// parseProcessCall parses a call:
//
//	id '(' [expr (',' expr)*] ')'
//
// The callee must resolve to a process symbol, and the argument count must
// match the declared parameter count; both are checked here, at parse time.
// The node carries the resolved symbol so the evaluator reaches the body
// directly.
func (par *Parser) parseProcessCall() Node {
	tok := par.CurrToken
	par.expectAdvance(lexer.IDENTIFIER_ID)
	par.expectAdvance(lexer.LEFT_PAREN)

	args := make([]Node, 0)
	for par.CurrToken.Type != lexer.RIGHT_PAREN && !par.HasErrors() {
		args = append(args, par.parseExpression())

		if par.CurrToken.Type != lexer.COMMA_DELIM {
			break
		}
		par.advance()
	}
	par.expectAdvance(lexer.RIGHT_PAREN)

	node := &ProcessCall{Token: tok, Name: tok.Literal, Args: args}

	symbol, found := par.Scope.Lookup(tok.Literal)
	if !found {
		par.scopeError(tok, "'%s' referenced before declaration", tok.Literal)
		return node
	}

	procSym, ok := symbol.(*ProcessSymbol)
	if !ok {
		par.scopeError(tok, "'%s' is not a process", tok.Literal)
		return node
	}

	if len(args) != len(procSym.Params) {
		par.scopeError(tok, "process '%s' expects %d arguments, got %d",
			tok.Literal, len(procSym.Params), len(args))
	}

	node.Symbol = procSym
	return node
}
