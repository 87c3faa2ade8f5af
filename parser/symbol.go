/*
File    : cou/parser/symbol.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"strings"
)

// Symbol is the common interface for entries in a SymbolTable: builtin type
// names, declared variables, and declared processes.
type Symbol interface {
	// SymbolName returns the name the symbol is registered under
	SymbolName() string
	// String returns a debug representation of the symbol
	String() string
}

// TypeSymbol represents a builtin type name (num, bool, str, nil, arr).
// Every symbol table is seeded with the full set, so type names resolve at
// any scope level.
type TypeSymbol struct {
	Name string
}

// SymbolName returns the type name
func (t *TypeSymbol) SymbolName() string { return t.Name }

// String returns a debug representation of the type symbol
func (t *TypeSymbol) String() string { return t.Name }

// VariableSymbol represents a declared variable: an identifier bound to one
// of the builtin types.
type VariableSymbol struct {
	Name string // The variable's identifier
	Type string // The declared type name (num, bool, str, nil, arr)
}

// SymbolName returns the variable's identifier
func (v *VariableSymbol) SymbolName() string { return v.Name }

// String returns a debug representation in the form "[type:name]"
func (v *VariableSymbol) String() string {
	return fmt.Sprintf("[%s:%s]", v.Type, v.Name)
}

// ProcessSymbol represents a declared process. It records the declared return
// type, the parameter symbols in order, and the scope level at which the
// process was declared - the evaluator uses that level to resolve the lexical
// enclosing frame at call time.
//
// Body points back at the Process AST node once the parser has built it, so
// a call site resolved to this symbol can reach the statements to execute.
type ProcessSymbol struct {
	Name       string            // The process's identifier
	ReturnType string            // Declared return type name
	Params     []*VariableSymbol // Parameter symbols, in declaration order
	ScopeLevel int               // Level of the scope the process was declared in
	Body       *Process          // The process AST node (set after parsing the body)
}

// SymbolName returns the process's identifier
func (p *ProcessSymbol) SymbolName() string { return p.Name }

// String returns a debug representation in the form "proc name: type(params)"
func (p *ProcessSymbol) String() string {
	params := make([]string, len(p.Params))
	for i, param := range p.Params {
		params[i] = param.String()
	}
	return fmt.Sprintf("proc %s: %s(%s)", p.Name, p.ReturnType, strings.Join(params, ", "))
}
