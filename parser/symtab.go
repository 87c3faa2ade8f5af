/*
File    : cou/parser/symtab.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/cou/objects"
)

// SymbolTable defines a lexical scope boundary at parse time.
//
// Each table maintains its own symbol entries and can resolve symbols from
// enclosing tables. This structure supports:
//   - Lexical scoping: inner scopes see the names of outer scopes
//   - Strict declaration discipline: a name may be declared only once across
//     the whole accessible chain (no shadowing)
//   - Level arithmetic: each table records its nesting depth, with the global
//     table at level 1; the evaluator replays the same depths with activation
//     records at run time
//
// The chain is traversed upward (from child to enclosing) during lookup;
// insertion is always local.
type SymbolTable struct {
	Level     int               // Nesting depth, global scope = 1
	Name      string            // Scope name for debugging (e.g. "global", a process name)
	Symbols   map[string]Symbol // Entries declared directly in this scope
	Enclosing *SymbolTable      // The immediately surrounding scope, nil at global
}

// builtinTypeNames is the closed set of type names seeded into every table.
var builtinTypeNames = []string{
	objects.NumTypeName,
	objects.BoolTypeName,
	objects.StrTypeName,
	objects.NilTypeName,
	objects.ArrTypeName,
}

// NewSymbolTable creates and initializes a new SymbolTable with the specified
// enclosing table. Builtin type symbols (num, bool, str, nil, arr) are
// pre-inserted so that type names resolve in any scope.
//
// Example usage:
//
//	global := NewSymbolTable("global", 1, nil)
//	procScope := NewSymbolTable("fact", 2, global)
func NewSymbolTable(name string, level int, enclosing *SymbolTable) *SymbolTable {
	table := &SymbolTable{
		Level:     level,
		Name:      name,
		Symbols:   make(map[string]Symbol),
		Enclosing: enclosing,
	}
	for _, typeName := range builtinTypeNames {
		table.Symbols[typeName] = &TypeSymbol{Name: typeName}
	}
	return table
}

// Lookup searches for a symbol by name in this table and all enclosing
// tables. It returns the first match walking outward, realizing lexical
// resolution: the declaration nearest to the use site wins.
func (st *SymbolTable) Lookup(name string) (Symbol, bool) {
	if sym, ok := st.Symbols[name]; ok {
		return sym, true
	}
	if st.Enclosing != nil {
		return st.Enclosing.Lookup(name)
	}
	return nil, false
}

// LookupLocal searches for a symbol in this table only, without consulting
// enclosing tables.
func (st *SymbolTable) LookupLocal(name string) (Symbol, bool) {
	sym, ok := st.Symbols[name]
	return sym, ok
}

// Declare inserts a symbol into this table. Declaration fails if the name is
// already visible anywhere through the enclosing chain: Cou prohibits
// shadowing, so a nested block may not re-declare a name an outer scope
// already holds. Builtin type symbols never collide here because type
// keywords are rejected as declaration names by the tokenizer.
//
// Returns true if the symbol was inserted, false on a collision.
func (st *SymbolTable) Declare(sym Symbol) bool {
	if _, exists := st.Lookup(sym.SymbolName()); exists {
		return false
	}
	st.Symbols[sym.SymbolName()] = sym
	return true
}

// String returns a debug dump of the table: its name, level and entries,
// excluding the builtin type symbols.
func (st *SymbolTable) String() string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("SymbolTable(%s, level %d):", st.Name, st.Level))
	for name, sym := range st.Symbols {
		if _, isType := sym.(*TypeSymbol); isType {
			continue
		}
		builder.WriteString(fmt.Sprintf("\n  %s -> %s", name, sym.String()))
	}
	return builder.String()
}
