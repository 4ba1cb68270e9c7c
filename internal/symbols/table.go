package symbols

import (
	"langfront/internal/ast"
	"langfront/internal/source"
)

// Table owns every scope and symbol produced by name resolution. Scopes
// and symbols are dense arenas, mirroring the AST's own ID scheme.
type Table struct {
	Scopes  *ast.Arena[Scope]
	Symbols *ast.Arena[Symbol]
}

// NewTable creates an empty Table with capHint-sized arenas.
func NewTable(capHint uint) *Table {
	return &Table{
		Scopes:  ast.NewArena[Scope](capHint),
		Symbols: ast.NewArena[Symbol](capHint * 4),
	}
}

// AddScope allocates a new scope bound to file, with the given parent
// (NoScopeID for the package root).
func (t *Table) AddScope(parent ScopeID, file source.FileID) ScopeID {
	return ScopeID(t.Scopes.Allocate(*newScope(parent, file)))
}

// Scope returns the scope for id.
func (t *Table) Scope(id ScopeID) *Scope { return t.Scopes.Get(uint32(id)) }

// AddSymbol allocates sym and returns its ID.
func (t *Table) AddSymbol(sym Symbol) SymbolID {
	return SymbolID(t.Symbols.Allocate(sym))
}

// Symbol returns the symbol for id.
func (t *Table) Symbol(id SymbolID) *Symbol { return t.Symbols.Get(uint32(id)) }

// Lookup finds a symbol by name directly in scope, with no parent
// fallback — module scopes are isolated except through explicit path
// hops (see ResolvePath).
func (t *Table) Lookup(scope ScopeID, name source.StringID) (SymbolID, bool) {
	s := t.Scope(scope)
	id, ok := s.Names[name]
	return id, ok
}

// Declare inserts a new symbol under name in scope, unless one already
// exists there. Returns the existing SymbolID and false on conflict.
func (t *Table) Declare(scope ScopeID, name source.StringID, sym Symbol) (SymbolID, bool) {
	s := t.Scope(scope)
	if existing, ok := s.Names[name]; ok {
		return existing, false
	}
	id := t.AddSymbol(sym)
	s.Names[name] = id
	return id, true
}
