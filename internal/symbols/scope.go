package symbols

import "langfront/internal/source"

// Scope is the symbol table of a single discovered module file. Unlike a
// lexical block scope, lookups never fall back to the parent implicitly —
// a path must explicitly hop through a Mod symbol (or `super`/`package`)
// to reach another scope's names.
type Scope struct {
	Parent ScopeID
	File   source.FileID
	Names  map[source.StringID]SymbolID
}

func newScope(parent ScopeID, file source.FileID) *Scope {
	return &Scope{Parent: parent, File: file, Names: make(map[source.StringID]SymbolID)}
}
