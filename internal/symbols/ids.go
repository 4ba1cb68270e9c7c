package symbols

// ScopeID identifies a scope in the resolver arena. One scope exists per
// discovered module file.
type ScopeID uint32

// NoScopeID marks the absence of a scope reference (the root scope has no
// parent).
const NoScopeID ScopeID = 0

// IsValid reports whether the scope ID refers to an allocated scope.
func (id ScopeID) IsValid() bool { return id != NoScopeID }

// SymbolID identifies a symbol inside the resolver arena.
type SymbolID uint32

// NoSymbolID marks the absence of a symbol reference.
const NoSymbolID SymbolID = 0

// IsValid reports whether the symbol ID refers to an allocated symbol.
func (id SymbolID) IsValid() bool { return id != NoSymbolID }
