package symbols

import (
	"langfront/internal/ast"
	"langfront/internal/diag"
	"langfront/internal/source"
)

// PathContext names what a resolved path is allowed to land on.
type PathContext uint8

const (
	// AsType requires the terminal symbol to be Enum, Union, or Struct.
	AsType PathContext = iota
	// AsValue requires the terminal symbol to be Proc, Const, Global, or
	// an enum variant (variants aren't symbols of their own — callers
	// resolving a value path one segment past an Enum handle that hop
	// themselves, since it depends on the enum's own variant list, not
	// the scope graph).
	AsValue
	// AsModule allows the path to end exactly at a Mod symbol's scope,
	// with no terminal value at all — used by `import` itself.
	AsModule
)

// Resolution is the outcome of resolving a Path: the scope reached by
// walking every Mod hop, and — unless ctx is AsModule — the terminal
// symbol the remaining segment named.
type Resolution struct {
	Scope  ScopeID
	Symbol SymbolID // NoSymbolID for AsModule, or when resolution failed
	OK     bool
}

// ResolvePath walks path's segments from origin through Mod symbols
// only, stopping at the first non-module symbol or at path end, per
// spec.md's module-hop-then-terminal-symbol algorithm (the Pass 1 import
// walk in discover.go implements the same logic inline for import
// statements; this is the general entry point used by later passes
// resolving type and value references).
func ResolvePath(table *Table, interner *source.Interner, root ScopeID, origin ScopeID, path *ast.Path, ctx PathContext, reporter diag.Reporter) Resolution {
	scope := origin
	switch path.Prefix {
	case ast.PrefixSuper:
		parent := table.Scope(scope).Parent
		if !parent.IsValid() {
			diag.Error(reporter, diag.NameSuperFromRoot, path.PrefixSpan, "'super' has no parent scope at the package root")
			return Resolution{}
		}
		scope = parent
	case ast.PrefixPackage:
		scope = root
	}

	if len(path.Segments) == 0 {
		return Resolution{Scope: scope, Symbol: NoSymbolID, OK: true}
	}

	for i, seg := range path.Segments {
		span := path.SegmentSpans[i]
		last := i == len(path.Segments)-1

		id, ok := table.Lookup(scope, seg)
		if !ok {
			diag.Error(reporter, diag.NameNotFound, span, "%q not found", interner.MustLookup(seg))
			return Resolution{}
		}
		sym := table.Symbol(id)

		if !last {
			if sym.Kind != SymbolMod {
				diag.Error(reporter, diag.NameNotFound, span, "%q is not a module", interner.MustLookup(seg))
				return Resolution{}
			}
			if !checkVisible(table, root, origin, scope, sym, span, interner, reporter) {
				return Resolution{}
			}
			scope = sym.Scope
			continue
		}

		if !checkVisible(table, root, origin, scope, sym, span, interner, reporter) {
			return Resolution{}
		}

		switch ctx {
		case AsModule:
			if sym.Kind != SymbolMod {
				diag.Error(reporter, diag.NameNotFound, span, "%q is not a module", interner.MustLookup(seg))
				return Resolution{}
			}
			return Resolution{Scope: sym.Scope, Symbol: id, OK: true}
		case AsType:
			if sym.Kind != SymbolEnum && sym.Kind != SymbolUnion && sym.Kind != SymbolStruct {
				diag.Error(reporter, diag.NameNotFound, span, "%q is not a type", interner.MustLookup(seg))
				return Resolution{}
			}
		case AsValue:
			if sym.Kind != SymbolProc && sym.Kind != SymbolConst && sym.Kind != SymbolGlobal {
				diag.Error(reporter, diag.NameNotFound, span, "%q is not a value", interner.MustLookup(seg))
				return Resolution{}
			}
		}
		return Resolution{Scope: scope, Symbol: id, OK: true}
	}

	return Resolution{}
}

// checkVisible enforces spec.md's visibility rule: a private symbol is
// reachable only from code in its own defining file, or from anywhere
// if it was defined at the package root. declScope is the scope the
// symbol was looked up in (its own defining scope, since Table.Lookup
// never falls back to a parent); origin is the scope the whole path
// resolution started from.
func checkVisible(table *Table, root, origin, declScope ScopeID, sym *Symbol, span source.Span, interner *source.Interner, reporter diag.Reporter) bool {
	if sym.Pub {
		return true
	}
	if table.Scope(declScope).File == table.Scope(origin).File {
		return true
	}
	if declScope == root {
		return true
	}
	diag.Error(reporter, diag.NamePrivateAccess, span, "%q is private to its defining scope", interner.MustLookup(sym.Name))
	return false
}
