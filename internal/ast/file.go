package ast

import "langfront/internal/source"

// Module is the parsed contents of a single source file: an ordered list
// of top-level items. Modules map one-to-one with source.File values, so
// they are keyed by source.FileID rather than arena-allocated.
type Module struct {
	File  source.FileID
	Span  source.Span
	Items []ItemID
}

// Tree is the aggregate parser output for an entire package: every node
// arena plus one Module per parsed file.
type Tree struct {
	Items *Items
	Types *Types
	Exprs *Exprs
	Stmts *Stmts

	Modules map[source.FileID]*Module
}

// NewTree creates an empty Tree with capHint-sized node arenas.
func NewTree(capHint uint) *Tree {
	return &Tree{
		Items:   NewItems(capHint),
		Types:   NewTypes(capHint),
		Exprs:   NewExprs(capHint),
		Stmts:   NewStmts(capHint),
		Modules: make(map[source.FileID]*Module),
	}
}

// AddModule records the parsed item list for file, overwriting any
// previous entry for the same file.
func (t *Tree) AddModule(file source.FileID, span source.Span, items []ItemID) *Module {
	m := &Module{File: file, Span: span, Items: items}
	t.Modules[file] = m
	return m
}
