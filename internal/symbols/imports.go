package symbols

import (
	"langfront/internal/ast"
	"langfront/internal/diag"
	"langfront/internal/source"
)

// ResolveImports runs Pass 3: an iterative fixed point over every
// PendingImport Discover collected. Each pass attempts every import that
// is not yet resolved; the loop stops the round it makes zero progress,
// since that means whatever remains can never resolve (a genuine
// unresolved name, or a cycle of imports that only resolve through each
// other and never bottom out in a Defined symbol).
func ResolveImports(tree *ast.Tree, table *Table, interner *source.Interner, root ScopeID, pending []*PendingImport, reporter diag.Reporter) {
	for {
		progress := false
		for _, pi := range pending {
			if pi.Resolved {
				continue
			}
			if resolveOne(tree, table, interner, root, pi, reporter) {
				progress = true
			}
		}
		if !progress {
			break
		}
	}

	reportUnresolved(tree, interner, pending, reporter)
}

// resolveOne attempts to fully resolve a single import's symbol list.
// Returns true if it made progress (resolved, partially resolved, or
// newly reported a terminal failure) this round.
func resolveOne(tree *ast.Tree, table *Table, interner *source.Interner, root ScopeID, pi *PendingImport, reporter diag.Reporter) bool {
	item := tree.Items.Get(pi.Item)
	imp := tree.Items.Import(item)

	if imp.SymbolsCount == 0 {
		// A bare `import foo;` already installed the Mod symbol into the
		// importing scope during Pass 1's path walk; there is nothing
		// left for Pass 3 to do.
		pi.Resolved = true
		return true
	}

	syms := tree.Items.ImportSymbolsOf(imp.SymbolsStart, imp.SymbolsCount)
	if pi.SymbolsDone == nil {
		pi.SymbolsDone = make([]bool, len(syms))
	}

	progressed := false
	allDone := true

	for i := range syms {
		if pi.SymbolsDone[i] {
			continue
		}
		sym := &syms[i]
		localName := sym.Alias
		if localName == source.NoStringID {
			localName = sym.Name
		}

		targetID, ok := table.Lookup(pi.Target, sym.Name)
		if !ok {
			allDone = false
			continue
		}
		target := table.Symbol(targetID)
		if target.Origin == OriginImported && !target.Resolved {
			// the name we're re-exporting hasn't settled yet; try again
			// next round.
			allDone = false
			continue
		}

		visible := target.Pub
		if target.Origin == OriginImported {
			visible = table.Symbol(target.Target).Pub
		}
		if pi.Target == pi.Importer {
			diag.Warn(reporter, diag.NameImportRedundant, sym.Span, "%q imports a name already visible in this scope", interner.MustLookup(sym.Name))
		} else if !visible && table.Scope(pi.Target).File != table.Scope(pi.Importer).File && pi.Target != root {
			diag.Error(reporter, diag.NamePrivateAccess, sym.Span, "%q is private to its defining scope", interner.MustLookup(sym.Name))
		}

		finalTarget := targetID
		if target.Origin == OriginImported {
			finalTarget = target.Target
		}

		table.Declare(pi.Importer, localName, Symbol{
			Name:         localName,
			Kind:         target.Kind,
			Origin:       OriginImported,
			Span:         sym.Span,
			Alias:        sym.Alias,
			ImportSource: pi.Target,
			Target:       finalTarget,
			Resolved:     true,
		})
		pi.SymbolsDone[i] = true
		progressed = true
	}

	if allDone {
		pi.Resolved = true
		return true
	}
	return progressed
}

// reportUnresolved emits one diagnostic per source name that never
// resolved across the whole fixpoint, pinned at the import's use site.
func reportUnresolved(tree *ast.Tree, interner *source.Interner, pending []*PendingImport, reporter diag.Reporter) {
	for _, pi := range pending {
		if pi.Resolved {
			continue
		}
		item := tree.Items.Get(pi.Item)
		imp := tree.Items.Import(item)
		syms := tree.Items.ImportSymbolsOf(imp.SymbolsStart, imp.SymbolsCount)
		for i, sym := range syms {
			if i < len(pi.SymbolsDone) && pi.SymbolsDone[i] {
				continue
			}
			diag.Error(reporter, diag.NameImportUnresolved, sym.Span, "%q could not be resolved", interner.MustLookup(sym.Name))
		}
	}
}
