package symbols

import (
	"path/filepath"

	"langfront/internal/ast"
	"langfront/internal/diag"
	"langfront/internal/source"
)

// PendingImport is one `import` item discovered during Pass 1, queued for
// Pass 3's fixpoint resolution once every module's symbols are known.
// Path-prefix and module-segment resolution (spec step 3.1/3.2) already
// happened in Pass 1, since every module file is known up front — Target
// is that walk's result. Pass 3 only has to resolve the listed symbols
// (step 3.3) against Target's table, which can itself still hold
// unresolved imports on the first iterations.
type PendingImport struct {
	Importer ScopeID // the scope the import statement appears in; imported names land here
	Target   ScopeID // the scope reached by walking the import's path
	Item     ast.ItemID
	Resolved bool
	// SymbolsDone tracks, per listed symbol (parallel to the item's
	// ImportSymbol list), whether it has already been installed — so a
	// round that only re-confirms earlier work isn't mistaken for
	// progress, which would make the Pass 3 fixpoint spin forever.
	SymbolsDone []bool
}

// discoverTask is one unit of Pass 1's worklist: a module file paired
// with the scope it is to be populated into.
type discoverTask struct {
	file  source.FileID
	scope ScopeID
}

// DiscoverResult is Pass 1's output: a populated Table, the package root
// scope, and the imports still awaiting Pass 3.
type DiscoverResult struct {
	Table    *Table
	Root     ScopeID
	Pending  []*PendingImport
}

// Discover runs Pass 1 (module discovery) and declares every non-import
// item into its module's scope. fs and tree must already contain every
// source file reachable from rootFile — spec.md's module_map is built by
// the project loader walking `src/` before resolution ever starts; this
// pass only picks modules out of what's already parsed, by path.
func Discover(fs *source.FileSet, tree *ast.Tree, interner *source.Interner, rootFile source.FileID, reporter diag.Reporter) *DiscoverResult {
	table := NewTable(32)
	root := table.AddScope(NoScopeID, rootFile)
	res := &DiscoverResult{Table: table, Root: root}

	claimed := make(map[source.FileID]source.Span)
	claimed[rootFile] = source.Span{}

	stack := []discoverTask{{rootFile, root}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		mod := tree.Modules[cur.file]
		if mod == nil {
			continue
		}
		for _, itemID := range mod.Items {
			item := tree.Items.Get(itemID)
			switch item.Kind {
			case ast.ItemProc:
				p := tree.Items.Proc(item)
				declareItem(table, reporter, cur.scope, p.Name, p.NameSpan, SymbolProc, itemID, item.Pub)
			case ast.ItemEnum:
				e := tree.Items.Enum(item)
				declareItem(table, reporter, cur.scope, e.Name, e.NameSpan, SymbolEnum, itemID, item.Pub)
			case ast.ItemUnion:
				u := tree.Items.Union(item)
				declareItem(table, reporter, cur.scope, u.Name, u.NameSpan, SymbolUnion, itemID, item.Pub)
			case ast.ItemStruct:
				s := tree.Items.Struct(item)
				declareItem(table, reporter, cur.scope, s.Name, s.NameSpan, SymbolStruct, itemID, item.Pub)
			case ast.ItemConst:
				c := tree.Items.Const(item)
				declareItem(table, reporter, cur.scope, c.Name, c.NameSpan, SymbolConst, itemID, item.Pub)
			case ast.ItemGlobal:
				g := tree.Items.Global(item)
				declareItem(table, reporter, cur.scope, g.Name, g.NameSpan, SymbolGlobal, itemID, item.Pub)
			case ast.ItemImport:
				target, ok := discoverImportPath(fs, tree, interner, table, reporter, claimed, cur.scope, itemID, &stack)
				if ok {
					res.Pending = append(res.Pending, &PendingImport{Importer: cur.scope, Target: target, Item: itemID})
				}
			}
		}
	}
	return res
}

func declareItem(table *Table, reporter diag.Reporter, scope ScopeID, name source.StringID, span source.Span, kind SymbolKind, item ast.ItemID, pub bool) {
	existing, ok := table.Declare(scope, name, Symbol{Name: name, Kind: kind, Origin: OriginDefined, Span: span, Item: item, Pub: pub})
	if !ok {
		first := table.Symbol(existing)
		reporter.Report(diag.Errorf(diag.NameRedefinition, span, "name is defined multiple times").
			WithNote(first.Span, "first defined here"))
	}
}

// discoverImportPath walks an import's path segments as module hops,
// discovering and scope-registering new module files on demand, and
// returns the terminal scope the import's symbol list should resolve
// against. stack receives a task for every newly discovered file so
// Discover's outer worklist visits it.
func discoverImportPath(
	fs *source.FileSet, tree *ast.Tree, interner *source.Interner,
	table *Table, reporter diag.Reporter, claimed map[source.FileID]source.Span,
	scope ScopeID, itemID ast.ItemID, stack *[]discoverTask,
) (ScopeID, bool) {
	item := tree.Items.Get(itemID)
	imp := tree.Items.Import(item)

	switch imp.Prefix {
	case ast.PrefixSuper:
		parent := table.Scope(scope).Parent
		if !parent.IsValid() {
			diag.Error(reporter, diag.NameSuperFromRoot, imp.PrefixSpan, "'super' has no parent scope at the package root")
			return scope, false
		}
		scope = parent
	case ast.PrefixPackage:
		scope = tableRoot(table, scope)
	}

	for i, seg := range imp.PathSegments {
		span := imp.PathSpans[i]
		if existingID, ok := table.Lookup(scope, seg); ok {
			sym := table.Symbol(existingID)
			if sym.Kind != SymbolMod {
				diag.Error(reporter, diag.NameNotFound, span, "%q is not a module", interner.MustLookup(seg))
				return scope, false
			}
			scope = sym.Scope
			continue
		}

		curFile := table.Scope(scope).File
		dir := filepath.Dir(fs.Get(curFile).Path)
		ext := filepath.Ext(fs.Get(curFile).Path)
		name := interner.MustLookup(seg)
		path1 := filepath.Join(dir, name+ext)
		path2 := filepath.Join(dir, name, "mod"+ext)

		id1, ok1 := fs.GetLatest(path1)
		id2, ok2 := fs.GetLatest(path2)
		found1 := ok1 && tree.Modules[id1] != nil
		found2 := ok2 && tree.Modules[id2] != nil

		var target source.FileID
		switch {
		case !found1 && !found2:
			diag.Error(reporter, diag.NameModuleFileMissing, span, "module %q not found", name)
			return scope, false
		case found1 && found2:
			diag.Error(reporter, diag.NameModuleFileAmbig, span, "module %q matches both %s and %s", name, path1, path2)
			return scope, false
		case found1:
			target = id1
		default:
			target = id2
		}

		if claimant, already := claimed[target]; already {
			for s := scope; s.IsValid(); s = table.Scope(s).Parent {
				if table.Scope(s).File == target {
					diag.Error(reporter, diag.NameModuleCyclic, span, "module %q is an ancestor of the importing module", name)
					return scope, false
				}
			}
			reporter.Report(diag.Errorf(diag.NameModuleFileClaimed, span, "module %q was already claimed", name).
				WithNote(claimant, "claimed here"))
			return scope, false
		}
		claimed[target] = span

		newScope := table.AddScope(scope, target)
		if existing, ok := table.Declare(scope, seg, Symbol{Name: seg, Kind: SymbolMod, Origin: OriginDefined, Span: span, Scope: newScope, Pub: true}); !ok {
			first := table.Symbol(existing)
			reporter.Report(diag.Errorf(diag.NameRedefinition, span, "name is defined multiple times").
				WithNote(first.Span, "first defined here"))
		}
		*stack = append(*stack, discoverTask{target, newScope})
		scope = newScope
	}
	return scope, true
}

func tableRoot(table *Table, scope ScopeID) ScopeID {
	for {
		s := table.Scope(scope)
		if !s.Parent.IsValid() {
			return scope
		}
		scope = s.Parent
	}
}
