package symbols

import (
	"langfront/internal/ast"
	"langfront/internal/diag"
	"langfront/internal/source"
)

// CheckMainProc runs Pass 4. Binary packages must declare `proc main()`
// in their root scope; library packages have no such requirement. A
// `main` whose signature is not exactly `() -> s32` gets a warning, not
// an error.
func CheckMainProc(tree *ast.Tree, table *Table, interner *source.Interner, root ScopeID, rootSpan source.Span, isBinary bool, reporter diag.Reporter) {
	if !isBinary {
		return
	}

	mainID, ok := table.Lookup(root, interner.Intern("main"))
	if !ok {
		diag.Error(reporter, diag.NameMainProcMissing, rootSpan, "binary package has no `proc main()`")
		return
	}
	main := table.Symbol(mainID)
	if main.Kind != SymbolProc || main.Origin != OriginDefined {
		diag.Error(reporter, diag.NameMainProcMissing, rootSpan, "binary package has no `proc main()`")
		return
	}

	item := tree.Items.Get(main.Item)
	proc := tree.Items.Proc(item)
	returnsS32 := false
	if proc.ReturnType.IsValid() {
		if rt := tree.Types.Get(proc.ReturnType); rt.Kind == ast.TypeNamed {
			rp := tree.Types.Path(rt)
			returnsS32 = rp.Prefix == ast.PrefixNone && len(rp.Segments) == 1 && interner.MustLookup(rp.Segments[0]) == "s32"
		}
	}
	if proc.ParamsCount != 0 || proc.Variadic || !returnsS32 {
		diag.Warn(reporter, diag.NameMainProcSignature, main.Span, "`main` should have signature `() -> s32`")
	}
}
