package symbols

import (
	"langfront/internal/ast"
	"langfront/internal/diag"
	"langfront/internal/source"
)

// CheckNamesets runs Pass 2: for every item carrying a subordinate name
// list (procedure parameters, enum variants, union members, struct
// fields), duplicate names within that single list are reported. This
// is independent of Pass 1's scope-level redefinition check — a
// parameter can collide with a sibling parameter without ever touching
// the enclosing scope's symbol table.
func CheckNamesets(tree *ast.Tree, reporter diag.Reporter) {
	for _, mod := range tree.Modules {
		if mod == nil {
			continue
		}
		for _, itemID := range mod.Items {
			item := tree.Items.Get(itemID)
			switch item.Kind {
			case ast.ItemProc:
				p := tree.Items.Proc(item)
				params := tree.Items.ParamsOf(p.ParamsStart, p.ParamsCount)
				checkNames(reporter, len(params), func(i int) (source.StringID, source.Span) {
					return params[i].Name, params[i].NameSpan
				})
			case ast.ItemEnum:
				e := tree.Items.Enum(item)
				variants := tree.Items.VariantsOf(e.VariantsStart, e.VariantsCount)
				checkNames(reporter, len(variants), func(i int) (source.StringID, source.Span) {
					return variants[i].Name, variants[i].NameSpan
				})
			case ast.ItemUnion:
				u := tree.Items.Union(item)
				members := tree.Items.MembersOf(u.MembersStart, u.MembersCount)
				checkNames(reporter, len(members), func(i int) (source.StringID, source.Span) {
					return members[i].Name, members[i].NameSpan
				})
			case ast.ItemStruct:
				s := tree.Items.Struct(item)
				fields := tree.Items.FieldsOf(s.FieldsStart, s.FieldsCount)
				checkNames(reporter, len(fields), func(i int) (source.StringID, source.Span) {
					return fields[i].Name, fields[i].NameSpan
				})
			}
		}
	}
}

// checkNames reports every name at index i>0 that repeats one already
// seen earlier in the same list, noting the first occurrence.
func checkNames(reporter diag.Reporter, n int, at func(i int) (source.StringID, source.Span)) {
	seen := make(map[source.StringID]source.Span, n)
	for i := 0; i < n; i++ {
		name, span := at(i)
		if first, ok := seen[name]; ok {
			reporter.Report(diag.Errorf(diag.NameDuplicateInList, span, "name is used more than once in this list").
				WithNote(first, "first used here"))
			continue
		}
		seen[name] = span
	}
}
