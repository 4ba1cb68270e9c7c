package sema

import (
	"langfront/internal/ast"
	"langfront/internal/hir"
	"langfront/internal/symbols"
)

// basicNames mirrors internal/hir's own table: a bare single-segment path
// is a basic-type keyword before it is ever looked up as a declared name.
var basicNames = map[string]hir.BasicKind{
	"bool": hir.BasicBool, "s8": hir.BasicS8, "s16": hir.BasicS16, "s32": hir.BasicS32,
	"s64": hir.BasicS64, "ssize": hir.BasicSsize, "u8": hir.BasicU8, "u16": hir.BasicU16,
	"u32": hir.BasicU32, "u64": hir.BasicU64, "usize": hir.BasicUsize,
	"f32": hir.BasicF32, "f64": hir.BasicF64, "char": hir.BasicChar, "rawptr": hir.BasicRawptr,
}

// resolveType lowers an AST type reference appearing inside an expression
// (today, only a cast's target) the same way internal/hir lowers
// declaration-level types, except array lengths are never evaluated:
// sema has no write access to hir.Tables' const-expr arena, and Equal
// ignores array length entirely, so a placeholder slot is enough.
func (ec *exprChecker) resolveType(scope symbols.ScopeID, t *ast.Type) *hir.Type {
	if t == nil {
		return hir.Unit
	}
	switch t.Kind {
	case ast.TypeError:
		return hir.Error
	case ast.TypeNamed:
		return ec.resolveNamedType(scope, ec.tree.Types.Path(t))
	case ast.TypeReference:
		ref := ec.tree.Types.Reference(t)
		return hir.Reference(ref.Mut, ec.resolveType(scope, ec.tree.Types.Get(ref.Inner)))
	case ast.TypeSlice:
		sl := ec.tree.Types.Slice(t)
		return hir.Slice(sl.Mut, ec.resolveType(scope, ec.tree.Types.Get(sl.Elem)))
	case ast.TypeArray:
		arr := ec.tree.Types.Array(t)
		elem := ec.resolveType(scope, ec.tree.Types.Get(arr.Elem))
		return hir.Array(elem, hir.ConstExprNone)
	default:
		return hir.Error
	}
}

func (ec *exprChecker) resolveNamedType(scope symbols.ScopeID, path *ast.Path) *hir.Type {
	if len(path.Segments) == 1 && path.Prefix == ast.PrefixNone {
		name := ec.interner.MustLookup(path.Segments[0])
		if kind, ok := basicNames[name]; ok {
			return hir.Basic(kind)
		}
	}

	res := symbols.ResolvePath(ec.table, ec.interner, ec.root, scope, path, symbols.AsType, ec.reporter)
	if !res.OK {
		return hir.Error
	}
	symID, _ := ec.resolveDefined(res.Symbol)
	ref, ok := ec.tables.BySymbol[symID]
	if !ok {
		return hir.Error
	}
	switch ref.Kind {
	case hir.ItemRefEnum:
		return hir.NamedEnumType(ref.Enum)
	case hir.ItemRefUnion:
		return hir.NamedUnionType(ref.Union)
	case hir.ItemRefStruct:
		return hir.NamedStructType(ref.Struct)
	default:
		return hir.Error
	}
}

// resolveDefined follows a single import hop to the Defined symbol it
// names, mirroring internal/hir's lowerer.resolveDefined: ResolveImports
// already collapses multi-hop re-exports down to one Target.
func (ec *exprChecker) resolveDefined(id symbols.SymbolID) (symbols.SymbolID, *symbols.Symbol) {
	sym := ec.table.Symbol(id)
	if sym.Origin == symbols.OriginImported && sym.Target.IsValid() {
		return sym.Target, ec.table.Symbol(sym.Target)
	}
	return id, sym
}
