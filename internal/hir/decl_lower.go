package hir

import (
	"langfront/internal/ast"
	"langfront/internal/diag"
	"langfront/internal/source"
	"langfront/internal/symbols"
)

// basicNames maps a basic-type keyword's text to its kind; path-looked-up
// names never collide with it since basics aren't symbols.
var basicNames = map[string]BasicKind{
	"bool": BasicBool, "s8": BasicS8, "s16": BasicS16, "s32": BasicS32,
	"s64": BasicS64, "ssize": BasicSsize, "u8": BasicU8, "u16": BasicU16,
	"u32": BasicU32, "u64": BasicU64, "usize": BasicUsize,
	"f32": BasicF32, "f64": BasicF64, "char": BasicChar, "rawptr": BasicRawptr,
}

// lowerer carries the state one package's declaration lowering needs:
// the AST it reads from, the symbol table it resolves paths against, the
// table it writes into, and a per-const-item recursion guard for instant
// mode's cycle detection.
type lowerer struct {
	tree     *ast.Tree
	table    *symbols.Table
	interner *source.Interner
	root     symbols.ScopeID
	tables   *Tables
	reporter diag.Reporter

	// inProgress guards instant-mode const evaluation against cycles:
	// a const item's symbol is marked while its value is being folded,
	// and unmarked once done.
	inProgress map[symbols.SymbolID]bool
	// constCache holds values already folded in instant mode, keyed by
	// the const item's symbol, so a diamond of instant dependents only
	// evaluates each shared const once.
	constCache map[symbols.SymbolID]int64

	// itemScope maps each top-level item to the scope it was declared
	// in. symbols.Table has no reverse item->scope lookup of its own, so
	// the driver that walks every module's items populates this as it
	// goes, before any delayed slot gets resolved.
	itemScope map[ast.ItemID]symbols.ScopeID
	// itemSymbol maps each declared item to the symbol declareRow
	// registered it under, so lowerRow can find its own Tables row
	// without scanning BySymbol.
	itemSymbol map[ast.ItemID]symbols.SymbolID
}

func newLowerer(tree *ast.Tree, table *symbols.Table, interner *source.Interner, root symbols.ScopeID, tables *Tables, reporter diag.Reporter) *lowerer {
	return &lowerer{
		tree: tree, table: table, interner: interner, root: root,
		tables:     tables,
		reporter:   reporter,
		inProgress: make(map[symbols.SymbolID]bool),
		constCache: make(map[symbols.SymbolID]int64),
		itemScope:  make(map[ast.ItemID]symbols.ScopeID),
		itemSymbol: make(map[ast.ItemID]symbols.SymbolID),
	}
}

// lowerTypeDelayed lowers an AST type reference. Array lengths are never
// evaluated here: a pending ConstExprData slot is allocated and the
// caller is responsible for resolving it in a later pass, once every
// item's signature is known. This is the default mode (spec.md's
// "delayed" lowering), used for parameters, return types, enum base
// types, union members, and struct fields.
func (lw *lowerer) lowerTypeDelayed(scope symbols.ScopeID, t *ast.Type) *Type {
	return lw.lowerType(scope, t, false)
}

// lowerTypeInstant lowers an AST type, resolving any array length
// const-expr immediately instead of deferring it — used where a concrete
// size must already be known (spec.md's "instant" lowering).
func (lw *lowerer) lowerTypeInstant(scope symbols.ScopeID, t *ast.Type) *Type {
	return lw.lowerType(scope, t, true)
}

func (lw *lowerer) lowerType(scope symbols.ScopeID, t *ast.Type, instant bool) *Type {
	if t == nil {
		return Unit
	}
	switch t.Kind {
	case ast.TypeError:
		return Error
	case ast.TypeNamed:
		return lw.lowerNamedType(scope, lw.tree.Types.Path(t))
	case ast.TypeReference:
		ref := lw.tree.Types.Reference(t)
		return Reference(ref.Mut, lw.lowerType(scope, lw.tree.Types.Get(ref.Inner), instant))
	case ast.TypeSlice:
		sl := lw.tree.Types.Slice(t)
		return Slice(sl.Mut, lw.lowerType(scope, lw.tree.Types.Get(sl.Elem), instant))
	case ast.TypeArray:
		arr := lw.tree.Types.Array(t)
		elem := lw.lowerType(scope, lw.tree.Types.Get(arr.Elem), instant)
		var lenID ConstExprID
		if instant {
			if v, ok := lw.evalConstExprInt(scope, arr.Len); ok {
				lenID = lw.tables.allocConstExprResolved(scope, arr.Len, v)
			} else {
				lenID = ConstExprNone
			}
		} else {
			lenID = lw.tables.allocConstExprPending(scope, arr.Len)
		}
		return Array(elem, lenID)
	default:
		return Error
	}
}

// lowerNamedType resolves a named type reference: a bare identifier
// first checked against the basic-type keyword set, and otherwise
// resolved as a type path against the symbol table.
func (lw *lowerer) lowerNamedType(scope symbols.ScopeID, path *ast.Path) *Type {
	if len(path.Segments) == 1 && path.Prefix == ast.PrefixNone {
		name := lw.interner.MustLookup(path.Segments[0])
		if kind, ok := basicNames[name]; ok {
			return Basic(kind)
		}
	}

	res := symbols.ResolvePath(lw.table, lw.interner, lw.root, scope, path, symbols.AsType, lw.reporter)
	if !res.OK {
		return Error
	}
	symID, sym := lw.resolveDefined(res.Symbol)
	ref, ok := lw.tables.BySymbol[symID]
	if !ok {
		// The symbol table resolved a type that has no Tables row. Lower
		// declares a row for every item of every discovered module before
		// lowering any signature, so this is reached only for items outside
		// them; the returned Type carries ID 0 and is never updated.
		switch sym.Kind {
		case symbols.SymbolEnum:
			return NamedEnumType(EnumID(0))
		case symbols.SymbolUnion:
			return NamedUnionType(UnionID(0))
		default:
			return NamedStructType(StructID(0))
		}
	}
	switch ref.Kind {
	case ItemRefEnum:
		return NamedEnumType(ref.Enum)
	case ItemRefUnion:
		return NamedUnionType(ref.Union)
	case ItemRefStruct:
		return NamedStructType(ref.Struct)
	default:
		return Error
	}
}

// evalConstExprInt folds expr to an integer value for instant-mode array
// lengths, recursing into referenced const items and reporting a cyclic
// dependency if folding that const requires folding itself.
func (lw *lowerer) evalConstExprInt(scope symbols.ScopeID, exprID ast.ExprID) (int64, bool) {
	expr := lw.tree.Exprs.Get(exprID)
	switch expr.Kind {
	case ast.ExprIntLit:
		return int64(lw.tree.Exprs.Int(expr)), true

	case ast.ExprUnary:
		u := lw.tree.Exprs.Unary(expr)
		v, ok := lw.evalConstExprInt(scope, u.Operand)
		if !ok {
			return 0, false
		}
		switch u.Op {
		case ast.UnNeg:
			return -v, true
		default:
			return 0, false
		}

	case ast.ExprBinary:
		b := lw.tree.Exprs.Binary(expr)
		lhs, ok := lw.evalConstExprInt(scope, b.Lhs)
		if !ok {
			return 0, false
		}
		rhs, ok := lw.evalConstExprInt(scope, b.Rhs)
		if !ok {
			return 0, false
		}
		switch b.Op {
		case ast.BinAdd:
			return lhs + rhs, true
		case ast.BinSub:
			return lhs - rhs, true
		case ast.BinMul:
			return lhs * rhs, true
		case ast.BinDiv:
			if rhs == 0 {
				return 0, false
			}
			return lhs / rhs, true
		case ast.BinMod:
			if rhs == 0 {
				return 0, false
			}
			return lhs % rhs, true
		default:
			return 0, false
		}

	case ast.ExprPath:
		path := lw.tree.Exprs.Path(expr)
		return lw.evalConstRef(scope, path, expr.Span)

	default:
		return 0, false
	}
}

func (lw *lowerer) evalConstRef(scope symbols.ScopeID, path *ast.Path, span source.Span) (int64, bool) {
	res := symbols.ResolvePath(lw.table, lw.interner, lw.root, scope, path, symbols.AsValue, lw.reporter)
	if !res.OK {
		return 0, false
	}
	symID, sym := lw.resolveDefined(res.Symbol)
	if sym.Kind != symbols.SymbolConst {
		return 0, false
	}

	if v, ok := lw.constCache[symID]; ok {
		return v, true
	}
	if lw.inProgress[symID] {
		diag.Error(lw.reporter, diag.TypeCyclicConstDep, span, "cyclic constant dependency")
		return 0, false
	}

	declScope := lw.itemScope[sym.Item]
	item := lw.tree.Items.Get(sym.Item)
	c := lw.tree.Items.Const(item)

	lw.inProgress[symID] = true
	v, ok := lw.evalConstExprInt(declScope, c.Value)
	delete(lw.inProgress, symID)
	if !ok {
		return 0, false
	}
	lw.constCache[symID] = v
	return v, true
}

// resolveDefined follows an import chain to the Defined symbol it
// ultimately names. symbols.ResolveImports already collapses multi-hop
// re-exports into a single Target, so one hop always suffices; a symbol
// with Origin == OriginDefined is returned unchanged.
func (lw *lowerer) resolveDefined(id symbols.SymbolID) (symbols.SymbolID, *symbols.Symbol) {
	sym := lw.table.Symbol(id)
	if sym.Origin == symbols.OriginImported && sym.Target.IsValid() {
		return sym.Target, lw.table.Symbol(sym.Target)
	}
	return id, sym
}

// resolvePendingConstExprs folds every delayed-mode slot once all item
// signatures exist, so array lengths that reference a const declared
// later in the same file (or in another module) still resolve. It makes
// a single pass: folding recurses into referenced consts, so no slot
// waits on another. A slot that cannot be folded is marked
// ConstExprSkipped and gets no diagnostic of its own; only a cyclic
// dependency or a failed path resolution reports one.
func (lw *lowerer) resolvePendingConstExprs() {
	n := lw.tables.ConstExprs.Len()
	for i := uint32(1); i <= n; i++ {
		slot := lw.tables.ConstExprs.Get(i)
		if slot.State != ConstExprPending {
			continue
		}
		if v, ok := lw.evalConstExprInt(slot.Scope, slot.Expr); ok {
			slot.State = ConstExprResolved
			slot.Value = v
		} else {
			slot.State = ConstExprSkipped
		}
	}
}
