package hir

import (
	"langfront/internal/ast"
	"langfront/internal/diag"
	"langfront/internal/source"
	"langfront/internal/symbols"
)

// Lower builds item-level Tables from a resolved symbol table and its
// AST. Every item is declared in a first sub-pass (so any item can refer
// forward to another declared later in file order or in another module),
// then every declaration's signature is lowered in a second sub-pass, and
// finally any delayed const-expr slot allocated along the way is folded.
func Lower(tree *ast.Tree, table *symbols.Table, interner *source.Interner, root symbols.ScopeID, reporter diag.Reporter) *Tables {
	tables := NewTables(uint(tree.Items.Arena.Len()))
	lw := newLowerer(tree, table, interner, root, tables, reporter)

	scopeOf := scopeByFile(table)

	for file, mod := range tree.Modules {
		if mod == nil {
			continue
		}
		scope, ok := scopeOf[file]
		if !ok {
			continue
		}
		for _, itemID := range mod.Items {
			lw.declareRow(scope, itemID)
		}
	}

	for file, mod := range tree.Modules {
		if mod == nil {
			continue
		}
		scope := scopeOf[file]
		for _, itemID := range mod.Items {
			lw.lowerRow(scope, itemID)
		}
	}

	lw.resolvePendingConstExprs()

	return tables
}

// scopeByFile inverts symbols.Table's scope arena into a file->scope
// map; the table itself only tracks the reverse direction (each Scope
// records its own File), since scope IDs are assigned as modules are
// discovered rather than looked up by file.
func scopeByFile(table *symbols.Table) map[source.FileID]symbols.ScopeID {
	out := make(map[source.FileID]symbols.ScopeID)
	n := table.Scopes.Len()
	for i := uint32(1); i <= n; i++ {
		s := table.Scopes.Get(i)
		out[s.File] = symbols.ScopeID(i)
	}
	return out
}

// declareRow allocates a zero-value Tables row for one item (proc, enum,
// union, struct, const, or global), registers it under the item's
// already-resolved symbol, and records the item's scope for later
// const-expr evaluation. Import items have no row of their own.
func (lw *lowerer) declareRow(scope symbols.ScopeID, itemID ast.ItemID) {
	item := lw.tree.Items.Get(itemID)
	lw.itemScope[itemID] = scope

	var name source.StringID
	switch item.Kind {
	case ast.ItemProc:
		name = lw.tree.Items.Proc(item).Name
	case ast.ItemEnum:
		name = lw.tree.Items.Enum(item).Name
	case ast.ItemUnion:
		name = lw.tree.Items.Union(item).Name
	case ast.ItemStruct:
		name = lw.tree.Items.Struct(item).Name
	case ast.ItemConst:
		name = lw.tree.Items.Const(item).Name
	case ast.ItemGlobal:
		name = lw.tree.Items.Global(item).Name
	default:
		return
	}

	symID, ok := lw.table.Lookup(scope, name)
	if !ok {
		return
	}
	lw.itemSymbol[itemID] = symID
	vis := visOf(item.Pub)

	switch item.Kind {
	case ast.ItemProc:
		lw.tables.addProc(symID, ProcData{Name: name, Scope: scope, Vis: vis, Item: itemID})
	case ast.ItemEnum:
		lw.tables.addEnum(symID, EnumData{Name: name, Scope: scope, Vis: vis, Item: itemID, Base: BasicS32})
	case ast.ItemUnion:
		lw.tables.addUnion(symID, UnionData{Name: name, Scope: scope, Vis: vis, Item: itemID})
	case ast.ItemStruct:
		lw.tables.addStruct(symID, StructData{Name: name, Scope: scope, Vis: vis, Item: itemID})
	case ast.ItemConst:
		lw.tables.addConst(symID, ConstData{Name: name, Scope: scope, Vis: vis, Item: itemID})
	case ast.ItemGlobal:
		lw.tables.addGlobal(symID, GlobalData{Name: name, Scope: scope, Vis: vis, Item: itemID})
	}
}

// lowerRow fills in the signature of a row declareRow already allocated:
// parameter/field/member types, enum variants, and const/global
// annotations. Every other declared item already has a Tables entry by
// now, so type references anywhere in the package resolve regardless of
// declaration order.
func (lw *lowerer) lowerRow(scope symbols.ScopeID, itemID ast.ItemID) {
	item := lw.tree.Items.Get(itemID)

	switch item.Kind {
	case ast.ItemProc:
		lw.lowerProc(scope, itemID, item)
	case ast.ItemEnum:
		lw.lowerEnum(scope, itemID, item)
	case ast.ItemUnion:
		lw.lowerUnion(scope, itemID, item)
	case ast.ItemStruct:
		lw.lowerStruct(scope, itemID, item)
	case ast.ItemConst:
		lw.lowerConst(scope, itemID, item)
	case ast.ItemGlobal:
		lw.lowerGlobal(scope, itemID, item)
	}
}

// rowByItem finds the Tables row declareRow already allocated for itemID,
// via the symbol the item was declared under.
func (lw *lowerer) rowByItem(itemID ast.ItemID) (ItemRef, bool) {
	symID, ok := lw.itemSymbol[itemID]
	if !ok {
		return ItemRef{}, false
	}
	ref, ok := lw.tables.BySymbol[symID]
	return ref, ok
}

func (lw *lowerer) lowerProc(scope symbols.ScopeID, itemID ast.ItemID, item *ast.Item) {
	ref, ok := lw.rowByItem(itemID)
	if !ok {
		return
	}
	p := lw.tree.Items.Proc(item)
	row := lw.tables.Procs.Get(uint32(ref.Proc))

	astParams := lw.tree.Items.ParamsOf(p.ParamsStart, p.ParamsCount)
	params := make([]Param, 0, len(astParams))
	for _, ap := range astParams {
		params = append(params, Param{Name: ap.Name, Type: lw.lowerTypeDelayed(scope, lw.tree.Types.Get(ap.Type))})
	}
	row.Params = params
	row.Variadic = p.Variadic
	row.Return = lw.lowerTypeDelayed(scope, lw.tree.Types.Get(p.ReturnType))
}

func (lw *lowerer) lowerEnum(scope symbols.ScopeID, itemID ast.ItemID, item *ast.Item) {
	ref, ok := lw.rowByItem(itemID)
	if !ok {
		return
	}
	e := lw.tree.Items.Enum(item)
	row := lw.tables.Enums.Get(uint32(ref.Enum))

	if e.BaseType.IsValid() {
		base := lw.lowerTypeDelayed(scope, lw.tree.Types.Get(e.BaseType))
		if base.Tag == TyBasic {
			row.Base = base.Basic
		}
	}

	astVariants := lw.tree.Items.VariantsOf(e.VariantsStart, e.VariantsCount)
	variants := make([]EnumVariant, 0, len(astVariants))
	next := int64(0)
	for _, v := range astVariants {
		var val int64
		if v.Value.IsValid() {
			if folded, ok := lw.evalConstExprInt(scope, v.Value); ok {
				val = folded
			} else {
				val = next
			}
		} else {
			val = next
		}
		slot := lw.tables.allocConstExprResolved(scope, v.Value, val)
		variants = append(variants, EnumVariant{Name: v.Name, Value: slot})
		next = val + 1
	}
	row.Variants = variants
}

func (lw *lowerer) lowerUnion(scope symbols.ScopeID, itemID ast.ItemID, item *ast.Item) {
	ref, ok := lw.rowByItem(itemID)
	if !ok {
		return
	}
	u := lw.tree.Items.Union(item)
	row := lw.tables.Unions.Get(uint32(ref.Union))

	astMembers := lw.tree.Items.MembersOf(u.MembersStart, u.MembersCount)
	members := make([]UnionMember, 0, len(astMembers))
	for _, m := range astMembers {
		members = append(members, UnionMember{Name: m.Name, Type: lw.lowerTypeDelayed(scope, lw.tree.Types.Get(m.Type))})
	}
	row.Members = members
}

func (lw *lowerer) lowerStruct(scope symbols.ScopeID, itemID ast.ItemID, item *ast.Item) {
	ref, ok := lw.rowByItem(itemID)
	if !ok {
		return
	}
	s := lw.tree.Items.Struct(item)
	row := lw.tables.Structs.Get(uint32(ref.Struct))

	astFields := lw.tree.Items.FieldsOf(s.FieldsStart, s.FieldsCount)
	fields := make([]StructField, 0, len(astFields))
	for _, f := range astFields {
		fields = append(fields, StructField{Name: f.Name, Type: lw.lowerTypeDelayed(scope, lw.tree.Types.Get(f.Type))})
	}
	row.Fields = fields
}

func (lw *lowerer) lowerConst(scope symbols.ScopeID, itemID ast.ItemID, item *ast.Item) {
	ref, ok := lw.rowByItem(itemID)
	if !ok {
		return
	}
	c := lw.tree.Items.Const(item)
	row := lw.tables.Consts.Get(uint32(ref.Const))
	if c.Type.IsValid() {
		row.Type = lw.lowerTypeDelayed(scope, lw.tree.Types.Get(c.Type))
	}
}

func (lw *lowerer) lowerGlobal(scope symbols.ScopeID, itemID ast.ItemID, item *ast.Item) {
	ref, ok := lw.rowByItem(itemID)
	if !ok {
		return
	}
	g := lw.tree.Items.Global(item)
	row := lw.tables.Globals.Get(uint32(ref.Global))
	row.Mut = g.Mut
	row.Type = lw.lowerTypeDelayed(scope, lw.tree.Types.Get(g.Type))
}
