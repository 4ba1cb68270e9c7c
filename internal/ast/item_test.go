package ast

import (
	"testing"

	"langfront/internal/source"
)

func TestItemsProcWithParams(t *testing.T) {
	items := NewItems(16)
	types := NewTypes(4)
	e := NewExprs(4)

	s32 := types.NewNamed(makePath(source.StringID(1)), spanAt(0, 3))
	start, count := items.NewParams([]Param{
		{Name: source.StringID(2), Type: s32},
		{Name: source.StringID(3), Type: s32},
	})
	body := e.NewBlock(nil, NoExprID, spanAt(0, 2))

	proc := ProcItem{
		Name:        source.StringID(4),
		ParamsStart: start,
		ParamsCount: count,
		ReturnType:  s32,
		Body:        body,
	}
	id := items.NewProc(proc, NoAttrID, true, spanAt(0, 30))
	item := items.Get(id)
	if !item.Pub {
		t.Fatalf("expected pub proc")
	}
	got := items.Proc(item)
	params := items.ParamsOf(got.ParamsStart, got.ParamsCount)
	if len(params) != 2 || params[1].Name != 3 {
		t.Fatalf("params round-trip failed: %+v", params)
	}
}

func TestItemsEnumVariants(t *testing.T) {
	items := NewItems(16)
	e := NewExprs(4)
	zero := e.NewIntLit(0, spanAt(0, 1))

	start, count := items.NewVariants([]Variant{
		{Name: source.StringID(1), Value: zero},
		{Name: source.StringID(2), Value: NoExprID},
	})
	id := items.NewEnum(EnumItem{Name: source.StringID(3), VariantsStart: start, VariantsCount: count}, NoAttrID, false, spanAt(0, 20))
	got := items.Enum(items.Get(id))
	variants := items.VariantsOf(got.VariantsStart, got.VariantsCount)
	if len(variants) != 2 || variants[0].Value != zero || variants[1].Value != NoExprID {
		t.Fatalf("variants round-trip failed: %+v", variants)
	}
}

func TestItemsStructFields(t *testing.T) {
	items := NewItems(16)
	types := NewTypes(4)
	s32 := types.NewNamed(makePath(source.StringID(1)), spanAt(0, 3))

	start, count := items.NewFields([]Field{{Name: source.StringID(2), Type: s32}})
	id := items.NewStruct(StructItem{Name: source.StringID(3), FieldsStart: start, FieldsCount: count}, NoAttrID, false, spanAt(0, 15))
	got := items.Struct(items.Get(id))
	fields := items.FieldsOf(got.FieldsStart, got.FieldsCount)
	if len(fields) != 1 || fields[0].Type != s32 {
		t.Fatalf("fields round-trip failed: %+v", fields)
	}
}

func TestItemsImportWithAlias(t *testing.T) {
	items := NewItems(16)
	start, count := items.NewImportSymbols([]ImportSymbol{
		{Name: source.StringID(1), Alias: source.StringID(2)},
		{Name: source.StringID(3), Alias: source.NoStringID},
	})
	imp := ImportItem{
		Prefix:       PrefixNone,
		PathSegments: []source.StringID{source.StringID(9)},
		SymbolsStart: start,
		SymbolsCount: count,
	}
	id := items.NewImport(imp, NoAttrID, spanAt(0, 25))
	item := items.Get(id)
	if item.Pub {
		t.Fatalf("import items can never be pub")
	}
	got := items.Import(item)
	syms := items.ImportSymbolsOf(got.SymbolsStart, got.SymbolsCount)
	if len(syms) != 2 || syms[0].Alias != 2 || syms[1].Alias != source.NoStringID {
		t.Fatalf("import symbols round-trip failed: %+v", syms)
	}
}

func TestItemsConstAndGlobal(t *testing.T) {
	items := NewItems(16)
	types := NewTypes(4)
	e := NewExprs(4)
	s32 := types.NewNamed(makePath(source.StringID(1)), spanAt(0, 3))
	val := e.NewIntLit(7, spanAt(0, 1))

	c := items.NewConst(ConstItem{Name: source.StringID(2), Type: s32, Value: val}, NoAttrID, true, spanAt(0, 10))
	if got := items.Const(items.Get(c)); got.Value != val {
		t.Fatalf("Const() payload wrong: %+v", got)
	}

	g := items.NewGlobal(GlobalItem{Name: source.StringID(3), Mut: true, Type: s32, Value: val}, NoAttrID, false, spanAt(0, 15))
	if got := items.Global(items.Get(g)); !got.Mut || got.Value != val {
		t.Fatalf("Global() payload wrong: %+v", got)
	}
}

func TestItemsAttrRoundTrip(t *testing.T) {
	items := NewItems(8)
	attrID := items.NewAttr(Attr{Name: source.StringID(5), Span: spanAt(0, 6)})
	if a := items.AttrOf(attrID); a == nil || a.Name != 5 {
		t.Fatalf("Attr round-trip failed: %+v", a)
	}
}
