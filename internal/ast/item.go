package ast

import "langfront/internal/source"

// ItemKind tags a top-level item.
type ItemKind uint8

const (
	ItemProc ItemKind = iota
	ItemEnum
	ItemUnion
	ItemStruct
	ItemConst
	ItemGlobal
	ItemImport
)

// Item is a single top-level declaration, optionally carrying one
// attribute and a `pub` marker.
type Item struct {
	Kind    ItemKind
	Span    source.Span
	Attr    AttrID
	Pub     bool
	Payload PayloadID
}

// Param is one parameter of a proc signature.
type Param struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeID
	Span     source.Span
}

// ProcItem is the payload of an ItemProc node.
type ProcItem struct {
	Name        source.StringID
	NameSpan    source.Span
	ParamsStart uint32
	ParamsCount uint32
	Variadic    bool
	ReturnType  TypeID // NoTypeID means unit
	Body        ExprID // an ExprBlock
}

// Variant is one member of an enum.
type Variant struct {
	Name     source.StringID
	NameSpan source.Span
	Value    ExprID // NoExprID if unspecified; assigned sequentially by HIR
	Span     source.Span
}

// EnumItem is the payload of an ItemEnum node.
type EnumItem struct {
	Name         source.StringID
	NameSpan     source.Span
	BaseType     TypeID // NoTypeID defaults to s32 during lowering
	VariantsStart uint32
	VariantsCount uint32
}

// Member is one member of a union.
type Member struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeID
	Span     source.Span
}

// UnionItem is the payload of an ItemUnion node.
type UnionItem struct {
	Name         source.StringID
	NameSpan     source.Span
	MembersStart uint32
	MembersCount uint32
}

// Field is one field of a struct.
type Field struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeID
	Span     source.Span
}

// StructItem is the payload of an ItemStruct node.
type StructItem struct {
	Name        source.StringID
	NameSpan    source.Span
	FieldsStart uint32
	FieldsCount uint32
}

// ConstItem is the payload of an ItemConst node.
type ConstItem struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeID // NoTypeID if the annotation was omitted
	Value    ExprID
}

// GlobalItem is the payload of an ItemGlobal node.
type GlobalItem struct {
	Name     source.StringID
	NameSpan source.Span
	Mut      bool
	Type     TypeID
	Value    ExprID
}

// ImportSymbol is one listed name of an import statement, with an optional
// `as` alias.
type ImportSymbol struct {
	Name     source.StringID
	NameSpan source.Span
	Alias    source.StringID // NoStringID if unaliased
	Span     source.Span
}

// ImportItem is the payload of an ItemImport node.
type ImportItem struct {
	Prefix         PathPrefix
	PrefixSpan     source.Span
	PathSegments   []source.StringID
	PathSpans      []source.Span
	SymbolsStart   uint32
	SymbolsCount   uint32
}

// Items manages allocation of top-level item nodes and their payloads.
type Items struct {
	Arena *Arena[Item]
	Attrs *Arena[Attr]

	Params        *Arena[Param]
	Variants      *Arena[Variant]
	Members       *Arena[Member]
	Fields        *Arena[Field]
	ImportSymbols *Arena[ImportSymbol]

	Procs   *Arena[ProcItem]
	Enums   *Arena[EnumItem]
	Unions  *Arena[UnionItem]
	Structs *Arena[StructItem]
	Consts  *Arena[ConstItem]
	Globals *Arena[GlobalItem]
	Imports *Arena[ImportItem]
}

// NewItems creates an Items container with capHint-sized arenas.
func NewItems(capHint uint) *Items {
	return &Items{
		Arena: NewArena[Item](capHint),
		Attrs: NewArena[Attr](capHint / 8),

		Params:        NewArena[Param](capHint / 2),
		Variants:      NewArena[Variant](capHint / 2),
		Members:       NewArena[Member](capHint / 2),
		Fields:        NewArena[Field](capHint / 2),
		ImportSymbols: NewArena[ImportSymbol](capHint / 2),

		Procs:   NewArena[ProcItem](capHint / 4),
		Enums:   NewArena[EnumItem](capHint / 8),
		Unions:  NewArena[UnionItem](capHint / 8),
		Structs: NewArena[StructItem](capHint / 4),
		Consts:  NewArena[ConstItem](capHint / 4),
		Globals: NewArena[GlobalItem](capHint / 8),
		Imports: NewArena[ImportItem](capHint / 8),
	}
}

// Get returns the item node for id.
func (it *Items) Get(id ItemID) *Item { return it.Arena.Get(uint32(id)) }

func (it *Items) alloc(kind ItemKind, span source.Span, attr AttrID, pub bool, payload PayloadID) ItemID {
	return ItemID(it.Arena.Allocate(Item{Kind: kind, Span: span, Attr: attr, Pub: pub, Payload: payload}))
}

// NewAttr allocates an attribute and returns its ID.
func (it *Items) NewAttr(a Attr) AttrID { return AttrID(it.Attrs.Allocate(a)) }

// AttrOf returns the attribute for id.
func (it *Items) AttrOf(id AttrID) *Attr { return it.Attrs.Get(uint32(id)) }

// NewParams copies params into the shared param arena and returns the
// (start, count) slice descriptor.
func (it *Items) NewParams(params []Param) (uint32, uint32) {
	var start uint32
	for i, p := range params {
		id := it.Params.Allocate(p)
		if i == 0 {
			start = id
		}
	}
	return start, uint32(len(params))
}

// ParamsOf returns the parameter list described by (start, count).
func (it *Items) ParamsOf(start, count uint32) []Param {
	out := make([]Param, 0, count)
	for i := uint32(0); i < count; i++ {
		out = append(out, *it.Params.Get(start+i))
	}
	return out
}

// NewProc allocates an ItemProc node.
func (it *Items) NewProc(p ProcItem, attr AttrID, pub bool, span source.Span) ItemID {
	return it.alloc(ItemProc, span, attr, pub, PayloadID(it.Procs.Allocate(p)))
}

// Proc returns the payload of an ItemProc node.
func (it *Items) Proc(item *Item) *ProcItem { return it.Procs.Get(uint32(item.Payload)) }

// NewVariants copies variants into the shared variant arena.
func (it *Items) NewVariants(variants []Variant) (uint32, uint32) {
	var start uint32
	for i, v := range variants {
		id := it.Variants.Allocate(v)
		if i == 0 {
			start = id
		}
	}
	return start, uint32(len(variants))
}

// VariantsOf returns the variant list described by (start, count).
func (it *Items) VariantsOf(start, count uint32) []Variant {
	out := make([]Variant, 0, count)
	for i := uint32(0); i < count; i++ {
		out = append(out, *it.Variants.Get(start+i))
	}
	return out
}

// NewEnum allocates an ItemEnum node.
func (it *Items) NewEnum(e EnumItem, attr AttrID, pub bool, span source.Span) ItemID {
	return it.alloc(ItemEnum, span, attr, pub, PayloadID(it.Enums.Allocate(e)))
}

// Enum returns the payload of an ItemEnum node.
func (it *Items) Enum(item *Item) *EnumItem { return it.Enums.Get(uint32(item.Payload)) }

// NewMembers copies members into the shared member arena.
func (it *Items) NewMembers(members []Member) (uint32, uint32) {
	var start uint32
	for i, m := range members {
		id := it.Members.Allocate(m)
		if i == 0 {
			start = id
		}
	}
	return start, uint32(len(members))
}

// MembersOf returns the member list described by (start, count).
func (it *Items) MembersOf(start, count uint32) []Member {
	out := make([]Member, 0, count)
	for i := uint32(0); i < count; i++ {
		out = append(out, *it.Members.Get(start+i))
	}
	return out
}

// NewUnion allocates an ItemUnion node.
func (it *Items) NewUnion(u UnionItem, attr AttrID, pub bool, span source.Span) ItemID {
	return it.alloc(ItemUnion, span, attr, pub, PayloadID(it.Unions.Allocate(u)))
}

// Union returns the payload of an ItemUnion node.
func (it *Items) Union(item *Item) *UnionItem { return it.Unions.Get(uint32(item.Payload)) }

// NewFields copies fields into the shared field arena.
func (it *Items) NewFields(fields []Field) (uint32, uint32) {
	var start uint32
	for i, f := range fields {
		id := it.Fields.Allocate(f)
		if i == 0 {
			start = id
		}
	}
	return start, uint32(len(fields))
}

// FieldsOf returns the field list described by (start, count).
func (it *Items) FieldsOf(start, count uint32) []Field {
	out := make([]Field, 0, count)
	for i := uint32(0); i < count; i++ {
		out = append(out, *it.Fields.Get(start+i))
	}
	return out
}

// NewStruct allocates an ItemStruct node.
func (it *Items) NewStruct(s StructItem, attr AttrID, pub bool, span source.Span) ItemID {
	return it.alloc(ItemStruct, span, attr, pub, PayloadID(it.Structs.Allocate(s)))
}

// Struct returns the payload of an ItemStruct node.
func (it *Items) Struct(item *Item) *StructItem { return it.Structs.Get(uint32(item.Payload)) }

// NewConst allocates an ItemConst node.
func (it *Items) NewConst(c ConstItem, attr AttrID, pub bool, span source.Span) ItemID {
	return it.alloc(ItemConst, span, attr, pub, PayloadID(it.Consts.Allocate(c)))
}

// Const returns the payload of an ItemConst node.
func (it *Items) Const(item *Item) *ConstItem { return it.Consts.Get(uint32(item.Payload)) }

// NewGlobal allocates an ItemGlobal node.
func (it *Items) NewGlobal(g GlobalItem, attr AttrID, pub bool, span source.Span) ItemID {
	return it.alloc(ItemGlobal, span, attr, pub, PayloadID(it.Globals.Allocate(g)))
}

// Global returns the payload of an ItemGlobal node.
func (it *Items) Global(item *Item) *GlobalItem { return it.Globals.Get(uint32(item.Payload)) }

// NewImportSymbols copies symbols into the shared import-symbol arena.
func (it *Items) NewImportSymbols(symbols []ImportSymbol) (uint32, uint32) {
	var start uint32
	for i, sym := range symbols {
		id := it.ImportSymbols.Allocate(sym)
		if i == 0 {
			start = id
		}
	}
	return start, uint32(len(symbols))
}

// ImportSymbolsOf returns the symbol list described by (start, count).
func (it *Items) ImportSymbolsOf(start, count uint32) []ImportSymbol {
	out := make([]ImportSymbol, 0, count)
	for i := uint32(0); i < count; i++ {
		out = append(out, *it.ImportSymbols.Get(start+i))
	}
	return out
}

// NewImport allocates an ItemImport node. Imports cannot be `pub`
// (spec.md's re-export rule is out of scope), so pub is always false.
func (it *Items) NewImport(imp ImportItem, attr AttrID, span source.Span) ItemID {
	return it.alloc(ItemImport, span, attr, false, PayloadID(it.Imports.Allocate(imp)))
}

// Import returns the payload of an ItemImport node.
func (it *Items) Import(item *Item) *ImportItem { return it.Imports.Get(uint32(item.Payload)) }
