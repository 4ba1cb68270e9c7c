package hir

import (
	"langfront/internal/ast"
	"langfront/internal/source"
	"langfront/internal/symbols"
)

// Visibility mirrors an item's `pub` marker, carried down from
// symbols.Symbol.Pub so later passes don't need to re-consult the symbol
// table once HIR tables exist.
type Visibility uint8

const (
	VisPrivate Visibility = iota
	VisPublic
)

func visOf(pub bool) Visibility {
	if pub {
		return VisPublic
	}
	return VisPrivate
}

// Param is one lowered procedure parameter.
type Param struct {
	Name source.StringID
	Type *Type
}

// ProcData is a lowered procedure signature. The body is not lowered here;
// internal/sema type-checks it directly against this signature.
type ProcData struct {
	Name     source.StringID
	Scope    symbols.ScopeID
	Vis      Visibility
	Item     ast.ItemID
	Params   []Param
	Variadic bool
	Return   *Type // Unit if no return type was written
}

// EnumVariant is one lowered enum member. Value is resolved during
// lowering: an explicit discriminant is folded immediately (when it
// cannot be folded, the sequential value is used without a diagnostic),
// an omitted one is the previous variant's value plus one.
type EnumVariant struct {
	Name  source.StringID
	Value ConstExprID
}

// EnumData is a lowered enum declaration.
type EnumData struct {
	Name     source.StringID
	Scope    symbols.ScopeID
	Vis      Visibility
	Item     ast.ItemID
	Base     BasicKind // defaults to BasicS32 when unannotated
	Variants []EnumVariant
}

// UnionMember is one lowered union member.
type UnionMember struct {
	Name source.StringID
	Type *Type
}

// UnionData is a lowered union declaration.
type UnionData struct {
	Name    source.StringID
	Scope   symbols.ScopeID
	Vis     Visibility
	Item    ast.ItemID
	Members []UnionMember
}

// StructField is one lowered struct field.
type StructField struct {
	Name source.StringID
	Type *Type
}

// StructData is a lowered struct declaration.
type StructData struct {
	Name   source.StringID
	Scope  symbols.ScopeID
	Vis    Visibility
	Item   ast.ItemID
	Fields []StructField
}

// ConstData is a lowered `const` item. The initializer is not evaluated
// here; internal/sema checks the item's AST value against Type, or infers
// Type from it when the annotation is absent.
type ConstData struct {
	Name  source.StringID
	Scope symbols.ScopeID
	Vis   Visibility
	Item  ast.ItemID
	Type  *Type // resolved from the annotation, or inferred later if absent
}

// GlobalData is a lowered `global` item.
type GlobalData struct {
	Name  source.StringID
	Scope symbols.ScopeID
	Vis   Visibility
	Item  ast.ItemID
	Mut   bool
	Type  *Type
}

// ConstExprState tags a ConstExprData slot's resolution state.
type ConstExprState uint8

const (
	// ConstExprPending means the slot was allocated (delayed mode) but its
	// expression has not been evaluated yet.
	ConstExprPending ConstExprState = iota
	// ConstExprResolved means Value holds the folded result.
	ConstExprResolved
	// ConstExprSkipped means the slot is CONST_EXPR_NONE's counterpart at
	// the data level: evaluation was attempted and yielded no value, e.g.
	// an operator or a name the folder does not handle.
	ConstExprSkipped
)

// ConstExprData is one constant-expression slot — an array length or enum
// discriminant, resolved eagerly (instant mode) or deferred to a later
// pass (delayed mode) per spec.md's two lowering strategies.
type ConstExprData struct {
	Expr  ast.ExprID
	Scope symbols.ScopeID // the scope Expr's names resolve against
	State ConstExprState
	Value int64 // meaningful only when State == ConstExprResolved
}

// Tables holds every lowered item in a package, indexed by the ID types
// in ids.go. Procedure bodies are deliberately absent — sema walks the
// AST directly, using these tables only for the type of anything it
// references by name.
type Tables struct {
	Procs   *ast.Arena[ProcData]
	Enums   *ast.Arena[EnumData]
	Unions  *ast.Arena[UnionData]
	Structs *ast.Arena[StructData]
	Consts  *ast.Arena[ConstData]
	Globals *ast.Arena[GlobalData]

	// ConstExprs holds every allocated slot. ConstExprNone is never used
	// as an index into this arena — it is a sentinel VALUE some other
	// field may hold to mean "no slot exists", never a key to look up.
	ConstExprs *ast.Arena[ConstExprData]

	// BySymbol maps a resolved symbol to the item it lowers to, letting
	// later passes go from a name lookup straight to a Tables entry
	// without re-deriving which arena/ID pair a symbol's Kind implies.
	BySymbol map[symbols.SymbolID]ItemRef
}

// ItemKind tags which Tables arena an ItemRef points into.
type ItemKind uint8

const (
	ItemRefProc ItemKind = iota
	ItemRefEnum
	ItemRefUnion
	ItemRefStruct
	ItemRefConst
	ItemRefGlobal
)

// ItemRef is a tagged union over the six lowered-item ID types.
type ItemRef struct {
	Kind   ItemKind
	Proc   ProcID
	Enum   EnumID
	Union  UnionID
	Struct StructID
	Const  ConstID
	Global GlobalID
}

// NewTables creates an empty Tables with capHint-sized arenas.
func NewTables(capHint uint) *Tables {
	return &Tables{
		Procs:      ast.NewArena[ProcData](capHint / 4),
		Enums:      ast.NewArena[EnumData](capHint / 8),
		Unions:     ast.NewArena[UnionData](capHint / 8),
		Structs:    ast.NewArena[StructData](capHint / 4),
		Consts:     ast.NewArena[ConstData](capHint / 4),
		Globals:    ast.NewArena[GlobalData](capHint / 8),
		ConstExprs: ast.NewArena[ConstExprData](capHint / 4),
		BySymbol:   make(map[symbols.SymbolID]ItemRef, capHint),
	}
}

func (t *Tables) addProc(sym symbols.SymbolID, d ProcData) ProcID {
	id := ProcID(t.Procs.Allocate(d))
	t.BySymbol[sym] = ItemRef{Kind: ItemRefProc, Proc: id}
	return id
}

func (t *Tables) addEnum(sym symbols.SymbolID, d EnumData) EnumID {
	id := EnumID(t.Enums.Allocate(d))
	t.BySymbol[sym] = ItemRef{Kind: ItemRefEnum, Enum: id}
	return id
}

func (t *Tables) addUnion(sym symbols.SymbolID, d UnionData) UnionID {
	id := UnionID(t.Unions.Allocate(d))
	t.BySymbol[sym] = ItemRef{Kind: ItemRefUnion, Union: id}
	return id
}

func (t *Tables) addStruct(sym symbols.SymbolID, d StructData) StructID {
	id := StructID(t.Structs.Allocate(d))
	t.BySymbol[sym] = ItemRef{Kind: ItemRefStruct, Struct: id}
	return id
}

func (t *Tables) addConst(sym symbols.SymbolID, d ConstData) ConstID {
	id := ConstID(t.Consts.Allocate(d))
	t.BySymbol[sym] = ItemRef{Kind: ItemRefConst, Const: id}
	return id
}

func (t *Tables) addGlobal(sym symbols.SymbolID, d GlobalData) GlobalID {
	id := GlobalID(t.Globals.Allocate(d))
	t.BySymbol[sym] = ItemRef{Kind: ItemRefGlobal, Global: id}
	return id
}

// allocConstExprPending allocates a delayed-mode slot for expr.
func (t *Tables) allocConstExprPending(scope symbols.ScopeID, expr ast.ExprID) ConstExprID {
	return ConstExprID(t.ConstExprs.Allocate(ConstExprData{Expr: expr, Scope: scope, State: ConstExprPending}))
}

// allocConstExprResolved allocates an already-evaluated slot (instant mode).
func (t *Tables) allocConstExprResolved(scope symbols.ScopeID, expr ast.ExprID, value int64) ConstExprID {
	return ConstExprID(t.ConstExprs.Allocate(ConstExprData{Expr: expr, Scope: scope, State: ConstExprResolved, Value: value}))
}

// ConstExpr returns the slot for id, or nil if id is NoConstExprID or
// ConstExprNone (neither refers to an allocated slot).
func (t *Tables) ConstExpr(id ConstExprID) *ConstExprData {
	if id == NoConstExprID || id == ConstExprNone {
		return nil
	}
	return t.ConstExprs.Get(uint32(id))
}
