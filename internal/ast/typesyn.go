package ast

import "langfront/internal/source"

// TypeKind tags a type-syntax node.
type TypeKind uint8

const (
	// TypeError marks a type that failed to parse; it unifies with
	// anything during checking to suppress cascades.
	TypeError TypeKind = iota
	// TypeNamed is a path to a primitive name or a declared
	// enum/union/struct (e.g. `s32`, `foo::Bar`).
	TypeNamed
	// TypeReference is `&T` or `&mut T`.
	TypeReference
	// TypeSlice is `[]T` or `[]mut T`.
	TypeSlice
	// TypeArray is `[N]T`, where N is an unevaluated const-expr.
	TypeArray
)

// Type is a single type-syntax node.
type Type struct {
	Kind    TypeKind
	Span    source.Span
	Payload PayloadID
}

// ReferenceType is the payload of a TypeReference node.
type ReferenceType struct {
	Mut   bool
	Inner TypeID
}

// SliceType is the payload of a TypeSlice node.
type SliceType struct {
	Mut  bool
	Elem TypeID
}

// ArrayType is the payload of a TypeArray node. Len is the AST expression
// for the length; HIR lowering allocates a ConstExprID slot for it.
type ArrayType struct {
	Elem TypeID
	Len  ExprID
}

// Types manages allocation of type-syntax nodes.
type Types struct {
	Arena      *Arena[Type]
	Named      *Arena[Path]
	References *Arena[ReferenceType]
	Slices     *Arena[SliceType]
	Arrays     *Arena[ArrayType]
}

// NewTypes creates a Types container with capHint-sized arenas.
func NewTypes(capHint uint) *Types {
	return &Types{
		Arena:      NewArena[Type](capHint),
		Named:      NewArena[Path](capHint),
		References: NewArena[ReferenceType](capHint / 4),
		Slices:     NewArena[SliceType](capHint / 4),
		Arrays:     NewArena[ArrayType](capHint / 8),
	}
}

// Get returns the type node for id.
func (t *Types) Get(id TypeID) *Type { return t.Arena.Get(uint32(id)) }

// NewError allocates a TypeError placeholder.
func (t *Types) NewError(span source.Span) TypeID {
	return TypeID(t.Arena.Allocate(Type{Kind: TypeError, Span: span}))
}

// NewNamed allocates a named-type node for path.
func (t *Types) NewNamed(path Path, span source.Span) TypeID {
	payload := PayloadID(t.Named.Allocate(path))
	return TypeID(t.Arena.Allocate(Type{Kind: TypeNamed, Span: span, Payload: payload}))
}

// Path returns the path payload of a TypeNamed node.
func (t *Types) Path(typ *Type) *Path {
	if typ == nil || typ.Kind != TypeNamed {
		return nil
	}
	return t.Named.Get(uint32(typ.Payload))
}

// NewReference allocates a reference-type node.
func (t *Types) NewReference(mut bool, inner TypeID, span source.Span) TypeID {
	payload := PayloadID(t.References.Allocate(ReferenceType{Mut: mut, Inner: inner}))
	return TypeID(t.Arena.Allocate(Type{Kind: TypeReference, Span: span, Payload: payload}))
}

// Reference returns the payload of a TypeReference node.
func (t *Types) Reference(typ *Type) *ReferenceType {
	if typ == nil || typ.Kind != TypeReference {
		return nil
	}
	return t.References.Get(uint32(typ.Payload))
}

// NewSlice allocates a slice-type node.
func (t *Types) NewSlice(mut bool, elem TypeID, span source.Span) TypeID {
	payload := PayloadID(t.Slices.Allocate(SliceType{Mut: mut, Elem: elem}))
	return TypeID(t.Arena.Allocate(Type{Kind: TypeSlice, Span: span, Payload: payload}))
}

// Slice returns the payload of a TypeSlice node.
func (t *Types) Slice(typ *Type) *SliceType {
	if typ == nil || typ.Kind != TypeSlice {
		return nil
	}
	return t.Slices.Get(uint32(typ.Payload))
}

// NewArray allocates an array-type node.
func (t *Types) NewArray(elem TypeID, length ExprID, span source.Span) TypeID {
	payload := PayloadID(t.Arrays.Allocate(ArrayType{Elem: elem, Len: length}))
	return TypeID(t.Arena.Allocate(Type{Kind: TypeArray, Span: span, Payload: payload}))
}

// Array returns the payload of a TypeArray node.
func (t *Types) Array(typ *Type) *ArrayType {
	if typ == nil || typ.Kind != TypeArray {
		return nil
	}
	return t.Arrays.Get(uint32(typ.Payload))
}
