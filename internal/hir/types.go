package hir

// BasicKind enumerates the primitive types, grounded on the original
// front end's basic-type set.
type BasicKind uint8

const (
	BasicBool BasicKind = iota
	BasicS8
	BasicS16
	BasicS32
	BasicS64
	BasicSsize
	BasicU8
	BasicU16
	BasicU32
	BasicU64
	BasicUsize
	BasicF32
	BasicF64
	BasicChar
	BasicRawptr
)

func (b BasicKind) String() string {
	switch b {
	case BasicBool:
		return "bool"
	case BasicS8:
		return "s8"
	case BasicS16:
		return "s16"
	case BasicS32:
		return "s32"
	case BasicS64:
		return "s64"
	case BasicSsize:
		return "ssize"
	case BasicU8:
		return "u8"
	case BasicU16:
		return "u16"
	case BasicU32:
		return "u32"
	case BasicU64:
		return "u64"
	case BasicUsize:
		return "usize"
	case BasicF32:
		return "f32"
	case BasicF64:
		return "f64"
	case BasicChar:
		return "char"
	case BasicRawptr:
		return "rawptr"
	default:
		return "?basic"
	}
}

func (b BasicKind) IsInteger() bool {
	switch b {
	case BasicS8, BasicS16, BasicS32, BasicS64, BasicSsize,
		BasicU8, BasicU16, BasicU32, BasicU64, BasicUsize:
		return true
	default:
		return false
	}
}

func (b BasicKind) IsFloat() bool { return b == BasicF32 || b == BasicF64 }

// NamedKind tags which item kind a TyNamed type points to.
type NamedKind uint8

const (
	NamedEnum NamedKind = iota
	NamedUnion
	NamedStruct
)

// TypeTag discriminates Type's variants — spec.md §4.C/§4.H's "Type is a
// value sum type living inside hir" rather than an interned handle, since
// there is no generics system here to justify a separate interner.
type TypeTag uint8

const (
	// TyError unifies with anything, suppressing cascade diagnostics.
	TyError TypeTag = iota
	// TyUnit is the type of a value-less block or procedure.
	TyUnit
	TyBasic
	// TyNamed is a declared enum, union, or struct.
	TyNamed
	// TyReference is `&T` or `&mut T`.
	TyReference
	// TySlice is `[]T` or `[]mut T`.
	TySlice
	// TyArray is `[N]T`.
	TyArray
)

// Type is a single HIR type value. Composite variants hold a pointer to
// their own nested Type rather than an arena index — Types form a DAG
// bottom-up during lowering, so ordinary Go pointers are sufficient and
// avoid a second ID namespace purely for types.
type Type struct {
	Tag   TypeTag
	Basic BasicKind

	NamedKind NamedKind
	EnumID    EnumID
	UnionID   UnionID
	StructID  StructID

	Mut   bool // for TyReference/TySlice
	Inner *Type

	ArrayLen ConstExprID
}

// Error is the shared error-placeholder type instance.
var Error = &Type{Tag: TyError}

// Unit is the shared unit-type instance.
var Unit = &Type{Tag: TyUnit}

// Basic returns a basic-type value for kind.
func Basic(kind BasicKind) *Type { return &Type{Tag: TyBasic, Basic: kind} }

// Reference constructs a `&T` / `&mut T` type.
func Reference(mut bool, inner *Type) *Type {
	return &Type{Tag: TyReference, Mut: mut, Inner: inner}
}

// Slice constructs a `[]T` / `[]mut T` type.
func Slice(mut bool, elem *Type) *Type {
	return &Type{Tag: TySlice, Mut: mut, Inner: elem}
}

// Array constructs a `[N]T` type; length is an unevaluated const-expr slot.
func Array(elem *Type, length ConstExprID) *Type {
	return &Type{Tag: TyArray, Inner: elem, ArrayLen: length}
}

// NamedEnumType constructs a reference to a declared enum.
func NamedEnumType(id EnumID) *Type { return &Type{Tag: TyNamed, NamedKind: NamedEnum, EnumID: id} }

// NamedUnionType constructs a reference to a declared union.
func NamedUnionType(id UnionID) *Type {
	return &Type{Tag: TyNamed, NamedKind: NamedUnion, UnionID: id}
}

// NamedStructType constructs a reference to a declared struct.
func NamedStructType(id StructID) *Type {
	return &Type{Tag: TyNamed, NamedKind: NamedStruct, StructID: id}
}

// Equal implements spec.md §4.I's structural type equivalence: basics
// equal by tag, named types equal by ID, references equal if inner types
// equal and mutabilities match, slices likewise, and static arrays are
// compared only by element type — length const-expr unification is
// unimplemented, an explicit open question.
func Equal(a, b *Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Tag == TyError || b.Tag == TyError {
		return true
	}
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case TyUnit:
		return true
	case TyBasic:
		return a.Basic == b.Basic
	case TyNamed:
		if a.NamedKind != b.NamedKind {
			return false
		}
		switch a.NamedKind {
		case NamedEnum:
			return a.EnumID == b.EnumID
		case NamedUnion:
			return a.UnionID == b.UnionID
		default:
			return a.StructID == b.StructID
		}
	case TyReference:
		return a.Mut == b.Mut && Equal(a.Inner, b.Inner)
	case TySlice:
		return a.Mut == b.Mut && Equal(a.Inner, b.Inner)
	case TyArray:
		return Equal(a.Inner, b.Inner)
	default:
		return false
	}
}

// String renders a Type for diagnostics.
func (t *Type) String() string {
	if t == nil {
		return "?"
	}
	switch t.Tag {
	case TyError:
		return "error"
	case TyUnit:
		return "unit"
	case TyBasic:
		return t.Basic.String()
	case TyNamed:
		return "named"
	case TyReference:
		if t.Mut {
			return "&mut " + t.Inner.String()
		}
		return "&" + t.Inner.String()
	case TySlice:
		if t.Mut {
			return "[]mut " + t.Inner.String()
		}
		return "[]" + t.Inner.String()
	case TyArray:
		return "[N]" + t.Inner.String()
	default:
		return "?"
	}
}
