package ast

import "langfront/internal/source"

// ExprKind tags an expression node.
type ExprKind uint8

const (
	// ExprError marks an expression that failed to parse or check; it
	// unifies with any expected type to suppress cascades.
	ExprError ExprKind = iota

	ExprIntLit
	ExprUintLit
	ExprFloatLit
	ExprCharLit
	ExprStringLit
	ExprBoolLit
	ExprNullLit
	ExprNothingLit

	ExprPath
	ExprUnary
	ExprBinary
	ExprRef
	ExprCall
	ExprField
	ExprIndex
	ExprSlice
	ExprCast
	ExprStructLit
	ExprArrayList
	ExprArrayRepeat
	ExprIf
	ExprMatch
	ExprBlock
	ExprAssign
)

// UnaryOp is a prefix unary operator.
type UnaryOp uint8

const (
	UnNeg UnaryOp = iota // -x
	UnNot                // !x
)

// BinaryOp is an infix binary operator. Range operators (`..`, `..=`,
// `..<`) are not represented here: they only occur inside slice-index
// brackets, handled directly by ExprSlice.
type BinaryOp uint8

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinBitAnd
	BinBitOr
	BinBitXor
	BinShl
	BinShr
	BinAndAnd
	BinOrOr
	BinEq
	BinNe
	BinLt
	BinLe
	BinGt
	BinGe
)

// AssignOp is the operator of an assignment statement-expression.
// AssignPlain is bare `=`; the rest are compound assignments.
type AssignOp uint8

const (
	AssignPlain AssignOp = iota
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignMod
	AssignBitAnd
	AssignBitOr
	AssignBitXor
	AssignShl
	AssignShr
)

// Expr is a single expression node.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// Exprs manages allocation of expression nodes and their payloads.
type Exprs struct {
	Arena *Arena[Expr]

	Ints    *Arena[uint64]
	Floats  *Arena[float64]
	Chars   *Arena[rune]
	Strings *Arena[StringLit]
	Bools   *Arena[bool]
	Paths   *Arena[Path]

	Unaries   *Arena[UnaryExpr]
	Binaries  *Arena[BinaryExpr]
	Refs      *Arena[RefExpr]
	Calls     *Arena[CallExpr]
	Fields    *Arena[FieldExpr]
	Indexes   *Arena[IndexExpr]
	Slices    *Arena[SliceExpr]
	Casts     *Arena[CastExpr]
	Structs   *Arena[StructLitExpr]
	Arrays    *Arena[ArrayListExpr]
	Repeats   *Arena[ArrayRepeatExpr]
	Ifs       *Arena[IfExpr]
	Matches   *Arena[MatchExpr]
	Blocks    *Arena[BlockExpr]
	Assigns   *Arena[AssignExpr]

	StructLitFields *Arena[StructLitField]
	Arms            *Arena[MatchArm]
}

// StringLit is the payload of an ExprStringLit node.
type StringLit struct {
	Value   source.StringID
	CString bool
}

// NewExprs creates an Exprs container with capHint-sized arenas.
func NewExprs(capHint uint) *Exprs {
	return &Exprs{
		Arena:   NewArena[Expr](capHint),
		Ints:    NewArena[uint64](capHint / 4),
		Floats:  NewArena[float64](capHint / 8),
		Chars:   NewArena[rune](capHint / 8),
		Strings: NewArena[StringLit](capHint / 8),
		Bools:   NewArena[bool](capHint / 8),
		Paths:   NewArena[Path](capHint / 2),

		Unaries:  NewArena[UnaryExpr](capHint / 4),
		Binaries: NewArena[BinaryExpr](capHint / 2),
		Refs:     NewArena[RefExpr](capHint / 8),
		Calls:    NewArena[CallExpr](capHint / 4),
		Fields:   NewArena[FieldExpr](capHint / 4),
		Indexes:  NewArena[IndexExpr](capHint / 8),
		Slices:   NewArena[SliceExpr](capHint / 8),
		Casts:    NewArena[CastExpr](capHint / 8),
		Structs:  NewArena[StructLitExpr](capHint / 8),
		Arrays:   NewArena[ArrayListExpr](capHint / 8),
		Repeats:  NewArena[ArrayRepeatExpr](capHint / 16),
		Ifs:      NewArena[IfExpr](capHint / 8),
		Matches:  NewArena[MatchExpr](capHint / 16),
		Blocks:   NewArena[BlockExpr](capHint / 4),
		Assigns:  NewArena[AssignExpr](capHint / 8),

		StructLitFields: NewArena[StructLitField](capHint / 4),
		Arms:            NewArena[MatchArm](capHint / 8),
	}
}

// Get returns the expression node for id.
func (e *Exprs) Get(id ExprID) *Expr { return e.Arena.Get(uint32(id)) }

func (e *Exprs) alloc(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: kind, Span: span, Payload: payload}))
}

// NewError allocates an ExprError placeholder.
func (e *Exprs) NewError(span source.Span) ExprID { return e.alloc(ExprError, span, NoPayloadID) }

// NewIntLit allocates an ExprIntLit node.
func (e *Exprs) NewIntLit(value uint64, span source.Span) ExprID {
	return e.alloc(ExprIntLit, span, PayloadID(e.Ints.Allocate(value)))
}

// NewFloatLit allocates an ExprFloatLit node.
func (e *Exprs) NewFloatLit(value float64, span source.Span) ExprID {
	return e.alloc(ExprFloatLit, span, PayloadID(e.Floats.Allocate(value)))
}

// NewCharLit allocates an ExprCharLit node.
func (e *Exprs) NewCharLit(value rune, span source.Span) ExprID {
	return e.alloc(ExprCharLit, span, PayloadID(e.Chars.Allocate(value)))
}

// NewStringLit allocates an ExprStringLit node.
func (e *Exprs) NewStringLit(value source.StringID, cstr bool, span source.Span) ExprID {
	payload := e.Strings.Allocate(StringLit{Value: value, CString: cstr})
	return e.alloc(ExprStringLit, span, PayloadID(payload))
}

// NewBoolLit allocates an ExprBoolLit node.
func (e *Exprs) NewBoolLit(value bool, span source.Span) ExprID {
	return e.alloc(ExprBoolLit, span, PayloadID(e.Bools.Allocate(value)))
}

// NewNullLit allocates an ExprNullLit node.
func (e *Exprs) NewNullLit(span source.Span) ExprID { return e.alloc(ExprNullLit, span, NoPayloadID) }

// NewNothingLit allocates an ExprNothingLit node.
func (e *Exprs) NewNothingLit(span source.Span) ExprID {
	return e.alloc(ExprNothingLit, span, NoPayloadID)
}

// NewPath allocates an ExprPath node.
func (e *Exprs) NewPath(path Path, span source.Span) ExprID {
	return e.alloc(ExprPath, span, PayloadID(e.Paths.Allocate(path)))
}

// Path returns the path payload of an ExprPath node.
func (e *Exprs) Path(expr *Expr) *Path {
	if expr == nil || expr.Kind != ExprPath {
		return nil
	}
	return e.Paths.Get(uint32(expr.Payload))
}

// Int returns the decoded payload of an ExprIntLit node.
func (e *Exprs) Int(expr *Expr) uint64 { return *e.Ints.Get(uint32(expr.Payload)) }

// Float returns the decoded payload of an ExprFloatLit node.
func (e *Exprs) Float(expr *Expr) float64 { return *e.Floats.Get(uint32(expr.Payload)) }

// Char returns the decoded payload of an ExprCharLit node.
func (e *Exprs) Char(expr *Expr) rune { return *e.Chars.Get(uint32(expr.Payload)) }

// String returns the decoded payload of an ExprStringLit node.
func (e *Exprs) String(expr *Expr) StringLit { return *e.Strings.Get(uint32(expr.Payload)) }

// Bool returns the decoded payload of an ExprBoolLit node.
func (e *Exprs) Bool(expr *Expr) bool { return *e.Bools.Get(uint32(expr.Payload)) }
