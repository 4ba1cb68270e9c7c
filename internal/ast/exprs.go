package ast

import "langfront/internal/source"

// UnaryExpr is the payload of an ExprUnary node.
type UnaryExpr struct {
	Op      UnaryOp
	Operand ExprID
}

// BinaryExpr is the payload of an ExprBinary node.
type BinaryExpr struct {
	Op  BinaryOp
	Lhs ExprID
	Rhs ExprID
}

// RefExpr is the payload of an ExprRef node (`&x`, `&mut x`).
type RefExpr struct {
	Mut     bool
	Operand ExprID
}

// CallExpr is the payload of an ExprCall node.
type CallExpr struct {
	Callee ExprID
	Args   []ExprID
}

// FieldExpr is the payload of an ExprField node.
type FieldExpr struct {
	Operand  ExprID
	Name     source.StringID
	NameSpan source.Span
}

// IndexExpr is the payload of an ExprIndex node.
type IndexExpr struct {
	Operand ExprID
	Index   ExprID
}

// SliceBound tags how a slice's bound was written.
type SliceBound uint8

const (
	BoundAbsent SliceBound = iota
	BoundExclusive
	BoundInclusive
)

// SliceExpr is the payload of an ExprSlice node, covering all six forms
// spec.md §4.E lists: `[..]`, `[..<e]`, `[..=e]`, `[e..]`, `[e..<f]`,
// `[e..=f]`.
type SliceExpr struct {
	Operand ExprID
	Mut     bool
	Low     ExprID // NoExprID if absent
	High    ExprID // NoExprID if absent
	Upper   SliceBound
}

// CastExpr is the payload of an ExprCast node.
type CastExpr struct {
	Operand ExprID
	Target  TypeID
}

// StructLitField is one `name: expr` (or shorthand `name`) entry of a
// struct literal.
type StructLitField struct {
	Name     source.StringID
	NameSpan source.Span
	Value    ExprID // for shorthand, Value is an ExprPath referring to Name
	Shorthand bool
}

// StructLitExpr is the payload of an ExprStructLit node
// (`Ident.{field: expr, short}`).
type StructLitExpr struct {
	Path        Path
	FieldsStart uint32
	FieldsCount uint32
}

// ArrayListExpr is the payload of an ExprArrayList node (`[e, e, ...]`).
type ArrayListExpr struct {
	Elems []ExprID
}

// ArrayRepeatExpr is the payload of an ExprArrayRepeat node (`[e; n]`).
type ArrayRepeatExpr struct {
	Value ExprID
	Count ExprID
}

// IfExpr is the payload of an ExprIf node. Else is NoExprID when absent,
// otherwise either another ExprIf (an `else if`) or an ExprBlock.
type IfExpr struct {
	Cond ExprID
	Then ExprID // always an ExprBlock
	Else ExprID
}

// MatchArm is one arm of a match expression. A wildcard arm's Pattern is
// NoExprID and must be the last arm.
type MatchArm struct {
	Wildcard bool
	Pattern  ExprID
	Body     ExprID
	Span     source.Span
}

// MatchExpr is the payload of an ExprMatch node.
type MatchExpr struct {
	Scrutinee   ExprID
	ArmsStart   uint32
	ArmsCount   uint32
}

// BlockExpr is the payload of an ExprBlock node. Tail is NoExprID when the
// block has no trailing tail expression, in which case its type is unit.
type BlockExpr struct {
	Stmts []StmtID
	Tail  ExprID
}

// AssignExpr is the payload of an ExprAssign node.
type AssignExpr struct {
	Op     AssignOp
	Target ExprID
	Value  ExprID
}

func (e *Exprs) NewUnary(op UnaryOp, operand ExprID, span source.Span) ExprID {
	return e.alloc(ExprUnary, span, PayloadID(e.Unaries.Allocate(UnaryExpr{Op: op, Operand: operand})))
}

func (e *Exprs) Unary(expr *Expr) *UnaryExpr { return e.Unaries.Get(uint32(expr.Payload)) }

func (e *Exprs) NewBinary(op BinaryOp, lhs, rhs ExprID, span source.Span) ExprID {
	return e.alloc(ExprBinary, span, PayloadID(e.Binaries.Allocate(BinaryExpr{Op: op, Lhs: lhs, Rhs: rhs})))
}

func (e *Exprs) Binary(expr *Expr) *BinaryExpr { return e.Binaries.Get(uint32(expr.Payload)) }

func (e *Exprs) NewRef(mut bool, operand ExprID, span source.Span) ExprID {
	return e.alloc(ExprRef, span, PayloadID(e.Refs.Allocate(RefExpr{Mut: mut, Operand: operand})))
}

func (e *Exprs) Ref(expr *Expr) *RefExpr { return e.Refs.Get(uint32(expr.Payload)) }

func (e *Exprs) NewCall(callee ExprID, args []ExprID, span source.Span) ExprID {
	return e.alloc(ExprCall, span, PayloadID(e.Calls.Allocate(CallExpr{Callee: callee, Args: args})))
}

func (e *Exprs) Call(expr *Expr) *CallExpr { return e.Calls.Get(uint32(expr.Payload)) }

func (e *Exprs) NewField(operand ExprID, name source.StringID, nameSpan, span source.Span) ExprID {
	payload := e.Fields.Allocate(FieldExpr{Operand: operand, Name: name, NameSpan: nameSpan})
	return e.alloc(ExprField, span, PayloadID(payload))
}

func (e *Exprs) Field(expr *Expr) *FieldExpr { return e.Fields.Get(uint32(expr.Payload)) }

func (e *Exprs) NewIndex(operand, index ExprID, span source.Span) ExprID {
	payload := e.Indexes.Allocate(IndexExpr{Operand: operand, Index: index})
	return e.alloc(ExprIndex, span, PayloadID(payload))
}

func (e *Exprs) Index(expr *Expr) *IndexExpr { return e.Indexes.Get(uint32(expr.Payload)) }

func (e *Exprs) NewSlice(s SliceExpr, span source.Span) ExprID {
	return e.alloc(ExprSlice, span, PayloadID(e.Slices.Allocate(s)))
}

func (e *Exprs) Slice(expr *Expr) *SliceExpr { return e.Slices.Get(uint32(expr.Payload)) }

func (e *Exprs) NewCast(operand ExprID, target TypeID, span source.Span) ExprID {
	payload := e.Casts.Allocate(CastExpr{Operand: operand, Target: target})
	return e.alloc(ExprCast, span, PayloadID(payload))
}

func (e *Exprs) Cast(expr *Expr) *CastExpr { return e.Casts.Get(uint32(expr.Payload)) }

// NewStructLit allocates an ExprStructLit node, copying fields into the
// shared struct-literal-field arena.
func (e *Exprs) NewStructLit(path Path, fields []StructLitField, span source.Span) ExprID {
	var start uint32
	for i, f := range fields {
		id := e.StructLitFields.Allocate(f)
		if i == 0 {
			start = id
		}
	}
	payload := e.Structs.Allocate(StructLitExpr{Path: path, FieldsStart: start, FieldsCount: uint32(len(fields))})
	return e.alloc(ExprStructLit, span, PayloadID(payload))
}

func (e *Exprs) StructLit(expr *Expr) *StructLitExpr { return e.Structs.Get(uint32(expr.Payload)) }

// StructLitFieldsOf returns the field list of a struct literal payload.
func (e *Exprs) StructLitFieldsOf(s *StructLitExpr) []StructLitField {
	out := make([]StructLitField, 0, s.FieldsCount)
	for i := uint32(0); i < s.FieldsCount; i++ {
		out = append(out, *e.StructLitFields.Get(s.FieldsStart+i))
	}
	return out
}

func (e *Exprs) NewArrayList(elems []ExprID, span source.Span) ExprID {
	return e.alloc(ExprArrayList, span, PayloadID(e.Arrays.Allocate(ArrayListExpr{Elems: elems})))
}

func (e *Exprs) ArrayList(expr *Expr) *ArrayListExpr { return e.Arrays.Get(uint32(expr.Payload)) }

func (e *Exprs) NewArrayRepeat(value, count ExprID, span source.Span) ExprID {
	payload := e.Repeats.Allocate(ArrayRepeatExpr{Value: value, Count: count})
	return e.alloc(ExprArrayRepeat, span, PayloadID(payload))
}

func (e *Exprs) ArrayRepeat(expr *Expr) *ArrayRepeatExpr { return e.Repeats.Get(uint32(expr.Payload)) }

func (e *Exprs) NewIf(cond, then, els ExprID, span source.Span) ExprID {
	payload := e.Ifs.Allocate(IfExpr{Cond: cond, Then: then, Else: els})
	return e.alloc(ExprIf, span, PayloadID(payload))
}

func (e *Exprs) If(expr *Expr) *IfExpr { return e.Ifs.Get(uint32(expr.Payload)) }

// NewMatch allocates an ExprMatch node, copying arms into the shared arm
// arena.
func (e *Exprs) NewMatch(scrutinee ExprID, arms []MatchArm, span source.Span) ExprID {
	var start uint32
	for i, arm := range arms {
		id := e.Arms.Allocate(arm)
		if i == 0 {
			start = id
		}
	}
	payload := e.Matches.Allocate(MatchExpr{Scrutinee: scrutinee, ArmsStart: start, ArmsCount: uint32(len(arms))})
	return e.alloc(ExprMatch, span, PayloadID(payload))
}

func (e *Exprs) Match(expr *Expr) *MatchExpr { return e.Matches.Get(uint32(expr.Payload)) }

// ArmsOf returns the arm list of a match payload.
func (e *Exprs) ArmsOf(m *MatchExpr) []MatchArm {
	out := make([]MatchArm, 0, m.ArmsCount)
	for i := uint32(0); i < m.ArmsCount; i++ {
		out = append(out, *e.Arms.Get(m.ArmsStart+i))
	}
	return out
}

func (e *Exprs) NewBlock(stmts []StmtID, tail ExprID, span source.Span) ExprID {
	return e.alloc(ExprBlock, span, PayloadID(e.Blocks.Allocate(BlockExpr{Stmts: stmts, Tail: tail})))
}

func (e *Exprs) Block(expr *Expr) *BlockExpr { return e.Blocks.Get(uint32(expr.Payload)) }

func (e *Exprs) NewAssign(op AssignOp, target, value ExprID, span source.Span) ExprID {
	payload := e.Assigns.Allocate(AssignExpr{Op: op, Target: target, Value: value})
	return e.alloc(ExprAssign, span, PayloadID(payload))
}

func (e *Exprs) Assign(expr *Expr) *AssignExpr { return e.Assigns.Get(uint32(expr.Payload)) }
