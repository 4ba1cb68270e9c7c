package ast

import (
	"testing"

	"langfront/internal/source"
)

func TestExprsLiteralRoundTrip(t *testing.T) {
	e := NewExprs(8)

	intID := e.NewIntLit(42, spanAt(0, 2))
	if got := e.Int(e.Get(intID)); got != 42 {
		t.Fatalf("Int() = %d, want 42", got)
	}

	floatID := e.NewFloatLit(3.5, spanAt(0, 3))
	if got := e.Float(e.Get(floatID)); got != 3.5 {
		t.Fatalf("Float() = %v, want 3.5", got)
	}

	charID := e.NewCharLit('x', spanAt(0, 3))
	if got := e.Char(e.Get(charID)); got != 'x' {
		t.Fatalf("Char() = %q, want 'x'", got)
	}

	strID := e.NewStringLit(source.StringID(3), true, spanAt(0, 5))
	if got := e.String(e.Get(strID)); got.Value != 3 || !got.CString {
		t.Fatalf("String() = %+v, want {3 true}", got)
	}

	boolID := e.NewBoolLit(true, spanAt(0, 4))
	if got := e.Bool(e.Get(boolID)); !got {
		t.Fatalf("Bool() = false, want true")
	}

	nullID := e.NewNullLit(spanAt(0, 4))
	if e.Get(nullID).Kind != ExprNullLit {
		t.Fatalf("expected ExprNullLit")
	}
}

func TestExprsPathRoundTrip(t *testing.T) {
	e := NewExprs(8)
	path := makePath(source.StringID(1), source.StringID(2))
	id := e.NewPath(path, spanAt(0, 5))
	got := e.Path(e.Get(id))
	if got == nil || len(got.Segments) != 2 {
		t.Fatalf("Path() round-trip failed: %+v", got)
	}
	if e.Path(&Expr{Kind: ExprIntLit}) != nil {
		t.Fatalf("Path() on non-path node should be nil")
	}
}

func TestExprsBinaryAndUnary(t *testing.T) {
	e := NewExprs(8)
	lhs := e.NewIntLit(1, spanAt(0, 1))
	rhs := e.NewIntLit(2, spanAt(2, 3))

	bin := e.NewBinary(BinAdd, lhs, rhs, spanAt(0, 3))
	got := e.Binary(e.Get(bin))
	if got.Op != BinAdd || got.Lhs != lhs || got.Rhs != rhs {
		t.Fatalf("Binary() payload wrong: %+v", got)
	}

	neg := e.NewUnary(UnNeg, lhs, spanAt(0, 2))
	if u := e.Unary(e.Get(neg)); u.Op != UnNeg || u.Operand != lhs {
		t.Fatalf("Unary() payload wrong: %+v", u)
	}
}

func TestExprsCallFieldIndexCast(t *testing.T) {
	e := NewExprs(8)
	callee := e.NewPath(makePath(source.StringID(1)), spanAt(0, 1))
	arg := e.NewIntLit(9, spanAt(2, 3))

	call := e.NewCall(callee, []ExprID{arg}, spanAt(0, 4))
	gotCall := e.Call(e.Get(call))
	if gotCall.Callee != callee || len(gotCall.Args) != 1 || gotCall.Args[0] != arg {
		t.Fatalf("Call() payload wrong: %+v", gotCall)
	}

	field := e.NewField(callee, source.StringID(4), spanAt(1, 2), spanAt(0, 2))
	if f := e.Field(e.Get(field)); f.Operand != callee || f.Name != 4 {
		t.Fatalf("Field() payload wrong: %+v", f)
	}

	idx := e.NewIndex(callee, arg, spanAt(0, 3))
	if ix := e.Index(e.Get(idx)); ix.Operand != callee || ix.Index != arg {
		t.Fatalf("Index() payload wrong: %+v", ix)
	}

	types := NewTypes(2)
	target := types.NewNamed(makePath(source.StringID(5)), spanAt(0, 1))
	cast := e.NewCast(callee, target, spanAt(0, 5))
	if c := e.Cast(e.Get(cast)); c.Operand != callee || c.Target != target {
		t.Fatalf("Cast() payload wrong: %+v", c)
	}
}

func TestExprsSliceAllSixForms(t *testing.T) {
	e := NewExprs(8)
	operand := e.NewPath(makePath(source.StringID(1)), spanAt(0, 1))
	lo := e.NewIntLit(0, spanAt(2, 3))
	hi := e.NewIntLit(5, spanAt(4, 5))

	cases := []SliceExpr{
		{Operand: operand, Low: NoExprID, High: NoExprID, Upper: BoundAbsent},
		{Operand: operand, Low: NoExprID, High: hi, Upper: BoundExclusive},
		{Operand: operand, Low: NoExprID, High: hi, Upper: BoundInclusive},
		{Operand: operand, Low: lo, High: NoExprID, Upper: BoundAbsent},
		{Operand: operand, Low: lo, High: hi, Upper: BoundExclusive},
		{Operand: operand, Low: lo, High: hi, Upper: BoundInclusive},
	}
	for i, c := range cases {
		id := e.NewSlice(c, spanAt(0, 6))
		got := e.Slice(e.Get(id))
		if got.Low != c.Low || got.High != c.High || got.Upper != c.Upper {
			t.Fatalf("case %d: slice payload mismatch: %+v", i, got)
		}
	}
}

func TestExprsStructLitWithShorthand(t *testing.T) {
	e := NewExprs(8)
	path := makePath(source.StringID(1))
	value := e.NewIntLit(1, spanAt(0, 1))
	fields := []StructLitField{
		{Name: source.StringID(2), Value: value},
		{Name: source.StringID(3), Value: NoExprID, Shorthand: true},
	}
	id := e.NewStructLit(path, fields, spanAt(0, 10))
	got := e.StructLit(e.Get(id))
	roundTripped := e.StructLitFieldsOf(got)
	if len(roundTripped) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(roundTripped))
	}
	if roundTripped[0].Value != value {
		t.Fatalf("field 0 value mismatch")
	}
	if !roundTripped[1].Shorthand {
		t.Fatalf("field 1 should be shorthand")
	}
}

func TestExprsArrayListAndRepeat(t *testing.T) {
	e := NewExprs(8)
	a := e.NewIntLit(1, spanAt(0, 1))
	b := e.NewIntLit(2, spanAt(2, 3))

	list := e.NewArrayList([]ExprID{a, b}, spanAt(0, 4))
	if l := e.ArrayList(e.Get(list)); len(l.Elems) != 2 {
		t.Fatalf("ArrayList() payload wrong: %+v", l)
	}

	count := e.NewIntLit(3, spanAt(5, 6))
	repeat := e.NewArrayRepeat(a, count, spanAt(0, 6))
	if r := e.ArrayRepeat(e.Get(repeat)); r.Value != a || r.Count != count {
		t.Fatalf("ArrayRepeat() payload wrong: %+v", r)
	}
}

func TestExprsIfMatchBlockAssign(t *testing.T) {
	e := NewExprs(8)
	cond := e.NewBoolLit(true, spanAt(0, 4))
	thenBlk := e.NewBlock(nil, NoExprID, spanAt(0, 2))
	elseBlk := e.NewBlock(nil, NoExprID, spanAt(0, 2))

	ifID := e.NewIf(cond, thenBlk, elseBlk, spanAt(0, 10))
	if i := e.If(e.Get(ifID)); i.Cond != cond || i.Then != thenBlk || i.Else != elseBlk {
		t.Fatalf("If() payload wrong: %+v", i)
	}

	scrut := e.NewIntLit(1, spanAt(0, 1))
	arm1 := MatchArm{Pattern: e.NewIntLit(1, spanAt(2, 3)), Body: e.NewIntLit(10, spanAt(4, 5))}
	wildcard := MatchArm{Wildcard: true, Pattern: NoExprID, Body: e.NewIntLit(0, spanAt(6, 7))}
	matchID := e.NewMatch(scrut, []MatchArm{arm1, wildcard}, spanAt(0, 10))
	gotMatch := e.Match(e.Get(matchID))
	arms := e.ArmsOf(gotMatch)
	if len(arms) != 2 || !arms[1].Wildcard {
		t.Fatalf("Match() arms wrong: %+v", arms)
	}

	tail := e.NewIntLit(7, spanAt(0, 1))
	blockID := e.NewBlock(nil, tail, spanAt(0, 3))
	if b := e.Block(e.Get(blockID)); b.Tail != tail {
		t.Fatalf("Block() tail wrong: %+v", b)
	}

	target := e.NewPath(makePath(source.StringID(1)), spanAt(0, 1))
	assignID := e.NewAssign(AssignAdd, target, scrut, spanAt(0, 5))
	if a := e.Assign(e.Get(assignID)); a.Op != AssignAdd || a.Target != target || a.Value != scrut {
		t.Fatalf("Assign() payload wrong: %+v", a)
	}
}
