package ast

import (
	"testing"

	"langfront/internal/source"
)

func TestTypesNamedRoundTrip(t *testing.T) {
	types := NewTypes(8)
	path := makePath(source.StringID(7))
	id := types.NewNamed(path, spanAt(0, 3))
	got := types.Get(id)
	if got.Kind != TypeNamed {
		t.Fatalf("expected TypeNamed, got %v", got.Kind)
	}
	if p := types.Path(got); p == nil || len(p.Segments) != 1 {
		t.Fatalf("Path payload not round-tripped: %+v", p)
	}
}

func TestTypesReferenceAndSliceAndArray(t *testing.T) {
	types := NewTypes(8)
	named := types.NewNamed(Path{}, spanAt(0, 1))

	ref := types.NewReference(true, named, spanAt(0, 2))
	got := types.Get(ref)
	if got.Kind != TypeReference {
		t.Fatalf("expected TypeReference, got %v", got.Kind)
	}
	if r := types.Reference(got); r == nil || !r.Mut || r.Inner != named {
		t.Fatalf("Reference payload wrong: %+v", r)
	}

	sl := types.NewSlice(false, named, spanAt(0, 2))
	gotSl := types.Get(sl)
	if s := types.Slice(gotSl); s == nil || s.Mut || s.Elem != named {
		t.Fatalf("Slice payload wrong: %+v", s)
	}

	arr := types.NewArray(named, NoExprID, spanAt(0, 3))
	gotArr := types.Get(arr)
	if a := types.Array(gotArr); a == nil || a.Elem != named || a.Len != NoExprID {
		t.Fatalf("Array payload wrong: %+v", a)
	}
}

func TestTypesErrorPlaceholder(t *testing.T) {
	types := NewTypes(4)
	id := types.NewError(spanAt(0, 0))
	if types.Get(id).Kind != TypeError {
		t.Fatalf("expected TypeError")
	}
}
