package ast

import "testing"

func TestArenaAllocateIsOneBased(t *testing.T) {
	a := NewArena[int](4)
	id1 := a.Allocate(10)
	id2 := a.Allocate(20)
	if id1 != 1 || id2 != 2 {
		t.Fatalf("expected 1-based IDs, got %d, %d", id1, id2)
	}
	if *a.Get(id1) != 10 || *a.Get(id2) != 20 {
		t.Fatalf("Get returned wrong values")
	}
	if a.Get(0) != nil {
		t.Fatalf("Get(0) should be nil")
	}
	if a.Len() != 2 {
		t.Fatalf("expected len 2, got %d", a.Len())
	}
}

func TestArenaSlicePreservesOrder(t *testing.T) {
	a := NewArena[string](2)
	a.Allocate("a")
	a.Allocate("b")
	a.Allocate("c")
	got := a.Slice()
	want := []string{"a", "b", "c"}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("Slice()[%d] = %q, want %q", i, got[i], w)
		}
	}
}
