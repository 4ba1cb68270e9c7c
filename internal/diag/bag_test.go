package diag

import (
	"testing"

	"langfront/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagAddAndCounts(t *testing.T) {
	b := NewBag()
	Error(b, TypeMismatch, span(0, 0, 1), "expected %s, found %s", "s32", "bool")
	Warn(b, NameImportRedundant, span(0, 2, 3), "redundant import")
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	errs, warns, infos := b.Counts()
	if errs != 1 || warns != 1 || infos != 0 {
		t.Fatalf("Counts() = %d,%d,%d want 1,1,0", errs, warns, infos)
	}
	if !b.HasErrors() {
		t.Fatalf("expected HasErrors() true")
	}
}

func TestBagRespectsLimit(t *testing.T) {
	b := NewBagWithLimit(2)
	for i := 0; i < 5; i++ {
		Error(b, SynUnexpectedToken, span(0, uint32(i), uint32(i)+1), "boom")
	}
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	if b.Dropped() != 3 {
		t.Fatalf("Dropped() = %d, want 3", b.Dropped())
	}
}

func TestBagSortBySeverityThenPosition(t *testing.T) {
	b := NewBag()
	Error(b, TypeMismatch, span(0, 10, 11), "err-a")
	Warn(b, NameImportRedundant, span(0, 1, 2), "warn-a")
	Error(b, TypeMismatch, span(0, 0, 1), "err-b")
	Warn(b, NameImportRedundant, span(0, 5, 6), "warn-b")

	b.SortBySeverityThenPosition()
	items := b.Items()
	wantOrder := []Severity{SevWarning, SevWarning, SevError, SevError}
	for i, want := range wantOrder {
		if items[i].Severity != want {
			t.Fatalf("item %d severity = %v, want %v", i, items[i].Severity, want)
		}
	}
	if items[0].Message != "warn-a" || items[1].Message != "warn-b" {
		t.Fatalf("warnings not position-ordered: %q, %q", items[0].Message, items[1].Message)
	}
}

func TestDiagnosticWithNoteChains(t *testing.T) {
	d := Errorf(TypeMismatch, span(0, 0, 1), "type mismatch")
	d.WithNote(span(0, 10, 12), "expected because of this")
	if len(d.Notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(d.Notes))
	}
	if d.Notes[0].Msg != "expected because of this" {
		t.Fatalf("unexpected note message: %q", d.Notes[0].Msg)
	}
}
