package token

import (
	"testing"

	"langfront/internal/source"
)

func TestLookupKeyword(t *testing.T) {
	k, ok := LookupKeyword("proc")
	if !ok || k != KwProc {
		t.Fatalf("LookupKeyword(proc) = %v, %v; want KwProc, true", k, ok)
	}
	if _, ok := LookupKeyword("Proc"); ok {
		t.Fatalf("keyword lookup must be case-sensitive")
	}
	if _, ok := LookupKeyword("notakeyword"); ok {
		t.Fatalf("expected no match for non-keyword")
	}
}

func TestStreamLiteralSideTables(t *testing.T) {
	s := NewStream(8)
	sp := source.Span{}
	s.Add(KwProc, sp)
	s.AddInt(IntLit, sp, 42)
	s.AddFloat(sp, 3.5)
	s.AddChar(sp, 'x')
	s.AddString(sp, source.StringID(7), true)
	s.Add(EOF, sp)

	if s.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", s.Len())
	}
	if got := s.Int(1); got != 42 {
		t.Fatalf("Int(1) = %d, want 42", got)
	}
	if got := s.Float(2); got != 3.5 {
		t.Fatalf("Float(2) = %v, want 3.5", got)
	}
	if got := s.Char(3); got != 'x' {
		t.Fatalf("Char(3) = %q, want 'x'", got)
	}
	if got := s.String(4); got != source.StringID(7) {
		t.Fatalf("String(4) = %d, want 7", got)
	}
	if !s.IsCString(4) {
		t.Fatalf("expected IsCString(4) true")
	}
	if !s.IsLiteral(1) || s.IsLiteral(0) {
		t.Fatalf("IsLiteral classification wrong for literal/non-literal tokens")
	}
}

func TestKindStringKnownAndUnknown(t *testing.T) {
	if KwProc.String() != "'proc'" {
		t.Fatalf("KwProc.String() = %q", KwProc.String())
	}
	if Kind(255).String() != "unknown" {
		t.Fatalf("expected unknown for out-of-range kind")
	}
}
