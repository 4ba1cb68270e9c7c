package ast

import "testing"

func TestZeroIDsAreInvalid(t *testing.T) {
	if NoItemID.IsValid() {
		t.Fatalf("NoItemID should be invalid")
	}
	if NoExprID.IsValid() {
		t.Fatalf("NoExprID should be invalid")
	}
	if ItemID(1).IsValid() != true {
		t.Fatalf("non-zero ItemID should be valid")
	}
}

func TestConstExprNoneSentinel(t *testing.T) {
	if ConstExprNone.IsValid() {
		t.Fatalf("ConstExprNone should be invalid")
	}
	if !ConstExprID(0).IsValid() {
		t.Fatalf("ConstExprID(0) is a legitimate slot index and must be valid")
	}
}
