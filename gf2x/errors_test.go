package gf2x

import (
	"errors"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	e := newErr("Mul", KindOverflow, "result bit length %d exceeds MAX_BITS=%d", 5, 4)
	if e.Error() == "" {
		t.Fatal("Error() should not be empty")
	}
	var target *Error
	if !errors.As(error(e), &target) {
		t.Fatal("errors.As should unwrap *Error")
	}
	if target.Kind != KindOverflow {
		t.Fatalf("Kind = %v, want KindOverflow", target.Kind)
	}
}

func TestIsKind(t *testing.T) {
	_, err := Inv(BigPoly{}, 1)
	if !IsKind(err, KindZeroDivision) {
		t.Fatal("IsKind should match ZeroDivisionError")
	}
	if IsKind(err, KindOverflow) {
		t.Fatal("IsKind should not match an unrelated kind")
	}
	if IsKind(nil, KindValue) {
		t.Fatal("IsKind(nil, ...) should be false")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindType:         "TypeError",
		KindValue:        "ValueError",
		KindZeroDivision: "ZeroDivisionError",
		KindOverflow:     "OverflowError",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
