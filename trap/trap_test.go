package trap

import (
	"errors"
	"testing"
)

func TestViolation_Error(t *testing.T) {
	v := &Violation{Kind: KindEmptyOwner, Op: "Exclusive.Get", Detail: "owner holds no payload"}
	want := "[own] empty_owner in Exclusive.Get: owner holds no payload"
	if v.Error() != want {
		t.Fatalf("got %q, want %q", v.Error(), want)
	}

	bare := &Violation{Kind: KindOutOfBounds}
	if bare.Error() != "[own] out_of_bounds" {
		t.Fatalf("got %q", bare.Error())
	}
}

func TestViolation_IsMatchesKind(t *testing.T) {
	v := &Violation{Kind: KindEmptyOwner, Op: "Shared.Get"}
	if !errors.Is(v, &Violation{Kind: KindEmptyOwner}) {
		t.Fatal("violations of the same kind should match")
	}
	if errors.Is(v, &Violation{Kind: KindOutOfBounds}) {
		t.Fatal("violations of different kinds should not match")
	}
	if errors.Is(v, errors.New("empty_owner")) {
		t.Fatal("a plain error should not match")
	}
}

func TestCheck(t *testing.T) {
	Check(true, KindEmptyOwner, "op", "should not panic")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Check(false) should panic")
		}
		if _, ok := r.(*Violation); !ok {
			t.Fatalf("expected *Violation, got %T", r)
		}
	}()
	Check(false, KindEmptyOwner, "op", "detail")
}

func TestBounds(t *testing.T) {
	Bounds(0, 3, "op")
	Bounds(2, 3, "op")

	for _, idx := range []int{-1, 3} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("Bounds(%d, 3) should panic", idx)
				}
				v, ok := r.(*Violation)
				if !ok {
					t.Fatalf("expected *Violation, got %T", r)
				}
				if v.Kind != KindOutOfBounds {
					t.Fatalf("expected out_of_bounds, got %s", v.Kind)
				}
			}()
			Bounds(idx, 3, "op")
		}()
	}
}
