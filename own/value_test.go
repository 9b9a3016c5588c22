package own

import "testing"

type point struct {
	x, y int
}

func TestValue_CopyIsIndependent(t *testing.T) {
	a := NewValue(point{x: 1, y: 2})
	c := a.Copy()

	if a.Get() == c.Get() {
		t.Fatal("Copy should allocate a distinct payload")
	}
	if !a.Equal(c) {
		t.Fatal("copy should compare equal to its source")
	}

	c.Get().x = 9
	if a.Get().x != 1 {
		t.Fatalf("mutating the copy changed the source, x = %d", a.Get().x)
	}
	if a.Equal(c) {
		t.Fatal("owners should differ after mutating the copy")
	}
}

func TestValue_CopyEmpty(t *testing.T) {
	a := AdoptValue[point](nil)
	if !a.Empty() {
		t.Fatal("adopting nil should give an empty owner")
	}
	if c := a.Copy(); !c.Empty() {
		t.Fatal("copy of an empty owner should be empty")
	}
}

func TestValue_Equal(t *testing.T) {
	empty1 := AdoptValue[point](nil)
	empty2 := AdoptValue[point](nil)
	a := NewValue(point{x: 1})
	b := NewValue(point{x: 1})
	c := NewValue(point{x: 2})

	if !empty1.Equal(empty2) {
		t.Fatal("two empty owners should be equal")
	}
	if empty1.Equal(a) || a.Equal(empty1) {
		t.Fatal("empty and non-empty owners should not be equal")
	}
	if !a.Equal(b) {
		t.Fatal("owners of equal payloads should be equal")
	}
	if a.Equal(c) {
		t.Fatal("owners of different payloads should not be equal")
	}
}

func TestValue_Assign(t *testing.T) {
	a := NewValue(point{x: 1})
	b := NewValue(point{x: 2})

	a.Assign(b)
	if !a.Equal(b) {
		t.Fatal("Assign should make the target equal to the source")
	}
	if a.Get() == b.Get() {
		t.Fatal("Assign should deep-copy, not alias")
	}

	// Self-assignment leaves the owner untouched.
	p := a.Get()
	a.Assign(a)
	if a.Get() != p {
		t.Fatal("self-assignment replaced the payload")
	}

	// Assigning from an empty source empties the target.
	a.Assign(AdoptValue[point](nil))
	if !a.Empty() {
		t.Fatal("assigning from an empty owner should empty the target")
	}
}

func TestValue_NewValueCopiesInput(t *testing.T) {
	v := point{x: 5}
	a := NewValue(v)
	v.x = 7
	if a.Get().x != 5 {
		t.Fatalf("NewValue should snapshot its argument, got x = %d", a.Get().x)
	}
}
