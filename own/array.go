package own

import "github.com/aberaud/ownkit/trap"

// Array is a fixed-size sequence of Exclusive slots. Like its elements it
// has no copy operation; resizing moves slot contents, it never copies
// them.
type Array[T any] struct {
	slots []Exclusive[T]
	_     noCopy
}

// NewArray returns an array of size empty slots.
func NewArray[T any](size int) *Array[T] {
	return &Array[T]{slots: make([]Exclusive[T], size)}
}

// Len returns the number of slots.
func (a *Array[T]) Len() int {
	return len(a.slots)
}

// At returns the slot at index i. An index outside [0, Len()) is a
// contract violation and panics with a *trap.Violation.
func (a *Array[T]) At(i int) *Exclusive[T] {
	trap.Bounds(i, len(a.slots), "Array.At")
	return &a.slots[i]
}

// Resize replaces the slots with size fresh empty ones. Slots at indices
// present in both the old and new arrays transfer their payloads by
// release/adopt; old slots beyond size are dropped, destroying their
// payloads; new slots beyond the old size start empty.
func (a *Array[T]) Resize(size int) {
	next := make([]Exclusive[T], size)
	for i := 0; i < len(a.slots) && i < size; i++ {
		if p, ok := a.slots[i].Release(); ok {
			next[i].adopt(p)
		}
	}
	for i := size; i < len(a.slots); i++ {
		a.slots[i].Drop()
	}
	a.slots = next
}

// Each calls fn for every non-empty slot in index order until fn returns
// false.
func (a *Array[T]) Each(fn func(i int, p T) bool) {
	for i := range a.slots {
		if a.slots[i].set {
			if !fn(i, a.slots[i].p) {
				break
			}
		}
	}
}

// Drop destroys the payload of every slot.
func (a *Array[T]) Drop() {
	for i := range a.slots {
		a.slots[i].Drop()
	}
}
