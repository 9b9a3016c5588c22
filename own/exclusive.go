package own

import (
	"github.com/aberaud/ownkit"
	"github.com/aberaud/ownkit/trap"
)

// noCopy triggers go vet's copylocks check on accidental struct copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Exclusive is a sole-ownership handle: exactly one Exclusive references a
// given payload, and that handle is responsible for destroying it.
// Ownership moves only through Release and Reset, never through copying:
// the type has no copy operation and go vet flags direct struct copies.
//
// T is instantiated with a pointer or interface type. The zero value is an
// empty owner.
type Exclusive[T any] struct {
	p   T
	set bool
	_   noCopy
}

// NewExclusive returns an owner that adopts p.
func NewExclusive[T any](p T) *Exclusive[T] {
	o := &Exclusive[T]{}
	o.adopt(p)
	return o
}

// Empty reports whether the owner holds no payload.
func (o *Exclusive[T]) Empty() bool {
	return !o.set
}

// Get returns the owned payload. Calling Get on an empty owner is a
// contract violation and panics with a *trap.Violation.
func (o *Exclusive[T]) Get() T {
	trap.Check(o.set, trap.KindEmptyOwner, "Exclusive.Get", "owner holds no payload")
	return o.p
}

// Release transfers the payload out: the owner becomes empty without
// destroying anything and the caller assumes ownership. ok is false when
// the owner was already empty.
func (o *Exclusive[T]) Release() (p T, ok bool) {
	p, ok = o.p, o.set
	o.clear()
	return p, ok
}

// Reset destroys the currently owned payload, if any, and adopts p.
func (o *Exclusive[T]) Reset(p T) {
	o.Drop()
	o.adopt(p)
}

// Drop destroys the owned payload and empties the handle. The handle is
// cleared before the payload's Drop hook runs, so a second Drop, however
// it comes about, is a no-op rather than a double destruction.
func (o *Exclusive[T]) Drop() {
	if !o.set {
		return
	}
	p := o.p
	o.clear()
	destroy(p)
}

func (o *Exclusive[T]) adopt(p T) {
	o.p, o.set = p, true
}

func (o *Exclusive[T]) clear() {
	var zero T
	o.p, o.set = zero, false
}

// destroy runs the payload's cleanup hook when it has one. Memory itself is
// reclaimed by the runtime once the last reference is gone.
func destroy(p any) {
	if d, ok := p.(ownkit.Dropper); ok {
		d.Drop()
	}
}
