package cow

import (
	"github.com/aberaud/ownkit"
	"github.com/aberaud/ownkit/trap"
)

// Payload is what a Shared owner can manage: a clonable value carrying an
// intrusive reference count. T is instantiated with a pointer or interface
// type, typically a struct pointer with an embedded RefCount.
type Payload[T any] interface {
	ownkit.Cloner[T]
	Counted
}

// Shared is a copy-on-write owner. Owners alias one payload cheaply
// (Share and Assign take a reference and bump the count) and the first
// owner to ask for mutable access pays for a private clone, leaving the
// other owners on the original payload.
//
// The zero value is an empty owner. Shared has no copy operation; use
// Share for aliasing copies.
type Shared[T Payload[T]] struct {
	p   T
	set bool
	_   noCopy
}

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// NewShared returns an owner that adopts p as its first owner,
// unconditionally setting p's count to 1.
func NewShared[T Payload[T]](p T) *Shared[T] {
	p.SetRef(1)
	return &Shared[T]{p: p, set: true}
}

// Empty reports whether the owner holds no payload.
func (s *Shared[T]) Empty() bool {
	return !s.set
}

// NumRef returns the owned payload's reference count, or 0 when empty.
func (s *Shared[T]) NumRef() int {
	if !s.set {
		return 0
	}
	return s.p.NumRef()
}

// Get returns the payload for read-only use. It never clones. Calling Get
// on an empty owner panics with a *trap.Violation.
//
// Mutating the payload returned by Get while it is aliased leaks the
// change to every owner; use Mut for mutation.
func (s *Shared[T]) Get() T {
	trap.Check(s.set, trap.KindEmptyOwner, "Shared.Get", "owner holds no payload")
	return s.p
}

// Mut returns the payload for mutation. When the payload is aliased
// (count > 1) the owner detaches first: it clones the payload, drops its
// reference to the original without destroying it, and becomes the sole
// owner of the clone. Other owners keep the original, so mutations through
// the returned payload never reach them.
func (s *Shared[T]) Mut() T {
	trap.Check(s.set, trap.KindEmptyOwner, "Shared.Mut", "owner holds no payload")
	if s.p.NumRef() > 1 {
		c := s.p.Clone()
		s.p.DecRef()
		c.SetRef(1)
		debugf("cow: detached on mutable access, %d owners remain on original", s.p.NumRef())
		s.p = c
	}
	return s.p
}

// Attach points the owner at src, releasing any currently owned payload
// first. If src's count is 0, the sentinel for a value not owned by any
// Shared owner, the owner adopts a fresh clone of src with count 1.
// Otherwise it aliases src and increments its count.
func (s *Shared[T]) Attach(src T) {
	s.release()
	if src.NumRef() == 0 {
		c := src.Clone()
		c.SetRef(1)
		s.p = c
		debugf("cow: attach cloned an unowned payload")
	} else {
		src.IncRef()
		s.p = src
		debugf("cow: attach aliased, count now %d", src.NumRef())
	}
	s.set = true
}

// Share returns a new owner aliasing the same payload, incrementing its
// count. Sharing an empty owner yields an empty owner.
func (s *Shared[T]) Share() *Shared[T] {
	if !s.set {
		return &Shared[T]{}
	}
	s.p.IncRef()
	return &Shared[T]{p: s.p, set: true}
}

// Assign makes the owner alias src's payload. Assigning an owner to itself
// or to another owner of the same payload is a no-op; otherwise the current
// payload is released (destroyed if this was its last owner) and src's
// payload gains a reference. Assigning from an empty source empties the
// target.
func (s *Shared[T]) Assign(src *Shared[T]) {
	if s == src {
		return
	}
	if s.set && src.set && any(s.p) == any(src.p) {
		return
	}
	s.release()
	if src.set {
		src.p.IncRef()
		s.p = src.p
		s.set = true
	}
}

// Drop releases the owner's reference, destroying the payload when the
// count reaches 0, and empties the handle. Dropping an empty owner does
// nothing, so a second Drop is harmless.
func (s *Shared[T]) Drop() {
	s.release()
}

func (s *Shared[T]) release() {
	if !s.set {
		return
	}
	p := s.p
	var zero T
	s.p, s.set = zero, false
	if p.DecRef() == 0 {
		debugf("cow: last owner gone, destroying payload")
		if d, ok := any(p).(ownkit.Dropper); ok {
			d.Drop()
		}
	}
}
