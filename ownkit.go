package ownkit

// Cloner is implemented by payloads that can produce a new, independently
// owned instance equivalent to themselves. When T is an interface type the
// clone keeps the runtime type of the receiver, which is what lets a
// base-typed owner copy a derived payload without knowing its concrete type.
type Cloner[T any] interface {
	Clone() T
}

// Dropper is optionally implemented by payload values that need cleanup
// when their owner destroys them. An owner invokes Drop exactly once per
// payload, at the point the payload's lifetime ends.
type Dropper interface {
	Drop()
}
