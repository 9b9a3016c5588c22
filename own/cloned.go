package own

import "github.com/aberaud/ownkit"

// Cloned is an exclusive owner with polymorphic deep-copy semantics: copies
// of the owner are produced by the payload's Clone method. Instantiated
// with an interface type, it can own a base-typed payload whose runtime
// type is some concrete implementation and copy it without knowing that
// type statically.
type Cloned[T ownkit.Cloner[T]] struct {
	Exclusive[T]
}

// NewCloned returns an owner of a fresh clone of v. v itself stays with
// the caller.
func NewCloned[T ownkit.Cloner[T]](v T) *Cloned[T] {
	return AdoptCloned(v.Clone())
}

// AdoptCloned returns an owner that adopts p without cloning.
func AdoptCloned[T ownkit.Cloner[T]](p T) *Cloned[T] {
	o := &Cloned[T]{}
	o.adopt(p)
	return o
}

// Copy returns a new owner holding a clone of the payload, or an empty
// owner when the source is empty. The clone has the payload's runtime type.
func (o *Cloned[T]) Copy() *Cloned[T] {
	if o.Empty() {
		return &Cloned[T]{}
	}
	return AdoptCloned(o.Get().Clone())
}

// Assign replaces the owned payload with a clone of src's, cloning before
// the old payload is destroyed for the same reason Value.Assign copies
// before it frees.
func (o *Cloned[T]) Assign(src *Cloned[T]) {
	if o == src {
		return
	}
	if src.Empty() {
		o.Drop()
		return
	}
	o.Reset(src.Get().Clone())
}
