package own

// Value is an exclusive owner with deep-copy semantics: copies of the owner
// copy the payload by value. T must be a self-contained comparable value
// type, since the payload copy is a plain value copy and Equal compares
// with ==.
type Value[T comparable] struct {
	Exclusive[*T]
}

// NewValue returns an owner of a freshly allocated payload set to v.
func NewValue[T comparable](v T) *Value[T] {
	return AdoptValue(&v)
}

// AdoptValue returns an owner that adopts p. A nil p yields an empty owner.
func AdoptValue[T comparable](p *T) *Value[T] {
	o := &Value[T]{}
	if p != nil {
		o.adopt(p)
	}
	return o
}

// Copy returns a new owner holding a deep copy of the payload, or an empty
// owner when the source is empty.
func (o *Value[T]) Copy() *Value[T] {
	if o.Empty() {
		return &Value[T]{}
	}
	c := *o.Get()
	return AdoptValue(&c)
}

// Assign replaces the owned payload with a deep copy of src's. The copy is
// allocated before the old payload is destroyed, so a fatal allocation
// failure mid-assign leaves the old payload intact rather than leaked.
func (o *Value[T]) Assign(src *Value[T]) {
	if o == src {
		return
	}
	if src.Empty() {
		o.Drop()
		return
	}
	c := *src.Get()
	o.Reset(&c)
}

// Equal reports whether both owners are empty, or both hold payloads that
// compare equal by value.
func (o *Value[T]) Equal(rhs *Value[T]) bool {
	if o.Empty() || rhs.Empty() {
		return o.Empty() && rhs.Empty()
	}
	return *o.Get() == *rhs.Get()
}
