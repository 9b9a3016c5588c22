package cow

// Counted is implemented by payloads that carry an intrusive reference
// count the owner may read and write directly. A count of 0 means the
// payload is not currently owned by any Shared owner; freshly constructed
// standalone values start there, and Attach treats 0 as "clone, don't
// alias". A non-zero count equals the number of Shared owners aliasing the
// payload.
type Counted interface {
	// IncRef increments the reference count.
	IncRef()

	// DecRef decrements the reference count and returns the remainder.
	DecRef() int

	// NumRef returns the current reference count.
	NumRef() int

	// SetRef overwrites the reference count.
	SetRef(n int)
}

// RefCount is an embeddable intrusive reference count satisfying Counted.
// The zero value has count 0, the "unowned" sentinel.
//
// The count is a plain int. Updates are not synchronized; see the package
// comment for the threading contract.
type RefCount struct {
	n int
}

// IncRef increments the reference count.
func (r *RefCount) IncRef() { r.n++ }

// DecRef decrements the reference count and returns the remainder.
func (r *RefCount) DecRef() int {
	r.n--
	return r.n
}

// NumRef returns the current reference count.
func (r *RefCount) NumRef() int { return r.n }

// SetRef overwrites the reference count.
func (r *RefCount) SetRef(n int) { r.n = n }
