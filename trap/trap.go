package trap

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind categorizes the contract violation.
type Kind string

const (
	KindEmptyOwner  Kind = "empty_owner"   // dereference or use of an empty handle
	KindOutOfBounds Kind = "out_of_bounds" // index outside an array's valid range
)

// Violation describes a broken API contract. It is delivered by panic, not
// by an error return: contract violations are programming errors, and there
// is no recoverable-error channel in this library.
type Violation struct {
	Kind   Kind
	Op     string
	Detail string
}

// Error implements the error interface so recovered violations can be
// inspected with the errors package.
func (v *Violation) Error() string {
	var b strings.Builder

	b.WriteString("[own] ")
	b.WriteString(string(v.Kind))

	if v.Op != "" {
		b.WriteString(" in ")
		b.WriteString(v.Op)
	}

	if v.Detail != "" {
		b.WriteString(": ")
		b.WriteString(v.Detail)
	}

	return b.String()
}

// Is reports whether target matches this violation by kind.
func (v *Violation) Is(target error) bool {
	if t, ok := target.(*Violation); ok {
		return v.Kind == t.Kind
	}
	return false
}

// Check panics with a Violation when cond is false.
func Check(cond bool, kind Kind, op, detail string) {
	if !cond {
		panic(&Violation{Kind: kind, Op: op, Detail: detail})
	}
}

// Checkf is Check with a formatted detail message.
func Checkf(cond bool, kind Kind, op, format string, args ...any) {
	if !cond {
		panic(&Violation{Kind: kind, Op: op, Detail: fmt.Sprintf(format, args...)})
	}
}

// Bounds panics with an out_of_bounds Violation unless 0 <= index < size.
func Bounds(index, size int, op string) {
	if index < 0 || index >= size {
		panic(&Violation{
			Kind:   KindOutOfBounds,
			Op:     op,
			Detail: "index " + strconv.Itoa(index) + ", size " + strconv.Itoa(size),
		})
	}
}
