// Package trap is the assertion facility behind the owner packages'
// contract checks.
//
// Every violation (dereferencing an empty owner, indexing out of bounds)
// is a programming error, so trap panics with a structured *Violation
// instead of returning an error. Tests and crash handlers can recover the
// panic value and match it by kind:
//
//	defer func() {
//	    if v, ok := recover().(*trap.Violation); ok {
//	        if v.Kind == trap.KindEmptyOwner {
//	            // empty-owner dereference
//	        }
//	    }
//	}()
//
// Checks are always on; they are cheap field tests and bounds compares,
// so there is no release-mode switch to disable them.
package trap
