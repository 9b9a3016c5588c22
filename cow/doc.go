// Package cow provides a copy-on-write shared owner backed by an intrusive
// reference count.
//
// # Model
//
// A payload embeds a RefCount and implements Clone. Any number of Shared
// owners may alias one payload; the count inside the payload equals the
// number of owners. Aliasing is cheap: Share and Assign take a reference
// and increment the count. Mutation is what costs: Mut on an aliased
// payload clones it first, so exactly the mutating owner detaches onto a
// private copy and every other owner keeps the original untouched.
//
//	a := cow.NewShared(&doc{title: "v1"}) // count 1
//	b := a.Share()                        // count 2, one payload
//	a.Mut().title = "v2"                  // a clones; b still sees "v1"
//
// # The count-0 sentinel
//
// A count of exactly 0 marks a payload not owned by any Shared owner, which
// is where freshly constructed values start. Attach checks it: attaching a
// count-0 value clones it (the new owner gets a private copy), while
// attaching a value with count >= 1 aliases it and increments the count.
// Code that depends on attach-aliasing must therefore hand Attach a payload
// that is already under Shared ownership.
//
// # Destruction
//
// Drop decrements the count and destroys the payload, running its
// ownkit.Dropper hook if present, only when the count reaches 0. Owners
// clear their handle on release, so dropping twice is harmless.
//
// # Threading
//
// Counts are plain ints updated without synchronization. Owners aliasing
// one payload must stay on a single goroutine or be serialized externally;
// unsynchronized concurrent use can corrupt a count, double-destroy, or
// leak.
package cow
