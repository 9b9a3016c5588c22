// Package ownkit provides ownership-wrapper primitives for heap-allocated
// payloads: handles that make copying, aliasing, and destruction rules
// explicit instead of leaving them to caller discipline.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	ownkit/       Root package with the payload capability interfaces
//	├── own/      Exclusive, Value, and Cloned owners plus Array of slots
//	├── cow/      Copy-on-write shared owner with an intrusive RefCount
//	└── trap/     Contract-violation (assertion) facility
//
// # Ownership Disciplines
//
// Four disciplines are provided, each with a distinct copy contract:
//
//	own.Exclusive[T]  sole ownership; copying statically disallowed
//	own.Value[T]      exclusive + deep copy by value
//	own.Cloned[T]     exclusive + deep copy via the payload's Clone method
//	cow.Shared[T]     reference-counted aliasing; mutation forces a clone
//
// # Quick Start
//
// Exclusive ownership with explicit transfer:
//
//	o := own.NewExclusive(&payload{})
//	p, ok := o.Release() // o is now empty; caller owns p
//	o.Drop()             // no-op, nothing owned
//
// Copy-on-write sharing:
//
//	a := cow.NewShared(&doc{}) // count 1
//	b := a.Share()             // count 2, same payload
//	a.Mut().title = "draft"    // a clones and detaches; b unaffected
//
// # Contracts
//
// Dereferencing an empty owner or indexing an Array out of bounds is a
// programming error, not a recoverable condition: these panic with a
// *trap.Violation. See the trap package.
//
// # Payload Capabilities
//
// Owners place requirements on payload types rather than on callers:
//
//	Cloner[T]    produce an independent equivalent instance (Cloned, Shared)
//	Dropper      optional cleanup hook, run exactly once on destruction
//	cow.Counted  intrusive reference count field (Shared only)
//
// # Concurrency
//
// Reference counts are plain ints. Aliased cow.Shared owners must not be
// used from multiple goroutines without external synchronization; ownership
// is otherwise strictly tree-shaped and single-threaded by design.
package ownkit
