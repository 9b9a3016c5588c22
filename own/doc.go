// Package own provides exclusive-ownership handles for heap payloads.
//
// # Handles
//
// Exclusive is the base discipline: one handle, one payload, no copying.
// Ownership moves only through explicit Release (transfer out) and Reset
// (destroy old, adopt new). Value and Cloned layer deep-copy semantics on
// top: Value copies the payload by value, while Cloned invokes the payload's
// Clone method, which preserves its runtime type behind an interface.
//
// # Array
//
// Array holds a fixed number of Exclusive slots and resizes by moving slot
// contents to a fresh backing array. Slots outside the overlapping index
// range are destroyed; new slots start empty. Because Exclusive has no copy
// operation the array is likewise non-copyable.
//
// # Destruction
//
// Dropping an owner destroys its payload: the handle is cleared and, when
// the payload implements ownkit.Dropper, its Drop hook runs exactly once.
// A released or already-dropped owner is empty, so dropping it again does
// nothing.
//
// # Contracts
//
// Get on an empty owner and At with an out-of-range index panic with a
// *trap.Violation. These are programming errors; no error returns exist
// for them.
package own
