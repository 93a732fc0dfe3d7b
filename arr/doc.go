// Package arr provides generic helpers that treat Go slices as fixed-size
// arrays, offering a List-style API (append, insert, remove, search, slice,
// reverse) built entirely on reallocate-and-copy.
//
// # Fixed-size semantics
//
// No helper grows a slice in place or relies on spare capacity. Every
// "mutating" helper allocates a new slice sized exactly for its result,
// copies the relevant spans into it and returns it; the input is only read.
// Callers rebind their variable to the returned value:
//
//	items := []int{1, 2, 3}
//	items = arr.Insert(items, 1, 9)        // → [1 9 2 3]
//	items = arr.RemoveRange(items, 0, 2)   // → [2 3]
//	items = arr.Resize(items, 4)           // → [2 3 0 0]
//
// [Reverse] is the only exception: it permutes the caller's slice in place and
// returns that same slice.
//
// # Invalid indices and counts
//
// Three policies coexist, one per family of helpers:
//
//   - [Insert], [InsertRange], [GetRange] and [Resize] clamp out-of-range
//     arguments into the nearest valid value.
//   - [RemoveAt], [RemoveRange] and [Remove] return the input slice unchanged.
//   - [IndexOfFrom], [IndexOfRange], [LastIndexOfFrom] and [LastIndexOfRange]
//     return [ErrArgumentOutOfRange] wrapped in an [*ArgumentError].
//
// No helper panics on an out-of-range index or count, and a nil slice is
// treated as an empty one.
//
// # Equality
//
// Helpers that compare elements require comparable T and use ==. Interface
// element types whose dynamic values are not comparable panic at the
// comparison, exactly as == does.
//
// # Concurrency
//
// All helpers are synchronous and keep no state. They do no locking; racing a
// helper against a concurrent write to the same slice (including another
// [Reverse]) is the caller's responsibility.
package arr
