package collections

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-array-extensions/arr"
)

// List is an immutable, fixed-size list of comparable items.
//
// Each structural method reallocates through package arr and returns a new
// List; the receiver is never modified.
//
// # Creating a list
//
//	l := collections.New(1, 2, 3)
//	l := collections.From([]string{"a", "b"})
//	l := collections.Empty[int]()
//
// # Method chaining
//
//	l := collections.New(1, 2, 3).
//	    InsertRange(1, 7, 8).
//	    RemoveRange(0, 2).
//	    Resize(5) // → [8 2 3 0 0]
type List[T comparable] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a List from a variadic list of items (copied).
func New[T comparable](items ...T) *List[T] {
	return From(items)
}

// From creates a List from a slice (the slice is copied).
func From[T comparable](items []T) *List[T] {
	return &List[T]{items: arr.GetRange(items, 0, len(items))}
}

// Empty creates an empty List of type T.
func Empty[T comparable]() *List[T] {
	return &List[T]{items: []T{}}
}

// wrap adopts items without copying. Callers must not retain items.
func wrap[T comparable](items []T) *List[T] {
	return &List[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (l *List[T]) All() []T {
	return arr.GetRange(l.items, 0, len(l.items))
}

// Count returns the number of items in the list.
func (l *List[T]) Count() int { return len(l.items) }

// IsEmpty reports whether the list contains no items.
func (l *List[T]) IsEmpty() bool { return len(l.items) == 0 }

// Get returns the item at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (l *List[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, false
	}
	return l.items[index], true
}

// MarshalJSON encodes the list as a JSON array.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.items)
}

// String returns a JSON representation of the list.
// It implements [fmt.Stringer].
func (l *List[T]) String() string {
	b, err := l.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", l.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Structural
// ─────────────────────────────────────────────────────────────────────────────

// Add returns a new List with item appended.
func (l *List[T]) Add(item T) *List[T] { return wrap(arr.Add(l.items, item)) }

// AddUnique appends item only when it is not already present.
func (l *List[T]) AddUnique(item T) *List[T] { return wrap(arr.AddUnique(l.items, item)) }

// AddRange returns a new List with items appended.
func (l *List[T]) AddRange(items ...T) *List[T] { return wrap(arr.AddRange(l.items, items)) }

// Insert places item at index, clamped to [0, Count()].
func (l *List[T]) Insert(index int, item T) *List[T] {
	return wrap(arr.Insert(l.items, index, item))
}

// InsertRange splices items in at index, clamped to [0, Count()].
func (l *List[T]) InsertRange(index int, items ...T) *List[T] {
	return wrap(arr.InsertRange(l.items, index, items))
}

// Remove drops the first item equal to item, if any.
func (l *List[T]) Remove(item T) *List[T] { return wrap(arr.Remove(l.items, item)) }

// RemoveAt drops the item at index. An out-of-range index leaves the
// contents unchanged.
func (l *List[T]) RemoveAt(index int) *List[T] { return wrap(arr.RemoveAt(l.items, index)) }

// RemoveRange drops count items starting at index. An invalid range leaves
// the contents unchanged.
func (l *List[T]) RemoveRange(index, count int) *List[T] {
	return wrap(arr.RemoveRange(l.items, index, count))
}

// GetRange returns count items starting at index, both clamped.
func (l *List[T]) GetRange(index, count int) *List[T] {
	return wrap(arr.GetRange(l.items, index, count))
}

// Resize returns a List of exactly size items, padding with zero values.
func (l *List[T]) Resize(size int) *List[T] { return wrap(arr.Resize(l.items, size)) }

// Reverse returns a reversed copy. Unlike [arr.Reverse] the receiver is left
// untouched.
func (l *List[T]) Reverse() *List[T] {
	return wrap(arr.Reverse(l.All()))
}

// ─────────────────────────────────────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether an item equal to item is present.
func (l *List[T]) Contains(item T) bool { return arr.Contains(l.items, item) }

// IndexOf returns the index of the first item equal to item, or -1.
func (l *List[T]) IndexOf(item T) int { return arr.IndexOf(l.items, item) }

// IndexOfFrom is [arr.IndexOfFrom] over the list.
func (l *List[T]) IndexOfFrom(item T, startIndex int) (int, error) {
	return arr.IndexOfFrom(l.items, item, startIndex)
}

// IndexOfRange is [arr.IndexOfRange] over the list.
func (l *List[T]) IndexOfRange(item T, startIndex, count int) (int, error) {
	return arr.IndexOfRange(l.items, item, startIndex, count)
}

// LastIndexOf returns the index of the last item equal to item, or -1.
func (l *List[T]) LastIndexOf(item T) int { return arr.LastIndexOf(l.items, item) }

// LastIndexOfFrom is [arr.LastIndexOfFrom] over the list.
func (l *List[T]) LastIndexOfFrom(item T, startIndex int) (int, error) {
	return arr.LastIndexOfFrom(l.items, item, startIndex)
}

// LastIndexOfRange is [arr.LastIndexOfRange] over the list.
func (l *List[T]) LastIndexOfRange(item T, startIndex, count int) (int, error) {
	return arr.LastIndexOfRange(l.items, item, startIndex, count)
}

// FirstOrDefault returns the first item, or the zero value when empty.
func (l *List[T]) FirstOrDefault() T { return arr.FirstOrDefault(l.items) }

// LastOrDefault returns the last item, or the zero value when empty.
func (l *List[T]) LastOrDefault() T { return arr.LastOrDefault(l.items) }

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(l) if condition is true and returns the result.
// Otherwise returns l unchanged.
func (l *List[T]) When(condition bool, fn func(*List[T]) *List[T]) *List[T] {
	if condition {
		return fn(l)
	}
	return l
}

// Unless calls fn(l) if condition is false; otherwise returns l.
func (l *List[T]) Unless(condition bool, fn func(*List[T]) *List[T]) *List[T] {
	return l.When(!condition, fn)
}
