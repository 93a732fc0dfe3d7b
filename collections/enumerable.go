package collections

// Enumerable is the read-only surface of [List][T].
//
// Accept Enumerable in your own functions so that callers can pass any
// list-like value without depending on the concrete *List type.
type Enumerable[T comparable] interface {
	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Count returns the number of items.
	Count() int

	// IsEmpty reports whether there are no items.
	IsEmpty() bool

	// Contains reports whether an item equal to item is present.
	Contains(item T) bool

	// FirstOrDefault returns the first item or the zero value of T.
	FirstOrDefault() T

	// LastOrDefault returns the last item or the zero value of T.
	LastOrDefault() T
}

var _ Enumerable[int] = (*List[int])(nil)
