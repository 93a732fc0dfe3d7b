package arr

// ─────────────────────────────────────────────────────────────────────────────
// Appending
// ─────────────────────────────────────────────────────────────────────────────

// Add returns a new slice holding array followed by item.
func Add[T any](array []T, item T) []T {
	length := len(array)
	out := make([]T, length+1)
	copy(out, array)
	out[length] = item
	return out
}

// AddUnique behaves like [Add] unless array already contains item, in which
// case array itself is returned.
func AddUnique[T comparable](array []T, item T) []T {
	if IndexOf(array, item) >= 0 {
		return array
	}
	return Add(array, item)
}

// AddRange returns a new slice holding array followed by every element of
// collection. The result is always freshly allocated, even when collection is
// empty.
func AddRange[T any](array, collection []T) []T {
	length := len(array)
	out := make([]T, length+len(collection))
	copy(out, array)
	copy(out[length:], collection)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Inserting & removing
// ─────────────────────────────────────────────────────────────────────────────

// Insert returns a new slice with item placed at index and every later
// element shifted right by one. index is clamped to [0, len(array)], so an
// index at or past the end appends.
func Insert[T any](array []T, index int, item T) []T {
	length := len(array)
	index = clamp(index, 0, length)

	out := make([]T, length+1)
	out[index] = item

	switch index {
	case 0:
		copy(out[1:], array)
	case length:
		copy(out, array)
	default:
		copy(out[:index], array[:index])
		copy(out[index+1:], array[index:])
	}
	return out
}

// InsertRange returns a new slice with all of collection spliced in at index.
// index is clamped to [0, len(array)].
func InsertRange[T any](array []T, index int, collection []T) []T {
	length := len(array)
	cLen := len(collection)
	index = clamp(index, 0, length)

	out := make([]T, length+cLen)

	switch index {
	case 0:
		copy(out, collection)
		copy(out[cLen:], array)
	case length:
		copy(out, array)
		copy(out[length:], collection)
	default:
		copy(out[:index], array[:index])
		copy(out[index:index+cLen], collection)
		copy(out[index+cLen:], array[index:])
	}
	return out
}

// RemoveAt returns a new slice without the element at index. When index is
// outside [0, len(array)) array itself is returned; the index is never
// clamped.
func RemoveAt[T any](array []T, index int) []T {
	length := len(array)
	if index < 0 || index >= length {
		return array
	}

	last := length - 1
	out := make([]T, last)

	switch index {
	case 0:
		copy(out, array[1:])
	case last:
		copy(out, array[:last])
	default:
		copy(out[:index], array[:index])
		copy(out[index:], array[index+1:])
	}
	return out
}

// RemoveRange returns a new slice without the count elements starting at
// index. array itself is returned when index < 0, count <= 0 or the range
// runs past the end.
func RemoveRange[T any](array []T, index, count int) []T {
	length := len(array)
	if index < 0 || count <= 0 || count > length-index {
		return array
	}

	remaining := length - count
	out := make([]T, remaining)

	switch {
	case index == 0:
		copy(out, array[count:])
	case index == remaining:
		// the range ends at the last element
		copy(out, array[:remaining])
	default:
		copy(out[:index], array[:index])
		copy(out[index:], array[index+count:])
	}
	return out
}

// Remove returns a new slice without the first element equal to item, or
// array itself when no element matches.
func Remove[T comparable](array []T, item T) []T {
	index := IndexOf(array, item)
	if index == -1 {
		return array
	}
	return RemoveAt(array, index)
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & whole-array
// ─────────────────────────────────────────────────────────────────────────────

// GetRange returns a copy of count elements starting at index. index is
// clamped to [0, len(array)] and count to [0, len(array)-index], so an
// oversized count stops at the end.
func GetRange[T any](array []T, index, count int) []T {
	length := len(array)
	index = clamp(index, 0, length)
	count = clamp(count, 0, length-index)

	out := make([]T, count)
	copy(out, array[index:index+count])
	return out
}

// Resize returns a new slice of length newSize (negative sizes become 0)
// holding the leading elements of array. Slots beyond len(array) hold the
// zero value of T.
func Resize[T any](array []T, newSize int) []T {
	if newSize < 0 {
		newSize = 0
	}
	out := make([]T, newSize)
	copy(out, array)
	return out
}

// Reverse reverses array in place and returns it. It is the only helper in
// this package that writes to its argument.
func Reverse[T any](array []T) []T {
	for i, j := 0, len(array)-1; i < j; i, j = i+1, j-1 {
		array[i], array[j] = array[j], array[i]
	}
	return array
}

// FirstOrDefault returns the first element, or the zero value of T when
// array is empty.
func FirstOrDefault[T any](array []T) T {
	var zero T
	if len(array) == 0 {
		return zero
	}
	return array[0]
}

// LastOrDefault returns the last element, or the zero value of T when array
// is empty.
func LastOrDefault[T any](array []T) T {
	var zero T
	length := len(array)
	if length == 0 {
		return zero
	}
	return array[length-1]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
