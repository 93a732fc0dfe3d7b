package arr

// Contains reports whether array holds an element equal to item.
func Contains[T comparable](array []T, item T) bool {
	return IndexOf(array, item) >= 0
}

// IndexOf returns the index of the first element equal to item, or -1.
func IndexOf[T comparable](array []T, item T) int {
	for i, v := range array {
		if v == item {
			return i
		}
	}
	return -1
}

// IndexOfFrom searches forward from startIndex to the end of array.
// startIndex may equal len(array), which searches nothing. Any other value
// outside [0, len(array)] yields -1 and an [*ArgumentError].
func IndexOfFrom[T comparable](array []T, item T, startIndex int) (int, error) {
	length := len(array)
	if startIndex < 0 || startIndex > length {
		return -1, outOfRange("IndexOfFrom", "startIndex", startIndex, length)
	}
	return indexIn(array, item, startIndex, length-startIndex), nil
}

// IndexOfRange searches exactly count elements forward from startIndex.
// The window must lie within array; otherwise -1 and an [*ArgumentError] are
// returned.
func IndexOfRange[T comparable](array []T, item T, startIndex, count int) (int, error) {
	length := len(array)
	if startIndex < 0 || startIndex > length {
		return -1, outOfRange("IndexOfRange", "startIndex", startIndex, length)
	}
	if count < 0 || count > length-startIndex {
		return -1, outOfRange("IndexOfRange", "count", count, length)
	}
	return indexIn(array, item, startIndex, count), nil
}

// LastIndexOf returns the index of the last element equal to item, or -1.
func LastIndexOf[T comparable](array []T, item T) int {
	for i := len(array) - 1; i >= 0; i-- {
		if array[i] == item {
			return i
		}
	}
	return -1
}

// LastIndexOfFrom searches backward from startIndex to the start of array.
func LastIndexOfFrom[T comparable](array []T, item T, startIndex int) (int, error) {
	count := startIndex + 1
	if len(array) == 0 {
		count = 0
	}
	return lastIndexOfRange("LastIndexOfFrom", array, item, startIndex, count)
}

// LastIndexOfRange searches count elements backward, starting at startIndex
// and ending at startIndex-count+1.
//
// On an empty array only startIndex -1 or 0 with a count of 0 is accepted,
// and the result is -1. Otherwise startIndex must lie in [0, len(array)) and
// the window must not run past index 0.
func LastIndexOfRange[T comparable](array []T, item T, startIndex, count int) (int, error) {
	return lastIndexOfRange("LastIndexOfRange", array, item, startIndex, count)
}

func lastIndexOfRange[T comparable](op string, array []T, item T, startIndex, count int) (int, error) {
	length := len(array)
	if length == 0 {
		if startIndex != -1 && startIndex != 0 {
			return -1, outOfRange(op, "startIndex", startIndex, length)
		}
		if count != 0 {
			return -1, outOfRange(op, "count", count, length)
		}
		return -1, nil
	}
	if startIndex < 0 || startIndex >= length {
		return -1, outOfRange(op, "startIndex", startIndex, length)
	}
	if count < 0 || count > startIndex+1 {
		return -1, outOfRange(op, "count", count, length)
	}
	end := startIndex - count
	for i := startIndex; i > end; i-- {
		if array[i] == item {
			return i, nil
		}
	}
	return -1, nil
}

func indexIn[T comparable](array []T, item T, start, count int) int {
	end := start + count
	for i := start; i < end; i++ {
		if array[i] == item {
			return i
		}
	}
	return -1
}
