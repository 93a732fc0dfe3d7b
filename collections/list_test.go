package collections_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-array-extensions/arr"
	"github.com/hasbyte1/go-array-extensions/collections"
)

func ints(ns ...int) *collections.List[int] { return collections.New(ns...) }

// ─────────────────────────────────────────────────────────────────────────────
// Constructors & accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, collections.New(1, 2, 3).All())
}

func TestFromCopies(t *testing.T) {
	s := []string{"a", "b", "c"}
	l := collections.From(s)
	s[0] = "z"
	assert.Equal(t, "a", l.FirstOrDefault(), "From did not copy the slice")
}

func TestAllCopies(t *testing.T) {
	l := ints(1, 2)
	out := l.All()
	out[0] = 99
	assert.Equal(t, []int{1, 2}, l.All())
}

func TestEmpty(t *testing.T) {
	l := collections.Empty[int]()
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Count())
	assert.Equal(t, "[]", l.String())
}

func TestGet(t *testing.T) {
	l := ints(10, 20)

	v, ok := l.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 20, v)

	_, ok = l.Get(2)
	assert.False(t, ok)
	_, ok = l.Get(-1)
	assert.False(t, ok)
}

func TestStringAndJSON(t *testing.T) {
	l := collections.New("a", "b")
	assert.Equal(t, `["a","b"]`, l.String())

	b, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(b))
}

// ─────────────────────────────────────────────────────────────────────────────
// Structural
// ─────────────────────────────────────────────────────────────────────────────

func TestStructuralMethodsLeaveReceiverUnchanged(t *testing.T) {
	l := ints(1, 2, 3)

	l.Add(4)
	l.AddUnique(5)
	l.AddRange(6, 7)
	l.Insert(0, 0)
	l.InsertRange(1, 8, 9)
	l.Remove(2)
	l.RemoveAt(0)
	l.RemoveRange(0, 2)
	l.GetRange(1, 1)
	l.Resize(10)
	l.Reverse()

	assert.Equal(t, []int{1, 2, 3}, l.All())
}

func TestAddFamily(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, ints(1, 2).Add(3).All())
	assert.Equal(t, []int{1, 2}, ints(1, 2).AddUnique(2).All())
	assert.Equal(t, []int{1, 2, 3}, ints(1, 2).AddUnique(3).All())
	assert.Equal(t, []int{1, 2, 3, 4}, ints(1, 2).AddRange(3, 4).All())
}

func TestInsertFamily(t *testing.T) {
	assert.Equal(t, []int{1, 9, 2, 3}, ints(1, 2, 3).Insert(1, 9).All())
	assert.Equal(t, []int{1, 2, 3, 9}, ints(1, 2, 3).Insert(42, 9).All())
	assert.Equal(t, []int{1, 9, 9, 2, 3}, ints(1, 2, 3).InsertRange(1, 9, 9).All())
}

func TestRemoveFamily(t *testing.T) {
	assert.Equal(t, []int{1, 3}, ints(1, 2, 3).Remove(2).All())
	assert.Equal(t, []int{1, 2, 3}, ints(1, 2, 3).Remove(7).All())
	assert.Equal(t, []int{2, 3}, ints(1, 2, 3).RemoveAt(0).All())
	assert.Equal(t, []int{1, 2, 3}, ints(1, 2, 3).RemoveAt(3).All())
	assert.Equal(t, []int{3}, ints(1, 2, 3).RemoveRange(0, 2).All())
	assert.Equal(t, []int{1, 2, 3}, ints(1, 2, 3).RemoveRange(2, 2).All())
}

func TestSliceFamily(t *testing.T) {
	assert.Equal(t, []int{2, 3}, ints(1, 2, 3).GetRange(1, 100).All())
	assert.Equal(t, []int{1, 2, 3, 0, 0}, ints(1, 2, 3).Resize(5).All())
	assert.Equal(t, []int{3, 2, 1}, ints(1, 2, 3).Reverse().All())
}

func TestChaining(t *testing.T) {
	got := ints(1, 2, 3).
		InsertRange(1, 7, 8).
		RemoveRange(0, 2).
		Resize(5).
		All()
	assert.Equal(t, []int{8, 2, 3, 0, 0}, got)
}

// ─────────────────────────────────────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────────────────────────────────────

func TestQueries(t *testing.T) {
	l := ints(1, 2, 1, 2)

	assert.True(t, l.Contains(2))
	assert.False(t, l.Contains(5))
	assert.Equal(t, 1, l.IndexOf(2))
	assert.Equal(t, 3, l.LastIndexOf(2))
	assert.Equal(t, 1, l.FirstOrDefault())
	assert.Equal(t, 2, l.LastOrDefault())

	i, err := l.IndexOfFrom(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	i, err = l.IndexOfRange(2, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	i, err = l.LastIndexOfFrom(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = l.LastIndexOfRange(1, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, i)
}

func TestQueryErrors(t *testing.T) {
	l := ints(1, 2)

	_, err := l.IndexOfFrom(1, 3)
	assert.ErrorIs(t, err, arr.ErrArgumentOutOfRange)

	_, err = l.IndexOfRange(1, 0, 3)
	assert.ErrorIs(t, err, arr.ErrArgumentOutOfRange)

	_, err = l.LastIndexOfFrom(1, 2)
	assert.ErrorIs(t, err, arr.ErrArgumentOutOfRange)

	_, err = l.LastIndexOfRange(1, 1, 3)
	assert.ErrorIs(t, err, arr.ErrArgumentOutOfRange)
}

func TestDefaultsOnEmpty(t *testing.T) {
	l := collections.Empty[string]()
	assert.Equal(t, "", l.FirstOrDefault())
	assert.Equal(t, "", l.LastOrDefault())
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

func TestWhenUnless(t *testing.T) {
	add := func(l *collections.List[int]) *collections.List[int] { return l.Add(9) }

	assert.Equal(t, []int{1, 9}, ints(1).When(true, add).All())
	assert.Equal(t, []int{1}, ints(1).When(false, add).All())
	assert.Equal(t, []int{1, 9}, ints(1).Unless(false, add).All())
	assert.Equal(t, []int{1}, ints(1).Unless(true, add).All())
}

func TestEnumerable(t *testing.T) {
	describe := func(e collections.Enumerable[int]) string {
		return fmt.Sprintf("%d:%v", e.Count(), e.Contains(2))
	}
	assert.Equal(t, "3:true", describe(ints(1, 2, 3)))
}
