package slicearena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertGetRoundTrip(t *testing.T) {
	a := New[int]()
	h := a.Insert([]int{1, 2, 3})
	v, ok := a.Get(h)
	require.True(t, ok)
	require.Equal(t, []int{1, 2, 3}, v)
	require.Equal(t, 3, h.Len())
}

func TestInvalidHandleFails(t *testing.T) {
	a := New[int]()
	_, ok := a.Get(Invalid)
	require.False(t, ok)
	require.False(t, Invalid.IsValid())
}

func TestHandlesNeverStraddlePageBoundaries(t *testing.T) {
	a := New[int]()
	h1 := a.Insert(make([]int, minPageElems-1))
	require.Equal(t, 1, a.PageCount())

	h2 := a.Insert(make([]int, 10))
	require.Equal(t, 2, a.PageCount(), "an insert that doesn't fit the current page's remaining room opens a new page")

	v1, ok := a.Get(h1)
	require.True(t, ok)
	require.Len(t, v1, minPageElems-1)
	v2, ok := a.Get(h2)
	require.True(t, ok)
	require.Len(t, v2, 10)
}

func TestOversizedInsertGetsADedicatedPage(t *testing.T) {
	a := New[int]()
	big := make([]int, minPageElems*3)
	for i := range big {
		big[i] = i
	}
	h := a.Insert(big)
	v, ok := a.Get(h)
	require.True(t, ok)
	require.Equal(t, big, v)
}

func TestClearTruncatesButRetainsCapacity(t *testing.T) {
	a := New[int]()
	h := a.Insert([]int{1, 2, 3})
	a.Clear()

	_, ok := a.Get(h)
	require.False(t, ok, "handles from before Clear must not resolve afterward")

	// A fresh insert should land back in page 0 (capacity retained) rather
	// than growing the page count.
	h2 := a.Insert([]int{9})
	require.Equal(t, 1, a.PageCount())
	v, ok := a.Get(h2)
	require.True(t, ok)
	require.Equal(t, []int{9}, v)
}

func TestMutationThroughGetIsVisibleToSubsequentGet(t *testing.T) {
	a := New[int]()
	h := a.Insert([]int{1, 2, 3})
	v, _ := a.Get(h)
	v[1] = 42

	v2, _ := a.Get(h)
	require.Equal(t, 42, v2[1])
}
