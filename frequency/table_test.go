package frequency_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinear/frequency"
)

// words is a small corpus with deliberate count ties.
var words = strings.Fields("python is great python is easy python is used data science and data and")

// TestCount_Totals checks the sum-of-counts invariant and implicit zero.
func TestCount_Totals(t *testing.T) {
	tbl := frequency.Count(words)

	assert.Equal(t, len(words), tbl.Total())
	sum := 0
	for _, e := range tbl.Entries() {
		sum += e.Count
	}
	assert.Equal(t, tbl.Total(), sum)
	assert.Equal(t, 3, tbl.Get("python"))
	assert.Equal(t, 0, tbl.Get("golang"))
	assert.Equal(t, 8, tbl.Distinct())
	assert.Equal(t, []string{"python", "is", "great", "easy", "used", "data", "science", "and"}, tbl.Items())
}

// TestTopK verifies ordering, first-seen tie-break and truncation.
func TestTopK(t *testing.T) {
	tbl := frequency.Count(words)

	top, err := tbl.TopK(4)
	require.NoError(t, err)
	assert.Equal(t, []frequency.Entry[string]{
		{Item: "python", Count: 3},
		{Item: "is", Count: 3},
		{Item: "data", Count: 2},
		{Item: "and", Count: 2},
	}, top)

	all, err := tbl.TopK(100)
	require.NoError(t, err)
	assert.Len(t, all, tbl.Distinct())
	assert.True(t, slices.IsSortedFunc(all, func(a, b frequency.Entry[string]) int { return b.Count - a.Count }))

	none, err := tbl.TopK(0)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = tbl.TopK(-1)
	assert.ErrorIs(t, err, frequency.ErrNegativeK)
}

// TestTopK_Deterministic repeats the query to guard against map-order leaks.
func TestTopK_Deterministic(t *testing.T) {
	items := []int{5, 4, 3, 2, 1, 1, 2, 3, 4, 5}
	want := []frequency.Entry[int]{{Item: 5, Count: 2}, {Item: 4, Count: 2}, {Item: 3, Count: 2}}
	for i := 0; i < 20; i++ {
		got, err := frequency.Count(items).TopK(3)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

// TestItemsWithCount checks exact-count filtering and Unique.
func TestItemsWithCount(t *testing.T) {
	tbl := frequency.Count(words)

	assert.Equal(t, []string{"great", "easy", "used", "science"}, tbl.Unique())
	assert.Equal(t, []string{"data", "and"}, tbl.ItemsWithCount(2))
	assert.Empty(t, tbl.ItemsWithCount(7))
}

// TestCountSeq builds the same table from an iterator.
func TestCountSeq(t *testing.T) {
	tbl := frequency.CountSeq(slices.Values(words))
	assert.Equal(t, frequency.Count(words).Entries(), tbl.Entries())
}

// TestEmptyTable covers queries on a table with no items.
func TestEmptyTable(t *testing.T) {
	tbl := frequency.Count[string](nil)
	assert.Equal(t, 0, tbl.Total())
	top, err := tbl.TopK(3)
	require.NoError(t, err)
	assert.Empty(t, top)
	assert.Empty(t, tbl.Unique())
}
