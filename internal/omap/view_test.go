package omap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test constants.
const (
	testViewKey10 = 10
	testViewKey20 = 20
	testViewKey30 = 30
	testViewKey40 = 40
	testViewKey50 = 50
)

func seedView(t *testing.T) *Map[int, string] {
	t.Helper()

	m := New[int, string](intCmp)
	for _, k := range []int{testViewKey10, testViewKey20, testViewKey30, testViewKey40, testViewKey50} {
		m.Put(k, "v")
	}

	return m
}

// TestHeadMap_Exclusive verifies headMap excludes the boundary key by
// default.
func TestHeadMap_Exclusive(t *testing.T) {
	t.Parallel()

	m := seedView(t)

	var keys []int
	m.HeadMap(testViewKey30, false).Ascend(func(e Entry[int, string]) bool {
		keys = append(keys, e.Key)

		return true
	})

	assert.Equal(t, []int{testViewKey10, testViewKey20}, keys)
}

// TestHeadMap_Inclusive verifies headMap includes the boundary key when
// inclusive is true.
func TestHeadMap_Inclusive(t *testing.T) {
	t.Parallel()

	m := seedView(t)

	var keys []int
	m.HeadMap(testViewKey30, true).Ascend(func(e Entry[int, string]) bool {
		keys = append(keys, e.Key)

		return true
	})

	assert.Equal(t, []int{testViewKey10, testViewKey20, testViewKey30}, keys)
}

// TestTailMap verifies tailMap bounds and inclusivity symmetrically to
// headMap.
func TestTailMap(t *testing.T) {
	t.Parallel()

	m := seedView(t)

	var keys []int
	m.TailMap(testViewKey30, true).Ascend(func(e Entry[int, string]) bool {
		keys = append(keys, e.Key)

		return true
	})
	assert.Equal(t, []int{testViewKey30, testViewKey40, testViewKey50}, keys)

	keys = nil
	m.TailMap(testViewKey30, false).Ascend(func(e Entry[int, string]) bool {
		keys = append(keys, e.Key)

		return true
	})
	assert.Equal(t, []int{testViewKey40, testViewKey50}, keys)
}

// TestHeadMap_TailMap_Compose verifies that headMap(a).tailMap(b) intersects
// the two windows, matching the navigable-map composition contract.
func TestHeadMap_TailMap_Compose(t *testing.T) {
	t.Parallel()

	m := seedView(t)

	var keys []int
	m.HeadMap(testViewKey40, true).TailMap(testViewKey20, true).Ascend(func(e Entry[int, string]) bool {
		keys = append(keys, e.Key)

		return true
	})

	assert.Equal(t, []int{testViewKey20, testViewKey30, testViewKey40}, keys)
}

// TestDescendingMap verifies reversed iteration visits the same entries in
// the opposite order.
func TestDescendingMap(t *testing.T) {
	t.Parallel()

	m := seedView(t)

	var keys []int
	m.DescendingMap().Ascend(func(e Entry[int, string]) bool {
		keys = append(keys, e.Key)

		return true
	})

	assert.Equal(t, []int{testViewKey50, testViewKey40, testViewKey30, testViewKey20, testViewKey10}, keys)
}

// TestDescendingMap_Descend verifies Descend on a descending view walks
// forward again.
func TestDescendingMap_Descend(t *testing.T) {
	t.Parallel()

	m := seedView(t)

	var keys []int
	m.DescendingMap().Descend(func(e Entry[int, string]) bool {
		keys = append(keys, e.Key)

		return true
	})

	assert.Equal(t, []int{testViewKey10, testViewKey20, testViewKey30, testViewKey40, testViewKey50}, keys)
}

// TestView_FloorCeiling verifies floor/ceiling respect a bounded view's
// edges rather than the whole map.
func TestView_FloorCeiling(t *testing.T) {
	t.Parallel()

	m := seedView(t)
	v := m.HeadMap(testViewKey40, false).TailMap(testViewKey20, true)

	e, ok := v.FloorEntry(testViewKey40)
	require.True(t, ok)
	assert.Equal(t, testViewKey30, e.Key)

	e, ok = v.CeilingEntry(testViewKey10)
	require.True(t, ok)
	assert.Equal(t, testViewKey20, e.Key)

	_, ok = v.FloorEntry(testViewKey10 - 1)
	assert.False(t, ok)

	_, ok = v.CeilingEntry(testViewKey50)
	assert.False(t, ok)
}

// TestView_LowerHigher verifies strict navigation within a bounded view.
func TestView_LowerHigher(t *testing.T) {
	t.Parallel()

	m := seedView(t)
	v := m.HeadMap(testViewKey40, true).TailMap(testViewKey20, true)

	e, ok := v.LowerEntry(testViewKey30)
	require.True(t, ok)
	assert.Equal(t, testViewKey20, e.Key)

	e, ok = v.HigherEntry(testViewKey30)
	require.True(t, ok)
	assert.Equal(t, testViewKey40, e.Key)

	_, ok = v.LowerEntry(testViewKey20)
	assert.False(t, ok)

	_, ok = v.HigherEntry(testViewKey40)
	assert.False(t, ok)
}

// TestView_FirstLast verifies first/last entries honor view bounds.
func TestView_FirstLast(t *testing.T) {
	t.Parallel()

	m := seedView(t)
	v := m.HeadMap(testViewKey40, false).TailMap(testViewKey20, true)

	first, ok := v.FirstEntry()
	require.True(t, ok)
	assert.Equal(t, testViewKey20, first.Key)

	last, ok := v.LastEntry()
	require.True(t, ok)
	assert.Equal(t, testViewKey30, last.Key)
}
