package omap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test constants.
const (
	testKey10  = 10
	testKey20  = 20
	testKey30  = 30
	testKey40  = 40
	testKey50  = 50
	testValue1 = "v1"
	testValue2 = "v2"
	testValue3 = "v3"
)

func intCmp(a, b int) int { return a - b }

// TestNew verifies empty map creation.
func TestNew(t *testing.T) {
	t.Parallel()

	m := New[int, string](intCmp)
	assert.Equal(t, 0, m.Len())
}

// TestPut_Get verifies insertion and lookup.
func TestPut_Get(t *testing.T) {
	t.Parallel()

	m := New[int, string](intCmp)
	m.Put(testKey10, testValue1)
	m.Put(testKey20, testValue2)

	v, ok := m.Get(testKey10)
	require.True(t, ok)
	assert.Equal(t, testValue1, v)

	_, ok = m.Get(testKey30)
	assert.False(t, ok)
}

// TestPut_Overwrite verifies putting an existing key returns the old value
// and does not change the size.
func TestPut_Overwrite(t *testing.T) {
	t.Parallel()

	m := New[int, string](intCmp)
	m.Put(testKey10, testValue1)

	old, existed := m.Put(testKey10, testValue2)
	assert.True(t, existed)
	assert.Equal(t, testValue1, old)
	assert.Equal(t, 1, m.Len())

	v, _ := m.Get(testKey10)
	assert.Equal(t, testValue2, v)
}

// TestDelete verifies removal and size tracking, including rebalancing
// across a sequence of deletes that exercises every fixup case.
func TestDelete(t *testing.T) {
	t.Parallel()

	m := New[int, string](intCmp)

	keys := []int{testKey10, testKey20, testKey30, testKey40, testKey50}
	for i, k := range keys {
		m.Put(k, []string{testValue1, testValue2, testValue3, testValue1, testValue2}[i])
	}

	for _, k := range keys {
		_, ok := m.Delete(k)
		assert.True(t, ok)
	}

	assert.Equal(t, 0, m.Len())

	_, ok := m.Delete(testKey10)
	assert.False(t, ok)
}

// TestAscend_Descend verifies traversal order in both directions.
func TestAscend_Descend(t *testing.T) {
	t.Parallel()

	m := New[int, string](intCmp)
	m.Put(testKey30, testValue1)
	m.Put(testKey10, testValue2)
	m.Put(testKey20, testValue3)

	var asc []int
	m.Ascend(func(e Entry[int, string]) bool {
		asc = append(asc, e.Key)

		return true
	})
	assert.Equal(t, []int{testKey10, testKey20, testKey30}, asc)

	var desc []int
	m.Descend(func(e Entry[int, string]) bool {
		desc = append(desc, e.Key)

		return true
	})
	assert.Equal(t, []int{testKey30, testKey20, testKey10}, desc)
}

// TestNavigation verifies Floor/Ceiling/Lower/Higher against a reference
// set of keys.
func TestNavigation(t *testing.T) {
	t.Parallel()

	m := New[int, string](intCmp)
	for _, k := range []int{testKey10, testKey30, testKey50} {
		m.Put(k, testValue1)
	}

	e, ok := m.FloorEntry(testKey20)
	require.True(t, ok)
	assert.Equal(t, testKey10, e.Key)

	e, ok = m.CeilingEntry(testKey20)
	require.True(t, ok)
	assert.Equal(t, testKey30, e.Key)

	e, ok = m.LowerEntry(testKey30)
	require.True(t, ok)
	assert.Equal(t, testKey10, e.Key)

	e, ok = m.HigherEntry(testKey30)
	require.True(t, ok)
	assert.Equal(t, testKey50, e.Key)

	_, ok = m.LowerEntry(testKey10)
	assert.False(t, ok)

	_, ok = m.HigherEntry(testKey50)
	assert.False(t, ok)
}

// TestClone verifies that mutating a clone never affects the original.
func TestClone(t *testing.T) {
	t.Parallel()

	m := New[int, string](intCmp)
	m.Put(testKey10, testValue1)

	clone := m.Clone()
	clone.Put(testKey20, testValue2)
	clone.Delete(testKey10)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, clone.Len())

	_, ok := m.Get(testKey10)
	assert.True(t, ok)
}
