package omap

// The ByKey family of navigation methods lets a caller search this tree by
// a key projected out of each value rather than by the map's own key, for
// the case where that projection happens to induce the same total order as
// the map's key comparator. The range-set package uses this to navigate its
// lower-cut-keyed storage by each range's upper cut: disjointness guarantees
// the two orders agree, so no second tree is needed. Behavior is undefined
// if keyOf does not respect the map's order.

// FloorByKey returns the entry with the greatest keyOf(value) <= target (or
// < target when inclusive is false).
func (m *Map[K, V]) FloorByKey(target K, keyOf func(V) K, inclusive bool) (Entry[K, V], bool) {
	var best *node[K, V]

	cur := m.root
	for cur != nil {
		c := m.cmp(target, keyOf(cur.val))

		switch {
		case c == 0:
			if inclusive {
				return entryOf(cur), true
			}

			cur = cur.left
		case c < 0:
			cur = cur.left
		default:
			best = cur
			cur = cur.right
		}
	}

	if best == nil {
		return Entry[K, V]{}, false
	}

	return entryOf(best), true
}

// CeilingByKey returns the entry with the smallest keyOf(value) >= target
// (or > target when inclusive is false).
func (m *Map[K, V]) CeilingByKey(target K, keyOf func(V) K, inclusive bool) (Entry[K, V], bool) {
	var best *node[K, V]

	cur := m.root
	for cur != nil {
		c := m.cmp(target, keyOf(cur.val))

		switch {
		case c == 0:
			if inclusive {
				return entryOf(cur), true
			}

			cur = cur.right
		case c < 0:
			best = cur
			cur = cur.left
		default:
			cur = cur.right
		}
	}

	if best == nil {
		return Entry[K, V]{}, false
	}

	return entryOf(best), true
}

// LowerByKey returns the entry with the greatest keyOf(value) strictly less
// than target.
func (m *Map[K, V]) LowerByKey(target K, keyOf func(V) K) (Entry[K, V], bool) {
	var best *node[K, V]

	cur := m.root
	for cur != nil {
		if m.cmp(keyOf(cur.val), target) < 0 {
			best = cur
			cur = cur.right
		} else {
			cur = cur.left
		}
	}

	if best == nil {
		return Entry[K, V]{}, false
	}

	return entryOf(best), true
}

// HigherByKey returns the entry with the smallest keyOf(value) strictly
// greater than target.
func (m *Map[K, V]) HigherByKey(target K, keyOf func(V) K) (Entry[K, V], bool) {
	var best *node[K, V]

	cur := m.root
	for cur != nil {
		if m.cmp(keyOf(cur.val), target) > 0 {
			best = cur
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	if best == nil {
		return Entry[K, V]{}, false
	}

	return entryOf(best), true
}
