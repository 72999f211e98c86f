package omap

// View is a navigable, possibly-bounded, possibly-reversed window onto a
// Map. It never copies entries: every method walks the backing tree
// directly, clipped to the view's bounds. HeadMap, TailMap, and
// DescendingMap on a View compose by intersecting bounds, so
// headMap(a).tailMap(b) behaves like a single view bounded by both.
//
// Bounds are always expressed in the Map's natural key order regardless of
// whether the view is reversed. DescendingMap only flips which of
// Ascend/Descend walks forward through the tree; it does not redefine what
// "head" and "tail" mean under reversal.
type View[K, V any] struct {
	base *Map[K, V]

	hasLow  bool
	low     K
	lowIncl bool

	hasHigh  bool
	high     K
	highIncl bool

	reversed bool
}

// HeadMap returns a view of m containing keys less than k (or <= k if
// inclusive is true).
func (m *Map[K, V]) HeadMap(k K, inclusive bool) *View[K, V] {
	return (&View[K, V]{base: m}).HeadMap(k, inclusive)
}

// TailMap returns a view of m containing keys greater than k (or >= k if
// inclusive is true).
func (m *Map[K, V]) TailMap(k K, inclusive bool) *View[K, V] {
	return (&View[K, V]{base: m}).TailMap(k, inclusive)
}

// DescendingMap returns a view of m that iterates in descending key order.
func (m *Map[K, V]) DescendingMap() *View[K, V] {
	return (&View[K, V]{base: m}).DescendingMap()
}

// HeadMap narrows v to keys less than k (or <= k if inclusive), intersected
// with v's existing bounds.
func (v *View[K, V]) HeadMap(k K, inclusive bool) *View[K, V] {
	out := v.clone()
	out.tightenHigh(k, inclusive)

	return out
}

// TailMap narrows v to keys greater than k (or >= k if inclusive),
// intersected with v's existing bounds.
func (v *View[K, V]) TailMap(k K, inclusive bool) *View[K, V] {
	out := v.clone()
	out.tightenLow(k, inclusive)

	return out
}

// DescendingMap returns a view over the same bounds as v with ascending
// and descending traversal swapped.
func (v *View[K, V]) DescendingMap() *View[K, V] {
	out := v.clone()
	out.reversed = !out.reversed

	return out
}

func (v *View[K, V]) clone() *View[K, V] {
	c := *v

	return &c
}

func (v *View[K, V]) tightenHigh(k K, inclusive bool) {
	if !v.hasHigh || v.base.cmp(k, v.high) < 0 || (v.base.cmp(k, v.high) == 0 && !inclusive) {
		v.hasHigh = true
		v.high = k
		v.highIncl = inclusive
	}
}

func (v *View[K, V]) tightenLow(k K, inclusive bool) {
	if !v.hasLow || v.base.cmp(k, v.low) > 0 || (v.base.cmp(k, v.low) == 0 && !inclusive) {
		v.hasLow = true
		v.low = k
		v.lowIncl = inclusive
	}
}

// inBounds reports whether key falls within v's low/high bounds.
func (v *View[K, V]) inBounds(key K) bool {
	if v.hasLow {
		c := v.base.cmp(key, v.low)
		if c < 0 || (c == 0 && !v.lowIncl) {
			return false
		}
	}

	if v.hasHigh {
		c := v.base.cmp(key, v.high)
		if c > 0 || (c == 0 && !v.highIncl) {
			return false
		}
	}

	return true
}

// FirstEntry returns the smallest entry in v's bounds.
func (v *View[K, V]) FirstEntry() (Entry[K, V], bool) {
	var start *node[K, V]

	if v.hasLow {
		if e, ok := v.base.ceilingNode(v.low, v.lowIncl); ok {
			start = e
		}
	} else if v.base.root != nil {
		start = minimum(v.base.root)
	}

	for start != nil {
		if !v.inBounds(start.key) {
			return Entry[K, V]{}, false
		}

		return entryOf(start), true
	}

	return Entry[K, V]{}, false
}

// LastEntry returns the largest entry in v's bounds.
func (v *View[K, V]) LastEntry() (Entry[K, V], bool) {
	var end *node[K, V]

	if v.hasHigh {
		if e, ok := v.base.floorNode(v.high, v.highIncl); ok {
			end = e
		}
	} else if v.base.root != nil {
		end = maximum(v.base.root)
	}

	for end != nil {
		if !v.inBounds(end.key) {
			return Entry[K, V]{}, false
		}

		return entryOf(end), true
	}

	return Entry[K, V]{}, false
}

// FloorEntry returns the greatest in-bounds entry with key <= key.
func (v *View[K, V]) FloorEntry(key K) (Entry[K, V], bool) {
	n, ok := v.base.floorNode(key, true)
	for ok && !v.inBounds(n.key) {
		if v.aboveHigh(n.key) {
			n = predecessor(n)
			ok = n != nil

			continue
		}

		return Entry[K, V]{}, false
	}

	if !ok {
		return Entry[K, V]{}, false
	}

	return entryOf(n), true
}

// CeilingEntry returns the smallest in-bounds entry with key >= key.
func (v *View[K, V]) CeilingEntry(key K) (Entry[K, V], bool) {
	n, ok := v.base.ceilingNode(key, true)
	for ok && !v.inBounds(n.key) {
		if v.belowLow(n.key) {
			n = successor(n)
			ok = n != nil

			continue
		}

		return Entry[K, V]{}, false
	}

	if !ok {
		return Entry[K, V]{}, false
	}

	return entryOf(n), true
}

// aboveHigh reports whether key is excluded from v because it sits at or
// past the high bound, meaning a predecessor might still qualify.
func (v *View[K, V]) aboveHigh(key K) bool {
	if !v.hasHigh {
		return false
	}

	c := v.base.cmp(key, v.high)

	return c > 0 || (c == 0 && !v.highIncl)
}

// belowLow reports whether key is excluded from v because it sits at or
// before the low bound, meaning a successor might still qualify.
func (v *View[K, V]) belowLow(key K) bool {
	if !v.hasLow {
		return false
	}

	c := v.base.cmp(key, v.low)

	return c < 0 || (c == 0 && !v.lowIncl)
}

// LowerEntry returns the greatest in-bounds entry with key strictly < key.
func (v *View[K, V]) LowerEntry(key K) (Entry[K, V], bool) {
	n := v.base.findNode(key)

	var cur *node[K, V]
	if n != nil {
		cur = predecessor(n)
	} else if fl, ok := v.base.floorNode(key, true); ok {
		cur = fl
	}

	for cur != nil && v.aboveHigh(cur.key) {
		cur = predecessor(cur)
	}

	if cur == nil || !v.inBounds(cur.key) {
		return Entry[K, V]{}, false
	}

	return entryOf(cur), true
}

// HigherEntry returns the smallest in-bounds entry with key strictly > key.
func (v *View[K, V]) HigherEntry(key K) (Entry[K, V], bool) {
	n := v.base.findNode(key)

	var cur *node[K, V]
	if n != nil {
		cur = successor(n)
	} else if ce, ok := v.base.ceilingNode(key, true); ok {
		cur = ce
	}

	for cur != nil && v.belowLow(cur.key) {
		cur = successor(cur)
	}

	if cur == nil || !v.inBounds(cur.key) {
		return Entry[K, V]{}, false
	}

	return entryOf(cur), true
}

// Ascend visits every in-bounds entry of v in ascending key order, unless v
// is reversed, in which case it visits them in descending order. This
// matches the descendingMap contract: same entries, opposite iteration.
func (v *View[K, V]) Ascend(fn func(Entry[K, V]) bool) {
	if v.reversed {
		v.walkDescending(fn)
	} else {
		v.walkAscending(fn)
	}
}

// Descend visits every in-bounds entry of v in the opposite order to Ascend.
func (v *View[K, V]) Descend(fn func(Entry[K, V]) bool) {
	if v.reversed {
		v.walkAscending(fn)
	} else {
		v.walkDescending(fn)
	}
}

func (v *View[K, V]) walkAscending(fn func(Entry[K, V]) bool) {
	var start *node[K, V]

	if v.hasLow {
		start, _ = v.base.ceilingNode(v.low, v.lowIncl)
	} else if v.base.root != nil {
		start = minimum(v.base.root)
	}

	for n := start; n != nil; n = successor(n) {
		if !v.inBounds(n.key) {
			return
		}

		if !fn(entryOf(n)) {
			return
		}
	}
}

func (v *View[K, V]) walkDescending(fn func(Entry[K, V]) bool) {
	var start *node[K, V]

	if v.hasHigh {
		start, _ = v.base.floorNode(v.high, v.highIncl)
	} else if v.base.root != nil {
		start = maximum(v.base.root)
	}

	for n := start; n != nil; n = predecessor(n) {
		if !v.inBounds(n.key) {
			return
		}

		if !fn(entryOf(n)) {
			return
		}
	}
}

// floorNode returns the node with the greatest key <= key (or < key when
// inclusive is false).
func (m *Map[K, V]) floorNode(key K, inclusive bool) (*node[K, V], bool) {
	var best *node[K, V]

	cur := m.root
	for cur != nil {
		c := m.cmp(key, cur.key)

		switch {
		case c == 0:
			if inclusive {
				return cur, true
			}

			cur = cur.left
		case c < 0:
			cur = cur.left
		default:
			best = cur
			cur = cur.right
		}
	}

	return best, best != nil
}

// ceilingNode returns the node with the smallest key >= key (or > key when
// inclusive is false).
func (m *Map[K, V]) ceilingNode(key K, inclusive bool) (*node[K, V], bool) {
	var best *node[K, V]

	cur := m.root
	for cur != nil {
		c := m.cmp(key, cur.key)

		switch {
		case c == 0:
			if inclusive {
				return cur, true
			}

			cur = cur.right
		case c < 0:
			best = cur
			cur = cur.left
		default:
			cur = cur.right
		}
	}

	return best, best != nil
}
