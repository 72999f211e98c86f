package rangeset

import (
	"github.com/baratali/rangeset/internal/omap"
	"github.com/baratali/rangeset/pkg/cut"
)

// UpperEntry is one entry of a RangesByUpperBound index: a stored range
// keyed by its own upper cut rather than its lower cut.
type UpperEntry[T any] struct {
	Key   cut.Cut[T]
	Range Range[T]
}

// RangesByUpperBound is the navigable view over TreeRangeSet's storage
// described in the design as a re-keying of the same nodes rather than a
// second tree: because stored ranges are disjoint, the order induced by
// upper cut agrees with the order induced by lower cut, so every query here
// is answered by walking the lower-keyed tree and comparing against each
// node's upper cut instead of its key.
type RangesByUpperBound[T any] struct {
	cmp Comparator[T]
	m   *omap.Map[cut.Cut[T], Range[T]]
}

// RangesByUpperBound returns the by-upper-cut navigable view over s.
func (s *TreeRangeSet[T]) RangesByUpperBound() *RangesByUpperBound[T] {
	return &RangesByUpperBound[T]{cmp: s.cmp, m: s.byLower}
}

func upperKey[T any](r Range[T]) cut.Cut[T] { return r.upper }

func toUpperEntry[T any](e omap.Entry[cut.Cut[T], Range[T]]) UpperEntry[T] {
	return UpperEntry[T]{Key: e.Val.upper, Range: e.Val}
}

// FirstEntry returns the entry with the smallest upper cut.
func (b *RangesByUpperBound[T]) FirstEntry() (UpperEntry[T], bool) {
	e, ok := b.m.FirstEntry()
	if !ok {
		return UpperEntry[T]{}, false
	}

	return toUpperEntry(e), true
}

// LastEntry returns the entry with the greatest upper cut.
func (b *RangesByUpperBound[T]) LastEntry() (UpperEntry[T], bool) {
	e, ok := b.m.LastEntry()
	if !ok {
		return UpperEntry[T]{}, false
	}

	return toUpperEntry(e), true
}

// FloorEntry returns the entry with the greatest upper cut <= k.
func (b *RangesByUpperBound[T]) FloorEntry(k cut.Cut[T]) (UpperEntry[T], bool) {
	e, ok := b.m.FloorByKey(k, upperKey[T], true)
	if !ok {
		return UpperEntry[T]{}, false
	}

	return toUpperEntry(e), true
}

// CeilingEntry returns the entry with the smallest upper cut >= k.
func (b *RangesByUpperBound[T]) CeilingEntry(k cut.Cut[T]) (UpperEntry[T], bool) {
	e, ok := b.m.CeilingByKey(k, upperKey[T], true)
	if !ok {
		return UpperEntry[T]{}, false
	}

	return toUpperEntry(e), true
}

// LowerEntry returns the entry with the greatest upper cut strictly less
// than k.
func (b *RangesByUpperBound[T]) LowerEntry(k cut.Cut[T]) (UpperEntry[T], bool) {
	e, ok := b.m.LowerByKey(k, upperKey[T])
	if !ok {
		return UpperEntry[T]{}, false
	}

	return toUpperEntry(e), true
}

// HigherEntry returns the entry with the smallest upper cut strictly
// greater than k.
func (b *RangesByUpperBound[T]) HigherEntry(k cut.Cut[T]) (UpperEntry[T], bool) {
	e, ok := b.m.HigherByKey(k, upperKey[T])
	if !ok {
		return UpperEntry[T]{}, false
	}

	return toUpperEntry(e), true
}

// Ascend visits every entry in ascending upper-cut order.
func (b *RangesByUpperBound[T]) Ascend(fn func(UpperEntry[T]) bool) {
	b.m.Ascend(func(e omap.Entry[cut.Cut[T], Range[T]]) bool {
		return fn(toUpperEntry(e))
	})
}

// Descend visits every entry in descending upper-cut order.
func (b *RangesByUpperBound[T]) Descend(fn func(UpperEntry[T]) bool) {
	b.m.Descend(func(e omap.Entry[cut.Cut[T], Range[T]]) bool {
		return fn(toUpperEntry(e))
	})
}

// HeadMap returns entries with upper cut < k (or <= k if inclusive). It
// locates the boundary entry by upper cut, then delegates to a headMap
// keyed by that entry's own lower cut, since the two orders agree.
func (b *RangesByUpperBound[T]) HeadMap(k cut.Cut[T], inclusive bool) *UpperView[T] {
	boundary, ok := b.m.FloorByKey(k, upperKey[T], inclusive)
	if !ok {
		return &UpperView[T]{cmp: b.cmp, base: b.m.HeadMap(cut.BelowAll[T](), false)}
	}

	return &UpperView[T]{cmp: b.cmp, base: b.m.HeadMap(boundary.Key, true)}
}

// TailMap returns entries with upper cut > k (or >= k if inclusive).
func (b *RangesByUpperBound[T]) TailMap(k cut.Cut[T], inclusive bool) *UpperView[T] {
	boundary, ok := b.m.CeilingByKey(k, upperKey[T], inclusive)
	if !ok {
		return &UpperView[T]{cmp: b.cmp, base: b.m.TailMap(cut.AboveAll[T](), false)}
	}

	return &UpperView[T]{cmp: b.cmp, base: b.m.TailMap(boundary.Key, true)}
}

// DescendingMap returns the same entries in descending upper-cut order.
func (b *RangesByUpperBound[T]) DescendingMap() *UpperView[T] {
	return &UpperView[T]{cmp: b.cmp, base: b.m.DescendingMap()}
}

// UpperView is a bounded, possibly-reversed window onto a
// RangesByUpperBound index. Unlike the top-level index, further narrowing
// cannot use the tree's own structure (the backing omap.View exposes no
// projected search), so HeadMap and TailMap locate their boundary by
// scanning the current window instead; FloorEntry and friends do the same,
// so each of these is linear in the number of entries in the window.
type UpperView[T any] struct {
	cmp  Comparator[T]
	base *omap.View[cut.Cut[T], Range[T]]
}

// FirstEntry returns the smallest in-bounds entry by upper cut.
func (v *UpperView[T]) FirstEntry() (UpperEntry[T], bool) {
	e, ok := v.base.FirstEntry()
	if !ok {
		return UpperEntry[T]{}, false
	}

	return toUpperEntry(e), true
}

// LastEntry returns the largest in-bounds entry by upper cut.
func (v *UpperView[T]) LastEntry() (UpperEntry[T], bool) {
	e, ok := v.base.LastEntry()
	if !ok {
		return UpperEntry[T]{}, false
	}

	return toUpperEntry(e), true
}

// Ascend visits every in-bounds entry in ascending upper-cut order, or
// descending if the view has been reversed.
func (v *UpperView[T]) Ascend(fn func(UpperEntry[T]) bool) {
	v.base.Ascend(func(e omap.Entry[cut.Cut[T], Range[T]]) bool {
		return fn(toUpperEntry(e))
	})
}

// Descend visits every in-bounds entry in the order opposite to Ascend.
func (v *UpperView[T]) Descend(fn func(UpperEntry[T]) bool) {
	v.base.Descend(func(e omap.Entry[cut.Cut[T], Range[T]]) bool {
		return fn(toUpperEntry(e))
	})
}

// FloorEntry returns the greatest in-bounds entry with upper cut <= k.
func (v *UpperView[T]) FloorEntry(k cut.Cut[T]) (UpperEntry[T], bool) {
	var (
		found omap.Entry[cut.Cut[T], Range[T]]
		ok    bool
	)

	v.base.Ascend(func(e omap.Entry[cut.Cut[T], Range[T]]) bool {
		if cut.Compare(v.cmp, e.Val.upper, k) > 0 {
			return false
		}

		found, ok = e, true

		return true
	})

	if !ok {
		return UpperEntry[T]{}, false
	}

	return toUpperEntry(found), true
}

// CeilingEntry returns the smallest in-bounds entry with upper cut >= k.
func (v *UpperView[T]) CeilingEntry(k cut.Cut[T]) (UpperEntry[T], bool) {
	var (
		found omap.Entry[cut.Cut[T], Range[T]]
		ok    bool
	)

	v.base.Ascend(func(e omap.Entry[cut.Cut[T], Range[T]]) bool {
		if cut.Compare(v.cmp, e.Val.upper, k) >= 0 {
			found, ok = e, true
		}

		return !ok
	})

	if !ok {
		return UpperEntry[T]{}, false
	}

	return toUpperEntry(found), true
}

// LowerEntry returns the greatest in-bounds entry with upper cut < k.
func (v *UpperView[T]) LowerEntry(k cut.Cut[T]) (UpperEntry[T], bool) {
	var (
		found omap.Entry[cut.Cut[T], Range[T]]
		ok    bool
	)

	v.base.Ascend(func(e omap.Entry[cut.Cut[T], Range[T]]) bool {
		if cut.Compare(v.cmp, e.Val.upper, k) >= 0 {
			return false
		}

		found, ok = e, true

		return true
	})

	if !ok {
		return UpperEntry[T]{}, false
	}

	return toUpperEntry(found), true
}

// HigherEntry returns the smallest in-bounds entry with upper cut > k.
func (v *UpperView[T]) HigherEntry(k cut.Cut[T]) (UpperEntry[T], bool) {
	var (
		found omap.Entry[cut.Cut[T], Range[T]]
		ok    bool
	)

	v.base.Ascend(func(e omap.Entry[cut.Cut[T], Range[T]]) bool {
		if cut.Compare(v.cmp, e.Val.upper, k) > 0 {
			found, ok = e, true
		}

		return !ok
	})

	if !ok {
		return UpperEntry[T]{}, false
	}

	return toUpperEntry(found), true
}

// HeadMap narrows v to entries with upper cut < k (or <= k if inclusive).
func (v *UpperView[T]) HeadMap(k cut.Cut[T], inclusive bool) *UpperView[T] {
	var (
		boundary cut.Cut[T]
		found    bool
	)

	v.base.Ascend(func(e omap.Entry[cut.Cut[T], Range[T]]) bool {
		c := cut.Compare(v.cmp, e.Val.upper, k)
		if c > 0 || (c == 0 && !inclusive) {
			return false
		}

		boundary, found = e.Key, true

		return true
	})

	if !found {
		return &UpperView[T]{cmp: v.cmp, base: v.base.HeadMap(cut.BelowAll[T](), false)}
	}

	return &UpperView[T]{cmp: v.cmp, base: v.base.HeadMap(boundary, true)}
}

// TailMap narrows v to entries with upper cut > k (or >= k if inclusive).
func (v *UpperView[T]) TailMap(k cut.Cut[T], inclusive bool) *UpperView[T] {
	var (
		boundary cut.Cut[T]
		found    bool
	)

	v.base.Ascend(func(e omap.Entry[cut.Cut[T], Range[T]]) bool {
		c := cut.Compare(v.cmp, e.Val.upper, k)
		if c > 0 || (c == 0 && inclusive) {
			boundary, found = e.Key, true
		}

		return !found
	})

	if !found {
		return &UpperView[T]{cmp: v.cmp, base: v.base.TailMap(cut.AboveAll[T](), false)}
	}

	return &UpperView[T]{cmp: v.cmp, base: v.base.TailMap(boundary, true)}
}

// DescendingMap returns v with ascending and descending traversal swapped.
func (v *UpperView[T]) DescendingMap() *UpperView[T] {
	return &UpperView[T]{cmp: v.cmp, base: v.base.DescendingMap()}
}
