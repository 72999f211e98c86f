// Package rangeset implements a mutable set of disjoint, non-empty,
// maximally-coalesced ranges over a totally ordered element type, plus two
// live views over it: a complement view and a windowed sub-range view. Both
// views satisfy the same RangeSet contract as the set they are derived
// from, recursively.
//
// The backing store is a navigable map from each range's lower cut to the
// range itself (see pkg/cut for the cut algebra and internal/omap for the
// navigable map), generalizing the pointer-based red-black tree used
// elsewhere in this module to this package's own key and value types.
package rangeset

import (
	"github.com/baratali/rangeset/internal/omap"
	"github.com/baratali/rangeset/pkg/cut"
)

// TreeRangeSet is a RangeSet backed by a red-black tree of coalesced
// ranges, keyed by lower cut.
type TreeRangeSet[T any] struct {
	cmp     Comparator[T]
	byLower *omap.Map[cut.Cut[T], Range[T]]
}

// New returns an empty TreeRangeSet ordered by cmp.
func New[T any](cmp Comparator[T]) *TreeRangeSet[T] {
	return &TreeRangeSet[T]{
		cmp:     cmp,
		byLower: omap.New[cut.Cut[T], Range[T]](cutComparator(cmp)),
	}
}

// From returns a new TreeRangeSet containing every range of other.
func From[T any](cmp Comparator[T], other RangeSet[T]) (*TreeRangeSet[T], error) {
	s := New(cmp)
	if err := s.AddAll(other); err != nil {
		return nil, err
	}

	return s, nil
}

func cutComparator[T any](cmp Comparator[T]) omap.Comparator[cut.Cut[T]] {
	return func(a, b cut.Cut[T]) int {
		return cut.Compare(cmp, a, b)
	}
}

// Contains reports whether v lies in some stored range.
func (s *TreeRangeSet[T]) Contains(v T) bool {
	r, ok := s.RangeContaining(v)

	return ok && r.Contains(s.cmp, v)
}

// RangeContaining returns the stored range containing v, if any.
func (s *TreeRangeSet[T]) RangeContaining(v T) (Range[T], bool) {
	e, ok := s.byLower.FloorEntry(cut.BelowValue(v))
	if !ok || !e.Val.Contains(s.cmp, v) {
		return Range[T]{}, false
	}

	return e.Val, true
}

// Encloses reports whether some stored range encloses r.
func (s *TreeRangeSet[T]) Encloses(r Range[T]) bool {
	e, ok := s.byLower.FloorEntry(r.lower)

	return ok && e.Val.Encloses(s.cmp, r)
}

// EnclosesAll reports whether every range of other is enclosed by some
// range of s.
func (s *TreeRangeSet[T]) EnclosesAll(other RangeSet[T]) bool {
	return enclosesAll[T](s, other)
}

// Span returns the smallest range enclosing every stored range.
func (s *TreeRangeSet[T]) Span() (Range[T], error) {
	first, ok := s.byLower.FirstEntry()
	if !ok {
		return Range[T]{}, ErrEmptyRangeSet
	}

	last, _ := s.byLower.LastEntry()

	return Range[T]{lower: first.Val.lower, upper: last.Val.upper}, nil
}

// IsEmpty reports whether s has no stored ranges.
func (s *TreeRangeSet[T]) IsEmpty() bool {
	return s.byLower.Len() == 0
}

// AsRanges returns the stored ranges in ascending order.
func (s *TreeRangeSet[T]) AsRanges() []Range[T] {
	out := make([]Range[T], 0, s.byLower.Len())

	s.byLower.Ascend(func(e omap.Entry[cut.Cut[T], Range[T]]) bool {
		out = append(out, e.Val)

		return true
	})

	return out
}

// Add inserts r, coalescing it with any range already present that it
// connects to and removing every range it subsumes.
func (s *TreeRangeSet[T]) Add(r Range[T]) error {
	if r.IsEmpty(s.cmp) {
		return nil
	}

	lower, upper := r.lower, r.upper

	if below, ok := s.byLower.LowerEntry(lower); ok && cut.Compare(s.cmp, below.Val.upper, lower) >= 0 {
		if cut.Compare(s.cmp, below.Val.upper, upper) >= 0 {
			upper = below.Val.upper
		}

		lower = below.Val.lower
	}

	if under, ok := s.byLower.FloorEntry(upper); ok && cut.Compare(s.cmp, under.Val.upper, upper) >= 0 {
		upper = under.Val.upper
	}

	s.deleteRange(lower, upper)
	s.putOrRemove(Range[T]{lower: lower, upper: upper})

	return nil
}

// Remove deletes every value of r from s, trimming or splitting the ranges
// it overlaps.
func (s *TreeRangeSet[T]) Remove(r Range[T]) error {
	if r.IsEmpty(s.cmp) {
		return nil
	}

	if below, ok := s.byLower.LowerEntry(r.lower); ok && cut.Compare(s.cmp, below.Val.upper, r.lower) >= 0 {
		if cut.Compare(s.cmp, below.Val.upper, r.upper) >= 0 {
			s.putOrRemove(Range[T]{lower: r.upper, upper: below.Val.upper})
		}

		s.putOrRemove(Range[T]{lower: below.Val.lower, upper: r.lower})
	}

	if under, ok := s.byLower.FloorEntry(r.upper); ok && cut.Compare(s.cmp, under.Val.upper, r.upper) >= 0 {
		s.putOrRemove(Range[T]{lower: r.upper, upper: under.Val.upper})
	}

	s.deleteRange(r.lower, r.upper)

	return nil
}

// deleteRange removes every stored range whose lower cut lies in the
// half-open interval [lower, upper) of cuts.
func (s *TreeRangeSet[T]) deleteRange(lower, upper cut.Cut[T]) {
	var toDelete []cut.Cut[T]

	v := s.byLower.TailMap(lower, true).HeadMap(upper, false)
	v.Ascend(func(e omap.Entry[cut.Cut[T], Range[T]]) bool {
		toDelete = append(toDelete, e.Key)

		return true
	})

	for _, k := range toDelete {
		s.byLower.Delete(k)
	}
}

// putOrRemove stores r under its own lower cut, or deletes any entry at
// that key when r turns out to be empty.
func (s *TreeRangeSet[T]) putOrRemove(r Range[T]) {
	if r.IsEmpty(s.cmp) {
		s.byLower.Delete(r.lower)

		return
	}

	s.byLower.Put(r.lower, r)
}

// AddAll adds every range of other.
func (s *TreeRangeSet[T]) AddAll(other RangeSet[T]) error {
	for _, r := range other.AsRanges() {
		if err := s.Add(r); err != nil {
			return err
		}
	}

	return nil
}

// RemoveAll removes every range of other.
func (s *TreeRangeSet[T]) RemoveAll(other RangeSet[T]) error {
	for _, r := range other.AsRanges() {
		if err := s.Remove(r); err != nil {
			return err
		}
	}

	return nil
}

// Complement returns a live view of the values not in s.
func (s *TreeRangeSet[T]) Complement() RangeSet[T] {
	return newComplementView[T](s, s.cmp)
}

// SubRangeSet returns a live view of s restricted to window.
func (s *TreeRangeSet[T]) SubRangeSet(window Range[T]) RangeSet[T] {
	return newSubRangeSetView[T](s, window, s.cmp)
}

// Equal reports whether s and other have the same ordered sequence of
// ranges.
func (s *TreeRangeSet[T]) Equal(other RangeSet[T]) bool {
	a, b := s.AsRanges(), other.AsRanges()
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equal(s.cmp, b[i]) {
			return false
		}
	}

	return true
}

// String renders s's current ranges for diagnostics.
func (s *TreeRangeSet[T]) String() string {
	return rangesString(s.AsRanges())
}
