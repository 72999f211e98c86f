package rangeset

import "github.com/baratali/rangeset/pkg/cut"

// ComplementView is a non-materialized RangeSet representing everything
// not in a backing RangeSet: (-inf, +inf) minus backing. It holds only a
// reference to backing, never a copy, so it reflects every later mutation
// of backing and its own mutations (Add/Remove) reach through to it.
type ComplementView[T any] struct {
	cmp     Comparator[T]
	backing RangeSet[T]
}

func newComplementView[T any](backing RangeSet[T], cmp Comparator[T]) *ComplementView[T] {
	return &ComplementView[T]{cmp: cmp, backing: backing}
}

// Complement returns the original backing set, undoing the view.
func (c *ComplementView[T]) Complement() RangeSet[T] {
	return c.backing
}

// gapAt locates the gap of backing's ranges that point falls in, returning
// its bounds and false if point instead falls inside a backing range.
func (c *ComplementView[T]) gapAt(point cut.Cut[T]) (Range[T], bool) {
	ranges := c.backing.AsRanges()

	lower := cut.BelowAll[T]()
	upper := cut.AboveAll[T]()

	for _, r := range ranges {
		if cut.Compare(c.cmp, r.lower, point) > 0 {
			upper = r.lower

			break
		}

		if cut.Compare(c.cmp, r.upper, point) > 0 {
			return Range[T]{}, false
		}

		lower = r.upper
	}

	return Range[T]{lower: lower, upper: upper}, true
}

// Contains reports whether v falls in a gap of backing.
func (c *ComplementView[T]) Contains(v T) bool {
	_, ok := c.gapAt(cut.BelowValue(v))

	return ok
}

// RangeContaining returns the gap of backing containing v, if any.
func (c *ComplementView[T]) RangeContaining(v T) (Range[T], bool) {
	return c.gapAt(cut.BelowValue(v))
}

// Encloses reports whether q fits entirely within a single gap of backing.
func (c *ComplementView[T]) Encloses(q Range[T]) bool {
	if q.IsEmpty(c.cmp) {
		return true
	}

	gap, ok := c.gapAt(q.lower)
	if !ok {
		return false
	}

	return gap.Encloses(c.cmp, q)
}

// EnclosesAll reports whether every range of other fits within gaps of
// backing.
func (c *ComplementView[T]) EnclosesAll(other RangeSet[T]) bool {
	return enclosesAll[T](c, other)
}

// Span returns the smallest range enclosing every gap of backing.
func (c *ComplementView[T]) Span() (Range[T], error) {
	return spanOf(c.AsRanges())
}

// IsEmpty reports whether backing covers the entire domain, leaving no
// gaps.
func (c *ComplementView[T]) IsEmpty() bool {
	return len(c.AsRanges()) == 0
}

// AsRanges returns the gaps of backing in ascending order: the leading gap
// before its first range if any, a gap between every pair of consecutive
// ranges, and a trailing gap after its last range if any. If backing has no
// ranges, the single range spanning the whole domain is returned.
func (c *ComplementView[T]) AsRanges() []Range[T] {
	backing := c.backing.AsRanges()
	if len(backing) == 0 {
		return []Range[T]{All[T]()}
	}

	out := make([]Range[T], 0, len(backing)+1)

	if !backing[0].lower.IsBelowAll() {
		out = append(out, Range[T]{lower: cut.BelowAll[T](), upper: backing[0].lower})
	}

	for i := 0; i+1 < len(backing); i++ {
		gap := Range[T]{lower: backing[i].upper, upper: backing[i+1].lower}
		if !gap.IsEmpty(c.cmp) {
			out = append(out, gap)
		}
	}

	last := backing[len(backing)-1]
	if !last.upper.IsAboveAll() {
		out = append(out, Range[T]{lower: last.upper, upper: cut.AboveAll[T]()})
	}

	return out
}

// Add inserts r into the complement by removing it from backing.
func (c *ComplementView[T]) Add(r Range[T]) error {
	return c.backing.Remove(r)
}

// Remove deletes r from the complement by adding it to backing.
func (c *ComplementView[T]) Remove(r Range[T]) error {
	return c.backing.Add(r)
}

// AddAll adds every range of other to the complement.
func (c *ComplementView[T]) AddAll(other RangeSet[T]) error {
	for _, r := range other.AsRanges() {
		if err := c.Add(r); err != nil {
			return err
		}
	}

	return nil
}

// RemoveAll removes every range of other from the complement.
func (c *ComplementView[T]) RemoveAll(other RangeSet[T]) error {
	for _, r := range other.AsRanges() {
		if err := c.Remove(r); err != nil {
			return err
		}
	}

	return nil
}

// SubRangeSet returns a live view of the complement restricted to window.
func (c *ComplementView[T]) SubRangeSet(window Range[T]) RangeSet[T] {
	return newSubRangeSetView[T](c, window, c.cmp)
}

// String renders the view's current gaps for diagnostics.
func (c *ComplementView[T]) String() string {
	return rangesString(c.AsRanges())
}
