package rangeset

import (
	"fmt"

	"github.com/baratali/rangeset/pkg/cut"
)

// Comparator reports the sign of a-b: negative if a<b, zero if a==b,
// positive if a>b. Every Range and RangeSet in this package is
// parameterized by one, rather than requiring T to satisfy cmp.Ordered,
// since the element type is only assumed to carry a total order. It is an
// alias for cut.Comparator so values pass freely between the two packages.
type Comparator[T any] = cut.Comparator[T]

// BoundType distinguishes an open (exclusive) endpoint from a closed
// (inclusive) one.
type BoundType int8

const (
	Open BoundType = iota
	Closed
)

// Range is an interval over T represented as a pair of cuts, following
// cut.Cut's endpoint algebra rather than a pair of T values with separate
// inclusivity flags. A Range is empty iff its lower and upper cuts are
// equal; it carries no comparator of its own, so every method that needs
// to order values takes one explicitly.
type Range[T any] struct {
	lower cut.Cut[T]
	upper cut.Cut[T]
}

// Lower returns r's lower cut.
func (r Range[T]) Lower() cut.Cut[T] { return r.lower }

// Upper returns r's upper cut.
func (r Range[T]) Upper() cut.Cut[T] { return r.upper }

// newRange builds a Range from a pair of cuts, failing if lower sorts above
// upper under cmp.
func newRange[T any](cmp Comparator[T], lower, upper cut.Cut[T]) (Range[T], error) {
	if cut.Compare(cmp, lower, upper) > 0 {
		return Range[T]{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, lower, upper)
	}

	return Range[T]{lower: lower, upper: upper}, nil
}

// FromCuts builds a Range directly from a pair of cuts, for callers that
// already hold cut values (such as the views in this package).
func FromCuts[T any](cmp Comparator[T], lower, upper cut.Cut[T]) (Range[T], error) {
	return newRange(cmp, lower, upper)
}

// Closed returns the range [a, b].
func Closed[T any](cmp Comparator[T], a, b T) (Range[T], error) {
	return newRange(cmp, cut.BelowValue(a), cut.AboveValue(b))
}

// Open returns the range (a, b).
func Open[T any](cmp Comparator[T], a, b T) (Range[T], error) {
	return newRange(cmp, cut.AboveValue(a), cut.BelowValue(b))
}

// ClosedOpen returns the range [a, b).
func ClosedOpen[T any](cmp Comparator[T], a, b T) (Range[T], error) {
	return newRange(cmp, cut.BelowValue(a), cut.BelowValue(b))
}

// OpenClosed returns the range (a, b].
func OpenClosed[T any](cmp Comparator[T], a, b T) (Range[T], error) {
	return newRange(cmp, cut.AboveValue(a), cut.AboveValue(b))
}

// Singleton returns the range [v, v], containing exactly v.
func Singleton[T any](cmp Comparator[T], v T) (Range[T], error) {
	return Closed(cmp, v, v)
}

// LessThan returns the range (-inf, v).
func LessThan[T any](v T) Range[T] {
	return Range[T]{lower: cut.BelowAll[T](), upper: cut.BelowValue(v)}
}

// AtMost returns the range (-inf, v].
func AtMost[T any](v T) Range[T] {
	return Range[T]{lower: cut.BelowAll[T](), upper: cut.AboveValue(v)}
}

// GreaterThan returns the range (v, +inf).
func GreaterThan[T any](v T) Range[T] {
	return Range[T]{lower: cut.AboveValue(v), upper: cut.AboveAll[T]()}
}

// AtLeast returns the range [v, +inf).
func AtLeast[T any](v T) Range[T] {
	return Range[T]{lower: cut.BelowValue(v), upper: cut.AboveAll[T]()}
}

// All returns the range spanning the entire domain, (-inf, +inf).
func All[T any]() Range[T] {
	return Range[T]{lower: cut.BelowAll[T](), upper: cut.AboveAll[T]()}
}

// DownTo returns [v, +inf) when t is Closed, or (v, +inf) when t is Open.
func DownTo[T any](v T, t BoundType) Range[T] {
	if t == Closed {
		return AtLeast(v)
	}

	return GreaterThan(v)
}

// UpTo returns (-inf, v] when t is Closed, or (-inf, v) when t is Open.
func UpTo[T any](v T, t BoundType) Range[T] {
	if t == Closed {
		return AtMost(v)
	}

	return LessThan(v)
}

// Of returns the range between a and b, with the endpoint inclusivity of
// each side given independently by lowerType and upperType. Of(v, Open, v,
// Open) is the canonical empty range rather than an error (the Open
// constructor itself still rejects (v, v)): its cuts (AboveValue(v),
// BelowValue(v)) sort with lower above upper under cut.Compare's tie-break,
// which would otherwise trip newRange's ordering check.
func Of[T any](cmp Comparator[T], a T, lowerType BoundType, b T, upperType BoundType) (Range[T], error) {
	if lowerType == Open && upperType == Open && cmp(a, b) == 0 {
		return Range[T]{lower: cut.BelowValue(a), upper: cut.BelowValue(a)}, nil
	}

	lower := cut.AboveValue(a)
	if lowerType == Closed {
		lower = cut.BelowValue(a)
	}

	upper := cut.BelowValue(b)
	if upperType == Closed {
		upper = cut.AboveValue(b)
	}

	return newRange(cmp, lower, upper)
}

// IsEmpty reports whether r contains no values, i.e. its cuts are equal.
func (r Range[T]) IsEmpty(cmp Comparator[T]) bool {
	return cut.Equal(cmp, r.lower, r.upper)
}

// Contains reports whether x lies within r.
func (r Range[T]) Contains(cmp Comparator[T], x T) bool {
	return cut.IsAbove(cmp, r.lower, x) && cut.IsBelow(cmp, r.upper, x)
}

// Encloses reports whether every value in other also lies in r.
func (r Range[T]) Encloses(cmp Comparator[T], other Range[T]) bool {
	return cut.Compare(cmp, r.lower, other.lower) <= 0 && cut.Compare(cmp, other.upper, r.upper) <= 0
}

// IsConnected reports whether r and other can be joined into a single range
// without a gap between them; touching half-open ranges count as connected.
func (r Range[T]) IsConnected(cmp Comparator[T], other Range[T]) bool {
	return cut.Compare(cmp, r.lower, other.upper) <= 0 && cut.Compare(cmp, other.lower, r.upper) <= 0
}

// Intersection returns the overlap of r and other. The result is only
// meaningful when IsConnected(cmp, other) is true; the caller is expected to
// check that first, matching the way this package's views use it.
func (r Range[T]) Intersection(cmp Comparator[T], other Range[T]) Range[T] {
	lower := r.lower
	if cut.Compare(cmp, other.lower, lower) > 0 {
		lower = other.lower
	}

	upper := r.upper
	if cut.Compare(cmp, other.upper, upper) < 0 {
		upper = other.upper
	}

	return Range[T]{lower: lower, upper: upper}
}

// Span returns the smallest range enclosing both r and other.
func (r Range[T]) Span(cmp Comparator[T], other Range[T]) Range[T] {
	lower := r.lower
	if cut.Compare(cmp, other.lower, lower) < 0 {
		lower = other.lower
	}

	upper := r.upper
	if cut.Compare(cmp, other.upper, upper) > 0 {
		upper = other.upper
	}

	return Range[T]{lower: lower, upper: upper}
}

// Equal reports whether r and other denote the same interval.
func (r Range[T]) Equal(cmp Comparator[T], other Range[T]) bool {
	return cut.Equal(cmp, r.lower, other.lower) && cut.Equal(cmp, r.upper, other.upper)
}

// String renders r for diagnostics as its two cuts, e.g.
// "below(1)..below(4)" for [1, 4).
func (r Range[T]) String() string {
	return r.lower.String() + ".." + r.upper.String()
}
