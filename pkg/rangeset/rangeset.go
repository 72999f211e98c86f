package rangeset

// RangeSet is the contract shared by TreeRangeSet and its two live views,
// ComplementView and SubRangeSetView. Every method here must behave as
// described in terms of the ranges returned by AsRanges, whether or not the
// receiver actually stores them.
type RangeSet[T any] interface {
	// Contains reports whether v lies in some range of the set.
	Contains(v T) bool
	// RangeContaining returns the stored range containing v, if any.
	RangeContaining(v T) (Range[T], bool)
	// Encloses reports whether some range of the set encloses r.
	Encloses(r Range[T]) bool
	// EnclosesAll reports whether every range of other is enclosed by some
	// range of the set.
	EnclosesAll(other RangeSet[T]) bool
	// Span returns the smallest range enclosing every range in the set, or
	// ErrEmptyRangeSet if the set has no ranges.
	Span() (Range[T], error)
	// IsEmpty reports whether the set has no ranges.
	IsEmpty() bool
	// AsRanges returns the set's ranges in ascending order, coalesced and
	// disjoint.
	AsRanges() []Range[T]

	// Add inserts r, coalescing it with any connected ranges already
	// present.
	Add(r Range[T]) error
	// Remove deletes every value of r from the set, splitting or trimming
	// ranges as needed.
	Remove(r Range[T]) error
	// AddAll adds every range of other.
	AddAll(other RangeSet[T]) error
	// RemoveAll removes every range of other.
	RemoveAll(other RangeSet[T]) error

	// Complement returns a live view of the values not in the set.
	Complement() RangeSet[T]
	// SubRangeSet returns a live view restricted to window.
	SubRangeSet(window Range[T]) RangeSet[T]
}
