package rangeset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// conformanceDomainLo and conformanceDomainHi bound the small int domain
// QUERY_RANGES is generated over. probeLo/probeHi extend a little past the
// domain on each side so unbounded cuts (LessThan/AtLeast/All, ...) are
// also exercised beyond every finite range in the corpus.
const (
	conformanceDomainLo = -2
	conformanceDomainHi = 2
	probeLo             = conformanceDomainLo - 1
	probeHi             = conformanceDomainHi + 1
)

// queryRanges builds the QUERY_RANGES-style corpus: every closed, open,
// closed-open, and open-closed range over each pair of domain values, every
// half-unbounded range anchored at each domain value, and the unbounded
// range, generated rather than enumerated by hand.
func queryRanges(t *testing.T) []Range[int] {
	t.Helper()

	var out []Range[int]

	for a := conformanceDomainLo; a <= conformanceDomainHi; a++ {
		out = append(out, LessThan(a), AtMost(a), GreaterThan(a), AtLeast(a))

		for b := a; b <= conformanceDomainHi; b++ {
			closed, err := Closed(intCmp, a, b)
			require.NoError(t, err)
			out = append(out, closed)

			open, err := Of(intCmp, a, Open, b, Open)
			require.NoError(t, err)
			out = append(out, open)

			closedOpen, err := ClosedOpen(intCmp, a, b)
			require.NoError(t, err)
			out = append(out, closedOpen)

			openClosed, err := OpenClosed(intCmp, a, b)
			require.NoError(t, err)
			out = append(out, openClosed)
		}
	}

	out = append(out, All[int]())

	return out
}

// conformanceWindows is the small set of windows each corpus range is
// restricted against via SubRangeSet.
func conformanceWindows(t *testing.T) []Range[int] {
	t.Helper()

	bounded, err := Closed(intCmp, -1, 1)
	require.NoError(t, err)

	halfOpen, err := ClosedOpen(intCmp, 0, conformanceDomainHi)
	require.NoError(t, err)

	return []Range[int]{bounded, halfOpen, All[int]()}
}

// TestConformance_SingletonSetAgainstReference checks a singleton range
// set's Contains, Encloses, Complement, and SubRangeSet against a
// brute-force reference model (r.Contains directly) for every range in
// QUERY_RANGES and every probe value in the extended domain, porting the
// exhaustive bound-type-combination corner testing the original TreeRangeSet
// conformance suite runs under the name QUERY_RANGES.
func TestConformance_SingletonSetAgainstReference(t *testing.T) {
	t.Parallel()

	ranges := queryRanges(t)
	windows := conformanceWindows(t)

	for i, r := range ranges {
		r := r

		t.Run(fmt.Sprintf("range_%d_%s", i, r.String()), func(t *testing.T) {
			t.Parallel()

			set := New[int](intCmp)
			require.NoError(t, set.Add(r))

			complement := set.Complement()

			for x := probeLo; x <= probeHi; x++ {
				want := r.Contains(intCmp, x)

				assert.Equal(t, want, set.Contains(x), "Contains(%d)", x)
				assert.Equal(t, !want, complement.Contains(x), "complement.Contains(%d)", x)
			}

			assert.True(t, set.Encloses(r), "set encloses the range it was built from")

			for wi, w := range windows {
				sub := set.SubRangeSet(w)

				for x := probeLo; x <= probeHi; x++ {
					want := r.Contains(intCmp, x) && w.Contains(intCmp, x)
					assert.Equal(t, want, sub.Contains(x), "window %d: SubRangeSet.Contains(%d)", wi, x)
				}
			}
		})
	}
}

// TestConformance_ComplementDoubleBack verifies (P5): complementing a
// singleton range set twice reproduces its original ranges, for every
// range in QUERY_RANGES.
func TestConformance_ComplementDoubleBack(t *testing.T) {
	t.Parallel()

	for i, r := range queryRanges(t) {
		r := r

		t.Run(fmt.Sprintf("range_%d_%s", i, r.String()), func(t *testing.T) {
			t.Parallel()

			set := New[int](intCmp)
			require.NoError(t, set.Add(r))

			back := set.Complement().Complement()

			assert.True(t, set.Equal(back), "double complement should reproduce the original ranges")
		})
	}
}
