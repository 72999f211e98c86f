package rangeset

import "errors"

// ErrInvalidRange is returned when a Range constructor is asked to build a
// range whose lower cut would sort above its upper cut.
var ErrInvalidRange = errors.New("rangeset: invalid range: lower bound above upper bound")

// ErrEmptyRangeSet is returned by Span when the range set has no ranges to
// span.
var ErrEmptyRangeSet = errors.New("rangeset: span of empty range set")

// ErrOutsideWindow is returned by a SubRangeSetView's Add when the supplied
// range is not enclosed by the view's window.
var ErrOutsideWindow = errors.New("rangeset: range not enclosed by sub-range window")
