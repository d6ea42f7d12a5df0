package date

import (
	"fmt"
	"iter"
)

// Range represents an inclusive range of days: both From and To belong to it.
type Range struct{ From, To Date }

// Year returns the i-th one-year period starting at start: from
// start+i years up to the day before start+i+1 years.
func Year(start Date, i int) Range {
	return Range{From: start.AddYears(i), To: start.AddYears(i + 1).Add(-1)}
}

// Years returns an iterator over n consecutive one-year periods starting at start.
func Years(start Date, n int) iter.Seq2[int, Range] {
	return func(yield func(int, Range) bool) {
		for i := 0; i < n; i++ {
			if !yield(i, Year(start, i)) {
				return
			}
		}
	}
}

// Empty reports whether the range contains no day at all.
func (r Range) Empty() bool { return r.To.Before(r.From) }

// Days returns the number of days in the range, boundaries included.
func (r Range) Days() int {
	if r.Empty() {
		return 0
	}
	return r.To.Sub(r.From) + 1
}

// Intersect returns the days common to r and o. The result is Empty when they
// do not overlap.
func (r Range) Intersect(o Range) Range {
	res := r
	if o.From.After(res.From) {
		res.From = o.From
	}
	if o.To.Before(res.To) {
		res.To = o.To
	}
	return res
}

// String returns "from..to".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
