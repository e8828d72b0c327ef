package fasting

import "time"

// Read-only query surface for the content filter. The filter decides
// whether to suppress food-related content while a fast is in progress;
// it consumes session state and can never mutate it.

// IsActiveFasting reports whether the record represents a fast that is
// currently running (not paused, not terminal).
func IsActiveFasting(r *Record) bool {
	return r.State == StateActive
}

// FilterQuery is a snapshot of the fields the content filter consults.
type FilterQuery struct {
	Active   bool
	Progress float64
}

// QueryForFilter captures the filter-relevant view of a record as of
// now.
func QueryForFilter(r *Record, now time.Time) FilterQuery {
	return FilterQuery{
		Active:   IsActiveFasting(r),
		Progress: ProgressFraction(r, now),
	}
}
