// Package overlap resolves an event's date+time fields into instants and
// tests pairwise interval overlap, used to warn before double-booking.
package overlap

import (
	"time"

	"evcal/internal/model"
)

const dateTimeLayout = "2006-01-02 15:04"

// ParseDateTime combines a strict ISO date (YYYY-MM-DD) and a strict 24h
// time (HH:MM) into a local instant. Any deviation — wrong separators, empty
// strings, malformed components — yields the zero time sentinel, against
// which every comparison is false.
func ParseDateTime(dateStr, timeStr string) time.Time {
	// time.Parse tolerates a single-digit hour, so pin the exact widths first.
	if len(dateStr) != len("2006-01-02") || len(timeStr) != len("15:04") {
		return time.Time{}
	}
	t, err := time.ParseInLocation(dateTimeLayout, dateStr+" "+timeStr, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// EventRange resolves an event into its start/end instant pair. Either
// endpoint may be the invalid sentinel when the source fields are malformed.
func EventRange(e model.Event) model.DateRange {
	return model.DateRange{
		Start: ParseDateTime(e.Date, e.StartTime),
		End:   ParseDateTime(e.Date, e.EndTime),
	}
}

// Overlaps reports whether the two events occupy intersecting time windows.
// Intervals are half-open: an event ending exactly when another starts does
// not overlap it. Events with unresolvable instants never overlap anything.
func Overlaps(a, b model.Event) bool {
	ra, rb := EventRange(a), EventRange(b)
	if !ra.Valid() || !rb.Valid() {
		return false
	}
	return ra.Start.Before(rb.End) && rb.Start.Before(ra.End)
}

// FindOverlapping returns every event in events whose window intersects the
// candidate's, preserving input order. The candidate itself is excluded by
// id so an edit-in-place is not reported against its own stored version.
func FindOverlapping(candidate model.Event, events []model.Event) []model.Event {
	out := []model.Event{}
	for _, e := range events {
		if e.ID == candidate.ID {
			continue
		}
		if Overlaps(candidate, e) {
			out = append(out, e)
		}
	}
	return out
}
