// Package search narrows an event list to the active view window and an
// optional free-text term.
package search

import (
	"strings"
	"time"

	"evcal/internal/dateutil"
	"evcal/internal/model"
)

// View selects the date window used for filtering.
type View string

const (
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// Filter returns the events visible for the given view anchored at ref,
// optionally narrowed by a case-insensitive substring match of term against
// title, description and location. An empty term filters nothing. Input
// order is preserved; events whose dates do not parse fall outside every
// window.
func Filter(events []model.Event, term string, ref time.Time, view View) []model.Event {
	out := []model.Event{}
	for _, e := range events {
		if !inView(e, ref, view) {
			continue
		}
		if term != "" && !matches(e, term) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func inView(e model.Event, ref time.Time, view View) bool {
	d, ok := dateutil.ParseDate(e.Date)
	if !ok {
		return false
	}

	switch view {
	case ViewWeek:
		week := dateutil.WeekDates(ref)
		return dateutil.IsDateInRange(d, week[0], week[6])
	case ViewMonth:
		return d.Year() == ref.Year() && d.Month() == ref.Month()
	default:
		return false
	}
}

func matches(e model.Event, term string) bool {
	needle := strings.ToLower(term)
	for _, field := range []string{e.Title, e.Description, e.Location} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
