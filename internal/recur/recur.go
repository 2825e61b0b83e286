// Package recur expands a stored event's repeat rule into the concrete
// single-day occurrences that fall inside a time window.
package recur

import (
	"time"

	"github.com/teambition/rrule-go"

	"evcal/internal/dateutil"
	"evcal/internal/log"
	"evcal/internal/model"
	"evcal/internal/overlap"
)

// maxOccurrencesPerEvent caps expansion so a rule without an end date cannot
// flood a wide window.
const maxOccurrencesPerEvent = 1000

// Expand returns the occurrences of e whose start instants fall within
// [rangeStart, rangeEnd]. A non-repeating event yields itself when its date
// is inside the window. Expanded occurrences keep every field of the base
// event except Date, which is rewritten per occurrence, and ID, which gains
// a "-<date>" suffix so each instance stays addressable while remaining
// traceable to its base event.
func Expand(e model.Event, rangeStart, rangeEnd time.Time) []model.Event {
	out := []model.Event{}

	if e.Repeat.Type == model.RepeatNone || e.Repeat.Type == "" {
		d, ok := dateutil.ParseDate(e.Date)
		if ok && dateutil.IsDateInRange(d, rangeStart, rangeEnd) {
			out = append(out, e)
		}
		return out
	}

	freq, ok := frequency(e.Repeat.Type)
	if !ok {
		log.Debug("recur: unknown repeat type, skipping", "id", e.ID, "type", string(e.Repeat.Type))
		return out
	}

	start := overlap.ParseDateTime(e.Date, e.StartTime)
	if start.IsZero() {
		return out
	}

	interval := e.Repeat.Interval
	if interval < 1 {
		interval = 1
	}

	opt := rrule.ROption{
		Freq:     freq,
		Interval: interval,
		Dtstart:  start,
	}
	if e.Repeat.EndDate != "" {
		if until, parsed := dateutil.ParseDate(e.Repeat.EndDate); parsed {
			// EndDate is inclusive: allow occurrences through its last second.
			opt.Until = until.AddDate(0, 0, 1).Add(-time.Second)
		}
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		log.Error("recur: failed to build rule", err, "id", e.ID)
		return out
	}

	times := rule.Between(rangeStart, rangeEnd, true)
	if len(times) > maxOccurrencesPerEvent {
		log.Debug("recur: occurrence cap hit", "id", e.ID, "cap", maxOccurrencesPerEvent)
		times = times[:maxOccurrencesPerEvent]
	}

	for _, occ := range times {
		inst := e
		inst.Date = dateutil.FormatDate(occ)
		inst.ID = e.ID + "-" + inst.Date
		out = append(out, inst)
	}
	return out
}

// ExpandAll expands every event in the list over the same window,
// preserving the relative order of base events.
func ExpandAll(events []model.Event, rangeStart, rangeEnd time.Time) []model.Event {
	out := []model.Event{}
	for _, e := range events {
		out = append(out, Expand(e, rangeStart, rangeEnd)...)
	}
	return out
}

func frequency(t model.RepeatType) (rrule.Frequency, bool) {
	switch t {
	case model.RepeatDaily:
		return rrule.DAILY, true
	case model.RepeatWeekly:
		return rrule.WEEKLY, true
	case model.RepeatMonthly:
		return rrule.MONTHLY, true
	default:
		return rrule.DAILY, false
	}
}
