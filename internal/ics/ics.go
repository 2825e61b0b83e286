// Package ics converts between the event model and iCalendar payloads so an
// event set can be seeded from, or handed to, any calendar tool.
package ics

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"evcal/internal/dateutil"
	appLog "evcal/internal/log"
	"evcal/internal/model"
	"evcal/internal/overlap"
)

const wallClock = "15:04"

// Import parses an iCalendar payload into events. Malformed VEVENTs are
// logged and skipped; the rest of the payload still imports.
func Import(body []byte) ([]model.Event, error) {
	if len(body) == 0 {
		return nil, errors.New("empty ICS body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}

	events := make([]model.Event, 0)
	for _, ve := range cal.Events() {
		e, perr := importVEvent(ve)
		if perr != nil {
			appLog.Error("ics vevent import failed", perr)
			continue
		}
		events = append(events, e)
	}

	appLog.Info("ics import completed", "event_count", len(events))
	return events, nil
}

// ImportFile imports the iCalendar file at path.
func ImportFile(path string) ([]model.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ics file: %w", err)
	}
	return Import(data)
}

func importVEvent(ve *ical.VEvent) (model.Event, error) {
	var e model.Event

	uid := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uid == nil || uid.Value == "" {
		return e, errors.New("missing UID")
	}
	e.ID = uid.Value

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		e.Title = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		e.Description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		e.Location = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyCategories); p != nil {
		e.Category = p.Value
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return e, fmt.Errorf("DTSTART: %w", err)
	}
	end, err := ve.GetEndAt()
	if err != nil {
		return e, fmt.Errorf("DTEND: %w", err)
	}

	start = start.In(time.Local)
	end = end.In(time.Local)

	// Multi-day spans are not modeled; both times land on the start date.
	e.Date = dateutil.FormatDate(start)
	e.StartTime = start.Format(wallClock)
	e.EndTime = end.Format(wallClock)

	e.Repeat = model.Repeat{Type: model.RepeatNone}
	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		e.Repeat = parseRepeat(p.Value)
	}

	return e, nil
}

// parseRepeat maps a simple RRULE (FREQ/INTERVAL/UNTIL) onto the repeat
// model. Frequencies outside daily/weekly/monthly come back as none.
func parseRepeat(raw string) model.Repeat {
	r := model.Repeat{Type: model.RepeatNone}

	for _, part := range strings.Split(raw, ";") {
		key, value, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		switch strings.ToUpper(strings.TrimSpace(key)) {
		case "FREQ":
			switch strings.ToUpper(value) {
			case "DAILY":
				r.Type = model.RepeatDaily
			case "WEEKLY":
				r.Type = model.RepeatWeekly
			case "MONTHLY":
				r.Type = model.RepeatMonthly
			}
		case "INTERVAL":
			if n, err := strconv.Atoi(value); err == nil {
				r.Interval = n
			}
		case "UNTIL":
			// Accept both DATE (20250618) and DATE-TIME (20250618T235959Z).
			if len(value) >= 8 {
				if t, err := time.ParseInLocation("20060102", value[:8], time.Local); err == nil {
					r.EndDate = dateutil.FormatDate(t)
				}
			}
		}
	}

	if r.Type != model.RepeatNone && r.Interval < 1 {
		r.Interval = 1
	}
	return r
}

// Export serializes events to an iCalendar payload. Events whose date or
// times do not resolve are logged and skipped.
func Export(events []model.Event) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)

	for _, e := range events {
		rng := overlap.EventRange(e)
		if !rng.Valid() {
			appLog.Error("ics export: skipping event with unresolvable times",
				errors.New("invalid date or time"), "id", e.ID)
			continue
		}

		ve := cal.AddEvent(e.ID)
		ve.SetSummary(e.Title)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		if e.Location != "" {
			ve.SetLocation(e.Location)
		}
		ve.SetStartAt(rng.Start)
		ve.SetEndAt(rng.End)

		if rule := buildRRule(e.Repeat); rule != "" {
			ve.SetProperty(ical.ComponentPropertyRrule, rule)
		}
	}

	return cal.Serialize()
}

func buildRRule(r model.Repeat) string {
	var freq string
	switch r.Type {
	case model.RepeatDaily:
		freq = "DAILY"
	case model.RepeatWeekly:
		freq = "WEEKLY"
	case model.RepeatMonthly:
		freq = "MONTHLY"
	default:
		return ""
	}

	rule := "FREQ=" + freq
	if r.Interval > 1 {
		rule += ";INTERVAL=" + strconv.Itoa(r.Interval)
	}
	if r.EndDate != "" {
		if until, ok := dateutil.ParseDate(r.EndDate); ok {
			rule += ";UNTIL=" + until.Format("20060102")
		}
	}
	return rule
}
