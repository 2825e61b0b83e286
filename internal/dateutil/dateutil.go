// Package dateutil implements the calendar grid arithmetic: month lengths,
// Sunday-based week expansion, rectangular month grids and the Korean
// month/week labels used by the views.
package dateutil

import (
	"fmt"
	"strconv"
	"time"

	"evcal/internal/model"
)

// NoDay marks a grid cell that falls outside the month. Real day-of-month
// values are 1..31, so zero is unambiguous.
const NoDay = 0

// isoDate is the layout for the ISO calendar dates events carry.
const isoDate = "2006-01-02"

// DaysInMonth returns the number of days in the given 1-indexed month.
// Out-of-range months roll over into adjacent years exactly as native date
// normalization would: month 0 is December of the previous year, month 13 is
// January of the next.
func DaysInMonth(year, month int) int {
	// Day 0 of the following month normalizes to the last day of `month`.
	return time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.Local).Day()
}

// WeekDates returns the Sunday-to-Saturday week containing t as seven
// consecutive local-midnight dates, crossing month and year boundaries.
func WeekDates(t time.Time) [7]time.Time {
	day := startOfDay(t)
	sunday := day.AddDate(0, 0, -int(day.Weekday()))

	var week [7]time.Time
	for i := range week {
		week[i] = sunday.AddDate(0, 0, i)
	}
	return week
}

// WeeksInMonth returns the rectangular week-row grid for t's month. Each row
// holds seven day-of-month cells; cells before the first or after the last
// day of the month hold NoDay.
func WeeksInMonth(t time.Time) [][7]int {
	year, month, _ := t.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	lead := int(first.Weekday())
	days := DaysInMonth(year, int(month))

	rows := (lead + days + 6) / 7
	weeks := make([][7]int, rows)

	for day := 1; day <= days; day++ {
		cell := lead + day - 1
		weeks[cell/7][cell%7] = day
	}
	return weeks
}

// FormatWeek renders "<year>년 <month>월 <N>주" for the week containing t.
// The week is attributed to the month of its Thursday, and N counts Thursdays
// from the start of that month, so a week straddling a boundary belongs to
// whichever month holds most of it.
func FormatWeek(t time.Time) string {
	day := startOfDay(t)
	thursday := day.AddDate(0, 0, 4-int(day.Weekday()))

	year, month, _ := thursday.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, thursday.Location())
	firstThursday := 1 + (4-int(first.Weekday())+7)%7

	week := (thursday.Day()-firstThursday)/7 + 1
	return fmt.Sprintf("%d년 %d월 %d주", year, int(month), week)
}

// FormatMonth renders "<year>년 <month>월" for t.
func FormatMonth(t time.Time) string {
	year, month, _ := t.Date()
	return fmt.Sprintf("%d년 %d월", year, int(month))
}

// EventsForDay returns the events whose date falls on the given day of the
// month. A day outside 1..31 yields an empty slice.
func EventsForDay(events []model.Event, day int) []model.Event {
	out := []model.Event{}
	if day < 1 || day > 31 {
		return out
	}
	for _, e := range events {
		d, ok := ParseDate(e.Date)
		if !ok {
			continue
		}
		if d.Day() == day {
			out = append(out, e)
		}
	}
	return out
}

// FillZero pads the rendered number with leading zeros until it is at least
// size characters wide. Values already wider are returned unmodified; a
// fractional suffix counts toward the width but is never padded itself
// (FillZero(3.14, 5) == "03.14").
func FillZero(value float64, size int) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	for len(s) < size {
		s = "0" + s
	}
	return s
}

// FormatDate renders t as ISO YYYY-MM-DD. When a day argument is supplied it
// replaces t's own day component, which lets grid code stamp out the date of
// an arbitrary cell in t's month.
func FormatDate(t time.Time, day ...int) string {
	year, month, d := t.Date()
	if len(day) > 0 {
		d = day[0]
	}
	return fmt.Sprintf("%d-%s-%s", year, FillZero(float64(month), 2), FillZero(float64(d), 2))
}

// ParseDate parses a strict ISO YYYY-MM-DD date at local midnight. The
// second return value is false for anything malformed.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(isoDate, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsDateInRange reports whether d lies in [start, end], inclusive on both
// ends. An inverted range (start after end) contains nothing.
func IsDateInRange(d, start, end time.Time) bool {
	if start.After(end) {
		return false
	}
	return !d.Before(start) && !d.After(end)
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
