// Package validate checks event records before they enter the store.
// Validation is a separate concern from the computation core: the core
// degrades malformed input to empty results, while this package reports it.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"evcal/internal/model"
)

const (
	// StartTimeErrorMessage is shown on the start-time field when the time
	// order is inverted or degenerate.
	StartTimeErrorMessage = "시작 시간은 종료 시간보다 빨라야 합니다."
	// EndTimeErrorMessage is the end-time counterpart.
	EndTimeErrorMessage = "종료 시간은 시작 시간보다 늦어야 합니다."
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// TimeErrorMessages returns the per-field error messages for a start/end
// time pair. Both are empty while either field is empty or unparseable
// (incomplete input is not an error yet); both are set when start is not
// strictly before end.
func TimeErrorMessages(start, end string) (startErr, endErr string) {
	if start == "" || end == "" {
		return "", ""
	}
	s, serr := time.Parse("15:04", start)
	e, eerr := time.Parse("15:04", end)
	if serr != nil || eerr != nil {
		return "", ""
	}
	if !s.Before(e) {
		return StartTimeErrorMessage, EndTimeErrorMessage
	}
	return "", ""
}

// Event validates a record for create/update: required fields, strict
// date/time formats, a known repeat rule and a sane reminder lead time.
func Event(e model.Event) error {
	err := validation.ValidateStruct(&e,
		validation.Field(&e.Title, validation.Required),
		validation.Field(&e.Date, validation.Required, validation.Match(dateRe)),
		validation.Field(&e.StartTime, validation.Required, validation.Match(timeRe)),
		validation.Field(&e.EndTime, validation.Required, validation.Match(timeRe)),
		validation.Field(&e.NotificationTime, validation.Min(0)),
	)
	if err != nil {
		return err
	}

	if err := repeatRules(e.Repeat); err != nil {
		return err
	}

	if startErr, _ := TimeErrorMessages(e.StartTime, e.EndTime); startErr != "" {
		return errors.New(startErr)
	}
	return nil
}

func repeatRules(r model.Repeat) error {
	err := validation.Validate(string(r.Type),
		validation.Required,
		validation.In(
			string(model.RepeatNone),
			string(model.RepeatDaily),
			string(model.RepeatWeekly),
			string(model.RepeatMonthly),
		),
	)
	if err != nil {
		return fmt.Errorf("repeat type: %w", err)
	}

	if r.Type == model.RepeatNone {
		return nil
	}
	// ozzo skips threshold rules on zero values, so check the bound directly.
	if r.Interval < 1 {
		return errors.New("repeat interval: must be no less than 1")
	}
	if r.EndDate != "" {
		if err := validation.Validate(r.EndDate, validation.Match(dateRe)); err != nil {
			return fmt.Errorf("repeat end date: %w", err)
		}
	}
	return nil
}
