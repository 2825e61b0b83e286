package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"evcal/internal/model"
)

func validEvent() model.Event {
	return model.Event{
		ID:               "cooking",
		Title:            "Cooking Workshop",
		Date:             "2024-11-15",
		StartTime:        "14:00",
		EndTime:          "17:00",
		Repeat:           model.Repeat{Type: model.RepeatNone},
		NotificationTime: 45,
	}
}

func TestTimeErrorMessagesInvertedOrder(t *testing.T) {
	startErr, endErr := TimeErrorMessages("08:31", "06:50")
	assert.Equal(t, StartTimeErrorMessage, startErr)
	assert.Equal(t, EndTimeErrorMessage, endErr)
}

func TestTimeErrorMessagesEqualTimes(t *testing.T) {
	startErr, endErr := TimeErrorMessages("08:31", "08:31")
	assert.Equal(t, StartTimeErrorMessage, startErr)
	assert.Equal(t, EndTimeErrorMessage, endErr)
}

func TestTimeErrorMessagesValidOrder(t *testing.T) {
	startErr, endErr := TimeErrorMessages("04:20", "08:31")
	assert.Empty(t, startErr)
	assert.Empty(t, endErr)
}

func TestTimeErrorMessagesEmptyFields(t *testing.T) {
	for _, pair := range [][2]string{{"", "08:31"}, {"04:20", ""}, {"", ""}} {
		startErr, endErr := TimeErrorMessages(pair[0], pair[1])
		assert.Empty(t, startErr, "pair %v", pair)
		assert.Empty(t, endErr, "pair %v", pair)
	}
}

func TestEventValid(t *testing.T) {
	assert.NoError(t, Event(validEvent()))
}

func TestEventValidRepeating(t *testing.T) {
	e := validEvent()
	e.Repeat = model.Repeat{Type: model.RepeatWeekly, Interval: 1, EndDate: "2025-02-01"}
	assert.NoError(t, Event(e))
}

func TestEventMissingTitle(t *testing.T) {
	e := validEvent()
	e.Title = ""
	assert.Error(t, Event(e))
}

func TestEventMalformedDate(t *testing.T) {
	e := validEvent()
	e.Date = "2024/11/15"
	assert.Error(t, Event(e))
}

func TestEventMalformedTime(t *testing.T) {
	e := validEvent()
	e.StartTime = "9:00"
	assert.Error(t, Event(e))
}

func TestEventUnknownRepeatType(t *testing.T) {
	e := validEvent()
	e.Repeat.Type = "yearly"
	assert.Error(t, Event(e))
}

func TestEventRepeatingNeedsPositiveInterval(t *testing.T) {
	e := validEvent()
	e.Repeat = model.Repeat{Type: model.RepeatDaily, Interval: 0}
	assert.Error(t, Event(e))
}

func TestEventRepeatEndDateFormat(t *testing.T) {
	e := validEvent()
	e.Repeat = model.Repeat{Type: model.RepeatDaily, Interval: 1, EndDate: "next week"}
	assert.Error(t, Event(e))
}

func TestEventNegativeNotificationTime(t *testing.T) {
	e := validEvent()
	e.NotificationTime = -5
	assert.Error(t, Event(e))
}

func TestEventInvertedTimes(t *testing.T) {
	e := validEvent()
	e.StartTime = "18:00"
	e.EndTime = "17:00"
	err := Event(e)
	assert.Error(t, err)
	assert.Equal(t, StartTimeErrorMessage, err.Error())
}
