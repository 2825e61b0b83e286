package model

import "time"

// RepeatType selects how an event recurs. "none" means the event is a
// single occurrence and Interval/EndDate carry no meaning.
type RepeatType string

const (
	RepeatNone    RepeatType = "none"
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
)

// Repeat describes the recurrence of an event.
type Repeat struct {
	Type     RepeatType `yaml:"type" json:"type"`
	Interval int        `yaml:"interval" json:"interval"`
	// EndDate is the last calendar date (inclusive, ISO YYYY-MM-DD) on which
	// an occurrence may fall. Empty means no end.
	EndDate string `yaml:"endDate,omitempty" json:"endDate,omitempty"`
}

// Event is a single-day calendar entry as stored. Date is an ISO calendar
// date (YYYY-MM-DD); StartTime/EndTime are 24h wall-clock times (HH:MM)
// interpreted on Date. The core never mutates an Event, only derives from it.
type Event struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Date        string `yaml:"date" json:"date"`
	StartTime   string `yaml:"startTime" json:"startTime"`
	EndTime     string `yaml:"endTime" json:"endTime"`
	Description string `yaml:"description" json:"description"`
	Location    string `yaml:"location" json:"location"`
	Category    string `yaml:"category" json:"category"`
	Repeat      Repeat `yaml:"repeat" json:"repeat"`
	// NotificationTime is the reminder lead time in minutes before StartTime.
	NotificationTime int `yaml:"notificationTime" json:"notificationTime"`
}

// DateRange is the resolved start/end instant pair of an event. The zero
// time.Time is the "invalid instant" sentinel for unparseable input; every
// relational comparison against it is defined to be false.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether both endpoints resolved to real instants.
func (r DateRange) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// Notification is a fired reminder, held only for display until dismissed.
type Notification struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
