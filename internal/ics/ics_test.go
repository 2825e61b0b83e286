package ics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evcal/internal/model"
)

func TestExportImportRoundTrip(t *testing.T) {
	events := []model.Event{
		{
			ID: "cooking", Title: "Cooking Workshop", Date: "2024-11-15",
			StartTime: "14:00", EndTime: "17:00",
			Description: "Learn to cook Italian dishes", Location: "Culinary Arts Studio",
			Repeat: model.Repeat{Type: model.RepeatNone},
		},
		{
			ID: "meetup", Title: "Language Exchange", Date: "2024-11-20",
			StartTime: "19:00", EndTime: "21:00",
			Repeat: model.Repeat{Type: model.RepeatWeekly, Interval: 2, EndDate: "2025-02-01"},
		},
	}

	payload := Export(events)
	assert.Contains(t, payload, "BEGIN:VCALENDAR")
	assert.Contains(t, payload, "RRULE:FREQ=WEEKLY;INTERVAL=2;UNTIL=20250201")

	back, err := Import([]byte(payload))
	require.NoError(t, err)
	require.Len(t, back, 2)

	assert.Equal(t, "cooking", back[0].ID)
	assert.Equal(t, "Cooking Workshop", back[0].Title)
	assert.Equal(t, "2024-11-15", back[0].Date)
	assert.Equal(t, "14:00", back[0].StartTime)
	assert.Equal(t, "17:00", back[0].EndTime)
	assert.Equal(t, "Culinary Arts Studio", back[0].Location)
	assert.Equal(t, model.RepeatNone, back[0].Repeat.Type)

	assert.Equal(t, model.Repeat{Type: model.RepeatWeekly, Interval: 2, EndDate: "2025-02-01"}, back[1].Repeat)
	assert.Equal(t, "19:00", back[1].StartTime)
}

func TestExportSkipsUnresolvableEvents(t *testing.T) {
	events := []model.Event{
		{ID: "broken", Title: "Broken", Date: "2024/11/15", StartTime: "14:00", EndTime: "15:00"},
		{ID: "ok", Title: "Fine", Date: "2024-11-15", StartTime: "14:00", EndTime: "15:00"},
	}

	payload := Export(events)
	assert.NotContains(t, payload, "broken")
	assert.Contains(t, payload, "UID:ok")
}

func TestImportMetadataAndRepeat(t *testing.T) {
	payload := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//EN",
		"BEGIN:VEVENT",
		"UID:photo",
		"SUMMARY:Photography Walk",
		"DESCRIPTION:Explore urban landscapes",
		"LOCATION:Central Park",
		"CATEGORIES:Hobby",
		"DTSTART:20241115T050000Z",
		"DTEND:20241115T063000Z",
		"RRULE:FREQ=MONTHLY;INTERVAL=1;UNTIL=20250618T235959Z",
		"END:VEVENT",
		"END:VCALENDAR",
	}, "\r\n") + "\r\n"

	events, err := Import([]byte(payload))
	require.NoError(t, err)
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, "photo", e.ID)
	assert.Equal(t, "Photography Walk", e.Title)
	assert.Equal(t, "Explore urban landscapes", e.Description)
	assert.Equal(t, "Central Park", e.Location)
	assert.Equal(t, "Hobby", e.Category)
	assert.Equal(t, model.RepeatMonthly, e.Repeat.Type)
	assert.Equal(t, 1, e.Repeat.Interval)
	assert.Equal(t, "2025-06-18", e.Repeat.EndDate)
}

func TestImportSkipsVEventWithoutUID(t *testing.T) {
	payload := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//EN",
		"BEGIN:VEVENT",
		"SUMMARY:No identity",
		"DTSTART:20241115T050000Z",
		"DTEND:20241115T060000Z",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:kept",
		"SUMMARY:Kept",
		"DTSTART:20241116T050000Z",
		"DTEND:20241116T060000Z",
		"END:VEVENT",
		"END:VCALENDAR",
	}, "\r\n") + "\r\n"

	events, err := Import([]byte(payload))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "kept", events[0].ID)
}

func TestImportEmptyBody(t *testing.T) {
	_, err := Import(nil)
	assert.Error(t, err)
}

func TestImportFile(t *testing.T) {
	events := []model.Event{{
		ID: "file", Title: "From File", Date: "2024-11-15",
		StartTime: "09:00", EndTime: "10:00",
		Repeat: model.Repeat{Type: model.RepeatNone},
	}}

	path := filepath.Join(t.TempDir(), "events.ics")
	require.NoError(t, os.WriteFile(path, []byte(Export(events)), 0o600))

	back, err := ImportFile(path)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, "From File", back[0].Title)
}

func TestImportFileMissing(t *testing.T) {
	_, err := ImportFile(filepath.Join(t.TempDir(), "absent.ics"))
	assert.Error(t, err)
}
