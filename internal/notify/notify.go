// Package notify computes which events are due for a reminder and holds the
// per-session notification state threaded through scheduler ticks.
package notify

import (
	"fmt"
	"sync"
	"time"

	"evcal/internal/model"
	"evcal/internal/overlap"
)

// UpcomingEvents returns the events whose reminder window contains now, in
// input order. The window opens exactly NotificationTime minutes before the
// event's start and closes at the start itself (inclusive open, exclusive
// close). Events listed in notifiedIDs are excluded, as are events whose
// start does not resolve to a valid instant.
func UpcomingEvents(events []model.Event, now time.Time, notifiedIDs []string) []model.Event {
	notified := make(map[string]struct{}, len(notifiedIDs))
	for _, id := range notifiedIDs {
		notified[id] = struct{}{}
	}

	out := []model.Event{}
	for _, e := range events {
		if _, done := notified[e.ID]; done {
			continue
		}
		start := overlap.ParseDateTime(e.Date, e.StartTime)
		if start.IsZero() {
			continue
		}
		windowOpen := start.Add(-time.Duration(e.NotificationTime) * time.Minute)
		if !now.Before(windowOpen) && now.Before(start) {
			out = append(out, e)
		}
	}
	return out
}

// Message renders the reminder text for an event.
func Message(e model.Event) string {
	return fmt.Sprintf("%d분 후 %s 일정이 시작됩니다.", e.NotificationTime, e.Title)
}

// Scheduler owns the session state of the polling loop: the set of event ids
// already reminded (permanent for the session) and the currently visible
// notification list. Each Tick is a discrete, idempotent evaluation; the
// driving timer lives with the caller. The mutex keeps evaluations serial
// even if the driver fires a tick while the previous one is still running.
type Scheduler struct {
	mu            sync.Mutex
	notifiedIDs   []string
	notifications []model.Notification
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		notifiedIDs:   []string{},
		notifications: []model.Notification{},
	}
}

// Tick evaluates the event list at now, appends a notification for each
// newly due event, marks their ids as notified, and returns the newly fired
// notifications. Re-evaluating at the same instant fires nothing new.
func (s *Scheduler) Tick(events []model.Event, now time.Time) []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	due := UpcomingEvents(events, now, s.notifiedIDs)

	fired := make([]model.Notification, 0, len(due))
	for _, e := range due {
		n := model.Notification{ID: e.ID, Message: Message(e)}
		fired = append(fired, n)
		s.notifications = append(s.notifications, n)
		s.notifiedIDs = append(s.notifiedIDs, e.ID)
	}
	return fired
}

// Notifications returns a copy of the currently visible notification list.
func (s *Scheduler) Notifications() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// NotifiedIDs returns a copy of the ids reminded so far this session.
func (s *Scheduler) NotifiedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.notifiedIDs))
	copy(out, s.notifiedIDs)
	return out
}

// Dismiss removes the notification at position i from the visible list. The
// notified-id set is untouched, so a dismissed reminder never re-fires.
// Out-of-range positions are ignored.
func (s *Scheduler) Dismiss(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.notifications) {
		return
	}
	s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
}
