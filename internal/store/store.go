// Package store holds the in-memory event collection behind the core's
// derivations. Each EventStore is a self-contained state container, so
// parallel tests or callers never share fixtures.
package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"evcal/internal/model"
)

// ErrNotFound is returned when no event carries the requested id.
var ErrNotFound = errors.New("event not found")

// EventStore is a mutex-guarded, insertion-ordered event collection.
type EventStore struct {
	mu     sync.RWMutex
	events []model.Event
}

// New creates a store seeded with the given events.
func New(seed ...model.Event) *EventStore {
	s := &EventStore{}
	s.Reset(seed)
	return s
}

// Reset replaces the store contents with a copy of seed.
func (s *EventStore) Reset(seed []model.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make([]model.Event, len(seed))
	copy(s.events, seed)
}

// List returns a copy of all events in insertion order.
func (s *EventStore) List() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Get returns the event with the given id.
func (s *EventStore) Get(id string) (model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.events {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Event{}, ErrNotFound
}

// Create appends the event, assigning a fresh id when none is set, and
// returns the stored value.
func (s *EventStore) Create(e model.Event) model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	s.events = append(s.events, e)
	return e
}

// Update replaces the event with the given id in place, keeping its
// position. The replacement keeps id even if e carries a different one.
func (s *EventStore) Update(id string, e model.Event) (model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == id {
			e.ID = id
			s.events[i] = e
			return e, nil
		}
	}
	return model.Event{}, ErrNotFound
}

// Delete removes the event with the given id and returns the removed value.
func (s *EventStore) Delete(id string) (model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.events {
		if e.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return e, nil
		}
	}
	return model.Event{}, ErrNotFound
}

// Len returns the number of stored events.
func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
