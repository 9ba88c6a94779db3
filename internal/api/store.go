package api

import (
	"sync"
	"time"

	"tradescan/internal/scan"
)

// RunState names what the scanner is doing right now.
type RunState string

const (
	StateIdle    RunState = "idle"
	StateRunning RunState = "running"
)

// Store holds the latest outcome in memory. Results live for the process
// lifetime only; a restart starts blank.
type Store struct {
	mu      sync.RWMutex
	outcome *scan.Outcome
	state   RunState
	updated time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{state: StateIdle}
}

// SetRunning marks a scan in flight.
func (s *Store) SetRunning() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateRunning
}

// SetOutcome replaces the stored results and returns to idle.
func (s *Store) SetOutcome(outcome scan.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcome = &outcome
	s.state = StateIdle
	s.updated = time.Now()
}

// Outcome returns the latest outcome, or false when no scan has finished.
func (s *Store) Outcome() (scan.Outcome, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.outcome == nil {
		return scan.Outcome{}, false
	}
	return *s.outcome, true
}

// Status reports the current state and last update time.
func (s *Store) Status() (RunState, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.updated
}
