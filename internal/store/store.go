// internal/store/store.go
package store

import (
	"fmt"
	"sync"

	"tcc_companion/internal/model"
)

// Sessions holds one Session per patient. It replaces any ambient global:
// the registry is created in main and passed to the services that need it.
type Sessions struct {
	mu        sync.Mutex
	byPatient map[string]*Session
}

func NewSessions() *Sessions {
	return &Sessions{byPatient: make(map[string]*Session)}
}

// Get returns the session for patientID, creating it on first use.
func (s *Sessions) Get(patientID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byPatient[patientID]
	if !ok {
		sess = newSession(patientID)
		s.byPatient[patientID] = sess
	}
	return sess
}

// Session is the in-process record store for one patient: one append-only
// table per record kind. Insertion order is the audit trail: timestamps are
// not assumed unique, so the sequence itself is the tiebreak. There is no
// delete and no in-place edit; correcting a mistake is appending a
// superseding record.
type Session struct {
	patientID string
	mu        sync.RWMutex
	tables    map[model.RecordKind][]model.Record
}

func newSession(patientID string) *Session {
	return &Session{
		patientID: patientID,
		tables:    make(map[model.RecordKind][]model.Record),
	}
}

// Append validates that rec belongs to kind and to this session's patient,
// then appends it to the kind's ordered sequence.
func (s *Session) Append(kind model.RecordKind, rec model.Record) error {
	if rec == nil {
		return fmt.Errorf("nil record: %w", model.ErrInvalidInput)
	}
	if !kind.Valid() {
		return fmt.Errorf("unknown record kind %q: %w", kind, model.ErrInvalidInput)
	}
	if rec.Kind() != kind {
		return fmt.Errorf("record kind %q does not match table %q: %w", rec.Kind(), kind, model.ErrInvalidInput)
	}
	if rec.Patient() == "" || rec.Patient() != s.patientID {
		return fmt.Errorf("record patient %q does not match session %q: %w", rec.Patient(), s.patientID, model.ErrInvalidInput)
	}
	if rec.RecordedAt().IsZero() {
		return fmt.Errorf("record timestamp missing: %w", model.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[kind] = append(s.tables[kind], rec)
	return nil
}

// All returns the full ordered sequence for kind. The slice is a copy so a
// caller cannot disturb the audit trail, but it holds every row.
func (s *Session) All(kind model.RecordKind) []model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := s.tables[kind]
	out := make([]model.Record, len(rows))
	copy(out, rows)
	return out
}

// Count returns the number of rows stored for kind.
func (s *Session) Count(kind model.RecordKind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tables[kind])
}
