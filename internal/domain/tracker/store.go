package tracker

import (
	"strings"

	"github.com/google/uuid"
)

// Store is the in-memory ordered collection of activity records.
// It is mutation-only: history snapshots are the caller's concern,
// and it is not safe for concurrent use without external locking.
type Store struct {
	records []Record
}

// NewStore creates a store seeded with the given records.
func NewStore(initial []Record) *Store {
	s := &Store{}
	s.ReplaceAll(initial)
	return s
}

// Add validates the draft, assigns a fresh id and appends the record.
func (s *Store) Add(d Draft) (Record, error) {
	if err := ValidateDraft(d); err != nil {
		return Record{}, err
	}
	rec := Record{
		ID:           uuid.NewString(),
		Activity:     strings.TrimSpace(d.Activity),
		BusinessUnit: strings.TrimSpace(d.BusinessUnit),
		Owner:        strings.TrimSpace(d.Owner),
		Status:       Normalize(d.Status),
		TargetDate:   d.TargetDate,
		Details:      d.Details,
	}
	s.records = append(s.records, rec)
	return rec, nil
}

// Update merges patch fields into the record with the given id.
func (s *Store) Update(id string, p Patch) (Record, error) {
	idx := s.index(id)
	if idx < 0 {
		return Record{}, ErrRecordNotFound
	}

	updated := s.records[idx]
	if p.Activity != nil {
		updated.Activity = strings.TrimSpace(*p.Activity)
	}
	if p.BusinessUnit != nil {
		updated.BusinessUnit = strings.TrimSpace(*p.BusinessUnit)
	}
	if p.Owner != nil {
		updated.Owner = strings.TrimSpace(*p.Owner)
	}
	if p.Status != nil {
		updated.Status = Normalize(*p.Status)
	}
	if p.TargetDate != nil {
		updated.TargetDate = *p.TargetDate
	}
	if p.Details != nil {
		updated.Details = *p.Details
	}

	if updated.Activity == "" {
		return Record{}, ErrEmptyActivity
	}
	if updated.TargetDate != "" {
		if err := ValidateDate(updated.TargetDate); err != nil {
			return Record{}, err
		}
	}

	s.records[idx] = updated
	return updated, nil
}

// Remove deletes the record with the given id. Absent ids are a no-op.
func (s *Store) Remove(id string) bool {
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	return true
}

// ReplaceAll swaps in a wholesale replacement of the record set.
func (s *Store) ReplaceAll(records []Record) {
	s.records = make([]Record, len(records))
	copy(s.records, records)
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (Record, bool) {
	idx := s.index(id)
	if idx < 0 {
		return Record{}, false
	}
	return s.records[idx], true
}

// Snapshot returns an independent copy of the current record set.
func (s *Store) Snapshot() Snapshot {
	return Snapshot(s.records).Clone()
}

// Len returns the number of live records.
func (s *Store) Len() int {
	return len(s.records)
}

func (s *Store) index(id string) int {
	for i, rec := range s.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}
