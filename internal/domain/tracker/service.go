package tracker

import (
	"context"
	"log/slog"
	"sync"
)

// Saver schedules persistence of record snapshots. The persistence
// gateway implements it; a nil saver disables persistence.
type Saver interface {
	Schedule(records []Record)
	Flush(ctx context.Context) error
}

// Service is the owned state container for the tracker: it guards the
// record store and history behind one mutex, snapshots before every
// mutation and schedules a debounced save after every successful one.
// The mutex also serializes imports against concurrent mutation.
type Service struct {
	mu      sync.Mutex
	store   *Store
	history *History
	saver   Saver
	logger  *slog.Logger
}

// NewService creates a tracker service over the given store.
func NewService(store *Store, history *History, saver Saver, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		store:   store,
		history: history,
		saver:   saver,
		logger:  logger,
	}
}

// Add creates a new record. Validation failures leave history untouched.
func (s *Service) Add(d Draft) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ValidateDraft(d); err != nil {
		return Record{}, err
	}

	s.history.Record(s.store.Snapshot())
	rec, err := s.store.Add(d)
	if err != nil {
		return Record{}, err
	}
	s.logger.Debug("record added", "id", rec.ID)
	s.scheduleSave()
	return rec, nil
}

// Update merges a patch into an existing record.
func (s *Service) Update(id string, p Patch) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.Get(id); !ok {
		return Record{}, ErrRecordNotFound
	}

	before := s.store.Snapshot()
	rec, err := s.store.Update(id, p)
	if err != nil {
		return Record{}, err
	}
	s.history.Record(before)
	s.logger.Debug("record updated", "id", id)
	s.scheduleSave()
	return rec, nil
}

// Remove deletes a record by id. Absent ids are a silent no-op and do
// not create a history entry.
func (s *Service) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.Get(id); !ok {
		return false
	}

	s.history.Record(s.store.Snapshot())
	s.store.Remove(id)
	s.logger.Debug("record removed", "id", id)
	s.scheduleSave()
	return true
}

// Get returns a record by id.
func (s *Service) Get(id string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.store.Get(id)
	if !ok {
		return Record{}, ErrRecordNotFound
	}
	return rec, nil
}

// BulkUpdate applies the non-empty patch fields to every selected record
// as one history-tracked transaction. An empty selection or empty patch
// changes nothing and records no history entry.
func (s *Service) BulkUpdate(ids []string, p BulkPatch) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(ids) == 0 || p.IsZero() {
		return 0
	}

	selected := idSet(ids)
	before := s.store.Snapshot()
	updated := before.Clone()
	changed := 0
	for i, rec := range updated {
		if _, ok := selected[rec.ID]; !ok {
			continue
		}
		if p.Status != "" {
			updated[i].Status = Normalize(p.Status)
		}
		if p.Owner != "" {
			updated[i].Owner = p.Owner
		}
		if p.BusinessUnit != "" {
			updated[i].BusinessUnit = p.BusinessUnit
		}
		changed++
	}
	if changed == 0 {
		return 0
	}

	s.history.Record(before)
	s.store.ReplaceAll(updated)
	s.logger.Debug("bulk update applied", "selected", len(ids), "changed", changed)
	s.scheduleSave()
	return changed
}

// BulkDelete removes every selected record in one history-tracked
// transaction.
func (s *Service) BulkDelete(ids []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(ids) == 0 {
		return 0
	}

	selected := idSet(ids)
	before := s.store.Snapshot()
	kept := make([]Record, 0, len(before))
	for _, rec := range before {
		if _, ok := selected[rec.ID]; !ok {
			kept = append(kept, rec)
		}
	}
	removed := len(before) - len(kept)
	if removed == 0 {
		return 0
	}

	s.history.Record(before)
	s.store.ReplaceAll(kept)
	s.logger.Debug("bulk delete applied", "removed", removed)
	s.scheduleSave()
	return removed
}

// Undo restores the most recent history snapshot. Returns false when
// there is nothing to undo.
func (s *Service) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, ok := s.history.Undo(s.store.Snapshot())
	if !ok {
		return false
	}
	s.store.ReplaceAll(previous)
	s.logger.Debug("undo applied", "records", s.store.Len())
	s.scheduleSave()
	return true
}

// Redo reapplies the most recently undone snapshot.
func (s *Service) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.history.Redo(s.store.Snapshot())
	if !ok {
		return false
	}
	s.store.ReplaceAll(next)
	s.logger.Debug("redo applied", "records", s.store.Len())
	s.scheduleSave()
	return true
}

// ImportRecords replaces the whole record set with an imported one as a
// single history-tracked transaction. An empty set leaves the store
// untouched and reports ErrEmptyImport.
func (s *Service) ImportRecords(records []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(records) == 0 {
		return ErrEmptyImport
	}

	s.history.Record(s.store.Snapshot())
	s.store.ReplaceAll(records)
	s.logger.Info("records imported", "count", len(records))
	s.scheduleSave()
	return nil
}

// List derives a filtered, sorted view of the record set.
func (s *Service) List(f Filter, srt Sort) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ApplyView(s.store.Snapshot(), f, srt)
}

// Records returns a copy of the full, unfiltered record set.
func (s *Service) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Snapshot()
}

// Stats returns per-status counts plus the distinct business-unit and
// owner value sets over the unfiltered record set.
func (s *Service) Stats() ([]StatusCount, []string, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.store.Snapshot()
	return Breakdown(snap), DistinctBusinessUnits(snap), DistinctOwners(snap)
}

// CanUndo reports whether an undo would apply.
func (s *Service) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanUndo()
}

// CanRedo reports whether a redo would apply.
func (s *Service) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanRedo()
}

// Flush persists any pending debounced save immediately. Called on
// shutdown so the tear-down mirrors the construct-on-startup lifecycle.
func (s *Service) Flush(ctx context.Context) error {
	if s.saver == nil {
		return nil
	}
	return s.saver.Flush(ctx)
}

func (s *Service) scheduleSave() {
	if s.saver == nil {
		return
	}
	s.saver.Schedule(s.store.Snapshot())
}

func idSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
