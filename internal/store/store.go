package store

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/mvilaseca/eduplan/internal/domain"
)

// StorageKey is the namespaced key the activity collection persists
// under. It matches the original browser deployment so exported
// backups stay interchangeable.
const StorageKey = "eduplan_activities"

// ActivityStore holds the canonical activity collection and mediates
// all mutations. The whole collection is the unit of persistence:
// every Save and Delete re-serializes it synchronously before
// returning. Collection sizes are bounded by manual data entry, so the
// full rewrite per mutation is acceptable.
//
// The store is not safe for concurrent use; the application has a
// single logical writer.
type ActivityStore struct {
	storage    Storage
	logw       io.Writer
	activities []*domain.Activity
	loaded     bool
}

// NewActivityStore creates a store over the given storage backend.
// Recovery from corrupt persisted state is logged to logw; pass
// io.Discard to silence it.
func NewActivityStore(storage Storage, logw io.Writer) *ActivityStore {
	if logw == nil {
		logw = io.Discard
	}
	return &ActivityStore{storage: storage, logw: logw}
}

// LoadAll returns the stored activity collection. Malformed persisted
// state is logged and treated as an empty collection; it never fails
// the caller. Records missing an academic year are assigned the
// default in memory only; the fixed value is not written back until
// the next mutation re-persists the collection.
func (s *ActivityStore) LoadAll() ([]*domain.Activity, error) {
	if s.loaded {
		return s.activities, nil
	}

	raw, ok, err := s.storage.Load(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("loading activities: %w", err)
	}
	if !ok {
		s.activities = nil
		s.loaded = true
		return nil, nil
	}

	var activities []*domain.Activity
	if err := json.Unmarshal([]byte(raw), &activities); err != nil {
		fmt.Fprintf(s.logw, "[%s] store: discarding corrupt activity data: %v\n",
			time.Now().UTC().Format(time.RFC3339), err)
		s.activities = nil
		s.loaded = true
		return nil, nil
	}

	for _, a := range activities {
		if a.AcademicYear == "" {
			a.AcademicYear = domain.DefaultAcademicYear
		}
	}

	s.activities = activities
	s.loaded = true
	return s.activities, nil
}

// Save stores the activity. An existing record with the same id is
// replaced in place, keeping its position in iteration order; a new
// record is inserted newest-first. The full collection persists before
// Save returns.
func (s *ActivityStore) Save(a *domain.Activity) (*domain.Activity, error) {
	if _, err := s.LoadAll(); err != nil {
		return nil, err
	}

	replaced := false
	for i, existing := range s.activities {
		if existing.ID == a.ID {
			s.activities[i] = a
			replaced = true
			break
		}
	}
	if !replaced {
		s.activities = append([]*domain.Activity{a}, s.activities...)
	}

	if err := s.persist(); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes the activity with the given id. Deleting an absent id
// is a no-op, but the collection still re-persists.
func (s *ActivityStore) Delete(id string) error {
	if _, err := s.LoadAll(); err != nil {
		return err
	}

	kept := s.activities[:0]
	for _, a := range s.activities {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.activities = kept

	return s.persist()
}

// AllTags returns every distinct tag across all activities, in
// first-seen order.
func (s *ActivityStore) AllTags() ([]string, error) {
	activities, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	var tags []string
	seen := make(map[string]bool)
	for _, a := range activities {
		for _, t := range a.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags, nil
}

func (s *ActivityStore) persist() error {
	data, err := json.Marshal(s.activities)
	if err != nil {
		return fmt.Errorf("serializing activities: %w", err)
	}
	if err := s.storage.Store(StorageKey, string(data)); err != nil {
		return fmt.Errorf("persisting activities: %w", err)
	}
	return nil
}
