package checklists

import (
	"context"
	"fmt"
	"sync"

	"github.com/franchiseos/franchiseos-go/pkg/logger"
	"github.com/franchiseos/franchiseos-go/pkg/models"
	"github.com/franchiseos/franchiseos-go/pkg/types"
	"github.com/franchiseos/franchiseos-go/pkg/validate"
)

// API is the slice of the platform client the checklist store depends on.
type API interface {
	ListChecklists(ctx context.Context, opts types.ListOptions) ([]models.Checklist, error)
	GetChecklist(ctx context.Context, id string) (*models.Checklist, error)
	CreateChecklist(ctx context.Context, req models.ChecklistCreateRequest) (*models.Checklist, error)
	UpdateChecklist(ctx context.Context, id string, req models.ChecklistUpdateRequest) (*models.Checklist, error)
	DeleteChecklist(ctx context.Context, id string) error
	CompleteChecklist(ctx context.Context, id string) (*models.Checklist, error)
}

// Store keeps the local mirror of the caller's checklists in sync with the
// backend. The server is the source of truth; every mutation applies its
// effect only after the server's response arrives, in arrival order. The
// store never sequences concurrent mutations per id, so the last response
// to arrive wins.
type Store struct {
	mu   sync.RWMutex
	api  API
	logg *logger.Logger

	items     []models.Checklist
	current   *models.Checklist
	loading   bool
	lastError error
}

// NewStore validates dependencies and builds the store.
func NewStore(api API, logg *logger.Logger) (*Store, error) {
	if api == nil {
		return nil, fmt.Errorf("api client is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Store{api: api, logg: logg}, nil
}

// Items returns a copy of the synced collection, in server order.
func (s *Store) Items() []models.Checklist {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := make([]models.Checklist, len(s.items))
	copy(copied, s.items)
	return copied
}

// Current returns a copy of the focused checklist, or nil.
func (s *Store) Current() *models.Checklist {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// Loading reports whether a fetch is in flight. Mutations never toggle it.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the most recent operation failure. Each new failure
// overwrites the previous one.
func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// FetchAll replaces the whole collection with the server's view. On failure
// the previous collection is retained.
func (s *Store) FetchAll(ctx context.Context, opts types.ListOptions) ([]models.Checklist, error) {
	s.setLoading(true)
	items, err := s.api.ListChecklists(ctx, opts)
	if err != nil {
		s.finishFetch(err)
		return nil, err
	}

	s.mu.Lock()
	s.items = items
	s.loading = false
	s.mu.Unlock()
	return s.Items(), nil
}

// FetchOne loads a single checklist into the current slot.
func (s *Store) FetchOne(ctx context.Context, id string) (*models.Checklist, error) {
	s.setLoading(true)
	item, err := s.api.GetChecklist(ctx, id)
	if err != nil {
		s.finishFetch(err)
		return nil, err
	}

	s.mu.Lock()
	s.current = item
	s.loading = false
	s.mu.Unlock()
	return s.Current(), nil
}

// Create validates the form, dispatches it, and appends the server's record
// to the collection.
func (s *Store) Create(ctx context.Context, req models.ChecklistCreateRequest) (*models.Checklist, error) {
	if err := validate.Struct(req); err != nil {
		s.recordError(err)
		return nil, err
	}
	item, err := s.api.CreateChecklist(ctx, req)
	if err != nil {
		s.recordError(err)
		return nil, err
	}

	s.mu.Lock()
	s.items = append(s.items, *item)
	s.mu.Unlock()
	return item, nil
}

// Update dispatches a partial update and replaces the local record with the
// server's version once it arrives.
func (s *Store) Update(ctx context.Context, id string, req models.ChecklistUpdateRequest) (*models.Checklist, error) {
	if err := validate.Struct(req); err != nil {
		s.recordError(err)
		return nil, err
	}
	item, err := s.api.UpdateChecklist(ctx, id, req)
	if err != nil {
		s.recordError(err)
		return nil, err
	}
	s.applyUpdated(ctx, item)
	return item, nil
}

// Complete marks the checklist done server-side and adopts the returned
// record, including the recomputed status and KPI score.
func (s *Store) Complete(ctx context.Context, id string) (*models.Checklist, error) {
	item, err := s.api.CompleteChecklist(ctx, id)
	if err != nil {
		s.recordError(err)
		return nil, err
	}
	s.applyUpdated(ctx, item)
	return item, nil
}

// Delete removes the checklist server-side, then drops it locally.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteChecklist(ctx, id); err != nil {
		s.recordError(err)
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.mu.Unlock()
	return nil
}

// applyUpdated replaces the matching collection entry and mirrors the record
// into the current slot when it is focused. An id that is no longer in the
// collection, typically because a concurrent delete won, leaves the
// collection untouched.
func (s *Store) applyUpdated(ctx context.Context, updated *models.Checklist) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i := range s.items {
		if s.items[i].ID == updated.ID {
			index = i
			break
		}
	}
	if index >= 0 {
		s.items[index] = *updated
	} else {
		ctx = s.logg.WithField(ctx, "checklist_id", updated.ID)
		s.logg.Debug(ctx, "updated checklist not in local collection, skipping")
	}
	if s.current != nil && s.current.ID == updated.ID {
		copied := *updated
		s.current = &copied
	}
}

func (s *Store) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.lastError = nil
	s.mu.Unlock()
}

func (s *Store) finishFetch(err error) {
	s.mu.Lock()
	s.loading = false
	s.lastError = err
	s.mu.Unlock()
}

func (s *Store) recordError(err error) {
	s.mu.Lock()
	s.lastError = err
	s.mu.Unlock()
}
