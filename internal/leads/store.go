package leads

import (
	"context"
	"fmt"
	"sync"

	"github.com/franchiseos/franchiseos-go/pkg/enums"
	"github.com/franchiseos/franchiseos-go/pkg/logger"
	"github.com/franchiseos/franchiseos-go/pkg/models"
	"github.com/franchiseos/franchiseos-go/pkg/types"
	"github.com/franchiseos/franchiseos-go/pkg/validate"
)

// API is the slice of the platform client the lead store depends on.
type API interface {
	ListLeads(ctx context.Context, opts types.ListOptions) ([]models.Lead, error)
	GetLead(ctx context.Context, id string) (*models.Lead, error)
	CreateLead(ctx context.Context, req models.LeadCreateRequest) (*models.Lead, error)
	UpdateLead(ctx context.Context, id string, req models.LeadUpdateRequest) (*models.Lead, error)
	DeleteLead(ctx context.Context, id string) error
}

// Store mirrors the sales funnel locally. Same discipline as the checklist
// store: server responses are authoritative and apply in arrival order.
type Store struct {
	mu   sync.RWMutex
	api  API
	logg *logger.Logger

	items     []models.Lead
	loading   bool
	lastError error
}

func NewStore(api API, logg *logger.Logger) (*Store, error) {
	if api == nil {
		return nil, fmt.Errorf("api client is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Store{api: api, logg: logg}, nil
}

// Items returns a copy of the synced leads, in server order.
func (s *Store) Items() []models.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := make([]models.Lead, len(s.items))
	copy(copied, s.items)
	return copied
}

// ByStage groups the synced leads by funnel stage for board-style views.
func (s *Store) ByStage() map[enums.FunnelStage][]models.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	grouped := map[enums.FunnelStage][]models.Lead{}
	for _, lead := range s.items {
		grouped[lead.FunnelStage] = append(grouped[lead.FunnelStage], lead)
	}
	return grouped
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// FetchAll replaces the local funnel with the server's view.
func (s *Store) FetchAll(ctx context.Context, opts types.ListOptions) ([]models.Lead, error) {
	s.mu.Lock()
	s.loading = true
	s.lastError = nil
	s.mu.Unlock()

	items, err := s.api.ListLeads(ctx, opts)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastError = err
		return nil, err
	}
	s.items = items
	copied := make([]models.Lead, len(items))
	copy(copied, items)
	return copied, nil
}

// Create validates and registers a lead, appending the server's record.
func (s *Store) Create(ctx context.Context, req models.LeadCreateRequest) (*models.Lead, error) {
	if err := validate.Struct(req); err != nil {
		s.recordError(err)
		return nil, err
	}
	lead, err := s.api.CreateLead(ctx, req)
	if err != nil {
		s.recordError(err)
		return nil, err
	}

	s.mu.Lock()
	s.items = append(s.items, *lead)
	s.mu.Unlock()
	return lead, nil
}

// Update applies a partial update and adopts the returned record.
func (s *Store) Update(ctx context.Context, id string, req models.LeadUpdateRequest) (*models.Lead, error) {
	lead, err := s.api.UpdateLead(ctx, id, req)
	if err != nil {
		s.recordError(err)
		return nil, err
	}
	s.applyUpdated(ctx, lead)
	return lead, nil
}

// MoveStage advances the lead to a new funnel stage.
func (s *Store) MoveStage(ctx context.Context, id string, stage enums.FunnelStage) (*models.Lead, error) {
	if !stage.IsValid() {
		err := fmt.Errorf("invalid funnel stage %q", stage)
		s.recordError(err)
		return nil, err
	}
	return s.Update(ctx, id, models.LeadUpdateRequest{FunnelStage: stage})
}

// Delete removes the lead server-side, then locally.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteLead(ctx, id); err != nil {
		s.recordError(err)
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, lead := range s.items {
		if lead.ID != id {
			kept = append(kept, lead)
		}
	}
	s.items = kept
	s.mu.Unlock()
	return nil
}

func (s *Store) applyUpdated(ctx context.Context, updated *models.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == updated.ID {
			s.items[i] = *updated
			return
		}
	}
	ctx = s.logg.WithField(ctx, "lead_id", updated.ID)
	s.logg.Debug(ctx, "updated lead not in local collection, skipping")
}

func (s *Store) recordError(err error) {
	s.mu.Lock()
	s.lastError = err
	s.mu.Unlock()
}
