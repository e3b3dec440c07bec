package dealers

import (
	"context"
	"fmt"
	"sync"

	"github.com/franchiseos/franchiseos-go/pkg/enums"
	"github.com/franchiseos/franchiseos-go/pkg/logger"
	"github.com/franchiseos/franchiseos-go/pkg/models"
	"github.com/franchiseos/franchiseos-go/pkg/types"
	"github.com/franchiseos/franchiseos-go/pkg/validate"
	"github.com/shopspring/decimal"
)

// API is the slice of the platform client the dealer service depends on.
type API interface {
	ListDealers(ctx context.Context, opts types.ListOptions) ([]models.Dealer, error)
	GetDealer(ctx context.Context, id string) (*models.Dealer, error)
	CreateDealer(ctx context.Context, req models.DealerCreateRequest) (*models.Dealer, error)
	UpdateDealer(ctx context.Context, id string, req models.DealerUpdateRequest) (*models.Dealer, error)
	DeleteDealer(ctx context.Context, id string) error
}

// NetworkKPI is the franchiser-level rollup across the dealer network.
// Money totals stay decimal; rates are averaged over the dealers included.
type NetworkKPI struct {
	Dealers                    int             `json:"dealers"`
	ActiveDealers              int             `json:"active_dealers"`
	TotalRevenue               decimal.Decimal `json:"total_revenue"`
	TotalProfit                decimal.Decimal `json:"total_profit"`
	TotalSalesVolume           decimal.Decimal `json:"total_sales_volume"`
	TotalLeads                 int             `json:"total_leads"`
	AvgConversionRate          float64         `json:"avg_conversion_rate"`
	AvgChecklistCompletionRate float64         `json:"avg_checklist_completion_rate"`
}

// Service mirrors the dealer network locally and derives the franchiser's
// network-level KPI view from the server-computed per-dealer metrics.
type Service struct {
	mu   sync.RWMutex
	api  API
	logg *logger.Logger

	items     []models.Dealer
	lastError error
}

func NewService(api API, logg *logger.Logger) (*Service, error) {
	if api == nil {
		return nil, fmt.Errorf("api client is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Service{api: api, logg: logg}, nil
}

// Items returns a copy of the synced dealer network.
func (s *Service) Items() []models.Dealer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := make([]models.Dealer, len(s.items))
	copy(copied, s.items)
	return copied
}

func (s *Service) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// FetchAll replaces the local network with the server's view.
func (s *Service) FetchAll(ctx context.Context, opts types.ListOptions) ([]models.Dealer, error) {
	items, err := s.api.ListDealers(ctx, opts)
	if err != nil {
		s.recordError(err)
		return nil, err
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return s.Items(), nil
}

// Create validates and onboards a dealer, appending the server's record.
func (s *Service) Create(ctx context.Context, req models.DealerCreateRequest) (*models.Dealer, error) {
	if err := validate.Struct(req); err != nil {
		s.recordError(err)
		return nil, err
	}
	dealer, err := s.api.CreateDealer(ctx, req)
	if err != nil {
		s.recordError(err)
		return nil, err
	}

	s.mu.Lock()
	s.items = append(s.items, *dealer)
	s.mu.Unlock()
	return dealer, nil
}

// Update applies a partial update and adopts the returned record.
func (s *Service) Update(ctx context.Context, id string, req models.DealerUpdateRequest) (*models.Dealer, error) {
	if err := validate.Struct(req); err != nil {
		s.recordError(err)
		return nil, err
	}
	dealer, err := s.api.UpdateDealer(ctx, id, req)
	if err != nil {
		s.recordError(err)
		return nil, err
	}

	s.mu.Lock()
	replaced := false
	for i := range s.items {
		if s.items[i].ID == dealer.ID {
			s.items[i] = *dealer
			replaced = true
			break
		}
	}
	s.mu.Unlock()
	if !replaced {
		ctx = s.logg.WithField(ctx, "dealer_id", dealer.ID)
		s.logg.Debug(ctx, "updated dealer not in local collection, skipping")
	}
	return dealer, nil
}

// Delete removes the dealer server-side, then locally.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteDealer(ctx, id); err != nil {
		s.recordError(err)
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, dealer := range s.items {
		if dealer.ID != id {
			kept = append(kept, dealer)
		}
	}
	s.items = kept
	s.mu.Unlock()
	return nil
}

// NetworkRollup aggregates the per-dealer KPI metrics into the network view.
// Suspended dealers are counted but excluded from the averages, so a parked
// outlet does not drag the network conversion numbers down.
func (s *Service) NetworkRollup() NetworkKPI {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rollup := NetworkKPI{Dealers: len(s.items)}
	contributing := 0
	for _, dealer := range s.items {
		if dealer.Status == enums.DealerStatusActive {
			rollup.ActiveDealers++
		}
		rollup.TotalRevenue = rollup.TotalRevenue.Add(dealer.KPIMetrics.Revenue)
		rollup.TotalProfit = rollup.TotalProfit.Add(dealer.KPIMetrics.Profit)
		rollup.TotalSalesVolume = rollup.TotalSalesVolume.Add(dealer.KPIMetrics.SalesVolume)
		rollup.TotalLeads += dealer.KPIMetrics.LeadGeneration
		if dealer.Status == enums.DealerStatusSuspended {
			continue
		}
		contributing++
		rollup.AvgConversionRate += dealer.KPIMetrics.ConversionRate
		rollup.AvgChecklistCompletionRate += dealer.KPIMetrics.ChecklistCompletionRate
	}
	if contributing > 0 {
		rollup.AvgConversionRate /= float64(contributing)
		rollup.AvgChecklistCompletionRate /= float64(contributing)
	}
	return rollup
}

func (s *Service) recordError(err error) {
	s.mu.Lock()
	s.lastError = err
	s.mu.Unlock()
}
