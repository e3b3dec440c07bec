package dealers

import (
	"context"
	"io"
	"testing"

	pkgerrors "github.com/franchiseos/franchiseos-go/pkg/errors"
	"github.com/franchiseos/franchiseos-go/pkg/enums"
	"github.com/franchiseos/franchiseos-go/pkg/logger"
	"github.com/franchiseos/franchiseos-go/pkg/models"
	"github.com/franchiseos/franchiseos-go/pkg/types"
	"github.com/shopspring/decimal"
)

type stubAPI struct {
	listResp   []models.Dealer
	listErr    error
	createResp *models.Dealer
	createErr  error
	updateResp *models.Dealer
	updateErr  error
	deleteErr  error

	createCalls int
}

func (s *stubAPI) ListDealers(ctx context.Context, opts types.ListOptions) ([]models.Dealer, error) {
	return s.listResp, s.listErr
}

func (s *stubAPI) GetDealer(ctx context.Context, id string) (*models.Dealer, error) {
	return nil, nil
}

func (s *stubAPI) CreateDealer(ctx context.Context, req models.DealerCreateRequest) (*models.Dealer, error) {
	s.createCalls++
	return s.createResp, s.createErr
}

func (s *stubAPI) UpdateDealer(ctx context.Context, id string, req models.DealerUpdateRequest) (*models.Dealer, error) {
	return s.updateResp, s.updateErr
}

func (s *stubAPI) DeleteDealer(ctx context.Context, id string) error {
	return s.deleteErr
}

func newTestService(t *testing.T, api API) *Service {
	t.Helper()
	service, err := NewService(api, logger.New(logger.Options{ServiceName: "test", Output: io.Discard}))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return service
}

func dealer(id string, status enums.DealerStatus, revenue, profit string, conversion float64) models.Dealer {
	return models.Dealer{
		ID:           id,
		BusinessName: "Outlet " + id,
		Status:       status,
		KPIMetrics: types.KPIMetrics{
			Revenue:                 decimal.RequireFromString(revenue),
			Profit:                  decimal.RequireFromString(profit),
			SalesVolume:             decimal.RequireFromString(revenue),
			ConversionRate:          conversion,
			ChecklistCompletionRate: 0.5,
			LeadGeneration:          10,
		},
	}
}

func TestCreateValidationShortCircuits(t *testing.T) {
	api := &stubAPI{}
	service := newTestService(t, api)

	_, err := service.Create(context.Background(), models.DealerCreateRequest{BusinessName: "No user"})
	if err == nil {
		t.Fatal("expected validation error for missing user_id")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
	if api.createCalls != 0 {
		t.Fatal("invalid form must not reach the backend")
	}
}

func TestUpdateReplacesByID(t *testing.T) {
	renamed := dealer("1", enums.DealerStatusActive, "100", "10", 0.2)
	renamed.BusinessName = "Renamed"
	api := &stubAPI{
		listResp:   []models.Dealer{dealer("1", enums.DealerStatusActive, "100", "10", 0.2)},
		updateResp: &renamed,
	}
	service := newTestService(t, api)
	ctx := context.Background()
	if _, err := service.FetchAll(ctx, types.ListOptions{}); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}

	if _, err := service.Update(ctx, "1", models.DealerUpdateRequest{BusinessName: "Renamed"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := service.Items()[0].BusinessName; got != "Renamed" {
		t.Fatalf("expected local adoption, got %q", got)
	}
}

func TestNetworkRollupTotalsAndAverages(t *testing.T) {
	api := &stubAPI{listResp: []models.Dealer{
		dealer("1", enums.DealerStatusActive, "100.50", "20.25", 0.4),
		dealer("2", enums.DealerStatusInactive, "200.00", "30.00", 0.2),
		dealer("3", enums.DealerStatusSuspended, "50.00", "5.00", 0.9),
	}}
	service := newTestService(t, api)
	if _, err := service.FetchAll(context.Background(), types.ListOptions{}); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}

	rollup := service.NetworkRollup()
	if rollup.Dealers != 3 || rollup.ActiveDealers != 1 {
		t.Fatalf("unexpected dealer counts %+v", rollup)
	}
	if !rollup.TotalRevenue.Equal(decimal.RequireFromString("350.50")) {
		t.Fatalf("unexpected total revenue %s", rollup.TotalRevenue)
	}
	if !rollup.TotalProfit.Equal(decimal.RequireFromString("55.25")) {
		t.Fatalf("unexpected total profit %s", rollup.TotalProfit)
	}
	if rollup.TotalLeads != 30 {
		t.Fatalf("unexpected total leads %d", rollup.TotalLeads)
	}
	// Suspended dealers stay out of the averages.
	if want := (0.4 + 0.2) / 2; rollup.AvgConversionRate != want {
		t.Fatalf("unexpected avg conversion %v, want %v", rollup.AvgConversionRate, want)
	}
}

func TestNetworkRollupEmptyNetwork(t *testing.T) {
	service := newTestService(t, &stubAPI{})
	rollup := service.NetworkRollup()
	if rollup.Dealers != 0 || rollup.AvgConversionRate != 0 {
		t.Fatalf("unexpected rollup for empty network %+v", rollup)
	}
	if !rollup.TotalRevenue.Equal(decimal.Zero) {
		t.Fatalf("unexpected revenue %s", rollup.TotalRevenue)
	}
}
