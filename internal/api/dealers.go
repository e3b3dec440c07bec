package api

import (
	"context"
	"net/http"

	"github.com/franchiseos/franchiseos-go/pkg/models"
	"github.com/franchiseos/franchiseos-go/pkg/types"
)

// ListDealers fetches the franchiser's dealer network.
func (c *Client) ListDealers(ctx context.Context, opts types.ListOptions) ([]models.Dealer, error) {
	var out []models.Dealer
	if err := c.get(ctx, ResourceDealer, "/dealers", opts.Query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDealer fetches a single dealer by id.
func (c *Client) GetDealer(ctx context.Context, id string) (*models.Dealer, error) {
	var out models.Dealer
	if err := c.get(ctx, ResourceDealer, "/dealers/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDealer onboards a dealer and invalidates cached dealer reads.
func (c *Client) CreateDealer(ctx context.Context, req models.DealerCreateRequest) (*models.Dealer, error) {
	var out models.Dealer
	if err := c.mutate(ctx, ResourceDealer, http.MethodPost, "/dealers", req, &out, ResourceDealer); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDealer applies a partial update to the dealer record.
func (c *Client) UpdateDealer(ctx context.Context, id string, req models.DealerUpdateRequest) (*models.Dealer, error) {
	var out models.Dealer
	if err := c.mutate(ctx, ResourceDealer, http.MethodPut, "/dealers/"+id, req, &out, ResourceDealer); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDealer removes the dealer from the network.
func (c *Client) DeleteDealer(ctx context.Context, id string) error {
	return c.mutate(ctx, ResourceDealer, http.MethodDelete, "/dealers/"+id, nil, nil, ResourceDealer)
}
