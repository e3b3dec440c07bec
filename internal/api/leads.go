package api

import (
	"context"
	"net/http"

	"github.com/franchiseos/franchiseos-go/pkg/models"
	"github.com/franchiseos/franchiseos-go/pkg/types"
)

// ListLeads fetches the caller's leads with optional filtering.
func (c *Client) ListLeads(ctx context.Context, opts types.ListOptions) ([]models.Lead, error) {
	var out []models.Lead
	if err := c.get(ctx, ResourceLead, "/leads", opts.Query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetLead fetches a single lead by id.
func (c *Client) GetLead(ctx context.Context, id string) (*models.Lead, error) {
	var out models.Lead
	if err := c.get(ctx, ResourceLead, "/leads/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateLead registers a new lead and invalidates cached lead reads.
func (c *Client) CreateLead(ctx context.Context, req models.LeadCreateRequest) (*models.Lead, error) {
	var out models.Lead
	if err := c.mutate(ctx, ResourceLead, http.MethodPost, "/leads", req, &out, ResourceLead); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLead applies a partial update, typically a funnel stage move.
func (c *Client) UpdateLead(ctx context.Context, id string, req models.LeadUpdateRequest) (*models.Lead, error) {
	var out models.Lead
	if err := c.mutate(ctx, ResourceLead, http.MethodPut, "/leads/"+id, req, &out, ResourceLead); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteLead removes the lead.
func (c *Client) DeleteLead(ctx context.Context, id string) error {
	return c.mutate(ctx, ResourceLead, http.MethodDelete, "/leads/"+id, nil, nil, ResourceLead)
}
