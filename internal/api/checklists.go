package api

import (
	"context"
	"net/http"

	"github.com/franchiseos/franchiseos-go/pkg/models"
	"github.com/franchiseos/franchiseos-go/pkg/types"
)

// ListChecklists fetches the caller's checklists, optionally filtered and
// paginated through the list options.
func (c *Client) ListChecklists(ctx context.Context, opts types.ListOptions) ([]models.Checklist, error) {
	var out []models.Checklist
	if err := c.get(ctx, ResourceChecklist, "/checklists", opts.Query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetChecklist fetches a single checklist by id.
func (c *Client) GetChecklist(ctx context.Context, id string) (*models.Checklist, error) {
	var out models.Checklist
	if err := c.get(ctx, ResourceChecklist, "/checklists/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateChecklist creates a checklist and invalidates cached checklist reads.
func (c *Client) CreateChecklist(ctx context.Context, req models.ChecklistCreateRequest) (*models.Checklist, error) {
	var out models.Checklist
	if err := c.mutate(ctx, ResourceChecklist, http.MethodPost, "/checklists", req, &out, ResourceChecklist); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateChecklist applies a partial update to the checklist.
func (c *Client) UpdateChecklist(ctx context.Context, id string, req models.ChecklistUpdateRequest) (*models.Checklist, error) {
	var out models.Checklist
	if err := c.mutate(ctx, ResourceChecklist, http.MethodPut, "/checklists/"+id, req, &out, ResourceChecklist); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteChecklist removes the checklist.
func (c *Client) DeleteChecklist(ctx context.Context, id string) error {
	return c.mutate(ctx, ResourceChecklist, http.MethodDelete, "/checklists/"+id, nil, nil, ResourceChecklist)
}

// CompleteChecklist marks the checklist completed. The backend recomputes
// status and KPI score and returns the updated record.
func (c *Client) CompleteChecklist(ctx context.Context, id string) (*models.Checklist, error) {
	var out models.Checklist
	if err := c.mutate(ctx, ResourceChecklist, http.MethodPost, "/checklists/"+id+"/complete", nil, &out, ResourceChecklist); err != nil {
		return nil, err
	}
	return &out, nil
}
