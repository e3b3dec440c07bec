package api

import (
	"context"
	"net/http"

	"github.com/franchiseos/franchiseos-go/pkg/models"
)

// GetProfile returns the authenticated user's profile, served from the
// tagged cache when a prior read is still valid.
func (c *Client) GetProfile(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.get(ctx, ResourceUser, "/users/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile writes profile changes and invalidates cached user reads.
func (c *Client) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	var out models.User
	if err := c.mutate(ctx, ResourceUser, http.MethodPut, "/users/profile", req, &out, ResourceUser); err != nil {
		return nil, err
	}
	return &out, nil
}
