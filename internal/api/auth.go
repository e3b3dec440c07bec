package api

import (
	"context"
	"net/http"

	"github.com/franchiseos/franchiseos-go/pkg/models"
)

// Login exchanges credentials for a token pair. A successful login
// invalidates cached auth reads so the next refresh lookup hits the backend.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.mutate(ctx, ResourceAuth, http.MethodPost, "/auth/login", req, &out, ResourceAuth); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns the same payload shape as Login.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.mutate(ctx, ResourceAuth, http.MethodPost, "/auth/register", req, &out, ResourceAuth); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes the server-side session. Callers treat a failure here as
// advisory; local credentials are cleared regardless.
func (c *Client) Logout(ctx context.Context) error {
	return c.mutate(ctx, ResourceAuth, http.MethodPost, "/auth/logout", nil, nil, ResourceAuth)
}

// RefreshToken asks the backend for a fresh token pair. It always goes to
// the network; serving a token exchange from the cache would hand back the
// pair that is about to expire.
func (c *Client) RefreshToken(ctx context.Context) (*models.TokenResponse, error) {
	raw, err := c.do(ctx, ResourceAuth, http.MethodGet, "/auth/refresh", nil, nil)
	if err != nil {
		return nil, err
	}
	var out models.TokenResponse
	if err := decode(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
