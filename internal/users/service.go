package users

import (
	"context"
	"fmt"
	"sync"

	"github.com/franchiseos/franchiseos-go/pkg/logger"
	"github.com/franchiseos/franchiseos-go/pkg/models"
)

// API is the slice of the platform client the profile service depends on.
type API interface {
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
}

// Service exposes the authenticated user's profile with a small local
// mirror, so views can render the last known profile while a refetch is in
// flight.
type Service struct {
	mu   sync.RWMutex
	api  API
	logg *logger.Logger

	profile *models.User
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

// Profile returns a copy of the last fetched profile, or nil.
func (s *Service) Profile() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	copied := *s.profile
	return &copied
}

// Fetch loads the profile from the backend.
func (s *Service) Fetch(ctx context.Context) (*models.User, error) {
	user, err := s.api.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.profile = user
	s.mu.Unlock()
	return s.Profile(), nil
}

// Update writes profile changes and adopts the server's record.
func (s *Service) Update(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.api.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.profile = user
	s.mu.Unlock()

	ctx = s.logg.WithUserID(ctx, user.ID)
	s.logg.Debug(ctx, "profile updated")
	return s.Profile(), nil
}
