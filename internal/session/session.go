package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/franchiseos/franchiseos-go/pkg/keystore"
	"github.com/franchiseos/franchiseos-go/pkg/logger"
	"github.com/franchiseos/franchiseos-go/pkg/models"
	"github.com/franchiseos/franchiseos-go/pkg/validate"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/multierr"
)

// AuthAPI is the slice of the platform client the session store depends on.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	RefreshToken(ctx context.Context) (*models.TokenResponse, error)
	ResetCache()
}

// Options bundles the session store dependencies.
type Options struct {
	Keys   keystore.Store
	Logger *logger.Logger
}

// Store owns the client session: the current user, the token pair, and the
// authentication flags views render from. Every token mutation is mirrored
// into the keystore so a later process start can rehydrate.
//
// Authenticated and TokenPresent are deliberately distinct. Rehydration
// restores tokens but never asserts a live session; only a successful login,
// register, or refresh does that.
type Store struct {
	mu   sync.RWMutex
	api  AuthAPI
	keys keystore.Store
	logg *logger.Logger

	user          *models.User
	token         string
	refreshToken  string
	authenticated bool
	loading       bool
	lastError     error
}

// NewStore validates dependencies and builds the store. The API client is
// bound afterwards because it needs the store as its token source.
func NewStore(opts Options) (*Store, error) {
	if opts.Keys == nil {
		return nil, fmt.Errorf("keystore is required")
	}
	if opts.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Store{
		keys: opts.Keys,
		logg: opts.Logger,
	}, nil
}

// BindAPI attaches the platform client. Must be called before any auth
// operation.
func (s *Store) BindAPI(api AuthAPI) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.api = api
}

// AccessToken implements the client's token source.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current user, or nil when logged out.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

// Authenticated reports whether a live session was established this process.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// TokenPresent reports whether an access token is held, live or rehydrated.
func (s *Store) TokenPresent() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Loading reports whether an auth operation is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the most recent auth failure, cleared when a new
// operation starts.
func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// Login validates the credentials locally, exchanges them with the backend,
// and on success installs the session and persists the token pair.
func (s *Store) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	if err := validate.Struct(req); err != nil {
		s.recordError(err)
		return nil, err
	}
	s.begin()
	resp, err := s.authAPI().Login(ctx, req)
	if err != nil {
		s.fail(err)
		return nil, err
	}
	s.install(ctx, resp)
	return s.User(), nil
}

// Register creates an account and installs the returned session, same as
// Login.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if err := validate.Struct(req); err != nil {
		s.recordError(err)
		return nil, err
	}
	s.begin()
	resp, err := s.authAPI().Register(ctx, req)
	if err != nil {
		s.fail(err)
		return nil, err
	}
	s.install(ctx, resp)
	return s.User(), nil
}

// Logout tears the session down. Local credentials are removed first, then
// the server session is revoked on a best-effort basis; a failure there is
// logged and swallowed. Local state is cleared unconditionally, so Logout
// cannot fail.
func (s *Store) Logout(ctx context.Context) {
	var errs error
	if err := s.keys.Delete(ctx, keystore.KeyToken, keystore.KeyRefreshToken); err != nil {
		errs = multierr.Append(errs, err)
	}
	if err := s.authAPI().Logout(ctx); err != nil {
		errs = multierr.Append(errs, err)
	}
	if errs != nil {
		s.logg.Warn(ctx, fmt.Sprintf("logout cleanup incomplete: %v", errs))
	}

	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.refreshToken = ""
	s.authenticated = false
	s.loading = false
	s.lastError = nil
	s.mu.Unlock()

	s.authAPI().ResetCache()
	s.logg.Info(ctx, "session cleared")
}

// Refresh exchanges the current pair for a fresh one and marks the session
// authenticated. It requires a token, rehydrated or live.
func (s *Store) Refresh(ctx context.Context) error {
	if !s.TokenPresent() {
		err := fmt.Errorf("no token to refresh")
		s.recordError(err)
		return err
	}
	s.begin()
	resp, err := s.authAPI().RefreshToken(ctx)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.token = resp.Token
	s.refreshToken = resp.RefreshToken
	s.authenticated = true
	s.loading = false
	s.mu.Unlock()

	s.persistTokens(ctx, resp.Token, resp.RefreshToken)
	s.logg.Debug(s.claimsContext(ctx, resp.Token), "token pair refreshed")
	return nil
}

// Rehydrate restores persisted tokens at process start. It never marks the
// session authenticated; callers decide whether to validate the restored
// token with a refresh.
func (s *Store) Rehydrate(ctx context.Context) error {
	token, err := s.keys.Get(ctx, keystore.KeyToken)
	if err != nil && !errors.Is(err, keystore.ErrNotFound) {
		return fmt.Errorf("reading stored token: %w", err)
	}
	refresh, err := s.keys.Get(ctx, keystore.KeyRefreshToken)
	if err != nil && !errors.Is(err, keystore.ErrNotFound) {
		return fmt.Errorf("reading stored refresh token: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.refreshToken = refresh
	s.mu.Unlock()

	if token != "" {
		s.logg.Info(s.claimsContext(ctx, token), "session rehydrated from storage")
	}
	return nil
}

func (s *Store) authAPI() AuthAPI {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.api
}

func (s *Store) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastError = nil
	s.mu.Unlock()
}

func (s *Store) fail(err error) {
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

// install adopts a fresh auth response: state, persisted tokens, and a cache
// reset so nothing read under the previous identity survives.
func (s *Store) install(ctx context.Context, resp *models.AuthResponse) {
	user := resp.User

	s.mu.Lock()
	s.user = &user
	s.token = resp.Token
	s.refreshToken = resp.RefreshToken
	s.authenticated = true
	s.loading = false
	s.lastError = nil
	s.mu.Unlock()

	s.authAPI().ResetCache()
	s.persistTokens(ctx, resp.Token, resp.RefreshToken)

	ctx = s.logg.WithUserID(ctx, user.ID)
	ctx = s.logg.WithTenantID(ctx, user.TenantID)
	s.logg.Info(ctx, "session established")
}

// persistTokens mirrors the pair into the keystore. Persistence failures do
// not invalidate the in-memory session; they cost the next process start its
// rehydration, which is recoverable by logging in again.
func (s *Store) persistTokens(ctx context.Context, token, refresh string) {
	err := multierr.Combine(
		s.keys.Set(ctx, keystore.KeyToken, token),
		s.keys.Set(ctx, keystore.KeyRefreshToken, refresh),
	)
	if err != nil {
		s.logg.Error(ctx, "persisting tokens", err)
	}
}

// claimsContext enriches the log context with claims parsed from the token.
// The signature is not verified here; the backend is the authority on
// validity and this is observability only.
func (s *Store) claimsContext(ctx context.Context, token string) context.Context {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ctx
	}
	if userID, ok := claims["user_id"].(string); ok {
		ctx = s.logg.WithUserID(ctx, userID)
	}
	if tenantID, ok := claims["tenant_id"].(string); ok {
		ctx = s.logg.WithTenantID(ctx, tenantID)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		ctx = s.logg.WithField(ctx, "token_expires_at", exp.Time)
	}
	return ctx
}
