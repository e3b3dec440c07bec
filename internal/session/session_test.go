package session

import (
	"context"
	"errors"
	"io"
	"testing"

	pkgerrors "github.com/franchiseos/franchiseos-go/pkg/errors"
	"github.com/franchiseos/franchiseos-go/pkg/keystore"
	"github.com/franchiseos/franchiseos-go/pkg/logger"
	"github.com/franchiseos/franchiseos-go/pkg/models"
)

type stubAPI struct {
	loginResp    *models.AuthResponse
	loginErr     error
	registerResp *models.AuthResponse
	registerErr  error
	logoutErr    error
	refreshResp  *models.TokenResponse
	refreshErr   error

	loginCalls   int
	logoutCalls  int
	refreshCalls int
	resetCalls   int
}

func (s *stubAPI) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	s.loginCalls++
	return s.loginResp, s.loginErr
}

func (s *stubAPI) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	return s.registerResp, s.registerErr
}

func (s *stubAPI) Logout(ctx context.Context) error {
	s.logoutCalls++
	return s.logoutErr
}

func (s *stubAPI) RefreshToken(ctx context.Context) (*models.TokenResponse, error) {
	s.refreshCalls++
	return s.refreshResp, s.refreshErr
}

func (s *stubAPI) ResetCache() {
	s.resetCalls++
}

func newTestStore(t *testing.T, api AuthAPI) (*Store, keystore.Store) {
	t.Helper()
	keys := keystore.NewMemoryStore()
	store, err := NewStore(Options{
		Keys:   keys,
		Logger: logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	store.BindAPI(api)
	return store, keys
}

func authResponse() *models.AuthResponse {
	return &models.AuthResponse{
		User:         models.User{ID: "u1", Email: "owner@acme.com", TenantID: "t1"},
		Token:        "access-1",
		RefreshToken: "refresh-1",
	}
}

func TestLoginInstallsSessionAndPersistsTokens(t *testing.T) {
	api := &stubAPI{loginResp: authResponse()}
	store, keys := newTestStore(t, api)
	ctx := context.Background()

	user, err := store.Login(ctx, models.LoginRequest{Email: "owner@acme.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user == nil || user.ID != "u1" {
		t.Fatalf("unexpected user %+v", user)
	}
	if !store.Authenticated() || !store.TokenPresent() {
		t.Fatal("expected authenticated session with token")
	}
	if store.Loading() {
		t.Fatal("loading must be false after login resolves")
	}
	if got := store.AccessToken(); got != "access-1" {
		t.Fatalf("unexpected access token %q", got)
	}

	stored, err := keys.Get(ctx, keystore.KeyToken)
	if err != nil || stored != "access-1" {
		t.Fatalf("token not mirrored to keystore: %q, %v", stored, err)
	}
	stored, err = keys.Get(ctx, keystore.KeyRefreshToken)
	if err != nil || stored != "refresh-1" {
		t.Fatalf("refresh token not mirrored: %q, %v", stored, err)
	}
	if api.resetCalls != 1 {
		t.Fatalf("expected cache reset on identity change, got %d", api.resetCalls)
	}
}

func TestLoginValidationFailsBeforeDispatch(t *testing.T) {
	api := &stubAPI{loginResp: authResponse()}
	store, _ := newTestStore(t, api)

	_, err := store.Login(context.Background(), models.LoginRequest{Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
	if api.loginCalls != 0 {
		t.Fatal("invalid form must not reach the backend")
	}
	if store.Authenticated() {
		t.Fatal("failed login must not authenticate")
	}
	if store.LastError() == nil {
		t.Fatal("expected last error recorded")
	}
}

func TestLoginBackendFailureRecordsError(t *testing.T) {
	api := &stubAPI{loginErr: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")}
	store, _ := newTestStore(t, api)

	_, err := store.Login(context.Background(), models.LoginRequest{Email: "owner@acme.com", Password: "wrong"})
	if err == nil {
		t.Fatal("expected login failure")
	}
	if store.Authenticated() || store.TokenPresent() {
		t.Fatal("failed login must leave session empty")
	}
	if store.Loading() {
		t.Fatal("loading must clear on failure")
	}
	if got := pkgerrors.DisplayMessage(store.LastError()); got != "invalid credentials" {
		t.Fatalf("unexpected last error %q", got)
	}
}

func TestLogoutClearsEverythingEvenWhenServerFails(t *testing.T) {
	api := &stubAPI{loginResp: authResponse(), logoutErr: errors.New("backend down")}
	store, keys := newTestStore(t, api)
	ctx := context.Background()

	if _, err := store.Login(ctx, models.LoginRequest{Email: "owner@acme.com", Password: "secret"}); err != nil {
		t.Fatalf("Login: %v", err)
	}

	store.Logout(ctx)

	if store.Authenticated() || store.TokenPresent() {
		t.Fatal("logout must clear session state")
	}
	if store.User() != nil {
		t.Fatal("logout must clear user")
	}
	if _, err := keys.Get(ctx, keystore.KeyToken); !errors.Is(err, keystore.ErrNotFound) {
		t.Fatalf("stored token must be deleted, got %v", err)
	}
	if _, err := keys.Get(ctx, keystore.KeyRefreshToken); !errors.Is(err, keystore.ErrNotFound) {
		t.Fatalf("stored refresh token must be deleted, got %v", err)
	}
	if api.logoutCalls != 1 {
		t.Fatal("expected best-effort server logout attempt")
	}
}

func TestRehydrateRestoresTokensWithoutAuthenticating(t *testing.T) {
	api := &stubAPI{}
	store, keys := newTestStore(t, api)
	ctx := context.Background()

	if err := keys.Set(ctx, keystore.KeyToken, "stored-access"); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	if err := keys.Set(ctx, keystore.KeyRefreshToken, "stored-refresh"); err != nil {
		t.Fatalf("seed refresh: %v", err)
	}

	if err := store.Rehydrate(ctx); err != nil {
		t.Fatalf("Rehydrate: %v", err)
	}
	if !store.TokenPresent() {
		t.Fatal("expected token restored")
	}
	if store.Authenticated() {
		t.Fatal("rehydration must not assert a live session")
	}
	if got := store.AccessToken(); got != "stored-access" {
		t.Fatalf("unexpected token %q", got)
	}
}

func TestRehydrateEmptyStoreIsNoop(t *testing.T) {
	store, _ := newTestStore(t, &stubAPI{})

	if err := store.Rehydrate(context.Background()); err != nil {
		t.Fatalf("Rehydrate: %v", err)
	}
	if store.TokenPresent() || store.Authenticated() {
		t.Fatal("empty store must leave session empty")
	}
}

func TestRefreshUpdatesPairAndAuthenticates(t *testing.T) {
	api := &stubAPI{refreshResp: &models.TokenResponse{Token: "access-2", RefreshToken: "refresh-2"}}
	store, keys := newTestStore(t, api)
	ctx := context.Background()

	if err := keys.Set(ctx, keystore.KeyToken, "access-1"); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	if err := store.Rehydrate(ctx); err != nil {
		t.Fatalf("Rehydrate: %v", err)
	}

	if err := store.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if !store.Authenticated() {
		t.Fatal("successful refresh must authenticate the session")
	}
	if got := store.AccessToken(); got != "access-2" {
		t.Fatalf("unexpected token %q", got)
	}
	stored, err := keys.Get(ctx, keystore.KeyToken)
	if err != nil || stored != "access-2" {
		t.Fatalf("refreshed token not mirrored: %q, %v", stored, err)
	}
}

func TestRefreshWithoutTokenFails(t *testing.T) {
	api := &stubAPI{}
	store, _ := newTestStore(t, api)

	if err := store.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh without token to fail")
	}
	if api.refreshCalls != 0 {
		t.Fatal("refresh without token must not reach the backend")
	}
}
