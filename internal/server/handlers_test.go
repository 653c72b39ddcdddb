package server

import (
	"context"
	"testing"

	"github.com/jonboulle/clockwork"

	"github.com/DonteRavae/livescript-server/internal/auth"
	"github.com/DonteRavae/livescript-server/internal/broadcast"
	"github.com/DonteRavae/livescript-server/internal/config"
	"github.com/DonteRavae/livescript-server/internal/domain"
)

// mockAuthService records calls and returns canned results.
type mockAuthService struct {
	registerResult domain.TokenPair
	registerErr    error
	loginResult    domain.TokenPair
	loginErr       error
	logoutErr      error
	refreshResult  string
	refreshErr     error

	logoutUserID  string
	refreshUserID string
}

func (m *mockAuthService) Register(_ context.Context, _ domain.Credentials) (domain.TokenPair, error) {
	return m.registerResult, m.registerErr
}

func (m *mockAuthService) Login(_ context.Context, _ domain.Credentials) (domain.TokenPair, error) {
	return m.loginResult, m.loginErr
}

func (m *mockAuthService) Logout(_ context.Context, userID string) error {
	m.logoutUserID = userID
	return m.logoutErr
}

func (m *mockAuthService) Refresh(_ context.Context, userID string) (string, error) {
	m.refreshUserID = userID
	return m.refreshResult, m.refreshErr
}

// mockPgxPool provides a minimal mock for PostgreSQL health checks
type mockPgxPool struct {
	pingErr error
}

func (m *mockPgxPool) Ping(_ context.Context) error {
	return m.pingErr
}

func newTestServer(t *testing.T, authService domain.AuthService, db dbPinger) *Server {
	t.Helper()

	cfg := &config.Config{
		AppEnv:             "test",
		Port:               "8000",
		AccessTokenSecret:  "access-secret",
		RefreshTokenSecret: "refresh-secret",
	}

	clock := clockwork.NewRealClock()
	tokens := auth.NewManager(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, clock)

	if db == nil {
		db = &mockPgxPool{}
	}

	return NewServer(cfg, authService, tokens, broadcast.NewRegistry(), db, clock)
}
