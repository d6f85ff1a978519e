package services

import (
	"context"
	"fmt"

	"github.com/dmikhr/stylecart/internal/client/api"
	"github.com/dmikhr/stylecart/internal/client/models"
	"github.com/dmikhr/stylecart/internal/client/repositories/settings"
	"github.com/dmikhr/stylecart/internal/common"
	"github.com/dmikhr/stylecart/internal/logging"
)

// Session is the current authenticated context. Token == "" means logged
// out. Identity is only meaningful right after a successful identity fetch
// with the current token; no freshness beyond that is guaranteed.
type Session struct {
	Token    string
	Identity *models.Identity
}

// SessionManager owns the session lifecycle.
//
// Contract:
//   - Register: create an account; no session is established.
//   - Login: authenticate and fetch identity with the freshly issued token;
//     any failure leaves the current session untouched.
//   - FetchIdentity: refresh identity; any failure is treated as auth expiry
//     and tears the session down.
//   - Logout: clear token and identity, including the persisted token.
//   - Restore: load a previously persisted token on startup.
type SessionManager interface {
	Register(ctx context.Context, email string, password []byte) error
	Login(ctx context.Context, email string, password []byte) error
	FetchIdentity(ctx context.Context, tokenOverride string) (*models.Identity, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) error
	Token() string
	Identity() *models.Identity
	IsLoggedIn() bool
}

type sessionManager struct {
	api      api.Client
	settings settings.Repository
	log      logging.Logger
	session  Session
}

// NewSessionManager constructs a SessionManager bound to the given API
// client and settings store.
func NewSessionManager(apiClient api.Client, repo settings.Repository, log logging.Logger) SessionManager {
	return &sessionManager{api: apiClient, settings: repo, log: log.With("component", "session")}
}

func (s *sessionManager) Register(ctx context.Context, email string, password []byte) error {
	if err := s.api.Register(ctx, email, string(password)); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

// Login exchanges credentials for a token and fetches the identity using
// that same freshly issued token, never the stored field. The session is
// replaced only after both calls succeed, so a failure mid-way leaves the
// previous session intact.
func (s *sessionManager) Login(ctx context.Context, email string, password []byte) error {
	token, err := s.api.Login(ctx, email, string(password))
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	identity, err := s.api.Me(ctx, token)
	if err != nil {
		return fmt.Errorf("identity fetch error: %w", err)
	}

	s.session = Session{Token: token, Identity: identity}
	if err := s.settings.Set(ctx, settings.KeyToken, []byte(token)); err != nil {
		// The session still works for this run; only restarts lose it.
		s.log.Warn(ctx, "failed to persist token", "error", err)
	}

	s.log.Info(ctx, "logged in", "email", identity.Email, "role", identity.Role)
	return nil
}

// FetchIdentity calls /me with tokenOverride if non-empty, else the stored
// token. Any failure, including a transport one, is treated as auth expiry:
// the session is torn down and the returned error wraps ErrAuthExpired.
func (s *sessionManager) FetchIdentity(ctx context.Context, tokenOverride string) (*models.Identity, error) {
	token := tokenOverride
	if token == "" {
		token = s.session.Token
	}

	identity, err := s.api.Me(ctx, token)
	if err != nil {
		s.teardown(ctx)
		return nil, fmt.Errorf("%w: %v", common.ErrAuthExpired, err)
	}

	s.session.Identity = identity
	return identity, nil
}

func (s *sessionManager) Logout(ctx context.Context) error {
	s.teardown(ctx)
	s.log.Info(ctx, "logged out")
	return nil
}

// Restore loads a persisted token from the settings store. The identity is
// not assumed: it is re-fetched on demand and any failure tears the session
// down again.
func (s *sessionManager) Restore(ctx context.Context) error {
	value, err := s.settings.Get(ctx, settings.KeyToken)
	if err != nil {
		return fmt.Errorf("failed to restore token: %w", err)
	}
	if len(value) > 0 {
		s.session = Session{Token: string(value)}
	}
	return nil
}

func (s *sessionManager) teardown(ctx context.Context) {
	s.session = Session{}
	if err := s.settings.Delete(ctx, settings.KeyToken); err != nil {
		s.log.Warn(ctx, "failed to remove persisted token", "error", err)
	}
}

func (s *sessionManager) Token() string { return s.session.Token }

func (s *sessionManager) Identity() *models.Identity { return s.session.Identity }

func (s *sessionManager) IsLoggedIn() bool { return s.session.Token != "" }
