// Package session owns the client's authentication state: who is logged
// in, their bearer token, and the one-time restore of both from durable
// storage at startup.
package session

import (
	"sync"

	"go.uber.org/zap"

	"github.com/PreciousIfeaka/fintrack-fe/internal/models"
)

// CredentialStore is the durable storage the manager synchronizes with.
// *credstore.Store satisfies it.
type CredentialStore interface {
	Load() (token string, profile *models.UserProfile, ok bool, err error)
	Save(token string, profile *models.UserProfile) error
	Clear() error
}

// Manager is the in-memory authority on the current session. All reads of
// auth state go through it and all mutation happens in exactly three
// places: Bootstrap, Login, and Logout (plus SetUser for wholesale profile
// replacement while logged in). Login and Logout are each observably
// atomic: no caller can see a token without a profile or vice versa.
type Manager struct {
	store  CredentialStore
	logger *zap.Logger

	mu       sync.RWMutex
	user     *models.UserProfile
	token    string
	loading  bool
	onLogout []func()
}

// New returns a Manager in the indeterminate state: not authenticated,
// loading until Bootstrap has run.
func New(store CredentialStore, logger *zap.Logger) *Manager {
	return &Manager{store: store, logger: logger, loading: true}
}

// Bootstrap restores the session from the credential store. It runs once
// at process start, before any caller renders a final authenticated or
// unauthenticated view; IsLoading reports false after it returns, whether
// or not a credential was found.
func (m *Manager) Bootstrap() {
	token, user, ok, err := m.store.Load()
	if err != nil {
		m.logger.Warn("credential restore failed", zap.Error(err))
	}

	m.mu.Lock()
	if ok {
		m.user = user
		m.token = token
	}
	m.loading = false
	m.mu.Unlock()

	if ok {
		m.logger.Debug("session restored", zap.String("user", user.Email))
	}
}

// Login installs the authenticated user and token in one step, then
// persists them. A later Login or Logout simply overwrites this state
// wholesale; partial merges never happen.
func (m *Manager) Login(user *models.UserProfile, token string) {
	m.mu.Lock()
	m.user = user
	m.token = token
	m.mu.Unlock()

	if err := m.store.Save(token, user); err != nil {
		m.logger.Warn("persisting credentials failed", zap.Error(err))
	}
}

// Logout clears the session and the stored credential, then fires the
// registered logout hooks. Calling it while already logged out is a no-op.
func (m *Manager) Logout() {
	m.mu.Lock()
	wasAuthenticated := m.user != nil || m.token != ""
	m.user = nil
	m.token = ""
	hooks := m.onLogout
	m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		m.logger.Warn("clearing credentials failed", zap.Error(err))
	}

	if !wasAuthenticated {
		return
	}
	for _, fn := range hooks {
		fn()
	}
}

// SetUser replaces the profile wholesale after a successful profile
// update. It is ignored when the session is no longer authenticated, so a
// slow response arriving after a logout cannot resurrect the session.
func (m *Manager) SetUser(user *models.UserProfile) {
	m.mu.Lock()
	if m.user == nil || m.token == "" {
		m.mu.Unlock()
		m.logger.Debug("discarding stale profile update after logout")
		return
	}
	m.user = user
	token := m.token
	m.mu.Unlock()

	if err := m.store.Save(token, user); err != nil {
		m.logger.Warn("persisting credentials failed", zap.Error(err))
	}
}

// OnLogout registers fn to run whenever an authenticated session ends,
// including the forced logout on an authorization failure. Used by the UI
// layer to navigate back to the login entry point.
func (m *Manager) OnLogout(fn func()) {
	m.mu.Lock()
	m.onLogout = append(m.onLogout, fn)
	m.mu.Unlock()
}

// User returns the current profile, or nil when not authenticated.
func (m *Manager) User() *models.UserProfile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil || m.token == "" {
		return nil
	}
	return m.user
}

// Token returns the current bearer token, or "" when not authenticated.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return ""
	}
	return m.token
}

// IsAuthenticated reports whether both a profile and a token are present.
// One without the other counts as logged out.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.token != ""
}

// IsLoading reports whether the startup restore is still pending. While
// true, auth state is indeterminate, not "logged out".
func (m *Manager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}
