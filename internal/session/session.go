// Package session owns the authentication state of the dashboard: who is
// signed in, whether the answer is known yet, and the persisted token that
// outlives the process. State moves Unknown → Anonymous or Authenticated and
// every mutation is published to subscribers so dependent views can redraw.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/rogerio-castellano/catalog-dashboard/internal/apiclient"
	"github.com/rogerio-castellano/catalog-dashboard/internal/models"
	"github.com/rogerio-castellano/catalog-dashboard/internal/store"
)

const loginFallbackMessage = "Une erreur est survenue lors de la connexion"

// AuthAPI is the slice of the remote client the manager needs.
type AuthAPI interface {
	Login(ctx context.Context, creds models.Credentials) (apiclient.LoginResponse, error)
	CurrentUser(ctx context.Context) (models.UserProfile, error)
}

// Snapshot is an immutable view of the session. IsLoading means the state is
// not decided yet; route guards must render a neutral page and never redirect
// while it is set. IsAuthenticated implies CurrentUser != nil.
type Snapshot struct {
	CurrentUser     *models.UserProfile
	IsAuthenticated bool
	IsLoading       bool
}

// LoginResult reports a login attempt without raising an error: a rejection
// is an expected outcome, not a failure.
type LoginResult struct {
	Success bool
	Message string
}

type Manager struct {
	api   AuthAPI
	store store.Store

	mu            sync.RWMutex
	currentUser   *models.UserProfile
	authenticated bool
	loading       bool
	subscribers   []func(Snapshot)
}

// NewManager starts in the Unknown state (loading) until CheckSession runs.
func NewManager(api AuthAPI, st store.Store) *Manager {
	return &Manager{api: api, store: st, loading: true}
}

// Subscribe registers fn to be called with a snapshot after every state
// change. Callbacks run synchronously on the mutating goroutine.
func (m *Manager) Subscribe(fn func(Snapshot)) {
	m.mu.Lock()
	m.subscribers = append(m.subscribers, fn)
	m.mu.Unlock()
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		CurrentUser:     m.currentUser,
		IsAuthenticated: m.authenticated,
		IsLoading:       m.loading,
	}
}

// CheckSession resolves the persisted token. With no token it settles on
// Anonymous without touching the network. With a token it asks the remote
// "current user" endpoint; any failure discards the token. The loading flag
// is cleared on every exit path.
func (m *Manager) CheckSession(ctx context.Context) {
	m.setLoading(true)
	defer m.setLoading(false)

	token := m.store.Get(store.AuthTokenKey)
	if token == "" {
		m.setAnonymous()
		return
	}

	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		m.store.Clear(store.AuthTokenKey)
		m.setAnonymous()
		return
	}
	m.setAuthenticated(user)
}

// Login attempts to authenticate. On success the returned token is persisted
// and the session becomes Authenticated. A rejection leaves the session
// Anonymous and reports the server's message.
func (m *Manager) Login(ctx context.Context, creds models.Credentials) LoginResult {
	m.setLoading(true)
	defer m.setLoading(false)

	resp, err := m.api.Login(ctx, creds)
	if err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) {
			return LoginResult{Message: apiErr.Message}
		}
		return LoginResult{Message: loginFallbackMessage}
	}
	if !resp.Success && resp.Token == "" {
		message := resp.Message
		if message == "" {
			message = loginFallbackMessage
		}
		return LoginResult{Message: message}
	}

	if resp.Token != "" {
		m.store.Set(store.AuthTokenKey, resp.Token)
	}
	m.setAuthenticated(resp.User)
	return LoginResult{Success: true}
}

// Logout is synchronous and purely local: it clears the persisted token and
// resets to Anonymous without a server call.
func (m *Manager) Logout() {
	m.store.Clear(store.AuthTokenKey)
	m.setAnonymous()
}

// UpdateUser replaces the cached profile after a successful profile update.
// Ignored while Anonymous so the authenticated-implies-user invariant holds.
func (m *Manager) UpdateUser(user models.UserProfile) {
	m.mu.Lock()
	if m.authenticated {
		m.currentUser = &user
	}
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) setAuthenticated(user models.UserProfile) {
	m.mu.Lock()
	m.currentUser = &user
	m.authenticated = true
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) setAnonymous() {
	m.mu.Lock()
	m.currentUser = nil
	m.authenticated = false
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) setLoading(loading bool) {
	m.mu.Lock()
	m.loading = loading
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) notify() {
	m.mu.RLock()
	subscribers := make([]func(Snapshot), len(m.subscribers))
	copy(subscribers, m.subscribers)
	m.mu.RUnlock()

	snap := m.Snapshot()
	for _, fn := range subscribers {
		fn(snap)
	}
}
