package session

import (
	"context"
	"sync"

	"github.com/joanaapp/joana-cli/internal/client/models"
	"github.com/joanaapp/joana-cli/internal/logging"
)

// State is a snapshot of the authentication state. Revoked marks a
// transition to unauthenticated forced by the server (401), as opposed to a
// voluntary logout; it stays set until the next session is established.
type State struct {
	Authenticated bool
	Loading       bool
	Revoked       bool
	User          *models.User
}

// Manager is the explicit, process-wide authentication state object. It is
// constructed once at startup, initialized with Init, and passed to the
// components that need it; there is no package-level shared state.
//
// State changes fan out to subscribers registered with Subscribe.
type Manager struct {
	store *Store
	log   logging.Logger

	mu        sync.Mutex
	state     State
	initOnce  sync.Once
	listeners map[int]func(State)
	nextID    int
}

func NewManager(store *Store, log logging.Logger) *Manager {
	return &Manager{
		store:     store,
		log:       log,
		state:     State{Loading: true},
		listeners: make(map[int]func(State)),
	}
}

// State returns the current snapshot.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Init derives the initial state from the store: authenticated iff both the
// token and the user record are present. It runs the check once per process;
// subsequent calls are no-ops.
func (m *Manager) Init(ctx context.Context) {
	m.initOnce.Do(func() {
		token, hasToken := m.store.Token(ctx)
		user, hasUser := m.store.User(ctx)

		s := &models.Session{}
		if hasToken {
			s.Token = token
		}
		if hasUser {
			s.User = *user
		}

		if s.Valid() {
			m.setState(State{Authenticated: true, User: user})
		} else {
			m.setState(State{})
		}
	})
}

// Establish persists the session and transitions to authenticated state.
// Used after a successful login or registration.
func (m *Manager) Establish(ctx context.Context, sess *models.Session) error {
	if err := m.store.SaveSession(ctx, sess); err != nil {
		return err
	}
	user := sess.User
	m.setState(State{Authenticated: true, User: &user})
	return nil
}

// SetUser replaces the cached user record and re-persists it. Used after
// profile updates so the stored copy tracks the server.
func (m *Manager) SetUser(ctx context.Context, user *models.User) error {
	if err := m.store.SaveUser(ctx, user); err != nil {
		return err
	}
	m.mu.Lock()
	if m.state.Authenticated {
		m.state.User = user
	}
	state := m.state
	listeners := m.snapshotListeners()
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
	return nil
}

// Logout clears the store and transitions to unauthenticated state. It is
// idempotent: a second call when already logged out is a no-op, not an error.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	wasAuthenticated := m.state.Authenticated
	m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		return err
	}
	if !wasAuthenticated {
		return nil
	}

	m.setState(State{})
	m.log.Info(ctx, "session cleared")
	return nil
}

// HandleUnauthorized is invoked by the HTTP pipeline when the server answers
// 401: the local session is no longer honored, so it is cleared and the state
// flips to unauthenticated. Store failures are logged, not propagated; the
// in-memory state transitions regardless.
func (m *Manager) HandleUnauthorized(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear session after 401", "error", err)
	}

	m.mu.Lock()
	wasAuthenticated := m.state.Authenticated
	m.mu.Unlock()
	if !wasAuthenticated {
		return
	}

	m.log.Warn(ctx, "session rejected by server, logging out")
	m.setState(State{Revoked: true})
}

// Subscribe registers fn to be called on every state change. The returned
// function cancels the subscription.
func (m *Manager) Subscribe(fn func(State)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.listeners[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
	}
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	listeners := m.snapshotListeners()
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(s)
	}
}

// snapshotListeners must be called with mu held.
func (m *Manager) snapshotListeners() []func(State) {
	out := make([]func(State), 0, len(m.listeners))
	for _, fn := range m.listeners {
		out = append(out, fn)
	}
	return out
}
