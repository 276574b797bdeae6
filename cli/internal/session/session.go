// ABOUTME: Client-side session state machine for token-based auth
// ABOUTME: Tracks auth state, persists the token, and guards against stale responses

package session

import (
	"context"
	"errors"
	"sync"

	"github.com/palomiteras-org/BestChallenges/cli/internal/client"
)

// State is the authentication state of the session.
type State int

const (
	// StateAnonymous means no token is held.
	StateAnonymous State = iota
	// StatePending means an auth operation is in flight, or a token is held
	// but the user record could not be fetched yet.
	StatePending
	// StateAuthenticated means a token is held and the user record is loaded.
	StateAuthenticated
	// StateFailed means the last login attempt was rejected.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StatePending:
		return "pending"
	case StateAuthenticated:
		return "authenticated"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrSuperseded is returned when an operation's result was discarded
// because a newer login or a logout happened while it was in flight.
var ErrSuperseded = errors.New("session operation superseded")

// Backend is the subset of the API client the session manager needs.
// *client.Client satisfies it; tests substitute fakes.
type Backend interface {
	LoginJSON(ctx context.Context, identifier, password string) (*client.Token, error)
	Me(ctx context.Context) (*client.User, error)
}

// Manager owns the session state. All methods are safe for concurrent use.
//
// Each auth operation snapshots a sequence number and a generation counter
// before its network call. When the call returns, the result is committed
// only if both still match: a newer login bumps the sequence, a logout bumps
// the generation. Responses that lost the race are dropped, so a completed
// logout can never be overwritten by a slow login response.
type Manager struct {
	mu      sync.Mutex
	backend Backend
	store   Store

	state   State
	token   string
	user    *client.User
	lastErr error

	seq      uint64 // latest started auth operation
	gen      uint64 // bumped on logout
	inflight int    // network operations currently running
}

// Manager supplies bearer tokens to the API client.
var _ client.TokenSource = (*Manager)(nil)

// New creates an anonymous session manager.
func New(backend Backend, store Store) *Manager {
	return &Manager{
		backend: backend,
		store:   store,
		state:   StateAnonymous,
	}
}

// Login authenticates with the backend and commits the resulting token.
// Starting a login discards the current session: the state moves to pending
// and any held token is dropped before the network call.
//
// After the token is committed the user record is fetched inline. If that
// fetch fails for a reason other than a rejected token, the session stays
// pending with the token held; Refresh can complete the hydration later.
func (m *Manager) Login(ctx context.Context, identifier, password string) error {
	m.mu.Lock()
	m.seq++
	opSeq := m.seq
	opGen := m.gen
	m.inflight++
	m.state = StatePending
	m.token = ""
	m.user = nil
	m.lastErr = nil
	m.store.Clear()
	m.mu.Unlock()

	token, err := m.backend.LoginJSON(ctx, identifier, password)

	m.mu.Lock()
	if m.seq != opSeq || m.gen != opGen {
		m.inflight--
		m.mu.Unlock()
		return ErrSuperseded
	}
	if err != nil {
		m.inflight--
		m.state = StateFailed
		m.lastErr = err
		m.mu.Unlock()
		return err
	}

	m.token = token.AccessToken
	// Persistence failure is not fatal; the session works until the
	// process exits.
	m.store.Save(token.AccessToken)
	m.mu.Unlock()

	return m.hydrate(ctx, opSeq, opGen)
}

// Restore loads a persisted token and validates it against the backend.
// A rejected token is cleared and the session returns to anonymous.
func (m *Manager) Restore(ctx context.Context) error {
	token, err := m.store.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	m.mu.Lock()
	m.seq++
	opSeq := m.seq
	opGen := m.gen
	m.inflight++
	m.state = StatePending
	m.token = token
	m.user = nil
	m.lastErr = nil
	m.mu.Unlock()

	return m.hydrate(ctx, opSeq, opGen)
}

// Refresh re-fetches the user record for the held token. Used to recover
// a pending session after a transient backend failure.
func (m *Manager) Refresh(ctx context.Context) error {
	m.mu.Lock()
	if m.token == "" {
		m.mu.Unlock()
		return errors.New("not logged in")
	}
	m.seq++
	opSeq := m.seq
	opGen := m.gen
	m.inflight++
	m.mu.Unlock()

	return m.hydrate(ctx, opSeq, opGen)
}

// hydrate fetches the user record for the held token and commits the result
// under the usual staleness guards.
func (m *Manager) hydrate(ctx context.Context, opSeq, opGen uint64) error {
	user, err := m.backend.Me(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inflight--

	if m.seq != opSeq || m.gen != opGen {
		return ErrSuperseded
	}

	if err != nil {
		if client.IsUnauthorized(err) {
			// The backend rejected the token, so it is useless. Drop it
			// everywhere and start over.
			m.token = ""
			m.user = nil
			m.state = StateAnonymous
			m.lastErr = err
			m.store.Clear()
			return err
		}
		// Transient failure. Keep the token, stay pending.
		m.state = StatePending
		m.user = nil
		m.lastErr = err
		return err
	}

	m.user = user
	m.state = StateAuthenticated
	m.lastErr = nil
	return nil
}

// Logout drops the session and clears the persisted token. In-flight
// operations started before the logout are discarded when they complete.
// Logging out an anonymous session is a no-op.
func (m *Manager) Logout() error {
	m.mu.Lock()
	m.gen++
	m.state = StateAnonymous
	m.token = ""
	m.user = nil
	m.lastErr = nil
	m.mu.Unlock()

	return m.store.Clear()
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Token returns the held access token, or "" when anonymous.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// CurrentUser returns the loaded user record, or nil before hydration.
func (m *Manager) CurrentUser() *client.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// IsAuthenticated reports whether a token is held. Holding a token is
// enough to pass route guards; the user record may still be loading.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token != ""
}

// IsLoading reports whether an auth operation is in flight.
func (m *Manager) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inflight > 0
}

// LastError returns the error from the most recent failed operation.
func (m *Manager) LastError() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}
