// Package session holds who is signed in. A Store is created once per
// process and handed to whatever presents the session; there is no
// package-level state.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/agei/internal/domain"
)

// authService defines the auth operations needed by the session store.
type authService interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error)
	Logout(ctx context.Context) error
}

// credentialStore defines the credential persistence needed by the session store.
type credentialStore interface {
	Token() (token string, ok bool, err error)
	Save(token string) error
}

// RestoreStatus is the outcome of Restore.
type RestoreStatus int

const (
	// RestoreNone means no credential was stored.
	RestoreNone RestoreStatus = iota
	// RestoreUnverified means a credential is stored but no user is known
	// for it. Requests carry it; the first one the server rejects shows
	// that it is stale.
	RestoreUnverified
)

func (s RestoreStatus) String() string {
	switch s {
	case RestoreUnverified:
		return "unverified"
	default:
		return "none"
	}
}

// State is a point-in-time copy of the session.
type State struct {
	User          domain.User
	Authenticated bool
	Loading       bool
	HasCredential bool
}

// Store is the session state machine. Reads are safe from any goroutine;
// Login, Register and Logout are expected to be serialized by the caller.
type Store struct {
	log         *slog.Logger
	auth        authService
	credentials credentialStore

	mu            sync.RWMutex
	user          *domain.User
	loading       bool
	hasCredential bool
	onChange      func(State)
}

// New creates a Store in the loading state with no user.
func New(logger *slog.Logger, auth authService, credentials credentialStore) *Store {
	return &Store{
		log:         logger.With("component", "session"),
		auth:        auth,
		credentials: credentials,
		loading:     true,
	}
}

// OnChange registers fn to be called with a snapshot after every state
// transition. Only one listener is kept; nil removes it.
func (s *Store) OnChange(fn func(State)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Restore ends the loading phase. It looks for a stored credential but
// does not ask the server who it belongs to, so the user stays unknown
// either way.
func (s *Store) Restore(ctx context.Context) RestoreStatus {
	_, ok, err := s.credentials.Token()
	if err != nil {
		s.log.WarnContext(ctx, "read stored credential", slog.String("error", err.Error()))
		ok = false
	}

	status := RestoreNone
	if ok {
		status = RestoreUnverified
	}

	s.mu.Lock()
	s.loading = false
	s.hasCredential = ok
	s.mu.Unlock()

	s.log.DebugContext(ctx, "session restored", slog.String("status", status.String()))
	s.notify()
	return status
}

// Login authenticates, stores the token and sets the current user.
// On any failure the session is left as it was.
func (s *Store) Login(ctx context.Context, creds domain.Credentials) error {
	res, err := s.auth.Login(ctx, creds)
	if err != nil {
		return fmt.Errorf("session.Login: %w", err)
	}
	if err := s.establish(res); err != nil {
		return fmt.Errorf("session.Login: %w", err)
	}
	return nil
}

// Register creates an account and signs in with it, like Login.
func (s *Store) Register(ctx context.Context, reg domain.Registration) error {
	res, err := s.auth.Register(ctx, reg)
	if err != nil {
		return fmt.Errorf("session.Register: %w", err)
	}
	if err := s.establish(res); err != nil {
		return fmt.Errorf("session.Register: %w", err)
	}
	return nil
}

func (s *Store) establish(res *domain.AuthResult) error {
	if err := s.credentials.Save(res.Token); err != nil {
		return err
	}

	user := res.User
	s.mu.Lock()
	s.user = &user
	s.loading = false
	s.hasCredential = true
	s.mu.Unlock()

	s.notify()
	return nil
}

// Logout forgets the user and the stored credential. It cannot fail:
// a credential that could not be removed is logged and still reported
// by HasStoredCredential.
func (s *Store) Logout(ctx context.Context) {
	err := s.auth.Logout(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "clear credential on logout", slog.String("error", err.Error()))
	}

	s.mu.Lock()
	s.user = nil
	s.loading = false
	if err == nil {
		s.hasCredential = false
	}
	s.mu.Unlock()

	s.notify()
}

// User returns the signed-in user, if any.
func (s *Store) User() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a user is signed in.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Loading reports whether Restore has not run yet.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// HasStoredCredential reports whether a token is held even though no
// user may be known, as after Restore.
func (s *Store) HasStoredCredential() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasCredential
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() State {
	st := State{Loading: s.loading, HasCredential: s.hasCredential}
	if s.user != nil {
		st.User = *s.user
		st.Authenticated = true
	}
	return st
}

func (s *Store) notify() {
	s.mu.RLock()
	fn := s.onChange
	st := s.snapshotLocked()
	s.mu.RUnlock()

	if fn != nil {
		fn(st)
	}
}
