// Package session owns the client's belief about who is logged in. A Store
// is created once per process and passed to whoever needs identity; there
// is no package-level session.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/services"
	"github.com/dmitrijs2005/salesdesk/internal/logging"
)

type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "uninitialized"
	}
}

// CredentialStore is the persisted half of the session.
type CredentialStore interface {
	Token(ctx context.Context) (string, error)
	Identity(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, token string, user models.User) error
	Clear(ctx context.Context) error
}

// SignupData is what the registration form collects.
type SignupData = services.SignupRequest

type Store struct {
	auth  services.AuthService
	creds CredentialStore
	log   logging.Logger
	now   func() time.Time

	mu    sync.RWMutex
	state State
	user  *models.User
	subs  map[int]func(State)
	subID int
}

func NewStore(auth services.AuthService, creds CredentialStore, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{
		auth:  auth,
		creds: creds,
		log:   log,
		now:   time.Now,
		subs:  map[int]func(State){},
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// User returns the authenticated identity. It fails with ErrLoading while
// the store is loading and ErrNotAuthenticated otherwise.
func (s *Store) User() (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case s.state == StateLoading || s.state == StateUninitialized:
		return models.User{}, ErrLoading
	case s.state != StateAuthenticated || s.user == nil:
		return models.User{}, ErrNotAuthenticated
	}
	return *s.user, nil
}

// Subscribe registers fn for state changes and returns its cancel func.
// fn runs on the goroutine that changed the state.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.subID
	s.subID++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) set(state State, user *models.User) {
	s.mu.Lock()
	changed := s.state != state
	s.state = state
	s.user = user
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	if changed {
		for _, fn := range subs {
			fn(state)
		}
	}
}

// Initialize hydrates the session from persisted storage. It never fails:
// unreadable storage and expired credentials both end anonymous with the
// stored credential cleared.
func (s *Store) Initialize(ctx context.Context) {
	s.set(StateLoading, nil)

	user, err := s.creds.Identity(ctx)
	if err != nil {
		s.log.Warn(ctx, "read stored identity", "error", err)
		s.teardown(ctx)
		return
	}
	if user == nil {
		// a token without an identity is left over from a broken save
		s.teardown(ctx)
		return
	}
	if s.expired(ctx) {
		s.log.Info(ctx, "stored credential expired")
		s.teardown(ctx)
		return
	}
	s.set(StateAuthenticated, user)
}

func (s *Store) Login(ctx context.Context, email, password string) (models.User, error) {
	s.set(StateLoading, nil)
	cred, err := s.auth.Login(ctx, email, password)
	return s.finish(ctx, cred, err)
}

// Signup checks the confirmation locally before any network call.
func (s *Store) Signup(ctx context.Context, data SignupData) (models.User, error) {
	if data.Password != data.PasswordConfirm {
		return models.User{}, ErrPasswordMismatch
	}
	s.set(StateLoading, nil)
	cred, err := s.auth.Signup(ctx, data)
	return s.finish(ctx, cred, err)
}

func (s *Store) finish(ctx context.Context, cred services.Credential, err error) (models.User, error) {
	if err != nil {
		s.teardown(ctx)
		return models.User{}, err
	}
	if err := s.creds.Save(ctx, cred.Token, cred.User); err != nil {
		s.teardown(ctx)
		return models.User{}, fmt.Errorf("persist session: %w", err)
	}
	user := cred.User
	s.set(StateAuthenticated, &user)
	s.log.Info(ctx, "logged in", "user", user.Email, "role", user.Role)
	return user, nil
}

// Logout always ends anonymous with storage cleared. The returned error is
// the backend's and is only worth logging.
func (s *Store) Logout(ctx context.Context) error {
	err := s.auth.Logout(ctx)
	if err != nil {
		s.log.Warn(ctx, "backend logout failed", "error", err)
	}
	s.teardown(ctx)
	return err
}

// Invalidate tears the session down after the backend rejected the
// credential.
func (s *Store) Invalidate(ctx context.Context) {
	if s.State() == StateAuthenticated {
		s.log.Warn(ctx, "session invalidated")
	}
	s.teardown(ctx)
}

func (s *Store) teardown(ctx context.Context) {
	if err := s.creds.Clear(ctx); err != nil {
		s.log.Error(ctx, "clear stored credentials", "error", err)
	}
	s.set(StateAnonymous, nil)
}

func (s *Store) expired(ctx context.Context) bool {
	token, err := s.creds.Token(ctx)
	if err != nil {
		s.log.Warn(ctx, "read stored credential", "error", err)
		return false
	}
	exp, ok := TokenExpiry(token)
	return ok && !s.now().Before(exp)
}

// Watch invalidates the session once the stored credential expires. It
// returns when ctx is done.
func (s *Store) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if s.IsAuthenticated() && s.expired(ctx) {
				s.log.Info(ctx, "stored credential expired")
				s.Invalidate(ctx)
			}
		case <-ctx.Done():
			return
		}
	}
}
