package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dmitrijs2005/salesdesk/internal/client/api"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/services"
	"github.com/dmitrijs2005/salesdesk/internal/client/storage"
)

// ---- fakes ----

type fakeAuth struct {
	loginCred  services.Credential
	loginErr   error
	signupErr  error
	logoutErr  error
	calls      int32
	signupSeen services.SignupRequest
}

func (f *fakeAuth) Login(context.Context, string, string) (services.Credential, error) {
	atomic.AddInt32(&f.calls, 1)
	return f.loginCred, f.loginErr
}

func (f *fakeAuth) Signup(_ context.Context, req services.SignupRequest) (services.Credential, error) {
	atomic.AddInt32(&f.calls, 1)
	f.signupSeen = req
	return f.loginCred, f.signupErr
}

func (f *fakeAuth) Logout(context.Context) error {
	atomic.AddInt32(&f.calls, 1)
	return f.logoutErr
}

type memCreds struct {
	mu       sync.Mutex
	token    string
	user     *models.User
	readErr  error
	saveErr  error
	clearErr error
}

func (m *memCreds) Token(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.readErr
}

func (m *memCreds) Identity(context.Context) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user, m.readErr
}

func (m *memCreds) Save(_ context.Context, token string, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.token, m.user = token, &user
	return nil
}

func (m *memCreds) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.user = "", nil
	return m.clearErr
}

func (m *memCreds) stored() (string, *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.user
}

func signed(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": "u1", "exp": exp.Unix()}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

var manager = models.User{ID: "u1", Name: "Meera", Email: "meera@example.com", Role: models.RoleManager}

// ---- lifecycle ----

func TestInitialize_NoIdentityIsAnonymous(t *testing.T) {
	s := NewStore(&fakeAuth{}, &memCreds{}, nil)
	assert.Equal(t, StateUninitialized, s.State())

	s.Initialize(context.Background())
	assert.Equal(t, StateAnonymous, s.State())
	_, err := s.User()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestInitialize_StoredIdentityIsAuthenticated(t *testing.T) {
	u := manager
	creds := &memCreds{token: signed(t, time.Now().Add(time.Hour)), user: &u}
	s := NewStore(&fakeAuth{}, creds, nil)

	s.Initialize(context.Background())
	require.True(t, s.IsAuthenticated())
	got, err := s.User()
	require.NoError(t, err)
	assert.Equal(t, manager, got)
}

func TestInitialize_ExpiredCredentialIsCleared(t *testing.T) {
	u := manager
	creds := &memCreds{token: signed(t, time.Now().Add(-time.Minute)), user: &u}
	s := NewStore(&fakeAuth{}, creds, nil)

	s.Initialize(context.Background())
	assert.Equal(t, StateAnonymous, s.State())
	tok, user := creds.stored()
	assert.Empty(t, tok)
	assert.Nil(t, user)
}

func TestInitialize_ReadErrorNeverFails(t *testing.T) {
	s := NewStore(&fakeAuth{}, &memCreds{readErr: errors.New("disk")}, nil)
	s.Initialize(context.Background())
	assert.Equal(t, StateAnonymous, s.State())
}

func TestInitialize_UnreadableIdentityClearsToken(t *testing.T) {
	ctx := context.Background()
	db, err := storage.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()
	creds := storage.NewCredentials(db)
	require.NoError(t, creds.Save(ctx, "stale-token", manager))
	_, err = db.ExecContext(ctx, `UPDATE metadata SET value = ? WHERE key = 'user'`, []byte("{broken"))
	require.NoError(t, err)

	s := NewStore(&fakeAuth{}, creds, nil)
	s.Initialize(ctx)
	assert.Equal(t, StateAnonymous, s.State())

	tok, err := creds.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestInitialize_TokenWithoutIdentityIsCleared(t *testing.T) {
	creds := &memCreds{token: "orphan"}
	s := NewStore(&fakeAuth{}, creds, nil)
	s.Initialize(context.Background())

	assert.Equal(t, StateAnonymous, s.State())
	tok, _ := creds.stored()
	assert.Empty(t, tok)
}

func TestInitialize_OpaqueTokenIsKept(t *testing.T) {
	u := manager
	s := NewStore(&fakeAuth{}, &memCreds{token: "not-a-jwt", user: &u}, nil)
	s.Initialize(context.Background())
	assert.True(t, s.IsAuthenticated())
}

func TestUser_WhileLoading(t *testing.T) {
	s := NewStore(&fakeAuth{}, &memCreds{}, nil)
	s.set(StateLoading, nil)
	_, err := s.User()
	assert.ErrorIs(t, err, ErrLoading)
}

func TestLogin_SuccessPersists(t *testing.T) {
	creds := &memCreds{}
	s := NewStore(&fakeAuth{loginCred: services.Credential{Token: "t", User: manager}}, creds, nil)
	s.Initialize(context.Background())

	var seen []State
	s.Subscribe(func(st State) { seen = append(seen, st) })

	got, err := s.Login(context.Background(), "meera@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, manager, got)
	assert.Equal(t, StateAuthenticated, s.State())
	assert.Equal(t, []State{StateLoading, StateAuthenticated}, seen)

	tok, user := creds.stored()
	assert.Equal(t, "t", tok)
	assert.Equal(t, manager.ID, user.ID)
}

func TestLogin_FailureLeavesAnonymous(t *testing.T) {
	backendErr := &api.Error{Status: http.StatusUnauthorized, Message: "Incorrect email or password"}
	creds := &memCreds{token: "partial"}
	s := NewStore(&fakeAuth{loginErr: backendErr}, creds, nil)
	s.Initialize(context.Background())

	_, err := s.Login(context.Background(), "x", "y")
	require.ErrorIs(t, err, backendErr)
	assert.Equal(t, "Incorrect email or password", api.Message(err, "Login failed"))
	assert.Equal(t, StateAnonymous, s.State())
	tok, _ := creds.stored()
	assert.Empty(t, tok)
}

func TestLogin_PersistFailure(t *testing.T) {
	s := NewStore(&fakeAuth{loginCred: services.Credential{User: manager}}, &memCreds{saveErr: errors.New("readonly")}, nil)
	_, err := s.Login(context.Background(), "x", "y")
	require.ErrorContains(t, err, "persist session")
	assert.Equal(t, StateAnonymous, s.State())
}

func TestSignup_PasswordMismatchIsLocal(t *testing.T) {
	auth := &fakeAuth{}
	s := NewStore(auth, &memCreds{}, nil)
	s.Initialize(context.Background())

	_, err := s.Signup(context.Background(), SignupData{Email: "a@b.c", Password: "one", PasswordConfirm: "two"})
	require.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Equal(t, "Passwords do not match", err.Error())
	assert.Zero(t, atomic.LoadInt32(&auth.calls), "no backend call expected")
	assert.Equal(t, StateAnonymous, s.State())
}

func TestSignup_Success(t *testing.T) {
	auth := &fakeAuth{loginCred: services.Credential{Token: "t", User: manager}}
	s := NewStore(auth, &memCreds{}, nil)

	_, err := s.Signup(context.Background(), SignupData{Name: "Meera", Email: "m", Password: "p", PasswordConfirm: "p"})
	require.NoError(t, err)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "Meera", auth.signupSeen.Name)
}

func TestLogout_AlwaysClears(t *testing.T) {
	for name, backendErr := range map[string]error{"ok": nil, "network down": api.ErrUnavailable} {
		t.Run(name, func(t *testing.T) {
			u := manager
			creds := &memCreds{token: "t", user: &u}
			s := NewStore(&fakeAuth{logoutErr: backendErr}, creds, nil)
			s.Initialize(context.Background())
			require.True(t, s.IsAuthenticated())

			err := s.Logout(context.Background())
			assert.ErrorIs(t, err, backendErr)
			assert.Equal(t, StateAnonymous, s.State())
			tok, user := creds.stored()
			assert.Empty(t, tok)
			assert.Nil(t, user)
		})
	}
}

func TestSubscribe_Cancel(t *testing.T) {
	s := NewStore(&fakeAuth{}, &memCreds{}, nil)
	var n int
	cancel := s.Subscribe(func(State) { n++ })
	s.Initialize(context.Background())
	cancel()
	s.Invalidate(context.Background())
	s.set(StateLoading, nil)
	assert.Equal(t, 2, n) // loading, anonymous
}

// ---- wiring with the real adapter and storage ----

func TestUnauthorizedResponseTearsDownSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			_, _ = w.Write([]byte(`{"token":"jwt","data":{"user":{"_id":"u1","name":"Meera","role":"manager"}}}`))
		default:
			assert.Equal(t, "Bearer jwt", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Token expired"}`))
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	db, err := storage.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()
	creds := storage.NewCredentials(db)

	client, err := api.New(srv.URL, creds)
	require.NoError(t, err)
	s := NewStore(services.NewAuthService(client, nil), creds, nil)
	client.OnUnauthorized(s.Invalidate)
	s.Initialize(ctx)

	_, err = s.Login(ctx, "meera@example.com", "pw")
	require.NoError(t, err)
	require.True(t, s.IsAuthenticated())

	_, err = services.NewSales(client, nil).List(ctx, nil)
	require.ErrorIs(t, err, api.ErrUnauthorized)
	assert.NotErrorIs(t, err, api.ErrUnavailable)

	assert.Equal(t, StateAnonymous, s.State())
	tok, err := creds.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
	id, err := creds.Identity(ctx)
	require.NoError(t, err)
	assert.Nil(t, id)
}

// ---- watcher ----

func TestWatch_InvalidatesExpiredCredential(t *testing.T) {
	defer goleak.VerifyNone(t)

	u := manager
	creds := &memCreds{token: signed(t, time.Now().Add(time.Hour)), user: &u}
	s := NewStore(&fakeAuth{}, creds, nil)
	s.Initialize(context.Background())
	require.True(t, s.IsAuthenticated())

	// jump past expiry
	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	ended := make(chan struct{})
	s.Subscribe(func(st State) {
		if st == StateAnonymous {
			close(ended)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Watch(ctx, 5*time.Millisecond)
		close(done)
	}()

	select {
	case <-ended:
	case <-time.After(2 * time.Second):
		t.Fatal("session was not invalidated")
	}
	cancel()
	<-done
	assert.Equal(t, StateAnonymous, s.State())
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	got, ok := TokenExpiry(signed(t, exp))
	require.True(t, ok)
	assert.True(t, exp.Equal(got))

	_, ok = TokenExpiry("")
	assert.False(t, ok)
	_, ok = TokenExpiry("opaque")
	assert.False(t, ok)
}
