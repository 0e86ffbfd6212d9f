package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/client/api"
	"github.com/dmitrijs2005/salesdesk/internal/client/config"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/services"
	"github.com/dmitrijs2005/salesdesk/internal/client/session"
	"github.com/dmitrijs2005/salesdesk/internal/logging"
)

type fakeSession struct {
	state   session.State
	user    models.User
	err     error
	logins  [][2]string
	signups []session.SignupData
	logouts int
	subs    []func(session.State)
}

func signedIn() *fakeSession {
	return &fakeSession{state: session.StateAuthenticated, user: models.User{ID: "m1", Name: "Meera", Email: "m@x.io"}}
}

func (f *fakeSession) State() session.State  { return f.state }
func (f *fakeSession) IsAuthenticated() bool { return f.state == session.StateAuthenticated }
func (f *fakeSession) User() (models.User, error) {
	if !f.IsAuthenticated() {
		return models.User{}, session.ErrNotAuthenticated
	}
	return f.user, nil
}
func (f *fakeSession) Initialize(context.Context) {
	if f.state == session.StateUninitialized {
		f.state = session.StateAnonymous
	}
}
func (f *fakeSession) Login(_ context.Context, email, password string) (models.User, error) {
	f.logins = append(f.logins, [2]string{email, password})
	if f.err != nil {
		f.state = session.StateAnonymous
		return models.User{}, f.err
	}
	f.state = session.StateAuthenticated
	return f.user, nil
}
func (f *fakeSession) Signup(_ context.Context, data session.SignupData) (models.User, error) {
	f.signups = append(f.signups, data)
	if f.err != nil {
		return models.User{}, f.err
	}
	f.state = session.StateAuthenticated
	return f.user, nil
}
func (f *fakeSession) Logout(context.Context) error {
	f.logouts++
	f.state = session.StateAnonymous
	return f.err
}
func (f *fakeSession) Watch(context.Context, time.Duration) {}
func (f *fakeSession) Subscribe(fn func(session.State)) func() {
	f.subs = append(f.subs, fn)
	return func() { f.subs = nil }
}

// expire ends the session the way the expiry watcher does.
func (f *fakeSession) expire() {
	f.state = session.StateAnonymous
	f.notify()
}

func (f *fakeSession) notify() {
	for _, fn := range f.subs {
		fn(f.state)
	}
}

// fakeSender answers "METHOD path" with canned bodies. A 401 reply also
// ends the fake session, the way the real client's handler does.
type fakeSender struct {
	mu      sync.Mutex
	sess    *fakeSession
	calls   []string
	replies map[string]string
	errs    map[string]error
}

func newFakeSender(sess *fakeSession) *fakeSender {
	return &fakeSender{sess: sess, replies: map[string]string{}, errs: map[string]error{}}
}

func (f *fakeSender) on(method, path, body string) *fakeSender {
	f.replies[method+" "+path] = body
	return f
}

func (f *fakeSender) fail(method, path string, err error) *fakeSender {
	f.errs[method+" "+path] = err
	return f
}

func (f *fakeSender) Send(_ context.Context, method, path string, _ any, _ url.Values) (*api.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := method + " " + path
	f.calls = append(f.calls, key)
	if err := f.errs[key]; err != nil {
		if apiErr, ok := err.(*api.Error); ok && apiErr.Status == http.StatusUnauthorized {
			f.sess.state = session.StateAnonymous
		}
		return nil, err
	}
	reply, ok := f.replies[key]
	if !ok {
		reply = `{"status":"success"}`
	}
	return &api.Response{Status: http.StatusOK, Body: []byte(reply)}, nil
}

func (f *fakeSender) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == key {
			n++
		}
	}
	return n
}

func newTestApp(t *testing.T, sess *fakeSession, sender *fakeSender, input string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a := newApp(&config.Config{}, logging.Nop(), sess, services.NewSet(sender, nil), rdr(input), &out)
	return a, &out
}
