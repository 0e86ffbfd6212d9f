package pages

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/dmitrijs2005/salesdesk/internal/client/api"
	"github.com/dmitrijs2005/salesdesk/internal/client/services"
)

type call struct {
	Method string
	Path   string
	Body   any
	Params url.Values
}

// fakeSender answers "METHOD path" with canned bodies. Unknown keys get
// an empty success body.
type fakeSender struct {
	mu      sync.Mutex
	calls   []call
	replies map[string]string
	errs    map[string]error
}

func newFakeSender() *fakeSender {
	return &fakeSender{replies: map[string]string{}, errs: map[string]error{}}
}

func (f *fakeSender) on(method, path, body string) *fakeSender {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[method+" "+path] = body
	return f
}

func (f *fakeSender) fail(method, path string, err error) *fakeSender {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[method+" "+path] = err
	return f
}

func (f *fakeSender) Send(_ context.Context, method, path string, body any, params url.Values) (*api.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{Method: method, Path: path, Body: body, Params: params})
	key := method + " " + path
	if err := f.errs[key]; err != nil {
		return nil, err
	}
	reply, ok := f.replies[key]
	if !ok {
		reply = `{"status":"success"}`
	}
	return &api.Response{Status: http.StatusOK, Body: []byte(reply)}, nil
}

func (f *fakeSender) count(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

func (f *fakeSender) find(method, path string) (call, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.calls) - 1; i >= 0; i-- {
		if c := f.calls[i]; c.Method == method && c.Path == path {
			return c, true
		}
	}
	return call{}, false
}

func (f *fakeSender) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type answer struct {
	ok  bool
	err error
}

// scriptedConfirm replies with ok and records prompts.
type scriptedConfirm struct {
	answer
	prompts []string
}

func (s *scriptedConfirm) Confirm(_ context.Context, prompt string) (bool, error) {
	s.prompts = append(s.prompts, prompt)
	return s.ok, s.err
}

func testDeps(f *fakeSender, c Confirmer) Deps {
	return Deps{Services: services.NewSet(f, nil), Confirm: c}
}
