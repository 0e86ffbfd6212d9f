package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) help() string     { return "help text" }
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Signup(context.Context) error {
	f.calls = append(f.calls, "signup")
	return nil
}
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Open(_ context.Context, path string) error {
	f.calls = append(f.calls, "open "+path)
	return nil
}
func (f *fakeExec) Do(_ context.Context, cmd string, args []string) error {
	f.calls = append(f.calls, strings.TrimSpace("do "+cmd+" "+strings.Join(args, " ")))
	return nil
}

func silence(t *testing.T) *[]string {
	t.Helper()
	var out []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &out
}

func TestRunREPL_Dispatch(t *testing.T) {
	out := silence(t)

	input := strings.Join([]string{
		"help",
		"login",
		"salary",
		"/total-sales/",
		"open team-member",
		"open",
		"",
		"filter month=2024-06",
		"update 2 activity=Contacted",
		"logout",
		"exit",
		"login",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"login",
		"open salary",
		"open /total-sales/",
		"open team-member",
		"do filter month=2024-06",
		"do update 2 activity=Contacted",
		"logout",
	}, exec.calls)
	assert.Contains(t, *out, "help text")
	assert.Contains(t, *out, "Usage: open <page>")
	assert.Contains(t, *out, "sd status> ")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	silence(t)
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("signup")))
	assert.Equal(t, []string{"signup"}, exec.calls)
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	silence(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("login\n")))
	assert.Empty(t, exec.calls)
}
