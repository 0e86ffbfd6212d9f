package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/client/api"
	"github.com/dmitrijs2005/salesdesk/internal/client/config"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/pages"
	"github.com/dmitrijs2005/salesdesk/internal/client/router"
	"github.com/dmitrijs2005/salesdesk/internal/client/services"
	"github.com/dmitrijs2005/salesdesk/internal/client/session"
	"github.com/dmitrijs2005/salesdesk/internal/client/storage"
	"github.com/dmitrijs2005/salesdesk/internal/logging"
)

// sessionStore is the part of *session.Store the App drives.
type sessionStore interface {
	State() session.State
	IsAuthenticated() bool
	User() (models.User, error)
	Initialize(ctx context.Context)
	Login(ctx context.Context, email, password string) (models.User, error)
	Signup(ctx context.Context, data session.SignupData) (models.User, error)
	Logout(ctx context.Context) error
	Watch(ctx context.Context, interval time.Duration)
	Subscribe(fn func(session.State)) func()
}

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session sessionStore
	guard   *router.Guard
	views   map[string]view
	route   string
	reader  *bufio.Reader
	out     io.Writer

	// busy counts running commands; session changes they cause are
	// reported by the command itself.
	busy atomic.Int32
}

// NewApp opens the session database and wires the REST client, the
// session and the pages. A 401 from any request ends the session.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}
	creds := storage.NewCredentials(db)

	client, err := api.New(c.BackendURL, creds, api.WithTimeout(c.RequestTimeout), api.WithLogger(log))
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	set := services.NewSet(client, log)
	store := session.NewStore(set.Auth, creds, log)
	client.OnUnauthorized(store.Invalidate)

	a := newApp(c, log, store, set, bufio.NewReader(os.Stdin), os.Stdout)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, store sessionStore, set *services.Set, reader *bufio.Reader, out io.Writer) *App {
	a := &App{
		config:  c,
		log:     log,
		session: store,
		guard:   router.NewGuard(store),
		route:   router.PathRoot,
		reader:  reader,
		out:     out,
	}
	deps := pages.Deps{
		Services:     set,
		Confirm:      pages.ConfirmFunc(a.confirm),
		Log:          log,
		SuccessDelay: c.SuccessDelay,
	}
	a.views = newViews(deps, &console{reader: reader, out: out, navigate: a.Open})
	return a
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run restores the session, starts the expiry watcher and blocks in the
// REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	printlnFn("Welcome to SalesDesk Manager (type 'help' for commands)")
	a.session.Initialize(ctx)
	unsubscribe := a.watchSession()
	defer unsubscribe()

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if a.config.SessionCheckInterval > 0 {
		go a.session.Watch(watchCtx, a.config.SessionCheckInterval)
	}

	_ = a.Open(ctx, router.PathRoot)
	runREPL(ctx, a, a.status, a.reader)
	return nil
}

// watchSession announces a session that ended between commands, e.g.
// through the expiry watcher.
// Only an authenticated session ending is announced.
func (a *App) watchSession() func() {
	var prev atomic.Int32
	prev.Store(int32(a.session.State()))
	return a.session.Subscribe(func(st session.State) {
		was := session.State(prev.Swap(int32(st)))
		if was == session.StateAuthenticated && st == session.StateAnonymous && a.busy.Load() == 0 {
			printlnFn("\nYour session has expired. Type 'login' to sign in again.")
		}
	})
}

// enter marks a command as running until the returned func is called.
func (a *App) enter() func() {
	a.busy.Add(1)
	return func() { a.busy.Add(-1) }
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	s := a.route
	if u, err := a.session.User(); err == nil {
		who := u.Email
		if who == "" {
			who = u.Name
		}
		s = who + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

// Open navigates to path through the route guard and renders the page.
func (a *App) Open(ctx context.Context, path string) error {
	defer a.enter()()
	d := a.guard.Resolve(path)
	switch d.Kind {
	case router.Placeholder:
		printlnFn("Checking session...")
		return nil
	case router.NotFound:
		printlnFn("Page not found:", d.Path)
		return router.ErrNotFound
	case router.Redirect:
		if d.Path == router.PathLogin {
			a.route = router.PathLogin
			printlnFn("Please log in: type 'login' or 'signup'.")
			return nil
		}
		return a.Open(ctx, d.Path)
	}

	a.route = d.Path
	if d.Path == router.PathLogin {
		printlnFn("Please log in: type 'login' or 'signup'.")
		return nil
	}
	v := a.views[d.Path]
	err := v.Load(ctx)
	v.render(a.out)
	a.afterRequest(ctx)
	return err
}

// quiet commands print their own output; the page is not re-rendered.
var quiet = map[string]bool{"show": true, "logs": true, "history": true, "filter": true, "select": true, "clear": true}

// Do runs a command of the open page and re-renders it.
func (a *App) Do(ctx context.Context, cmd string, args []string) error {
	v, ok := a.views[a.route]
	if !ok {
		printlnFn("Unknown command:", cmd)
		return errUnknownCommand
	}
	route := a.route
	leave := a.enter()
	err := v.handle(ctx, cmd, args)
	leave()
	switch {
	case errors.Is(err, errUnknownCommand):
		printlnFn("Unknown command:", cmd)
	case errors.Is(err, pages.ErrCancelled):
		printlnFn("Cancelled.")
	case errors.Is(err, pages.ErrSuperseded):
		// a newer fetch owns the page
	case err != nil:
		renderError(a.out, errors.New(api.Message(err, "Something went wrong.")))
	}
	if a.afterRequest(ctx) {
		return err
	}
	if err == nil && !quiet[cmd] && a.route == route {
		v.render(a.out)
	}
	return err
}

// afterRequest sends the user to login when a request ended the session.
// It reports whether it did.
func (a *App) afterRequest(ctx context.Context) bool {
	r, err := router.Lookup(a.route)
	if err != nil || !r.Protected || a.session.IsAuthenticated() {
		return false
	}
	printlnFn("Your session has ended.")
	_ = a.Open(ctx, a.route)
	return true
}

func (a *App) help() string {
	var b strings.Builder
	if !a.isLoggedIn() {
		b.WriteString("Available commands: login, signup, exit")
		return b.String()
	}
	b.WriteString("Available commands: open <page>, logout, help, exit\nPages:")
	for _, r := range router.Sidebar() {
		fmt.Fprintf(&b, "\n  %-16s %s", strings.TrimPrefix(r.Path, "/"), r.Title)
	}
	if v, ok := a.views[a.route]; ok {
		fmt.Fprintf(&b, "\nThis page: %s", v.usage())
	}
	return b.String()
}

// confirm asks a yes/no question; anything but y/yes declines.
func (a *App) confirm(_ context.Context, prompt string) (bool, error) {
	answer, err := getSimpleText(a.reader, prompt+" [y/N]", a.out)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// Restore loads the persisted session without starting the REPL.
func (a *App) Restore(ctx context.Context) {
	a.session.Initialize(ctx)
}

// Import runs a one-off spreadsheet import with the persisted session.
func (a *App) Import(ctx context.Context, path string) error {
	a.Restore(ctx)
	if !a.session.IsAuthenticated() {
		return session.ErrNotAuthenticated
	}
	v := a.views[router.PathUntouchedData].(*untouchedView)
	rep, err := v.page.Import(ctx, path)
	printImportReport(a.out, rep)
	return err
}
