package router

import "github.com/dmitrijs2005/salesdesk/internal/client/session"

type Kind int

const (
	// Render shows the page at Path.
	Render Kind = iota
	// Redirect sends the user to Path instead.
	Redirect
	// Placeholder is shown while the session is still being checked; no
	// navigation happens.
	Placeholder
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Render:
		return "render"
	case Redirect:
		return "redirect"
	case Placeholder:
		return "placeholder"
	default:
		return "not-found"
	}
}

type Decision struct {
	Kind Kind
	Path string
}

// SessionState is the part of the session store the guard reads.
type SessionState interface {
	State() session.State
}

type Guard struct {
	session SessionState
}

func NewGuard(s SessionState) *Guard {
	return &Guard{session: s}
}

// Checking reports whether the session is still loading.
func (g *Guard) Checking() bool {
	st := g.session.State()
	return st == session.StateLoading || st == session.StateUninitialized
}

// Resolve decides what to show for path. Unauthenticated visits to a
// protected page redirect to the login page and the requested path is
// dropped.
func (g *Guard) Resolve(path string) Decision {
	if Normalize(path) == PathRoot {
		if g.Checking() {
			return Decision{Kind: Placeholder}
		}
		if g.session.State() != session.StateAuthenticated {
			return Decision{Kind: Redirect, Path: PathLogin}
		}
		return Decision{Kind: Redirect, Path: PathDashboard}
	}

	r, err := Lookup(path)
	if err != nil {
		return Decision{Kind: NotFound, Path: Normalize(path)}
	}
	if !r.Protected {
		return Decision{Kind: Render, Path: r.Path}
	}
	if g.Checking() {
		return Decision{Kind: Placeholder}
	}
	if g.session.State() != session.StateAuthenticated {
		return Decision{Kind: Redirect, Path: PathLogin}
	}
	return Decision{Kind: Render, Path: r.Path}
}
