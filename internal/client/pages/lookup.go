package pages

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/salesdesk/internal/logging"
)

// Lookup is a secondary page load: dropdown options, KPI cards, logs. Its
// failure stays on the lookup and never touches the page's main list.
type Lookup[T any] struct {
	name  string
	load  func(ctx context.Context) (T, error)
	log   logging.Logger
	value T
	err   error
}

func NewLookup[T any](name string, log logging.Logger, load func(ctx context.Context) (T, error)) *Lookup[T] {
	if log == nil {
		log = logging.Nop()
	}
	return &Lookup[T]{name: name, load: load, log: log}
}

func (l *Lookup[T]) Load(ctx context.Context) error {
	v, err := l.load(ctx)
	if err != nil {
		l.err = err
		l.log.Warn(ctx, "secondary load failed", "lookup", l.name, "error", err)
		return err
	}
	l.value, l.err = v, nil
	return nil
}

func (l *Lookup[T]) Value() T   { return l.value }
func (l *Lookup[T]) Err() error { return l.err }

// Set replaces the value after a mutation returned a fresher copy.
func (l *Lookup[T]) Set(v T) {
	l.value, l.err = v, nil
}

type loader interface {
	Load(ctx context.Context) error
}

// loadPage runs the secondary loads next to the primary one and returns
// the primary error only.
func loadPage(ctx context.Context, primary func(ctx context.Context) error, secondary ...loader) error {
	var g errgroup.Group
	for _, l := range secondary {
		g.Go(func() error {
			_ = l.Load(ctx)
			return nil
		})
	}
	var err error
	if primary != nil {
		err = primary(ctx)
	}
	_ = g.Wait()
	return err
}

// loadAll runs loaders concurrently and returns the first error. Every
// loader keeps its own result.
func loadAll(ctx context.Context, loaders ...loader) error {
	var g errgroup.Group
	for _, l := range loaders {
		g.Go(func() error { return l.Load(ctx) })
	}
	return g.Wait()
}
