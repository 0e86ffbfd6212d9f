// Package pages holds one controller per route. Controllers own the page
// state (filters, lists, modals) and call the services; rendering belongs
// to the caller.
package pages

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is returned by a fetch whose result was dropped because a
// newer fetch started after it.
var ErrSuperseded = errors.New("superseded by a newer fetch")

type State int

const (
	StateIdle State = iota
	StateFetching
	StatePopulated
	StateEmpty
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateFetching:
		return "fetching"
	case StatePopulated:
		return "populated"
	case StateEmpty:
		return "empty"
	case StateErrored:
		return "errored"
	default:
		return "idle"
	}
}

// ListController keeps a fetched list and two copies of its filters: the
// draft being edited and the applied one that produced the list. Only
// Submit and Refresh fetch.
//
// Each fetch takes a sequence token; a result that arrives after a newer
// fetch started is dropped.
type ListController[T, F any] struct {
	fetch func(ctx context.Context, filters F) ([]T, error)
	id    func(T) string

	mu      sync.Mutex
	draft   F
	applied F
	items   []T
	state   State
	err     error
	seq     uint64
}

func NewList[T, F any](fetch func(ctx context.Context, filters F) ([]T, error), id func(T) string, initial F) *ListController[T, F] {
	return &ListController[T, F]{fetch: fetch, id: id, draft: initial, applied: initial}
}

func (c *ListController[T, F]) Draft() F {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

func (c *ListController[T, F]) Applied() F {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applied
}

// Edit changes the draft filters. It never fetches.
func (c *ListController[T, F]) Edit(fn func(f *F)) {
	c.mu.Lock()
	fn(&c.draft)
	c.mu.Unlock()
}

// Submit promotes the draft filters and fetches once with them.
func (c *ListController[T, F]) Submit(ctx context.Context) error {
	c.mu.Lock()
	c.applied = c.draft
	f := c.applied
	c.mu.Unlock()
	return c.load(ctx, f)
}

// Refresh fetches again with the applied filters.
func (c *ListController[T, F]) Refresh(ctx context.Context) error {
	return c.load(ctx, c.Applied())
}

func (c *ListController[T, F]) load(ctx context.Context, f F) error {
	c.mu.Lock()
	c.seq++
	token := c.seq
	c.state = StateFetching
	c.err = nil
	c.mu.Unlock()

	items, err := c.fetch(ctx, f)

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.seq {
		return ErrSuperseded
	}
	if err != nil {
		c.state = StateErrored
		c.err = err
		return err
	}
	c.items = items
	if len(items) == 0 {
		c.state = StateEmpty
	} else {
		c.state = StatePopulated
	}
	return nil
}

func (c *ListController[T, F]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err is the error of the last fetch, if it failed.
func (c *ListController[T, F]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Items returns a copy of the current list.
func (c *ListController[T, F]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *ListController[T, F]) Find(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if c.id(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Patch replaces the record with the same id in place.
func (c *ListController[T, F]) Patch(rec T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.id(rec)
	for i, it := range c.items {
		if c.id(it) == id {
			c.items[i] = rec
			return true
		}
	}
	return false
}

// Remove drops the record with id; an emptied list becomes StateEmpty.
func (c *ListController[T, F]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if c.id(it) == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			if len(c.items) == 0 && c.state == StatePopulated {
				c.state = StateEmpty
			}
			return true
		}
	}
	return false
}
