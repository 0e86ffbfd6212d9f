package pages

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/client/api"
)

var (
	ErrNoSelection = errors.New("no record selected")
	ErrNoRecord    = errors.New("record not found")
)

// Feedback is the inline message pair shown by a form or modal.
type Feedback struct {
	Err     string
	Success string
}

// Fail records the user-facing message for err and returns err.
func (f *Feedback) Fail(err error, fallback string) error {
	f.Success = ""
	f.Err = api.Message(err, fallback)
	return err
}

func (f *Feedback) Succeed(msg string) {
	f.Err = ""
	f.Success = msg
}

func (f *Feedback) Reset() {
	f.Err, f.Success = "", ""
}

// Modal binds at most one record for an action. Closing clears the
// selection; the last message stays readable until the next open.
type Modal[T any] struct {
	Feedback
	open     bool
	editing  bool
	selected *T
}

// Open shows rec read-only.
func (m *Modal[T]) Open(rec T) {
	m.Reset()
	m.open, m.editing, m.selected = true, false, &rec
}

// Edit opens rec for editing.
func (m *Modal[T]) Edit(rec T) {
	m.Open(rec)
	m.editing = true
}

// OpenNew opens an add form with nothing selected.
func (m *Modal[T]) OpenNew() {
	m.Reset()
	m.open, m.editing, m.selected = true, false, nil
}

func (m *Modal[T]) Close() {
	m.open, m.editing, m.selected = false, false, nil
}

func (m *Modal[T]) IsOpen() bool  { return m.open }
func (m *Modal[T]) Editing() bool { return m.open && m.editing }

func (m *Modal[T]) Selected() (T, bool) {
	if !m.open || m.selected == nil {
		var zero T
		return zero, false
	}
	return *m.selected, true
}

// settle waits delay so the success message can be read, then runs done.
// A cancelled ctx skips the wait.
func settle(ctx context.Context, delay time.Duration, done func()) {
	if delay > 0 {
		t := time.NewTimer(delay)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
		}
	}
	done()
}
