package pages

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/salesdesk/internal/client/api"
)

func TestModal_SingleSelection(t *testing.T) {
	var m Modal[item]
	_, ok := m.Selected()
	assert.False(t, ok)

	m.Open(item{ID: "1"})
	m.Edit(item{ID: "2"})
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "2", sel.ID)
	assert.True(t, m.Editing())

	m.Succeed("done")
	m.Close()
	_, ok = m.Selected()
	assert.False(t, ok)
	assert.False(t, m.IsOpen())
	assert.Equal(t, "done", m.Success)

	m.OpenNew()
	assert.Empty(t, m.Success)
	_, ok = m.Selected()
	assert.False(t, ok)
}

func TestFeedback_FailUsesServerMessage(t *testing.T) {
	var f Feedback
	err := f.Fail(&api.Error{Status: 400, Message: "Email taken"}, "fallback")
	assert.Error(t, err)
	assert.Equal(t, "Email taken", f.Err)

	_ = f.Fail(errors.New(""), "fallback")
	assert.Equal(t, "fallback", f.Err)
}

func TestSettle_CancelledContextSkipsWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ran := false
	start := time.Now()
	settle(ctx, time.Hour, func() { ran = true })
	assert.True(t, ran)
	assert.Less(t, time.Since(start), time.Second)
}

func TestConfirm(t *testing.T) {
	ctx := context.Background()
	assert.ErrorIs(t, confirm(ctx, nil, "x"), ErrCancelled)
	assert.ErrorIs(t, confirm(ctx, &scriptedConfirm{}, "x"), ErrCancelled)
	assert.NoError(t, confirm(ctx, &scriptedConfirm{answer: answer{ok: true}}, "x"))

	boom := errors.New("closed")
	assert.ErrorIs(t, confirm(ctx, ConfirmFunc(func(context.Context, string) (bool, error) { return false, boom }), "x"), boom)
}
