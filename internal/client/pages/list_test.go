package pages

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct{ ID, Name string }

func itemID(i item) string { return i.ID }

type countingFetch struct {
	mu    sync.Mutex
	calls []MonthTeamFilter
	items []item
	err   error
}

func (c *countingFetch) fetch(_ context.Context, f MonthTeamFilter) ([]item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, f)
	return c.items, c.err
}

func TestList_EditDoesNotFetchSubmitFetchesOnce(t *testing.T) {
	src := &countingFetch{items: []item{{ID: "1"}}}
	l := NewList(src.fetch, itemID, MonthTeamFilter{})

	l.Edit(func(f *MonthTeamFilter) { f.Month = "2024-06" })
	l.Edit(func(f *MonthTeamFilter) { f.TeamLeadID = "tl1" })
	assert.Empty(t, src.calls)
	assert.Equal(t, StateIdle, l.State())
	assert.Equal(t, MonthTeamFilter{}, l.Applied())

	require.NoError(t, l.Submit(context.Background()))
	require.Len(t, src.calls, 1)
	assert.Equal(t, MonthTeamFilter{Month: "2024-06", TeamLeadID: "tl1"}, src.calls[0])
	assert.Equal(t, l.Draft(), l.Applied())
	assert.Equal(t, StatePopulated, l.State())
}

func TestList_EmptyIsNotErrored(t *testing.T) {
	src := &countingFetch{}
	l := NewList(src.fetch, itemID, MonthTeamFilter{})
	require.NoError(t, l.Refresh(context.Background()))
	assert.Equal(t, StateEmpty, l.State())
	assert.NoError(t, l.Err())

	src.err = errors.New("boom")
	require.Error(t, l.Refresh(context.Background()))
	assert.Equal(t, StateErrored, l.State())
	assert.EqualError(t, l.Err(), "boom")
}

func TestList_StaleResultIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	fetch := func(ctx context.Context, f MonthTeamFilter) ([]item, error) {
		if f.Month == "old" {
			close(started)
			<-release
			return []item{{ID: "old"}}, nil
		}
		return []item{{ID: "new"}}, nil
	}
	l := NewList(fetch, itemID, MonthTeamFilter{Month: "old"})

	done := make(chan error, 1)
	go func() { done <- l.Refresh(context.Background()) }()
	<-started

	l.Edit(func(f *MonthTeamFilter) { f.Month = "new" })
	require.NoError(t, l.Submit(context.Background()))
	close(release)
	assert.ErrorIs(t, <-done, ErrSuperseded)

	assert.Equal(t, []item{{ID: "new"}}, l.Items())
	assert.Equal(t, StatePopulated, l.State())
}

func TestList_SupersededFailureIsNotReported(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	fetch := func(ctx context.Context, f MonthTeamFilter) ([]item, error) {
		if f.Month == "old" {
			close(started)
			<-release
			return nil, errors.New("boom")
		}
		return []item{{ID: "new"}}, nil
	}
	l := NewList(fetch, itemID, MonthTeamFilter{Month: "old"})

	done := make(chan error, 1)
	go func() { done <- l.Refresh(context.Background()) }()
	<-started

	l.Edit(func(f *MonthTeamFilter) { f.Month = "new" })
	require.NoError(t, l.Submit(context.Background()))
	close(release)

	err := <-done
	assert.ErrorIs(t, err, ErrSuperseded)
	assert.Equal(t, StatePopulated, l.State())
	assert.NoError(t, l.Err())
}

func TestList_PatchAndRemove(t *testing.T) {
	src := &countingFetch{items: []item{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}}
	l := NewList(src.fetch, itemID, MonthTeamFilter{})
	require.NoError(t, l.Refresh(context.Background()))

	assert.True(t, l.Patch(item{ID: "2", Name: "B"}))
	assert.False(t, l.Patch(item{ID: "9"}))
	got, ok := l.Find("2")
	require.True(t, ok)
	assert.Equal(t, "B", got.Name)

	assert.True(t, l.Remove("1"))
	assert.True(t, l.Remove("2"))
	assert.Equal(t, StateEmpty, l.State())
	assert.Len(t, src.calls, 1)
}
