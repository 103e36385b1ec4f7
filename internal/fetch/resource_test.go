package fetch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefresh_Success(t *testing.T) {
	r := NewResource(func(ctx context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})

	require.NoError(t, r.Refresh(context.Background()))

	s := r.Snapshot()
	assert.Equal(t, []string{"a", "b"}, s.Data)
	assert.False(t, s.Loading)
	assert.Empty(t, s.Err)
}

func TestRefresh_NilResultBecomesEmptyList(t *testing.T) {
	r := NewResource(func(ctx context.Context) ([]string, error) {
		return nil, nil
	})

	require.NoError(t, r.Refresh(context.Background()))
	assert.Equal(t, []string{}, r.Snapshot().Data)
}

func TestRefresh_FailureResetsData(t *testing.T) {
	calls := 0
	r := NewResource(func(ctx context.Context) ([]string, error) {
		calls++
		if calls == 1 {
			return []string{"stale"}, nil
		}
		return nil, errors.New("X")
	})

	require.NoError(t, r.Refresh(context.Background()))
	err := r.Refresh(context.Background())
	require.Error(t, err)

	s := r.Snapshot()
	assert.Equal(t, []string{}, s.Data)
	assert.False(t, s.Loading)
	assert.Equal(t, "X", s.Err)
}

func TestRefresh_SuccessClearsPreviousError(t *testing.T) {
	calls := 0
	r := NewResource(func(ctx context.Context) ([]string, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("boom")
		}
		return []string{"ok"}, nil
	})

	_ = r.Refresh(context.Background())
	require.NoError(t, r.Refresh(context.Background()))

	s := r.Snapshot()
	assert.Empty(t, s.Err)
	assert.Equal(t, []string{"ok"}, s.Data)
}

// A fetch initiated earlier but settling later must not overwrite the outcome
// of the most recently initiated fetch.
func TestRefresh_StaleCompletionDiscarded(t *testing.T) {
	release := make(chan struct{})
	starts := make(chan int, 2)
	call := 0
	var mu sync.Mutex

	r := NewResource(func(ctx context.Context) ([]string, error) {
		mu.Lock()
		call++
		n := call
		mu.Unlock()
		starts <- n
		if n == 1 {
			<-release // first fetch hangs until after the second settles
			return []string{"old"}, nil
		}
		return []string{"new"}, nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = r.Refresh(context.Background())
	}()
	<-starts // first fetch is in flight

	require.NoError(t, r.Refresh(context.Background()))
	<-starts
	assert.Equal(t, []string{"new"}, r.Snapshot().Data)

	close(release)
	wg.Wait()

	// the late first completion was discarded
	assert.Equal(t, []string{"new"}, r.Snapshot().Data)
}

func TestClose_NoUpdateAfterClose(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	r := NewResource(func(ctx context.Context) ([]string, error) {
		close(started)
		<-release
		return []string{"late"}, nil // ignores cancellation on purpose
	})

	done := make(chan error, 1)
	go func() { done <- r.Refresh(context.Background()) }()
	<-started

	r.Close()
	close(release)
	require.NoError(t, <-done)

	s := r.Snapshot()
	assert.Empty(t, s.Data, "state must not change after Close")
}

func TestClose_CancelsInFlightFetch(t *testing.T) {
	started := make(chan struct{})
	r := NewResource(func(ctx context.Context) ([]string, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	})

	done := make(chan error, 1)
	go func() { done <- r.Refresh(context.Background()) }()
	<-started

	r.Close()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("fetch was not cancelled by Close")
	}
}

func TestRefresh_AfterCloseReturnsErrClosed(t *testing.T) {
	r := NewResource(func(ctx context.Context) ([]string, error) { return nil, nil })
	r.Close()
	assert.ErrorIs(t, r.Refresh(context.Background()), ErrClosed)
}

func TestSetData_OptimisticMutation(t *testing.T) {
	r := NewResource(func(ctx context.Context) ([]string, error) {
		return []string{"a", "b", "c"}, nil
	})
	require.NoError(t, r.Refresh(context.Background()))

	r.SetData([]string{"a", "c"})
	assert.Equal(t, []string{"a", "c"}, r.Snapshot().Data)
}

func TestSubscribe_NotifiedOnChange(t *testing.T) {
	r := NewResource(func(ctx context.Context) ([]string, error) {
		return []string{"a"}, nil
	})
	ch := r.Subscribe()

	require.NoError(t, r.Refresh(context.Background()))

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a change notification")
	}
}
