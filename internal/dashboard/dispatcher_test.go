package dashboard

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type blockingHandler struct {
	started chan string
	release chan struct{}
	done    atomic.Int32
}

func newBlockingHandler() *blockingHandler {
	return &blockingHandler{started: make(chan string, 16), release: make(chan struct{})}
}

func (h *blockingHandler) GenerateAndStore(ctx context.Context, dayKey string) error {
	h.started <- dayKey
	select {
	case <-h.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	h.done.Add(1)
	return nil
}

func TestDispatcherDeduplicatesPendingDay(t *testing.T) {
	handler := newBlockingHandler()
	d := NewDispatcher(handler, DispatcherConfig{Workers: 1, QueueSize: 4})

	require.True(t, d.Submit("2025-06-01"))
	require.Equal(t, "2025-06-01", <-handler.started)

	require.False(t, d.Submit("2025-06-01"), "running day must not be queued again")
	require.True(t, d.Pending("2025-06-01"))

	close(handler.release)
	require.NoError(t, d.Shutdown(context.Background()))
	require.EqualValues(t, 1, handler.done.Load())
	require.False(t, d.Pending("2025-06-01"))
}

func TestDispatcherAllowsRetryAfterCompletion(t *testing.T) {
	var calls atomic.Int32
	d := NewDispatcher(HandlerFunc(func(context.Context, string) error {
		calls.Add(1)
		return nil
	}), DispatcherConfig{Workers: 1, QueueSize: 1})

	require.True(t, d.Submit("2025-06-01"))
	require.Eventually(t, func() bool { return !d.Pending("2025-06-01") }, time.Second, 5*time.Millisecond)
	require.True(t, d.Submit("2025-06-01"))

	require.NoError(t, d.Shutdown(context.Background()))
	require.EqualValues(t, 2, calls.Load())
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	handler := newBlockingHandler()
	d := NewDispatcher(handler, DispatcherConfig{Workers: 1, QueueSize: 1})

	require.True(t, d.Submit("2025-06-01"))
	<-handler.started // worker busy

	require.True(t, d.Submit("2025-06-02"))  // fills the queue
	require.False(t, d.Submit("2025-06-03")) // dropped, does not block
	require.False(t, d.Pending("2025-06-03"))

	close(handler.release)
	require.NoError(t, d.Shutdown(context.Background()))
	require.EqualValues(t, 2, handler.done.Load())
}

func TestDispatcherShutdownDrainsQueue(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	d := NewDispatcher(HandlerFunc(func(_ context.Context, dayKey string) error {
		time.Sleep(5 * time.Millisecond)
		mu.Lock()
		seen = append(seen, dayKey)
		mu.Unlock()
		return nil
	}), DispatcherConfig{Workers: 1, QueueSize: 8})

	keys := []string{"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04"}
	for _, key := range keys {
		require.True(t, d.Submit(key))
	}

	require.NoError(t, d.Shutdown(context.Background()))
	require.ElementsMatch(t, keys, seen)
	require.False(t, d.Submit("2025-06-05"), "submit after shutdown is rejected")
}

func TestDispatcherShutdownDeadlineCancelsJobs(t *testing.T) {
	handler := newBlockingHandler()
	d := NewDispatcher(handler, DispatcherConfig{Workers: 1, QueueSize: 1})

	require.True(t, d.Submit("2025-06-01"))
	<-handler.started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.ErrorIs(t, d.Shutdown(ctx), context.DeadlineExceeded)
	require.Zero(t, handler.done.Load())
}

func TestDispatcherSurvivesPanics(t *testing.T) {
	var calls atomic.Int32
	d := NewDispatcher(HandlerFunc(func(_ context.Context, dayKey string) error {
		calls.Add(1)
		if dayKey == "2025-06-01" {
			panic("boom")
		}
		return nil
	}), DispatcherConfig{Workers: 1, QueueSize: 4})

	require.True(t, d.Submit("2025-06-01"))
	require.True(t, d.Submit("2025-06-02"))

	require.NoError(t, d.Shutdown(context.Background()))
	require.EqualValues(t, 2, calls.Load())
	require.False(t, d.Pending("2025-06-01"))
}
