package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"

	"github.com/charlesng35/ayumi/pkg/logger"
	"github.com/charlesng35/ayumi/pkg/metrics"
)

// Handler processes one day key in the background.
type Handler interface {
	GenerateAndStore(ctx context.Context, dayKey string) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, dayKey string) error

func (f HandlerFunc) GenerateAndStore(ctx context.Context, dayKey string) error {
	return f(ctx, dayKey)
}

// DispatcherConfig sizes the worker pool.
type DispatcherConfig struct {
	Workers   int
	QueueSize int
}

// Dispatcher runs generation jobs on a fixed pool of workers. A day key is
// held at most once between Submit and job completion.
type Dispatcher struct {
	handler Handler
	queue   chan string

	mu       sync.Mutex
	inflight map[string]struct{}
	closed   bool

	workers conc.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	log     *zap.Logger
}

// NewDispatcher starts the workers.
func NewDispatcher(handler Handler, cfg DispatcherConfig) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 16
	}

	ctx, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		handler:  handler,
		queue:    make(chan string, cfg.QueueSize),
		inflight: make(map[string]struct{}),
		ctx:      ctx,
		cancel:   cancel,
		log:      logger.WithModule("dashboard.dispatcher"),
	}
	for i := 0; i < cfg.Workers; i++ {
		d.workers.Go(d.work)
	}
	return d
}

// Submit queues dayKey without blocking. It reports false when the key is
// already pending, the queue is full, or the dispatcher is shut down.
func (d *Dispatcher) Submit(dayKey string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		metrics.DispatcherJobs.WithLabelValues("rejected").Inc()
		return false
	}
	if _, ok := d.inflight[dayKey]; ok {
		metrics.DispatcherJobs.WithLabelValues("duplicate").Inc()
		return false
	}

	select {
	case d.queue <- dayKey:
		d.inflight[dayKey] = struct{}{}
		metrics.DispatcherJobs.WithLabelValues("queued").Inc()
		metrics.DispatcherQueueDepth.Inc()
		return true
	default:
		metrics.DispatcherJobs.WithLabelValues("dropped").Inc()
		d.log.Warn("generation queue full, dropping job", zap.String("day_key", dayKey))
		return false
	}
}

// Pending reports whether dayKey is queued or running.
func (d *Dispatcher) Pending(dayKey string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.inflight[dayKey]
	return ok
}

// Shutdown stops intake and waits for queued jobs to finish. When ctx expires
// first, running jobs are cancelled and ctx.Err() is returned.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.workers.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		return nil
	case <-ctx.Done():
		d.cancel()
		<-done
		return ctx.Err()
	}
}

func (d *Dispatcher) work() {
	for dayKey := range d.queue {
		metrics.DispatcherQueueDepth.Dec()
		d.run(dayKey)
	}
}

func (d *Dispatcher) run(dayKey string) {
	defer func() {
		d.mu.Lock()
		delete(d.inflight, dayKey)
		d.mu.Unlock()
	}()

	if d.ctx.Err() != nil {
		metrics.DispatcherJobs.WithLabelValues("cancelled").Inc()
		return
	}

	started := time.Now()
	var (
		catcher panics.Catcher
		err     error
	)
	catcher.Try(func() {
		err = d.handler.GenerateAndStore(d.ctx, dayKey)
	})

	if recovered := catcher.Recovered(); recovered != nil {
		metrics.DispatcherJobs.WithLabelValues("panicked").Inc()
		d.log.Error("generation job panicked",
			zap.String("day_key", dayKey),
			zap.Any("panic", recovered.Value),
			zap.ByteString("stack", recovered.Stack),
		)
		return
	}
	if err != nil {
		metrics.DispatcherJobs.WithLabelValues("failed").Inc()
		return
	}
	metrics.DispatcherJobs.WithLabelValues("done").Inc()
	d.log.Debug("generation job finished", zap.String("day_key", dayKey), zap.Duration("elapsed", time.Since(started)))
}
