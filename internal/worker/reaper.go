package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"closing_table/pkg/contextx"
	"closing_table/pkg/logx"
	"closing_table/pkg/metrics"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type reapable interface {
	Reap(ctx context.Context) (int, error)
}

type namedStore struct {
	name  string
	store reapable
}

// Reaper periodically drops lapsed offers and results so that memory does not
// grow with entries nobody will ever look up again.
type Reaper struct {
	stores   []namedStore
	interval time.Duration
	metrics  *metrics.Negotiation

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewReaper(interval time.Duration) *Reaper {
	return &Reaper{
		interval: interval,
		metrics:  metrics.NewNegotiation(nil),
	}
}

func (w *Reaper) WithStore(name string, store reapable) *Reaper {
	w.stores = append(w.stores, namedStore{name: name, store: store})
	return w
}

func (w *Reaper) WithMetrics(m *metrics.Negotiation) *Reaper {
	w.metrics = m
	return w
}

// Start runs the reaper in the background until Stop is called or ctx ends.
func (w *Reaper) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("reaper is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)

	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("reaper stopped", logx.Error(err))
		}
	}()

	return nil
}

// Stop cancels a running reaper and waits for it to exit.
func (w *Reaper) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *Reaper) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

// Run sweeps every interval until ctx is done.
func (w *Reaper) Run(ctx context.Context) error {
	logger(ctx).Info("reaper started", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("reaper stopped")
			return ctx.Err()
		case <-ticker.C:
			w.ReapOnce(ctx)
		}
	}
}

// ReapOnce sweeps every store once and returns the total removed. A failing
// store is logged and does not stop the others.
func (w *Reaper) ReapOnce(ctx context.Context) int {
	var total int

	for _, s := range w.stores {
		removed, err := s.store.Reap(ctx)
		if err != nil {
			logger(ctx).Error("reap failed", slog.String(logx.FieldStore, s.name), logx.Error(err))
		}

		w.metrics.Reaped.WithLabelValues(s.name).Add(float64(removed))
		total += removed
	}

	if total > 0 {
		logger(ctx).Info("reap cycle completed", slog.Int(logx.FieldReaped, total))
	}

	return total
}
