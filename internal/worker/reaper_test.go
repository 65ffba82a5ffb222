package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"closing_table/pkg/metrics"
)

type countingStore struct {
	calls   atomic.Int32
	removed int
	err     error
}

func (s *countingStore) Reap(context.Context) (int, error) {
	s.calls.Add(1)
	return s.removed, s.err
}

func TestReaperReapOnce(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	offers := &countingStore{removed: 3}
	results := &countingStore{removed: 0, err: errors.New("boom")}
	m := metrics.NewNegotiation(prometheus.NewRegistry())

	reaper := NewReaper(time.Minute).
		WithStore("offers", offers).
		WithStore("results", results).
		WithMetrics(m)

	rq.Equal(3, reaper.ReapOnce(context.Background()))
	rq.Equal(int32(1), offers.calls.Load())
	rq.Equal(int32(1), results.calls.Load())
	rq.InDelta(3, testutil.ToFloat64(m.Reaped.WithLabelValues("offers")), 0)
}

func TestReaperLifecycle(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	store := &countingStore{removed: 1}
	reaper := NewReaper(5*time.Millisecond).WithStore("offers", store)

	rq.NoError(reaper.Start(context.Background()))
	rq.True(reaper.IsRunning())
	rq.Error(reaper.Start(context.Background()))

	rq.Eventually(func() bool { return store.calls.Load() >= 2 }, time.Second, time.Millisecond)

	reaper.Stop()
	rq.False(reaper.IsRunning())

	calls := store.calls.Load()
	time.Sleep(20 * time.Millisecond)
	rq.Equal(calls, store.calls.Load())

	reaper.Stop()
}

func TestReaperStopsWithContext(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	reaper := NewReaper(time.Hour)

	rq.NoError(reaper.Start(ctx))
	cancel()

	rq.Eventually(func() bool { return !reaper.IsRunning() }, time.Second, time.Millisecond)
}
