package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// Timeout for a single warm-up pass
	warmTimeout = 10 * time.Second

	// Lower bound on the refresh interval
	minWarmInterval = time.Second
)

// =============================================================================
// Types
// =============================================================================

// SnapshotSource reloads a directory snapshot into its cache.
type SnapshotSource interface {
	Warm(ctx context.Context) (int, error)
}

// SnapshotWarmer keeps the cached directory snapshot populated so queries
// rarely pay for a store round-trip.
//
// - Warms once on startup, before traffic is accepted
// - Re-warms in the background every interval (keep it below the cache TTL)
// - Stop() ends the background loop; safe to call multiple times
type SnapshotWarmer struct {
	source   SnapshotSource
	log      *logrus.Logger
	interval time.Duration

	// Graceful shutdown
	stopChan chan struct{}
	wg       sync.WaitGroup
	started  atomic.Bool
	stopped  atomic.Bool
}

// =============================================================================
// Constructor
// =============================================================================

func NewSnapshotWarmer(source SnapshotSource, log *logrus.Logger, interval time.Duration) *SnapshotWarmer {
	if interval < minWarmInterval {
		interval = minWarmInterval
	}
	return &SnapshotWarmer{
		source:   source,
		log:      log,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// =============================================================================
// Lifecycle Methods
// =============================================================================

// Start warms the cache synchronously, then starts the refresh loop.
// A failed first pass is logged and does not prevent startup.
func (w *SnapshotWarmer) Start(ctx context.Context) {
	if !w.started.CompareAndSwap(false, true) {
		return
	}

	w.warm(ctx)

	w.wg.Add(1)
	go w.refreshLoop()
}

// Stop gracefully shuts down the refresh loop.
func (w *SnapshotWarmer) Stop() {
	if w.stopped.CompareAndSwap(false, true) {
		close(w.stopChan)
		w.wg.Wait()
		w.log.Info("SnapshotWarmer stopped")
	}
}

// =============================================================================
// Private Helper Methods
// =============================================================================

func (w *SnapshotWarmer) refreshLoop() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			w.log.Debug("Snapshot refresh goroutine stopping")
			return
		case <-ticker.C:
			w.warm(context.Background())
		}
	}
}

func (w *SnapshotWarmer) warm(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, warmTimeout)
	defer cancel()

	startTime := time.Now()
	count, err := w.source.Warm(ctx)
	if err != nil {
		w.log.Warnf("Failed to warm advocate snapshot: %+v", err)
		return
	}
	w.log.Debugf("Warmed advocate snapshot: %d advocates in %v", count, time.Since(startTime))
}
