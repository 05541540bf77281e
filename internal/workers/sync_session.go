package workers

import (
	"context"
	"sync"
	"time"

	"k8s.io/utils/clock"
)

// syncSession owns the periodic schedule for one activated identity.
// It is created on activation and released exactly once on deactivation.
type syncSession struct {
	userID     string
	generation uint64

	cancel  context.CancelFunc
	done    chan struct{}
	release sync.Once
}

// startSyncSession launches the ticker loop. tick is invoked once per period
// until the session is released or ctx is cancelled.
func startSyncSession(ctx context.Context, clk clock.WithTicker, interval time.Duration,
	userID string, generation uint64, tick func()) *syncSession {
	ctx, cancel := context.WithCancel(ctx)
	s := &syncSession{
		userID:     userID,
		generation: generation,
		cancel:     cancel,
		done:       make(chan struct{}),
	}

	ticker := clk.NewTicker(interval)
	go func() {
		defer close(s.done)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C():
				tick()
			}
		}
	}()

	return s
}

// Release stops the schedule and waits for the ticker loop to exit. Calls
// after the first are no-ops. In-flight attempts are not cancelled.
func (s *syncSession) Release() {
	s.release.Do(func() {
		s.cancel()
		<-s.done
	})
}
