package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

func TestSyncSession_TicksUntilReleased(t *testing.T) {
	fc := testingclock.NewFakeClock(time.Now())
	var ticks atomic.Int32

	s := startSyncSession(context.Background(), fc, period, "u1", 1, func() { ticks.Add(1) })
	require.True(t, fc.HasWaiters())

	fc.Step(period)
	require.Eventually(t, func() bool { return ticks.Load() == 1 }, time.Second, time.Millisecond)

	s.Release()
	fc.Step(period)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), ticks.Load())
}

func TestSyncSession_ReleaseIsIdempotent(t *testing.T) {
	fc := testingclock.NewFakeClock(time.Now())
	s := startSyncSession(context.Background(), fc, period, "u1", 1, func() {})

	assert.NotPanics(t, func() {
		s.Release()
		s.Release()
	})
}

func TestSyncSession_StopsWithParentContext(t *testing.T) {
	fc := testingclock.NewFakeClock(time.Now())
	ctx, cancel := context.WithCancel(context.Background())

	s := startSyncSession(ctx, fc, period, "u1", 1, func() {})
	cancel()

	select {
	case <-s.done:
	case <-time.After(time.Second):
		t.Fatal("session loop did not exit")
	}
	s.Release()
}
