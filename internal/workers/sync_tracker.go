package workers

import (
	"context"
	"sync"
	"time"

	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/internal/utils"
	"github.com/memehoueibib/securecode-platform-sub001/models"
	"k8s.io/utils/clock"
)

// DefaultSyncInterval is the period between scheduled attempts.
const DefaultSyncInterval = 30 * time.Second

// SyncTracker runs background synchronisation for a signed-in, non-privileged
// user and exposes its status to the view.
//
// Status moves idle -> syncing -> success|error -> syncing ... One attempt is
// issued on activation and then one per interval. Deactivation stops the
// schedule; results of attempts issued before it are discarded. Attempt
// failures never leave the tracker: they are logged and surface as
// [models.SyncStatusError].
type SyncTracker struct {
	identities IdentitySource
	syncer     UserDataSyncer
	log        *logger.Logger

	clock       clock.WithTicker
	interval    time.Duration
	trackManual bool
	ids         *utils.UUIDGenerator
	observer    func(models.SyncSnapshot)

	mu           sync.Mutex
	identity     *models.Identity
	lastUser     string
	session      *syncSession
	generation   uint64
	status       models.SyncStatus
	lastSyncedAt time.Time
	lastError    string
	closed       bool
	subscribers  map[chan models.SyncSnapshot]struct{}

	inflight sync.WaitGroup
}

// SyncTrackerOption configures a SyncTracker.
type SyncTrackerOption func(*SyncTracker)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(clk clock.WithTicker) SyncTrackerOption {
	return func(t *SyncTracker) {
		t.clock = clk
	}
}

// WithInterval sets the scheduling period. Non-positive values keep the default.
func WithInterval(interval time.Duration) SyncTrackerOption {
	return func(t *SyncTracker) {
		if interval > 0 {
			t.interval = interval
		}
	}
}

// WithManualStatusTracking makes manual attempts go through the same status
// transitions as scheduled ones while a session is active.
func WithManualStatusTracking(enabled bool) SyncTrackerOption {
	return func(t *SyncTracker) {
		t.trackManual = enabled
	}
}

// WithObserver registers fn to be called synchronously on every state
// change, in order. fn must not block or call back into the tracker.
func WithObserver(fn func(models.SyncSnapshot)) SyncTrackerOption {
	return func(t *SyncTracker) {
		t.observer = fn
	}
}

func NewSyncTracker(identities IdentitySource, syncer UserDataSyncer, log *logger.Logger, opts ...SyncTrackerOption) *SyncTracker {
	t := &SyncTracker{
		identities:  identities,
		syncer:      syncer,
		log:         log,
		clock:       clock.RealClock{},
		interval:    DefaultSyncInterval,
		ids:         utils.NewUUIDGenerator(),
		status:      models.SyncStatusIdle,
		subscribers: make(map[chan models.SyncSnapshot]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Run follows the identity source until ctx is cancelled, activating and
// deactivating the schedule as the identity changes. The schedule is always
// released on return.
func (t *SyncTracker) Run(ctx context.Context) error {
	defer t.SetIdentity(nil)

	watch := t.identities.Watch(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case id, ok := <-watch:
			if !ok {
				return nil
			}
			t.SetIdentity(id)
		}
	}
}

// SetIdentity re-evaluates activation for the given identity. nil or a
// privileged identity deactivates; a different syncable user restarts the
// session with one immediate attempt.
func (t *SyncTracker) SetIdentity(id *models.Identity) {
	var (
		stale   *syncSession
		started bool
	)

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}

	if id == nil {
		t.identity = nil
	} else {
		cp := *id
		t.identity = &cp
	}

	switch {
	case id == nil || !id.CanSync():
		stale = t.deactivateLocked()
	case t.session != nil && t.session.userID == id.UserID:
		// same user, keep the running schedule
	default:
		stale = t.deactivateLocked()
		if t.lastUser != id.UserID {
			t.lastUser = id.UserID
			t.lastSyncedAt = time.Time{}
		}
		t.activateLocked(id.UserID)
		started = true
	}
	t.mu.Unlock()

	if stale != nil {
		stale.Release()
		t.log.Info().Str("user_id", stale.userID).Msg("background sync stopped")
	}
	if started {
		t.log.Info().Str("user_id", id.UserID).Dur("interval", t.interval).Msg("background sync started")
	}
}

// TriggerManualSync fires one attempt immediately if an identity is present.
// Without an identity it does nothing. The attempt only changes status when
// manual tracking is enabled and a session is active.
func (t *SyncTracker) TriggerManualSync() {
	t.mu.Lock()
	if t.closed || t.identity == nil || t.identity.UserID == "" {
		t.mu.Unlock()
		return
	}
	userID := t.identity.UserID
	tracked := t.trackManual && t.session != nil && t.session.userID == userID
	gen := t.generation
	t.mu.Unlock()

	if tracked {
		t.issue(gen, userID, "manual")
		return
	}
	t.fire(userID)
}

// Status returns the outcome of the most recently completed or in-flight attempt.
func (t *SyncTracker) Status() models.SyncStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// LastSyncedAt returns when the last successful attempt completed.
func (t *SyncTracker) LastSyncedAt() (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastSyncedAt, !t.lastSyncedAt.IsZero()
}

// Snapshot returns status and timestamp read together.
func (t *SyncTracker) Snapshot() models.SyncSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

// Subscribe returns a channel receiving the current snapshot and then every
// change. Slow readers only see the latest snapshot. The channel is closed by
// Close.
func (t *SyncTracker) Subscribe() <-chan models.SyncSnapshot {
	ch := make(chan models.SyncSnapshot, 1)

	t.mu.Lock()
	defer t.mu.Unlock()

	ch <- t.snapshotLocked()
	if t.closed {
		close(ch)
		return ch
	}
	t.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe stops deliveries to ch and closes it. Unknown channels are
// ignored.
func (t *SyncTracker) Unsubscribe(ch <-chan models.SyncSnapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for sub := range t.subscribers {
		if sub == ch {
			delete(t.subscribers, sub)
			close(sub)
			return
		}
	}
}

// Close deactivates the tracker for good and closes subscriber channels.
// Results of attempts still in flight are discarded.
func (t *SyncTracker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	stale := t.deactivateLocked()
	t.closed = true
	for ch := range t.subscribers {
		close(ch)
		delete(t.subscribers, ch)
	}
	t.mu.Unlock()

	if stale != nil {
		stale.Release()
	}
}

// Wait blocks until every issued attempt has returned.
func (t *SyncTracker) Wait() {
	t.inflight.Wait()
}

// activateLocked must be called with mu held.
func (t *SyncTracker) activateLocked(userID string) {
	t.generation++
	gen := t.generation
	t.session = startSyncSession(context.Background(), t.clock, t.interval, userID, gen, func() {
		t.issue(gen, userID, "scheduled")
	})
	t.issueLocked(gen, userID, "immediate")
}

// deactivateLocked invalidates in-flight attempts and detaches the session.
// The caller releases the returned session after unlocking mu, since the
// ticker loop may be waiting for it.
func (t *SyncTracker) deactivateLocked() *syncSession {
	t.generation++
	stale := t.session
	t.session = nil
	if t.status != models.SyncStatusIdle {
		t.status = models.SyncStatusIdle
		t.lastError = ""
		t.notifyLocked()
	}
	return stale
}

func (t *SyncTracker) issue(gen uint64, userID, trigger string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.issueLocked(gen, userID, trigger)
}

// issueLocked starts a tracked attempt if gen is still live.
func (t *SyncTracker) issueLocked(gen uint64, userID, trigger string) {
	if !t.liveLocked(gen) {
		return
	}
	attemptID := t.ids.Generate()
	issuedAt := t.clock.Now()
	t.status = models.SyncStatusSyncing
	t.notifyLocked()

	log := t.log.With().
		Str("attempt_id", attemptID).
		Str("user_id", userID).
		Str("trigger", trigger).
		Logger()

	t.inflight.Add(1)
	go func() {
		defer t.inflight.Done()

		err := t.syncer.SyncUserData(log.WithContext(context.Background()), userID)

		t.mu.Lock()
		defer t.mu.Unlock()

		if !t.liveLocked(gen) {
			log.Debug().Err(err).Msg("discarding result of stale sync attempt")
			return
		}

		if err != nil {
			log.Error().Err(err).Msg("sync attempt failed")
			t.status = models.SyncStatusError
			t.lastError = err.Error()
			t.notifyLocked()
			return
		}

		now := t.clock.Now()
		log.Debug().Dur("took", now.Sub(issuedAt)).Msg("sync attempt succeeded")
		t.status = models.SyncStatusSuccess
		t.lastSyncedAt = now
		t.lastError = ""
		t.notifyLocked()
	}()
}

// fire runs an untracked attempt. Its outcome is only logged.
func (t *SyncTracker) fire(userID string) {
	log := t.log.With().
		Str("attempt_id", t.ids.Generate()).
		Str("user_id", userID).
		Str("trigger", "manual").
		Logger()

	t.inflight.Add(1)
	go func() {
		defer t.inflight.Done()

		if err := t.syncer.SyncUserData(log.WithContext(context.Background()), userID); err != nil {
			log.Error().Err(err).Msg("manual sync attempt failed")
			return
		}
		log.Info().Msg("manual sync attempt succeeded")
	}()
}

func (t *SyncTracker) liveLocked(gen uint64) bool {
	return !t.closed && t.session != nil && gen == t.generation
}

func (t *SyncTracker) snapshotLocked() models.SyncSnapshot {
	snap := models.SyncSnapshot{
		Status:    t.status,
		LastError: t.lastError,
	}
	if t.session != nil {
		snap.UserID = t.session.userID
	}
	if !t.lastSyncedAt.IsZero() {
		ts := t.lastSyncedAt
		snap.LastSyncedAt = &ts
	}
	return snap
}

func (t *SyncTracker) notifyLocked() {
	snap := t.snapshotLocked()
	if t.observer != nil {
		t.observer(snap)
	}
	for ch := range t.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}
