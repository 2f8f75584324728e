// Package feeding implements the feeding clock: the engine that owns the
// canonical feeding log, derives the live timer display, and keeps the
// reminder notification in sync with the most recent feeding.
package feeding

import (
	"fmt"
	"sync"
	"time"

	"github.com/cjjknight/baby-feeding/internal/logger"
	"github.com/cjjknight/baby-feeding/internal/models"
)

// MinFeedGap is the minimum time between two recorded feedings.
const MinFeedGap = 5 * time.Minute

// Store persists the feeding log. Write failures are best-effort: the clock
// logs them and keeps the in-memory log authoritative for the session.
type Store interface {
	LoadFeedings() (models.FeedingLog, error)
	SaveFeedings(models.FeedingLog) error
}

// Scheduler manages the single pending reminder notification.
type Scheduler interface {
	CancelAll()
	ScheduleOneShot(fireAt time.Time, title, body string)
}

// Clock owns the in-memory feeding log.
type Clock struct {
	mu            sync.Mutex
	log           models.FeedingLog
	store         Store
	scheduler     Scheduler
	intervalHours int
	onChange      func()

	// now is the time source, swappable in tests.
	now func() time.Time
}

// Option configures a Clock.
type Option func(*Clock)

// WithTimeSource overrides the clock's time source.
func WithTimeSource(now func() time.Time) Option {
	return func(c *Clock) { c.now = now }
}

// New creates a feeding clock around an already loaded log. The log is kept
// sorted ascending; "most recent" is the maximum.
func New(log models.FeedingLog, store Store, scheduler Scheduler, intervalHours int, opts ...Option) *Clock {
	c := &Clock{
		log:           log.Sorted(),
		store:         store,
		scheduler:     scheduler,
		intervalHours: models.ClampInterval(intervalHours),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnChange registers a callback invoked after every log mutation.
func (c *Clock) OnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Log returns a copy of the feeding log, sorted ascending.
func (c *Clock) Log() models.FeedingLog {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(models.FeedingLog, len(c.log))
	copy(out, c.log)
	return out
}

// IntervalHours returns the configured feeding interval.
func (c *Clock) IntervalHours() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.intervalHours
}

// SetIntervalHours updates the feeding interval and refreshes the reminder
// against the new threshold.
func (c *Clock) SetIntervalHours(hours int) error {
	if err := models.ValidateInterval(hours); err != nil {
		return err
	}
	c.mu.Lock()
	c.intervalHours = hours
	c.rescheduleLocked()
	c.mu.Unlock()
	return nil
}

// RecordNow records a feeding at now. It fails with ErrTooSoon when the most
// recent feeding is less than MinFeedGap old; in that case the log is
// unchanged and nothing is persisted.
func (c *Clock) RecordNow(now time.Time) error {
	c.mu.Lock()
	if last, ok := c.log.MostRecent(); ok && now.Sub(last) < MinFeedGap {
		c.mu.Unlock()
		return ErrTooSoon
	}
	c.log = append(c.log, now)
	c.log = c.log.Sorted()
	c.persistLocked()
	c.rescheduleLocked()
	c.mu.Unlock()

	c.notifyChange()
	return nil
}

// Edit replaces the first log entry equal to oldValue with newValue and
// re-sorts the log. It returns ErrNotFound when oldValue is absent; the log
// is unchanged in that case.
func (c *Clock) Edit(oldValue, newValue time.Time) error {
	c.mu.Lock()
	idx := c.indexOfLocked(oldValue)
	if idx < 0 {
		c.mu.Unlock()
		return ErrNotFound
	}
	c.log[idx] = newValue
	c.log = c.log.Sorted()
	c.persistLocked()
	c.rescheduleLocked()
	c.mu.Unlock()

	c.notifyChange()
	return nil
}

// Delete removes one entry equal to value. Deleting an absent value is a
// no-op, so the operation is idempotent.
func (c *Clock) Delete(value time.Time) {
	c.mu.Lock()
	idx := c.indexOfLocked(value)
	if idx < 0 {
		c.mu.Unlock()
		return
	}
	c.log = append(c.log[:idx], c.log[idx+1:]...)
	c.persistLocked()
	c.rescheduleLocked()
	c.mu.Unlock()

	c.notifyChange()
}

// AddMissed inserts a historical feeding that was not logged at the time. The
// timestamp may predate existing entries; the log is re-sorted ascending.
func (c *Clock) AddMissed(value time.Time) {
	c.mu.Lock()
	c.log = append(c.log, value)
	c.log = c.log.Sorted()
	c.persistLocked()
	c.rescheduleLocked()
	c.mu.Unlock()

	c.notifyChange()
}

// DisplayState derives the elapsed-time display and urgency color at now.
func (c *Clock) DisplayState(now time.Time) DisplayState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ComputeDisplayState(now, c.log, c.intervalHours)
}

func (c *Clock) indexOfLocked(value time.Time) int {
	for i, t := range c.log {
		if t.Equal(value) {
			return i
		}
	}
	return -1
}

// persistLocked writes the whole log through the store, last-write-wins.
// Failures are logged and swallowed.
func (c *Clock) persistLocked() {
	if c.store == nil {
		return
	}
	if err := c.store.SaveFeedings(c.log); err != nil {
		logger.Error("failed to persist feeding log", "error", err)
	}
}

// rescheduleLocked cancels any pending reminder and schedules one at
// mostRecent + interval, skipping fire times that are not in the future.
func (c *Clock) rescheduleLocked() {
	if c.scheduler == nil {
		return
	}
	c.scheduler.CancelAll()

	last, ok := c.log.MostRecent()
	if !ok {
		return
	}
	fireAt := last.Add(time.Duration(c.intervalHours) * time.Hour)
	if !fireAt.After(c.now()) {
		return
	}
	c.scheduler.ScheduleOneShot(fireAt,
		"Time to Feed",
		fmt.Sprintf("It's been %d hours since the last feeding.", c.intervalHours),
	)
}

func (c *Clock) notifyChange() {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}
