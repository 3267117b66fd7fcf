package events

import (
	"sync"
	"time"
)

// DefaultDebounceWindow is the window within which a burst of events
// is coalesced into a single downstream recomputation.
const DefaultDebounceWindow = 300 * time.Millisecond

// Coalescer folds bursts of triggers into a single call of fn. Each
// Trigger extends the debounce window; fn runs once the window elapses
// with no further triggers. The final trigger of a burst is never
// dropped: Stop flushes a pending call before returning.
type Coalescer struct {
	window time.Duration
	fn     func()

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	stopped bool
}

func NewCoalescer(window time.Duration, fn func()) *Coalescer {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Coalescer{
		window: window,
		fn:     fn,
	}
}

// Trigger marks downstream state stale and (re)starts the debounce
// window. Safe to call from any goroutine.
func (c *Coalescer) Trigger() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}

	c.pending = true
	if c.timer == nil {
		c.timer = time.AfterFunc(c.window, c.fire)
		return
	}
	c.timer.Reset(c.window)
}

func (c *Coalescer) fire() {
	c.mu.Lock()
	if c.stopped || !c.pending {
		c.mu.Unlock()
		return
	}
	c.pending = false
	c.mu.Unlock()

	c.fn()
}

// SubscribeCoalesced registers fn on the topic behind a Coalescer:
// a burst of events within the window yields a single fn call after
// the burst settles. The returned function unsubscribes and stops
// the coalescer, flushing a still-pending call.
func (b *Bus) SubscribeCoalesced(topic Topic, window time.Duration, fn func()) (unsubscribe func()) {
	c := NewCoalescer(window, fn)
	unsub := b.Subscribe(topic, func(Event) {
		c.Trigger()
	})
	return func() {
		unsub()
		c.Stop()
	}
}

// Stop cancels the timer and synchronously runs fn one last time if a
// trigger was still pending, so the tail of a burst is not lost.
func (c *Coalescer) Stop() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.stopped = true
	if c.timer != nil {
		c.timer.Stop()
	}
	flush := c.pending
	c.pending = false
	c.mu.Unlock()

	if flush {
		c.fn()
	}
}
