package storefront

import (
	"sync"
	"time"
)

// autoplay is the single repeating timer behind the carousel. At most one
// timer is live: Restart cancels the pending fire before arming a new one,
// so a user action always gets a full quiet interval before the next
// automatic advance.
type autoplay struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func()
	timer    *time.Timer
	running  bool
}

func newAutoplay(interval time.Duration, fn func()) *autoplay {
	return &autoplay{interval: interval, fn: fn}
}

// Restart arms the timer for a full interval, cancelling any pending fire.
func (a *autoplay) Restart() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.running = true
	a.timer = time.AfterFunc(a.interval, a.fire)
}

// Stop cancels the timer. A fire already in progress may still complete.
func (a *autoplay) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.running = false
	if a.timer != nil {
		a.timer.Stop()
	}
}

func (a *autoplay) fire() {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return
	}
	a.timer = time.AfterFunc(a.interval, a.fire)
	a.mu.Unlock()

	a.fn()
}
