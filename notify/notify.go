package notify

import (
	"sync"
	"time"
)

// DefaultDuration matches the demo's 3 second toast lifetime.
const DefaultDuration = 3 * time.Second

// Toast is a transient status message.
type Toast struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Center collects toasts. Multiple toasts may coexist; there is no
// queueing or rate limiting. Expired toasts are dropped lazily on read.
type Center struct {
	mu     sync.Mutex
	toasts []Toast
	now    func() time.Time
}

func NewCenter() *Center {
	return &Center{now: time.Now}
}

// NewCenterWithClock lets tests control expiry.
func NewCenterWithClock(now func() time.Time) *Center {
	return &Center{now: now}
}

// Notify appends a toast that expires after d. A non-positive d uses
// DefaultDuration.
func (c *Center) Notify(message string, d time.Duration) {
	if d <= 0 {
		d = DefaultDuration
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toasts = append(c.toasts, Toast{
		Message:   message,
		ExpiresAt: c.now().Add(d),
	})
}

// Active returns the toasts that have not yet expired, in the order
// they were raised, and prunes the rest.
func (c *Center) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	live := c.toasts[:0]
	for _, t := range c.toasts {
		if t.ExpiresAt.After(now) {
			live = append(live, t)
		}
	}
	c.toasts = live

	out := make([]Toast, len(live))
	copy(out, live)
	return out
}
