package tui

import (
	"time"

	"github.com/devpro-studio/intake/internal/core/notify"
)

const (
	toastTTL          = 5 * time.Second
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 50
)

type toast struct {
	notification notify.Notification
	remaining    time.Duration
}

// ToastController owns the single transient notification slot. Showing a new
// notification replaces whatever is live; nothing is queued. The slot drains
// via Tick until the TTL expires, or earlier on manual Dismiss.
type ToastController struct {
	current *toast
	ticking bool
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// Show replaces any live toast with n and restarts the TTL.
func (c *ToastController) Show(n notify.Notification) {
	c.current = &toast{
		notification: n,
		remaining:    toastTTL,
	}
}

// Tick decrements the remaining TTL by d and expires the toast when it
// reaches zero. Ticking an empty slot is a no-op, so a manually dismissed
// toast is never removed twice.
func (c *ToastController) Tick(d time.Duration) {
	if c.current == nil {
		return
	}
	c.current.remaining -= d
	if c.current.remaining <= 0 {
		c.current = nil
	}
}

// Dismiss removes the live toast. Idempotent.
func (c *ToastController) Dismiss() {
	c.current = nil
}

// Active returns true if a toast is currently displayed.
func (c *ToastController) Active() bool {
	return c.current != nil
}

// Current returns the live notification, or false when the slot is empty.
func (c *ToastController) Current() (notify.Notification, bool) {
	if c.current == nil {
		return notify.Notification{}, false
	}
	return c.current.notification, true
}

// Ticking returns whether the tick timer is currently running.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

// SetTicking sets the tick timer state.
func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}
