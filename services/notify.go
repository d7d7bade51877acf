// Package services implements the client-side CRUD flows: each flow
// loads, validates, persists and reloads one entity type against the
// API, converting every failure into a transient notification while
// leaving in-memory state untouched.
package services

import (
	"sync"
	"time"
)

// DefaultToastDuration is how long a notification stays active before
// auto-dismissing.
const DefaultToastDuration = 3 * time.Second

// Notifier receives user-visible failure (and success) messages.
type Notifier interface {
	Notify(message string)
}

// Toast is one active transient notification.
type Toast struct {
	Message string
	ShownAt time.Time
}

// ToastCenter is a Notifier that keeps messages visible for a fixed
// duration and then drops them.
type ToastCenter struct {
	mu       sync.Mutex
	duration time.Duration
	active   []Toast
}

// NewToastCenter returns a ToastCenter with the given duration;
// zero means DefaultToastDuration.
func NewToastCenter(duration time.Duration) *ToastCenter {
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	return &ToastCenter{duration: duration}
}

func (t *ToastCenter) Notify(message string) {
	toast := Toast{Message: message, ShownAt: time.Now()}
	t.mu.Lock()
	t.active = append(t.active, toast)
	t.mu.Unlock()

	time.AfterFunc(t.duration, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		for i, cur := range t.active {
			if cur == toast {
				t.active = append(t.active[:i], t.active[i+1:]...)
				break
			}
		}
	})
}

// Active returns the currently visible notifications.
func (t *ToastCenter) Active() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Toast, len(t.active))
	copy(out, t.active)
	return out
}

// noopNotifier is used when a flow is constructed without a Notifier.
type noopNotifier struct{}

func (noopNotifier) Notify(string) {}
