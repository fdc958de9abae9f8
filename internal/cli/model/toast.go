package model

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/bnema/multiview/internal/application/port"
	"github.com/bnema/multiview/internal/cli/styles"
	"github.com/bnema/multiview/internal/logging"
)

const toastDismissTimeoutMs = 1500

// Toast is the notification currently on screen.
type Toast struct {
	ID      port.NotificationID
	Message string
	Type    port.NotificationType
}

// ToastNotifier implements port.Notification for the TUI.
// Only one toast is visible; a new one replaces the text and restarts the timer.
type ToastNotifier struct {
	scheduler port.Scheduler
	onChange  func()

	mu      sync.Mutex
	current *Toast
	timer   port.Timer
}

// NewToastNotifier creates a notifier that auto-hides toasts through scheduler.
// onChange runs on the timer goroutine after a toast is dismissed; it may be nil.
func NewToastNotifier(scheduler port.Scheduler, onChange func()) *ToastNotifier {
	return &ToastNotifier{scheduler: scheduler, onChange: onChange}
}

// Show displays message. durationMs <= 0 selects the default duration.
func (n *ToastNotifier) Show(ctx context.Context, message string, notifType port.NotificationType, durationMs int) port.NotificationID {
	if durationMs <= 0 {
		durationMs = toastDismissTimeoutMs
	}
	id := port.NotificationID(uuid.NewString())

	n.mu.Lock()
	n.stopTimerLocked()
	n.current = &Toast{ID: id, Message: message, Type: notifType}
	n.timer = n.scheduler.AfterFunc(time.Duration(durationMs)*time.Millisecond, func() {
		n.Dismiss(context.Background(), id)
	})
	n.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("toast_id", string(id)).
		Str("type", notifType.String()).
		Str("message", message).
		Msg("toast shown")
	return id
}

// Dismiss hides the toast if it is still the one identified by id.
func (n *ToastNotifier) Dismiss(_ context.Context, id port.NotificationID) {
	n.mu.Lock()
	if n.current == nil || n.current.ID != id {
		n.mu.Unlock()
		return
	}
	n.current = nil
	n.stopTimerLocked()
	n.mu.Unlock()

	if n.onChange != nil {
		n.onChange()
	}
}

// Clear hides any toast without notifying.
func (n *ToastNotifier) Clear(_ context.Context) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = nil
	n.stopTimerLocked()
}

// Current returns a copy of the visible toast, or nil.
func (n *ToastNotifier) Current() *Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	t := *n.current
	return &t
}

func (n *ToastNotifier) stopTimerLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

// renderToast draws the toast as a colored pill. Empty when nothing is shown.
func renderToast(theme *styles.Theme, t *Toast) string {
	if t == nil {
		return ""
	}

	bg, icon := theme.Info, styles.IconInfo
	switch t.Type {
	case port.NotificationSuccess:
		bg, icon = theme.Success, styles.IconCheck
	case port.NotificationWarning:
		bg, icon = theme.Warning, styles.IconWarning
	case port.NotificationError:
		bg, icon = theme.Error, styles.IconX
	}

	return lipgloss.NewStyle().
		Foreground(theme.Background).
		Background(bg).
		Bold(true).
		Padding(0, 2).
		Render(icon + " " + t.Message)
}
