// Package notify provides desktop notification support for connect
// failures.
package notify

import (
	"fmt"

	"github.com/zeloras/ssh-manager/internal/config"
)

// Notifier defines the interface for sending desktop notifications.
type Notifier interface {
	// NotifyConnectFailure sends a notification about a failed connect.
	NotifyConnectFailure(profileName string, err error) error
}

// Option configures a Notifier.
type Option func(*notifier)

// WithBackend sets a custom notification backend (for testing).
func WithBackend(backend Backend) Option {
	return func(n *notifier) {
		n.backend = backend
	}
}

// notifier sends desktop notifications using the system notification service.
type notifier struct {
	onFailure bool
	backend   Backend
}

// NotifyConnectFailure sends a notification about a failed connect.
func (n *notifier) NotifyConnectFailure(profileName string, err error) error {
	if !n.onFailure {
		return nil
	}

	title := "SSH Manager: Connection Failed"
	message := fmt.Sprintf("Could not connect to '%s'.\nError: %v", profileName, err)

	return n.backend.Alert(title, message, "")
}

// New creates a Notifier based on the configuration.
func New(cfg config.NotificationConfig, opts ...Option) Notifier {
	n := &notifier{
		onFailure: cfg.Enabled && cfg.OnConnectFailure,
		backend:   newDesktopBackend(),
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}
