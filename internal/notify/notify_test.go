package notify

import (
	"errors"
	"testing"

	"github.com/zeloras/ssh-manager/internal/config"
)

type mockBackend struct {
	alerts []string
}

func (m *mockBackend) Alert(title, message, _ string) error {
	m.alerts = append(m.alerts, title+": "+message)
	return nil
}

func TestNotifyConnectFailure(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		backend := &mockBackend{}
		n := New(config.NotificationConfig{Enabled: false, OnConnectFailure: true},
			WithBackend(backend))

		if err := n.NotifyConnectFailure("web", errors.New("boom")); err != nil {
			t.Fatal(err)
		}
		if len(backend.alerts) != 0 {
			t.Errorf("expected no alerts when disabled, got %v", backend.alerts)
		}
	})

	t.Run("enabled", func(t *testing.T) {
		backend := &mockBackend{}
		n := New(config.NotificationConfig{Enabled: true, OnConnectFailure: true},
			WithBackend(backend))

		if err := n.NotifyConnectFailure("web", errors.New("boom")); err != nil {
			t.Fatal(err)
		}
		if len(backend.alerts) != 1 {
			t.Fatalf("expected one alert, got %d", len(backend.alerts))
		}
	})
}
