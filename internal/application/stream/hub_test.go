package stream

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestHub(t *testing.T) {
	t.Run("notify reaches subscriber", func(t *testing.T) {
		hub := NewHub()
		householdID := uuid.New()

		signals, cancel := hub.Subscribe(context.Background(), householdID)
		defer cancel()

		hub.Notify(householdID)

		select {
		case <-signals:
		default:
			t.Error("expected a pending signal")
		}
	})

	t.Run("signals are scoped by household", func(t *testing.T) {
		hub := NewHub()

		signals, cancel := hub.Subscribe(context.Background(), uuid.New())
		defer cancel()

		hub.Notify(uuid.New())

		select {
		case <-signals:
			t.Error("expected no signal for another household")
		default:
		}
	})

	t.Run("undrained signals coalesce", func(t *testing.T) {
		hub := NewHub()
		householdID := uuid.New()

		signals, cancel := hub.Subscribe(context.Background(), householdID)
		defer cancel()

		hub.Notify(householdID)
		hub.Notify(householdID)
		hub.Notify(householdID)

		<-signals
		select {
		case <-signals:
			t.Error("expected repeated notifications to coalesce into one")
		default:
		}
	})

	t.Run("cancel stops delivery", func(t *testing.T) {
		hub := NewHub()
		householdID := uuid.New()

		signals, cancel := hub.Subscribe(context.Background(), householdID)
		cancel()

		hub.Notify(householdID)

		select {
		case <-signals:
			t.Error("expected no signal after cancel")
		default:
		}
	})
}
