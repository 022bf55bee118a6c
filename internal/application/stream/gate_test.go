package stream

import "testing"

func TestGate(t *testing.T) {
	t.Run("latest ticket is admitted", func(t *testing.T) {
		var g Gate
		ticket := g.Next()
		if !g.Admit(ticket) {
			t.Error("expected latest ticket to be admitted")
		}
	})

	t.Run("superseded ticket is rejected", func(t *testing.T) {
		var g Gate
		old := g.Next()
		fresh := g.Next()

		if g.Admit(old) {
			t.Error("expected superseded ticket to be rejected")
		}
		if !g.Admit(fresh) {
			t.Error("expected fresh ticket to be admitted")
		}
	})

	t.Run("stale ticket stays rejected forever", func(t *testing.T) {
		var g Gate
		old := g.Next()
		g.Next()
		g.Next()

		// A late callback from the oldest subscription must never win,
		// regardless of how much later it arrives.
		if g.Admit(old) {
			t.Error("expected long-superseded ticket to be rejected")
		}
	})
}
