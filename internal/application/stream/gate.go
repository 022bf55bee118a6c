// Package stream provides the subscription plumbing between the record store
// and the reactive dashboard view: change notification, last-subscription-wins
// admission, and snapshot recomputation.
package stream

import "sync"

// Ticket identifies one subscription generation issued by a Gate.
type Ticket uint64

// Gate enforces last-subscription-wins semantics. Switching the selected
// month or window issues a new ticket, superseding all earlier ones; a
// snapshot delivered under a superseded ticket must be discarded no matter
// when it arrives, since delivery order across streams is not guaranteed.
type Gate struct {
	mu      sync.Mutex
	current Ticket
}

// Next supersedes every previously issued ticket and returns the new one.
func (g *Gate) Next() Ticket {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current++
	return g.current
}

// Admit reports whether t is still the live subscription. Stale callbacks
// from a superseded subscription are rejected here.
func (g *Gate) Admit(t Ticket) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return t == g.current
}
