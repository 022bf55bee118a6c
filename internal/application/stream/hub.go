package stream

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Hub broadcasts change signals for one kind of document, keyed by household
// scope. A signal means "the record set changed, re-query your snapshot";
// the hub never carries partial deltas. Signals for a slow subscriber are
// coalesced rather than queued.
type Hub struct {
	mu   sync.Mutex
	subs map[uuid.UUID]map[chan struct{}]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[uuid.UUID]map[chan struct{}]struct{}),
	}
}

// Subscribe registers interest in changes for a household. The returned
// channel receives a signal after every write until ctx is done or cancel is
// called. Subscribers always re-query a full snapshot on signal.
func (h *Hub) Subscribe(ctx context.Context, householdID uuid.UUID) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	if h.subs[householdID] == nil {
		h.subs[householdID] = make(map[chan struct{}]struct{})
	}
	h.subs[householdID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[householdID], ch)
			if len(h.subs[householdID]) == 0 {
				delete(h.subs, householdID)
			}
			h.mu.Unlock()
		})
	}

	if ctx != nil {
		go func() {
			<-ctx.Done()
			cancel()
		}()
	}

	return ch, cancel
}

// Notify signals every subscriber of the household. A subscriber that has not
// drained its previous signal keeps a single pending one.
func (h *Hub) Notify(householdID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[householdID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
