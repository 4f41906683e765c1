package progress

import (
	"sync"
	"sync/atomic"

	"portplanner/internal/terminal"
)

// Event is one progress update from a running simulation.
type Event struct {
	RunID  string               `json:"run_id"`
	Phase  string               `json:"phase"` // "year", "finished" or "failed"
	Report *terminal.YearReport `json:"report,omitempty"`
	NPV    *float64             `json:"npv,omitempty"`
	Error  string               `json:"error,omitempty"`
}

// Hub fans simulation progress out to websocket subscribers by run ID.
// Publishing never blocks; slow subscribers drop events.
type Hub struct {
	mu      sync.RWMutex
	subs    map[string][]chan Event
	dropped uint64
}

func NewHub() *Hub {
	return &Hub{subs: map[string][]chan Event{}}
}

// Subscribe returns a channel receiving events for runID until Close.
func (h *Hub) Subscribe(runID string, buf int) <-chan Event {
	if buf <= 0 {
		buf = 16
	}
	ch := make(chan Event, buf)
	h.mu.Lock()
	h.subs[runID] = append(h.subs[runID], ch)
	h.mu.Unlock()
	return ch
}

func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs[ev.RunID] {
		select {
		case ch <- ev:
		default:
			// Drop when subscriber is slow; the run must not block.
			atomic.AddUint64(&h.dropped, 1)
		}
	}
}

// Close ends the run's stream: all subscriber channels are closed and the
// run's entry removed.
func (h *Hub) Close(runID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs[runID] {
		close(ch)
	}
	delete(h.subs, runID)
}

// Dropped reports how many events were discarded on slow subscribers.
func (h *Hub) Dropped() uint64 {
	return atomic.LoadUint64(&h.dropped)
}
