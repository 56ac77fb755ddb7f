package http

import (
	"log/slog"
	"sync"
)

// Event is one SSE message: a named event with a JSON payload.
type Event struct {
	Name string
	Data string
}

// StreamManager handles active SSE connections, keyed by run ID.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- Event]struct{}
}

func NewStreamManager() *StreamManager {
	return &StreamManager{
		subscribers: make(map[string]map[chan<- Event]struct{}),
	}
}

// Subscribe registers a listener for a run ID and returns its channel plus
// a cancel func that must be called when the client goes away.
func (sm *StreamManager) Subscribe(runID string) (chan Event, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan Event, 64)
	if _, ok := sm.subscribers[runID]; !ok {
		sm.subscribers[runID] = make(map[chan<- Event]struct{})
	}
	sm.subscribers[runID][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[runID]; ok {
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, runID)
			}
		}
	}
}

// Broadcast delivers an event to every subscriber of a run. Messages to
// slow clients are dropped rather than blocking the stepping loop.
func (sm *StreamManager) Broadcast(runID string, ev Event) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if subs, ok := sm.subscribers[runID]; ok {
		for ch := range subs {
			select {
			case ch <- ev:
			default:
				slog.Warn("SSE: Client buffer full, dropping event", "run_id", runID, "event", ev.Name)
			}
		}
	}
}
