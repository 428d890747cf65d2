// Package events is a small SSE fan-out hub. The engine publishes
// search_completed and upstream_unavailable events so a UI can show when
// results switch between the live and curated paths.
package events

import "sync"

// subscriber channels buffer a handful of events; a full buffer means the
// client is too slow and loses messages rather than stalling publishers.
const subBuffer = 10

type Hub struct {
	mu   sync.RWMutex
	subs map[chan string]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan string]struct{})}
}

func (h *Hub) Subscribe() chan string {
	ch := make(chan string, subBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan string) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
	close(ch)
}

func (h *Hub) Publish(evt string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- evt:
		default:
			// slow client, drop
		}
	}
}
