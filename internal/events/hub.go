// Package events implements the live delivery hub: a registry of connected
// clients plus named per-user rooms. Broadcasts reach every client; unicasts
// reach only clients that explicitly joined the target room. Delivery is
// best-effort and at-most-once per client, with no persistence or replay.
package events

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/pressroom/publishing-api/internal/api/metrics"
)

const defaultBuffer = 64

// Event is the envelope pushed to clients.
type Event struct {
	Name    string `json:"event"`
	Payload any    `json:"payload"`
}

// Client is one live connection's mailbox. Events are consumed from
// Events(); the channel is closed when the client is unregistered.
type Client struct {
	ch chan Event
}

// Events returns the client's inbound event stream.
func (c *Client) Events() <-chan Event {
	return c.ch
}

// Hub owns the connection registry. It is constructed once per process and
// passed by reference into the request pipeline; there is no package-level
// instance. Membership changes take the write lock, deliveries the read
// lock, so a client either receives the whole of an in-flight broadcast or
// joins after it completes.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	rooms   map[string]map[*Client]struct{}
	log     zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		rooms:   make(map[string]map[*Client]struct{}),
		log:     log,
	}
}

// Register adds a new client with the given mailbox capacity (a default is
// applied when buffer <= 0).
func (h *Hub) Register(buffer int) *Client {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	c := &Client{ch: make(chan Event, buffer)}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	metrics.LiveConnections.Inc()
	return c
}

// Unregister removes the client from the registry and every room it joined,
// then closes its mailbox. Safe to call more than once.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	for room, members := range h.rooms {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	close(c.ch)
	metrics.LiveConnections.Dec()
}

// Join adds the client to a named room. Unknown clients are ignored, so a
// late join racing an unregister cannot resurrect a closed mailbox.
func (h *Hub) Join(c *Client, room string) {
	if room == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[room] = members
	}
	members[c] = struct{}{}
}

// Leave removes the client from a named room.
func (h *Hub) Leave(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.rooms[room]
	if !ok {
		return
	}
	delete(members, c)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}

// BroadcastAll delivers the event to every connected client.
func (h *Hub) BroadcastAll(event string, payload any) {
	evt := Event{Name: event, Payload: payload}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		h.send(c, evt)
	}
	metrics.EventsBroadcastTotal.WithLabelValues(event).Inc()
}

// NotifyUser delivers the event only to clients joined to the user's room.
// When nobody joined it the event is dropped without error; the emitter
// never learns whether anyone was listening.
func (h *Hub) NotifyUser(userID, event string, payload any) {
	evt := Event{Name: event, Payload: payload}

	h.mu.RLock()
	defer h.mu.RUnlock()

	members := h.rooms[userID]
	if len(members) == 0 {
		metrics.NotificationsDroppedTotal.Inc()
		h.log.Debug().Str("user_id", userID).Str("event", event).Msg("no listener for unicast, dropped")
		return
	}
	for c := range members {
		h.send(c, evt)
	}
	metrics.NotificationsSentTotal.Inc()
}

// send enqueues without blocking; a client whose mailbox is full loses the
// event rather than stalling delivery to everyone else.
func (h *Hub) send(c *Client, evt Event) {
	select {
	case c.ch <- evt:
	default:
		metrics.EventsDiscardedTotal.Inc()
		h.log.Warn().Str("event", evt.Name).Msg("client mailbox full, event discarded")
	}
}
