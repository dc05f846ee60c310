package notify

import (
	"encoding/json"
	"sync"
)

// Frame is the server-to-client message envelope.
type Frame struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Peer is one connected client. Writes are serialized per connection.
type Peer struct {
	mu      sync.Mutex
	encoder *json.Encoder
}

func NewPeer(encoder *json.Encoder) *Peer {
	return &Peer{encoder: encoder}
}

func (p *Peer) WriteFrame(frame Frame) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.encoder.Encode(frame)
}

// Hub is the channel-membership table. Join, leave and broadcast each
// hold the lock, so membership updates never interleave.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[*Peer]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Peer]struct{})}
}

func (h *Hub) Join(channel string, peer *Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[channel]
	if !ok {
		room = make(map[*Peer]struct{})
		h.rooms[channel] = room
	}
	room[peer] = struct{}{}
}

func (h *Hub) Leave(channel string, peer *Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[channel]
	if !ok {
		return
	}
	delete(room, peer)
	if len(room) == 0 {
		delete(h.rooms, channel)
	}
}

// Subscribers snapshots the current membership of a channel. Clients not
// joined at publish time never see the event.
func (h *Hub) Subscribers(channel string) []*Peer {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.rooms[channel]
	peers := make([]*Peer, 0, len(room))
	for peer := range room {
		peers = append(peers, peer)
	}
	return peers
}

// Broadcast delivers an event to every current subscriber of the channel.
// A failed write only affects that peer; its connection reader will
// notice and drop the membership.
func (h *Hub) Broadcast(channel, event string, payload any) {
	frame := Frame{Event: event, Data: payload}
	for _, peer := range h.Subscribers(channel) {
		_ = peer.WriteFrame(frame)
	}
}
