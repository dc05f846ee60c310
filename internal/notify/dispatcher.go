package notify

import "go.uber.org/zap"

type message struct {
	Channel string
	Event   string
	Payload any
}

// Dispatcher decouples the request path from socket writes: Publish
// enqueues and returns, a single worker drains onto the hub.
type Dispatcher struct {
	hub   *Hub
	queue chan message
}

func NewDispatcher(hub *Hub) *Dispatcher {
	d := &Dispatcher{
		hub:   hub,
		queue: make(chan message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		d.hub.Broadcast(msg.Channel, msg.Event, msg.Payload)
	}
}

func (d *Dispatcher) Publish(channel, event string, payload any) {
	select {
	case d.queue <- message{Channel: channel, Event: event, Payload: payload}:
	default:
		// full queue never blocks the API; the event is simply lost,
		// same as a subscriber that was not connected
		zap.L().Warn("notify queue full, dropping event",
			zap.String("channel", channel),
			zap.String("event", event),
		)
	}
}

var _ Publisher = (*Dispatcher)(nil)
