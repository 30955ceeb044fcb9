// Package pubsub is the in-process event bus that carries browser-originated
// UI events (scroll offsets) to the components that observe them.
package pubsub

import (
	"context"
)

// Message is the structure passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g. "viewport.scroll.<page>").
	Topic string
	// Source identifies the page session that produced the message.
	Source string
	// Payload contains the raw message data, JSON for typed topics.
	Payload []byte
	// Metadata can contain arbitrary key-value pairs for context.
	Metadata map[string]string
}

// Handler defines the function signature for processing a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher defines the contract for sending messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber defines the contract for receiving messages from the bus.
type Subscriber interface {
	// Subscribe starts delivering messages for topic to handler in the
	// background and returns once the subscription is live. Delivery stops and
	// the subscription is released when ctx is canceled.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}

// Bus is a Publisher and Subscriber backed by the same transport.
type Bus interface {
	Publisher
	Subscriber
}
