package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Topic[T] binds a topic name to its payload type so publishers and handlers
// agree on the JSON shape at compile time.
type Topic[T any] struct {
	name string
}

// NewTopic creates a typed topic.
func NewTopic[T any](name string) Topic[T] {
	return Topic[T]{name: name}
}

// Name returns the topic name.
func (t Topic[T]) Name() string {
	return t.name
}

// Publish marshals payload to JSON and sends it on topic.
func Publish[T any](ctx context.Context, p Publisher, topic Topic[T], source string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", topic.name, err)
	}
	return p.Publish(ctx, Message{
		Topic:   topic.name,
		Source:  source,
		Payload: data,
	})
}

// Subscribe decodes every message on topic into T before calling fn.
func Subscribe[T any](ctx context.Context, s Subscriber, topic Topic[T], fn func(ctx context.Context, payload T) error) error {
	return s.Subscribe(ctx, topic.name, func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("decode %s payload: %w", topic.name, err)
		}
		return fn(ctx, payload)
	})
}
