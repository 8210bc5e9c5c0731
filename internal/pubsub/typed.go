package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event[T] binds a topic name to its payload type so publishers and
// subscribers agree on the JSON carried in Message.Payload.
type Event[T any] struct {
	topicName string
}

// NewEvent creates a typed event for topic name.
func NewEvent[T any](name string) Event[T] {
	return Event[T]{topicName: name}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.topicName
}

// Publish sends a typed event. The compiler ensures 'payload' matches 'T'.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], subject string, payload T, metadata map[string]string) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", event.Name(), err)
	}

	return p.Publish(ctx, Message{
		Topic:    event.Name(),
		Subject:  subject,
		Payload:  data,
		Metadata: metadata,
	})
}

// Decode parses the payload of msg as T.
func Decode[T any](msg Message) (T, error) {
	var payload T
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("decode %s payload: %w", msg.Topic, err)
	}
	return payload, nil
}
