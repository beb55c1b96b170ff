package pubsub

import (
	"context"
)

// Message is the structure passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g. "auth.login.succeeded").
	Topic string
	// SessionID identifies the browser session that caused the message, if any.
	SessionID string
	// Payload contains the JSON encoded event.
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
	// Subscribe starts listening to the given topic, processing messages with the handler
	// in the background until ctx is canceled or the bus is closed.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
