package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// WatermillBridge implements Publisher and Subscriber on top of watermill's in-memory GoChannel.
type WatermillBridge struct {
	pub    message.Publisher
	sub    message.Subscriber
	logger watermill.LoggerAdapter
}

const (
	// Metadata keys used to carry Message fields through a watermill message.
	metaKeySessionID = "session_id"
	metaKeyTopic     = "topic"
)

// NewWatermillBridge initializes an in-memory bus. Messages published to a topic with
// no subscriber are dropped.
func NewWatermillBridge() *WatermillBridge {
	logger := watermill.NewStdLogger(false, false)
	goChannel := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		logger,
	)

	return &WatermillBridge{
		pub:    goChannel,
		sub:    goChannel,
		logger: logger,
	}
}

func mapToWatermillMessage(msg Message) *message.Message {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)

	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}
	wmMsg.Metadata.Set(metaKeySessionID, msg.SessionID)
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)

	return wmMsg
}

func mapToPubSubMessage(wmMsg *message.Message) Message {
	metadata := make(map[string]string, len(wmMsg.Metadata))
	for k, v := range wmMsg.Metadata {
		if k != metaKeySessionID && k != metaKeyTopic {
			metadata[k] = v
		}
	}

	return Message{
		Topic:     wmMsg.Metadata.Get(metaKeyTopic),
		SessionID: wmMsg.Metadata.Get(metaKeySessionID),
		Payload:   wmMsg.Payload,
		Metadata:  metadata,
	}
}

// Publish implements the Publisher interface.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	wmMsg := mapToWatermillMessage(msg)
	wmMsg.SetContext(ctx)
	return wb.pub.Publish(msg.Topic, wmMsg)
}

// Subscribe implements the Subscriber interface. It returns once the subscription is
// active; messages are handled on a separate goroutine.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wmMsg := range messages {
			msg := mapToPubSubMessage(wmMsg)

			if err := handler(ctx, msg); err != nil {
				slog.Error("Failed to handle message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
				// The in-memory bus would redeliver forever; acknowledge and move on.
				wmMsg.Ack()
				continue
			}
			wmMsg.Ack()
		}
		slog.Debug("Subscription message loop ended", "topic", topic)
	}()

	return nil
}

// Close shuts down the bus and ends every subscription.
func (wb *WatermillBridge) Close() error {
	return wb.pub.Close()
}
