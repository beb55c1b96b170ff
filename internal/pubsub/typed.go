package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// TopicInfo describes a typed event for documentation and the CLI.
type TopicInfo struct {
	Name          string
	Description   string
	PayloadType   string
	PayloadFields []string
}

var (
	catalogMu sync.RWMutex
	catalog   = map[string]TopicInfo{}
)

// Event wraps a topic name and provides type-safe publishing.
type Event[T any] struct {
	topicName string
}

// NewEvent creates a typed event and records it in the topic catalog. Defining the same
// topic twice is a programming error and panics.
func NewEvent[T any](name string, description string) Event[T] {
	info := TopicInfo{Name: name, Description: description}

	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	info.PayloadType = t.Name()
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			tag := t.Field(i).Tag.Get("json")
			if tag == "" || tag == "-" {
				continue
			}
			fieldName, _, _ := strings.Cut(tag, ",")
			info.PayloadFields = append(info.PayloadFields, fieldName)
		}
	}

	catalogMu.Lock()
	defer catalogMu.Unlock()
	if _, exists := catalog[name]; exists {
		panic(fmt.Sprintf("pubsub: topic %q defined twice", name))
	}
	catalog[name] = info

	return Event[T]{topicName: name}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.topicName
}

// Decode unmarshals a received message into the event payload.
func (e Event[T]) Decode(msg Message) (T, error) {
	var payload T
	if msg.Topic != "" && msg.Topic != e.topicName {
		return payload, fmt.Errorf("message on topic %q decoded as %q", msg.Topic, e.topicName)
	}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("decode %s: %w", e.topicName, err)
	}
	return payload, nil
}

// Publish sends a typed event. The compiler ensures payload matches T.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], sessionID string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", event.Name(), err)
	}

	return p.Publish(ctx, Message{
		Topic:     event.Name(),
		SessionID: sessionID,
		Payload:   data,
	})
}

// Topics returns every defined event topic sorted by name.
func Topics() []TopicInfo {
	catalogMu.RLock()
	defer catalogMu.RUnlock()

	out := make([]TopicInfo, 0, len(catalog))
	for _, info := range catalog {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
