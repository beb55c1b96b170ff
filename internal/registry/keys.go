package registry

import (
	"github.com/nfrund/ecoshare/internal/pubsub"
)

// Keys of the core services every module may ask for.
const (
	SubscriberKey Key[pubsub.Subscriber] = "core.subscriber"
)
