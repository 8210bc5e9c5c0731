// Package events defines the authentication events published on the bus and
// an audit subscriber that records them.
package events

import (
	"context"
	"time"

	"github.com/nfrund/googledash/internal/pubsub"
)

// Authentication topics.
const (
	TopicSignedIn     = "auth.signed_in"
	TopicSignedOut    = "auth.signed_out"
	TopicSignInFailed = "auth.sign_in_failed"
)

// AuthTopics lists every topic the audit logger listens to.
var AuthTopics = []string{TopicSignedIn, TopicSignedOut, TopicSignInFailed}

// AuthEvent is the JSON payload of every authentication topic.
type AuthEvent struct {
	Email  string    `json:"email,omitempty"`
	Reason string    `json:"reason,omitempty"`
	At     time.Time `json:"at"`
}

func authEvent(topic string) pubsub.Event[AuthEvent] {
	return pubsub.NewEvent[AuthEvent](topic)
}

// Publish encodes ev and sends it on topic. A zero At is set to now.
func Publish(ctx context.Context, pub pubsub.Publisher, topic string, ev AuthEvent, metadata map[string]string) error {
	if pub == nil {
		return nil
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	return pubsub.Publish(ctx, pub, authEvent(topic), ev.Email, ev, metadata)
}

// Decode parses an AuthEvent from a bus message.
func Decode(msg pubsub.Message) (AuthEvent, error) {
	return pubsub.Decode[AuthEvent](msg)
}
