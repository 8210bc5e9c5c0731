package events

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/googledash/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer guards a bytes.Buffer shared with subscriber goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAuditLogger_Handle(t *testing.T) {
	var buf syncBuffer
	audit := NewAuditLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	payload := []byte(`{"email":"ada@example.com","at":"2026-01-02T03:04:05Z"}`)
	err := audit.Handle(context.Background(), pubsub.Message{
		Topic:    TopicSignedIn,
		Payload:  payload,
		Metadata: map[string]string{"request_id": "abc"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "topic=auth.signed_in")
	assert.Contains(t, out, "email=ada@example.com")
	assert.Contains(t, out, "request_id=abc")
}

func TestAuditLogger_FailedSignInIsWarning(t *testing.T) {
	var buf syncBuffer
	audit := NewAuditLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	err := audit.Handle(context.Background(), pubsub.Message{
		Topic:   TopicSignInFailed,
		Payload: []byte(`{"reason":"access_denied","at":"2026-01-02T03:04:05Z"}`),
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "reason=access_denied")
}

func TestAuditLogger_BadPayload(t *testing.T) {
	audit := NewAuditLogger(slog.New(slog.NewTextHandler(&syncBuffer{}, nil)))
	err := audit.Handle(context.Background(), pubsub.Message{Topic: TopicSignedOut, Payload: []byte("{")})
	assert.Error(t, err)
}

func TestPublishThroughBus(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var buf syncBuffer
	bus := pubsub.NewWatermillBridge(nil)
	t.Cleanup(func() { _ = bus.Close() })

	audit := NewAuditLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	require.NoError(t, audit.Start(ctx, bus))

	err := Publish(ctx, bus, TopicSignedOut, AuthEvent{Email: "ada@example.com"}, nil)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "topic=auth.signed_out")
	}, 2*time.Second, 10*time.Millisecond)
}

func TestPublish_NilPublisher(t *testing.T) {
	assert.NoError(t, Publish(context.Background(), nil, TopicSignedIn, AuthEvent{}, nil))
}
