package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	msgs []Message
}

func (p *capturePublisher) Publish(_ context.Context, msg Message) error {
	p.msgs = append(p.msgs, msg)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

type greeting struct {
	Text string `json:"text"`
}

func TestTypedPublishAndDecode(t *testing.T) {
	pub := &capturePublisher{}
	ev := NewEvent[greeting]("test.greeting")

	err := Publish(context.Background(), pub, ev, "ada@example.com", greeting{Text: "hi"}, map[string]string{"k": "v"})
	require.NoError(t, err)
	require.Len(t, pub.msgs, 1)

	msg := pub.msgs[0]
	assert.Equal(t, "test.greeting", msg.Topic)
	assert.Equal(t, "ada@example.com", msg.Subject)
	assert.Equal(t, "v", msg.Metadata["k"])
	assert.JSONEq(t, `{"text":"hi"}`, string(msg.Payload))

	got, err := Decode[greeting](msg)
	require.NoError(t, err)
	assert.Equal(t, "hi", got.Text)
}

func TestDecode_InvalidPayload(t *testing.T) {
	_, err := Decode[greeting](Message{Topic: "test.greeting", Payload: []byte("not json")})
	assert.ErrorContains(t, err, "decode test.greeting payload")
}
