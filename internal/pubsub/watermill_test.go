package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type ping struct {
	N int `json:"n"`
}

func TestWatermillBridge_TypedRoundTrip(t *testing.T) {
	bus := NewWatermillBridge()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	topic := NewTopic[ping]("test.ping")
	got := make(chan ping, 1)
	require.NoError(t, Subscribe(ctx, bus, topic, func(_ context.Context, p ping) error {
		got <- p
		return nil
	}))

	require.NoError(t, Publish(ctx, bus, topic, "page-1", ping{N: 7}))

	select {
	case p := <-got:
		assert.Equal(t, 7, p.N)
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}
}

func TestWatermillBridge_MetadataSurvivesTransport(t *testing.T) {
	msg := Message{
		Topic:    "viewport.scroll.x",
		Source:   "page-9",
		Payload:  []byte(`{}`),
		Metadata: map[string]string{"seq": "3"},
	}

	back := mapToPubSubMessage(mapToWatermillMessage(msg))

	assert.Equal(t, msg.Topic, back.Topic)
	assert.Equal(t, msg.Source, back.Source)
	assert.Equal(t, map[string]string{"seq": "3"}, back.Metadata)
}

func TestWatermillBridge_CancelReleasesSubscription(t *testing.T) {
	bus := NewWatermillBridge()
	defer bus.Close()
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, bus.Subscribe(ctx, "test.cancel", func(context.Context, Message) error { return nil }))

	cancel()
}
