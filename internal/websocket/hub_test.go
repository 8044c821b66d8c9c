package websocket

import (
	"context"
	"os"
	"testing"
	"time"

	"recruai-web/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func register(t *testing.T, h *Hub, scope string) *Client {
	t.Helper()
	c := &Client{Hub: h, Scope: scope, Send: make(chan []byte, 4)}
	require.True(t, h.Register(c))
	require.Eventually(t, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		for _, existing := range h.clients[scope] {
			if existing == c {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)
	return c
}

func TestSendToScopeOnlyReachesThatScope(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(nil, "test", logger.NewNopLogger())
	go h.Run(ctx)

	a := register(t, h, "org:1")
	b := register(t, h, "org:1")
	other := register(t, h, "org:2")

	h.SendToScope("org:1", []byte(`{"collection":"team"}`))

	assert.Equal(t, `{"collection":"team"}`, string(<-a.Send))
	assert.Equal(t, `{"collection":"team"}`, string(<-b.Send))
	select {
	case msg := <-other.Send:
		t.Fatalf("unexpected message for org:2: %s", msg)
	default:
	}
	assert.Equal(t, 2, h.ClientCount("org:1"))
}

func TestUnregisterClosesSendAndForgetsScope(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(nil, "test", logger.NewNopLogger())
	go h.Run(ctx)

	c := register(t, h, "user:9")
	h.Unregister(c)

	_, open := <-c.Send
	assert.False(t, open)
	assert.Equal(t, 0, h.ClientCount("user:9"))
}

func TestFullBufferDropsClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(nil, "test", logger.NewNopLogger())
	go h.Run(ctx)

	c := register(t, h, "org:3")
	for i := 0; i < cap(c.Send)+1; i++ {
		h.SendToScope("org:3", []byte("x"))
	}

	assert.Eventually(t, func() bool { return h.ClientCount("org:3") == 0 }, time.Second, 5*time.Millisecond)
}

func TestStoppedHubNeverBlocks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	h := NewHub(nil, "test", logger.NewNopLogger())
	stopped := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(stopped)
	}()

	c := register(t, h, "org:4")
	cancel()
	<-stopped

	_, open := <-c.Send
	assert.False(t, open, "shutdown closes remaining clients")
	assert.Equal(t, 0, h.ClientCount("org:4"))

	returned := make(chan struct{})
	go func() {
		h.Unregister(c)
		assert.False(t, h.Register(&Client{Hub: h, Scope: "org:4", Send: make(chan []byte, 1)}))
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("hub calls blocked after Run returned")
	}
}

func TestRedisFanoutAcrossInstances(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("Skipping: REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdbA, rdbB := redis.NewClient(opts), redis.NewClient(opts)
	defer rdbA.Close()
	defer rdbB.Close()

	a := NewHub(rdbA, "a", logger.NewNopLogger())
	b := NewHub(rdbB, "b", logger.NewNopLogger())
	go a.Run(ctx)
	go b.Run(ctx)

	remote := register(t, b, "org:cluster")
	time.Sleep(200 * time.Millisecond) // let the subscription settle

	a.SendToScope("org:cluster", []byte(`{"collection":"interviews"}`))

	select {
	case msg := <-remote.Send:
		assert.JSONEq(t, `{"collection":"interviews"}`, string(msg))
	case <-time.After(2 * time.Second):
		t.Fatal("message did not cross instances")
	}
}
