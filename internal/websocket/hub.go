package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"recruai-web/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// RedisChannel carries change notices between instances.
const RedisChannel = "recruai:refresh"

// Hub tracks live dashboard connections by scope ("org:<id>" or "user:<id>").
type Hub struct {
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client

	// closed once Run has returned
	done     chan struct{}
	stopOnce sync.Once

	mu sync.RWMutex

	// nil when running a single instance
	rdb *redis.Client

	// instance id, so an instance skips its own messages coming back from Redis
	origin string

	logger logger.ILogger
}

type clusterMessage struct {
	Origin  string          `json:"origin"`
	Scope   string          `json:"scope"`
	Message json.RawMessage `json:"message"`
}

func NewHub(rdb *redis.Client, origin string, log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[string][]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		rdb:        rdb,
		origin:     origin,
		logger:     log,
	}
}

// Run owns registration until ctx is done. On return every remaining client's
// Send channel is closed, which ends its connection.
func (h *Hub) Run(ctx context.Context) {
	defer h.stop()

	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.Scope] = append(h.clients[client.Scope], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "client registered", map[string]interface{}{"scope": client.Scope})

		case client := <-h.unregister:
			h.remove(client)
		}
	}
}

func (h *Hub) stop() {
	h.stopOnce.Do(func() {
		close(h.done)

		h.mu.Lock()
		defer h.mu.Unlock()
		for scope, clients := range h.clients {
			for _, c := range clients {
				close(c.Send)
			}
			delete(h.clients, scope)
		}
	})
}

// Register hands client to the hub. It reports false once the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes client. It never blocks on a stopped hub.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
		h.remove(client)
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.clients[client.Scope]
	found := false
	for i, c := range clients {
		if c == client {
			h.clients[client.Scope] = append(clients[:i], clients[i+1:]...)
			close(client.Send)
			found = true
			break
		}
	}
	if found && len(h.clients[client.Scope]) == 0 {
		delete(h.clients, client.Scope)
		h.logger.Info("Hub", "scope has no clients left", map[string]interface{}{"scope": client.Scope})
	}
}

// SendToScope delivers payload to local clients in scope and, when Redis is
// configured, to the other instances.
func (h *Hub) SendToScope(scope string, payload []byte) {
	h.deliver(scope, payload)

	if h.rdb == nil {
		return
	}
	data, err := json.Marshal(clusterMessage{Origin: h.origin, Scope: scope, Message: payload})
	if err != nil {
		return
	}
	if err := h.rdb.Publish(context.Background(), RedisChannel, data).Err(); err != nil {
		h.logger.Warn("Hub", "redis publish failed", map[string]interface{}{"error": err.Error()})
	}
}

// ClientCount is the number of local connections in scope.
func (h *Hub) ClientCount(scope string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[scope])
}

func (h *Hub) deliver(scope string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients[scope] {
		select {
		case client.Send <- payload:
		default:
			h.logger.Warn("Hub", "client send buffer full, dropping connection", map[string]interface{}{"scope": scope})
			go h.Unregister(client)
		}
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, RedisChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var m clusterMessage
			if err := json.Unmarshal([]byte(msg.Payload), &m); err != nil {
				h.logger.Warn("Hub", "redis message parse error", map[string]interface{}{"error": err.Error()})
				continue
			}
			if m.Origin == h.origin {
				continue
			}
			h.deliver(m.Scope, m.Message)
		}
	}
}
