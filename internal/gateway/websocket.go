package gateway

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/nidhogg/jobscout/internal/chat"
	"github.com/nidhogg/jobscout/internal/metrics"
	"go.uber.org/zap"
)

// WebSocketAdapter is the primary transport: JSON frames over a
// WebSocket connection, one session per connection.
type WebSocketAdapter struct {
	registry *chat.Registry
	metrics  *metrics.Manager
	upgrader websocket.Upgrader
	conns    map[string]*websocket.Conn
	mu       sync.Mutex
	logger   *zap.Logger
}

// NewWebSocketAdapter creates the WebSocket transport. Origin checking
// is left open: the browser frontend is served from a different origin.
func NewWebSocketAdapter(registry *chat.Registry, m *metrics.Manager, logger *zap.Logger) *WebSocketAdapter {
	return &WebSocketAdapter{
		registry: registry,
		metrics:  m,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		conns:  make(map[string]*websocket.Conn),
		logger: logger,
	}
}

func (a *WebSocketAdapter) Platform() string { return "websocket" }

// Connect is a no-op; connections arrive via the HTTP handler.
func (a *WebSocketAdapter) Connect(_ context.Context) error { return nil }

// Handler upgrades an HTTP request and serves the connection until it
// closes. Each connection runs its own read loop goroutine (this one),
// which is also the only writer on the socket.
func (a *WebSocketAdapter) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := a.upgrader.Upgrade(w, r, nil)
		if err != nil {
			a.logger.Warn("websocket upgrade failed", zap.Error(err))
			return
		}
		a.serve(conn)
	}
}

func (a *WebSocketAdapter) serve(conn *websocket.Conn) {
	id := uuid.New().String()

	a.mu.Lock()
	a.conns[id] = conn
	a.mu.Unlock()

	a.metrics.IncConnections(a.Platform())
	defer func() {
		a.registry.Disconnect(id)
		a.mu.Lock()
		delete(a.conns, id)
		a.mu.Unlock()
		a.metrics.DecConnections()
		conn.Close()
	}()

	welcome := a.registry.Connect(id)
	if err := conn.WriteJSON(welcome); err != nil {
		a.logger.Warn("welcome send failed",
			zap.String("connection", id), zap.Error(err))
		return
	}

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				a.logger.Warn("websocket read failed",
					zap.String("connection", id), zap.Error(err))
			}
			return
		}

		a.metrics.IncMessages(a.Platform())
		frame := a.registry.Handle(id, payload)
		if frame == nil {
			continue
		}
		if err := conn.WriteJSON(frame); err != nil {
			a.logger.Warn("websocket send failed",
				zap.String("connection", id), zap.Error(err))
			return
		}
	}
}

// Close drops all live connections; their read loops unwind and discard
// their sessions.
func (a *WebSocketAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, conn := range a.conns {
		conn.Close()
	}
	return nil
}
