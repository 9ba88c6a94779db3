package api

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"tradescan/internal/scan"
	"tradescan/pkg/logger"
)

// Hub fans scan progress out to websocket subscribers. A slow client is
// dropped rather than allowed to stall the run.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]chan scan.Event
	upgrader websocket.Upgrader
	logger   *logger.Logger
}

// NewHub creates a Hub.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]chan scan.Event),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: log,
	}
}

// Broadcast queues an event to every subscriber. Never blocks: a full
// client buffer means the client is too slow and gets disconnected.
func (h *Hub) Broadcast(ev scan.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, ch := range h.clients {
		select {
		case ch <- ev:
		default:
			h.logger.Warn("dropping slow websocket client")
			close(ch)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// ServeWS upgrades the request and streams events until the client leaves.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("websocket upgrade failed")
		return
	}

	ch := make(chan scan.Event, 64)
	h.mu.Lock()
	h.clients[conn] = ch
	h.mu.Unlock()

	// Reader goroutine notices the disconnect; writes happen below.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.remove(conn)
				return
			}
		}
	}()

	for ev := range ch {
		if err := conn.WriteJSON(ev); err != nil {
			h.remove(conn)
			return
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.clients[conn]; ok {
		close(ch)
		delete(h.clients, conn)
	}
	conn.Close()
}

// ClientCount reports current subscribers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
