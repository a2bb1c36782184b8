// Package ws broadcasts parsed sweep samples to browser clients over
// WebSocket, standing in for the original host-side live plot.
package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"sonarsweep/host/sweep"
)

const (
	writeWait      = 10 * time.Second
	pingInterval   = 30 * time.Second
	clientSendSize = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The feed is read-only telemetry on a local tool; any origin may view.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// client is one connected WebSocket consumer.
type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub fans parsed samples out to all connected clients. Slow clients are
// dropped rather than allowed to stall the broadcast.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]bool

	register   chan *client
	unregister chan *client
	broadcast  chan []byte

	// done is closed when Run returns, unblocking any goroutine still
	// trying to register or unregister a client.
	done chan struct{}
}

// NewHub creates an empty Hub. Call Run before serving connections.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
	}
}

// Run owns the client set until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			n := len(h.clients)
			h.mu.Unlock()
			log.Printf("ws: client %s connected (%d total)", c.id, n)

		case c := <-h.unregister:
			h.remove(c)

		case msg := <-h.broadcast:
			var dead []*client
			h.mu.RLock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Send queue full: the client is too slow to keep up.
					dead = append(dead, c)
				}
			}
			h.mu.RUnlock()
			for _, c := range dead {
				h.remove(c)
			}

		case <-ping.C:
			h.mu.RLock()
			for c := range h.clients {
				c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			}
			h.mu.RUnlock()
		}
	}
}

// BroadcastSample queues one sample for all clients. Never blocks the
// serial read path: when the broadcast buffer is full the sample is
// dropped.
func (h *Hub) BroadcastSample(s sweep.Sample) {
	msg, err := json.Marshal(s)
	if err != nil {
		log.Printf("ws: marshal sample: %v", err)
		return
	}
	select {
	case h.broadcast <- msg:
	default:
	}
}

// ServeHTTP upgrades a connection and attaches it to the hub.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws: upgrade: %v", err)
		return
	}

	c := &client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan []byte, clientSendSize),
	}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump(h)
}

// remove detaches a client and closes its send queue. Run-goroutine only.
func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		close(c.send)
	}
	n := len(h.clients)
	h.mu.Unlock()
	if ok {
		log.Printf("ws: client %s disconnected (%d total)", c.id, n)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
}

// writePump drains the client's send queue onto the socket.
func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	c.conn.WriteControl(websocket.CloseMessage, nil, time.Now().Add(writeWait))
}

// readPump discards inbound frames (the feed is one-way) and detects
// disconnects.
func (c *client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
	}()
	c.conn.SetReadLimit(512)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
