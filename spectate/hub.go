// Package spectate streams game snapshots to websocket clients and turns
// their key messages into game input.
package spectate

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"golang.org/x/net/websocket"

	"github.com/jtestard/pongcade/pong"
)

// Message is a control message sent by a client
type Message struct {
	Type   string `json:"type"`
	Actor  string `json:"actor"`
	Target string `json:"target"`
}

// KeyEvent is a key press or release coming from a client
type KeyEvent struct {
	Key  pong.Key
	Down bool
}

var remoteKeys = map[[2]string]pong.Key{
	{"p1", "up"}:   pong.KeyP1Up,
	{"p1", "down"}: pong.KeyP1Down,
	{"p2", "up"}:   pong.KeyP2Up,
	{"p2", "down"}: pong.KeyP2Down,
}

// KeyEvent translates m into a key event. ok is false for messages the game
// does not understand.
func (m Message) KeyEvent() (ev KeyEvent, ok bool) {
	switch m.Type {
	case "start":
		return KeyEvent{Key: pong.KeyServe, Down: true}, true
	case "keydown", "keyup":
		k, ok := remoteKeys[[2]string{m.Actor, m.Target}]
		if !ok {
			return KeyEvent{}, false
		}
		return KeyEvent{Key: k, Down: m.Type == "keydown"}, true
	}
	return KeyEvent{}, false
}

type client struct {
	send chan pong.Snapshot
}

// Hub fans snapshots out to every connected client. Publish never blocks:
// a client that falls behind misses frames.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	last    *pong.Snapshot
	events  chan KeyEvent
}

// NewHub creates a hub whose event channel holds up to buffer key events
func NewHub(buffer int) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		events:  make(chan KeyEvent, buffer),
	}
}

// Events returns the key events received from clients. The game loop
// drains it between frames.
func (h *Hub) Events() <-chan KeyEvent {
	return h.events
}

// Clients returns the number of connected clients
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish queues s for every client
func (h *Hub) Publish(s pong.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = &s
	for c := range h.clients {
		select {
		case c.send <- s:
		default:
		}
	}
}

// Handler returns the websocket endpoint
func (h *Hub) Handler() http.Handler {
	return websocket.Server{Handler: websocket.Handler(h.handleWsConnection)}
}

func (h *Hub) register() *client {
	c := &client{send: make(chan pong.Snapshot, 4)}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last != nil {
		c.send <- *h.last
	}
	h.clients[c] = struct{}{}
	return c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) handleWsConnection(ws *websocket.Conn) {
	c := h.register()
	defer h.unregister(c)

	go func() {
		for s := range c.send {
			if err := websocket.JSON.Send(ws, s); err != nil {
				ws.Close()
				return
			}
		}
	}()

	for {
		var data Message
		if err := websocket.JSON.Receive(ws, &data); err != nil {
			return
		}
		ev, ok := data.KeyEvent()
		if !ok {
			continue
		}
		select {
		case h.events <- ev:
		default:
			log.Printf("spectate: dropping %s event, game loop is behind", ev.Key)
		}
	}
}

// ListenAndServe serves the hub on addr at /ws until ctx is done
func ListenAndServe(ctx context.Context, addr string, h *Hub) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", h.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
