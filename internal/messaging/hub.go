// internal/messaging/hub.go

package messaging

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Hub maintains active websocket connections, one per user.
type Hub struct {
	clients    map[string]*Client
	clientsMux sync.RWMutex

	broadcast  chan broadcastEvent
	register   chan *Client
	unregister chan *Client

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type broadcastEvent struct {
	userIDs []string
	event   WSEvent
}

func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan broadcastEvent, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (h *Hub) Run() {
	h.wg.Add(1)
	defer func() {
		h.cleanup()
		h.wg.Done()
	}()

	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case ev := <-h.broadcast:
			h.deliver(ev)

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()

	// Replace an old connection for the same user
	if oldClient, exists := h.clients[client.userID]; exists {
		oldClient.Close()
	}
	h.clients[client.userID] = client
	wsConnections.Set(float64(len(h.clients)))

	log.Printf("User %s connected. Total clients: %d", client.userID, len(h.clients))
}

func (h *Hub) unregisterClient(client *Client) {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()

	if current, exists := h.clients[client.userID]; exists && current == client {
		client.Close()
		delete(h.clients, client.userID)
		wsConnections.Set(float64(len(h.clients)))

		log.Printf("User %s disconnected. Total clients: %d", client.userID, len(h.clients))
	}
}

func (h *Hub) deliver(ev broadcastEvent) {
	h.clientsMux.RLock()
	defer h.clientsMux.RUnlock()

	data, err := json.Marshal(ev.event)
	if err != nil {
		log.Printf("Error marshalling event: %v", err)
		return
	}

	for _, userID := range ev.userIDs {
		if client, exists := h.clients[userID]; exists {
			select {
			case client.send <- data:
			default:
				// Unregister if the send channel is blocked
				go func(c *Client) { h.unregister <- c }(client)
			}
		}
	}
}

// Push delivers an event to a single user. Offline users are skipped.
func (h *Hub) Push(userID string, event string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Printf("Error marshalling push payload: %v", err)
		return
	}

	ev := broadcastEvent{
		userIDs: []string{userID},
		event: WSEvent{
			Type:      event,
			Data:      payload,
			Timestamp: time.Now().UTC(),
		},
	}

	select {
	case h.broadcast <- ev:
	case <-h.ctx.Done():
	}
}

func (h *Hub) IsUserOnline(userID string) bool {
	h.clientsMux.RLock()
	defer h.clientsMux.RUnlock()

	_, exists := h.clients[userID]
	return exists
}

func (h *Hub) GetActiveConnections() int {
	h.clientsMux.RLock()
	defer h.clientsMux.RUnlock()
	return len(h.clients)
}

func (h *Hub) cleanup() {
	h.clientsMux.Lock()
	for _, client := range h.clients {
		client.Close()
	}
	h.clients = make(map[string]*Client)
	wsConnections.Set(0)
	h.clientsMux.Unlock()
}

// Shutdown stops the hub loop and waits for it to exit.
func (h *Hub) Shutdown() {
	h.cancel()
	h.wg.Wait()
}
