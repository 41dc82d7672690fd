package realtime

import (
	"context"
	"encoding/json"
	"sync"
)

// Events carried on the change channel. Clients refetch the named
// collection when a change arrives, mirroring a hosted realtime feed.
const (
	EventInsert = "insert"
	EventUpdate = "update"
	EventDelete = "delete"
)

// Change is one notification: something happened to a collection.
type Change struct {
	Collection string `json:"collection"`
	Event      string `json:"event"`
}

// Hub fans change notifications out to every connected client. Connection
// bookkeeping runs on the Run goroutine; Publish never blocks on a slow
// client, it drops the connection instead.
type Hub struct {
	mu         sync.RWMutex
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

func (hub *Hub) Run(ctx context.Context) {
	defer close(hub.done)
	for {
		select {
		case client := <-hub.register:
			hub.mu.Lock()
			hub.clients[client.ID] = client
			hub.mu.Unlock()

		case client := <-hub.unregister:
			hub.mu.Lock()
			if _, ok := hub.clients[client.ID]; ok {
				delete(hub.clients, client.ID)
				close(client.send)
			}
			hub.mu.Unlock()

		case <-ctx.Done():
			hub.mu.Lock()
			for id, client := range hub.clients {
				delete(hub.clients, id)
				close(client.send)
			}
			hub.mu.Unlock()
			return
		}
	}
}

// Publish broadcasts a change to all connected clients.
func (hub *Hub) Publish(change Change) {
	payload, err := json.Marshal(change)
	if err != nil {
		return
	}

	hub.mu.RLock()
	stale := make([]*Client, 0)
	for _, client := range hub.clients {
		select {
		case client.send <- payload:
		default:
			stale = append(stale, client)
		}
	}
	hub.mu.RUnlock()

	for _, client := range stale {
		hub.drop(client)
	}
}

// drop hands a client to the Run goroutine for removal. After Run has
// exited every client is already gone, so the send must not block then.
func (hub *Hub) drop(client *Client) {
	select {
	case hub.unregister <- client:
	case <-hub.done:
	}
}

// ClientCount reports the number of connected clients.
func (hub *Hub) ClientCount() int {
	hub.mu.RLock()
	defer hub.mu.RUnlock()
	return len(hub.clients)
}
