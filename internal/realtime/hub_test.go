package realtime

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func newTestClient(id string) *Client {
	return &Client{
		ID:   id,
		send: make(chan []byte, 4),
	}
}

func waitForClientCount(t *testing.T, hub *Hub, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("client count = %d, want %d", hub.ClientCount(), want)
}

func TestHubPublishReachesAllClients(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	first := newTestClient("first")
	second := newTestClient("second")
	hub.register <- first
	hub.register <- second
	waitForClientCount(t, hub, 2)

	hub.Publish(Change{Collection: "moods", Event: EventInsert})

	for _, client := range []*Client{first, second} {
		select {
		case payload := <-client.send:
			var change Change
			if err := json.Unmarshal(payload, &change); err != nil {
				t.Fatalf("unmarshal payload for %s: %v", client.ID, err)
			}
			if change.Collection != "moods" || change.Event != EventInsert {
				t.Fatalf("client %s got %+v", client.ID, change)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("client %s never received the change", client.ID)
		}
	}
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := newTestClient("only")
	hub.register <- client
	waitForClientCount(t, hub, 1)

	hub.unregister <- client
	waitForClientCount(t, hub, 0)

	select {
	case _, open := <-client.send:
		if open {
			t.Fatal("expected send channel to be closed")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("send channel was never closed")
	}
}

func TestHubDropsSlowClients(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	slow := &Client{ID: "slow", send: make(chan []byte)}
	hub.register <- slow
	waitForClientCount(t, hub, 1)

	// Nothing drains the channel, so the publish must discard the client
	// rather than block.
	hub.Publish(Change{Collection: "friends", Event: EventUpdate})
	waitForClientCount(t, hub, 0)
}

func TestHubPublishReturnsAfterShutdown(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	cancel()
	select {
	case <-hub.done:
	case <-time.After(2 * time.Second):
		t.Fatal("hub never shut down")
	}

	// A connection that raced the shutdown: present in the map, nothing
	// draining its channel, and no Run goroutine left to hand it to.
	straggler := &Client{ID: "straggler", send: make(chan []byte)}
	hub.mu.Lock()
	hub.clients[straggler.ID] = straggler
	hub.mu.Unlock()

	finished := make(chan struct{})
	go func() {
		hub.Publish(Change{Collection: "moods", Event: EventDelete})
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked after hub shutdown")
	}
}

func TestHubShutdownDisconnectsEveryone(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	client := newTestClient("doomed")
	hub.register <- client
	waitForClientCount(t, hub, 1)

	cancel()
	waitForClientCount(t, hub, 0)

	select {
	case _, open := <-client.send:
		if open {
			t.Fatal("expected send channel to be closed on shutdown")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("send channel was never closed on shutdown")
	}
}
