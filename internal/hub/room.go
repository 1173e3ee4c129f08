package hub

import "sync"

// Room groups the connections currently subscribed to one workspace's
// broadcasts. Rooms are runtime-only state; an empty room is equivalent to no
// room at all.
type Room struct {
	WorkspaceID string
	clients     map[*Client]bool
	mu          sync.RWMutex
	Hub         *Hub
}

// NewRoom creates a new Room for a workspace.
func NewRoom(workspaceID string, hub *Hub) *Room {
	return &Room{
		WorkspaceID: workspaceID,
		clients:     make(map[*Client]bool),
		Hub:         hub,
	}
}

// addClient adds a client to the room. Joining an already-joined room is a
// no-op.
func (r *Room) addClient(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[client] = true
}

// removeClient removes a client from the room.
func (r *Room) removeClient(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[client]; ok {
		delete(r.clients, client)
	}
}

// hasClient checks if a client is in the room.
func (r *Room) hasClient(client *Client) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.clients[client]
	return ok
}

// broadcast sends a message to every client in the room, including the
// sender.
func (r *Room) broadcast(message []byte) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for client := range r.clients {
		select {
		case client.Send <- message:
		default:
			// The client's send channel is full. Drop the client rather than
			// block the hub loop; the unregister must not be synchronous here
			// since broadcast runs on the hub goroutine itself.
			go func(c *Client) { r.Hub.unregister <- c }(client)
		}
	}
}
