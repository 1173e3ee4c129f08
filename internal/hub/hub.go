package hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Ahsanulk27/collab-flow/internal/domain"
	"github.com/Ahsanulk27/collab-flow/internal/service"
)

// ClientRequest bundles a client with their incoming event.
type ClientRequest struct {
	Client  *Client
	Message domain.WebSocketMessage
}

// Hub maintains the set of active clients and the workspace rooms they have
// joined, and routes broadcasts to room members. All room-map mutation and
// event handling happens on the single Run goroutine: each sendMessage is
// persisted and broadcast before the next event is drained, so broadcast
// order always matches store write order.
type Hub struct {
	connections map[*Client]bool
	rooms       map[string]*Room
	events      chan *ClientRequest
	register    chan *Client
	unregister  chan *Client
	chatService service.IChatService
}

// NewHub creates a new Hub.
func NewHub(chatService service.IChatService) *Hub {
	return &Hub{
		connections: make(map[*Client]bool),
		rooms:       make(map[string]*Room),
		events:      make(chan *ClientRequest),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		chatService: chatService,
	}
}

// Run drains the hub's channels. It must run on exactly one goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.connections[client] = true
		case client := <-h.unregister:
			h.handleDisconnect(client)
		case request := <-h.events:
			h.handleEvent(request)
		}
	}
}

// ServeWs registers an authenticated connection with the hub and starts its
// read and write pumps.
func (h *Hub) ServeWs(conn *websocket.Conn, principal *domain.Principal) {
	client := &Client{
		ID:        uuid.NewString(),
		Principal: principal,
		Hub:       h,
		Conn:      conn,
		Send:      make(chan []byte, 256),
	}
	h.register <- client
	go client.writePump()
	go client.readPump()
}

// handleDisconnect removes a client from every room it joined and releases
// its resources. Reconnect churn must not leave dangling references behind.
func (h *Hub) handleDisconnect(client *Client) {
	if _, ok := h.connections[client]; !ok {
		return
	}
	for _, room := range h.rooms {
		room.removeClient(client)
	}
	delete(h.connections, client)
	close(client.Send)
}

func (h *Hub) handleEvent(req *ClientRequest) {
	// A client's read pump may have queued events before the client was
	// evicted or disconnected. Its Send channel is already closed and its
	// room references released, so such events must be dropped: replying
	// would panic on the closed channel, and a queued join would re-add a
	// dangling reference.
	if _, ok := h.connections[req.Client]; !ok {
		return
	}

	switch req.Message.Type {
	case domain.EventJoinWorkspace:
		h.handleJoinWorkspace(req)
	case domain.EventLeaveWorkspace:
		h.handleLeaveWorkspace(req)
	case domain.EventSendMessage:
		h.handleSendMessage(req)
	default:
		req.Client.sendErrorMessage(fmt.Sprintf("Unknown event type: %s", req.Message.Type))
	}
}

// handleJoinWorkspace subscribes the connection to a workspace's broadcasts.
// Policy: subscribing requires authentication but not membership; sending and
// history do require membership.
func (h *Hub) handleJoinWorkspace(req *ClientRequest) {
	var workspaceID string
	if err := parsePayload(req.Message.Payload, &workspaceID); err != nil || workspaceID == "" {
		req.Client.sendErrorMessage("Invalid joinWorkspace payload.")
		return
	}
	h.room(workspaceID).addClient(req.Client)
}

func (h *Hub) handleLeaveWorkspace(req *ClientRequest) {
	var workspaceID string
	if err := parsePayload(req.Message.Payload, &workspaceID); err != nil || workspaceID == "" {
		req.Client.sendErrorMessage("Invalid leaveWorkspace payload.")
		return
	}
	if room, ok := h.rooms[workspaceID]; ok {
		room.removeClient(req.Client)
	}
}

// handleSendMessage persists a message and broadcasts it to the workspace
// room. Every failure is converted into a private 'messageError' event to the
// origin; nothing is broadcast and nothing crashes the connection.
func (h *Hub) handleSendMessage(req *ClientRequest) {
	var payload domain.SendMessagePayload
	if err := parsePayload(req.Message.Payload, &payload); err != nil {
		req.Client.sendErrorMessage("Invalid sendMessage payload.")
		return
	}

	if req.Client.Principal == nil {
		req.Client.sendErrorMessage("Authentication required")
		return
	}

	message, err := h.chatService.SendMessage(context.Background(), req.Client.Principal, payload.WorkspaceID, payload.Content)
	if err != nil {
		req.Client.sendErrorMessage(sendMessageError(err))
		return
	}

	msg, err := json.Marshal(domain.WebSocketMessage{Type: domain.EventNewMessage, Payload: message})
	if err != nil {
		req.Client.sendErrorMessage("Failed to send message")
		return
	}
	h.room(payload.WorkspaceID).broadcast(msg)
}

// room returns the room for a workspace, creating it on first use.
func (h *Hub) room(workspaceID string) *Room {
	room, ok := h.rooms[workspaceID]
	if !ok {
		room = NewRoom(workspaceID, h)
		h.rooms[workspaceID] = room
	}
	return room
}

// sendMessageError maps a send failure to the message shown to the origin.
func sendMessageError(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotMember):
		return "You are not a member of this workspace"
	case errors.Is(err, domain.ErrValidation):
		return err.Error()
	case errors.Is(err, domain.ErrAuthentication):
		return "Authentication required"
	default:
		return "Failed to send message"
	}
}

func parsePayload(payload interface{}, result interface{}) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return errors.New("failed to marshal payload")
	}
	return json.Unmarshal(payloadBytes, result)
}
