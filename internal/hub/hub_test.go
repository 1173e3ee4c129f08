package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahsanulk27/collab-flow/internal/domain"
)

type fakeChatService struct {
	sendFn func(ctx context.Context, principal *domain.Principal, workspaceID, content string) (*domain.ChatMessage, error)
}

func (f *fakeChatService) SendMessage(ctx context.Context, principal *domain.Principal, workspaceID, content string) (*domain.ChatMessage, error) {
	if f.sendFn == nil {
		return &domain.ChatMessage{WorkspaceID: workspaceID, SenderID: principal.UserID, Content: content}, nil
	}
	return f.sendFn(ctx, principal, workspaceID, content)
}

func (f *fakeChatService) History(context.Context, *domain.Principal, string, int64) ([]*domain.ChatMessage, error) {
	return nil, nil
}

// newTestClient attaches a transportless client directly to the hub, the way
// register would, so events can be driven synchronously.
func newTestClient(h *Hub, userID string) *Client {
	client := &Client{
		ID:        userID,
		Principal: &domain.Principal{UserID: userID, Email: userID + "@example.com"},
		Hub:       h,
		Send:      make(chan []byte, 8),
	}
	h.connections[client] = true
	return client
}

func join(h *Hub, c *Client, workspaceID string) {
	h.handleEvent(&ClientRequest{Client: c, Message: domain.WebSocketMessage{
		Type:    domain.EventJoinWorkspace,
		Payload: workspaceID,
	}})
}

func send(h *Hub, c *Client, workspaceID, content string) {
	h.handleEvent(&ClientRequest{Client: c, Message: domain.WebSocketMessage{
		Type:    domain.EventSendMessage,
		Payload: domain.SendMessagePayload{WorkspaceID: workspaceID, Content: content},
	}})
}

func recvEvent(t *testing.T, c *Client) (string, json.RawMessage) {
	t.Helper()
	select {
	case raw := <-c.Send:
		var msg struct {
			Type    string          `json:"type"`
			Payload json.RawMessage `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(raw, &msg))
		return msg.Type, msg.Payload
	default:
		t.Fatal("expected an event, got none")
		return "", nil
	}
}

func assertNoEvent(t *testing.T, c *Client) {
	t.Helper()
	select {
	case raw := <-c.Send:
		t.Fatalf("expected no event, got %s", raw)
	default:
	}
}

func TestJoinWorkspaceIsIdempotent(t *testing.T) {
	h := NewHub(&fakeChatService{})
	c := newTestClient(h, "u1")

	join(h, c, "ws-1")
	join(h, c, "ws-1")

	assert.Len(t, h.rooms["ws-1"].clients, 1)
}

func TestBroadcastReachesRoomMembersIncludingSender(t *testing.T) {
	h := NewHub(&fakeChatService{})
	c1 := newTestClient(h, "u1")
	c2 := newTestClient(h, "u2")
	c3 := newTestClient(h, "u3")

	join(h, c1, "ws-1")
	join(h, c2, "ws-1")
	// c3 never joins ws-1 and must not receive its broadcasts.

	send(h, c1, "ws-1", "hello")

	for _, c := range []*Client{c1, c2} {
		eventType, payload := recvEvent(t, c)
		assert.Equal(t, domain.EventNewMessage, eventType)

		var message domain.ChatMessage
		require.NoError(t, json.Unmarshal(payload, &message))
		assert.Equal(t, "hello", message.Content)
		assert.Equal(t, "u1", message.SenderID)
	}
	assertNoEvent(t, c3)
}

func TestNonMemberSendGetsPrivateError(t *testing.T) {
	svc := &fakeChatService{
		sendFn: func(_ context.Context, principal *domain.Principal, workspaceID, content string) (*domain.ChatMessage, error) {
			if principal.UserID != "u1" {
				return nil, domain.ErrNotMember
			}
			return &domain.ChatMessage{WorkspaceID: workspaceID, SenderID: principal.UserID, Content: content}, nil
		},
	}
	h := NewHub(svc)
	member := newTestClient(h, "u1")
	outsider := newTestClient(h, "u2")

	// Subscribing requires only authentication, so the outsider joins too.
	join(h, member, "ws-1")
	join(h, outsider, "ws-1")

	send(h, member, "ws-1", "hello")

	eventType, _ := recvEvent(t, member)
	assert.Equal(t, domain.EventNewMessage, eventType)
	eventType, _ = recvEvent(t, outsider)
	assert.Equal(t, domain.EventNewMessage, eventType)

	send(h, outsider, "ws-1", "hello")

	eventType, payload := recvEvent(t, outsider)
	assert.Equal(t, domain.EventMessageError, eventType)
	var errPayload domain.ErrorPayload
	require.NoError(t, json.Unmarshal(payload, &errPayload))
	assert.Equal(t, "You are not a member of this workspace", errPayload.Message)

	// The failed send is invisible to everyone else.
	assertNoEvent(t, member)
}

func TestSendOrderPreserved(t *testing.T) {
	h := NewHub(&fakeChatService{})
	c := newTestClient(h, "u1")
	join(h, c, "ws-1")

	for i := 0; i < 3; i++ {
		send(h, c, "ws-1", fmt.Sprintf("message-%d", i))
	}

	for i := 0; i < 3; i++ {
		_, payload := recvEvent(t, c)
		var message domain.ChatMessage
		require.NoError(t, json.Unmarshal(payload, &message))
		assert.Equal(t, fmt.Sprintf("message-%d", i), message.Content)
	}
}

func TestDisconnectLeavesAllRooms(t *testing.T) {
	h := NewHub(&fakeChatService{})
	gone := newTestClient(h, "u1")
	stays := newTestClient(h, "u2")

	join(h, gone, "ws-1")
	join(h, gone, "ws-2")
	join(h, stays, "ws-1")

	h.handleDisconnect(gone)

	assert.False(t, h.rooms["ws-1"].hasClient(gone))
	assert.False(t, h.rooms["ws-2"].hasClient(gone))

	send(h, stays, "ws-1", "after-disconnect")
	eventType, _ := recvEvent(t, stays)
	assert.Equal(t, domain.EventNewMessage, eventType)

	_, open := <-gone.Send
	assert.False(t, open, "disconnected client's send channel must be closed")
}

func TestEventsFromDisconnectedClientAreDropped(t *testing.T) {
	h := NewHub(&fakeChatService{})
	gone := newTestClient(h, "u1")
	stays := newTestClient(h, "u2")
	join(h, gone, "ws-1")
	join(h, stays, "ws-1")

	h.handleDisconnect(gone)

	// The read pump may still deliver events it queued before the
	// disconnect; replying to the closed Send channel would panic the hub
	// goroutine, and a late join would re-add a dangling reference.
	send(h, gone, "ws-1", "late")
	join(h, gone, "ws-2")
	h.handleEvent(&ClientRequest{Client: gone, Message: domain.WebSocketMessage{Type: "unknownEvent"}})

	assert.False(t, h.rooms["ws-1"].hasClient(gone))
	if room, ok := h.rooms["ws-2"]; ok {
		assert.False(t, room.hasClient(gone))
	}
	assertNoEvent(t, stays)

	// The room must still broadcast safely to remaining members.
	send(h, stays, "ws-1", "after")
	eventType, _ := recvEvent(t, stays)
	assert.Equal(t, domain.EventNewMessage, eventType)
}

func TestLeaveWorkspaceStopsDelivery(t *testing.T) {
	h := NewHub(&fakeChatService{})
	c1 := newTestClient(h, "u1")
	c2 := newTestClient(h, "u2")

	join(h, c1, "ws-1")
	join(h, c2, "ws-1")

	h.handleEvent(&ClientRequest{Client: c2, Message: domain.WebSocketMessage{
		Type:    domain.EventLeaveWorkspace,
		Payload: "ws-1",
	}})

	send(h, c1, "ws-1", "hello")
	eventType, _ := recvEvent(t, c1)
	assert.Equal(t, domain.EventNewMessage, eventType)
	assertNoEvent(t, c2)
}

func TestMalformedPayloadsRejected(t *testing.T) {
	h := NewHub(&fakeChatService{})
	c := newTestClient(h, "u1")

	h.handleEvent(&ClientRequest{Client: c, Message: domain.WebSocketMessage{
		Type:    domain.EventSendMessage,
		Payload: "not-an-object",
	}})
	eventType, _ := recvEvent(t, c)
	assert.Equal(t, domain.EventMessageError, eventType)

	h.handleEvent(&ClientRequest{Client: c, Message: domain.WebSocketMessage{
		Type:    domain.EventJoinWorkspace,
		Payload: 42,
	}})
	eventType, _ = recvEvent(t, c)
	assert.Equal(t, domain.EventMessageError, eventType)

	h.handleEvent(&ClientRequest{Client: c, Message: domain.WebSocketMessage{
		Type: "unknownEvent",
	}})
	eventType, _ = recvEvent(t, c)
	assert.Equal(t, domain.EventMessageError, eventType)
}

func TestStoreFailureSignalsSenderOnly(t *testing.T) {
	svc := &fakeChatService{
		sendFn: func(context.Context, *domain.Principal, string, string) (*domain.ChatMessage, error) {
			return nil, fmt.Errorf("failed to save message: store unavailable")
		},
	}
	h := NewHub(svc)
	c1 := newTestClient(h, "u1")
	c2 := newTestClient(h, "u2")
	join(h, c1, "ws-1")
	join(h, c2, "ws-1")

	send(h, c1, "ws-1", "hello")

	eventType, payload := recvEvent(t, c1)
	assert.Equal(t, domain.EventMessageError, eventType)
	var errPayload domain.ErrorPayload
	require.NoError(t, json.Unmarshal(payload, &errPayload))
	assert.Equal(t, "Failed to send message", errPayload.Message)
	assertNoEvent(t, c2)
}
