package hub

import (
	"encoding/json"
	"log"

	"github.com/gorilla/websocket"

	"github.com/Ahsanulk27/collab-flow/internal/domain"
)

// Client is the intermediary between a WebSocket connection and the Hub. The
// principal is attached by the connection gate before the client is created,
// so every client processed by the hub is authenticated.
type Client struct {
	ID        string
	Principal *domain.Principal
	Hub       *Hub
	Conn      *websocket.Conn
	Send      chan []byte
}

// readPump reads events from the WebSocket connection and forwards them to
// the hub's event queue.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		var req domain.WebSocketMessage
		err := c.Conn.ReadJSON(&req)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("readPump error (client: %s): %v", c.ID, err)
			}
			break
		}

		c.Hub.events <- &ClientRequest{Client: c, Message: req}
	}
}

// writePump writes messages from the Send channel to the WebSocket
// connection, preserving per-connection FIFO order.
func (c *Client) writePump() {
	defer func() {
		c.Conn.Close()
	}()

	for message := range c.Send {
		err := c.Conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			log.Printf("writePump error (client: %s): %v", c.ID, err)
			return
		}
	}
}

// sendErrorMessage emits a private 'messageError' event to this client only.
func (c *Client) sendErrorMessage(message string) {
	respMsg := domain.WebSocketMessage{
		Type:    domain.EventMessageError,
		Payload: domain.ErrorPayload{Message: message},
	}
	jsonMsg, err := json.Marshal(respMsg)
	if err != nil {
		return
	}
	// The send channel may already be closed or full on disconnect.
	select {
	case c.Send <- jsonMsg:
	default:
		log.Printf("Could not send error message to %s (channel full or closed)", c.ID)
	}
}
