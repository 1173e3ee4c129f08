package network

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Ahsanulk27/collab-flow/internal/domain"
)

// Client manages the WebSocket connection to the CollabFlow server.
type Client struct {
	Conn *websocket.Conn
	Send chan domain.WebSocketMessage // outbound channel, prevents concurrent writes
}

// NewClient creates a new network client.
func NewClient() *Client {
	return &Client{
		Send: make(chan domain.WebSocketMessage, 256),
	}
}

// Connect dials the server with the bearer token in the handshake. The server
// refuses the connection before any events flow if the token is invalid.
func (c *Client) Connect(serverURL, token string) error {
	u, err := url.Parse(serverURL)
	if err != nil {
		return err
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	log.Printf("Connecting to %s...", u.Host)
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return err
	}
	log.Println("Connection successful!")
	c.Conn = conn

	go c.readPump()
	go c.writePump()

	return nil
}

// readPump reads events from the server and prints them to stdout.
func (c *Client) readPump() {
	defer c.Conn.Close()
	for {
		var msg domain.WebSocketMessage
		err := c.Conn.ReadJSON(&msg)
		if err != nil {
			log.Printf("Connection closed: %v", err)
			os.Exit(0)
			return
		}

		c.handleServerMessage(msg)
	}
}

// writePump sends messages from the Send channel to the server.
func (c *Client) writePump() {
	defer c.Conn.Close()
	for msg := range c.Send {
		err := c.Conn.WriteJSON(msg)
		if err != nil {
			log.Printf("Write error: %v", err)
			return
		}
	}
}

// HandleStdin reads terminal input and forwards commands to the Send channel.
func (c *Client) HandleStdin() {
	reader := bufio.NewReader(os.Stdin)
	fmt.Println("Commands: /join <workspace>, /leave <workspace>, /send <workspace> <message>")
	fmt.Print("> ")

	for {
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)

		if input == "" {
			fmt.Print("> ")
			continue
		}

		switch {
		case strings.HasPrefix(input, "/join "):
			workspaceID := strings.TrimSpace(strings.TrimPrefix(input, "/join "))
			c.Send <- domain.WebSocketMessage{Type: domain.EventJoinWorkspace, Payload: workspaceID}

		case strings.HasPrefix(input, "/leave "):
			workspaceID := strings.TrimSpace(strings.TrimPrefix(input, "/leave "))
			c.Send <- domain.WebSocketMessage{Type: domain.EventLeaveWorkspace, Payload: workspaceID}

		case strings.HasPrefix(input, "/send "):
			parts := strings.SplitN(input, " ", 3)
			if len(parts) < 3 {
				fmt.Printf("\r[ERROR] Invalid command format. Use: /send [workspace] [message]\n")
			} else {
				c.Send <- domain.WebSocketMessage{
					Type: domain.EventSendMessage,
					Payload: domain.SendMessagePayload{
						WorkspaceID: parts[1],
						Content:     parts[2],
					},
				}
			}

		default:
			fmt.Printf("\r[ERROR] Unknown command. Use /join, /leave or /send.\n")
		}
		fmt.Print("> ")
	}
}

// handleServerMessage pretty-prints a server event to the console.
func (c *Client) handleServerMessage(msg domain.WebSocketMessage) {
	timestamp := time.Now().Format("15:04:05")

	var output string

	switch msg.Type {
	case domain.EventNewMessage:
		var message domain.ChatMessage
		if err := reparse(msg.Payload, &message); err != nil {
			output = fmt.Sprintf("[%s] [UNKNOWN]: %v", timestamp, msg)
			break
		}
		name := message.Sender.Name
		if name == "" {
			name = message.SenderID
		}
		output = fmt.Sprintf("[%s] [%s] %s: %s", timestamp, message.WorkspaceID, name, message.Content)

	case domain.EventMessageError:
		var payload domain.ErrorPayload
		if err := reparse(msg.Payload, &payload); err != nil {
			output = fmt.Sprintf("[%s] [UNKNOWN]: %v", timestamp, msg)
			break
		}
		output = fmt.Sprintf("[%s] [SERVER ERROR]: %s", timestamp, payload.Message)

	default:
		output = fmt.Sprintf("[%s] [UNKNOWN]: %v", timestamp, msg)
	}

	// Redraw the prompt after printing over the current input line.
	fmt.Printf("\r%s\n> ", output)
}

func reparse(payload interface{}, result interface{}) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(payloadBytes, result)
}
