package domain

// Event names exchanged over the realtime channel.
const (
	EventJoinWorkspace  = "joinWorkspace"
	EventLeaveWorkspace = "leaveWorkspace"
	EventSendMessage    = "sendMessage"
	EventNewMessage     = "newMessage"
	EventMessageError   = "messageError"
)

// WebSocketMessage is the standard envelope for client/server communication.
// 'joinWorkspace' and 'leaveWorkspace' carry a bare workspace id string as
// their payload; 'sendMessage' carries a SendMessagePayload.
type WebSocketMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// SendMessagePayload is the payload of a 'sendMessage' request.
type SendMessagePayload struct {
	WorkspaceID string `json:"workspaceId"`
	Content     string `json:"content"`
}

// ErrorPayload is the payload of a 'messageError' event, delivered only to
// the originating connection.
type ErrorPayload struct {
	Message string `json:"message"`
}
