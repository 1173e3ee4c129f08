package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/Ahsanulk27/collab-flow/internal/auth"
	"github.com/Ahsanulk27/collab-flow/internal/domain"
	"github.com/Ahsanulk27/collab-flow/internal/hub"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// All origins allowed; CORS policy is the reverse proxy's concern.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebsocketHandler gates WebSocket connection establishment. The token is
// verified before the upgrade, so an unauthenticated client is refused before
// any event flows.
type WebsocketHandler struct {
	hub      *hub.Hub
	verifier *auth.Verifier
}

// NewWebsocketHandler creates a new WebsocketHandler.
func NewWebsocketHandler(h *hub.Hub, verifier *auth.Verifier) *WebsocketHandler {
	return &WebsocketHandler{
		hub:      h,
		verifier: verifier,
	}
}

// HandleConnection handles GET /ws?token=...
func (h *WebsocketHandler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		// Browser clients pass the token as a query parameter; others may use
		// the Authorization header.
		token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	}

	principal, err := h.verifier.Verify(token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenMissing) {
			writeError(w, http.StatusUnauthorized, "Auth token missing")
			return
		}
		writeError(w, http.StatusUnauthorized, "Authentication error")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Upgrade error: %v", err)
		return
	}

	h.hub.ServeWs(conn, principal)
}
