package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Ahsanulk27/collab-flow/internal/domain"
	"github.com/Ahsanulk27/collab-flow/internal/service"
)

// ChatHandler serves the synchronous chat endpoints.
type ChatHandler struct {
	chatService service.IChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.IChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// GetWorkspaceMessages handles GET /workspaces/{workspaceId}/messages?limit=n.
// It bootstraps a client's view of a workspace before live events arrive:
// the most recent messages, oldest first, each with its sender projection.
func (h *ChatHandler) GetWorkspaceMessages(w http.ResponseWriter, r *http.Request) {
	principal := PrincipalFrom(r.Context())
	if principal == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	workspaceID := mux.Vars(r)["workspaceId"]
	if workspaceID == "" {
		writeError(w, http.StatusBadRequest, "Workspace ID is required")
		return
	}

	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	messages, err := h.chatService.History(r.Context(), principal, workspaceID, limit)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotMember):
			writeError(w, http.StatusForbidden, "You are not a member of this workspace")
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("history fetch failed (workspace: %s): %v", workspaceID, err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch messages")
		}
		return
	}

	if messages == nil {
		messages = []*domain.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, messagesResponse{
		Success:  true,
		Message:  "Messages fetched successfully",
		Messages: messages,
	})
}
