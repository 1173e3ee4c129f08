package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Ahsanulk27/collab-flow/internal/domain"
)

// messagesResponse is the success envelope of the history endpoint.
type messagesResponse struct {
	Success  bool                  `json:"success"`
	Message  string                `json:"message"`
	Messages []*domain.ChatMessage `json:"messages"`
}

// errorResponse is the envelope of every failed request.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Message: message})
}
