package service

import (
	"context"

	"github.com/Ahsanulk27/collab-flow/internal/domain"
)

// --- Service Interfaces ---

// IChatService defines the interface for chat-related business logic.
type IChatService interface {
	SendMessage(ctx context.Context, principal *domain.Principal, workspaceID, content string) (*domain.ChatMessage, error)
	History(ctx context.Context, principal *domain.Principal, workspaceID string, limit int64) ([]*domain.ChatMessage, error)
}

// --- Repository Interfaces ---

// IMembershipRepository defines the interface for workspace membership lookups.
type IMembershipRepository interface {
	IsMember(ctx context.Context, userID, workspaceID string) (bool, error)
}

// IUserRepository defines the interface for user profile reads.
type IUserRepository interface {
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}

// IMessageRepository defines the interface for message persistence.
type IMessageRepository interface {
	SaveMessage(ctx context.Context, message *domain.ChatMessage) error
	GetRecentMessages(ctx context.Context, workspaceID string, limit int64) ([]*domain.ChatMessage, error)
}
