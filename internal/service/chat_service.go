package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Ahsanulk27/collab-flow/internal/domain"
)

// DefaultHistoryLimit is the number of messages returned when no limit, or an
// invalid one, is requested.
const DefaultHistoryLimit = 50

// ChatService provides workspace chat services.
type ChatService struct {
	membershipRepo IMembershipRepository
	userRepo       IUserRepository
	messageRepo    IMessageRepository
}

// NewChatService creates a new ChatService.
func NewChatService(membershipRepo IMembershipRepository, userRepo IUserRepository, messageRepo IMessageRepository) *ChatService {
	return &ChatService{
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		messageRepo:    messageRepo,
	}
}

// SendMessage persists a new message for a workspace the principal is a
// member of and returns the stored record. The membership check and the write
// are not atomic with respect to concurrent membership changes; that race is
// accepted.
func (s *ChatService) SendMessage(ctx context.Context, principal *domain.Principal, workspaceID, content string) (*domain.ChatMessage, error) {
	if principal == nil {
		return nil, domain.ErrAuthentication
	}
	if strings.TrimSpace(workspaceID) == "" {
		return nil, fmt.Errorf("%w: workspaceId is required", domain.ErrValidation)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}

	isMember, err := s.membershipRepo.IsMember(ctx, principal.UserID, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("membership check failed: %w", err)
	}
	if !isMember {
		return nil, domain.ErrNotMember
	}

	message := &domain.ChatMessage{
		WorkspaceID: workspaceID,
		SenderID:    principal.UserID,
		Content:     content,
		CreatedAt:   time.Now().UTC(),
		Sender:      s.senderProjection(ctx, principal),
	}

	if err := s.messageRepo.SaveMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	return message, nil
}

// History returns the most recent messages for a workspace in chronological
// order. Requires the principal to be a member of the workspace.
func (s *ChatService) History(ctx context.Context, principal *domain.Principal, workspaceID string, limit int64) ([]*domain.ChatMessage, error) {
	if principal == nil {
		return nil, domain.ErrAuthentication
	}
	if strings.TrimSpace(workspaceID) == "" {
		return nil, fmt.Errorf("%w: workspaceId is required", domain.ErrValidation)
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	isMember, err := s.membershipRepo.IsMember(ctx, principal.UserID, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("membership check failed: %w", err)
	}
	if !isMember {
		return nil, domain.ErrNotMember
	}

	return s.messageRepo.GetRecentMessages(ctx, workspaceID, limit)
}

// senderProjection loads the denormalized sender fields embedded in a stored
// message. Falls back to the principal's own claims when the profile row is
// missing.
func (s *ChatService) senderProjection(ctx context.Context, principal *domain.Principal) domain.MessageSender {
	user, err := s.userRepo.GetUserByID(ctx, principal.UserID)
	if err != nil || user == nil {
		return domain.MessageSender{ID: principal.UserID, Email: principal.Email}
	}
	return user.SenderProjection()
}
