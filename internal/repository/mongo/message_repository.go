package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ahsanulk27/collab-flow/internal/domain"
)

const messageCollection = "messages"

// MessageRepository handles database operations for chat messages.
type MessageRepository struct {
	DB *mongo.Database
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{DB: db}
}

// SaveMessage inserts a new chat message and sets the generated ID back on
// the message. The write is all-or-nothing: no message exists without sender,
// content and workspace set.
func (r *MessageRepository) SaveMessage(ctx context.Context, message *domain.ChatMessage) error {
	collection := r.DB.Collection(messageCollection)
	res, err := collection.InsertOne(ctx, message)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		message.ID = oid
	}
	return nil
}

// GetRecentMessages retrieves the most recent N messages for a workspace in
// chronological order. The query sorts newest-first to apply the limit, then
// the result is reversed so callers see oldest-first.
func (r *MessageRepository) GetRecentMessages(ctx context.Context, workspaceID string, limit int64) ([]*domain.ChatMessage, error) {
	collection := r.DB.Collection(messageCollection)

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := collection.Find(ctx, bson.M{"workspace_id": workspaceID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []*domain.ChatMessage
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}
