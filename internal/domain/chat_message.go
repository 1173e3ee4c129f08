package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageSender is the denormalized sender projection attached to every
// message record.
type MessageSender struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	ProfileImage string `bson:"profile_image" json:"profileImage"`
	Email        string `bson:"email" json:"email"`
}

// ChatMessage is a single workspace message, stored in MongoDB. Messages are
// immutable once created.
type ChatMessage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkspaceID string             `bson:"workspace_id" json:"workspaceId"`
	SenderID    string             `bson:"sender_id" json:"senderId"`
	Content     string             `bson:"content" json:"content"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	Sender      MessageSender      `bson:"sender" json:"sender"`
}
