package postgres

import (
	"context"
	"database/sql"
)

// MembershipRepository handles database operations for workspace membership.
type MembershipRepository struct {
	DB *sql.DB
}

// NewMembershipRepository creates a new MembershipRepository.
func NewMembershipRepository(db *sql.DB) *MembershipRepository {
	return &MembershipRepository{DB: db}
}

// IsMember checks if a user is a member of a specific workspace. Existence of
// the membership row is the sole authorization predicate for chat operations,
// checked per operation rather than cached.
func (r *MembershipRepository) IsMember(ctx context.Context, userID, workspaceID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM workspace_members WHERE user_id = $1 AND workspace_id = $2)`
	err := r.DB.QueryRowContext(ctx, query, userID, workspaceID).Scan(&exists)
	return exists, err
}
