package domain

import "time"

// User is the profile record backing the sender projection. Accounts are
// created by the credential subsystem; this core only reads them.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ProfileImage string    `json:"profileImage"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SenderProjection returns the denormalized projection embedded in messages.
func (u *User) SenderProjection() MessageSender {
	return MessageSender{
		ID:           u.ID,
		Name:         u.Name,
		ProfileImage: u.ProfileImage,
		Email:        u.Email,
	}
}
