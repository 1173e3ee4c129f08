package domain

// Principal is the authenticated identity extracted from a verified token.
// It is reconstructed on every connection handshake and HTTP request and is
// never persisted.
type Principal struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}
