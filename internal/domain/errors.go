package domain

import "errors"

var (
	// ErrAuthentication covers missing, malformed, expired or otherwise
	// unverifiable tokens.
	ErrAuthentication = errors.New("authentication failed")

	// ErrTokenMissing is the handshake-specific case of a request that
	// carries no token at all.
	ErrTokenMissing = errors.New("auth token missing")

	// ErrNotMember means the principal is authenticated but holds no
	// membership in the target workspace.
	ErrNotMember = errors.New("not a member of this workspace")

	// ErrValidation covers malformed event payloads and request parameters.
	ErrValidation = errors.New("validation failed")
)
