package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Ahsanulk27/collab-flow/internal/domain"
)

// Verifier validates bearer tokens issued by the credential subsystem. The
// WebSocket handshake and the HTTP middleware share one Verifier so both
// surfaces agree on validity.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier for the shared signing secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates a token and extracts the principal. All
// failure modes (malformed token, bad signature, expiry, missing claims)
// map to domain.ErrAuthentication.
func (v *Verifier) Verify(token string) (*domain.Principal, error) {
	if token == "" {
		return nil, domain.ErrTokenMissing
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthentication, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected claims type", domain.ErrAuthentication)
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return nil, fmt.Errorf("%w: token has no userId claim", domain.ErrAuthentication)
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, fmt.Errorf("%w: token has no email claim", domain.ErrAuthentication)
	}

	return &domain.Principal{UserID: userID, Email: email}, nil
}
