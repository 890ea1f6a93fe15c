package auth

import (
	"time"
)

// SessionClaims represents the claims carried by a session token.
// Tokens are self-contained: nothing is stored server-side, and a token
// stays valid until its expiry passes.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`

	// Standard PASETO claims
	Issuer     string    `json:"iss"`
	Subject    string    `json:"sub"`
	Audience   string    `json:"aud"`
	Expiration time.Time `json:"exp"`
	NotBefore  time.Time `json:"nbf"`
	IssuedAt   time.Time `json:"iat"`
	TokenID    string    `json:"jti"`
}
