package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is how long a session cookie stays valid when the
// service does not configure anything else.
const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionClaims are the claims carried by the session cookie. The token
// itself grants nothing: SID only names the server-side session slot, which
// is what actually binds a user.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Session slot id (ULID)
	SID string `json:"sid"`
}

// NewSessionClaims builds claims for the slot sid valid for ttl from now.
func NewSessionClaims(sid, issuer string, ttl time.Duration, now time.Time) SessionClaims {
	return SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		SID: sid,
	}
}
