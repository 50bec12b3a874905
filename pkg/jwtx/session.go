package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrMissingSID  = errors.New("jwtx: missing sid claim")
	ErrEmptySecret = errors.New("jwtx: empty signing secret")
)

// SessionSigner signs and verifies HS256 session tokens.
type SessionSigner struct {
	key    []byte
	issuer string
	ttl    time.Duration
	leeway time.Duration
}

func NewSessionSigner(secret, issuer string, ttl time.Duration) (*SessionSigner, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionSigner{
		key:    []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		leeway: 30 * time.Second,
	}, nil
}

// TTL is the lifetime given to freshly signed tokens.
func (s *SessionSigner) TTL() time.Duration { return s.ttl }

// Sign issues a token for the session slot sid.
func (s *SessionSigner) Sign(sid string, now time.Time) (string, error) {
	if sid == "" {
		return "", ErrMissingSID
	}
	claims := NewSessionClaims(sid, s.issuer, s.ttl, now)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return token, nil
}

// Verify checks signature, issuer and expiry and returns the claims.
func (s *SessionSigner) Verify(raw string) (SessionClaims, error) {
	var claims SessionClaims

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.leeway),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}, opts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return SessionClaims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenInvalidIssuer):
			return SessionClaims{}, ErrIssuer
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return SessionClaims{}, ErrInvalidSig
		default:
			return SessionClaims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}

	if claims.SID == "" {
		return SessionClaims{}, ErrMissingSID
	}
	return claims, nil
}
