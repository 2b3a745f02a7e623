package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// Claims is the verified payload of an issued token.
type Claims struct {
	UserID int64    `json:"uid"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies HMAC-signed identity tokens. A token is
// valid purely as a function of its signature and expiry; there is no
// revocation list.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec fails when the signing secret is empty. Callers should
// treat that as fatal at startup, not per request.
func NewTokenCodec(secret string, ttl time.Duration) (*TokenCodec, error) {
	if secret == "" {
		return nil, errors.New("token codec: signing secret is not configured")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for the user with subject=email and the user's role.
func (c *TokenCodec) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Roles:  []string{user.Role},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify parses and validates a raw token. Malformed payloads, signature
// mismatches and expired tokens all come back as domain.ErrInvalidToken,
// distinguished only by the wrapped message.
func (c *TokenCodec) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !tok.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
