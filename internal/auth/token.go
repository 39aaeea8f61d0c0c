package auth

import (
	"errors"
	"time"

	"github.com/aidosk/taskvault/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// TokenCodec issues and verifies the signed session token carried in the
// "token" cookie. The signing secret is injected once at construction;
// rotating it invalidates every outstanding token.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret []byte, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: secret, ttl: ttl}
}

// TTL is the validity window tokens are issued with.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue mints an HS256 JWT for the subject. Only the subject ID goes into
// the payload — no email, no password material.
func (c *TokenCodec) Issue(subjectID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subjectID,
		"iat": now.Unix(),
		"exp": now.Add(c.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify returns the subject ID of a valid token. Malformed, expired,
// tampered and wrongly-signed tokens all collapse into ErrTokenInvalid —
// the caller never learns which.
func (c *TokenCodec) Verify(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrTokenInvalid
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return subject, nil
}
