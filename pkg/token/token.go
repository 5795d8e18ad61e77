// Package token signs and verifies the self-contained session credential.
// The signing secret is injected at construction; there is no ambient state
// and no server-side token storage.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, elapsed expiry. Callers are not told which one so the
// rejection cannot be used as an oracle.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the identity carried inside a verified token.
type Claims struct {
	UserID string
	Email  string
}

type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the lifetime tokens are issued with. The auth cookie
// MaxAge must match it.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue mints a signed token for the given identity with an absolute expiry.
func (c *Codec) Issue(userID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"iat":     now.Unix(),
		"exp":     now.Add(c.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify parses and validates a token string. Expiry is enforced by the
// jwt library against the embedded exp claim.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := mapClaims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidToken
	}
	email, _ := mapClaims["email"].(string)

	return &Claims{UserID: userID, Email: email}, nil
}
