// Package auth provides session token and password primitives plus the
// request middleware that guards protected routes.
//
// SESSION MODEL:
// Login issues a JWT (JSON Web Token) — a signed, self-contained claim of
// identity. The server stores nothing: every protected request presents the
// token in the Authorization header and the server re-verifies the signature
// and expiry on each call. There is no refresh and no server-side revocation;
// after the 1-hour lifetime elapses the client must log in again.
//
// JWT STRUCTURE (three base64-encoded parts separated by dots):
//
//	HEADER.PAYLOAD.SIGNATURE
//	- Header: algorithm + token type → {"alg":"HS256","typ":"JWT"}
//	- Payload: claims → {"sub":"userID","fullname":"...","exp":1234567890}
//	- Signature: HMAC-SHA256(header+"."+payload, secretKey)
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is how long an issued session token stays valid.
// A token issued at T verifies at T+59m and fails at T+61m.
const TokenLifetime = time.Hour

// Identity is the verified payload of a session token: who the caller is.
// It carries only what the token carries — no profile lookup happens during
// verification.
type Identity struct {
	UserID   string
	Fullname string
}

// TokenService signs and verifies session tokens.
//
// It holds the HMAC secret used for both operations. The same secret must
// sign and verify — it is process-wide configuration loaded once at startup
// (see internal/config).
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService with the given secret.
// The secret should be at least 32 bytes of random data in production.
// Example: JWT_SECRET=$(openssl rand -hex 32)
func NewTokenService(secret string) (*TokenService, error) {
	if len(secret) < 16 {
		return nil, errors.New("auth: JWT secret must be at least 16 characters")
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// claims is the JWT payload. It embeds jwt.RegisteredClaims (Subject,
// IssuedAt, ExpiresAt) and adds the user's display name so the client can
// show it without a profile round-trip.
type claims struct {
	Fullname string `json:"fullname"`
	jwt.RegisteredClaims
}

// Issue creates and signs a session token for the given user.
//
// Signing algorithm: HS256 (HMAC-SHA256) — symmetric, same key signs and
// verifies. Fine for a single-process deployment like this one.
func (s *TokenService) Issue(userID, fullname string) (string, error) {
	return s.IssueWithLifetime(userID, fullname, TokenLifetime)
}

// IssueWithLifetime creates a token with a custom expiry duration.
// Exported for tests that need to exercise the expiry boundary.
func (s *TokenService) IssueWithLifetime(userID, fullname string, d time.Duration) (string, error) {
	now := time.Now()

	c := claims{
		Fullname: fullname,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(d)),
			Issuer:    "nusantara-stories",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token string and returns the identity it
// encodes. Any failure — malformed token, wrong signature, elapsed expiry —
// comes back as an error; callers treat all of them as "invalid credential".
//
// Passing jwt.WithValidMethods pins the algorithm to HS256 so a forged
// token can't downgrade to "none" (the classic algorithm-confusion attack).
func (s *TokenService) Verify(tokenStr string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer("nusantara-stories"),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("auth: token expired")
		}
		return nil, fmt.Errorf("auth: invalid token: %w", err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("auth: invalid token claims")
	}

	if c.Subject == "" {
		return nil, fmt.Errorf("auth: token has no subject")
	}

	return &Identity{UserID: c.Subject, Fullname: c.Fullname}, nil
}
