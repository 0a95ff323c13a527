package auth

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/testcase-service/internal/domain"
)

// TokenCodec issues and verifies signed session tokens. The secret is
// injected at construction; nothing in this package reads the environment.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec builds a codec with the given signing secret and token
// lifetime.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Claims describes the session token payload. The identity is a snapshot
// taken at login and trusted until expiry.
type Claims struct {
	User domain.Identity `json:"user"`
	jwt.RegisteredClaims
}

// TTL returns the configured token lifetime.
func (tc *TokenCodec) TTL() time.Duration {
	return tc.ttl
}

// Issue signs a token embedding the identity with the configured expiry.
func (tc *TokenCodec) Issue(identity domain.Identity) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tc.ttl)
	claims := &Claims{
		User: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tc.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify decodes and validates a token. It returns nil on any failure:
// malformed input, bad signature, unexpected signing method, expiry, or a
// payload missing identity fields. Callers cannot distinguish forgery
// from expiry.
func (tc *TokenCodec) Verify(tokenStr string) *domain.Identity {
	if tokenStr == "" {
		return nil
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tc.secret, nil
	})
	if err != nil {
		return nil
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil
	}
	if !claims.User.Complete() || !domain.ValidRole(claims.User.Role) {
		return nil
	}

	identity := claims.User
	return &identity
}
