package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/testcase-service/internal/domain"
)

// SessionCookieName is the cookie slot holding the session token.
const SessionCookieName = "session"

// SessionStore abstracts the client-held storage slot for the session
// token. The production implementation is a cookie on the request.
type SessionStore interface {
	Read() string
	Write(token string, expires time.Time)
	Clear()
}

// CookieStore reads and writes the session cookie on a fiber request.
type CookieStore struct {
	Ctx *fiber.Ctx
}

// NewCookieStore wraps the request context.
func NewCookieStore(c *fiber.Ctx) CookieStore {
	return CookieStore{Ctx: c}
}

func (s CookieStore) Read() string {
	return s.Ctx.Cookies(SessionCookieName)
}

// Write sets the session cookie. The cookie expiry must match the token
// expiry; a cookie outliving its token is harmless, the reverse is a
// silent logout.
func (s CookieStore) Write(token string, expires time.Time) {
	s.Ctx.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		Path:     "/",
	})
}

// Clear overwrites the cookie with an already-expired empty value so the
// browser discards it immediately.
func (s CookieStore) Clear() {
	s.Ctx.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Path:     "/",
	})
}

// Resolver turns a stored token into a verified identity.
type Resolver struct {
	codec *TokenCodec
}

// NewResolver builds a resolver over the codec.
func NewResolver(codec *TokenCodec) *Resolver {
	return &Resolver{codec: codec}
}

// Current returns the verified identity for the stored token, or nil when
// no token is present or verification fails.
func (r *Resolver) Current(store SessionStore) *domain.Identity {
	token := store.Read()
	if token == "" {
		return nil
	}
	return r.codec.Verify(token)
}

const identityKey = "auth_identity"

// SetIdentity stashes the verified identity in request locals.
func SetIdentity(c *fiber.Ctx, identity *domain.Identity) {
	c.Locals(identityKey, identity)
}

// IdentityFromContext retrieves the identity stashed by the route guard.
func IdentityFromContext(c *fiber.Ctx) (*domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*domain.Identity)
	if !ok || identity == nil {
		return nil, false
	}
	return identity, true
}
