package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/testcase-service/internal/domain"
)

// RouteGuard runs before route dispatch on every page path. It redirects
// unauthenticated callers to the login page, keeps authenticated callers
// off the login/register pages, and soft-denies non-admins on admin
// paths. Auth failures never surface as errors here, only as redirects.
type RouteGuard struct {
	resolver *Resolver
	excluded []string
	public   []string
}

// NewRouteGuard builds the guard. Excluded prefixes (API routes, static
// assets, health probes) bypass the guard entirely.
func NewRouteGuard(resolver *Resolver, excludedPrefixes []string) *RouteGuard {
	return &RouteGuard{
		resolver: resolver,
		excluded: excludedPrefixes,
		public:   []string{"/login", "/register"},
	}
}

// Handle is the fiber middleware entry point.
func (g *RouteGuard) Handle(c *fiber.Ctx) error {
	path := c.Path()

	for _, prefix := range g.excluded {
		if strings.HasPrefix(path, prefix) {
			return c.Next()
		}
	}

	identity := g.resolver.Current(NewCookieStore(c))

	for _, prefix := range g.public {
		if strings.HasPrefix(path, prefix) {
			if identity != nil {
				return c.Redirect("/", fiber.StatusSeeOther)
			}
			return c.Next()
		}
	}

	if identity == nil {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	if strings.HasPrefix(path, "/admin") && identity.Role != domain.RoleAdmin {
		// Soft deny: back to the dashboard, not an error page.
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	SetIdentity(c, identity)
	return c.Next()
}
