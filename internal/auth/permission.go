package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/testcase-service/internal/domain"
	apperrors "github.com/spec-kit/testcase-service/pkg/util"
)

// Check decides whether the identity may perform an operation gated on
// the given roles. ADMIN is always allowed, even when the set does not
// list it.
func Check(identity *domain.Identity, required ...domain.Role) error {
	if identity == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if identity.IsAdmin() {
		return nil
	}
	for _, role := range required {
		if identity.Role == role {
			return nil
		}
	}
	return apperrors.NewForbidden("insufficient permissions")
}

// RequireRoles gates a route on the permission check. Every
// state-mutating route uses this; reads are left ungated on purpose.
func RequireRoles(required ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, _ := IdentityFromContext(c)
		if err := Check(identity, required...); err != nil {
			return err
		}
		return c.Next()
	}
}
