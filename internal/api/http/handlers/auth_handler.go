package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/testcase-service/internal/api/dto"
	"github.com/spec-kit/testcase-service/internal/auth"
	"github.com/spec-kit/testcase-service/internal/service"
)

// AuthHandler exposes the register/login/logout flows.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /register. New accounts land on the login page;
// all but the very first stay pending until an admin activates them.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name, email, password required")
	}

	if _, err := h.auth.Register(c.UserContext(), req.Name, req.Email, req.Password); err != nil {
		return err
	}

	return c.Redirect("/login", fiber.StatusSeeOther)
}

// Login handles POST /login. On success the session cookie is written
// with the same expiry as the token and the caller is sent home.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	_, token, expiresAt, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	auth.NewCookieStore(c).Write(token, expiresAt)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Logout handles POST /logout by expiring the session cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	auth.NewCookieStore(c).Clear()
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// ChangePassword handles POST /account/password for the signed-in user.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return fiber.NewError(http.StatusBadRequest, "current and new password required")
	}

	if err := h.auth.ChangePassword(c.UserContext(), identity.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"updated": true}})
}
