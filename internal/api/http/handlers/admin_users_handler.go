package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/testcase-service/internal/api/dto"
	"github.com/spec-kit/testcase-service/internal/domain"
	"github.com/spec-kit/testcase-service/internal/service"
)

// AdminUsersHandler exposes user administration. Routes live under
// /admin, so the route guard has already confirmed an ADMIN session; the
// permission gate on the mutating routes is the second line.
type AdminUsersHandler struct {
	users *service.UserService
}

// NewAdminUsersHandler constructs handler.
func NewAdminUsersHandler(users *service.UserService) *AdminUsersHandler {
	return &AdminUsersHandler{users: users}
}

// List handles GET /admin/users.
func (h *AdminUsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponses(users)})
}

// UpdateStatus handles POST /admin/users/:userID/status.
func (h *AdminUsersHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.UpdateStatus(c.UserContext(), c.Params("userID"), domain.UserStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(*user)})
}

// UpdateRole handles POST /admin/users/:userID/role.
func (h *AdminUsersHandler) UpdateRole(c *fiber.Ctx) error {
	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.UpdateRole(c.UserContext(), c.Params("userID"), domain.Role(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(*user)})
}

// ResetPassword handles POST /admin/users/:userID/password-reset.
func (h *AdminUsersHandler) ResetPassword(c *fiber.Ctx) error {
	if err := h.users.ResetPassword(c.UserContext(), c.Params("userID")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"reset": true}})
}
