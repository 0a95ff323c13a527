package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/testcase-service/internal/api/dto"
	"github.com/spec-kit/testcase-service/internal/service"
)

// ProjectsHandler exposes project listing and creation.
type ProjectsHandler struct {
	projects *service.ProjectService
}

// NewProjectsHandler constructs handler.
func NewProjectsHandler(projects *service.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{projects: projects}
}

// List handles GET /projects. Reads are not role-gated.
func (h *ProjectsHandler) List(c *fiber.Ctx) error {
	summaries, err := h.projects.ListProjects(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProjectResponses(summaries)})
}

// Create handles POST /projects.
func (h *ProjectsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	project, err := h.projects.CreateProject(c.UserContext(), req.Name, req.Description)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"id":          project.ID,
			"name":        project.Name,
			"description": project.Description,
		},
	})
}
