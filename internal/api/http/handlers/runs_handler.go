package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/testcase-service/internal/api/dto"
	"github.com/spec-kit/testcase-service/internal/domain"
	"github.com/spec-kit/testcase-service/internal/service"
)

// RunsHandler exposes run creation, listing and result recording.
type RunsHandler struct {
	runs *service.RunService
}

// NewRunsHandler constructs handler.
func NewRunsHandler(runs *service.RunService) *RunsHandler {
	return &RunsHandler{runs: runs}
}

// ListByProject handles GET /projects/:projectID/runs.
func (h *RunsHandler) ListByProject(c *fiber.Ctx) error {
	summaries, err := h.runs.ListRuns(c.UserContext(), c.Params("projectID"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewRunResponses(summaries)})
}

// Get handles GET /runs/:runID.
func (h *RunsHandler) Get(c *fiber.Ctx) error {
	detail, err := h.runs.GetRun(c.UserContext(), c.Params("runID"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewRunDetailResponse(detail)})
}

// Create handles POST /runs.
func (h *RunsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRunRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	run, err := h.runs.CreateRun(c.UserContext(), req.ProjectID, req.Title)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"id":         run.ID,
			"project_id": run.ProjectID,
			"title":      run.Title,
		},
	})
}

// RecordResult handles POST /results/:resultID.
func (h *RunsHandler) RecordResult(c *fiber.Ctx) error {
	var req dto.RecordResultRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.runs.RecordResult(c.UserContext(), c.Params("resultID"), domain.ResultStatus(req.Status), req.Comment)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"id":      result.ID,
			"status":  result.Status,
			"comment": result.Comment,
		},
	})
}
