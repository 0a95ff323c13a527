package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/testcase-service/internal/api/dto"
	"github.com/spec-kit/testcase-service/internal/service"
)

// CasesHandler exposes suite/case CRUD and the spreadsheet flows.
type CasesHandler struct {
	cases *service.CaseService
}

// NewCasesHandler constructs handler.
func NewCasesHandler(cases *service.CaseService) *CasesHandler {
	return &CasesHandler{cases: cases}
}

// ListByProject handles GET /projects/:projectID/cases.
func (h *CasesHandler) ListByProject(c *fiber.Ctx) error {
	suites, err := h.cases.ListSuitesWithCases(c.UserContext(), c.Params("projectID"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSuiteResponses(suites)})
}

// CreateSuite handles POST /suites.
func (h *CasesHandler) CreateSuite(c *fiber.Ctx) error {
	var req dto.CreateSuiteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	suite, err := h.cases.CreateSuite(c.UserContext(), req.ProjectID, req.Title, req.Description)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"id":         suite.ID,
			"project_id": suite.ProjectID,
			"title":      suite.Title,
		},
	})
}

// CreateCase handles POST /cases.
func (h *CasesHandler) CreateCase(c *fiber.Ctx) error {
	var req dto.CreateCaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	tc, err := h.cases.CreateCase(c.UserContext(), req.SuiteID, req.Title, req.Description, req.Priority, req.Steps)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCaseResponse(*tc)})
}

// Import handles POST /projects/:projectID/suites/:suiteID/cases/import
// with a multipart "file" field holding an xlsx workbook.
func (h *CasesHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "spreadsheet file required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "could not open upload")
	}
	defer file.Close() //nolint:errcheck

	count, err := h.cases.ImportCases(c.UserContext(), c.Params("projectID"), c.Params("suiteID"), file)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"imported": count}})
}

// Export handles GET /projects/:projectID/suites/:suiteID/cases/export.
func (h *CasesHandler) Export(c *fiber.Ctx) error {
	buf, err := h.cases.ExportCases(c.UserContext(), c.Params("suiteID"))
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("test-cases-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}
