package dto

import (
	"time"

	"github.com/spec-kit/testcase-service/internal/domain"
)

// CreateSuiteRequest payload.
type CreateSuiteRequest struct {
	ProjectID   string `json:"projectId" form:"projectId"`
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}

// CreateCaseRequest payload.
type CreateCaseRequest struct {
	SuiteID     string `json:"suiteId" form:"suiteId"`
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Priority    string `json:"priority" form:"priority"`
	Steps       string `json:"steps" form:"steps"`
}

// CaseResponse is a single test case.
type CaseResponse struct {
	ID          string    `json:"id"`
	SuiteID     string    `json:"suite_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Steps       string    `json:"steps"`
	CreatedAt   time.Time `json:"created_at"`
}

// SuiteResponse is a suite with its cases.
type SuiteResponse struct {
	ID          string         `json:"id"`
	ProjectID   string         `json:"project_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Cases       []CaseResponse `json:"cases"`
	CreatedAt   time.Time      `json:"created_at"`
}

// NewCaseResponse maps the domain model.
func NewCaseResponse(tc domain.TestCase) CaseResponse {
	return CaseResponse{
		ID:          tc.ID,
		SuiteID:     tc.SuiteID,
		Title:       tc.Title,
		Description: tc.Description,
		Priority:    string(tc.Priority),
		Steps:       tc.Steps,
		CreatedAt:   tc.CreatedAt,
	}
}

// NewSuiteResponses maps suites with cases.
func NewSuiteResponses(suites []domain.SuiteWithCases) []SuiteResponse {
	out := make([]SuiteResponse, 0, len(suites))
	for _, suite := range suites {
		cases := make([]CaseResponse, 0, len(suite.Cases))
		for _, tc := range suite.Cases {
			cases = append(cases, NewCaseResponse(tc))
		}
		out = append(out, SuiteResponse{
			ID:          suite.ID,
			ProjectID:   suite.ProjectID,
			Title:       suite.Title,
			Description: suite.Description,
			Cases:       cases,
			CreatedAt:   suite.CreatedAt,
		})
	}
	return out
}
