package dto

import (
	"time"

	"github.com/spec-kit/testcase-service/internal/domain"
)

// CreateProjectRequest payload.
type CreateProjectRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

// ProjectResponse is a project with aggregate counts.
type ProjectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	SuiteCount  int       `json:"suite_count"`
	RunCount    int       `json:"run_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewProjectResponses maps project summaries.
func NewProjectResponses(summaries []domain.ProjectSummary) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, ProjectResponse{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			SuiteCount:  s.SuiteCount,
			RunCount:    s.RunCount,
			CreatedAt:   s.CreatedAt,
		})
	}
	return out
}
