package dto

import (
	"time"

	"github.com/spec-kit/testcase-service/internal/domain"
	"github.com/spec-kit/testcase-service/internal/service"
)

// CreateRunRequest payload.
type CreateRunRequest struct {
	ProjectID string `json:"projectId" form:"projectId"`
	Title     string `json:"title" form:"title"`
}

// RecordResultRequest payload.
type RecordResultRequest struct {
	Status  string `json:"status" form:"status"`
	Comment string `json:"comment" form:"comment"`
}

// RunResponse is a run with result tallies for listing pages.
type RunResponse struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	Title        string    `json:"title"`
	TotalResults int       `json:"total_results"`
	PassedCount  int       `json:"passed_count"`
	FailedCount  int       `json:"failed_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// ResultResponse is one result joined with its case.
type ResultResponse struct {
	ID      string       `json:"id"`
	Status  string       `json:"status"`
	Comment string       `json:"comment"`
	Case    CaseResponse `json:"case"`
}

// RunDetailResponse is the run execution view.
type RunDetailResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	ProjectID   string           `json:"project_id"`
	ProjectName string           `json:"project_name"`
	Results     []ResultResponse `json:"results"`
	CreatedAt   time.Time        `json:"created_at"`
}

// NewRunResponses maps run summaries.
func NewRunResponses(summaries []domain.RunSummary) []RunResponse {
	out := make([]RunResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, RunResponse{
			ID:           s.ID,
			ProjectID:    s.ProjectID,
			Title:        s.Title,
			TotalResults: s.TotalResults,
			PassedCount:  s.PassedCount,
			FailedCount:  s.FailedCount,
			CreatedAt:    s.CreatedAt,
		})
	}
	return out
}

// NewRunDetailResponse maps the run detail aggregate.
func NewRunDetailResponse(detail *service.RunDetail) RunDetailResponse {
	results := make([]ResultResponse, 0, len(detail.Results))
	for _, rc := range detail.Results {
		results = append(results, ResultResponse{
			ID:      rc.ID,
			Status:  string(rc.Status),
			Comment: rc.Comment,
			Case:    NewCaseResponse(rc.Case),
		})
	}
	return RunDetailResponse{
		ID:          detail.Run.ID,
		Title:       detail.Run.Title,
		ProjectID:   detail.Project.ID,
		ProjectName: detail.Project.Name,
		Results:     results,
		CreatedAt:   detail.Run.CreatedAt,
	}
}
