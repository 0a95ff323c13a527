package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/testcase-service/internal/domain"
	"github.com/spec-kit/testcase-service/internal/events"
	"github.com/spec-kit/testcase-service/internal/repository"
	apperrors "github.com/spec-kit/testcase-service/pkg/util"
)

// RunService coordinates test run workflows.
type RunService struct {
	runs       repository.RunRepository
	cases      repository.TestCaseRepository
	projects   repository.ProjectRepository
	dispatcher events.Dispatcher
}

// RunDependencies bundles repositories for the run service.
type RunDependencies struct {
	RunRepo      repository.RunRepository
	TestCaseRepo repository.TestCaseRepository
	ProjectRepo  repository.ProjectRepository
	Dispatcher   events.Dispatcher
}

// NewRunService constructs the service.
func NewRunService(deps RunDependencies) *RunService {
	return &RunService{
		runs:       deps.RunRepo,
		cases:      deps.TestCaseRepo,
		projects:   deps.ProjectRepo,
		dispatcher: deps.Dispatcher,
	}
}

// RunDetail is a run with its project and joined results.
type RunDetail struct {
	Run     domain.TestRun
	Project domain.Project
	Results []domain.ResultWithCase
}

// CreateRun snapshots every case in the project into a new run with
// Pending results, atomically. A project without cases cannot be run.
func (s *RunService) CreateRun(ctx context.Context, projectID, title string) (*domain.TestRun, error) {
	if strings.TrimSpace(title) == "" || projectID == "" {
		return nil, apperrors.NewValidationError("title and projectId are required", nil)
	}

	cases, err := s.cases.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return nil, apperrors.NewValidationError("no test cases found to run", nil)
	}

	caseIDs := make([]string, 0, len(cases))
	for _, tc := range cases {
		caseIDs = append(caseIDs, tc.ID)
	}

	run := &domain.TestRun{ProjectID: projectID, Title: title}
	if err := s.runs.CreateWithResults(ctx, run, caseIDs); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventRunCreated, events.RunCreatedPayload{
		RunID:     run.ID,
		ProjectID: projectID,
		Title:     title,
		CaseCount: len(caseIDs),
	})
	return run, nil
}

// ListRuns returns a project's runs with result tallies.
func (s *RunService) ListRuns(ctx context.Context, projectID string) ([]domain.RunSummary, error) {
	return s.runs.ListSummariesByProject(ctx, projectID)
}

// GetRun returns the run, its project and its results joined with their
// cases, ordered by case title.
func (s *RunService) GetRun(ctx context.Context, runID string) (*RunDetail, error) {
	run, err := s.runs.GetByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.GetByID(ctx, run.ProjectID)
	if err != nil {
		return nil, err
	}
	results, err := s.runs.ListResults(ctx, runID)
	if err != nil {
		return nil, err
	}
	return &RunDetail{Run: *run, Project: *project, Results: results}, nil
}

// RecordResult sets the outcome of a single result. Only the terminal
// statuses can be recorded; Pending is seed state only.
func (s *RunService) RecordResult(ctx context.Context, resultID string, status domain.ResultStatus, comment string) (*domain.TestResult, error) {
	if !domain.ValidResultStatus(status) {
		return nil, apperrors.NewValidationError("unknown result status", map[string]any{"status": status})
	}

	result, err := s.runs.GetResultByID(ctx, resultID)
	if err != nil {
		return nil, err
	}
	result.Status = status
	result.Comment = comment
	if err := s.runs.UpdateResult(ctx, result); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventResultRecorded, events.ResultRecordedPayload{
		ResultID: result.ID,
		RunID:    result.RunID,
		Status:   status,
	})
	return result, nil
}

func (s *RunService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
