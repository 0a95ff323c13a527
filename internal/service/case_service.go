package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/testcase-service/internal/domain"
	"github.com/spec-kit/testcase-service/internal/events"
	"github.com/spec-kit/testcase-service/internal/repository"
	apperrors "github.com/spec-kit/testcase-service/pkg/util"
)

// CaseService coordinates suite and test case workflows, including the
// spreadsheet import/export paths.
type CaseService struct {
	suites     repository.SuiteRepository
	cases      repository.TestCaseRepository
	dispatcher events.Dispatcher
}

// CaseDependencies bundles repositories for the case service.
type CaseDependencies struct {
	SuiteRepo    repository.SuiteRepository
	TestCaseRepo repository.TestCaseRepository
	Dispatcher   events.Dispatcher
}

// NewCaseService constructs the service.
func NewCaseService(deps CaseDependencies) *CaseService {
	return &CaseService{
		suites:     deps.SuiteRepo,
		cases:      deps.TestCaseRepo,
		dispatcher: deps.Dispatcher,
	}
}

// ListSuitesWithCases returns a project's suites, each with its cases.
func (s *CaseService) ListSuitesWithCases(ctx context.Context, projectID string) ([]domain.SuiteWithCases, error) {
	suites, err := s.suites.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.SuiteWithCases, 0, len(suites))
	for _, suite := range suites {
		cases, err := s.cases.ListBySuite(ctx, suite.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, domain.SuiteWithCases{TestSuite: suite, Cases: cases})
	}
	return result, nil
}

// CreateSuite creates a suite in a project.
func (s *CaseService) CreateSuite(ctx context.Context, projectID, title, description string) (*domain.TestSuite, error) {
	if strings.TrimSpace(title) == "" || projectID == "" {
		return nil, apperrors.NewValidationError("title and projectId are required", nil)
	}

	suite := &domain.TestSuite{
		ProjectID:   projectID,
		Title:       title,
		Description: description,
	}
	if err := s.suites.Create(ctx, suite); err != nil {
		return nil, err
	}
	return suite, nil
}

// CreateCase creates a single case in a suite. Steps defaults to an
// empty JSON array; unknown priorities fall back to Medium.
func (s *CaseService) CreateCase(ctx context.Context, suiteID, title, description, priority, steps string) (*domain.TestCase, error) {
	if strings.TrimSpace(title) == "" || suiteID == "" {
		return nil, apperrors.NewValidationError("title and suiteId are required", nil)
	}
	if steps == "" {
		steps = "[]"
	}

	tc := &domain.TestCase{
		SuiteID:     suiteID,
		Title:       title,
		Description: description,
		Priority:    domain.NormalizePriority(priority),
		Steps:       steps,
	}
	if err := s.cases.Create(ctx, tc); err != nil {
		return nil, err
	}
	return tc, nil
}

// ImportCases reads an xlsx upload and inserts every row as a case in
// the suite, all in one transaction. The suite must belong to the given
// project. Returns the number of imported cases.
func (s *CaseService) ImportCases(ctx context.Context, projectID, suiteID string, upload io.Reader) (int, error) {
	if projectID == "" || suiteID == "" {
		return 0, apperrors.NewValidationError("projectId and suiteId are required", nil)
	}

	suite, err := s.suites.GetByID(ctx, suiteID)
	if err != nil {
		return 0, err
	}
	if suite.ProjectID != projectID {
		return 0, apperrors.NewValidationError("suite does not belong to project", nil)
	}

	rows, err := ParseCaseSheet(upload)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, apperrors.NewValidationError("no rows to import", nil)
	}

	cases := make([]domain.TestCase, 0, len(rows))
	for _, row := range rows {
		title := strings.TrimSpace(row.Title)
		if title == "" {
			title = "Untitled Case"
		}
		steps := row.Steps
		if steps == "" {
			steps = "[]"
		}
		cases = append(cases, domain.TestCase{
			SuiteID:     suiteID,
			Title:       title,
			Description: row.Description,
			Priority:    domain.NormalizePriority(row.Priority),
			Steps:       steps,
		})
	}

	if err := s.cases.CreateBatch(ctx, cases); err != nil {
		return 0, err
	}

	s.publish(ctx, events.EventCasesImported, events.CasesImportedPayload{
		ProjectID: projectID,
		SuiteID:   suiteID,
		Count:     len(cases),
	})
	return len(cases), nil
}

// ExportCases renders a suite's cases as an xlsx workbook.
func (s *CaseService) ExportCases(ctx context.Context, suiteID string) (*bytes.Buffer, error) {
	cases, err := s.cases.ListBySuite(ctx, suiteID)
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return nil, apperrors.NewValidationError("no test cases to export", nil)
	}
	return WriteCaseSheet(cases)
}

func (s *CaseService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
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
