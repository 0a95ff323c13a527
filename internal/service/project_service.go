package service

import (
	"context"
	"strings"

	"github.com/spec-kit/testcase-service/internal/domain"
	"github.com/spec-kit/testcase-service/internal/repository"
	apperrors "github.com/spec-kit/testcase-service/pkg/util"
)

// ProjectService coordinates project workflows.
type ProjectService struct {
	projects repository.ProjectRepository
}

// NewProjectService constructs the service.
func NewProjectService(projects repository.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

// ListProjects returns all projects with suite and run counts.
func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.ProjectSummary, error) {
	return s.projects.ListSummaries(ctx)
}

// CreateProject creates a project. Name is required.
func (s *ProjectService) CreateProject(ctx context.Context, name, description string) (*domain.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("project name is required", nil)
	}

	project := &domain.Project{
		Name:        name,
		Description: description,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// GetProject fetches a single project.
func (s *ProjectService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}
