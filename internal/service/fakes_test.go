package service_test

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/testcase-service/internal/domain"
)

// In-memory repository fakes for service tests.

type fakeUserRepo struct {
	seq   int
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *user
	stored.UpdatedAt = time.Now()
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeProjectRepo struct {
	seq      int
	projects map[string]*domain.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[string]*domain.Project{}}
}

func (r *fakeProjectRepo) Create(_ context.Context, project *domain.Project) error {
	r.seq++
	project.ID = fmt.Sprintf("project-%d", r.seq)
	project.CreatedAt = time.Now()
	project.UpdatedAt = project.CreatedAt
	stored := *project
	r.projects[project.ID] = &stored
	return nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id string) (*domain.Project, error) {
	project, ok := r.projects[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *project
	return &copied, nil
}

func (r *fakeProjectRepo) ListSummaries(_ context.Context) ([]domain.ProjectSummary, error) {
	out := make([]domain.ProjectSummary, 0, len(r.projects))
	for _, project := range r.projects {
		out = append(out, domain.ProjectSummary{Project: *project})
	}
	return out, nil
}

type fakeSuiteRepo struct {
	seq    int
	suites map[string]*domain.TestSuite
}

func newFakeSuiteRepo() *fakeSuiteRepo {
	return &fakeSuiteRepo{suites: map[string]*domain.TestSuite{}}
}

func (r *fakeSuiteRepo) Create(_ context.Context, suite *domain.TestSuite) error {
	r.seq++
	suite.ID = fmt.Sprintf("suite-%d", r.seq)
	suite.CreatedAt = time.Now()
	suite.UpdatedAt = suite.CreatedAt
	stored := *suite
	r.suites[suite.ID] = &stored
	return nil
}

func (r *fakeSuiteRepo) GetByID(_ context.Context, id string) (*domain.TestSuite, error) {
	suite, ok := r.suites[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *suite
	return &copied, nil
}

func (r *fakeSuiteRepo) ListByProject(_ context.Context, projectID string) ([]domain.TestSuite, error) {
	var out []domain.TestSuite
	for _, suite := range r.suites {
		if suite.ProjectID == projectID {
			out = append(out, *suite)
		}
	}
	return out, nil
}

type fakeCaseRepo struct {
	seq   int
	cases []domain.TestCase
	// suiteProjects lets ListByProject resolve suite membership.
	suiteProjects map[string]string
	failBatch     bool
}

func newFakeCaseRepo() *fakeCaseRepo {
	return &fakeCaseRepo{suiteProjects: map[string]string{}}
}

func (r *fakeCaseRepo) add(tc *domain.TestCase) {
	r.seq++
	tc.ID = fmt.Sprintf("case-%d", r.seq)
	tc.CreatedAt = time.Now()
	tc.UpdatedAt = tc.CreatedAt
	r.cases = append(r.cases, *tc)
}

func (r *fakeCaseRepo) Create(_ context.Context, tc *domain.TestCase) error {
	r.add(tc)
	return nil
}

func (r *fakeCaseRepo) CreateBatch(_ context.Context, cases []domain.TestCase) error {
	if r.failBatch {
		return fmt.Errorf("batch insert failed")
	}
	for i := range cases {
		r.add(&cases[i])
	}
	return nil
}

func (r *fakeCaseRepo) GetByID(_ context.Context, id string) (*domain.TestCase, error) {
	for _, tc := range r.cases {
		if tc.ID == id {
			copied := tc
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeCaseRepo) ListBySuite(_ context.Context, suiteID string) ([]domain.TestCase, error) {
	var out []domain.TestCase
	for _, tc := range r.cases {
		if tc.SuiteID == suiteID {
			out = append(out, tc)
		}
	}
	return out, nil
}

func (r *fakeCaseRepo) ListByProject(_ context.Context, projectID string) ([]domain.TestCase, error) {
	var out []domain.TestCase
	for _, tc := range r.cases {
		if r.suiteProjects[tc.SuiteID] == projectID {
			out = append(out, tc)
		}
	}
	return out, nil
}

type fakeRunRepo struct {
	seq     int
	runs    map[string]*domain.TestRun
	results map[string]*domain.TestResult
	cases   *fakeCaseRepo
}

func newFakeRunRepo(cases *fakeCaseRepo) *fakeRunRepo {
	return &fakeRunRepo{
		runs:    map[string]*domain.TestRun{},
		results: map[string]*domain.TestResult{},
		cases:   cases,
	}
}

func (r *fakeRunRepo) CreateWithResults(_ context.Context, run *domain.TestRun, caseIDs []string) error {
	r.seq++
	run.ID = fmt.Sprintf("run-%d", r.seq)
	run.CreatedAt = time.Now()
	run.UpdatedAt = run.CreatedAt
	stored := *run
	r.runs[run.ID] = &stored

	for _, caseID := range caseIDs {
		r.seq++
		id := fmt.Sprintf("result-%d", r.seq)
		r.results[id] = &domain.TestResult{
			ID:         id,
			RunID:      run.ID,
			TestCaseID: caseID,
			Status:     domain.ResultStatusPending,
		}
	}
	return nil
}

func (r *fakeRunRepo) GetByID(_ context.Context, id string) (*domain.TestRun, error) {
	run, ok := r.runs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *run
	return &copied, nil
}

func (r *fakeRunRepo) ListSummariesByProject(_ context.Context, projectID string) ([]domain.RunSummary, error) {
	var out []domain.RunSummary
	for _, run := range r.runs {
		if run.ProjectID != projectID {
			continue
		}
		summary := domain.RunSummary{TestRun: *run}
		for _, result := range r.results {
			if result.RunID != run.ID {
				continue
			}
			summary.TotalResults++
			switch result.Status {
			case domain.ResultStatusPassed:
				summary.PassedCount++
			case domain.ResultStatusFailed:
				summary.FailedCount++
			}
		}
		out = append(out, summary)
	}
	return out, nil
}

func (r *fakeRunRepo) ListResults(_ context.Context, runID string) ([]domain.ResultWithCase, error) {
	var out []domain.ResultWithCase
	for _, result := range r.results {
		if result.RunID != runID {
			continue
		}
		rc := domain.ResultWithCase{TestResult: *result}
		if tc, err := r.cases.GetByID(context.Background(), result.TestCaseID); err == nil {
			rc.Case = *tc
		}
		out = append(out, rc)
	}
	return out, nil
}

func (r *fakeRunRepo) GetResultByID(_ context.Context, id string) (*domain.TestResult, error) {
	result, ok := r.results[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *result
	return &copied, nil
}

func (r *fakeRunRepo) UpdateResult(_ context.Context, result *domain.TestResult) error {
	if _, ok := r.results[result.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *result
	r.results[result.ID] = &stored
	return nil
}
