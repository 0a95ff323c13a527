package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/testcase-service/internal/domain"
)

// RunRepository encapsulates test run and result persistence.
type RunRepository interface {
	// CreateWithResults inserts the run and one Pending result per case
	// in a single transaction.
	CreateWithResults(ctx context.Context, run *domain.TestRun, caseIDs []string) error
	GetByID(ctx context.Context, id string) (*domain.TestRun, error)
	ListSummariesByProject(ctx context.Context, projectID string) ([]domain.RunSummary, error)
	ListResults(ctx context.Context, runID string) ([]domain.ResultWithCase, error)
	GetResultByID(ctx context.Context, id string) (*domain.TestResult, error)
	UpdateResult(ctx context.Context, result *domain.TestResult) error
}

type runRepository struct {
	pool *pgxpool.Pool
}

// NewRunRepository instantiates repository.
func NewRunRepository(pool *pgxpool.Pool) RunRepository {
	return &runRepository{pool: pool}
}

func (r *runRepository) CreateWithResults(ctx context.Context, run *domain.TestRun, caseIDs []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const runQuery = `
        INSERT INTO test_runs (project_id, title)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`
	if err := tx.QueryRow(ctx, runQuery, run.ProjectID, run.Title).
		Scan(&run.ID, &run.CreatedAt, &run.UpdatedAt); err != nil {
		return err
	}

	const resultQuery = `
        INSERT INTO test_results (run_id, test_case_id, status)
        VALUES ($1, $2, $3)`
	for _, caseID := range caseIDs {
		if _, err := tx.Exec(ctx, resultQuery, run.ID, caseID, domain.ResultStatusPending); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *runRepository) GetByID(ctx context.Context, id string) (*domain.TestRun, error) {
	const query = `
        SELECT id, project_id, title, created_at, updated_at
        FROM test_runs WHERE id=$1`

	var run domain.TestRun
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&run.ID,
		&run.ProjectID,
		&run.Title,
		&run.CreatedAt,
		&run.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *runRepository) ListSummariesByProject(ctx context.Context, projectID string) ([]domain.RunSummary, error) {
	const query = `
        SELECT t.id, t.project_id, t.title, t.created_at, t.updated_at,
               COUNT(res.id),
               COUNT(res.id) FILTER (WHERE res.status = 'Passed'),
               COUNT(res.id) FILTER (WHERE res.status = 'Failed')
        FROM test_runs t
        LEFT JOIN test_results res ON res.run_id = t.id
        WHERE t.project_id=$1
        GROUP BY t.id
        ORDER BY t.created_at DESC`

	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.RunSummary
	for rows.Next() {
		var s domain.RunSummary
		if err := rows.Scan(
			&s.ID,
			&s.ProjectID,
			&s.Title,
			&s.CreatedAt,
			&s.UpdatedAt,
			&s.TotalResults,
			&s.PassedCount,
			&s.FailedCount,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *runRepository) ListResults(ctx context.Context, runID string) ([]domain.ResultWithCase, error) {
	const query = `
        SELECT res.id, res.run_id, res.test_case_id, res.status, res.comment, res.created_at, res.updated_at,
               c.id, c.suite_id, c.title, c.description, c.priority, c.steps, c.created_at, c.updated_at
        FROM test_results res
        JOIN test_cases c ON c.id = res.test_case_id
        WHERE res.run_id=$1
        ORDER BY c.title ASC`

	rows, err := r.pool.Query(ctx, query, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.ResultWithCase
	for rows.Next() {
		var rc domain.ResultWithCase
		if err := rows.Scan(
			&rc.ID,
			&rc.RunID,
			&rc.TestCaseID,
			&rc.Status,
			&rc.Comment,
			&rc.CreatedAt,
			&rc.UpdatedAt,
			&rc.Case.ID,
			&rc.Case.SuiteID,
			&rc.Case.Title,
			&rc.Case.Description,
			&rc.Case.Priority,
			&rc.Case.Steps,
			&rc.Case.CreatedAt,
			&rc.Case.UpdatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, rc)
	}
	return results, rows.Err()
}

func (r *runRepository) GetResultByID(ctx context.Context, id string) (*domain.TestResult, error) {
	const query = `
        SELECT id, run_id, test_case_id, status, comment, created_at, updated_at
        FROM test_results WHERE id=$1`

	var result domain.TestResult
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.RunID,
		&result.TestCaseID,
		&result.Status,
		&result.Comment,
		&result.CreatedAt,
		&result.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *runRepository) UpdateResult(ctx context.Context, result *domain.TestResult) error {
	const query = `
        UPDATE test_results SET status=$1, comment=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, result.Status, result.Comment, result.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
