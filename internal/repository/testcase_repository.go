package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/testcase-service/internal/domain"
)

// TestCaseRepository encapsulates test case persistence.
type TestCaseRepository interface {
	Create(ctx context.Context, tc *domain.TestCase) error
	// CreateBatch inserts all cases in one transaction; either every row
	// lands or none do.
	CreateBatch(ctx context.Context, cases []domain.TestCase) error
	GetByID(ctx context.Context, id string) (*domain.TestCase, error)
	ListBySuite(ctx context.Context, suiteID string) ([]domain.TestCase, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.TestCase, error)
}

type testCaseRepository struct {
	pool *pgxpool.Pool
}

// NewTestCaseRepository instantiates repository.
func NewTestCaseRepository(pool *pgxpool.Pool) TestCaseRepository {
	return &testCaseRepository{pool: pool}
}

const insertCaseQuery = `
        INSERT INTO test_cases (suite_id, title, description, priority, steps)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

func (r *testCaseRepository) Create(ctx context.Context, tc *domain.TestCase) error {
	return r.pool.QueryRow(ctx, insertCaseQuery,
		tc.SuiteID,
		tc.Title,
		tc.Description,
		tc.Priority,
		tc.Steps,
	).Scan(&tc.ID, &tc.CreatedAt, &tc.UpdatedAt)
}

func (r *testCaseRepository) CreateBatch(ctx context.Context, cases []domain.TestCase) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for i := range cases {
		tc := &cases[i]
		if err := tx.QueryRow(ctx, insertCaseQuery,
			tc.SuiteID,
			tc.Title,
			tc.Description,
			tc.Priority,
			tc.Steps,
		).Scan(&tc.ID, &tc.CreatedAt, &tc.UpdatedAt); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *testCaseRepository) GetByID(ctx context.Context, id string) (*domain.TestCase, error) {
	const query = `
        SELECT id, suite_id, title, description, priority, steps, created_at, updated_at
        FROM test_cases WHERE id=$1`

	var tc domain.TestCase
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&tc.ID,
		&tc.SuiteID,
		&tc.Title,
		&tc.Description,
		&tc.Priority,
		&tc.Steps,
		&tc.CreatedAt,
		&tc.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &tc, nil
}

func (r *testCaseRepository) ListBySuite(ctx context.Context, suiteID string) ([]domain.TestCase, error) {
	const query = `
        SELECT id, suite_id, title, description, priority, steps, created_at, updated_at
        FROM test_cases WHERE suite_id=$1 ORDER BY created_at ASC`
	return r.list(ctx, query, suiteID)
}

func (r *testCaseRepository) ListByProject(ctx context.Context, projectID string) ([]domain.TestCase, error) {
	const query = `
        SELECT c.id, c.suite_id, c.title, c.description, c.priority, c.steps, c.created_at, c.updated_at
        FROM test_cases c
        JOIN test_suites s ON s.id = c.suite_id
        WHERE s.project_id=$1 ORDER BY c.created_at ASC`
	return r.list(ctx, query, projectID)
}

func (r *testCaseRepository) list(ctx context.Context, query string, arg any) ([]domain.TestCase, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cases []domain.TestCase
	for rows.Next() {
		var tc domain.TestCase
		if err := rows.Scan(
			&tc.ID,
			&tc.SuiteID,
			&tc.Title,
			&tc.Description,
			&tc.Priority,
			&tc.Steps,
			&tc.CreatedAt,
			&tc.UpdatedAt,
		); err != nil {
			return nil, err
		}
		cases = append(cases, tc)
	}
	return cases, rows.Err()
}
