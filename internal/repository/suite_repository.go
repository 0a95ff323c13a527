package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/testcase-service/internal/domain"
)

// SuiteRepository encapsulates test suite persistence.
type SuiteRepository interface {
	Create(ctx context.Context, suite *domain.TestSuite) error
	GetByID(ctx context.Context, id string) (*domain.TestSuite, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.TestSuite, error)
}

type suiteRepository struct {
	pool *pgxpool.Pool
}

// NewSuiteRepository instantiates repository.
func NewSuiteRepository(pool *pgxpool.Pool) SuiteRepository {
	return &suiteRepository{pool: pool}
}

func (r *suiteRepository) Create(ctx context.Context, suite *domain.TestSuite) error {
	const query = `
        INSERT INTO test_suites (project_id, title, description)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		suite.ProjectID,
		suite.Title,
		suite.Description,
	).Scan(&suite.ID, &suite.CreatedAt, &suite.UpdatedAt)
}

func (r *suiteRepository) GetByID(ctx context.Context, id string) (*domain.TestSuite, error) {
	const query = `
        SELECT id, project_id, title, description, created_at, updated_at
        FROM test_suites WHERE id=$1`

	var suite domain.TestSuite
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&suite.ID,
		&suite.ProjectID,
		&suite.Title,
		&suite.Description,
		&suite.CreatedAt,
		&suite.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &suite, nil
}

func (r *suiteRepository) ListByProject(ctx context.Context, projectID string) ([]domain.TestSuite, error) {
	const query = `
        SELECT id, project_id, title, description, created_at, updated_at
        FROM test_suites WHERE project_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suites []domain.TestSuite
	for rows.Next() {
		var suite domain.TestSuite
		if err := rows.Scan(
			&suite.ID,
			&suite.ProjectID,
			&suite.Title,
			&suite.Description,
			&suite.CreatedAt,
			&suite.UpdatedAt,
		); err != nil {
			return nil, err
		}
		suites = append(suites, suite)
	}
	return suites, rows.Err()
}
