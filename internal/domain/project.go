package domain

import "time"

// Project groups test suites and test runs.
type Project struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectSummary is a project with aggregate counts for listing pages.
type ProjectSummary struct {
	Project
	SuiteCount int
	RunCount   int
}
