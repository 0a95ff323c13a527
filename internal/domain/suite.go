package domain

import "time"

// TestSuite is a named grouping of test cases within a project.
type TestSuite struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SuiteWithCases pairs a suite with its cases for listing pages.
type SuiteWithCases struct {
	TestSuite
	Cases []TestCase
}
