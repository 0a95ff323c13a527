package domain

import "time"

// ResultStatus enumerates execution states for a test result.
type ResultStatus string

const (
	ResultStatusPending ResultStatus = "Pending"
	ResultStatusPassed  ResultStatus = "Passed"
	ResultStatusFailed  ResultStatus = "Failed"
	ResultStatusSkipped ResultStatus = "Skipped"
)

// ValidResultStatus reports whether a status may be recorded by a tester.
// Pending is the seeded state only; it is not settable through the API.
func ValidResultStatus(s ResultStatus) bool {
	switch s {
	case ResultStatusPassed, ResultStatusFailed, ResultStatusSkipped:
		return true
	}
	return false
}

// TestRun is an execution of a project's test cases at a point in time.
// The case list is snapshotted at creation; cases added later do not
// join an existing run.
type TestRun struct {
	ID        string
	ProjectID string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TestResult records the outcome of one case within one run.
type TestResult struct {
	ID         string
	RunID      string
	TestCaseID string
	Status     ResultStatus
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ResultWithCase joins a result with its snapshotted case for run detail.
type ResultWithCase struct {
	TestResult
	Case TestCase
}

// RunSummary aggregates result tallies for run listing pages.
type RunSummary struct {
	TestRun
	TotalResults int
	PassedCount  int
	FailedCount  int
}
