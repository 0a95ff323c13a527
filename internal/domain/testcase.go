package domain

import "time"

// CasePriority enumerates test case priorities.
type CasePriority string

const (
	CasePriorityLow    CasePriority = "Low"
	CasePriorityMedium CasePriority = "Medium"
	CasePriorityHigh   CasePriority = "High"
)

// NormalizePriority maps arbitrary input onto a known priority,
// defaulting to Medium. Bulk imports rely on this being lenient.
func NormalizePriority(v string) CasePriority {
	switch CasePriority(v) {
	case CasePriorityLow, CasePriorityMedium, CasePriorityHigh:
		return CasePriority(v)
	}
	return CasePriorityMedium
}

// TestCase is a single test case belonging to a suite. Steps holds a
// JSON-encoded array of step descriptions, stored opaquely.
type TestCase struct {
	ID          string
	SuiteID     string
	Title       string
	Description string
	Priority    CasePriority
	Steps       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
