package events

import (
	"time"

	"github.com/spec-kit/testcase-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventUserActivated  EventType = "user_activated"
	EventRunCreated     EventType = "run_created"
	EventResultRecorded EventType = "result_recorded"
	EventCasesImported  EventType = "cases_imported"
)

// Actor encapsulates actor metadata for an event. Registration events
// have no authenticated actor.
type Actor struct {
	UserID *string     `json:"user_id,omitempty"`
	Role   domain.Role `json:"role,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string            `json:"user_id"`
	Email  string            `json:"email"`
	Role   domain.Role       `json:"role"`
	Status domain.UserStatus `json:"status"`
}

// UserActivatedPayload payload.
type UserActivatedPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// RunCreatedPayload payload.
type RunCreatedPayload struct {
	RunID     string `json:"run_id"`
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
	CaseCount int    `json:"case_count"`
}

// ResultRecordedPayload payload.
type ResultRecordedPayload struct {
	ResultID string              `json:"result_id"`
	RunID    string              `json:"run_id"`
	Status   domain.ResultStatus `json:"status"`
}

// CasesImportedPayload payload.
type CasesImportedPayload struct {
	ProjectID string `json:"project_id"`
	SuiteID   string `json:"suite_id"`
	Count     int    `json:"count"`
}
