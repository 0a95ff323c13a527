package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/testcase-service/internal/auth"
	"github.com/spec-kit/testcase-service/internal/domain"
	"github.com/spec-kit/testcase-service/internal/events"
	"github.com/spec-kit/testcase-service/internal/repository"
	apperrors "github.com/spec-kit/testcase-service/pkg/util"
)

// DefaultResetPassword is what admin-triggered resets set the password
// to. Users are expected to change it after their next login.
const DefaultResetPassword = "12345678"

// UserService covers the admin-facing account management operations.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, dispatcher events.Dispatcher, bcryptCost int) *UserService {
	return &UserService{users: users, dispatcher: dispatcher, bcryptCost: bcryptCost}
}

// ListUsers returns all accounts, newest first.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// UpdateStatus flips an account's lifecycle status. Activation takes
// effect on the target's next login; an already-issued token keeps its
// embedded role until expiry.
func (s *UserService) UpdateStatus(ctx context.Context, userID string, status domain.UserStatus) (*domain.User, error) {
	if !domain.ValidStatus(status) {
		return nil, apperrors.NewValidationError("unknown status", map[string]any{"status": status})
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	wasActive := user.Status == domain.UserStatusActive
	user.Status = status
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	if !wasActive && status == domain.UserStatusActive {
		s.publish(ctx, events.EventUserActivated, events.UserActivatedPayload{
			UserID: user.ID,
			Email:  user.Email,
		})
	}
	return user, nil
}

// UpdateRole changes an account's role. Same staleness caveat as
// UpdateStatus.
func (s *UserService) UpdateRole(ctx context.Context, userID string, role domain.Role) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": role})
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ResetPassword sets the account password back to the default.
func (s *UserService) ResetPassword(ctx context.Context, userID string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(DefaultResetPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

func (s *UserService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
