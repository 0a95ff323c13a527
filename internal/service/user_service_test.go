package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/testcase-service/internal/auth"
	"github.com/spec-kit/testcase-service/internal/domain"
	"github.com/spec-kit/testcase-service/internal/service"
)

func newUserFixture(t *testing.T) (*service.UserService, *fakeUserRepo, *domain.User) {
	t.Helper()

	users := newFakeUserRepo()
	user := &domain.User{
		Name:         "John",
		Email:        "john@example.com",
		PasswordHash: "irrelevant",
		Role:         domain.RoleGuest,
		Status:       domain.UserStatusPending,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return service.NewUserService(users, nil, 4), users, user
}

func TestUpdateStatus(t *testing.T) {
	svc, users, user := newUserFixture(t)
	ctx := context.Background()

	updated, err := svc.UpdateStatus(ctx, user.ID, domain.UserStatusActive)
	require.NoError(t, err)
	require.Equal(t, domain.UserStatusActive, updated.Status)

	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, domain.UserStatusActive, stored.Status)

	_, err = svc.UpdateStatus(ctx, user.ID, domain.UserStatus("FROZEN"))
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))
}

func TestUpdateRole(t *testing.T) {
	svc, users, user := newUserFixture(t)
	ctx := context.Background()

	updated, err := svc.UpdateRole(ctx, user.ID, domain.RoleQA)
	require.NoError(t, err)
	require.Equal(t, domain.RoleQA, updated.Role)

	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleQA, stored.Role)

	_, err = svc.UpdateRole(ctx, user.ID, domain.Role("ROOT"))
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))
}

func TestResetPassword(t *testing.T) {
	svc, users, user := newUserFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.ResetPassword(ctx, user.ID))

	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NoError(t, auth.ComparePassword(stored.PasswordHash, service.DefaultResetPassword))
}
