package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/testcase-service/internal/config"
	"github.com/spec-kit/testcase-service/internal/domain"
	"github.com/spec-kit/testcase-service/internal/service"
	apperrors "github.com/spec-kit/testcase-service/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "service-test-secret",
			SessionTTLHours: 24,
			BcryptCost:      4, // min cost keeps the suite fast
		},
	}
}

func newAuthFixture() (*service.AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	svc := service.NewAuthService(testConfig(), service.AuthDependencies{UserRepo: users})
	return svc, users
}

func errCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	return apperrors.ToDomainError(err).Code
}

func TestRegisterFirstUserBecomesActiveAdmin(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	first, err := svc.Register(ctx, "Jane", "jane@example.com", "hunter22")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, first.Role)
	require.Equal(t, domain.UserStatusActive, first.Status)

	second, err := svc.Register(ctx, "John", "john@example.com", "hunter22")
	require.NoError(t, err)
	require.Equal(t, domain.RoleGuest, second.Role)
	require.Equal(t, domain.UserStatusPending, second.Status)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Jane", "jane@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Jane Again", "jane@example.com", "hunter22")
	require.Equal(t, "CONFLICT", errCode(t, err))
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Jane", "jane@example.com", "hunter22")
	require.NoError(t, err)

	_, _, _, err = svc.Login(ctx, "jane@example.com", "wrong")
	require.Equal(t, "INVALID_CREDENTIALS", errCode(t, err))
}

func TestLoginUnknownEmailIndistinguishableFromWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture()

	_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	require.Equal(t, "INVALID_CREDENTIALS", errCode(t, err))
}

func TestLoginPendingAccount(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Jane", "jane@example.com", "hunter22")
	require.NoError(t, err)
	// Second registration stays PENDING until an admin approves it.
	_, err = svc.Register(ctx, "John", "john@example.com", "hunter22")
	require.NoError(t, err)

	_, _, _, err = svc.Login(ctx, "john@example.com", "hunter22")
	require.Equal(t, "PENDING_APPROVAL", errCode(t, err))
}

func TestLoginIssuesTokenMatchingStoredRole(t *testing.T) {
	svc, users := newAuthFixture()
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Jane", "jane@example.com", "hunter22")
	require.NoError(t, err)

	stored, err := users.GetByID(ctx, registered.ID)
	require.NoError(t, err)
	stored.Role = domain.RoleQA
	require.NoError(t, users.Update(ctx, stored))

	user, token, expiresAt, err := svc.Login(ctx, "jane@example.com", "hunter22")
	require.NoError(t, err)
	require.Equal(t, domain.RoleQA, user.Role)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, 5*time.Second)

	identity := svc.TokenCodec().Verify(token)
	require.NotNil(t, identity)
	require.Equal(t, domain.RoleQA, identity.Role)
	require.Equal(t, user.ID, identity.ID)
	require.Equal(t, user.Email, identity.Email)
	require.Equal(t, user.Name, identity.Name)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	user, err := svc.Register(ctx, "Jane", "jane@example.com", "hunter22")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, "wrong", "newpass123")
	require.Equal(t, "INVALID_CREDENTIALS", errCode(t, err))

	require.NoError(t, svc.ChangePassword(ctx, user.ID, "hunter22", "newpass123"))

	_, _, _, err = svc.Login(ctx, "jane@example.com", "hunter22")
	require.Equal(t, "INVALID_CREDENTIALS", errCode(t, err))
	_, _, _, err = svc.Login(ctx, "jane@example.com", "newpass123")
	require.NoError(t, err)
}
