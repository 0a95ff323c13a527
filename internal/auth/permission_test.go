package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/testcase-service/internal/auth"
	"github.com/spec-kit/testcase-service/internal/domain"
	apperrors "github.com/spec-kit/testcase-service/pkg/util"
)

func identityWithRole(role domain.Role) *domain.Identity {
	return &domain.Identity{ID: "user-1", Email: "jane@example.com", Name: "Jane", Role: role}
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	return apperrors.ToDomainError(err).Code
}

func TestCheckRequiresSession(t *testing.T) {
	err := auth.Check(nil, domain.RoleQA)
	require.Equal(t, "UNAUTHORIZED", errorCode(t, err))
}

func TestCheckAdminBypassesRoleSet(t *testing.T) {
	// ADMIN passes even when the set does not list it.
	require.NoError(t, auth.Check(identityWithRole(domain.RoleAdmin), domain.RoleQA))
	require.NoError(t, auth.Check(identityWithRole(domain.RoleAdmin)))
}

func TestCheckSingleRole(t *testing.T) {
	require.NoError(t, auth.Check(identityWithRole(domain.RoleQA), domain.RoleQA))

	err := auth.Check(identityWithRole(domain.RoleGuest), domain.RoleQA)
	require.Equal(t, "FORBIDDEN", errorCode(t, err))
}

func TestCheckMultipleRoles(t *testing.T) {
	required := []domain.Role{domain.RoleAdmin, domain.RoleQA}

	require.NoError(t, auth.Check(identityWithRole(domain.RoleAdmin), required...))
	require.NoError(t, auth.Check(identityWithRole(domain.RoleQA), required...))

	err := auth.Check(identityWithRole(domain.RoleGuest), required...)
	require.Equal(t, "FORBIDDEN", errorCode(t, err))
}
