package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightops360/hangar/internal/apperr"
	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/models/entities"
)

func newAdminService(t *testing.T) *AdminService {
	t.Helper()
	s := NewAdminService(setupTestStore(t))
	require.NoError(t, s.EnsureSystemRoles(context.Background()))
	return s
}

func TestAdminService_EnsureSystemRolesIsIdempotent(t *testing.T) {
	s := newAdminService(t)
	ctx := context.Background()
	require.NoError(t, s.EnsureSystemRoles(ctx))

	roles, err := s.ListRoles(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, len(constants.SystemRoles))

	admin, err := s.GetRole(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "Admin", admin.Name)
	assert.True(t, admin.IsSystemRole)
}

func TestAdminService_SystemRolesAreProtected(t *testing.T) {
	s := newAdminService(t)
	ctx := context.Background()

	_, err := s.DeleteRole(ctx, "admin")
	assert.True(t, apperr.IsValidation(err))

	_, err = s.SaveRole(ctx, &entities.Role{Base: entities.Base{ID: "admin"}, Name: "Superuser"})
	assert.True(t, apperr.IsValidation(err))

	// Editing a system role without renaming it is allowed.
	r, err := s.SaveRole(ctx, &entities.Role{Base: entities.Base{ID: "viewer"}, Name: "Viewer", Description: "Read only"})
	require.NoError(t, err)
	assert.True(t, r.IsSystemRole)
	assert.Equal(t, "Read only", r.Description)
}

func TestAdminService_CustomRoles(t *testing.T) {
	s := newAdminService(t)
	ctx := context.Background()

	r, err := s.SaveRole(ctx, &entities.Role{Name: "Chief Pilot", Permissions: []string{"trips:release"}})
	require.NoError(t, err)
	assert.False(t, r.IsSystemRole)

	_, err = s.SaveRole(ctx, &entities.Role{Name: "chief pilot"})
	assert.True(t, apperr.IsValidation(err), "names are unique regardless of case")

	_, err = s.DeleteRole(ctx, r.ID)
	require.NoError(t, err)
	_, err = s.DeleteRole(ctx, r.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestAdminService_Users(t *testing.T) {
	s := newAdminService(t)
	ctx := context.Background()

	u, err := s.SaveUser(ctx, &entities.User{Email: "ops@blueridge.example", Roles: []string{"Dispatcher"}, IsActive: true})
	require.NoError(t, err)

	_, err = s.SaveUser(ctx, &entities.User{Email: "ops@blueridge.example"})
	assert.True(t, apperr.IsValidation(err), "email already registered")

	_, err = s.SaveUser(ctx, &entities.User{Email: "new@blueridge.example", Roles: []string{"Astronaut"}})
	assert.True(t, apperr.IsValidation(err), "unknown role")

	updated, err := s.SetUserRoles(ctx, u.ID, []string{"Admin", "Admin", "Crew"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Admin", "Crew"}, updated.Roles)

	found, err := s.UserByEmail(ctx, "ops@blueridge.example")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, u.ID, found.ID)

	missing, err := s.UserByEmail(ctx, "nobody@blueridge.example")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
