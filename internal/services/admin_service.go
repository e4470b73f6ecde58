package services

import (
	"context"
	"strings"

	"flightops360/hangar/internal/apperr"
	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/logging"
	"flightops360/hangar/internal/models/entities"
	"flightops360/hangar/internal/store"
)

// AdminService backs the two admin surfaces: application roles and the users
// that hold them. A user's roles are role names.
type AdminService struct {
	roles *Collection[entities.Role, *entities.Role]
	users *Collection[entities.User, *entities.User]
}

func NewAdminService(s store.Store) *AdminService {
	return &AdminService{
		roles: NewCollection[entities.Role](s, constants.CollectionRoles, "role"),
		users: NewCollection[entities.User](s, constants.CollectionUsers, "user"),
	}
}

func systemRoleID(r constants.Role) string {
	return strings.ToLower(string(r))
}

// EnsureSystemRoles creates the built-in roles that are missing.
func (s *AdminService) EnsureSystemRoles(ctx context.Context) error {
	for _, r := range constants.SystemRoles {
		existing, err := s.roles.Find(ctx, systemRoleID(r))
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if _, err := s.roles.Save(ctx, &entities.Role{
			Base:         entities.Base{ID: systemRoleID(r)},
			Name:         r.String(),
			Description:  "Built-in " + r.String() + " role",
			Permissions:  []string{},
			IsSystemRole: true,
		}); err != nil {
			return err
		}
		logging.Info("system role created", "role", r.String())
	}
	return nil
}

func (s *AdminService) ListRoles(ctx context.Context) ([]entities.Role, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByKey(roles, func(r *entities.Role) string { return r.Name })
	return roles, nil
}

func (s *AdminService) GetRole(ctx context.Context, id string) (*entities.Role, error) {
	return s.roles.Get(ctx, id)
}

// SaveRole refuses to rename system roles and keeps role names unique.
func (s *AdminService) SaveRole(ctx context.Context, r *entities.Role) (*entities.Role, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, existing := range roles {
		if existing.ID == r.ID {
			if existing.IsSystemRole && existing.Name != r.Name {
				return nil, apperr.Invalid("name", "system role %s cannot be renamed", existing.Name)
			}
			r.IsSystemRole = existing.IsSystemRole
			continue
		}
		if strings.EqualFold(existing.Name, r.Name) {
			return nil, apperr.Invalid("name", "role %s already exists", r.Name)
		}
	}
	if r.Permissions == nil {
		r.Permissions = []string{}
	}
	return s.roles.Save(ctx, r)
}

func (s *AdminService) DeleteRole(ctx context.Context, id string) (*DeleteResult, error) {
	role, err := s.roles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if role.IsSystemRole {
		return nil, apperr.Invalid("id", "system role %s cannot be deleted", role.Name)
	}
	return s.roles.Delete(ctx, id)
}

// ListUsers returns users by email.
func (s *AdminService) ListUsers(ctx context.Context) ([]entities.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByKey(users, func(u *entities.User) string { return u.Email })
	return users, nil
}

func (s *AdminService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	return s.users.Get(ctx, id)
}

// SaveUser checks that every role the user holds exists and that the email
// is not taken by another user.
func (s *AdminService) SaveUser(ctx context.Context, u *entities.User) (*entities.User, error) {
	if err := s.checkRoles(ctx, u.Roles); err != nil {
		return nil, err
	}
	taken, err := s.users.List(ctx, store.Eq("email", u.Email))
	if err != nil {
		return nil, err
	}
	for _, other := range taken {
		if other.ID != u.ID {
			return nil, apperr.Invalid("email", "%s is already registered", u.Email)
		}
	}
	if u.Roles == nil {
		u.Roles = []string{}
	}
	return s.users.Save(ctx, u)
}

// SetUserRoles replaces the roles claim of a user.
func (s *AdminService) SetUserRoles(ctx context.Context, id string, roles []string) (*entities.User, error) {
	u, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Roles = roles
	if err := entities.Validate(u); err != nil {
		return nil, err
	}
	return s.SaveUser(ctx, u)
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) (*DeleteResult, error) {
	return s.users.Delete(ctx, id)
}

// UserByEmail returns nil when no user has the address.
func (s *AdminService) UserByEmail(ctx context.Context, email string) (*entities.User, error) {
	users, err := s.users.List(ctx, store.Eq("email", email))
	if err != nil || len(users) == 0 {
		return nil, err
	}
	return &users[0], nil
}

func (s *AdminService) checkRoles(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	roles, err := s.roles.List(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		known[r.Name] = struct{}{}
	}
	for _, name := range names {
		if _, ok := known[name]; !ok {
			return apperr.Invalid("roles", "unknown role %s", name)
		}
	}
	return nil
}
