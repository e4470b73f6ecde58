package entities

// Role is an application role. Roles are referenced by name from the roles
// claim of a user.
type Role struct {
	Base
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	Permissions  []string `json:"permissions"`
	IsSystemRole bool     `json:"isSystemRole"`
}

type User struct {
	Base
	Email       string   `json:"email" validate:"required,email"`
	DisplayName string   `json:"displayName"`
	Roles       []string `json:"roles"`
	IsActive    bool     `json:"isActive"`
	LastLogin   string   `json:"lastLogin"`
}

func (u *User) applyDefaults() {
	u.Roles = dedupe(u.Roles)
}
