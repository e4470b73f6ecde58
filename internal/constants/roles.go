package constants

// Role mirrors the role names carried in a user's custom claims
type Role string

const (
	RoleAdmin       Role = "Admin"
	RoleManager     Role = "Manager"
	RoleDispatcher  Role = "Dispatcher"
	RoleMaintenance Role = "Maintenance"
	RoleCrew        Role = "Crew"
	RoleViewer      Role = "Viewer"
)

func (r Role) String() string { return string(r) }

// SystemRoles are created at startup and cannot be deleted through the API.
var SystemRoles = []Role{RoleAdmin, RoleManager, RoleDispatcher, RoleMaintenance, RoleCrew, RoleViewer}
