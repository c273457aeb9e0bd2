package user

type Role string

const (
	// Client organization staff
	RoleTeamAdmin         Role = "team_admin"
	RoleTravelCoordinator Role = "travel_coordinator"
	RoleMember            Role = "member"

	// Platform parties
	RoleBroker  Role = "broker"
	RoleAdmin   Role = "admin"
	RoleService Role = "service"
)

func (r Role) String() string { return string(r) }

// IsClientStaff reports whether the role belongs to the client-organization
// recipient group of three-party resolution.
func (r Role) IsClientStaff() bool {
	return r == RoleTeamAdmin || r == RoleTravelCoordinator
}

// IsPrivileged reports whether the role may call the dispatcher surfaces.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleService
}
