package domain

// Role determines which slices of the dashboard a user can see. Visibility
// rules live in visibility.go; everything else treats roles as opaque.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleLeader   Role = "leader"
	RoleFarmer   Role = "farmer"
	RoleLauncher Role = "launcher"
	RoleViewer   Role = "viewer"
)

// User is the acting identity supplied by the authentication subsystem with
// every mutating call. The store trusts it for audit attribution and role
// filtering; it performs no authentication itself.
type User struct {
	ID   string
	Name string
	Role Role
}
