package entity

// Role is stored on the user row. A child wears the tracker; the other roles
// are the associated users who receive its alerts.
type Role string

const (
	RoleChild  Role = "child"
	RoleParent Role = "parent"
	RoleDriver Role = "driver"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleChild, RoleParent, RoleDriver, RoleAdmin:
		return true
	}

	return false
}
