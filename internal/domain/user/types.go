package user

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStylist  Role = "stylist"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStylist, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role may manage services, availability and
// booking statuses. Stylists and admins are both staff; admins may
// additionally act on records owned by other stylists.
func (r Role) IsStaff() bool {
	return r == RoleStylist || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
