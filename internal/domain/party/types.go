package party

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is the side of the marketplace an authenticated caller acts for.
// RoleService is used by collaborating back-office services such as checkout.
type Role string

const (
	RoleMerchant   Role = "merchant"
	RoleInfluencer Role = "influencer"
	RoleService    Role = "service"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleMerchant, RoleInfluencer, RoleService:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
