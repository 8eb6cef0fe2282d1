// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleCustomer is the default role assigned at registration.
	RoleCustomer Role = "customer"
	// RoleAdmin indicates a back-office administrator.
	RoleAdmin Role = "admin"
	// RoleVendor indicates a third-party seller account.
	RoleVendor Role = "vendor"
)

// Capability is a named permission checked by the authorization middleware.
// Roles map to capabilities through a closed table rather than ad-hoc string
// comparisons, so a typo cannot silently grant or deny access.
type Capability string

const (
	// CapPlaceOrders covers the customer-facing shopping operations.
	CapPlaceOrders Capability = "place_orders"
	// CapManageCatalog covers product and category administration.
	CapManageCatalog Capability = "manage_catalog"
	// CapManageUsers covers account administration.
	CapManageUsers Capability = "manage_users"
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleCustomer: {
		CapPlaceOrders: true,
	},
	RoleVendor: {
		CapPlaceOrders:   true,
		CapManageCatalog: true,
	},
	RoleAdmin: {
		CapPlaceOrders:   true,
		CapManageCatalog: true,
		CapManageUsers:   true,
	},
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleVendor:
		return true
	default:
		return false
	}
}

// Can reports whether the role grants the given capability. Unknown roles
// grant nothing.
func (r Role) Can(c Capability) bool {
	return roleCapabilities[r][c]
}

// RoleFromString converts a claim value back to a Role, returning false for
// anything outside the closed set.
func RoleFromString(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
