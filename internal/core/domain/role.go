package domain

// User-kind roles.
const (
	RoleUser          = "USER"
	RoleCustomer      = "CUSTOMER"
	RoleBusinessOwner = "BUSINESS_OWNER"
)

// Admin-kind roles.
const (
	RoleSupport    = "SUPPORT"
	RoleModerator  = "MODERATOR"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// roleRanks imposes a single total order across both principal kinds.
// Unknown role names rank 0 and therefore never satisfy any known
// requirement. CUSTOMER is the storefront alias for the base USER rank.
var roleRanks = map[string]int{
	RoleUser:          1,
	RoleCustomer:      1,
	RoleBusinessOwner: 2,
	RoleSupport:       3,
	RoleModerator:     4,
	RoleAdmin:         5,
	RoleSuperAdmin:    6,
}

// RoleRank returns the ordinal rank of a role, 0 for unknown names.
func RoleRank(role string) int {
	return roleRanks[role]
}

// HasRequiredRole reports whether actual carries at least the privilege
// level of required. The comparison is "level >= required level", not a
// capability relationship.
func HasRequiredRole(actual, required string) bool {
	return roleRanks[actual] >= roleRanks[required]
}
