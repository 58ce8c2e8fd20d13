package entity

import "time"

// Valid roles for User.
const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
	RoleAdmin    = "admin"
)

// Account statuses. A customer who asked to become a seller moves to
// "requested"; an admin grant sets "verified".
const (
	StatusNone      = "none"
	StatusRequested = "requested"
	StatusVerified  = "verified"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleCustomer || role == RoleSeller || role == RoleAdmin
}

// User represents a marketplace account, keyed by email. Created on first
// login (upsert); never deleted.
type User struct {
	Email        string
	Name         string
	Image        string
	Role         string // customer, seller, admin
	Status       string // none, requested, verified
	CreatedAt    time.Time
	LastLoggedIn time.Time
}
