package dto

import "time"

// UpsertUserRequest mutable profile fields sent on login.
type UpsertUserRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// UserResponse user representation in responses.
type UserResponse struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Image        string    `json:"image,omitempty"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	LastLoggedIn time.Time `json:"last_logged_in"`
}

// UpsertUserResponse reports whether the upsert inserted or refreshed.
type UpsertUserResponse struct {
	User    UserResponse `json:"user"`
	Created bool         `json:"created"`
}

// RoleResponse role/status projection for GET /users/role/:email.
type RoleResponse struct {
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// UpdateRoleRequest admin grant payload.
type UpdateRoleRequest struct {
	Role string `json:"role"` // customer, seller, admin
}
