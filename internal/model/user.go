package model

import "time"

// User roles. The first user of a company is always an admin.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// User represents an account within a company. PasswordHash is never
// serialized; every endpoint that returns a user relies on this.
type User struct {
	ID           int64     `json:"id"`
	CompanyID    int64     `json:"company_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	Email          string `json:"email"`
	Password       string `json:"password"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	CompanyID int64  `json:"company_id"`
	UserID    int64  `json:"user_id"`
	Token     string `json:"token"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	User    User    `json:"user"`
	Company Company `json:"company"`
	Token   string  `json:"token"`
}

// CreateUserRequest is the body of POST /api/users. The new user always
// joins the creator's company; no company id is accepted from the client.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateUserResponse is returned on successful user creation.
type CreateUserResponse struct {
	UserID int64 `json:"user_id"`
}
