package user

import "time"

// RegisterRequest represents the request payload for registering a new user.
type RegisterRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=72"`
	Name     string `validate:"required,min=1,max=100"`
}

// LoginRequest represents the request payload for authenticating a user.
type LoginRequest struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// UpdateRequest represents a partial profile update. Nil fields are left
// unchanged. The avatar reference is deliberately absent: it is assigned
// once at registration and never reassigned.
type UpdateRequest struct {
	ID          string  `validate:"required"`
	ActingID    string  `validate:"required"`
	Email       *string `validate:"omitempty,email"`
	Name        *string `validate:"omitempty,min=1,max=100"`
	Bio         *string `validate:"omitempty,max=500"`
	DateOfBirth *time.Time
	Location    *string `validate:"omitempty,max=200"`
}
