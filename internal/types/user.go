// Package types provides type definitions for structured data used throughout the job applier client.
package types

import (
	"github.com/go-playground/validator/v10"
)

// User represents an authenticated account. Created on login/signup,
// immutable once set, cleared on logout.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// ContactInfo holds the contact block of a user profile.
type ContactInfo struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// LoginRequest represents the login request sent to the auth service.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents the signup request sent to the auth service.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Surname  string `json:"surname" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResponse represents the auth service response with user data and a session token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token,omitempty"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
