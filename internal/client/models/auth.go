// Package models holds the payloads exchanged with the hotel API and the
// authenticated user's profile.
package models

import (
	"errors"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether email has the shape the API accepts.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Credentials is the body of both the signup and the login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type (
	SignupCredentials = Credentials
	LoginCredentials  = Credentials
)

// Messages shown by the form views.
const (
	MsgFillAllFields = "Please fill in all fields"
	MsgInvalidEmail  = "Please enter a valid email address"
)

// ValidationError is a client-side form error. It never reaches the network.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate checks that both fields are present.
func (c Credentials) Validate() error {
	if c.Email == "" || c.Password == "" {
		return &ValidationError{Message: MsgFillAllFields}
	}
	return nil
}

// ValidateForSignup adds the email format check to Validate.
func (c Credentials) ValidateForSignup() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !IsValidEmail(c.Email) {
		return &ValidationError{Message: MsgInvalidEmail}
	}
	return nil
}

// IsValidationError reports whether err is, or wraps, a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AuthResponse is returned by the signup endpoint.
type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token,omitempty"`
	User    *SignupUser `json:"user,omitempty"`
}

type SignupUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// LoginResponse carries the session tokens issued by the login endpoint.
type LoginResponse struct {
	UserID       int64  `json:"user_id"`
	IsAdmin      Flag   `json:"is_admin"`
	IsStaff      Flag   `json:"is_staff"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// SessionTokens is the name the auth flow uses for a login result.
type SessionTokens = LoginResponse

// ErrorBody is the JSON shape of a failed API response.
type ErrorBody struct {
	Detail string `json:"detail,omitempty"`
}
