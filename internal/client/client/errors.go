package client

import "errors"

var ErrUnavailable = errors.New("server unavailable")

// Fallback messages used when the server gives no detail.
const (
	MsgSignupFailed    = "Signup failed"
	MsgLoginFailed     = "Login failed"
	MsgFetchUserFailed = "Failed to fetch user profile"
	MsgNoAccessToken   = "No access token found"
)

// RequestError is a non-success HTTP response.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string { return e.Message }

// AuthError is a failed precondition of an authenticated call.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }
