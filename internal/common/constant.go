// Package common contains constants and small helpers shared by the
// HotelHub client packages.
package common

// Durable storage keys written on login and removed on logout.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
	UserIDKey       = "user_id"
)

// SessionKeys lists every durable key owned by the auth flow.
var SessionKeys = []string{AccessTokenKey, RefreshTokenKey, UserIDKey}

// Outbound HTTP header names.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-Id"
	BearerPrefix            = "Bearer "
)

// View routes.
const (
	RouteHome       = "/"
	RouteLogin      = "/login"
	RouteSignup     = "/signup"
	RouteProperties = "/properties"
	RouteBookings   = "/bookings"
	RouteProfile    = "/profile"
)
