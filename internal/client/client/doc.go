// Package client contains the transport layer of the HotelHub CLI.
//
// # Overview
//
//  1. Client, the contract of the remote hotel API: Signup, Login,
//     CurrentUser and Close.
//  2. HTTPClient, its JSON-over-HTTP implementation. Every request carries
//     Content-Type: application/json and a fresh X-Request-Id; CurrentUser
//     also sends Authorization: Bearer <token>.
//  3. InitDatabase and RunMigrations, which open the local SQLite session
//     database and apply the embedded goose migrations.
//
// # Error Handling
//
// A non-success HTTP status becomes a *RequestError whose Error() is the
// user-facing message. Failures below HTTP (refused connection, DNS) wrap
// ErrUnavailable. *AuthError reports that an authenticated call was
// attempted without a token; it is produced by the services layer.
package client
