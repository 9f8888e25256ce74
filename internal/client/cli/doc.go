// Package cli provides the interactive HotelHub command-line client.
//
// It wires configuration, the local session database, the API client and
// the auth service into a REPL. Each screen of the client is a View mounted
// by the Router; views observe the loading bus while mounted and read the
// session store from the context they are given.
//
// Screens:
//   - Home, Properties, My Bookings, Profile
//   - Login and Sign up forms
//
// The persistent Navbar renders the brand, the links and the session
// controls above every screen. The REPL is started via App.Run(ctx), which
// blocks until the user exits.
package cli
