// Package session implements the token-keyed session store.
//
// Each session owns a deep copy of the seed schedule, so concurrent demo
// users never observe each other's bookings. Sessions are created on first
// contact, resolved by an opaque token, and removed by a periodic age sweep
// driven by an injected clock.
package session
