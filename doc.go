// Package sessiongate provides an opaque-token authentication engine with a
// Redis-backed session cache and a pluggable persistent user store.
//
// A successful credential check mints a random bearer token and records a
// token → user-id mapping in Redis under a fixed 24-hour TTL. Presence of
// that cache entry is the sole source of truth for token validity: the
// engine performs no expiry bookkeeping of its own, and a token is never
// reassigned or renewed, only created and deleted.
//
// The package is designed for concurrent server workloads: Engine methods
// are safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// sessiongate is the public surface. It exposes [Engine], [Builder],
// [Config], the [UserStore] contract, and the event sink types. Internal
// coordination — event dispatch, metric storage, token minting — lives
// under internal/ and is never exported. HTTP routing, request parsing,
// and process wiring belong to the caller (see examples/http-minimal).
//
// # What this package must NOT do
//
//   - Expose Redis clients, MongoDB handles, or cache key layout in its
//     public API.
//   - Perform I/O outside of Engine methods (construction via Builder is
//     allocation-only until Build).
//   - Leak raw adapter errors through Engine methods; every failure is
//     translated into the sentinel taxonomy in errors.go.
//
// # Credential compatibility
//
// Stored secrets are unsalted single-round SHA-1 digests. This matches the
// record format of the pre-existing user store and is an acknowledged
// weakness of that format, kept for compatibility with records written by
// earlier deployments.
package sessiongate
