// Package session implements the Redis-backed session cache.
//
// Each entry maps a namespaced token key to a serialized user id with a
// per-key TTL armed once at creation. The cache is the single source of
// truth for token validity: an entry that expired is indistinguishable from
// one that never existed, and the store never extends a TTL on read.
//
// All methods are safe for concurrent use; correctness relies on Redis
// single-key atomicity, not on application-level locking.
package session
