package sessiongate

import (
	"context"
	"time"
)

// UserRecord is the persistent account record returned by [UserStore]
// lookups. The engine only ever reads it; mutation of user records is the
// store's own concern.
type UserRecord struct {
	// ID is the store's opaque primary identifier, serialized to a string
	// (a hex ObjectID for the MongoDB adapter).
	ID string
	// Identifier is the login identifier, typically an email address.
	Identifier string
	// SecretDigest is the stored one-way digest of the account secret,
	// produced by [credential.Digest].
	SecretDigest string
}

// UserStore is the contract callers must implement to integrate sessiongate
// with their user database. Implementations must be safe for concurrent use
// and must return the package sentinels [ErrUserNotFound] and
// [ErrDuplicateIdentifier] for the documented conditions; any other error is
// treated as a store availability failure.
//
// The engine performs a read-then-insert existence check during
// registration, which is not atomic across concurrent calls. Implementations
// are therefore required to enforce identifier uniqueness at the storage
// layer (e.g. a unique index) and report violations as
// [ErrDuplicateIdentifier].
type UserStore interface {
	FindByIdentifier(ctx context.Context, identifier string) (*UserRecord, error)
	FindByIdentifierAndDigest(ctx context.Context, identifier, digest string) (*UserRecord, error)
	FindByID(ctx context.Context, id string) (*UserRecord, error)
	// Insert stores a new record and returns its generated ID.
	Insert(ctx context.Context, identifier, digest string) (string, error)
}

// Health is a point-in-time liveness snapshot returned by [Engine.Health].
// It is meant for operational status reporting only; request-path decisions
// never consult it.
type Health struct {
	CacheAlive   bool
	CacheLatency time.Duration
}
