// Package mongostore implements the sessiongate user store contract on top
// of the official MongoDB Go driver.
//
// Record shape is an external contract shared with other consumers of the
// collection: documents carry `_id`, `email`, and `password` (the SHA-1
// digest, never the plaintext). The package never mutates existing records;
// the engine only reads them for comparison and inserts new ones.
//
// EnsureIndexes installs the unique index on `email` that backs the
// registration uniqueness guarantee. The engine's read-then-insert existence
// check is advisory only; without the index two concurrent registrations can
// both slip past it.
//
// Connect includes application-level retry to ride out cold starts and brief
// network interruptions on managed deployments.
package mongostore
