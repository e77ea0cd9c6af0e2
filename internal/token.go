package internal

import "github.com/google/uuid"

// NewSessionToken mints a fresh random session token with 128 bits of
// entropy, rendered in canonical UUID form. Uniqueness relies on entropy
// alone; no existence check against the cache is performed.
func NewSessionToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
