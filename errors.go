package sessiongate

import "errors"

var (
	// ErrMalformedCredential is returned by [Engine.Authenticate] when the
	// inbound credential blob cannot be decoded into an identifier/secret
	// pair. Callers should surface it identically to [ErrInvalidCredentials].
	ErrMalformedCredential = errors.New("malformed credential")
	// ErrInvalidCredentials is returned by [Engine.Authenticate] when no
	// stored record matches the identifier/digest pair. The same error covers
	// "no such user" and "wrong secret".
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized is returned by the token-path operations when the token
	// is absent from the session cache, whether it expired or never existed.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrCacheUnavailable wraps session cache connectivity failures. It is an
	// infrastructure failure, not an authentication outcome.
	ErrCacheUnavailable = errors.New("session cache unavailable")
	// ErrUserStoreUnavailable wraps user store connectivity failures.
	ErrUserStoreUnavailable = errors.New("user store unavailable")
	// ErrAlreadyExists is returned by [Engine.Register] when the identifier is
	// already present in the user store.
	ErrAlreadyExists = errors.New("identifier already registered")
	// ErrMissingIdentifier is returned by [Engine.Register] on an empty identifier.
	ErrMissingIdentifier = errors.New("missing identifier")
	// ErrMissingSecret is returned by [Engine.Register] on an empty secret.
	ErrMissingSecret = errors.New("missing secret")
	// ErrUserNotFound is the sentinel a [UserStore] must return from its
	// lookup methods when no record matches.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateIdentifier is the sentinel a [UserStore] must return from
	// Insert when a storage-level uniqueness constraint rejects the record.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	// ErrEngineNotReady is returned when an Engine is used before it was
	// constructed through [Builder.Build].
	ErrEngineNotReady = errors.New("engine not initialized")
)
