package sessiongate

import (
	"context"
	"errors"
	"fmt"

	"github.com/sessiongate/sessiongate/credential"
)

// Register creates a new account and returns its generated user id.
//
// Empty inputs fail with [ErrMissingIdentifier] or [ErrMissingSecret]; an
// identifier already present in the store fails with [ErrAlreadyExists].
// The existence pre-check and the insert are two store calls, so the store's
// own uniqueness constraint is the authoritative guard — a constraint
// violation surfaced by Insert maps to [ErrAlreadyExists] as well.
//
// On success a [EventUserCreated] event carrying the new user id is emitted
// asynchronously for external work queues. Enqueue failures never fail the
// registration.
func (e *Engine) Register(ctx context.Context, identifier, secret string) (string, error) {
	if e == nil || e.userStore == nil {
		return "", ErrEngineNotReady
	}

	if identifier == "" {
		e.metricInc(MetricRegisterFailure)
		e.emitEvent(ctx, EventRegisterFailure, false, "", ErrMissingIdentifier, func() map[string]string {
			return map[string]string{
				"reason": "empty_identifier",
			}
		})
		return "", ErrMissingIdentifier
	}
	if secret == "" {
		e.metricInc(MetricRegisterFailure)
		e.emitEvent(ctx, EventRegisterFailure, false, "", ErrMissingSecret, func() map[string]string {
			return map[string]string{
				"identifier": identifier,
				"reason":     "empty_secret",
			}
		})
		return "", ErrMissingSecret
	}

	_, err := e.userStore.FindByIdentifier(ctx, identifier)
	switch {
	case err == nil:
		e.metricInc(MetricRegisterDuplicate)
		e.emitEvent(ctx, EventRegisterFailure, false, "", ErrAlreadyExists, func() map[string]string {
			return map[string]string{
				"identifier": identifier,
				"reason":     "existing_identifier",
			}
		})
		return "", ErrAlreadyExists
	case !errors.Is(err, ErrUserNotFound):
		return "", fmt.Errorf("%w: %v", ErrUserStoreUnavailable, err)
	}

	userID, err := e.userStore.Insert(ctx, identifier, credential.Digest(secret))
	if err != nil {
		// Two concurrent registrations can both pass the existence check;
		// the storage-level uniqueness constraint settles the race.
		if errors.Is(err, ErrDuplicateIdentifier) {
			e.metricInc(MetricRegisterDuplicate)
			e.emitEvent(ctx, EventRegisterFailure, false, "", ErrAlreadyExists, func() map[string]string {
				return map[string]string{
					"identifier": identifier,
					"reason":     "constraint_violation",
				}
			})
			return "", ErrAlreadyExists
		}
		return "", fmt.Errorf("%w: %v", ErrUserStoreUnavailable, err)
	}

	e.metricInc(MetricRegisterSuccess)
	e.emitEvent(ctx, EventUserCreated, true, userID, nil, func() map[string]string {
		return map[string]string{
			"identifier": identifier,
		}
	})

	return userID, nil
}
