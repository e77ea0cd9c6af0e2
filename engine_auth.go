package sessiongate

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sessiongate/sessiongate/credential"
	"github.com/sessiongate/sessiongate/internal"
)

// Authenticate verifies a transport-encoded credential pair and, on success,
// mints a session token mapped to the matching user for the fixed
// [SessionTTL] window.
//
// encodedBlob is the value following the "Basic " scheme prefix of the
// Authorization header. A decoding failure yields [ErrMalformedCredential];
// an identifier/secret pair matching no stored record yields
// [ErrInvalidCredentials], with no distinction between an unknown user and a
// wrong secret. Cache and store connectivity failures surface as
// [ErrCacheUnavailable] and [ErrUserStoreUnavailable] respectively.
//
// Each call mints an independent token: concurrent authentications for the
// same account produce distinct, independently revocable sessions.
func (e *Engine) Authenticate(ctx context.Context, encodedBlob string) (string, error) {
	if e == nil || e.sessionStore == nil || e.userStore == nil {
		return "", ErrEngineNotReady
	}

	cred, err := credential.Decode(encodedBlob)
	if err != nil {
		e.metricInc(MetricAuthFailure)
		e.emitEvent(ctx, EventAuthFailure, false, "", ErrMalformedCredential, func() map[string]string {
			return map[string]string{
				"reason": "decode",
			}
		})
		return "", ErrMalformedCredential
	}

	digest := credential.Digest(cred.Secret)
	user, err := e.userStore.FindByIdentifierAndDigest(ctx, cred.Identifier, digest)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			e.metricInc(MetricAuthFailure)
			e.emitEvent(ctx, EventAuthFailure, false, "", ErrInvalidCredentials, func() map[string]string {
				return map[string]string{
					"identifier": cred.Identifier,
					"reason":     "credential_mismatch",
				}
			})
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("%w: %v", ErrUserStoreUnavailable, err)
	}

	token, err := internal.NewSessionToken()
	if err != nil {
		e.metricInc(MetricAuthFailure)
		return "", fmt.Errorf("token generation failed: %w", err)
	}

	if err := e.sessionStore.Save(ctx, token, user.ID, SessionTTL); err != nil {
		e.metricInc(MetricAuthFailure)
		return "", fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}

	e.metricInc(MetricAuthSuccess)
	e.emitEvent(ctx, EventAuthSuccess, true, user.ID, nil, func() map[string]string {
		return map[string]string{
			"identifier": cred.Identifier,
		}
	})

	return token, nil
}

// Resolve maps a session token to the user id it was issued for. A token
// with no live cache entry — expired, revoked, or never issued — yields
// [ErrUnauthorized]. Resolution never extends the token's lifetime.
func (e *Engine) Resolve(ctx context.Context, token string) (string, error) {
	if e == nil || e.sessionStore == nil {
		return "", ErrEngineNotReady
	}

	userID, err := e.sessionStore.Get(ctx, token)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			e.metricInc(MetricTokenRejected)
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}

	e.metricInc(MetricTokenResolved)
	return userID, nil
}

// ResolveUser resolves a token and loads the full user record behind it.
// A live token whose user has since disappeared from the store is treated
// as [ErrUnauthorized], matching the token-only path.
func (e *Engine) ResolveUser(ctx context.Context, token string) (*UserRecord, error) {
	if e == nil || e.userStore == nil {
		return nil, ErrEngineNotReady
	}

	userID, err := e.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := e.userStore.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("%w: %v", ErrUserStoreUnavailable, err)
	}

	return user, nil
}

// Revoke destroys the session behind a token. Revoking a token with no live
// cache entry fails with [ErrUnauthorized]: a second revoke of the same
// token reports failure even though the cache state it wants is already in
// place. A revoked token is terminal and never reactivated.
func (e *Engine) Revoke(ctx context.Context, token string) error {
	if e == nil || e.sessionStore == nil {
		return ErrEngineNotReady
	}

	userID, err := e.sessionStore.Get(ctx, token)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			e.metricInc(MetricRevokeRejected)
			return ErrUnauthorized
		}
		return fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}

	if err := e.sessionStore.Delete(ctx, token); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}

	e.metricInc(MetricTokenRevoked)
	e.emitEvent(ctx, EventTokenRevoked, true, userID, nil, nil)

	return nil
}
