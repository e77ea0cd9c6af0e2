package sessiongate

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAuthenticateResolveRoundTrip(t *testing.T) {
	te, done := newTestEngine(t)
	defer done()
	ctx := context.Background()

	user := te.users.seed("bob@dylan.com", "toto1234!")

	token, err := te.engine.Authenticate(ctx, basicBlob("bob@dylan.com", "toto1234!"))
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	userID, err := te.engine.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("expected user %q, got %q", user.ID, userID)
	}
}

func TestAuthenticateInvalidCredentialsIndistinguishable(t *testing.T) {
	te, done := newTestEngine(t)
	defer done()
	ctx := context.Background()

	te.users.seed("bob@dylan.com", "toto1234!")

	// Wrong secret and unknown identifier must yield the same error.
	_, wrongSecret := te.engine.Authenticate(ctx, basicBlob("bob@dylan.com", "nope"))
	_, unknownUser := te.engine.Authenticate(ctx, basicBlob("ghost@dylan.com", "toto1234!"))

	if !errors.Is(wrongSecret, ErrInvalidCredentials) {
		t.Fatalf("wrong secret: expected ErrInvalidCredentials, got %v", wrongSecret)
	}
	if !errors.Is(unknownUser, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
	if wrongSecret.Error() != unknownUser.Error() {
		t.Fatalf("failure causes must be indistinguishable: %q vs %q", wrongSecret, unknownUser)
	}
}

func TestAuthenticateMalformedBlob(t *testing.T) {
	te, done := newTestEngine(t)
	defer done()
	ctx := context.Background()

	for _, blob := range []string{"", "!!!not-base64!!!", "Zm9v"} {
		if _, err := te.engine.Authenticate(ctx, blob); !errors.Is(err, ErrMalformedCredential) {
			t.Fatalf("blob %q: expected ErrMalformedCredential, got %v", blob, err)
		}
	}
}

func TestAuthenticateMintsDistinctTokens(t *testing.T) {
	te, done := newTestEngine(t)
	defer done()
	ctx := context.Background()

	user := te.users.seed("bob@dylan.com", "toto1234!")

	first, err := te.engine.Authenticate(ctx, basicBlob("bob@dylan.com", "toto1234!"))
	if err != nil {
		t.Fatalf("first authenticate: %v", err)
	}
	second, err := te.engine.Authenticate(ctx, basicBlob("bob@dylan.com", "toto1234!"))
	if err != nil {
		t.Fatalf("second authenticate: %v", err)
	}
	if first == second {
		t.Fatal("each authentication must mint its own token")
	}

	for _, token := range []string{first, second} {
		userID, err := te.engine.Resolve(ctx, token)
		if err != nil {
			t.Fatalf("resolve %q: %v", token, err)
		}
		if userID != user.ID {
			t.Fatalf("expected %q, got %q", user.ID, userID)
		}
	}

	// Revoking one session leaves the sibling alive.
	if err := te.engine.Revoke(ctx, first); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := te.engine.Resolve(ctx, second); err != nil {
		t.Fatalf("sibling session must survive: %v", err)
	}
}

func TestResolveUnknownToken(t *testing.T) {
	te, done := newTestEngine(t)
	defer done()

	if _, err := te.engine.Resolve(context.Background(), "never-issued"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestResolveAfterExpiry(t *testing.T) {
	te, done := newTestEngine(t)
	defer done()
	ctx := context.Background()

	te.users.seed("bob@dylan.com", "toto1234!")
	token, err := te.engine.Authenticate(ctx, basicBlob("bob@dylan.com", "toto1234!"))
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	te.mr.FastForward(SessionTTL + time.Hour)

	if _, err := te.engine.Resolve(ctx, token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after expiry, got %v", err)
	}
}

func TestResolveDoesNotExtendTTL(t *testing.T) {
	te, done := newTestEngine(t)
	defer done()
	ctx := context.Background()

	te.users.seed("bob@dylan.com", "toto1234!")
	token, err := te.engine.Authenticate(ctx, basicBlob("bob@dylan.com", "toto1234!"))
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	te.mr.FastForward(SessionTTL / 2)
	for i := 0; i < 3; i++ {
		if _, err := te.engine.Resolve(ctx, token); err != nil {
			t.Fatalf("resolve %d: %v", i, err)
		}
	}

	if got := te.mr.TTL("auth_" + token); got != SessionTTL/2 {
		t.Fatalf("resolution must not renew the session: expected %s remaining, got %s", SessionTTL/2, got)
	}
}

func TestRevokeThenResolve(t *testing.T) {
	te, done := newTestEngine(t)
	defer done()
	ctx := context.Background()

	te.users.seed("bob@dylan.com", "toto1234!")
	token, err := te.engine.Authenticate(ctx, basicBlob("bob@dylan.com", "toto1234!"))
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	if err := te.engine.Revoke(ctx, token); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := te.engine.Resolve(ctx, token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after revoke, got %v", err)
	}
}

func TestRevokeTwice(t *testing.T) {
	te, done := newTestEngine(t)
	defer done()
	ctx := context.Background()

	te.users.seed("bob@dylan.com", "toto1234!")
	token, err := te.engine.Authenticate(ctx, basicBlob("bob@dylan.com", "toto1234!"))
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	if err := te.engine.Revoke(ctx, token); err != nil {
		t.Fatalf("first revoke: %v", err)
	}
	if err := te.engine.Revoke(ctx, token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("second revoke must report ErrUnauthorized, got %v", err)
	}
}

func TestRevokeUnknownToken(t *testing.T) {
	te, done := newTestEngine(t)
	defer done()

	if err := te.engine.Revoke(context.Background(), "never-issued"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestResolveUser(t *testing.T) {
	te, done := newTestEngine(t)
	defer done()
	ctx := context.Background()

	user := te.users.seed("bob@dylan.com", "toto1234!")
	token, err := te.engine.Authenticate(ctx, basicBlob("bob@dylan.com", "toto1234!"))
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	got, err := te.engine.ResolveUser(ctx, token)
	if err != nil {
		t.Fatalf("resolve user: %v", err)
	}
	if got.ID != user.ID || got.Identifier != "bob@dylan.com" {
		t.Fatalf("unexpected record %+v", got)
	}
}

func TestResolveUserGoneFromStore(t *testing.T) {
	te, done := newTestEngine(t)
	defer done()
	ctx := context.Background()

	user := te.users.seed("bob@dylan.com", "toto1234!")
	token, err := te.engine.Authenticate(ctx, basicBlob("bob@dylan.com", "toto1234!"))
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	// A live token whose user vanished behaves like an invalid token.
	te.users.remove(user.ID)

	if _, err := te.engine.ResolveUser(ctx, token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestCacheDownSurfacesAsUnavailable(t *testing.T) {
	te, done := newTestEngine(t)
	ctx := context.Background()

	te.users.seed("bob@dylan.com", "toto1234!")
	token, err := te.engine.Authenticate(ctx, basicBlob("bob@dylan.com", "toto1234!"))
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	te.mr.Close()
	defer done()

	// Infrastructure failure is not an authorization verdict.
	if _, err := te.engine.Resolve(ctx, token); !errors.Is(err, ErrCacheUnavailable) {
		t.Fatalf("resolve: expected ErrCacheUnavailable, got %v", err)
	}
	if err := te.engine.Revoke(ctx, token); !errors.Is(err, ErrCacheUnavailable) {
		t.Fatalf("revoke: expected ErrCacheUnavailable, got %v", err)
	}
	if _, err := te.engine.Authenticate(ctx, basicBlob("bob@dylan.com", "toto1234!")); !errors.Is(err, ErrCacheUnavailable) {
		t.Fatalf("authenticate: expected ErrCacheUnavailable, got %v", err)
	}

	health := te.engine.Health(ctx)
	if health.CacheAlive {
		t.Fatal("health must report a dead cache")
	}
}

func TestAuthMetrics(t *testing.T) {
	te, done := newTestEngine(t)
	defer done()
	ctx := context.Background()

	te.users.seed("bob@dylan.com", "toto1234!")

	token, err := te.engine.Authenticate(ctx, basicBlob("bob@dylan.com", "toto1234!"))
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	_, _ = te.engine.Authenticate(ctx, basicBlob("bob@dylan.com", "wrong"))
	_, _ = te.engine.Resolve(ctx, token)
	_ = te.engine.Revoke(ctx, token)
	_ = te.engine.Revoke(ctx, token)

	snap := te.engine.MetricsSnapshot()
	expect := map[MetricID]uint64{
		MetricAuthSuccess:    1,
		MetricAuthFailure:    1,
		MetricTokenResolved:  1,
		MetricTokenRevoked:   1,
		MetricRevokeRejected: 1,
	}
	for id, want := range expect {
		if got := snap.Counters[id]; got != want {
			t.Fatalf("metric %d: expected %d, got %d", id, want, got)
		}
	}
}
