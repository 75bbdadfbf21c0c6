package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripgenius/internal/repositories"
	"tripgenius/internal/services"
	"tripgenius/pkg/utils"
)

// testClock is a manually advanced clock for expiry tests.
type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time          { return c.now }
func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newSessionFixture() (services.SessionServiceInterface, repositories.SessionRepository, *testClock) {
	repo := repositories.NewSessionRepository()
	clock := newTestClock()
	return services.NewSessionServiceWithClock(repo, clock.Now), repo, clock
}

func TestSessionService_CreateValidateRoundtrip(t *testing.T) {
	svc, _, _ := newSessionFixture()
	ctx := context.Background()

	token, err := svc.Create(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, token, 64)

	userID, err := svc.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestSessionService_Validate_UnknownToken(t *testing.T) {
	svc, _, _ := newSessionFixture()

	_, err := svc.Validate(context.Background(), "no-such-token")

	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestSessionService_Validate_MonotonicUntilExpiry(t *testing.T) {
	svc, _, clock := newSessionFixture()
	ctx := context.Background()

	token, err := svc.Create(ctx, "user-1")
	require.NoError(t, err)

	// Still valid one second later, and one second before expiry.
	clock.Advance(time.Second)
	_, err = svc.Validate(ctx, token)
	assert.NoError(t, err)

	clock.Advance(services.SessionTTL - 2*time.Second)
	_, err = svc.Validate(ctx, token)
	assert.NoError(t, err)

	// Invalid at the expiry instant.
	clock.Advance(time.Second)
	_, err = svc.Validate(ctx, token)
	assert.ErrorIs(t, err, utils.ErrSessionExpired)
}

func TestSessionService_Validate_ExpiredTokenIsDeleted(t *testing.T) {
	svc, repo, clock := newSessionFixture()
	ctx := context.Background()

	token, err := svc.Create(ctx, "user-1")
	require.NoError(t, err)

	clock.Advance(services.SessionTTL + time.Minute)

	_, err = svc.Validate(ctx, token)
	assert.ErrorIs(t, err, utils.ErrSessionExpired)

	// Lazy deletion: a second lookup no longer finds the token at all.
	_, err = svc.Validate(ctx, token)
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestSessionService_Revoke_Idempotent(t *testing.T) {
	svc, _, _ := newSessionFixture()
	ctx := context.Background()

	token, err := svc.Create(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, token))
	require.NoError(t, svc.Revoke(ctx, token))
	assert.NoError(t, svc.Revoke(ctx, "unknown-token"))

	_, err = svc.Validate(ctx, token)
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestSessionService_Sweep_PurgesWithoutLookup(t *testing.T) {
	svc, repo, clock := newSessionFixture()
	ctx := context.Background()

	expired1, err := svc.Create(ctx, "user-1")
	require.NoError(t, err)
	expired2, err := svc.Create(ctx, "user-2")
	require.NoError(t, err)

	clock.Advance(services.SessionTTL + time.Minute)

	live, err := svc.Create(ctx, "user-3")
	require.NoError(t, err)

	purged, err := svc.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, purged)

	_, err = svc.Validate(ctx, expired1)
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
	_, err = svc.Validate(ctx, expired2)
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)

	userID, err := svc.Validate(ctx, live)
	require.NoError(t, err)
	assert.Equal(t, "user-3", userID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSessionService_ConcurrentSessionsPerUser(t *testing.T) {
	svc, _, _ := newSessionFixture()
	ctx := context.Background()

	first, err := svc.Create(ctx, "user-1")
	require.NoError(t, err)
	second, err := svc.Create(ctx, "user-1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// Minting a second session leaves the first one valid.
	_, err = svc.Validate(ctx, first)
	assert.NoError(t, err)
	_, err = svc.Validate(ctx, second)
	assert.NoError(t, err)
}
