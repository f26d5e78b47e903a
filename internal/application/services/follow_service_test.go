package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-service/internal/domain/apperrors"
)

func TestFollowSelfForbidden(t *testing.T) {
	env := newTestEnv(t)

	err := env.follows.Follow(context.Background(), 7, 7)
	require.ErrorIs(t, err, apperrors.ErrSelfFollow)
	assert.True(t, apperrors.IsForbidden(err))

	// Same rule on unfollow, also before any lookup.
	err = env.follows.Unfollow(context.Background(), 7, 7)
	require.ErrorIs(t, err, apperrors.ErrSelfFollow)
}

func TestFollowUnknownMembers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	aliceId := env.createMember(t, "alice@example.com", "alice")

	require.ErrorIs(t, env.follows.Follow(ctx, aliceId, 999), apperrors.ErrMemberNotFound)
	require.ErrorIs(t, env.follows.Follow(ctx, 999, aliceId), apperrors.ErrMemberNotFound)
}

func TestFollowUnfollowCycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	aliceId := env.createMember(t, "alice@example.com", "alice")
	bobId := env.createMember(t, "bob@example.com", "bob")

	require.NoError(t, env.follows.Follow(ctx, aliceId, bobId))

	// Duplicate follow conflicts.
	require.ErrorIs(t, env.follows.Follow(ctx, aliceId, bobId), apperrors.ErrAlreadyFollowing)

	// The reverse direction is an independent edge.
	require.NoError(t, env.follows.Follow(ctx, bobId, aliceId))

	require.NoError(t, env.follows.Unfollow(ctx, aliceId, bobId))

	// Second unfollow reports not-found.
	require.ErrorIs(t, env.follows.Unfollow(ctx, aliceId, bobId), apperrors.ErrFollowNotFound)

	// Edges may cycle indefinitely.
	require.NoError(t, env.follows.Follow(ctx, aliceId, bobId))
}

func TestFollowConcurrentSamePair(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	aliceId := env.createMember(t, "alice@example.com", "alice")
	bobId := env.createMember(t, "bob@example.com", "bob")

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = env.follows.Follow(ctx, aliceId, bobId)
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, apperrors.ErrAlreadyFollowing):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
}

func TestListFolloweeIds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	aliceId := env.createMember(t, "alice@example.com", "alice")
	bobId := env.createMember(t, "bob@example.com", "bob")
	carolId := env.createMember(t, "carol@example.com", "carol")

	require.NoError(t, env.follows.Follow(ctx, aliceId, bobId))
	require.NoError(t, env.follows.Follow(ctx, aliceId, carolId))

	followeeIds, err := env.follows.ListFolloweeIds(ctx, aliceId)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{bobId, carolId}, followeeIds)
}

func TestListFolloweeIdsUnknownFollower(t *testing.T) {
	env := newTestEnv(t)

	// Intentionally no existence check: an unknown follower simply has no
	// edges.
	followeeIds, err := env.follows.ListFolloweeIds(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, followeeIds)
}
