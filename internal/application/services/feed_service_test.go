package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowingFeedEmptyWhenFollowingNobody(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	aliceId := env.createMember(t, "alice@example.com", "alice")

	feed, err := env.feed.GetFollowingFeed(ctx, aliceId, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, feed.Posts)

	// Same with a cursor: empty page, no error.
	feed, err = env.feed.GetFollowingFeed(ctx, aliceId, 5, 42)
	require.NoError(t, err)
	assert.Empty(t, feed.Posts)
}

func TestFollowingFeedMergesAuthorsById(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	readerId := env.createMember(t, "reader@example.com", "reader")
	bobId := env.createMember(t, "bob@example.com", "bob")
	carolId := env.createMember(t, "carol@example.com", "carol")
	outsiderId := env.createMember(t, "dave@example.com", "dave")

	require.NoError(t, env.follows.Follow(ctx, readerId, bobId))
	require.NoError(t, env.follows.Follow(ctx, readerId, carolId))

	// Interleaved authorship; the feed must merge globally by id, not
	// per author.
	first := env.createPost(t, bobId, "bob 1")
	env.createPost(t, outsiderId, "not in feed")
	second := env.createPost(t, carolId, "carol 1")
	third := env.createPost(t, bobId, "bob 2")

	feed, err := env.feed.GetFollowingFeed(ctx, readerId, 10, 0)
	require.NoError(t, err)
	require.Len(t, feed.Posts, 3)
	assert.Equal(t, third, feed.Posts[0].Id)
	assert.Equal(t, second, feed.Posts[1].Id)
	assert.Equal(t, first, feed.Posts[2].Id)
}

func TestFollowingFeedCursor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	readerId := env.createMember(t, "reader@example.com", "reader")
	bobId := env.createMember(t, "bob@example.com", "bob")
	require.NoError(t, env.follows.Follow(ctx, readerId, bobId))

	postIds := make([]int64, 0, 5)
	for i := 0; i < 5; i++ {
		postIds = append(postIds, env.createPost(t, bobId, "post"))
	}

	page, err := env.feed.GetFollowingFeed(ctx, readerId, 2, postIds[3])
	require.NoError(t, err)
	require.Len(t, page.Posts, 2)
	assert.Equal(t, postIds[2], page.Posts[0].Id)
	assert.Equal(t, postIds[1], page.Posts[1].Id)
}

func TestFollowingFeedExcludesDeletedPosts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	readerId := env.createMember(t, "reader@example.com", "reader")
	bobId := env.createMember(t, "bob@example.com", "bob")
	require.NoError(t, env.follows.Follow(ctx, readerId, bobId))

	keptId := env.createPost(t, bobId, "kept")
	deletedId := env.createPost(t, bobId, "deleted")
	require.NoError(t, env.posts.DeletePost(ctx, bobId, deletedId))

	feed, err := env.feed.GetFollowingFeed(ctx, readerId, 10, 0)
	require.NoError(t, err)
	require.Len(t, feed.Posts, 1)
	assert.Equal(t, keptId, feed.Posts[0].Id)
}
