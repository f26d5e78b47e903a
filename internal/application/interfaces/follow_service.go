package interfaces

import "context"

type FollowService interface {
	Follow(ctx context.Context, followerId, followedId int64) error
	Unfollow(ctx context.Context, followerId, followedId int64) error
	// ListFolloweeIds is a pure graph query used by the feed; it intentionally
	// does not check that the follower exists.
	ListFolloweeIds(ctx context.Context, followerId int64) ([]int64, error)
}
