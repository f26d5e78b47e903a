package interfaces

import (
	"context"

	"social-service/internal/application/query"
)

type FeedService interface {
	GetFollowingFeed(ctx context.Context, memberId int64, pageSize int, cursor int64) (*query.FeedQueryResult, error)
}
