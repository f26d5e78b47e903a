package services

import (
	"context"

	"social-service/internal/application/common"
	"social-service/internal/application/interfaces"
	"social-service/internal/application/query"
	"social-service/internal/infrastructure/logger"
)

// FeedService composes the follow graph with the post timeline: followee ids
// first, then one multi-author page. The two-step fetch is deliberate; no
// join crosses the service boundary.
type FeedService struct {
	followService interfaces.FollowService
	postService   interfaces.PostService
	log           *logger.Logger
}

func NewFeedService(followService interfaces.FollowService, postService interfaces.PostService, log *logger.Logger) interfaces.FeedService {
	return &FeedService{
		followService: followService,
		postService:   postService,
		log:           log.With("service", "feed"),
	}
}

func (s *FeedService) GetFollowingFeed(ctx context.Context, memberId int64, pageSize int, cursor int64) (*query.FeedQueryResult, error) {
	followeeIds, err := s.followService.ListFolloweeIds(ctx, memberId)
	if err != nil {
		return nil, err
	}

	if len(followeeIds) == 0 {
		return &query.FeedQueryResult{Posts: []*common.PostResult{}}, nil
	}

	posts, err := s.postService.ListByAuthors(ctx, followeeIds, pageSize, cursor)
	if err != nil {
		return nil, err
	}

	return &query.FeedQueryResult{Posts: posts}, nil
}
