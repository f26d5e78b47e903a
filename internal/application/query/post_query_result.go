package query

import "social-service/internal/application/common"

type PostQueryResult struct {
	Result *common.PostResult `json:"result"`
}

// PostPageResult is one cursor page of a single author's timeline. TotalCount
// is computed independently of the page and may disagree with it under
// concurrent writes; that divergence is accepted.
type PostPageResult struct {
	Posts      []*common.PostResult `json:"posts"`
	TotalCount int64                `json:"total_count"`
}

// FeedQueryResult is one cursor page of the multi-author following feed.
type FeedQueryResult struct {
	Posts []*common.PostResult `json:"posts"`
}
