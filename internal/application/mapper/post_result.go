package mapper

import (
	"social-service/internal/application/common"
	"social-service/internal/domain/entities"
)

func NewPostResultFromEntity(post *entities.Post) *common.PostResult {
	return &common.PostResult{
		Id:        post.Id,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
		CreatorId: post.CreatorId,
		Content:   post.Content,
	}
}

func NewPostResultsFromEntities(posts []*entities.Post) []*common.PostResult {
	results := make([]*common.PostResult, 0, len(posts))
	for _, post := range posts {
		results = append(results, NewPostResultFromEntity(post))
	}
	return results
}
