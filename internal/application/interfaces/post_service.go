package interfaces

import (
	"context"

	"social-service/internal/application/command"
	"social-service/internal/application/common"
	"social-service/internal/application/query"
)

type PostService interface {
	CreatePost(ctx context.Context, createCommand *command.CreatePostCommand) (*query.PostQueryResult, error)
	GetPost(ctx context.Context, postId int64) (*query.PostQueryResult, error)
	UpdatePost(ctx context.Context, updateCommand *command.UpdatePostCommand) error
	DeletePost(ctx context.Context, memberId, postId int64) error
	// ListByAuthor pages one author's timeline newest-first and returns the
	// independently computed total count. The author must exist.
	ListByAuthor(ctx context.Context, memberId int64, pageSize int, cursor int64) (*query.PostPageResult, error)
	// ListByAuthors is the multi-author read path used by the feed. It is a
	// pure page query: no existence checks and no count.
	ListByAuthors(ctx context.Context, memberIds []int64, pageSize int, cursor int64) ([]*common.PostResult, error)
}
