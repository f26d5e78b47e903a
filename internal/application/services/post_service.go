package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"social-service/internal/application/command"
	"social-service/internal/application/common"
	"social-service/internal/application/interfaces"
	"social-service/internal/application/mapper"
	"social-service/internal/application/query"
	"social-service/internal/domain/apperrors"
	"social-service/internal/domain/entities"
	"social-service/internal/domain/repositories"
	"social-service/internal/infrastructure/logger"
)

type PostService struct {
	postRepo      repositories.PostRepository
	memberService interfaces.MemberService
	log           *logger.Logger
}

func NewPostService(postRepo repositories.PostRepository, memberService interfaces.MemberService, log *logger.Logger) interfaces.PostService {
	return &PostService{
		postRepo:      postRepo,
		memberService: memberService,
		log:           log.With("service", "post"),
	}
}

func (s *PostService) CreatePost(ctx context.Context, createCommand *command.CreatePostCommand) (*query.PostQueryResult, error) {
	if _, err := s.memberService.GetMember(ctx, createCommand.MemberId); err != nil {
		return nil, err
	}

	newPost := entities.NewPost(createCommand.MemberId, createCommand.Content)
	validatedPost, err := entities.NewValidatedPost(newPost)
	if err != nil {
		return nil, err
	}

	createdPost, err := s.postRepo.Create(ctx, validatedPost)
	if err != nil {
		return nil, err
	}

	s.log.Info("post created", "post_id", createdPost.Id, "creator_id", createdPost.CreatorId)

	return &query.PostQueryResult{
		Result: mapper.NewPostResultFromEntity(createdPost),
	}, nil
}

func (s *PostService) GetPost(ctx context.Context, postId int64) (*query.PostQueryResult, error) {
	post, err := s.getPostEntity(ctx, postId)
	if err != nil {
		return nil, err
	}

	return &query.PostQueryResult{
		Result: mapper.NewPostResultFromEntity(post),
	}, nil
}

func (s *PostService) UpdatePost(ctx context.Context, updateCommand *command.UpdatePostCommand) error {
	post, err := s.getOwnedPost(ctx, updateCommand.MemberId, updateCommand.PostId)
	if err != nil {
		return err
	}

	// Absent or identical content is a no-op.
	if updateCommand.Content == nil || *updateCommand.Content == post.Content {
		return nil
	}

	post.UpdateContent(*updateCommand.Content)
	validatedPost, err := entities.NewValidatedPost(post)
	if err != nil {
		return err
	}

	if _, err := s.postRepo.Update(ctx, validatedPost); err != nil {
		return err
	}

	return nil
}

func (s *PostService) DeletePost(ctx context.Context, memberId, postId int64) error {
	if _, err := s.getOwnedPost(ctx, memberId, postId); err != nil {
		return err
	}

	// Conditional tombstone: a concurrent delete that won the race leaves
	// zero affected rows and must surface as not-found.
	affected, err := s.postRepo.SoftDelete(ctx, postId)
	if err != nil {
		return err
	}
	if err := apperrors.CheckAffected(affected, apperrors.ErrPostNotFound); err != nil {
		return err
	}

	s.log.Info("post deleted", "post_id", postId)
	return nil
}

func (s *PostService) ListByAuthor(ctx context.Context, memberId int64, pageSize int, cursor int64) (*query.PostPageResult, error) {
	if _, err := s.memberService.GetMember(ctx, memberId); err != nil {
		return nil, err
	}

	// Page and count are fetched independently; under concurrent writes the
	// count may disagree with what the next page returns.
	var (
		posts      []*entities.Post
		totalCount int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = s.postRepo.FindPageByCreatorId(gctx, memberId, pageSize, cursor)
		return err
	})
	g.Go(func() error {
		var err error
		totalCount, err = s.postRepo.CountByCreatorId(gctx, memberId)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &query.PostPageResult{
		Posts:      mapper.NewPostResultsFromEntities(posts),
		TotalCount: totalCount,
	}, nil
}

func (s *PostService) ListByAuthors(ctx context.Context, memberIds []int64, pageSize int, cursor int64) ([]*common.PostResult, error) {
	posts, err := s.postRepo.FindPageByCreatorIds(ctx, memberIds, pageSize, cursor)
	if err != nil {
		return nil, err
	}

	return mapper.NewPostResultsFromEntities(posts), nil
}

func (s *PostService) getPostEntity(ctx context.Context, postId int64) (*entities.Post, error) {
	post, err := s.postRepo.FindById(ctx, postId)
	if err != nil {
		return nil, err
	}
	if err := apperrors.RequireFound(post != nil, apperrors.ErrPostNotFound); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) getOwnedPost(ctx context.Context, memberId, postId int64) (*entities.Post, error) {
	post, err := s.getPostEntity(ctx, postId)
	if err != nil {
		return nil, err
	}
	if err := apperrors.RequireAllowed(post.IsCreator(memberId), apperrors.ErrNotPostCreator); err != nil {
		return nil, err
	}
	return post, nil
}
