package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"social-service/internal/application/interfaces"
	"social-service/internal/domain/apperrors"
	"social-service/internal/domain/entities"
	"social-service/internal/domain/repositories"
	"social-service/internal/infrastructure/logger"
)

type FollowService struct {
	followRepo    repositories.FollowRepository
	memberService interfaces.MemberService
	log           *logger.Logger
}

func NewFollowService(followRepo repositories.FollowRepository, memberService interfaces.MemberService, log *logger.Logger) interfaces.FollowService {
	return &FollowService{
		followRepo:    followRepo,
		memberService: memberService,
		log:           log.With("service", "follow"),
	}
}

func (s *FollowService) Follow(ctx context.Context, followerId, followedId int64) error {
	// Self-follow is definitionally invalid, so it fails before any lookup.
	if err := apperrors.RequireAllowed(followerId != followedId, apperrors.ErrSelfFollow); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.memberService.GetMember(gctx, followerId)
		return err
	})
	g.Go(func() error {
		_, err := s.memberService.GetMember(gctx, followedId)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// Pre-check is an optimization only; the pair's primary-key constraint on
	// insert decides concurrent duplicates.
	existing, err := s.followRepo.Find(ctx, followerId, followedId)
	if err != nil {
		return err
	}
	if err := apperrors.RequireAbsent(existing != nil, apperrors.ErrAlreadyFollowing); err != nil {
		return err
	}

	validatedFollow, err := entities.NewValidatedFollow(entities.NewFollow(followerId, followedId))
	if err != nil {
		return err
	}

	if err := s.followRepo.Create(ctx, validatedFollow); err != nil {
		return err
	}

	s.log.Info("follow created", "follower_id", followerId, "followed_id", followedId)
	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerId, followedId int64) error {
	if err := apperrors.RequireAllowed(followerId != followedId, apperrors.ErrSelfFollow); err != nil {
		return err
	}

	existing, err := s.followRepo.Find(ctx, followerId, followedId)
	if err != nil {
		return err
	}
	if err := apperrors.RequireFound(existing != nil, apperrors.ErrFollowNotFound); err != nil {
		return err
	}

	// The conditional delete is the authoritative check; a concurrent
	// unfollow that won the race leaves zero affected rows.
	affected, err := s.followRepo.Delete(ctx, followerId, followedId)
	if err != nil {
		return err
	}
	if err := apperrors.CheckAffected(affected, apperrors.ErrFollowNotFound); err != nil {
		return err
	}

	s.log.Info("follow removed", "follower_id", followerId, "followed_id", followedId)
	return nil
}

// ListFolloweeIds does not validate the follower's existence: it is a pure
// graph query, and an unknown follower simply has no edges.
func (s *FollowService) ListFolloweeIds(ctx context.Context, followerId int64) ([]int64, error) {
	follows, err := s.followRepo.FindByFollowerId(ctx, followerId)
	if err != nil {
		return nil, err
	}

	followeeIds := make([]int64, 0, len(follows))
	for _, follow := range follows {
		followeeIds = append(followeeIds, follow.FollowedId)
	}
	return followeeIds, nil
}
