package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"social-service/internal/domain/apperrors"
	"social-service/internal/domain/entities"
	"social-service/internal/domain/repositories"
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) repositories.FollowRepository {
	return &FollowRepository{db: db}
}

func (r *FollowRepository) Create(ctx context.Context, follow *entities.ValidatedFollow) error {
	followModel := FollowModel{
		FollowerId: follow.FollowerId,
		FollowedId: follow.FollowedId,
		CreatedAt:  follow.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&followModel).Error; err != nil {
		// Any unique violation on this insert is the pair's primary key.
		if _, ok := uniqueViolation(err); ok {
			return apperrors.ErrAlreadyFollowing
		}
		return err
	}

	return nil
}

func (r *FollowRepository) Find(ctx context.Context, followerId, followedId int64) (*entities.Follow, error) {
	var followModel FollowModel
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerId, followedId).
		First(&followModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&followModel), nil
}

func (r *FollowRepository) Delete(ctx context.Context, followerId, followedId int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerId, followedId).
		Delete(&FollowModel{})

	return result.RowsAffected, result.Error
}

func (r *FollowRepository) FindByFollowerId(ctx context.Context, followerId int64) ([]*entities.Follow, error) {
	var followModels []*FollowModel
	err := r.db.WithContext(ctx).
		Where("follower_id = ?", followerId).
		Find(&followModels).Error
	if err != nil {
		return nil, err
	}

	follows := make([]*entities.Follow, 0, len(followModels))
	for _, followModel := range followModels {
		follows = append(follows, r.mapToEntity(followModel))
	}
	return follows, nil
}

func (r *FollowRepository) mapToEntity(followModel *FollowModel) *entities.Follow {
	return &entities.Follow{
		FollowerId: followModel.FollowerId,
		FollowedId: followModel.FollowedId,
		CreatedAt:  followModel.CreatedAt,
	}
}
