package repositories

import (
	"context"

	"social-service/internal/domain/entities"
)

// FollowRepository is the persistence gateway for follow edges. Create
// translates a duplicate-pair constraint violation into
// apperrors.ErrAlreadyFollowing. Edges are hard-deleted, never tombstoned.
type FollowRepository interface {
	Create(ctx context.Context, follow *entities.ValidatedFollow) error
	Find(ctx context.Context, followerId, followedId int64) (*entities.Follow, error)
	// Delete removes the edge and returns the number of affected rows.
	Delete(ctx context.Context, followerId, followedId int64) (int64, error)
	FindByFollowerId(ctx context.Context, followerId int64) ([]*entities.Follow, error)
}
