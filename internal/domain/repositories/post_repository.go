package repositories

import (
	"context"

	"social-service/internal/domain/entities"
)

// PostRepository is the persistence gateway for posts. Lookups and scans
// exclude soft-deleted rows. Pages are ordered by id descending; a cursor of
// zero means "from the newest post", any other value is an exclusive upper
// bound (id < cursor).
type PostRepository interface {
	Create(ctx context.Context, post *entities.ValidatedPost) (*entities.Post, error)
	FindById(ctx context.Context, id int64) (*entities.Post, error)
	Update(ctx context.Context, post *entities.ValidatedPost) (*entities.Post, error)
	// SoftDelete tombstones the row only if it is not already tombstoned and
	// returns the number of affected rows.
	SoftDelete(ctx context.Context, id int64) (int64, error)
	FindPageByCreatorId(ctx context.Context, creatorId int64, pageSize int, cursor int64) ([]*entities.Post, error)
	FindPageByCreatorIds(ctx context.Context, creatorIds []int64, pageSize int, cursor int64) ([]*entities.Post, error)
	CountByCreatorId(ctx context.Context, creatorId int64) (int64, error)
}
