package repositories

import (
	"context"

	"social-service/internal/domain/entities"
)

// MemberRepository is the persistence gateway for members. Lookups exclude
// soft-deleted rows. Create and Update translate a unique-constraint
// violation on email or nickname into the matching apperrors conflict; a
// missing row is reported as (nil, nil), never as an error.
type MemberRepository interface {
	Create(ctx context.Context, member *entities.ValidatedMember) (*entities.Member, error)
	FindById(ctx context.Context, id int64) (*entities.Member, error)
	FindByEmail(ctx context.Context, email string) (*entities.Member, error)
	FindByNickname(ctx context.Context, nickname string) (*entities.Member, error)
	Update(ctx context.Context, member *entities.ValidatedMember) (*entities.Member, error)
	// SoftDelete tombstones the row only if it is not already tombstoned and
	// returns the number of affected rows.
	SoftDelete(ctx context.Context, id int64) (int64, error)
}
