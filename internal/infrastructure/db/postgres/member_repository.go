package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"social-service/internal/domain/apperrors"
	"social-service/internal/domain/entities"
	"social-service/internal/domain/repositories"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) repositories.MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(ctx context.Context, member *entities.ValidatedMember) (*entities.Member, error) {
	memberEntity := member.GetMember()

	memberModel := MemberModel{
		Email:     memberEntity.Email,
		Password:  memberEntity.Password,
		Nickname:  memberEntity.Nickname,
		CreatedAt: memberEntity.CreatedAt,
		UpdatedAt: memberEntity.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&memberModel).Error; err != nil {
		return nil, translateMemberConstraint(err)
	}

	return r.mapToEntity(&memberModel), nil
}

func (r *MemberRepository) FindById(ctx context.Context, id int64) (*entities.Member, error) {
	var memberModel MemberModel
	err := r.db.WithContext(ctx).
		Scopes(notDeleted).
		Where("id = ?", id).
		First(&memberModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&memberModel), nil
}

func (r *MemberRepository) FindByEmail(ctx context.Context, email string) (*entities.Member, error) {
	return r.findByField(ctx, "email", email)
}

func (r *MemberRepository) FindByNickname(ctx context.Context, nickname string) (*entities.Member, error) {
	return r.findByField(ctx, "nickname", nickname)
}

func (r *MemberRepository) Update(ctx context.Context, member *entities.ValidatedMember) (*entities.Member, error) {
	memberEntity := member.GetMember()

	err := r.db.WithContext(ctx).
		Model(&MemberModel{}).
		Where("id = ?", memberEntity.Id).
		Updates(map[string]interface{}{
			"nickname":   memberEntity.Nickname,
			"updated_at": memberEntity.UpdatedAt,
		}).Error
	if err != nil {
		return nil, translateMemberConstraint(err)
	}

	return r.FindById(ctx, memberEntity.Id)
}

func (r *MemberRepository) SoftDelete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&MemberModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())

	return result.RowsAffected, result.Error
}

func (r *MemberRepository) findByField(ctx context.Context, field, value string) (*entities.Member, error) {
	var memberModel MemberModel
	err := r.db.WithContext(ctx).
		Scopes(notDeleted).
		Where(field+" = ?", value).
		First(&memberModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&memberModel), nil
}

func (r *MemberRepository) mapToEntity(memberModel *MemberModel) *entities.Member {
	return &entities.Member{
		Id:        memberModel.Id,
		CreatedAt: memberModel.CreatedAt,
		UpdatedAt: memberModel.UpdatedAt,
		Email:     memberModel.Email,
		Password:  memberModel.Password,
		Nickname:  memberModel.Nickname,
	}
}

// translateMemberConstraint maps the structured unique-violation signal onto
// the matching conflict. The constraint is the authoritative duplicate guard;
// the services' pre-checks are only an optimization.
func translateMemberConstraint(err error) error {
	constraint, ok := uniqueViolation(err)
	if !ok {
		return err
	}

	switch {
	case strings.Contains(constraint, "email"):
		return apperrors.ErrEmailTaken
	case strings.Contains(constraint, "nickname"):
		return apperrors.ErrNicknameTaken
	}
	return err
}
