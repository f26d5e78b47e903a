package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"social-service/internal/domain/entities"
	"social-service/internal/domain/repositories"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) repositories.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *entities.ValidatedPost) (*entities.Post, error) {
	postEntity := post.GetPost()

	postModel := PostModel{
		CreatorId: postEntity.CreatorId,
		Content:   postEntity.Content,
		CreatedAt: postEntity.CreatedAt,
		UpdatedAt: postEntity.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&postModel).Error; err != nil {
		return nil, err
	}

	return r.mapToEntity(&postModel), nil
}

func (r *PostRepository) FindById(ctx context.Context, id int64) (*entities.Post, error) {
	var postModel PostModel
	err := r.db.WithContext(ctx).
		Scopes(notDeleted).
		Where("id = ?", id).
		First(&postModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&postModel), nil
}

func (r *PostRepository) Update(ctx context.Context, post *entities.ValidatedPost) (*entities.Post, error) {
	postEntity := post.GetPost()

	err := r.db.WithContext(ctx).
		Model(&PostModel{}).
		Where("id = ?", postEntity.Id).
		Updates(map[string]interface{}{
			"content":    postEntity.Content,
			"updated_at": postEntity.UpdatedAt,
		}).Error
	if err != nil {
		return nil, err
	}

	return r.FindById(ctx, postEntity.Id)
}

func (r *PostRepository) SoftDelete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&PostModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())

	return result.RowsAffected, result.Error
}

func (r *PostRepository) FindPageByCreatorId(ctx context.Context, creatorId int64, pageSize int, cursor int64) ([]*entities.Post, error) {
	query := r.db.WithContext(ctx).
		Scopes(notDeleted).
		Where("creator_id = ?", creatorId)

	return r.findPage(query, pageSize, cursor)
}

func (r *PostRepository) FindPageByCreatorIds(ctx context.Context, creatorIds []int64, pageSize int, cursor int64) ([]*entities.Post, error) {
	if len(creatorIds) == 0 {
		return []*entities.Post{}, nil
	}

	query := r.db.WithContext(ctx).
		Scopes(notDeleted).
		Where("creator_id IN ?", creatorIds)

	return r.findPage(query, pageSize, cursor)
}

func (r *PostRepository) CountByCreatorId(ctx context.Context, creatorId int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PostModel{}).
		Scopes(notDeleted).
		Where("creator_id = ?", creatorId).
		Count(&count).Error

	return count, err
}

// findPage scans newest-first. The cursor is the id of the last post the
// caller has seen, applied as a strict upper bound so pages stay stable under
// concurrent inserts ahead of it.
func (r *PostRepository) findPage(query *gorm.DB, pageSize int, cursor int64) ([]*entities.Post, error) {
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}

	var postModels []*PostModel
	err := query.
		Order("id DESC").
		Limit(pageSize).
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entities.Post, 0, len(postModels))
	for _, postModel := range postModels {
		posts = append(posts, r.mapToEntity(postModel))
	}
	return posts, nil
}

func (r *PostRepository) mapToEntity(postModel *PostModel) *entities.Post {
	return &entities.Post{
		Id:        postModel.Id,
		CreatedAt: postModel.CreatedAt,
		UpdatedAt: postModel.UpdatedAt,
		CreatorId: postModel.CreatorId,
		Content:   postModel.Content,
	}
}
