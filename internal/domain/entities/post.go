package entities

import (
	"errors"
	"time"
)

type Post struct {
	Id        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatorId int64
	Content   string
}

func NewPost(creatorId int64, content string) *Post {
	now := time.Now()
	return &Post{
		CreatedAt: now,
		UpdatedAt: now,
		CreatorId: creatorId,
		Content:   content,
	}
}

func (p *Post) validate() error {
	if p.CreatorId <= 0 {
		return errors.New("creator id must be positive")
	}
	if p.Content == "" {
		return errors.New("content must not be empty")
	}
	return nil
}

func (p *Post) IsCreator(memberId int64) bool {
	return p.CreatorId == memberId
}

func (p *Post) UpdateContent(content string) {
	p.Content = content
	p.UpdatedAt = time.Now()
}
