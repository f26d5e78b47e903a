package postgres

import "time"

// DeletedAt is a plain nullable timestamp, not gorm.DeletedAt: the tombstone
// filter must stay an explicit predicate at every call site (see notDeleted)
// instead of a default scope the reader cannot see.

type MemberModel struct {
	Id        int64  `gorm:"primaryKey"`
	Email     string `gorm:"size:100;not null;uniqueIndex:uq_members_email"`
	Password  string `gorm:"not null"`
	Nickname  string `gorm:"size:30;not null;uniqueIndex:uq_members_nickname"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`
}

func (MemberModel) TableName() string {
	return "members"
}

type PostModel struct {
	Id        int64  `gorm:"primaryKey"`
	CreatorId int64  `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`
}

func (PostModel) TableName() string {
	return "posts"
}

// FollowModel's primary key is the ordered pair itself; the duplicate-edge
// guard is the primary-key constraint, there is no surrogate id.
type FollowModel struct {
	FollowerId int64 `gorm:"primaryKey;autoIncrement:false;index"`
	FollowedId int64 `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt  time.Time
}

func (FollowModel) TableName() string {
	return "follows"
}
