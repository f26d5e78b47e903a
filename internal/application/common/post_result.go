package common

import "time"

type PostResult struct {
	Id        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatorId int64     `json:"creator_id"`
	Content   string    `json:"content"`
}
