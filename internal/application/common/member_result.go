package common

import "time"

// MemberResult deliberately has no password field; the stored password never
// leaves the domain layer.
type MemberResult struct {
	Id        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
}
