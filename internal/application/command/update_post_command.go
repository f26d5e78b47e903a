package command

// Content is optional; nil means "leave the content unchanged".
type UpdatePostCommand struct {
	MemberId int64   `json:"member_id"`
	PostId   int64   `json:"post_id"`
	Content  *string `json:"content,omitempty"`
}
