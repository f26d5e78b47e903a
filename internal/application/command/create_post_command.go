package command

type CreatePostCommand struct {
	MemberId int64  `json:"member_id"`
	Content  string `json:"content"`
}
