package command

// Nickname is optional; nil means "leave the nickname unchanged".
type UpdateMemberCommand struct {
	MemberId int64   `json:"member_id"`
	Nickname *string `json:"nickname,omitempty"`
}
