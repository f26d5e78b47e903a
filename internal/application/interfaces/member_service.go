package interfaces

import (
	"context"

	"social-service/internal/application/command"
	"social-service/internal/application/query"
)

type MemberService interface {
	CreateMember(ctx context.Context, createCommand *command.CreateMemberCommand) (*query.MemberQueryResult, error)
	GetMember(ctx context.Context, memberId int64) (*query.MemberQueryResult, error)
	UpdateMember(ctx context.Context, updateCommand *command.UpdateMemberCommand) error
	DeleteMember(ctx context.Context, memberId int64) error
}
