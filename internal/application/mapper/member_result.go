package mapper

import (
	"social-service/internal/application/common"
	"social-service/internal/domain/entities"
)

func NewMemberResultFromEntity(member *entities.Member) *common.MemberResult {
	return &common.MemberResult{
		Id:        member.Id,
		CreatedAt: member.CreatedAt,
		UpdatedAt: member.UpdatedAt,
		Email:     member.Email,
		Nickname:  member.Nickname,
	}
}
