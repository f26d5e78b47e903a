package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"social-service/internal/application/command"
	"social-service/internal/application/interfaces"
	"social-service/internal/application/mapper"
	"social-service/internal/application/query"
	"social-service/internal/domain/apperrors"
	"social-service/internal/domain/entities"
	"social-service/internal/domain/repositories"
	"social-service/internal/infrastructure/logger"
)

type MemberService struct {
	memberRepo repositories.MemberRepository
	log        *logger.Logger
}

func NewMemberService(memberRepo repositories.MemberRepository, log *logger.Logger) interfaces.MemberService {
	return &MemberService{
		memberRepo: memberRepo,
		log:        log.With("service", "member"),
	}
}

func (s *MemberService) CreateMember(ctx context.Context, createCommand *command.CreateMemberCommand) (*query.MemberQueryResult, error) {
	// The two duplicate pre-checks run in parallel and are independent; when
	// both fields are taken, which conflict surfaces is nondeterministic.
	// Either way they are only an optimization: the unique constraints on
	// insert are the authoritative guard.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.checkEmailFree(gctx, createCommand.Email) })
	g.Go(func() error { return s.checkNicknameFree(gctx, createCommand.Nickname) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	newMember := entities.NewMember(createCommand.Email, createCommand.Password, createCommand.Nickname)
	validatedMember, err := entities.NewValidatedMember(newMember)
	if err != nil {
		return nil, err
	}

	createdMember, err := s.memberRepo.Create(ctx, validatedMember)
	if err != nil {
		return nil, err
	}

	s.log.Info("member created", "member_id", createdMember.Id)

	return &query.MemberQueryResult{
		Result: mapper.NewMemberResultFromEntity(createdMember),
	}, nil
}

func (s *MemberService) GetMember(ctx context.Context, memberId int64) (*query.MemberQueryResult, error) {
	member, err := s.getMemberEntity(ctx, memberId)
	if err != nil {
		return nil, err
	}

	return &query.MemberQueryResult{
		Result: mapper.NewMemberResultFromEntity(member),
	}, nil
}

func (s *MemberService) UpdateMember(ctx context.Context, updateCommand *command.UpdateMemberCommand) error {
	member, err := s.getMemberEntity(ctx, updateCommand.MemberId)
	if err != nil {
		return err
	}

	// Absent or unchanged nickname is a no-op and must not trigger a
	// uniqueness check (the member's own row would collide with itself).
	if updateCommand.Nickname == nil || *updateCommand.Nickname == member.Nickname {
		return nil
	}

	if err := s.checkNicknameFree(ctx, *updateCommand.Nickname); err != nil {
		return err
	}

	member.UpdateNickname(*updateCommand.Nickname)
	validatedMember, err := entities.NewValidatedMember(member)
	if err != nil {
		return err
	}

	if _, err := s.memberRepo.Update(ctx, validatedMember); err != nil {
		return err
	}

	return nil
}

func (s *MemberService) DeleteMember(ctx context.Context, memberId int64) error {
	if _, err := s.getMemberEntity(ctx, memberId); err != nil {
		return err
	}

	// The tombstone condition is re-checked at the storage layer: a
	// concurrent delete that got there first leaves zero affected rows.
	affected, err := s.memberRepo.SoftDelete(ctx, memberId)
	if err != nil {
		return err
	}
	if err := apperrors.CheckAffected(affected, apperrors.ErrMemberNotFound); err != nil {
		return err
	}

	s.log.Info("member deleted", "member_id", memberId)
	return nil
}

func (s *MemberService) getMemberEntity(ctx context.Context, memberId int64) (*entities.Member, error) {
	member, err := s.memberRepo.FindById(ctx, memberId)
	if err != nil {
		return nil, err
	}
	if err := apperrors.RequireFound(member != nil, apperrors.ErrMemberNotFound); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *MemberService) checkEmailFree(ctx context.Context, email string) error {
	existing, err := s.memberRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	return apperrors.RequireAbsent(existing != nil, apperrors.ErrEmailTaken)
}

func (s *MemberService) checkNicknameFree(ctx context.Context, nickname string) error {
	existing, err := s.memberRepo.FindByNickname(ctx, nickname)
	if err != nil {
		return err
	}
	return apperrors.RequireAbsent(existing != nil, apperrors.ErrNicknameTaken)
}
