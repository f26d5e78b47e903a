package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"social-service/internal/application/command"
	"social-service/internal/application/interfaces"
	"social-service/internal/domain/entities"
)

type MemberHandler struct {
	memberService interfaces.MemberService
}

func NewMemberHandler(memberService interfaces.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

type createMemberRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

func (r *createMemberRequest) validate() error {
	if r.Email == "" || len(r.Email) > entities.MaxEmailLength || !strings.Contains(r.Email, "@") {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if r.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid password")
	}
	if r.Nickname == "" || len(r.Nickname) > entities.MaxNicknameLength {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid nickname")
	}
	return nil
}

type updateMemberRequest struct {
	Nickname *string `json:"nickname"`
}

func (r *updateMemberRequest) validate() error {
	if r.Nickname != nil && (*r.Nickname == "" || len(*r.Nickname) > entities.MaxNicknameLength) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid nickname")
	}
	return nil
}

func (h *MemberHandler) CreateMember(c echo.Context) error {
	var body createMemberRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := body.validate(); err != nil {
		return err
	}

	result, err := h.memberService.CreateMember(c.Request().Context(), &command.CreateMemberCommand{
		Email:    body.Email,
		Password: body.Password,
		Nickname: body.Nickname,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, result)
}

func (h *MemberHandler) GetMember(c echo.Context) error {
	memberId, err := pathId(c, "memberId")
	if err != nil {
		return err
	}

	result, err := h.memberService.GetMember(c.Request().Context(), memberId)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *MemberHandler) UpdateMember(c echo.Context) error {
	memberId, err := pathId(c, "memberId")
	if err != nil {
		return err
	}

	var body updateMemberRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := body.validate(); err != nil {
		return err
	}

	err = h.memberService.UpdateMember(c.Request().Context(), &command.UpdateMemberCommand{
		MemberId: memberId,
		Nickname: body.Nickname,
	})
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}

func (h *MemberHandler) DeleteMember(c echo.Context) error {
	memberId, err := pathId(c, "memberId")
	if err != nil {
		return err
	}

	if err := h.memberService.DeleteMember(c.Request().Context(), memberId); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}
