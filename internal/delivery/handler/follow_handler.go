package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"social-service/internal/application/interfaces"
)

type FollowHandler struct {
	followService interfaces.FollowService
}

func NewFollowHandler(followService interfaces.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

func (h *FollowHandler) Follow(c echo.Context) error {
	followedId, err := pathId(c, "followedId")
	if err != nil {
		return err
	}
	memberId, err := queryId(c, "memberId")
	if err != nil {
		return err
	}

	if err := h.followService.Follow(c.Request().Context(), memberId, followedId); err != nil {
		return err
	}

	return c.NoContent(http.StatusCreated)
}

func (h *FollowHandler) Unfollow(c echo.Context) error {
	followedId, err := pathId(c, "followedId")
	if err != nil {
		return err
	}
	memberId, err := queryId(c, "memberId")
	if err != nil {
		return err
	}

	if err := h.followService.Unfollow(c.Request().Context(), memberId, followedId); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}

func (h *FollowHandler) ListFollowing(c echo.Context) error {
	memberId, err := queryId(c, "memberId")
	if err != nil {
		return err
	}

	followeeIds, err := h.followService.ListFolloweeIds(c.Request().Context(), memberId)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string][]int64{"following": followeeIds})
}
