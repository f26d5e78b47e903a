package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"social-service/internal/application/command"
	"social-service/internal/application/interfaces"
)

type PostHandler struct {
	postService interfaces.PostService
	feedService interfaces.FeedService
}

func NewPostHandler(postService interfaces.PostService, feedService interfaces.FeedService) *PostHandler {
	return &PostHandler{postService: postService, feedService: feedService}
}

type createPostRequest struct {
	Content string `json:"content"`
}

type updatePostRequest struct {
	Content *string `json:"content"`
}

func (h *PostHandler) CreatePost(c echo.Context) error {
	memberId, err := queryId(c, "memberId")
	if err != nil {
		return err
	}

	var body createPostRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if body.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid content")
	}

	result, err := h.postService.CreatePost(c.Request().Context(), &command.CreatePostCommand{
		MemberId: memberId,
		Content:  body.Content,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, result)
}

func (h *PostHandler) GetPost(c echo.Context) error {
	postId, err := pathId(c, "postId")
	if err != nil {
		return err
	}

	result, err := h.postService.GetPost(c.Request().Context(), postId)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *PostHandler) UpdatePost(c echo.Context) error {
	postId, err := pathId(c, "postId")
	if err != nil {
		return err
	}
	memberId, err := queryId(c, "memberId")
	if err != nil {
		return err
	}

	var body updatePostRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if body.Content != nil && *body.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid content")
	}

	err = h.postService.UpdatePost(c.Request().Context(), &command.UpdatePostCommand{
		MemberId: memberId,
		PostId:   postId,
		Content:  body.Content,
	})
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}

func (h *PostHandler) DeletePost(c echo.Context) error {
	postId, err := pathId(c, "postId")
	if err != nil {
		return err
	}
	memberId, err := queryId(c, "memberId")
	if err != nil {
		return err
	}

	if err := h.postService.DeletePost(c.Request().Context(), memberId, postId); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}

func (h *PostHandler) ListMemberPosts(c echo.Context) error {
	memberId, err := pathId(c, "memberId")
	if err != nil {
		return err
	}
	pageSize, cursor, err := pageParams(c)
	if err != nil {
		return err
	}

	result, err := h.postService.ListByAuthor(c.Request().Context(), memberId, pageSize, cursor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *PostHandler) GetFollowingFeed(c echo.Context) error {
	memberId, err := queryId(c, "memberId")
	if err != nil {
		return err
	}
	pageSize, cursor, err := pageParams(c)
	if err != nil {
		return err
	}

	result, err := h.feedService.GetFollowingFeed(c.Request().Context(), memberId, pageSize, cursor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
