package router

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"social-service/internal/delivery/handler"
	"social-service/internal/infrastructure/logger"
	"social-service/internal/infrastructure/ratelimit"
)

type Handlers struct {
	Member *handler.MemberHandler
	Post   *handler.PostHandler
	Follow *handler.FollowHandler
	Health *handler.HealthHandler
}

// New assembles the Echo instance: middleware, error handler and the v1
// route table.
func New(handlers Handlers, log *logger.Logger, limiter ratelimit.Limiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(log)

	e.Use(middleware.Recover())
	e.Use(RequestLogger(log))
	if limiter != nil {
		e.Use(RateLimit(limiter, log))
	}

	e.GET("/health", handlers.Health.Check)

	v1 := e.Group("/v1")

	members := v1.Group("/members")
	members.POST("", handlers.Member.CreateMember)
	members.GET("/:memberId", handlers.Member.GetMember)
	members.PATCH("/:memberId", handlers.Member.UpdateMember)
	members.DELETE("/:memberId", handlers.Member.DeleteMember)

	posts := v1.Group("/posts")
	posts.POST("", handlers.Post.CreatePost)
	posts.GET("/followings", handlers.Post.GetFollowingFeed)
	posts.GET("/members/:memberId", handlers.Post.ListMemberPosts)
	posts.GET("/:postId", handlers.Post.GetPost)
	posts.PATCH("/:postId", handlers.Post.UpdatePost)
	posts.DELETE("/:postId", handlers.Post.DeletePost)

	follows := v1.Group("/follows")
	follows.GET("", handlers.Follow.ListFollowing)
	follows.POST("/:followedId", handlers.Follow.Follow)
	follows.DELETE("/:followedId", handlers.Follow.Unfollow)

	return e
}
