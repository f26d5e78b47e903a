package router

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"social-service/internal/infrastructure/logger"
	"social-service/internal/infrastructure/ratelimit"
)

const requestIdHeader = "X-Request-Id"

// RequestLogger tags every request with an id and logs method, path, status
// and latency once the handler chain returns.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestId := c.Request().Header.Get(requestIdHeader)
			if requestId == "" {
				requestId = uuid.NewString()
			}
			c.Response().Header().Set(requestIdHeader, requestId)

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			log.Info("request",
				"request_id", requestId,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"latency_ms", time.Since(start).Milliseconds(),
			)
			return nil
		}
	}
}

// RateLimit rejects requests over the per-client budget with 429. A limiter
// failure (e.g. Redis unreachable) fails open: the request proceeds.
func RateLimit(limiter ratelimit.Limiter, log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn("rate limiter unavailable", "error", err)
				return next(c)
			}
			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
