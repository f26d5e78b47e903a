package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// The domain layer receives already-validated positive integers; these
// helpers are where that boundary contract is enforced.

func pathId(c echo.Context, name string) (int64, error) {
	return positiveId(c.Param(name), name)
}

func queryId(c echo.Context, name string) (int64, error) {
	return positiveId(c.QueryParam(name), name)
}

func positiveId(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return id, nil
}

// pageParams reads pageSize (defaulted and capped here, not in the domain)
// and the optional lastPostId cursor (zero means "from the newest post").
func pageParams(c echo.Context) (int, int64, error) {
	pageSize := defaultPageSize
	if raw := c.QueryParam("pageSize"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "pageSize must be a positive integer")
		}
		pageSize = parsed
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	var cursor int64
	if raw := c.QueryParam("lastPostId"); raw != "" {
		parsed, err := positiveId(raw, "lastPostId")
		if err != nil {
			return 0, 0, err
		}
		cursor = parsed
	}

	return pageSize, cursor, nil
}
