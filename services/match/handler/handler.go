package handler

import (
	"net/http"
	"strconv"
	"strings"

	"bandhan/pkg/apperr"
	"bandhan/pkg/config"
	"bandhan/pkg/dto"
	"bandhan/pkg/helper"
	"bandhan/pkg/logger"
	"bandhan/pkg/middleware"

	"github.com/labstack/echo/v4"
)

// X-User-ID 헤더에서 유저 ID를 가져오는 유틸 함수. 실패는 respondError로 401.
func getUserID(c echo.Context) (string, error) {
	userIDStr := c.Request().Header.Get(middleware.HeaderUserID)
	if userIDStr == "" {
		return "", apperr.Unauthorized("User ID is required")
	}
	userID, err := helper.ParseUserID(userIDStr, middleware.HeaderUserID)
	if err != nil {
		return "", apperr.Unauthorized("Invalid User ID format")
	}
	return userID, nil
}

// page, limit 파싱. 잘못된 값은 기본값으로.
func getPageQuery(c echo.Context) dto.PageQuery {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = config.DefaultPageLimit
	}
	if limit > config.MaxPageLimit {
		limit = config.MaxPageLimit
	}
	return dto.PageQuery{Page: page, Limit: limit}
}

func queryInt(c echo.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperr.Validation(name + " must be an integer")
	}
	return &v, nil
}

func queryBool(c echo.Context, name string) (*bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperr.Validation(name + " must be true or false")
	}
	return &v, nil
}

func queryString(c echo.Context, name string) *string {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil
	}
	return &raw
}

// 에러 분류에 맞는 상태 코드로 응답. 500은 원인을 로그로만 남긴다.
func respondError(c echo.Context, err error) error {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(logger.LogEventError, "❌ Request failed", map[string]interface{}{
			"path":  c.Path(),
			"error": err.Error(),
		})
	}
	return c.JSON(status, map[string]string{"error": apperr.Message(err)})
}
