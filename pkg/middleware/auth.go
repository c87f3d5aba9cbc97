package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const HeaderUserID = "X-User-ID"

// SessionResolver: session_id 쿠키 값을 유저 ID로 바꾼다
type SessionResolver interface {
	GetUserBySessionID(ctx context.Context, sessionID string) (string, error)
}

// SessionMiddleware는 쿠키의 세션으로 유저를 찾아 X-User-ID 헤더에 넣는다
func SessionMiddleware(sessions SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 헬스체크, 메트릭은 인증 없이 접근
			if strings.HasPrefix(c.Path(), "/health") || strings.HasPrefix(c.Path(), "/metrics") {
				return next(c)
			}

			// 쿠키에서 세션 ID 추출
			cookie, err := c.Cookie("session_id")
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized: No session ID provided"})
			}

			// Redis에서 세션 ID로 사용자 정보 조회
			userID, err := sessions.GetUserBySessionID(c.Request().Context(), cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized: Invalid session ID"})
			}

			// 사용자 ID를 헤더에 저장
			c.Request().Header.Set(HeaderUserID, userID)

			return next(c)
		}
	}
}
