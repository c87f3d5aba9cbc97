package middleware

import (
	"net/http"
	"time"

	"bandhan/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogger: 요청마다 zerolog 한 줄
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}

			evt := logger.Logger.Info()
			if status >= http.StatusInternalServerError {
				evt = logger.Logger.Error().Err(err)
			}
			evt.Str("method", c.Request().Method).
				Str("path", c.Path()).
				Int("status", status).
				Dur("elapsed", time.Since(start)).
				Str("user_id", c.Request().Header.Get(HeaderUserID)).
				Msg("request")
			return err
		}
	}
}
