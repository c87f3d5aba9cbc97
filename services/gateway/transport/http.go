package transport

import (
	"net/http"

	appmiddleware "bandhan/pkg/middleware"
	"bandhan/services/gateway/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func NewRouter(gatewayHandler *handler.GatewayHandler, sessions appmiddleware.SessionResolver) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(appmiddleware.RequestLogger())

	// CORS 설정
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 클라이언트가 보낸 X-User-ID는 믿지 않는다
	e.Pre(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Request().Header.Del(appmiddleware.HeaderUserID)
			return next(c)
		}
	})
	e.Use(appmiddleware.SessionMiddleware(sessions))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.Any("/*", gatewayHandler.ProxyService)

	return e
}
