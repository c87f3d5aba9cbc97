package transport

import (
	"net/http"

	"bandhan/pkg/metrics"
	appmiddleware "bandhan/pkg/middleware"
	"bandhan/services/match/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter: sessions가 nil이면 게이트웨이가 넣어준 X-User-ID를 그대로 신뢰한다
func NewRouter(matchHandler *handler.MatchHandler, interestHandler *handler.InterestHandler, sessions appmiddleware.SessionResolver) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(appmiddleware.RequestLogger())

	// CORS 설정
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", appmiddleware.HeaderUserID},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if sessions != nil {
		e.Use(appmiddleware.SessionMiddleware(sessions))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	matches := e.Group("/matches")

	// 추천/검색
	matches.GET("/suggestions", matchHandler.GetSuggestions)
	matches.GET("/search", matchHandler.Search)
	matches.POST("/kundli-match", matchHandler.KundliMatch)

	// 좋아요/숏리스트
	matches.POST("/like", interestHandler.Like)
	matches.POST("/shortlist", interestHandler.AddShortlist)
	matches.DELETE("/shortlist/:userId", interestHandler.RemoveShortlist)

	// 목록
	matches.GET("/liked-by", interestHandler.GetLikedBy)
	matches.GET("/my-likes", interestHandler.GetMyLikes)
	matches.GET("/mutual", interestHandler.GetMutual)
	matches.GET("/shortlists", interestHandler.GetShortlists)
	matches.GET("/status/:userId", interestHandler.GetStatus)

	return e
}
