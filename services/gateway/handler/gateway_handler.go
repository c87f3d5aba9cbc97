package handler

import (
	"io"
	"net/http"
	"time"

	"bandhan/pkg/helper"
	"bandhan/pkg/logger"

	"github.com/labstack/echo/v4"
)

// hop-by-hop 헤더는 전달하지 않는다
var hopHeaders = map[string]bool{
	"Connection":        true,
	"Keep-Alive":        true,
	"Transfer-Encoding": true,
	"Upgrade":           true,
}

type GatewayHandler struct {
	// 첫 번째 경로 요소 -> 서비스 base URL
	routes map[string]string
	client *http.Client
}

func NewGatewayHandler(routes map[string]string) *GatewayHandler {
	return &GatewayHandler{
		routes: routes,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// ProxyService - API를 프록시해주는 역할
func (h *GatewayHandler) ProxyService(c echo.Context) error {
	// 요청 경로에서 첫 번째 경로 요소를 추출
	firstPath, _ := helper.ExtractFirstPath(c.Request().URL.Path)

	baseURL, ok := h.routes[firstPath]
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown service"})
	}
	targetURL := baseURL + c.Request().URL.Path

	// 쿼리 스트링 추가
	if c.QueryString() != "" {
		targetURL += "?" + c.QueryString()
	}

	// 새로운 요청 생성 (전달받은 HTTP 메서드 유지)
	req, err := http.NewRequestWithContext(c.Request().Context(), c.Request().Method, targetURL, c.Request().Body)
	if err != nil {
		logger.Logger.Error().Err(err).Str("target", targetURL).Msg("❌ Failed to create request")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create request"})
	}

	// 원본 요청 헤더 복사 (X-User-ID는 세션 미들웨어가 넣은 값)
	copyHeaders(req.Header, c.Request().Header)

	resp, err := h.client.Do(req)
	if err != nil {
		logger.Logger.Error().Err(err).Str("target", targetURL).Msg("❌ Failed to send request")
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Failed to send request"})
	}
	defer resp.Body.Close()

	// 응답 헤더 복사
	copyHeaders(c.Response().Header(), resp.Header)

	// 상태 코드 설정
	c.Response().WriteHeader(resp.StatusCode)

	// 응답 본문을 클라이언트에게 전달
	if _, err := io.Copy(c.Response().Writer, resp.Body); err != nil {
		logger.Logger.Error().Err(err).Str("target", targetURL).Msg("❌ Failed to copy response body")
	}
	return nil
}

func copyHeaders(dst, src http.Header) {
	for key, values := range src {
		if hopHeaders[http.CanonicalHeaderKey(key)] {
			continue
		}
		for _, value := range values {
			dst.Add(key, value)
		}
	}
}
