package handler

import (
	"net/http"

	"bandhan/pkg/apperr"
	"bandhan/pkg/dto"
	"bandhan/services/match/service"

	"github.com/labstack/echo/v4"
)

type InterestHandler struct {
	interestService *service.InterestService
}

func NewInterestHandler(interestService *service.InterestService) *InterestHandler {
	return &InterestHandler{interestService: interestService}
}

// 좋아요. 상대도 나를 좋아요 했다면 isMutual = true
func (h *InterestHandler) Like(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.LikeRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.Validation("invalid request body"))
	}

	res, err := h.interestService.Like(c.Request().Context(), userID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

// 숏리스트 추가
func (h *InterestHandler) AddShortlist(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.ShortlistRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.Validation("invalid request body"))
	}

	res, err := h.interestService.Shortlist(c.Request().Context(), userID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

// 숏리스트 삭제
func (h *InterestHandler) RemoveShortlist(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.interestService.RemoveShortlist(c.Request().Context(), userID, c.Param("userId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Shortlist removed successfully"})
}

// 나를 좋아요 한 사람 목록
func (h *InterestHandler) GetLikedBy(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	list, err := h.interestService.LikedBy(c.Request().Context(), userID, getPageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// 내가 좋아요 한 목록
func (h *InterestHandler) GetMyLikes(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	list, err := h.interestService.MyLikes(c.Request().Context(), userID, getPageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// 상호 매칭 목록
func (h *InterestHandler) GetMutual(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	list, err := h.interestService.Mutual(c.Request().Context(), userID, getPageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// 숏리스트 목록
func (h *InterestHandler) GetShortlists(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	list, err := h.interestService.Shortlists(c.Request().Context(), userID, getPageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// 특정 유저와의 관심 상태
func (h *InterestHandler) GetStatus(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	status, err := h.interestService.Status(c.Request().Context(), userID, c.Param("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, status)
}
