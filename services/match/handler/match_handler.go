package handler

import (
	"net/http"

	"bandhan/pkg/apperr"
	"bandhan/pkg/dto"
	"bandhan/services/match/service"

	"github.com/labstack/echo/v4"
)

type MatchHandler struct {
	matchService *service.MatchService
}

func NewMatchHandler(matchService *service.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// 추천 후보 목록 (궁합순)
func (h *MatchHandler) GetSuggestions(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	list, err := h.matchService.Suggestions(c.Request().Context(), userID, getPageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// 조건 검색
func (h *MatchHandler) Search(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	q, err := parseSearchQuery(c)
	if err != nil {
		return respondError(c, err)
	}

	list, err := h.matchService.Search(c.Request().Context(), userID, q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// 쿤들리 궁합 (참고용 점수)
func (h *MatchHandler) KundliMatch(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return respondError(c, err)
	}

	var req dto.KundliRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.Validation("invalid request body"))
	}

	res, err := h.matchService.KundliMatch(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func parseSearchQuery(c echo.Context) (dto.SearchQuery, error) {
	q := dto.SearchQuery{
		PageQuery:  getPageQuery(c),
		Religion:   queryString(c, "religion"),
		Caste:      queryString(c, "caste"),
		Education:  queryString(c, "education"),
		Profession: queryString(c, "profession"),
		City:       queryString(c, "city"),
		Diet:       queryString(c, "diet"),
		Smoking:    queryString(c, "smoking"),
		Drinking:   queryString(c, "drinking"),
		Gender:     queryString(c, "gender"),
		SortBy:     c.QueryParam("sortBy"),
	}

	var err error
	for name, dst := range map[string]**int{
		"ageMin":    &q.AgeMin,
		"ageMax":    &q.AgeMax,
		"heightMin": &q.HeightMin,
		"heightMax": &q.HeightMax,
	} {
		if *dst, err = queryInt(c, name); err != nil {
			return q, err
		}
	}
	if q.KundliMatch, err = queryBool(c, "kundliMatch"); err != nil {
		return q, err
	}
	return q, nil
}
