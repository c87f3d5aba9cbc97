package dto

import "bandhan/pkg/helper"

// PageQuery: page는 1부터, limit는 DefaultPageLimit ~ MaxPageLimit
type PageQuery struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (q PageQuery) Offset() int {
	return helper.Offset(q.Page, q.Limit)
}

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

func NewPagination(q PageQuery, totalCount int64) Pagination {
	totalPages := helper.TotalPages(totalCount, q.Limit)
	return Pagination{
		CurrentPage: q.Page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		HasNext:     q.Page < totalPages,
		HasPrev:     q.Page > 1,
	}
}

// PaginatedList는 목록 응답 공통 봉투
type PaginatedList[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

func NewPaginatedList[T any](items []T, q PageQuery, totalCount int64) PaginatedList[T] {
	if items == nil {
		items = []T{}
	}
	return PaginatedList[T]{Items: items, Pagination: NewPagination(q, totalCount)}
}
