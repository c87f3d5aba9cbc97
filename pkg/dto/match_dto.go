package dto

import (
	"time"

	"bandhan/pkg/models"
)

const (
	SortByCompatibility = "compatibility"
	SortByNewest        = "newest"
)

// SearchQuery: /matches/search 쿼리 파라미터.
// nil은 "지정 안 함"이라 선호 조건을 그대로 쓰고, "any"는 해당 조건을 해제한다.
type SearchQuery struct {
	PageQuery
	AgeMin      *int
	AgeMax      *int
	HeightMin   *int
	HeightMax   *int
	Religion    *string
	Caste       *string
	Education   *string
	Profession  *string
	City        *string
	Diet        *string
	Smoking     *string
	Drinking    *string
	Gender      *string
	KundliMatch *bool
	SortBy      string
}

// ScoreBreakdown: 실제로 계산에 들어간 항목만 채워진다
type ScoreBreakdown struct {
	Personality *int `json:"personality,omitempty"`
	Preference  *int `json:"preference,omitempty"`
	Lifestyle   *int `json:"lifestyle,omitempty"`
	Location    *int `json:"location,omitempty"`
}

// MatchCandidate는 추천/검색 목록의 한 항목
type MatchCandidate struct {
	Profile            models.Profile `json:"profile"`
	Age                int            `json:"age"`
	CompatibilityScore int            `json:"compatibilityScore"`
	Breakdown          ScoreBreakdown `json:"breakdown"`
	KundliScore        *int           `json:"kundliScore,omitempty"`
	IsLiked            bool           `json:"isLiked"`
	IsShortlisted      bool           `json:"isShortlisted"`
}

type LikeRequest struct {
	LikedUserID string `json:"likedUserId"`
}

type LikeResponse struct {
	ID        uint      `json:"id"`
	LikerID   string    `json:"likerId"`
	LikedID   string    `json:"likedId"`
	IsMutual  bool      `json:"isMutual"`
	CreatedAt time.Time `json:"createdAt"`
}

type ShortlistRequest struct {
	ShortlistedUserID string `json:"shortlistedUserId"`
}

type ShortlistResponse struct {
	ID                uint      `json:"id"`
	UserID            string    `json:"userId"`
	ShortlistedUserID string    `json:"shortlistedUserId"`
	CreatedAt         time.Time `json:"createdAt"`
}

// InterestEntry: 좋아요/숏리스트 목록의 한 항목 (상대 프로필 포함)
type InterestEntry struct {
	Profile   models.Profile `json:"profile"`
	IsMutual  bool           `json:"isMutual"`
	CreatedAt time.Time      `json:"createdAt"`
}

type InterestStatus struct {
	UserID        string `json:"userId"`
	IsLiked       bool   `json:"isLiked"`
	IsShortlisted bool   `json:"isShortlisted"`
	LikedBy       bool   `json:"likedBy"`
	IsMutual      bool   `json:"isMutual"`
}

type KundliRequest struct {
	UserID1 string `json:"userId1"`
	UserID2 string `json:"userId2"`
}

type KundliResponse struct {
	UserID1         string `json:"userId1"`
	UserID2         string `json:"userId2"`
	Score           int    `json:"score"`
	RashiScore      *int   `json:"rashiScore,omitempty"`
	NakshatraScore  *int   `json:"nakshatraScore,omitempty"`
	RashiCompatible bool   `json:"rashiCompatible"`
}
