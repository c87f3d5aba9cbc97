package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// 식습관
const (
	DietVegetarian    = "vegetarian"
	DietNonVegetarian = "non-vegetarian"
	DietEggetarian    = "eggetarian"
	DietVegan         = "vegan"
	DietJain          = "jain"
)

// 흡연/음주 습관
const (
	HabitNo           = "no"
	HabitOccasionally = "occasionally"
	HabitYes          = "yes"
)

// Any는 "제약 없음"을 뜻하는 필터 값
const Any = "any"

// Profile은 유저 한 명의 프로필
type Profile struct {
	UserID               string                                `gorm:"primaryKey;size:36" json:"userId"`
	DisplayName          string                                `gorm:"size:100" json:"displayName"`
	Gender               Gender                                `gorm:"size:10;index" json:"gender"`
	DateOfBirth          time.Time                             `gorm:"type:date;index" json:"dateOfBirth"`
	HeightCm             *int                                  `json:"heightCm,omitempty"`
	WeightKg             *int                                  `json:"weightKg,omitempty"`
	Religion             string                                `gorm:"size:50;index" json:"religion,omitempty"`
	Caste                string                                `gorm:"size:50" json:"caste,omitempty"`
	Diet                 string                                `gorm:"size:20" json:"diet,omitempty"`
	Smoking              string                                `gorm:"size:20" json:"smoking,omitempty"`
	Drinking             string                                `gorm:"size:20" json:"drinking,omitempty"`
	Education            string                                `gorm:"size:100" json:"education,omitempty"`
	Profession           string                                `gorm:"size:100" json:"profession,omitempty"`
	Income               *int64                                `json:"income,omitempty"`
	City                 string                                `gorm:"size:100;index" json:"city,omitempty"`
	Bio                  string                                `gorm:"type:text" json:"bio,omitempty"`
	Photos               datatypes.JSONSlice[string]           `json:"photos,omitempty"`
	PersonalityAnswers   datatypes.JSONType[map[string]string] `json:"personalityAnswers"`
	BirthTime            string                                `gorm:"size:8" json:"birthTime,omitempty"`
	BirthPlace           string                                `gorm:"size:100" json:"birthPlace,omitempty"`
	Rashi                string                                `gorm:"size:20" json:"rashi,omitempty"`
	Nakshatra            string                                `gorm:"size:30" json:"nakshatra,omitempty"`
	IsVerified           bool                                  `json:"isVerified"`
	CompletionPercentage int                                   `json:"completionPercentage"`
	IsActive             bool                                  `gorm:"not null;index" json:"isActive"`
	CreatedAt            time.Time                             `gorm:"index" json:"createdAt"`
	UpdatedAt            time.Time                             `json:"updatedAt"`
}

// Answers는 성격 질문 응답 맵을 반환 (nil 대신 빈 맵)
func (p Profile) Answers() map[string]string {
	answers := p.PersonalityAnswers.Data()
	if answers == nil {
		return map[string]string{}
	}
	return answers
}

// HasAstroData: 라시/낙샤트라 중 하나라도 있으면 true
func (p Profile) HasAstroData() bool {
	return strings.TrimSpace(p.Rashi) != "" || strings.TrimSpace(p.Nakshatra) != ""
}

// Preference는 유저의 검색 선호 조건. 비어있는 필드는 제약 없음.
type Preference struct {
	UserID      string    `gorm:"primaryKey;size:36" json:"userId"`
	AgeMin      *int      `json:"ageMin,omitempty"`
	AgeMax      *int      `json:"ageMax,omitempty"`
	HeightMin   *int      `json:"heightMin,omitempty"`
	HeightMax   *int      `json:"heightMax,omitempty"`
	Religion    string    `gorm:"size:50" json:"religion,omitempty"`
	Caste       string    `gorm:"size:50" json:"caste,omitempty"`
	Education   string    `gorm:"size:100" json:"education,omitempty"`
	Profession  string    `gorm:"size:100" json:"profession,omitempty"`
	IncomeMin   *int64    `json:"incomeMin,omitempty"`
	IncomeMax   *int64    `json:"incomeMax,omitempty"`
	City        string    `gorm:"size:100" json:"city,omitempty"`
	Diet        string    `gorm:"size:20" json:"diet,omitempty"`
	Smoking     string    `gorm:"size:20" json:"smoking,omitempty"`
	Drinking    string    `gorm:"size:20" json:"drinking,omitempty"`
	KundliMatch bool      `json:"kundliMatch"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Like는 liker -> liked 방향의 관심 표시. (liker, liked) 쌍은 유일.
type Like struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	LikerID   string    `gorm:"size:36;not null;uniqueIndex:idx_like_pair" json:"likerId"`
	LikedID   string    `gorm:"size:36;not null;uniqueIndex:idx_like_pair;index" json:"likedId"`
	IsMutual  bool      `gorm:"not null" json:"isMutual"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

// Shortlist는 단방향 북마크. 상호성 없음, 소유자가 삭제 가능.
type Shortlist struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            string    `gorm:"size:36;not null;uniqueIndex:idx_shortlist_pair" json:"userId"`
	ShortlistedUserID string    `gorm:"size:36;not null;uniqueIndex:idx_shortlist_pair;index" json:"shortlistedUserId"`
	CreatedAt         time.Time `gorm:"index" json:"createdAt"`
}
