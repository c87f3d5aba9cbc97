package dto

import "time"

// UpdateProfileRequest: PATCH /profile. nil 필드는 변경하지 않는다.
type UpdateProfileRequest struct {
	DisplayName        *string           `json:"displayName"`
	Gender             *string           `json:"gender"`
	DateOfBirth        *string           `json:"dateOfBirth"` // YYYY-MM-DD
	HeightCm           *int              `json:"heightCm"`
	WeightKg           *int              `json:"weightKg"`
	Religion           *string           `json:"religion"`
	Caste              *string           `json:"caste"`
	Diet               *string           `json:"diet"`
	Smoking            *string           `json:"smoking"`
	Drinking           *string           `json:"drinking"`
	Education          *string           `json:"education"`
	Profession         *string           `json:"profession"`
	Income             *int64            `json:"income"`
	City               *string           `json:"city"`
	Bio                *string           `json:"bio"`
	Photos             []string          `json:"photos"`
	PersonalityAnswers map[string]string `json:"personalityAnswers"`
	BirthTime          *string           `json:"birthTime"`
	BirthPlace         *string           `json:"birthPlace"`
	Rashi              *string           `json:"rashi"`
	Nakshatra          *string           `json:"nakshatra"`
}

// UpdatePreferenceRequest: PATCH /preference. 첫 수정 때 레코드가 생긴다.
type UpdatePreferenceRequest struct {
	AgeMin      *int    `json:"ageMin"`
	AgeMax      *int    `json:"ageMax"`
	HeightMin   *int    `json:"heightMin"`
	HeightMax   *int    `json:"heightMax"`
	Religion    *string `json:"religion"`
	Caste       *string `json:"caste"`
	Education   *string `json:"education"`
	Profession  *string `json:"profession"`
	IncomeMin   *int64  `json:"incomeMin"`
	IncomeMax   *int64  `json:"incomeMax"`
	City        *string `json:"city"`
	Diet        *string `json:"diet"`
	Smoking     *string `json:"smoking"`
	Drinking    *string `json:"drinking"`
	KundliMatch *bool   `json:"kundliMatch"`
}

// PublicProfile: 다른 유저에게 보여주는 프로필 (생년월일 대신 나이)
type PublicProfile struct {
	UserID               string    `json:"userId"`
	DisplayName          string    `json:"displayName"`
	Gender               string    `json:"gender"`
	Age                  int       `json:"age"`
	HeightCm             *int      `json:"heightCm,omitempty"`
	Religion             string    `json:"religion,omitempty"`
	Education            string    `json:"education,omitempty"`
	Profession           string    `json:"profession,omitempty"`
	City                 string    `json:"city,omitempty"`
	Bio                  string    `json:"bio,omitempty"`
	Photos               []string  `json:"photos,omitempty"`
	Rashi                string    `json:"rashi,omitempty"`
	IsVerified           bool      `json:"isVerified"`
	CompletionPercentage int       `json:"completionPercentage"`
	CreatedAt            time.Time `json:"createdAt"`
}
