package service

import (
	"strings"

	"bandhan/pkg/models"
)

// CompletionPercentage: 채워진 프로필 항목 비율 (0~100)
func CompletionPercentage(p models.Profile) int {
	filled := []bool{
		notBlank(p.DisplayName),
		p.Gender != "",
		!p.DateOfBirth.IsZero(),
		p.HeightCm != nil,
		p.WeightKg != nil,
		notBlank(p.Religion),
		notBlank(p.Caste),
		notBlank(p.Diet),
		notBlank(p.Smoking),
		notBlank(p.Drinking),
		notBlank(p.Education),
		notBlank(p.Profession),
		p.Income != nil,
		notBlank(p.City),
		notBlank(p.Bio),
		len(p.Photos) > 0,
		len(p.Answers()) > 0,
		notBlank(p.BirthTime),
		notBlank(p.BirthPlace),
		p.HasAstroData(),
	}

	count := 0
	for _, ok := range filled {
		if ok {
			count++
		}
	}
	return count * 100 / len(filled)
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
