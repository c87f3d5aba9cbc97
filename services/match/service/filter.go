package service

import (
	"time"

	"bandhan/pkg/apperr"
	"bandhan/pkg/dto"
	"bandhan/pkg/helper"
	"bandhan/pkg/models"
	"bandhan/services/match/repository"
)

// oppositeGender: other는 반대 성별이 없으므로 false
func oppositeGender(g models.Gender) (models.Gender, bool) {
	switch g {
	case models.GenderMale:
		return models.GenderFemale, true
	case models.GenderFemale:
		return models.GenderMale, true
	}
	return "", false
}

// preferenceFilter: 선호 조건을 후보 조회 조건으로 옮긴다
func preferenceFilter(viewer models.Profile, pref *models.Preference) repository.CandidateFilter {
	f := repository.CandidateFilter{ViewerID: viewer.UserID}

	opposite, ok := oppositeGender(viewer.Gender)
	if ok {
		f.Gender = opposite
	} else {
		f.ExcludeAll = true
	}

	if pref == nil {
		return f
	}
	f.HeightMin, f.HeightMax = pref.HeightMin, pref.HeightMax
	f.Religion, f.Caste = pref.Religion, pref.Caste
	f.Education, f.Profession = pref.Education, pref.Profession
	f.City = pref.City
	f.Diet, f.Smoking, f.Drinking = pref.Diet, pref.Smoking, pref.Drinking
	f.RequireAstroData = pref.KundliMatch
	return f
}

// suggestionFilter: 반대 성별, 선호 조건, 이미 관심 표시한 유저 제외
func suggestionFilter(viewer models.Profile, pref *models.Preference, now time.Time) repository.CandidateFilter {
	f := preferenceFilter(viewer, pref)
	f.ExcludeInteracted = true
	if pref != nil {
		f.BornOnOrBefore, f.BornAfter = helper.BirthDateBounds(pref.AgeMin, pref.AgeMax, now)
	}
	return f
}

// searchFilter: 선호 조건 위에 요청 파라미터를 덮어쓴다. "any"는 조건 해제.
func searchFilter(viewer models.Profile, pref *models.Preference, q dto.SearchQuery, now time.Time) repository.CandidateFilter {
	f := preferenceFilter(viewer, pref)

	var ageMin, ageMax *int
	if pref != nil {
		ageMin, ageMax = pref.AgeMin, pref.AgeMax
	}
	if q.AgeMin != nil {
		ageMin = q.AgeMin
	}
	if q.AgeMax != nil {
		ageMax = q.AgeMax
	}
	f.BornOnOrBefore, f.BornAfter = helper.BirthDateBounds(ageMin, ageMax, now)

	if q.HeightMin != nil {
		f.HeightMin = q.HeightMin
	}
	if q.HeightMax != nil {
		f.HeightMax = q.HeightMax
	}

	override := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	override(&f.Religion, q.Religion)
	override(&f.Caste, q.Caste)
	override(&f.Education, q.Education)
	override(&f.Profession, q.Profession)
	override(&f.City, q.City)
	override(&f.Diet, q.Diet)
	override(&f.Smoking, q.Smoking)
	override(&f.Drinking, q.Drinking)

	if q.KundliMatch != nil {
		f.RequireAstroData = *q.KundliMatch
	}

	if q.Gender != nil {
		g := helper.Normalize(*q.Gender)
		f.ExcludeAll = false
		f.Gender = ""
		if g != models.Any {
			f.Gender = models.Gender(g)
		}
	}
	return f
}

func validateSearch(q dto.SearchQuery) error {
	for name, v := range map[string]*int{"ageMin": q.AgeMin, "ageMax": q.AgeMax, "heightMin": q.HeightMin, "heightMax": q.HeightMax} {
		if v != nil && *v < 0 {
			return apperr.Validation(name + " must not be negative")
		}
	}
	if q.AgeMin != nil && q.AgeMax != nil && *q.AgeMin > *q.AgeMax {
		return apperr.Validation("ageMin must not exceed ageMax")
	}
	if q.HeightMin != nil && q.HeightMax != nil && *q.HeightMin > *q.HeightMax {
		return apperr.Validation("heightMin must not exceed heightMax")
	}
	if q.Gender != nil {
		g := helper.Normalize(*q.Gender)
		if g != models.Any && !models.Gender(g).Valid() {
			return apperr.Validation("gender must be one of male, female, other, any")
		}
	}
	switch q.SortBy {
	case "", dto.SortByCompatibility, dto.SortByNewest:
	default:
		return apperr.Validation("sortBy must be compatibility or newest")
	}
	return nil
}
