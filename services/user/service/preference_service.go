package service

import (
	"context"

	"bandhan/pkg/apperr"
	"bandhan/pkg/dto"
	"bandhan/pkg/models"
)

type PreferenceStore interface {
	UpsertPreference(ctx context.Context, pref *models.Preference) error
	GetPreference(ctx context.Context, userID string) (*models.Preference, error)
}

type PreferenceService struct {
	repo     PreferenceStore
	profiles ProfileStore
}

func NewPreferenceService(repo PreferenceStore, profiles ProfileStore) *PreferenceService {
	return &PreferenceService{repo: repo, profiles: profiles}
}

// GetPreference: 레코드가 없으면 조건 없는 빈 선호를 돌려준다
func (s *PreferenceService) GetPreference(ctx context.Context, userID string) (*models.Preference, error) {
	pref, err := s.repo.GetPreference(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap("failed to load preference", err)
	}
	if pref == nil {
		return &models.Preference{UserID: userID}, nil
	}
	return pref, nil
}

// UpdatePreference: 첫 수정 때 레코드를 만든다. 빈 문자열은 조건 해제.
func (s *PreferenceService) UpdatePreference(ctx context.Context, userID string, req dto.UpdatePreferenceRequest) (*models.Preference, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap("failed to load profile", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("profile not found")
	}

	pref, err := s.GetPreference(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.AgeMin != nil {
		pref.AgeMin = nonNegative(req.AgeMin)
	}
	if req.AgeMax != nil {
		pref.AgeMax = nonNegative(req.AgeMax)
	}
	if req.HeightMin != nil {
		pref.HeightMin = nonNegative(req.HeightMin)
	}
	if req.HeightMax != nil {
		pref.HeightMax = nonNegative(req.HeightMax)
	}
	if req.IncomeMin != nil {
		pref.IncomeMin = nonNegative(req.IncomeMin)
	}
	if req.IncomeMax != nil {
		pref.IncomeMax = nonNegative(req.IncomeMax)
	}
	if err := checkRange("age", pref.AgeMin, pref.AgeMax); err != nil {
		return nil, err
	}
	if err := checkRange("height", pref.HeightMin, pref.HeightMax); err != nil {
		return nil, err
	}
	if err := checkRange("income", pref.IncomeMin, pref.IncomeMax); err != nil {
		return nil, err
	}

	setString(&pref.Religion, req.Religion)
	setString(&pref.Caste, req.Caste)
	setString(&pref.Education, req.Education)
	setString(&pref.Profession, req.Profession)
	setString(&pref.City, req.City)

	withAny := func(allowed []string) []string { return append([]string{models.Any}, allowed...) }
	if pref.Diet, err = enumValue("diet", req.Diet, pref.Diet, withAny(diets)); err != nil {
		return nil, err
	}
	if pref.Smoking, err = enumValue("smoking", req.Smoking, pref.Smoking, withAny(habits)); err != nil {
		return nil, err
	}
	if pref.Drinking, err = enumValue("drinking", req.Drinking, pref.Drinking, withAny(habits)); err != nil {
		return nil, err
	}
	if req.KundliMatch != nil {
		pref.KundliMatch = *req.KundliMatch
	}

	if err := s.repo.UpsertPreference(ctx, pref); err != nil {
		return nil, apperr.Wrap("failed to update preference", err)
	}
	return pref, nil
}

type bound interface {
	~int | ~int64
}

// nonNegative: 0 이하 값은 조건 해제(nil)로 본다
func nonNegative[T bound](v *T) *T {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}

func checkRange[T bound](name string, lo, hi *T) error {
	if lo != nil && hi != nil && *lo > *hi {
		return apperr.Validation(name + " minimum must not exceed maximum")
	}
	return nil
}
