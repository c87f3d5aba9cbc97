package repository

import (
	"context"
	"errors"

	"bandhan/pkg/logger"
	"bandhan/pkg/models"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// 프로필 조회. 없으면 nil, nil
func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logger.Logger.Error().Err(err).Str("user_id", userID).Msg("❌ Failed to get profile")
		return nil, err
	}
	return &profile, nil
}

// 여러 유저 프로필 조회 (user_id -> profile)
func (r *ProfileRepository) GetProfilesByIDs(ctx context.Context, userIDs []string) (map[string]models.Profile, error) {
	result := make(map[string]models.Profile, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	var profiles []models.Profile
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&profiles).Error; err != nil {
		logger.Logger.Error().Err(err).Int("count", len(userIDs)).Msg("❌ Failed to get profiles")
		return nil, err
	}
	for _, p := range profiles {
		result[p.UserID] = p
	}
	return result, nil
}

// 선호 조건 조회. 레코드가 없으면 nil, nil (조건 없음)
func (r *ProfileRepository) GetPreference(ctx context.Context, userID string) (*models.Preference, error) {
	var pref models.Preference
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logger.Logger.Error().Err(err).Str("user_id", userID).Msg("❌ Failed to get preference")
		return nil, err
	}
	return &pref, nil
}

// 여러 유저의 선호 조건 조회. 레코드가 없는 유저는 맵에 없다.
func (r *ProfileRepository) GetPreferences(ctx context.Context, userIDs []string) (map[string]*models.Preference, error) {
	result := make(map[string]*models.Preference, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	var prefs []models.Preference
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&prefs).Error; err != nil {
		logger.Logger.Error().Err(err).Int("count", len(userIDs)).Msg("❌ Failed to get preferences")
		return nil, err
	}
	for i := range prefs {
		result[prefs[i].UserID] = &prefs[i]
	}
	return result, nil
}
