package repository

import (
	"context"
	"errors"

	"bandhan/pkg/logger"
	"bandhan/pkg/models"

	"gorm.io/gorm"
)

type PreferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// 선호 조건 삽입 또는 업데이트
func (r *PreferenceRepository) UpsertPreference(ctx context.Context, pref *models.Preference) error {
	if err := r.db.WithContext(ctx).Save(pref).Error; err != nil {
		logger.Logger.Error().Err(err).Str("user_id", pref.UserID).Msg("❌ Failed to upsert preference")
		return err
	}
	return nil
}

// 선호 조건 조회. 없으면 nil, nil
func (r *PreferenceRepository) GetPreference(ctx context.Context, userID string) (*models.Preference, error) {
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
