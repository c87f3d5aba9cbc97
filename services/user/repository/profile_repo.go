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

// 데이터베이스 초기화
func (r *ProfileRepository) InitDB() error {
	err := r.db.AutoMigrate(&models.Profile{}, &models.Preference{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("❌ Failed to migrate tables")
		return err
	}
	logger.Logger.Info().Msg("✅ Tables profiles and preferences migrated or already exist.")
	return nil
}

// 프로필 생성
func (r *ProfileRepository) InsertProfile(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		logger.Logger.Error().Err(err).Str("user_id", profile.UserID).Msg("❌ Failed to insert profile")
		return err
	}
	return nil
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

// 프로필 전체 저장
func (r *ProfileRepository) SaveProfile(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		logger.Logger.Error().Err(err).Str("user_id", profile.UserID).Msg("❌ Failed to save profile")
		return err
	}
	return nil
}

// 탈퇴 처리: 좋아요/숏리스트가 참조하므로 행은 남기고 비활성화만 한다
func (r *ProfileRepository) Deactivate(ctx context.Context, userID string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Update("is_active", false)
	if res.Error != nil {
		logger.Logger.Error().Err(res.Error).Str("user_id", userID).Msg("❌ Failed to deactivate profile")
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
