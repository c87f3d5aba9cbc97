package repository

import (
	"bandhan/pkg/logger"
	"bandhan/pkg/models"

	"gorm.io/gorm"
)

// InitDB: 매칭 서비스가 쓰는 테이블 마이그레이션
func InitDB(db *gorm.DB) error {
	err := db.AutoMigrate(&models.Profile{}, &models.Preference{}, &models.Like{}, &models.Shortlist{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("❌ Failed to migrate tables")
		return err
	}
	logger.Logger.Info().Msg("✅ Tables profiles, preferences, likes and shortlists migrated or already exist.")
	return nil
}
