package repository

import (
	"context"
	"time"

	"bandhan/pkg/helper"
	"bandhan/pkg/logger"
	"bandhan/pkg/models"

	"gorm.io/gorm"
)

// CandidateFilter는 후보 조회 조건. 빈 문자열/nil 필드는 조건 없음.
type CandidateFilter struct {
	ViewerID string
	// Gender가 비어있으면 성별 제한 없음
	Gender models.Gender
	// ExcludeAll: 조건상 후보가 있을 수 없는 경우 (빈 결과)
	ExcludeAll bool
	// ExcludeInteracted: 이미 좋아요/숏리스트 한 유저 제외 (추천 모드)
	ExcludeInteracted bool

	BornOnOrBefore *time.Time
	BornAfter      *time.Time
	HeightMin      *int
	HeightMax      *int

	Religion   string
	Caste      string
	Education  string
	Profession string
	City       string
	Diet       string
	Smoking    string
	Drinking   string

	RequireAstroData bool
}

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

// FindCandidates는 조건에 맞는 활성 프로필을 최신 가입순으로 반환한다. limit <= 0 이면 전부.
func (r *CandidateRepository) FindCandidates(ctx context.Context, f CandidateFilter, offset, limit int) ([]models.Profile, int64, error) {
	query := r.buildQuery(ctx, f).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Logger.Error().Err(err).Str("viewer_id", f.ViewerID).Msg("❌ Failed to count candidates")
		return nil, 0, err
	}

	profiles := []models.Profile{}
	if total == 0 {
		return profiles, 0, nil
	}

	find := query.Order("created_at DESC").Order("user_id ASC").Offset(offset)
	if limit > 0 {
		find = find.Limit(limit)
	}
	if err := find.Find(&profiles).Error; err != nil {
		logger.Logger.Error().Err(err).Str("viewer_id", f.ViewerID).Msg("❌ Failed to find candidates")
		return nil, 0, err
	}
	return profiles, total, nil
}

func (r *CandidateRepository) buildQuery(ctx context.Context, f CandidateFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Profile{}).
		Where("user_id <> ?", f.ViewerID).
		Where("is_active = ?", true)

	if f.ExcludeAll {
		q = q.Where("1 = 0")
	}
	if f.Gender != "" {
		q = q.Where("gender = ?", f.Gender)
	}

	if f.ExcludeInteracted {
		liked := r.db.Model(&models.Like{}).Select("liked_id").Where("liker_id = ?", f.ViewerID)
		shortlisted := r.db.Model(&models.Shortlist{}).Select("shortlisted_user_id").Where("user_id = ?", f.ViewerID)
		q = q.Where("user_id NOT IN (?)", liked).Where("user_id NOT IN (?)", shortlisted)
	}

	// 나이 -> 생년월일 범위
	if f.BornOnOrBefore != nil {
		q = q.Where("date_of_birth <= ?", *f.BornOnOrBefore)
	}
	if f.BornAfter != nil {
		q = q.Where("date_of_birth > ?", *f.BornAfter)
	}
	if f.HeightMin != nil {
		q = q.Where("height_cm >= ?", *f.HeightMin)
	}
	if f.HeightMax != nil {
		q = q.Where("height_cm <= ?", *f.HeightMax)
	}

	equals := []struct{ column, value string }{
		{"religion", f.Religion},
		{"caste", f.Caste},
		{"education", f.Education},
		{"city", f.City},
		{"diet", f.Diet},
		{"smoking", f.Smoking},
		{"drinking", f.Drinking},
	}
	for _, eq := range equals {
		if helper.IsConstraint(eq.value) {
			q = q.Where("LOWER("+eq.column+") = ?", helper.Normalize(eq.value))
		}
	}
	if helper.IsConstraint(f.Profession) {
		q = q.Where("LOWER(profession) LIKE ?", "%"+helper.Normalize(f.Profession)+"%")
	}

	if f.RequireAstroData {
		q = q.Where("(rashi <> '' OR nakshatra <> '')")
	}
	return q
}
