package repository

import (
	"context"
	"errors"
	"sort"

	"bandhan/pkg/apperr"
	"bandhan/pkg/logger"
	"bandhan/pkg/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InterestRepository struct {
	db *gorm.DB
}

func NewInterestRepository(db *gorm.DB) *InterestRepository {
	return &InterestRepository{db: db}
}

// CreateLike는 liker -> liked 좋아요를 만든다.
// 반대 방향 좋아요가 있으면 두 행 모두 is_mutual = true 로 같은 트랜잭션에서 바꾼다.
// 같은 쌍의 중복 생성은 유니크 인덱스가 막고 Conflict로 변환된다.
func (r *InterestRepository) CreateLike(ctx context.Context, likerID, likedID string) (*models.Like, error) {
	var like models.Like

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 양방향 동시 요청이 같은 순서로 잠그도록 user_id 정렬
		pair := []string{likerID, likedID}
		sort.Strings(pair)
		var locked []models.Profile
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("user_id").
			Where("user_id IN ?", pair).
			Order("user_id").
			Find(&locked).Error; err != nil {
			return err
		}

		var reverse models.Like
		err := tx.Where("liker_id = ? AND liked_id = ?", likedID, likerID).Take(&reverse).Error
		hasReverse := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		like = models.Like{LikerID: likerID, LikedID: likedID, IsMutual: hasReverse}
		if err := tx.Create(&like).Error; err != nil {
			return err
		}

		if hasReverse && !reverse.IsMutual {
			if err := tx.Model(&models.Like{}).Where("id = ?", reverse.ID).Update("is_mutual", true).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("already liked this user")
		}
		logger.Logger.Error().Err(err).Str("liker_id", likerID).Str("liked_id", likedID).Msg("❌ Failed to create like")
		return nil, err
	}
	return &like, nil
}

// 좋아요 조회. 없으면 nil, nil
func (r *InterestRepository) GetLike(ctx context.Context, likerID, likedID string) (*models.Like, error) {
	var like models.Like
	err := r.db.WithContext(ctx).Where("liker_id = ? AND liked_id = ?", likerID, likedID).Take(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logger.Logger.Error().Err(err).Str("liker_id", likerID).Str("liked_id", likedID).Msg("❌ Failed to get like")
		return nil, err
	}
	return &like, nil
}

func (r *InterestRepository) CreateShortlist(ctx context.Context, userID, targetID string) (*models.Shortlist, error) {
	entry := models.Shortlist{UserID: userID, ShortlistedUserID: targetID}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("already shortlisted this user")
		}
		logger.Logger.Error().Err(err).Str("user_id", userID).Str("target_id", targetID).Msg("❌ Failed to create shortlist")
		return nil, err
	}
	return &entry, nil
}

// 숏리스트 삭제. 없으면 NotFound
func (r *InterestRepository) RemoveShortlist(ctx context.Context, userID, targetID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND shortlisted_user_id = ?", userID, targetID).
		Delete(&models.Shortlist{})
	if res.Error != nil {
		logger.Logger.Error().Err(res.Error).Str("user_id", userID).Str("target_id", targetID).Msg("❌ Failed to remove shortlist")
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("shortlist entry not found")
	}
	return nil
}

func (r *InterestRepository) HasShortlist(ctx context.Context, userID, targetID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Shortlist{}).
		Where("user_id = ? AND shortlisted_user_id = ?", userID, targetID).
		Count(&count).Error
	if err != nil {
		logger.Logger.Error().Err(err).Str("user_id", userID).Msg("❌ Failed to check shortlist")
		return false, err
	}
	return count > 0, nil
}

// LikedAmong: viewer가 좋아요 한 유저 집합 (candidateIDs 중에서)
func (r *InterestRepository) LikedAmong(ctx context.Context, viewerID string, candidateIDs []string) (map[string]bool, error) {
	return r.outboundAmong(ctx, &models.Like{}, "liked_id", "liker_id", viewerID, candidateIDs)
}

// ShortlistedAmong: viewer가 숏리스트 한 유저 집합 (candidateIDs 중에서)
func (r *InterestRepository) ShortlistedAmong(ctx context.Context, viewerID string, candidateIDs []string) (map[string]bool, error) {
	return r.outboundAmong(ctx, &models.Shortlist{}, "shortlisted_user_id", "user_id", viewerID, candidateIDs)
}

func (r *InterestRepository) outboundAmong(ctx context.Context, model interface{}, targetCol, ownerCol, viewerID string, candidateIDs []string) (map[string]bool, error) {
	result := make(map[string]bool, len(candidateIDs))
	if len(candidateIDs) == 0 {
		return result, nil
	}

	var ids []string
	err := r.db.WithContext(ctx).Model(model).
		Where(ownerCol+" = ?", viewerID).
		Where(targetCol+" IN ?", candidateIDs).
		Pluck(targetCol, &ids).Error
	if err != nil {
		logger.Logger.Error().Err(err).Str("viewer_id", viewerID).Str("column", targetCol).Msg("❌ Failed to load interest flags")
		return nil, err
	}
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}

// ListLikedBy: userID를 좋아요 한 사람들 (받은 좋아요)
func (r *InterestRepository) ListLikedBy(ctx context.Context, userID string, offset, limit int) ([]models.Like, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Like{}).
		Joins("JOIN profiles ON profiles.user_id = likes.liker_id AND profiles.is_active = ?", true).
		Where("likes.liked_id = ?", userID)
	return listLikes(q, offset, limit)
}

// ListLikes: userID가 보낸 좋아요
func (r *InterestRepository) ListLikes(ctx context.Context, userID string, offset, limit int) ([]models.Like, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Like{}).
		Joins("JOIN profiles ON profiles.user_id = likes.liked_id AND profiles.is_active = ?", true).
		Where("likes.liker_id = ?", userID)
	return listLikes(q, offset, limit)
}

// ListMutual: 서로 좋아요 한 상대 (userID가 보낸 쪽 행 기준)
func (r *InterestRepository) ListMutual(ctx context.Context, userID string, offset, limit int) ([]models.Like, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Like{}).
		Joins("JOIN profiles ON profiles.user_id = likes.liked_id AND profiles.is_active = ?", true).
		Where("likes.liker_id = ? AND likes.is_mutual = ?", userID, true)
	return listLikes(q, offset, limit)
}

func listLikes(q *gorm.DB, offset, limit int) ([]models.Like, int64, error) {
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		logger.Logger.Error().Err(err).Msg("❌ Failed to count likes")
		return nil, 0, err
	}

	likes := []models.Like{}
	err := q.Select("likes.*").
		Order("likes.created_at DESC").Order("likes.id DESC").
		Offset(offset).Limit(limit).
		Find(&likes).Error
	if err != nil {
		logger.Logger.Error().Err(err).Msg("❌ Failed to list likes")
		return nil, 0, err
	}
	return likes, total, nil
}

// ListShortlists: userID의 숏리스트
func (r *InterestRepository) ListShortlists(ctx context.Context, userID string, offset, limit int) ([]models.Shortlist, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Shortlist{}).
		Joins("JOIN profiles ON profiles.user_id = shortlists.shortlisted_user_id AND profiles.is_active = ?", true).
		Where("shortlists.user_id = ?", userID).
		Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		logger.Logger.Error().Err(err).Str("user_id", userID).Msg("❌ Failed to count shortlists")
		return nil, 0, err
	}

	entries := []models.Shortlist{}
	err := q.Select("shortlists.*").
		Order("shortlists.created_at DESC").Order("shortlists.id DESC").
		Offset(offset).Limit(limit).
		Find(&entries).Error
	if err != nil {
		logger.Logger.Error().Err(err).Str("user_id", userID).Msg("❌ Failed to list shortlists")
		return nil, 0, err
	}
	return entries, total, nil
}
