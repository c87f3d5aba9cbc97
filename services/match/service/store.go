package service

import (
	"context"

	"bandhan/pkg/models"
	eventtypes "bandhan/pkg/types/eventtype"
	"bandhan/services/match/repository"
)

type CandidateStore interface {
	FindCandidates(ctx context.Context, f repository.CandidateFilter, offset, limit int) ([]models.Profile, int64, error)
}

type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	GetProfilesByIDs(ctx context.Context, userIDs []string) (map[string]models.Profile, error)
	GetPreference(ctx context.Context, userID string) (*models.Preference, error)
	GetPreferences(ctx context.Context, userIDs []string) (map[string]*models.Preference, error)
}

type InterestStore interface {
	CreateLike(ctx context.Context, likerID, likedID string) (*models.Like, error)
	GetLike(ctx context.Context, likerID, likedID string) (*models.Like, error)
	CreateShortlist(ctx context.Context, userID, targetID string) (*models.Shortlist, error)
	RemoveShortlist(ctx context.Context, userID, targetID string) error
	HasShortlist(ctx context.Context, userID, targetID string) (bool, error)
	LikedAmong(ctx context.Context, viewerID string, candidateIDs []string) (map[string]bool, error)
	ShortlistedAmong(ctx context.Context, viewerID string, candidateIDs []string) (map[string]bool, error)
	ListLikedBy(ctx context.Context, userID string, offset, limit int) ([]models.Like, int64, error)
	ListLikes(ctx context.Context, userID string, offset, limit int) ([]models.Like, int64, error)
	ListMutual(ctx context.Context, userID string, offset, limit int) ([]models.Like, int64, error)
	ListShortlists(ctx context.Context, userID string, offset, limit int) ([]models.Shortlist, int64, error)
}

// MQEmitter: 알림/메일 이벤트 발행 (event 패키지 직접 참조 X)
type MQEmitter interface {
	PublishInterestEvent(routingKey string, payload eventtypes.EventPayload) error
}
