package service

import (
	"context"
	"time"

	"bandhan/pkg/apperr"
	"bandhan/pkg/dto"
	"bandhan/pkg/helper"
	"bandhan/pkg/logger"
	"bandhan/pkg/metrics"
	"bandhan/pkg/models"
	"bandhan/pkg/mq"
	eventtypes "bandhan/pkg/types/eventtype"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type InterestService struct {
	profiles  ProfileStore
	interests InterestStore
	emitter   MQEmitter
}

func NewInterestService(profiles ProfileStore, interests InterestStore, emitter MQEmitter) *InterestService {
	return &InterestService{profiles: profiles, interests: interests, emitter: emitter}
}

// Like: 좋아요 생성. 상대가 이미 나를 좋아요 했다면 상호 매칭.
// 알림 발행 실패는 좋아요를 되돌리지 않는다.
func (s *InterestService) Like(ctx context.Context, viewerID string, req dto.LikeRequest) (*dto.LikeResponse, error) {
	likedID, err := helper.ParseUserID(req.LikedUserID, "likedUserId")
	if err != nil {
		return nil, err
	}
	if likedID == viewerID {
		return nil, apperr.Validation("cannot like yourself")
	}

	viewer, target, err := s.loadPair(ctx, viewerID, likedID)
	if err != nil {
		return nil, err
	}

	like, err := s.interests.CreateLike(ctx, viewerID, likedID)
	if err != nil {
		return nil, apperr.Wrap("failed to create like", err)
	}

	metrics.LikesCreated.Inc()
	logger.Info(logger.LogEventLikeCreated, "Like created", map[string]interface{}{
		"liker_id":  viewerID,
		"liked_id":  likedID,
		"is_mutual": like.IsMutual,
	})
	if like.IsMutual {
		metrics.MutualMatches.Inc()
		logger.Info(logger.LogEventMutualMatch, "Mutual match", map[string]interface{}{
			"user_ids": []string{viewerID, likedID},
		})
	}

	s.notifyLike(*viewer, *target, *like)

	return &dto.LikeResponse{
		ID:        like.ID,
		LikerID:   like.LikerID,
		LikedID:   like.LikedID,
		IsMutual:  like.IsMutual,
		CreatedAt: like.CreatedAt,
	}, nil
}

func (s *InterestService) Shortlist(ctx context.Context, viewerID string, req dto.ShortlistRequest) (*dto.ShortlistResponse, error) {
	targetID, err := helper.ParseUserID(req.ShortlistedUserID, "shortlistedUserId")
	if err != nil {
		return nil, err
	}
	if targetID == viewerID {
		return nil, apperr.Validation("cannot shortlist yourself")
	}
	if _, _, err := s.loadPair(ctx, viewerID, targetID); err != nil {
		return nil, err
	}

	entry, err := s.interests.CreateShortlist(ctx, viewerID, targetID)
	if err != nil {
		return nil, apperr.Wrap("failed to create shortlist", err)
	}

	metrics.ShortlistOps.WithLabelValues("add").Inc()
	logger.Info(logger.LogEventShortlistAdd, "Shortlist added", map[string]interface{}{
		"user_id":   viewerID,
		"target_id": targetID,
	})

	return &dto.ShortlistResponse{
		ID:                entry.ID,
		UserID:            entry.UserID,
		ShortlistedUserID: entry.ShortlistedUserID,
		CreatedAt:         entry.CreatedAt,
	}, nil
}

func (s *InterestService) RemoveShortlist(ctx context.Context, viewerID, rawTargetID string) error {
	targetID, err := helper.ParseUserID(rawTargetID, "userId")
	if err != nil {
		return err
	}
	if err := s.interests.RemoveShortlist(ctx, viewerID, targetID); err != nil {
		return apperr.Wrap("failed to remove shortlist", err)
	}

	metrics.ShortlistOps.WithLabelValues("remove").Inc()
	logger.Info(logger.LogEventShortlistRemove, "Shortlist removed", map[string]interface{}{
		"user_id":   viewerID,
		"target_id": targetID,
	})
	return nil
}

// LikedBy: 나를 좋아요 한 사람들
func (s *InterestService) LikedBy(ctx context.Context, viewerID string, page dto.PageQuery) (dto.PaginatedList[dto.InterestEntry], error) {
	likes, total, err := s.interests.ListLikedBy(ctx, viewerID, page.Offset(), page.Limit)
	if err != nil {
		return dto.PaginatedList[dto.InterestEntry]{}, apperr.Wrap("failed to list received likes", err)
	}
	return s.likeEntries(ctx, likes, total, page, func(l models.Like) string { return l.LikerID })
}

// MyLikes: 내가 보낸 좋아요
func (s *InterestService) MyLikes(ctx context.Context, viewerID string, page dto.PageQuery) (dto.PaginatedList[dto.InterestEntry], error) {
	likes, total, err := s.interests.ListLikes(ctx, viewerID, page.Offset(), page.Limit)
	if err != nil {
		return dto.PaginatedList[dto.InterestEntry]{}, apperr.Wrap("failed to list likes", err)
	}
	return s.likeEntries(ctx, likes, total, page, func(l models.Like) string { return l.LikedID })
}

// Mutual: 서로 좋아요 한 상대
func (s *InterestService) Mutual(ctx context.Context, viewerID string, page dto.PageQuery) (dto.PaginatedList[dto.InterestEntry], error) {
	likes, total, err := s.interests.ListMutual(ctx, viewerID, page.Offset(), page.Limit)
	if err != nil {
		return dto.PaginatedList[dto.InterestEntry]{}, apperr.Wrap("failed to list mutual matches", err)
	}
	return s.likeEntries(ctx, likes, total, page, func(l models.Like) string { return l.LikedID })
}

func (s *InterestService) Shortlists(ctx context.Context, viewerID string, page dto.PageQuery) (dto.PaginatedList[dto.InterestEntry], error) {
	entries, total, err := s.interests.ListShortlists(ctx, viewerID, page.Offset(), page.Limit)
	if err != nil {
		return dto.PaginatedList[dto.InterestEntry]{}, apperr.Wrap("failed to list shortlists", err)
	}

	ids := lo.Map(entries, func(e models.Shortlist, _ int) string { return e.ShortlistedUserID })
	profiles, err := s.profiles.GetProfilesByIDs(ctx, ids)
	if err != nil {
		return dto.PaginatedList[dto.InterestEntry]{}, apperr.Wrap("failed to load profiles", err)
	}

	items := lo.FilterMap(entries, func(e models.Shortlist, _ int) (dto.InterestEntry, bool) {
		p, ok := profiles[e.ShortlistedUserID]
		return dto.InterestEntry{Profile: p, CreatedAt: e.CreatedAt}, ok
	})
	return dto.NewPaginatedList(items, page, total), nil
}

// Status: 특정 유저와의 관심 관계 (UI 배지용)
func (s *InterestService) Status(ctx context.Context, viewerID, rawTargetID string) (*dto.InterestStatus, error) {
	targetID, err := helper.ParseUserID(rawTargetID, "userId")
	if err != nil {
		return nil, err
	}

	outbound, err := s.interests.GetLike(ctx, viewerID, targetID)
	if err != nil {
		return nil, apperr.Wrap("failed to load like", err)
	}
	inbound, err := s.interests.GetLike(ctx, targetID, viewerID)
	if err != nil {
		return nil, apperr.Wrap("failed to load like", err)
	}
	shortlisted, err := s.interests.HasShortlist(ctx, viewerID, targetID)
	if err != nil {
		return nil, apperr.Wrap("failed to load shortlist", err)
	}

	return &dto.InterestStatus{
		UserID:        targetID,
		IsLiked:       outbound != nil,
		IsShortlisted: shortlisted,
		LikedBy:       inbound != nil,
		IsMutual:      outbound != nil && outbound.IsMutual,
	}, nil
}

// loadPair: 요청자와 대상 프로필. 둘 중 하나라도 없거나 탈퇴했으면 NotFound.
func (s *InterestService) loadPair(ctx context.Context, viewerID, targetID string) (*models.Profile, *models.Profile, error) {
	found, err := s.profiles.GetProfilesByIDs(ctx, []string{viewerID, targetID})
	if err != nil {
		return nil, nil, apperr.Wrap("failed to load profiles", err)
	}
	viewer, ok := found[viewerID]
	if !ok || !viewer.IsActive {
		return nil, nil, apperr.NotFound("profile not found")
	}
	target, ok := found[targetID]
	if !ok || !target.IsActive {
		return nil, nil, apperr.NotFound("target profile not found")
	}
	return &viewer, &target, nil
}

func (s *InterestService) likeEntries(ctx context.Context, likes []models.Like, total int64, page dto.PageQuery, counterpart func(models.Like) string) (dto.PaginatedList[dto.InterestEntry], error) {
	ids := lo.Map(likes, func(l models.Like, _ int) string { return counterpart(l) })
	profiles, err := s.profiles.GetProfilesByIDs(ctx, ids)
	if err != nil {
		return dto.PaginatedList[dto.InterestEntry]{}, apperr.Wrap("failed to load profiles", err)
	}

	items := lo.FilterMap(likes, func(l models.Like, _ int) (dto.InterestEntry, bool) {
		p, ok := profiles[counterpart(l)]
		return dto.InterestEntry{Profile: p, IsMutual: l.IsMutual, CreatedAt: l.CreatedAt}, ok
	})
	return dto.NewPaginatedList(items, page, total), nil
}

// notifyLike: 좋아요/상호 매칭 알림과 메일 이벤트 발행. 실패는 로그만 남긴다.
func (s *InterestService) notifyLike(liker, liked models.Profile, like models.Like) {
	if s.emitter == nil {
		return
	}

	s.publish(mq.RoutingKeyLikeCreated, eventtypes.EventTypeLikeCreated, eventtypes.LikeCreatedEvent{
		EventID:   uuid.NewString(),
		LikerID:   liker.UserID,
		LikerName: liker.DisplayName,
		LikedID:   liked.UserID,
		IsMutual:  like.IsMutual,
		CreatedAt: like.CreatedAt,
	})
	s.publish(mq.RoutingKeyEmail, eventtypes.EventTypeEmail, eventtypes.EmailEvent{
		EventID:  uuid.NewString(),
		UserID:   liked.UserID,
		Template: eventtypes.EmailTemplateNewLike,
		Subject:  "You have a new like",
		Body:     liker.DisplayName + " liked your profile.",
	})

	if !like.IsMutual {
		return
	}

	s.publish(mq.RoutingKeyMutualMatch, eventtypes.EventTypeMutualMatch, eventtypes.MutualMatchEvent{
		EventID:   uuid.NewString(),
		UserIDs:   []string{liker.UserID, liked.UserID},
		MatchedAt: time.Now().UTC(),
	})
	for _, pair := range [][2]models.Profile{{liker, liked}, {liked, liker}} {
		s.publish(mq.RoutingKeyEmail, eventtypes.EventTypeEmail, eventtypes.EmailEvent{
			EventID:  uuid.NewString(),
			UserID:   pair[0].UserID,
			Template: eventtypes.EmailTemplateMutualMatch,
			Subject:  "It's a match!",
			Body:     "You and " + pair[1].DisplayName + " liked each other.",
		})
	}
}

func (s *InterestService) publish(routingKey, eventType string, event interface{}) {
	err := s.emitter.PublishInterestEvent(routingKey, eventtypes.EventPayload{
		EventType: eventType,
		Data:      helper.ToJSON(event),
	})
	if err != nil {
		metrics.NotificationFailures.Inc()
		logger.Warn(logger.LogEventNotificationFail, "❌ Failed to publish interest event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}
