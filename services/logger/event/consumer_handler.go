package event

import (
	"context"
	"encoding/json"
	"time"

	"bandhan/pkg/logger"
	eventtypes "bandhan/pkg/types/eventtype"
	"bandhan/services/logger/repo"

	"github.com/google/uuid"
)

const saveTimeout = 5 * time.Second

type LogStore interface {
	InsertLog(ctx context.Context, log interface{}) error
}

type HistoryStore interface {
	UpsertHistory(ctx context.Context, h repo.MatchHistory) error
}

type EventHandler struct {
	logRepo     LogStore
	historyRepo HistoryStore
}

func NewEventHandler(logRepo LogStore, historyRepo HistoryStore) *EventHandler {
	return &EventHandler{
		logRepo:     logRepo,
		historyRepo: historyRepo,
	}
}

// HandleLogEvent는 로그 이벤트를 처리합니다
func (e *EventHandler) HandleLogEvent(payload json.RawMessage) {
	var baseLog logger.BaseLog
	if err := json.Unmarshal(payload, &baseLog); err != nil {
		logger.Logger.Error().Err(err).Msg("❌ Failed to unmarshal log event")
		return
	}

	// MongoDB에 로그 저장
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := e.logRepo.InsertLog(ctx, baseLog); err != nil {
		logger.Logger.Error().Err(err).Msg("❌ Failed to insert log")
		return
	}

	logger.Logger.Debug().Msgf("✅ Log saved: %s", baseLog.Message)
}

func (e *EventHandler) HandleLikeCreatedEvent(payload json.RawMessage) {
	var eventData eventtypes.LikeCreatedEvent
	if err := json.Unmarshal(payload, &eventData); err != nil {
		logger.Logger.Error().Err(err).Msg("❌ Failed to unmarshal like created event")
		return
	}

	e.saveHistory(repo.MatchHistory{
		EventID:    eventData.EventID,
		Kind:       repo.HistoryKindLike,
		UserIDs:    []string{eventData.LikerID, eventData.LikedID},
		LikerID:    eventData.LikerID,
		LikedID:    eventData.LikedID,
		IsMutual:   eventData.IsMutual,
		OccurredAt: eventData.CreatedAt,
	})
}

func (e *EventHandler) HandleMutualMatchEvent(payload json.RawMessage) {
	var eventData eventtypes.MutualMatchEvent
	if err := json.Unmarshal(payload, &eventData); err != nil {
		logger.Logger.Error().Err(err).Msg("❌ Failed to unmarshal mutual match event")
		return
	}

	e.saveHistory(repo.MatchHistory{
		EventID:    eventData.EventID,
		Kind:       repo.HistoryKindMutual,
		UserIDs:    eventData.UserIDs,
		IsMutual:   true,
		OccurredAt: eventData.MatchedAt,
	})
}

func (e *EventHandler) saveHistory(h repo.MatchHistory) {
	// event_id 없는 이벤트는 중복 제거 대상에서 빠진다
	if h.EventID == "" {
		h.EventID = uuid.NewString()
	}
	if h.OccurredAt.IsZero() {
		h.OccurredAt = time.Now().UTC()
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := e.historyRepo.UpsertHistory(ctx, h); err != nil {
		logger.Logger.Error().Err(err).Str("event_id", h.EventID).Msg("❌ Failed to save match history")
		return
	}

	logger.Logger.Info().Str("event_id", h.EventID).Str("kind", h.Kind).Msg("✅ Match history saved")
}
