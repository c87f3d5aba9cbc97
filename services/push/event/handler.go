package event

import (
	"context"
	"encoding/json"
	"time"

	"bandhan/pkg/logger"
	eventtypes "bandhan/pkg/types/eventtype"
	"bandhan/services/push/onesignal"
)

const handleTimeout = 10 * time.Second

type Pusher interface {
	Push(ctx context.Context, payload onesignal.Payload) error
}

type Mailer interface {
	Send(to, subject, body string) error
}

// Directory: 유저 메일 주소와 접속 상태 조회 (redis)
type Directory interface {
	GetUserEmail(ctx context.Context, userID string) (string, error)
	InactiveUserIDs(ctx context.Context, userIDs []string) ([]string, error)
}

// EventHandler: 모든 실패는 로그만 남기고 메시지는 버린다
type EventHandler struct {
	pusher    Pusher
	mailer    Mailer
	directory Directory
}

func NewEventHandler(pusher Pusher, mailer Mailer, directory Directory) *EventHandler {
	return &EventHandler{pusher: pusher, mailer: mailer, directory: directory}
}

func (h *EventHandler) HandleLikeCreatedEvent(body json.RawMessage) {
	var eventData eventtypes.LikeCreatedEvent
	if err := json.Unmarshal(body, &eventData); err != nil {
		logger.Logger.Error().Err(err).Msg("❌ Failed to unmarshal like created event")
		return
	}
	// 상호 매칭이면 match.mutual 쪽에서 알린다
	if eventData.IsMutual {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	h.push(ctx, onesignal.Payload{
		PushUserList: []string{eventData.LikedID},
		Header:       "New Like",
		Content:      likerName(eventData.LikerName) + " liked your profile",
		Url:          "bandhan://matches/liked-by",
	})
}

func (h *EventHandler) HandleMutualMatchEvent(body json.RawMessage) {
	var eventData eventtypes.MutualMatchEvent
	if err := json.Unmarshal(body, &eventData); err != nil {
		logger.Logger.Error().Err(err).Msg("❌ Failed to unmarshal mutual match event")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	h.push(ctx, onesignal.Payload{
		PushUserList: eventData.UserIDs,
		Header:       "It's a Match!",
		Content:      "You both liked each other. Say hello!",
		Url:          "bandhan://matches/mutual",
	})
}

func (h *EventHandler) HandleEmailEvent(body json.RawMessage) {
	var eventData eventtypes.EmailEvent
	if err := json.Unmarshal(body, &eventData); err != nil {
		logger.Logger.Error().Err(err).Msg("❌ Failed to unmarshal email event")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	to, err := h.directory.GetUserEmail(ctx, eventData.UserID)
	if err != nil {
		logger.Warn(logger.LogEventNotificationFail, "Email recipient lookup failed", map[string]interface{}{
			"user_id":  eventData.UserID,
			"template": eventData.Template,
			"error":    err.Error(),
		})
		return
	}

	if err := h.mailer.Send(to, eventData.Subject, eventData.Body); err != nil {
		logger.Warn(logger.LogEventNotificationFail, "Email send failed", map[string]interface{}{
			"user_id":  eventData.UserID,
			"template": eventData.Template,
			"error":    err.Error(),
		})
		return
	}

	logger.Info(logger.LogEventNotificationSent, "Email sent", map[string]interface{}{
		"user_id":  eventData.UserID,
		"template": eventData.Template,
	})
}

// push: 접속 중인 유저는 빼고 보낸다. 접속 상태를 못 읽으면 전원에게 보낸다.
func (h *EventHandler) push(ctx context.Context, payload onesignal.Payload) {
	targets, err := h.directory.InactiveUserIDs(ctx, payload.PushUserList)
	if err != nil {
		logger.Warn(logger.LogEventWarning, "⚠️ Failed to read active users, pushing to all", map[string]interface{}{
			"users": payload.PushUserList,
			"error": err.Error(),
		})
		targets = payload.PushUserList
	}
	if len(targets) == 0 {
		return
	}
	payload.PushUserList = targets

	if err := h.pusher.Push(ctx, payload); err != nil {
		logger.Warn(logger.LogEventNotificationFail, "Push failed", map[string]interface{}{
			"users":  targets,
			"header": payload.Header,
			"error":  err.Error(),
		})
		return
	}

	logger.Info(logger.LogEventNotificationSent, "Push sent", map[string]interface{}{
		"users":  targets,
		"header": payload.Header,
	})
}

func likerName(name string) string {
	if name == "" {
		return "Someone"
	}
	return name
}
