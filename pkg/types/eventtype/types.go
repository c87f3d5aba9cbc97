package eventtypes

import (
	"encoding/json"
	"time"
)

type EventPayload struct {
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data"`
}

// Event Types
const (
	EventTypeLikeCreated = "like.created"
	EventTypeMutualMatch = "match.mutual"
	EventTypeEmail       = "email.send"
	EventTypeLog         = "log"
)

// LikeCreatedEvent: "새로운 좋아요" 알림
type LikeCreatedEvent struct {
	EventID   string    `json:"event_id" bson:"event_id"`
	LikerID   string    `json:"liker_id" bson:"liker_id"`
	LikerName string    `json:"liker_name" bson:"liker_name"`
	LikedID   string    `json:"liked_id" bson:"liked_id"`
	IsMutual  bool      `json:"is_mutual" bson:"is_mutual"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// MutualMatchEvent: 두 사람이 서로 좋아요 한 순간 발행
type MutualMatchEvent struct {
	EventID   string    `json:"event_id" bson:"event_id"`
	UserIDs   []string  `json:"user_ids" bson:"user_ids"`
	MatchedAt time.Time `json:"matched_at" bson:"matched_at"`
}

// EmailEvent: best-effort 메일 발송 요청
type EmailEvent struct {
	EventID  string `json:"event_id" bson:"event_id"`
	UserID   string `json:"user_id" bson:"user_id"`
	Template string `json:"template" bson:"template"`
	Subject  string `json:"subject" bson:"subject"`
	Body     string `json:"body" bson:"body"`
}

const (
	EmailTemplateNewLike     = "new_like"
	EmailTemplateMutualMatch = "mutual_match"
)
