package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	HistoryKindLike   = "like"
	HistoryKindMutual = "mutual"
)

// MatchHistory: 좋아요/상호 매칭 이력 한 건
type MatchHistory struct {
	EventID    string    `bson:"event_id"`
	Kind       string    `bson:"kind"`
	UserIDs    []string  `bson:"user_ids"`
	LikerID    string    `bson:"liker_id,omitempty"`
	LikedID    string    `bson:"liked_id,omitempty"`
	IsMutual   bool      `bson:"is_mutual"`
	OccurredAt time.Time `bson:"occurred_at"`
}

type HistoryRepository struct {
	collection *mongo.Collection
}

func NewHistoryRepository(mongoClient *mongo.Client) *HistoryRepository {
	collection := mongoClient.Database(databaseName).Collection("match_history")
	return &HistoryRepository{
		collection: collection,
	}
}

// EnsureIndexes: event_id 유일, 유저별 최신순 조회
func (r *HistoryRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "event_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_ids", Value: 1}, {Key: "occurred_at", Value: -1}},
		},
	})
	return err
}

// UpsertHistory: 같은 이벤트가 다시 와도 한 건만 남긴다
func (r *HistoryRepository) UpsertHistory(ctx context.Context, h MatchHistory) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"event_id": h.EventID},
		bson.M{"$setOnInsert": h},
		options.Update().SetUpsert(true),
	)
	return err
}
