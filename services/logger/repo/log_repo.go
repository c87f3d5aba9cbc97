package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

const databaseName = "bandhan"

type LogRepository struct {
	collection *mongo.Collection
}

func NewLogRepository(mongoClient *mongo.Client) *LogRepository {
	collection := mongoClient.Database(databaseName).Collection("logs")
	return &LogRepository{
		collection: collection,
	}
}

// InsertLog는 로그를 MongoDB에 저장합니다
func (r *LogRepository) InsertLog(ctx context.Context, log interface{}) error {
	_, err := r.collection.InsertOne(ctx, log)
	return err
}
