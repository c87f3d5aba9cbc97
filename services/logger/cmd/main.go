package main

import (
	"context"
	"log"
	"time"

	"bandhan/pkg/db"
	"bandhan/pkg/logger"
	"bandhan/pkg/mq"
	"bandhan/services/logger/event"
	"bandhan/services/logger/repo"
)

func main() {
	// 이 서비스의 로그는 log exchange로 다시 보내지 않는다
	logger.InitLogger(logger.ServiceTypeLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	mongoClient, err := db.ConnectMongo()
	if err != nil {
		log.Panic("MongoDB 연결 실패: ", err)
	}
	defer mongoClient.Disconnect(ctx)

	mqClient, err := mq.ConnectToRabbitMQ()
	if err != nil {
		log.Panic("RabbitMQ 연결 실패: ", err)
	}
	defer mqClient.Close()

	logRepo := repo.NewLogRepository(mongoClient)
	historyRepo := repo.NewHistoryRepository(mongoClient)
	if err := historyRepo.EnsureIndexes(ctx); err != nil {
		log.Panic("match_history 인덱스 생성 실패: ", err)
	}

	eventConsumer := event.NewConsumer(mqClient, event.NewEventHandler(logRepo, historyRepo))
	if err := eventConsumer.StartListening(); err != nil {
		log.Panic("Consumer 시작 실패: ", err)
	}

	logger.Logger.Info().Msg("🚀 Logger Service Started")
	select {}
}
