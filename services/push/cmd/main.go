package main

import (
	"log"

	"bandhan/pkg/logger"
	"bandhan/pkg/mq"
	"bandhan/pkg/redis"
	"bandhan/services/push/event"
	"bandhan/services/push/mail"
	"bandhan/services/push/onesignal"
)

func main() {
	logger.InitLogger(logger.ServiceTypePush)

	mqClient, err := mq.ConnectToRabbitMQ()
	if err != nil {
		log.Panic("RabbitMQ 연결 실패: ", err)
	}
	defer mqClient.Close()

	if err := logger.AttachMQ(mqClient); err != nil {
		log.Panic("로그 exchange 선언 실패: ", err)
	}

	redisClient, err := redis.NewRedisClient()
	if err != nil {
		log.Panic("Redis 연결 실패: ", err)
	}
	defer redisClient.Close()

	pusher := onesignal.NewClientFromEnv()
	mailer := mail.NewMailerFromEnv()

	consumer := event.NewConsumer(mqClient, event.NewEventHandler(pusher, mailer, redisClient))
	if err := consumer.StartListening(); err != nil {
		log.Panic("Consumer 시작 실패: ", err)
	}

	logger.Logger.Info().Msg("🚀 Push Service Started")
	select {}
}
