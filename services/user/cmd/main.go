package main

import (
	"fmt"
	"log"
	"net/http"

	"bandhan/pkg/config"
	"bandhan/pkg/db"
	"bandhan/pkg/logger"
	"bandhan/pkg/mq"
	"bandhan/services/user/handler"
	"bandhan/services/user/repository"
	"bandhan/services/user/service"
	"bandhan/services/user/transport"
)

func main() {
	logger.InitLogger(logger.ServiceTypeUser)
	cfg := config.Load()

	dbConn, err := db.ConnectMySQL()
	if err != nil {
		log.Panic("MySQL 연결 실패: ", err)
	}

	mqClient, err := mq.ConnectToRabbitMQ()
	if err != nil {
		log.Panic("RabbitMQ 연결 실패: ", err)
	}
	defer mqClient.Close()

	if err := logger.AttachMQ(mqClient); err != nil {
		log.Panic("로그 exchange 선언 실패: ", err)
	}

	// 의존성 주입 (DI)
	profileRepo := repository.NewProfileRepository(dbConn) // Repository 생성
	if err := profileRepo.InitDB(); err != nil {
		log.Panic("Failed to User DB Migration: ", err)
	}
	preferenceRepo := repository.NewPreferenceRepository(dbConn)

	profileService := service.NewProfileService(profileRepo)                       // Service 생성
	preferenceService := service.NewPreferenceService(preferenceRepo, profileRepo) // Service 생성
	profileHandler := handler.NewProfileHandler(profileService)                    // Handler 생성
	preferenceHandler := handler.NewPreferenceHandler(preferenceService)           // Handler 생성

	router := transport.NewRouter(profileHandler, preferenceHandler)

	logger.Logger.Info().Msgf("🚀 User Service Started on Port %d", cfg.WebPort)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", cfg.WebPort), router))
}
