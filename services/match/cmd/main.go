package main

import (
	"fmt"
	"log"
	"net/http"

	"bandhan/pkg/config"
	"bandhan/pkg/db"
	"bandhan/pkg/logger"
	appmiddleware "bandhan/pkg/middleware"
	"bandhan/pkg/mq"
	"bandhan/pkg/redis"
	"bandhan/services/match/event"
	"bandhan/services/match/handler"
	"bandhan/services/match/repository"
	"bandhan/services/match/scoring"
	"bandhan/services/match/service"
	"bandhan/services/match/transport"
)

func main() {
	logger.InitLogger(logger.ServiceTypeMatch)
	cfg := config.Load()

	scoringCfg, err := config.LoadScoring(cfg.ScoringConfigPath)
	if err != nil {
		log.Panic("궁합 설정 로드 실패: ", err)
	}

	dbConn, err := db.ConnectMySQL()
	if err != nil {
		log.Panic("MySQL 연결 실패: ", err)
	}
	if err := repository.InitDB(dbConn); err != nil {
		log.Panic("Failed to Match DB Migration: ", err)
	}

	mqClient, err := mq.ConnectToRabbitMQ()
	if err != nil {
		log.Panic("RabbitMQ 연결 실패: ", err)
	}
	defer mqClient.Close()

	if err := logger.AttachMQ(mqClient); err != nil {
		log.Panic("로그 exchange 선언 실패: ", err)
	}

	// Emitter 생성 (event 패키지 직접 참조 X)
	emitter, err := event.NewEmitter(mqClient)
	if err != nil {
		log.Panic("interest exchange 선언 실패: ", err)
	}

	// 세션 저장소가 설정된 경우에만 쿠키 인증
	var sessions appmiddleware.SessionResolver
	if cfg.UseSessionStore {
		redisClient, err := redis.NewRedisClient()
		if err != nil {
			log.Panic("Redis 연결 실패: ", err)
		}
		defer redisClient.Close()
		sessions = redisClient
	}

	// 의존성 주입 (DI)
	candidateRepo := repository.NewCandidateRepository(dbConn)
	profileRepo := repository.NewProfileRepository(dbConn)
	interestRepo := repository.NewInterestRepository(dbConn)

	scorer := scoring.NewScorer(scoringCfg)
	matchService := service.NewMatchService(candidateRepo, profileRepo, interestRepo, scorer, cfg.CandidatePoolLimit)
	interestService := service.NewInterestService(profileRepo, interestRepo, emitter)

	router := transport.NewRouter(
		handler.NewMatchHandler(matchService),
		handler.NewInterestHandler(interestService),
		sessions,
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.WebPort),
		Handler: router,
	}

	logger.Logger.Info().Msgf("🚀 Match Service Started on Port %d", cfg.WebPort)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
