package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"bandhan/pkg/logger"
	"bandhan/pkg/redis"
	"bandhan/services/gateway/handler"
	"bandhan/services/gateway/transport"
)

const webPort = 80

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	logger.InitLogger(logger.ServiceTypeGateway)

	redisClient, err := redis.NewRedisClient()
	if err != nil {
		log.Panic("Redis 연결 실패: ", err)
	}
	defer redisClient.Close()

	matchURL := getEnv("MATCH_SERVICE_URL", "http://bandhan-match")
	userURL := getEnv("USER_SERVICE_URL", "http://bandhan-user")
	gatewayHandler := handler.NewGatewayHandler(map[string]string{
		"matches":    matchURL,
		"profile":    userURL,
		"preference": userURL,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", webPort),
		Handler: transport.NewRouter(gatewayHandler, redisClient),
	}

	logger.Logger.Info().Msgf("🚀 Gateway Service Started on Port %d", webPort)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
