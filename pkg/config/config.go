package config

import (
	"os"
	"strconv"
)

const (
	DefaultPageLimit          = 10
	MaxPageLimit              = 50
	DefaultCandidatePoolLimit = 500
)

// ServiceConfig: 서비스 기동 시 한 번 읽는 환경 변수
type ServiceConfig struct {
	WebPort            int
	CandidatePoolLimit int
	ScoringConfigPath  string
	UseSessionStore    bool
}

func Load() ServiceConfig {
	return ServiceConfig{
		WebPort:            getEnvInt("WEB_PORT", 80),
		CandidatePoolLimit: getEnvInt("CANDIDATE_POOL_LIMIT", DefaultCandidatePoolLimit),
		ScoringConfigPath:  os.Getenv("SCORING_CONFIG"),
		UseSessionStore:    os.Getenv("REDIS_HOST") != "",
	}
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
