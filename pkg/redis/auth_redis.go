package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

var ErrSessionNotFound = errors.New("session not found")

const sessionKeyPrefix = "session:"

// GetUserBySessionID: 인증 서비스가 저장한 session:{id} -> user uuid 조회
func (r *RedisClient) GetUserBySessionID(ctx context.Context, sessionID string) (string, error) {
	userID, err := r.Client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return "", ErrSessionNotFound
	} else if err != nil {
		return "", fmt.Errorf("get session %s: %w", sessionID, err)
	}
	return userID, nil
}
