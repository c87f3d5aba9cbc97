package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

var ErrEmailNotFound = errors.New("email not found")

const (
	// 인증 서비스가 관리하는 hash: user uuid -> 메일 주소
	userEmailKey = "user:email"
	// 앱에 접속 중인 유저: user uuid -> server id
	clientActiveKey = "client:active"
)

// GetUserEmail: 알림 메일 수신 주소 조회
func (r *RedisClient) GetUserEmail(ctx context.Context, userID string) (string, error) {
	email, err := r.Client.HGet(ctx, userEmailKey, userID).Result()
	if err == redis.Nil || (err == nil && email == "") {
		return "", ErrEmailNotFound
	} else if err != nil {
		return "", fmt.Errorf("get email of %s: %w", userID, err)
	}
	return email, nil
}

// InactiveUserIDs: 접속 중이 아닌 유저만 골라낸다. 접속 중이면 푸시를 보내지 않는다.
func (r *RedisClient) InactiveUserIDs(ctx context.Context, userIDs []string) ([]string, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	active, err := r.Client.HMGet(ctx, clientActiveKey, userIDs...).Result()
	if err != nil {
		return nil, fmt.Errorf("check active status: %w", err)
	}

	inactive := make([]string, 0, len(userIDs))
	for i, v := range active {
		if v == nil {
			inactive = append(inactive, userIDs[i])
		}
	}
	return inactive, nil
}
