package database

import (
	"context"
	"fmt"

	"github.com/moyeobab/moyeobab-backend/internal/platform/config"
	"github.com/redis/go-redis/v9"
)

// RDB 는 검색 결과 캐시용 전역 Redis 클라이언트입니다
var RDB *redis.Client

// Ctx 는 Redis 조작에 사용하는 전역 컨텍스트입니다
var Ctx = context.Background()

// InitRedis 는 Redis 연결을 초기화합니다
// 캐시는 필수 구성요소가 아니므로, 연결 실패 시 panic 대신 비가용 상태로 표시합니다
func InitRedis(cfg config.RedisConfig) {
	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		fmt.Printf("Redis 연결 실패, 캐시 없이 기동합니다: %v\n", err)
		UpdateRedisStatus(false)
		return
	}

	UpdateRedisStatus(true)
	fmt.Println("Redis 연결 성공!")
}
