package database

import "sync"

// redisStatus 는 백그라운드 헬스 체커가 갱신하는 Redis 가용성 플래그입니다
// 캐시 경로는 이 플래그를 확인하고, 비가용이면 조용히 캐시를 건너뜁니다
var (
	statusMu     sync.RWMutex
	redisHealthy bool
)

// IsRedisHealthy 는 마지막 헬스 체크 기준의 Redis 가용성을 반환합니다
func IsRedisHealthy() bool {
	statusMu.RLock()
	defer statusMu.RUnlock()
	return redisHealthy
}

// UpdateRedisStatus 는 헬스 체크 결과를 반영합니다
func UpdateRedisStatus(healthy bool) {
	statusMu.Lock()
	defer statusMu.Unlock()
	redisHealthy = healthy
}
