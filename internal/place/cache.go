package place

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/moyeobab/moyeobab-backend/internal/platform/config"
	"github.com/moyeobab/moyeobab-backend/internal/platform/database"
	"github.com/redis/go-redis/v9"
)

// CacheKeyPrefix 는 검색 결과 캐시가 쓰는 Redis 키 접두사입니다
const CacheKeyPrefix = "place_search:"

// cacheKey 는 모임 ID와 설문 수를 함께 넣어, 새 설문이 제출되면
// 이전 캐시가 자연히 비켜나도록 합니다
func cacheKey(meetingID uint, totalRespondents int) string {
	return fmt.Sprintf("%s%d:%d", CacheKeyPrefix, meetingID, totalRespondents)
}

// loadCachedResults 는 계획에 대응하는 병합 결과를 캐시에서 읽습니다.
// Redis가 비가용이면 조용히 건너뜁니다
func loadCachedResults(plan *SearchPlan, meetingID uint) ([]mergedPlace, bool) {
	if database.RDB == nil || !database.IsRedisHealthy() {
		return nil, false
	}

	raw, err := database.RDB.Get(database.Ctx, cacheKey(meetingID, plan.TotalRespondents)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		fmt.Printf("검색 캐시 읽기 실패 (무시): %v\n", err)
		return nil, false
	}

	var merged []mergedPlace
	if err := json.Unmarshal([]byte(raw), &merged); err != nil {
		return nil, false
	}
	return merged, true
}

// storeCachedResults 는 병합 결과를 TTL과 함께 캐시에 씁니다
func storeCachedResults(plan *SearchPlan, meetingID uint, merged []mergedPlace) {
	if database.RDB == nil || !database.IsRedisHealthy() {
		return
	}

	raw, err := json.Marshal(merged)
	if err != nil {
		return
	}

	if err := database.RDB.Set(database.Ctx, cacheKey(meetingID, plan.TotalRespondents), raw, cacheTTL()).Err(); err != nil {
		fmt.Printf("검색 캐시 쓰기 실패 (무시): %v\n", err)
	}
}

func cacheTTL() time.Duration {
	if config.Cfg != nil {
		return config.Cfg.Search.CacheTTL()
	}
	return config.SearchConfig{}.CacheTTL()
}
