package health

import (
	"context"
	"fmt"
	"time"

	"github.com/moyeobab/moyeobab-backend/internal/platform/database"
	"github.com/moyeobab/moyeobab-backend/pkg/lifecycle"
)

const (
	checkInterval = 5 * time.Second
	pingTimeout   = 2 * time.Second
)

// PerformCheck 는 한 번의 Redis 헬스 체크를 수행하고 상태 플래그를 갱신합니다
// 검색 캐시는 소모성 데이터라서 복구 시 별도의 재구축 절차는 필요하지 않습니다
func PerformCheck() {
	ctx, cancel := context.WithTimeout(database.Ctx, pingTimeout)
	defer cancel()

	_, err := database.RDB.Ping(ctx).Result()
	if err != nil {
		if database.IsRedisHealthy() {
			fmt.Printf("헬스 체크: Redis 응답 없음, 캐시 경로를 비활성화합니다: %v\n", err)
		}
		database.UpdateRedisStatus(false)
		return
	}

	if !database.IsRedisHealthy() {
		fmt.Println("헬스 체크: Redis 복구 감지, 캐시 경로를 다시 활성화합니다.")
	}
	database.UpdateRedisStatus(true)
}

// StartRedisHealthCheck 는 백그라운드에서 주기적으로 헬스 체크를 수행합니다
func StartRedisHealthCheck(handle *lifecycle.Handle) {
	defer handle.Close()
	fmt.Println("Redis 헬스 체커가 시작되었습니다.")

	for {
		if err := handle.Sleep(checkInterval); err != nil {
			fmt.Println("헬스 체커: 종료 신호 수신, 정리합니다.")
			return
		}
		PerformCheck()
	}
}
