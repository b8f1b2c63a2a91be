package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/moyeobab/moyeobab-backend/api"
	"github.com/moyeobab/moyeobab-backend/internal/place"
	"github.com/moyeobab/moyeobab-backend/internal/platform/config"
	"github.com/moyeobab/moyeobab-backend/internal/platform/database"
	"github.com/moyeobab/moyeobab-backend/internal/platform/health"
	"github.com/moyeobab/moyeobab-backend/internal/platform/shutdown"
	"github.com/moyeobab/moyeobab-backend/internal/platform/startup"
	"github.com/moyeobab/moyeobab-backend/internal/provider/kakao"
	"github.com/moyeobab/moyeobab-backend/pkg/lifecycle"
	"github.com/moyeobab/moyeobab-backend/pkg/token"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("설정을 로드할 수 없습니다: %v", err))
	}

	token.GenerateSecretKey()
	database.InitDB(cfg.Database)
	database.InitRedis(cfg.Database.Redis)

	if err := startup.InitializeApplication(); err != nil {
		panic(fmt.Sprintf("애플리케이션 초기화 실패: %v", err))
	}

	// 외부 검색 제공자 연결
	place.Configure(kakao.NewClient(cfg.Kakao))

	// 백그라운드 작업: Redis 헬스 체크, 만료 모임 정리
	manager := lifecycle.NewManager()

	healthHandle, err := manager.NewServiceHandle("redis-health-checker")
	if err != nil {
		panic(err)
	}
	go health.StartRedisHealthCheck(healthHandle)

	cleanupHandle, err := manager.NewServiceHandle("meeting-cleanup")
	if err != nil {
		panic(err)
	}
	go place.StartCleanupScheduler(cleanupHandle)

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r)

	address := cfg.Server.Address
	if address == "" {
		address = ":8080"
	}
	server := &http.Server{
		Addr:    address,
		Handler: r,
	}

	go func() {
		fmt.Printf("서버 준비 완료. %s 에서 대기 중\n", address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("서버 시작 실패: " + err.Error())
		}
	}()

	coordinator := shutdown.NewCoordinator(manager)
	coordinator.ListenForSignalsAndShutdown(server)
}
