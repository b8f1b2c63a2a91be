package database

import (
	"fmt"
	"log"
	"os"

	"github.com/moyeobab/moyeobab-backend/internal/platform/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 는 프로젝트 전역에서 사용하는 GORM 커넥션입니다
var DB *gorm.DB

// InitDB 는 설정에 따라 SQLite 또는 PostgreSQL 커넥션을 초기화합니다
// TranslateError를 켜서 유니크 제약 위반이 gorm.ErrDuplicatedKey로 변환되게 합니다
// (좋아요 토글의 "insert 후 충돌 시 delete" 분기가 이 변환에 의존합니다)
func InitDB(cfg config.DatabaseConfig) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: 0,
			LogLevel:      logger.Silent,
			Colorful:      true,
		},
	)

	gormCfg := &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	}

	var err error
	switch cfg.Driver {
	case "postgres":
		DB, err = gorm.Open(postgres.Open(cfg.Postgres.DSN), gormCfg)
	default:
		path := cfg.Sqlite.Path
		if path == "" {
			path = "moyeobab.db"
		}
		DB, err = gorm.Open(sqlite.Open(path), gormCfg)
	}

	if err != nil {
		fmt.Println("데이터베이스 연결 실패", err)
		panic(err)
	}

	fmt.Println("데이터베이스 연결 성공!")
}
