package place

import (
	"fmt"

	"github.com/moyeobab/moyeobab-backend/internal/platform/database"
)

// PrimeDB 는 place 모듈의 테이블을 마이그레이션합니다
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&MeetingPlace{}, &PlaceLike{}); err != nil {
		return fmt.Errorf("place 테이블을 마이그레이션할 수 없습니다: %w", err)
	}
	fmt.Println("Place 데이터베이스 테이블 마이그레이션 성공.")
	return nil
}
