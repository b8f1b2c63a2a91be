package survey

import (
	"fmt"

	"github.com/moyeobab/moyeobab-backend/internal/platform/database"
)

// PrimeDB 는 survey 모듈의 테이블을 마이그레이션합니다
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&Survey{}, &SurveyResult{}); err != nil {
		return fmt.Errorf("survey 테이블을 마이그레이션할 수 없습니다: %w", err)
	}
	fmt.Println("Survey 데이터베이스 테이블 마이그레이션 성공.")
	return nil
}
