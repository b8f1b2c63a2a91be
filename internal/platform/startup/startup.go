package startup

import (
	"fmt"

	"github.com/moyeobab/moyeobab-backend/internal/category"
	"github.com/moyeobab/moyeobab-backend/internal/meeting"
	"github.com/moyeobab/moyeobab-backend/internal/place"
	"github.com/moyeobab/moyeobab-backend/internal/survey"
)

// InitializeApplication 은 애플리케이션 첫 기동 시 실행되는 총 진입점입니다
// 모듈 간 의존 순서(카테고리 → 모임 → 설문 → 장소)대로 초기화합니다
func InitializeApplication() error {
	fmt.Println("애플리케이션 초기화를 시작합니다...")

	if err := category.PrimeDB(); err != nil {
		return err
	}
	if err := meeting.PrimeDB(); err != nil {
		return err
	}
	if err := survey.PrimeDB(); err != nil {
		return err
	}
	if err := place.PrimeDB(); err != nil {
		return err
	}

	fmt.Println("애플리케이션 초기화 완료!")
	return nil
}
