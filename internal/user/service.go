package user

import (
	"fmt"

	"github.com/google/uuid"
)

// CreateProvisionalUser 는 아직 어디에도 저장되지 않은 임시 사용자 UUID를 생성합니다.
// 이 값은 서명되어 쿠키에 실리고, 좋아요/설문 기록의 소유자 식별에 사용됩니다.
func CreateProvisionalUser() (string, error) {
	newUUID, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("UUID v7을 생성할 수 없습니다: %w", err)
	}
	return newUUID.String(), nil
}

// IsValidUUID 는 문자열이 UUID 형식인지 확인합니다.
func IsValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
