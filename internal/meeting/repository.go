package meeting

import (
	"errors"
	"fmt"

	"github.com/moyeobab/moyeobab-backend/internal/platform/database"
	"gorm.io/gorm"
)

// 모듈 차원의 실패 유형. 핸들러는 errors.Is로 분기합니다
var (
	ErrMeetingNotFound   = errors.New("모임을 찾을 수 없습니다")
	ErrStationNotFound   = errors.New("모임의 기준 역을 찾을 수 없습니다")
	ErrDuplicateNickname = errors.New("이미 사용 중인 닉네임입니다")
)

// GetMeetingByID 는 모임을 조회합니다. 없으면 ErrMeetingNotFound를 반환합니다
func GetMeetingByID(meetingID uint) (*Meeting, error) {
	var m Meeting
	err := database.DB.First(&m, meetingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id=%d", ErrMeetingNotFound, meetingID)
	}
	if err != nil {
		return nil, fmt.Errorf("모임 조회 실패: %w", err)
	}
	return &m, nil
}

// Exists 는 모임 존재 여부만 확인합니다
func Exists(meetingID uint) (bool, error) {
	var count int64
	if err := database.DB.Model(&Meeting{}).Where("id = ?", meetingID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("모임 존재 확인 실패: %w", err)
	}
	return count > 0, nil
}

// GetStation 은 검색 계획 수립에 필요한 역 정보를 반환합니다.
// 모임이 없거나 역 이름이 비어 있으면 ErrStationNotFound입니다
func GetStation(meetingID uint) (*Station, error) {
	m, err := GetMeetingByID(meetingID)
	if err != nil {
		if errors.Is(err, ErrMeetingNotFound) {
			return nil, fmt.Errorf("%w: meeting=%d", ErrStationNotFound, meetingID)
		}
		return nil, err
	}
	if m.StationName == "" {
		return nil, fmt.Errorf("%w: meeting=%d", ErrStationNotFound, meetingID)
	}
	return &Station{Name: m.StationName, Lat: m.StationLat, Lng: m.StationLng}, nil
}
