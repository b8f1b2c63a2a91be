package meeting

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/moyeobab/moyeobab-backend/internal/platform/database"
	"gorm.io/gorm"
)

// CreateMeetingInput 은 모임 생성에 필요한 입력입니다
type CreateMeetingInput struct {
	Title       string
	StationName string
	StationLat  *float64
	StationLng  *float64
}

// CreateMeeting 은 초대 코드를 발급하며 새 모임을 만듭니다
func CreateMeeting(input CreateMeetingInput) (*Meeting, error) {
	code, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("초대 코드를 생성할 수 없습니다: %w", err)
	}

	m := Meeting{
		Title:       input.Title,
		InviteCode:  code.String(),
		StationName: input.StationName,
		StationLat:  input.StationLat,
		StationLng:  input.StationLng,
	}
	if err := database.DB.Create(&m).Error; err != nil {
		return nil, fmt.Errorf("모임 생성 실패: %w", err)
	}
	return &m, nil
}

// JoinMeeting 은 닉네임으로 모임에 참가합니다.
// (meetingID, nickname) 유니크 제약이 중복 닉네임을 걸러냅니다
func JoinMeeting(meetingID uint, nickname string, userID string) (*Participant, error) {
	if _, err := GetMeetingByID(meetingID); err != nil {
		return nil, err
	}

	p := Participant{
		MeetingID: meetingID,
		Nickname:  nickname,
		UserID:    userID,
	}
	err := database.DB.Create(&p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("%w: meeting=%d nickname=%s", ErrDuplicateNickname, meetingID, nickname)
	}
	if err != nil {
		return nil, fmt.Errorf("모임 참가 실패: %w", err)
	}
	return &p, nil
}

// GetParticipant 는 모임 안에서 사용자의 참가 정보를 찾습니다
func GetParticipant(meetingID uint, userID string) (*Participant, error) {
	var p Participant
	err := database.DB.Where("meeting_id = ? AND user_id = ?", meetingID, userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("참가자 조회 실패: %w", err)
	}
	return &p, nil
}
