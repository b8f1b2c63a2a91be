package survey

import (
	"errors"
	"fmt"

	"github.com/moyeobab/moyeobab-backend/internal/category"
	"github.com/moyeobab/moyeobab-backend/internal/meeting"
	"github.com/moyeobab/moyeobab-backend/internal/platform/database"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateSurvey 는 같은 참가자가 설문을 두 번 내려 할 때 반환됩니다
	ErrDuplicateSurvey = errors.New("이미 설문을 제출했습니다")
	// ErrNotParticipant 는 모임에 참가하지 않은 사용자가 설문을 낼 때 반환됩니다
	ErrNotParticipant = errors.New("모임 참가자가 아닙니다")
	// ErrInvalidCategory 는 선택 항목이 활성 LEAF 카테고리가 아닐 때 반환됩니다
	ErrInvalidCategory = errors.New("선택할 수 없는 카테고리입니다")
)

// SubmitSurvey 는 참가자의 설문을 생성하고 선택 항목을 일괄 삽입합니다.
// (meetingID, participantID) 유니크 제약이 중복 제출을 막습니다
func SubmitSurvey(meetingID uint, userID string, categoryIDs []uint) (*Survey, error) {
	participant, err := meeting.GetParticipant(meetingID, userID)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, fmt.Errorf("%w: meeting=%d", ErrNotParticipant, meetingID)
	}

	hierarchy, err := category.LoadHierarchy()
	if err != nil {
		return nil, err
	}
	for _, id := range categoryIDs {
		cat, ok := hierarchy.ByID(id)
		if !ok || !cat.IsLeaf() {
			return nil, fmt.Errorf("%w: id=%d", ErrInvalidCategory, id)
		}
	}

	s := Survey{
		MeetingID:     meetingID,
		ParticipantID: participant.ID,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&s).Error; err != nil {
			return err
		}
		if len(categoryIDs) == 0 {
			return nil
		}
		results := make([]SurveyResult, 0, len(categoryIDs))
		for _, id := range categoryIDs {
			results = append(results, SurveyResult{
				SurveyID:         s.ID,
				SurveyCategoryID: id,
			})
		}
		return tx.Create(&results).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("%w: meeting=%d participant=%d", ErrDuplicateSurvey, meetingID, participant.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("설문 저장 실패: %w", err)
	}
	return &s, nil
}
