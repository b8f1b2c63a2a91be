package survey

import (
	"fmt"

	"github.com/moyeobab/moyeobab-backend/internal/platform/database"
)

// SurveyWithResults 는 설문 한 건과 선택된 카테고리 ID 목록의 묶음입니다
type SurveyWithResults struct {
	ParticipantID uint
	CategoryIDs   []uint
}

// ListSurveysWithResults 는 모임의 전체 설문과 선택 항목을 두 번의 질의로 읽습니다.
// 설문마다 결과를 따로 조회(N+1)하지 않습니다
func ListSurveysWithResults(meetingID uint) ([]SurveyWithResults, error) {
	var surveys []Survey
	if err := database.DB.Where("meeting_id = ?", meetingID).Order("id asc").Find(&surveys).Error; err != nil {
		return nil, fmt.Errorf("설문 목록 조회 실패: %w", err)
	}
	if len(surveys) == 0 {
		return nil, nil
	}

	surveyIDs := make([]uint, 0, len(surveys))
	for _, s := range surveys {
		surveyIDs = append(surveyIDs, s.ID)
	}

	var results []SurveyResult
	if err := database.DB.Where("survey_id IN ?", surveyIDs).Find(&results).Error; err != nil {
		return nil, fmt.Errorf("설문 결과 조회 실패: %w", err)
	}

	resultsBySurvey := make(map[uint][]uint, len(surveys))
	for _, r := range results {
		resultsBySurvey[r.SurveyID] = append(resultsBySurvey[r.SurveyID], r.SurveyCategoryID)
	}

	out := make([]SurveyWithResults, 0, len(surveys))
	for _, s := range surveys {
		out = append(out, SurveyWithResults{
			ParticipantID: s.ParticipantID,
			CategoryIDs:   resultsBySurvey[s.ID],
		})
	}
	return out, nil
}
