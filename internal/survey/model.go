package survey

import "gorm.io/gorm"

// Survey 는 참가자 한 명이 낸 음식 취향 설문입니다
// (MeetingID, ParticipantID) 유니크 제약이 1인 1설문을 보장하며,
// 생성 이후에는 수정되지 않습니다
type Survey struct {
	gorm.Model

	MeetingID     uint `gorm:"uniqueIndex:idx_survey_meeting_participant;not null" json:"meetingId"`
	ParticipantID uint `gorm:"uniqueIndex:idx_survey_meeting_participant;not null" json:"participantId"`
}

// SurveyResult 는 참가자가 고른 LEAF 카테고리 한 건입니다
// 설문 생성 시 일괄 삽입되고 이후 변경되지 않습니다
type SurveyResult struct {
	gorm.Model

	SurveyID         uint `gorm:"index;not null" json:"surveyId"`
	SurveyCategoryID uint `gorm:"not null" json:"surveyCategoryId"`
}
