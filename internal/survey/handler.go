package survey

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moyeobab/moyeobab-backend/internal/meeting"
	"github.com/moyeobab/moyeobab-backend/internal/user"
)

// --- API 요청/응답 모델 ---

type SubmitSurveyRequest struct {
	// 빈 배열도 유효한 제출(선호 없음 1표)이므로 required를 걸지 않습니다
	CategoryIDs []uint `json:"categoryIds"`
}

type SubmitSurveyResponse struct {
	SurveyID  uint `json:"surveyId"`
	MeetingID uint `json:"meetingId"`
}

// SubmitSurveyHandler 는 참가자의 설문 제출을 처리합니다
func SubmitSurveyHandler(c *gin.Context) {
	meetingID, ok := meeting.ParseMeetingID(c)
	if !ok {
		return
	}

	userID, ok := user.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "사용자 식별 쿠키가 필요합니다"})
		return
	}

	var req SubmitSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다"})
		return
	}

	s, err := SubmitSurvey(meetingID, userID, req.CategoryIDs)
	if err != nil {
		switch {
		case errors.Is(err, meeting.ErrMeetingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "모임을 찾을 수 없습니다"})
		case errors.Is(err, ErrNotParticipant):
			c.JSON(http.StatusForbidden, gin.H{"error": "모임에 먼저 참가해 주세요"})
		case errors.Is(err, ErrInvalidCategory):
			c.JSON(http.StatusBadRequest, gin.H{"error": "선택할 수 없는 카테고리가 포함되어 있습니다"})
		case errors.Is(err, ErrDuplicateSurvey):
			c.JSON(http.StatusConflict, gin.H{"error": "이미 설문을 제출했습니다"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "설문 저장에 실패했습니다"})
		}
		return
	}

	c.JSON(http.StatusCreated, SubmitSurveyResponse{
		SurveyID:  s.ID,
		MeetingID: s.MeetingID,
	})
}
