package meeting

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/moyeobab/moyeobab-backend/internal/user"
)

// --- API 요청/응답 모델 ---

type CreateMeetingRequest struct {
	Title       string   `json:"title" binding:"required"`
	StationName string   `json:"stationName" binding:"required"`
	StationLat  *float64 `json:"stationLat"`
	StationLng  *float64 `json:"stationLng"`
}

type MeetingResponse struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	InviteCode  string   `json:"inviteCode"`
	StationName string   `json:"stationName"`
	StationLat  *float64 `json:"stationLat"`
	StationLng  *float64 `json:"stationLng"`
}

type JoinMeetingRequest struct {
	Nickname string `json:"nickname" binding:"required,min=1,max=20"`
}

type ParticipantResponse struct {
	ID        uint   `json:"id"`
	MeetingID uint   `json:"meetingId"`
	Nickname  string `json:"nickname"`
}

// ParseMeetingID 는 경로 파라미터에서 모임 ID를 해석합니다
func ParseMeetingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "올바르지 않은 모임 ID입니다"})
		return 0, false
	}
	return uint(id), true
}

// CreateMeetingHandler 는 새 모임을 생성합니다
func CreateMeetingHandler(c *gin.Context) {
	var req CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다"})
		return
	}

	m, err := CreateMeeting(CreateMeetingInput{
		Title:       req.Title,
		StationName: req.StationName,
		StationLat:  req.StationLat,
		StationLng:  req.StationLng,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "모임을 생성하지 못했습니다"})
		return
	}

	c.JSON(http.StatusCreated, MeetingResponse{
		ID:          m.ID,
		Title:       m.Title,
		InviteCode:  m.InviteCode,
		StationName: m.StationName,
		StationLat:  m.StationLat,
		StationLng:  m.StationLng,
	})
}

// JoinMeetingHandler 는 닉네임으로 모임에 참가시킵니다
func JoinMeetingHandler(c *gin.Context) {
	meetingID, ok := ParseMeetingID(c)
	if !ok {
		return
	}

	userID, ok := user.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "사용자 식별 쿠키가 필요합니다"})
		return
	}

	var req JoinMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다"})
		return
	}

	p, err := JoinMeeting(meetingID, req.Nickname, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrMeetingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "모임을 찾을 수 없습니다"})
		case errors.Is(err, ErrDuplicateNickname):
			c.JSON(http.StatusConflict, gin.H{"error": "이미 사용 중인 닉네임입니다"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "모임 참가에 실패했습니다"})
		}
		return
	}

	c.JSON(http.StatusCreated, ParticipantResponse{
		ID:        p.ID,
		MeetingID: p.MeetingID,
		Nickname:  p.Nickname,
	})
}
