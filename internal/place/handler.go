package place

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moyeobab/moyeobab-backend/internal/meeting"
	"github.com/moyeobab/moyeobab-backend/internal/user"
)

// SearchPlacesHandler 는 모임의 설문 집계로부터 후보 식당 목록을 만듭니다
func SearchPlacesHandler(c *gin.Context) {
	meetingID, ok := meeting.ParseMeetingID(c)
	if !ok {
		return
	}

	// 비로그인 사용자도 목록은 볼 수 있습니다. Liked만 항상 false가 됩니다
	userID, _ := user.CurrentUserID(c)

	response, err := Search(c.Request.Context(), meetingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, meeting.ErrMeetingNotFound), errors.Is(err, meeting.ErrStationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "모임 또는 기준 역을 찾을 수 없습니다"})
		case errors.Is(err, ErrProviderUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "장소 검색을 일시적으로 사용할 수 없습니다"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "장소 검색 중 오류가 발생했습니다"})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// ToggleLikeHandler 는 장소 좋아요를 토글합니다
func ToggleLikeHandler(c *gin.Context) {
	meetingID, ok := meeting.ParseMeetingID(c)
	if !ok {
		return
	}

	placeID := c.Param("placeId")
	if placeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "장소 ID가 필요합니다"})
		return
	}

	userID, ok := user.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "사용자 식별 쿠키가 필요합니다"})
		return
	}

	status, err := ToggleLike(meetingID, placeID, userID)
	if err != nil {
		if errors.Is(err, ErrMeetingPlaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "장소를 찾을 수 없습니다"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "좋아요 처리에 실패했습니다"})
		}
		return
	}

	c.JSON(http.StatusOK, status)
}
