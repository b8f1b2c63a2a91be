package api

import (
	"github.com/gin-gonic/gin"
	"github.com/moyeobab/moyeobab-backend/internal/category"
	"github.com/moyeobab/moyeobab-backend/internal/meeting"
	"github.com/moyeobab/moyeobab-backend/internal/place"
	"github.com/moyeobab/moyeobab-backend/internal/survey"
	"github.com/moyeobab/moyeobab-backend/internal/user"
)

// SetupRoutes 는 프로젝트의 모든 API 라우트를 등록합니다
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// 카테고리 조회
		api.GET("/categories", category.GetCategories)

		// 모임 관련 라우트
		meetings := api.Group("/meetings")
		{
			meetings.POST("", user.EnsureUserCookieMiddleware(), meeting.CreateMeetingHandler)
			meetings.POST("/:id/participants", user.EnsureUserCookieMiddleware(), user.LoadUserMiddleware(), meeting.JoinMeetingHandler)

			// 설문 제출
			meetings.POST("/:id/surveys", user.LoadUserMiddleware(), survey.SubmitSurveyHandler)

			// 장소 검색과 좋아요
			meetings.GET("/:id/places", user.LoadUserMiddleware(), place.SearchPlacesHandler)
			meetings.POST("/:id/places/:placeId/like", user.LoadUserMiddleware(), place.ToggleLikeHandler)
		}
	}
}
