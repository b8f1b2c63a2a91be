package user

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moyeobab/moyeobab-backend/pkg/token"
)

const (
	CookieName   = "user-id"
	CookieMaxAge = 365 * 24 * 60 * 60
	UserIDKey    = "userID"
)

// EnsureUserCookieMiddleware 는 서명된 user-id 쿠키가 있는지 확인합니다.
// 없거나 서명이 깨져 있으면 새 임시 ID를 발급해 쿠키를 설정합니다.
func EnsureUserCookieMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieValue, err := c.Cookie(CookieName)

		if err != nil || !isValidCookie(cookieValue) {
			if err != http.ErrNoCookie {
				fmt.Printf("유효하지 않은 사용자 쿠키 감지: %s, err: %v\n", cookieValue, err)
			}
			provisionalID, err := CreateProvisionalUser()
			if err != nil {
				fmt.Printf("임시 사용자 ID 생성 중 오류: %v\n", err)
			} else {
				c.SetCookie(CookieName, token.SignUserID(provisionalID), CookieMaxAge, "/", "", false, true)
				c.Set(UserIDKey, provisionalID)
			}
		}

		c.Next()
	}
}

// LoadUserMiddleware 는 쿠키를 검증해 사용자 ID를 Gin 컨텍스트에 넣습니다.
// 쿠키가 없는 요청은 익명으로 통과하며, 핸들러가 필요 시 거부합니다.
func LoadUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieValue, err := c.Cookie(CookieName)
		if err == nil {
			if userID, ok := token.VerifyUserID(cookieValue); ok {
				c.Set(UserIDKey, userID)
			}
		}
		c.Next()
	}
}

// CurrentUserID 는 미들웨어가 적재한 사용자 ID를 꺼냅니다.
func CurrentUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func isValidCookie(cookieValue string) bool {
	userID, ok := token.VerifyUserID(cookieValue)
	return ok && IsValidUUID(userID)
}
