package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

// secretKey 는 서버 기동 시 생성되는 32바이트 서명 키입니다.
// 사용자 식별 쿠키의 위조를 막는 용도로만 사용합니다.
var secretKey []byte

// GenerateSecretKey 는 암호학적으로 안전한 32바이트 키를 생성합니다.
func GenerateSecretKey() {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic("서명 키를 생성할 수 없습니다: " + err.Error())
	}
	secretKey = key
	fmt.Println("HMAC 서명 키가 생성되었습니다.")
}

// SignUserID 는 사용자 UUID에 HMAC-SHA256 서명을 붙인 쿠키 값을 만듭니다.
// 형식: "<uuid>.<base64url 서명>"
func SignUserID(userID string) string {
	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(userID))
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	return userID + "." + sig
}

// VerifyUserID 는 쿠키 값을 검증하고 원래의 사용자 UUID를 돌려줍니다.
// 서명이 일치하지 않으면 두 번째 반환값이 false입니다.
func VerifyUserID(cookieValue string) (string, bool) {
	idx := strings.LastIndexByte(cookieValue, '.')
	if idx <= 0 {
		return "", false
	}
	userID, sigB64 := cookieValue[:idx], cookieValue[idx+1:]

	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(userID))
	expected := mac.Sum(nil)

	actual, err := base64.RawURLEncoding.DecodeString(sigB64)
	if err != nil {
		return "", false
	}

	// 타이밍 공격을 막기 위해 상수 시간 비교를 사용합니다
	if !hmac.Equal(expected, actual) {
		return "", false
	}
	return userID, true
}
