package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyUserID(t *testing.T) {
	GenerateSecretKey()

	userID := "0190a8b2-7c1e-7bbb-9c39-2f1a44c7d1aa"
	signed := SignUserID(userID)

	got, ok := VerifyUserID(signed)
	require.True(t, ok)
	assert.Equal(t, userID, got)
}

func TestVerifyUserIDRejectsTampering(t *testing.T) {
	GenerateSecretKey()

	signed := SignUserID("0190a8b2-7c1e-7bbb-9c39-2f1a44c7d1aa")

	t.Run("사용자 ID 변조", func(t *testing.T) {
		tampered := "f" + signed[1:]
		_, ok := VerifyUserID(tampered)
		assert.False(t, ok)
	})

	t.Run("서명 변조", func(t *testing.T) {
		tampered := signed + "A"
		_, ok := VerifyUserID(tampered)
		assert.False(t, ok)
	})

	t.Run("키 교체 후에는 이전 서명 무효", func(t *testing.T) {
		GenerateSecretKey()
		_, ok := VerifyUserID(signed)
		assert.False(t, ok)
	})
}

func TestVerifyUserIDRejectsMalformedValues(t *testing.T) {
	GenerateSecretKey()

	for _, value := range []string{"", "no-separator", ".leading-dot", "id.!!!invalid-base64!!!"} {
		_, ok := VerifyUserID(value)
		assert.False(t, ok, "value=%q", value)
	}
}
