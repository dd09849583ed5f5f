package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

func newTestManager() *Manager {
	return NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)
}

// TestGenerateAndParse 测试Token生成与解析
func TestGenerateAndParse(t *testing.T) {
	m := newTestManager()

	pair, err := m.GenerateToken("user-1", "lover@example.com", "BookLover")
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(7200), pair.ExpiresIn)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "lover@example.com", claims.Email)
	assert.Equal(t, "BookLover", claims.Username)
	assert.Equal(t, "bookreview", claims.Issuer)
}

// TestParseInvalidToken 测试非法Token
func TestParseInvalidToken(t *testing.T) {
	m := newTestManager()

	t.Run("随机字符串", func(t *testing.T) {
		_, err := m.ParseToken("not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("密钥不匹配", func(t *testing.T) {
		other := NewManager("other-secret", 2*time.Hour, 7*24*time.Hour)
		pair, err := other.GenerateToken("user-1", "a@b.com", "X")
		require.NoError(t, err)

		_, err = m.ParseToken(pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("已过期", func(t *testing.T) {
		expired := NewManager("test-secret", -time.Minute, 7*24*time.Hour)
		pair, err := expired.GenerateToken("user-1", "a@b.com", "X")
		require.NoError(t, err)

		_, err = m.ParseToken(pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})
}

// TestRefreshAccessToken 测试刷新Access Token
func TestRefreshAccessToken(t *testing.T) {
	m := newTestManager()

	pair, err := m.GenerateToken("user-1", "lover@example.com", "BookLover")
	require.NoError(t, err)

	newAccess, err := m.RefreshAccessToken(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := m.ParseToken(newAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}
