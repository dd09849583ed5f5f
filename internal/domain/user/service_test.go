package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/xiebiao/bookreview/internal/domain/user"
	"github.com/xiebiao/bookreview/internal/infrastructure/persistence/memory"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

func newUserService() user.Service {
	return user.NewService(memory.NewUserStore())
}

// TestRegister 测试用户注册
func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("正常注册", func(t *testing.T) {
		svc := newUserService()

		u, err := svc.Register(ctx, "BookLover", "lover@example.com", "password123")
		require.NoError(t, err)

		assert.NotEmpty(t, u.ID, "应分配唯一ID")
		assert.Equal(t, "BookLover", u.Username)
		assert.Equal(t, "lover@example.com", u.Email)

		// 密码必须是bcrypt哈希,不能是明文
		assert.NotEqual(t, "password123", u.Password)
		err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("password123"))
		assert.NoError(t, err, "哈希应能验证原密码")
	})

	t.Run("邮箱格式错误应失败", func(t *testing.T) {
		svc := newUserService()

		_, err := svc.Register(ctx, "BookLover", "not-an-email", "password123")
		require.Error(t, err)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, appErr.Code)
	})

	t.Run("密码强度不足应失败", func(t *testing.T) {
		svc := newUserService()

		// 太短
		_, err := svc.Register(ctx, "BookLover", "lover@example.com", "abc1")
		assert.Error(t, err)

		// 只有字母
		_, err = svc.Register(ctx, "BookLover", "lover@example.com", "abcdefghij")
		assert.Error(t, err)

		// 只有数字
		_, err = svc.Register(ctx, "BookLover", "lover@example.com", "1234567890")
		assert.Error(t, err)
	})

	t.Run("用户名长度超限应失败", func(t *testing.T) {
		svc := newUserService()

		_, err := svc.Register(ctx, "A", "lover@example.com", "password123")
		assert.Error(t, err, "用户名过短应失败")
	})

	t.Run("重复邮箱应失败", func(t *testing.T) {
		svc := newUserService()

		_, err := svc.Register(ctx, "UserOne", "same@example.com", "password123")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "UserTwo", "same@example.com", "password456")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)
	})
}

// TestLogin 测试用户登录
func TestLogin(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (user.Service, *user.User) {
		svc := newUserService()
		u, err := svc.Register(ctx, "BookLover", "lover@example.com", "password123")
		require.NoError(t, err)
		return svc, u
	}

	t.Run("正常登录", func(t *testing.T) {
		svc, registered := setup(t)

		u, err := svc.Login(ctx, "lover@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, u.ID)
	})

	t.Run("密码错误返回统一错误", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Login(ctx, "lover@example.com", "wrongpass1")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("邮箱不存在返回同一错误", func(t *testing.T) {
		svc, _ := setup(t)

		// 与密码错误返回相同错误,防止客户端枚举已注册邮箱
		_, err := svc.Login(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})
}

// TestGetByID 测试按ID查询用户
func TestGetByID(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	registered, err := svc.Register(ctx, "BookLover", "lover@example.com", "password123")
	require.NoError(t, err)

	t.Run("查询存在的用户", func(t *testing.T) {
		u, err := svc.GetByID(ctx, registered.ID)
		require.NoError(t, err)
		assert.Equal(t, "BookLover", u.Username)
	})

	t.Run("查询不存在的用户", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "no-such-id")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
