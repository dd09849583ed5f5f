package user

import (
	"time"

	"github.com/google/uuid"
)

// User 用户实体（聚合根）
// DDD设计说明：
// 1. User是用户聚合的根实体，是图书与书评所有权的归属单位
// 2. 密码已加密存储（bcrypt），不应该有GetPassword()等方法暴露明文
// 3. 注册后不可修改（本系统不提供用户编辑入口）
// 4. 领域实体不依赖GORM tag（infrastructure层的Repository实现时会处理映射）
type User struct {
	ID        string
	Username  string
	Email     string
	Password  string // bcrypt哈希值
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(username, email, hashedPassword string) *User {
	now := time.Now()
	return &User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
