package user

import (
	"context"
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// Service 用户领域服务
// 设计说明：
// 1. Service包含不属于单个实体的业务逻辑（如密码加密、验证）
// 2. Service依赖Repository接口，不依赖具体实现（依赖倒置）
// 3. Service不处理HTTP请求，只处理业务逻辑
type Service interface {
	// Register 用户注册
	// 邮箱重复时返回ErrEmailDuplicate
	Register(ctx context.Context, username, email, password string) (*User, error)

	// Login 用户登录
	// 邮箱不存在或密码错误都返回ErrInvalidPassword（不区分，防止枚举邮箱）
	Login(ctx context.Context, email, password string) (*User, error)

	// GetByID 根据ID获取用户（书评冗余用户名时使用）
	GetByID(ctx context.Context, id string) (*User, error)
}

type service struct {
	repo Repository
}

// NewService 创建用户服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register 用户注册
// 业务规则：
// 1. 邮箱格式校验
// 2. 用户名长度2-50
// 3. 密码强度校验（8-20位，包含字母和数字）
// 4. 邮箱唯一性由存储层保证（内存store检查/数据库UNIQUE索引）
func (s *service) Register(ctx context.Context, username, email, password string) (*User, error) {
	// 1. 邮箱格式校验
	if !isValidEmail(email) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")
	}

	// 2. 用户名校验
	if len(username) < 2 || len(username) > 50 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "用户名长度应为2-50个字符")
	}

	// 3. 密码强度校验
	if err := validatePasswordStrength(password); err != nil {
		return nil, err
	}

	// 4. 密码加密
	// bcrypt自动加盐，cost=12平衡安全性与性能
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	// 5. 创建用户实体
	u := NewUser(username, email, string(hashedPassword))

	// 6. 持久化
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err // Repository已转换为业务错误
	}

	return u, nil
}

// Login 用户登录
// 注意：邮箱不存在与密码错误返回同一个错误，
// 避免客户端据此探测某邮箱是否已注册
func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	// 1. 根据邮箱查找用户
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, err
	}

	// 2. 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, apperrors.Wrap(err, "密码验证失败")
	}

	return u, nil
}

// GetByID 根据ID获取用户
func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// =========================================
// 辅助函数：业务规则校验
// =========================================

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// isValidEmail 邮箱格式校验
// 简单的正则校验，生产环境可使用更严格的RFC 5322标准
func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validatePasswordStrength 密码强度校验
// 规则：8-20位，必须包含字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return apperrors.New(apperrors.ErrCodeInvalidParams, "密码强度不足（需8-20位，包含字母和数字）")
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)

	if !hasLetter || !hasDigit {
		return apperrors.New(apperrors.ErrCodeInvalidParams, "密码强度不足（需8-20位，包含字母和数字）")
	}

	return nil
}
