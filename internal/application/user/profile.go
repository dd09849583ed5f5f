package user

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/user"
)

// ProfileUseCase 查询当前用户资料用例
type ProfileUseCase struct {
	userService user.Service
}

// NewProfileUseCase 创建资料查询用例
func NewProfileUseCase(userService user.Service) *ProfileUseCase {
	return &ProfileUseCase{userService: userService}
}

// Execute 根据Token中的用户ID查询资料
func (uc *ProfileUseCase) Execute(ctx context.Context, userID string) (*ProfileResponse, error) {
	u, err := uc.userService.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProfileResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Unix(),
	}, nil
}

// ProfileResponse 用户资料响应
type ProfileResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"`
}
