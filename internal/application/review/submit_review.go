package review

import (
	"context"
	"errors"

	"github.com/xiebiao/bookreview/internal/domain/review"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
	"github.com/xiebiao/bookreview/pkg/metrics"
)

// SubmitReviewUseCase 书评提交用例
// 设计说明:
// 1. 新增与修改共用同一入口:带review_id为修改,不带为新增
// 2. 同一用户对同一本书重复新增时,领域服务会就地更新原书评
// 3. 所有权校验由领域服务完成,此处只做指标上报
type SubmitReviewUseCase struct {
	reviewService review.Service
}

// NewSubmitReviewUseCase 创建提交用例
func NewSubmitReviewUseCase(reviewService review.Service) *SubmitReviewUseCase {
	return &SubmitReviewUseCase{reviewService: reviewService}
}

// SubmitReviewRequest 提交请求DTO
type SubmitReviewRequest struct {
	BookID   string
	UserID   string // 提交者用户ID(从认证中间件获取)
	Rating   int
	Comment  string
	ReviewID string // 可选:非空表示修改指定书评
}

// ReviewResponse 书评响应DTO
type ReviewResponse struct {
	ID        string `json:"id"`
	BookID    string `json:"book_id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Execute 执行提交用例
func (uc *SubmitReviewUseCase) Execute(ctx context.Context, req SubmitReviewRequest) (*ReviewResponse, error) {
	r, err := uc.reviewService.Upsert(ctx, review.UpsertParams{
		BookID:   req.BookID,
		UserID:   req.UserID,
		Rating:   req.Rating,
		Comment:  req.Comment,
		ReviewID: req.ReviewID,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			metrics.IncOwnershipDenied("review")
		}
		return nil, err
	}

	// 创建与修改的时间戳相同即为新增
	op := "update"
	if r.CreatedAt.Equal(r.UpdatedAt) {
		op = "create"
	}
	metrics.IncReviewSubmitted(op)

	return toReviewResponse(r), nil
}

func toReviewResponse(r *review.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID,
		BookID:    r.BookID,
		UserID:    r.UserID,
		Username:  r.Username,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: r.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
