package review

import (
	"context"
	"errors"

	"github.com/xiebiao/bookreview/internal/domain/review"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
	"github.com/xiebiao/bookreview/pkg/metrics"
)

// RemoveReviewUseCase 书评删除用例
// 只有书评作者本人可以删除
type RemoveReviewUseCase struct {
	reviewService review.Service
}

// NewRemoveReviewUseCase 创建删除用例
func NewRemoveReviewUseCase(reviewService review.Service) *RemoveReviewUseCase {
	return &RemoveReviewUseCase{reviewService: reviewService}
}

// Execute 执行删除用例
func (uc *RemoveReviewUseCase) Execute(ctx context.Context, bookID, reviewID, userID string) error {
	if err := uc.reviewService.Remove(ctx, bookID, reviewID, userID); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			metrics.IncOwnershipDenied("review")
		}
		return err
	}

	metrics.IncReviewDeleted()
	return nil
}

// ListReviewsUseCase 书评列表查询用例
type ListReviewsUseCase struct {
	reviewService review.Service
}

// NewListReviewsUseCase 创建列表查询用例
func NewListReviewsUseCase(reviewService review.Service) *ListReviewsUseCase {
	return &ListReviewsUseCase{reviewService: reviewService}
}

// ListReviewsResponse 列表响应DTO
type ListReviewsResponse struct {
	List          []ReviewResponse `json:"list"`
	Total         int              `json:"total"`
	AverageRating float64          `json:"average_rating"`
	HasRating     bool             `json:"has_rating"` // 无书评时为false,区别于平均0分
}

// Execute 查询某图书的全部书评(按提交顺序)
func (uc *ListReviewsUseCase) Execute(ctx context.Context, bookID string) (*ListReviewsResponse, error) {
	reviews, err := uc.reviewService.ListForBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	list := make([]ReviewResponse, len(reviews))
	for i, r := range reviews {
		list[i] = *toReviewResponse(r)
	}

	avg, ok := review.AverageRating(reviews)

	return &ListReviewsResponse{
		List:          list,
		Total:         len(list),
		AverageRating: avg,
		HasRating:     ok,
	}, nil
}
