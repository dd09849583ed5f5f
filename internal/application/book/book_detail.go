package book

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/review"
)

// BookDetailUseCase 图书详情查询用例
// 设计说明:
// 1. 详情页以ISBN为入口(对外友好的稳定标识)
// 2. 聚合图书信息、全部评论与平均评分一次返回
type BookDetailUseCase struct {
	bookService   book.Service
	reviewService review.Service
}

// NewBookDetailUseCase 创建详情查询用例
func NewBookDetailUseCase(bookService book.Service, reviewService review.Service) *BookDetailUseCase {
	return &BookDetailUseCase{
		bookService:   bookService,
		reviewService: reviewService,
	}
}

// ReviewItem 详情页评论DTO
type ReviewItem struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// BookDetailResponse 详情响应DTO
type BookDetailResponse struct {
	ID            string       `json:"id"`
	ISBN          string       `json:"isbn"`
	Title         string       `json:"title"`
	Author        string       `json:"author"`
	Description   string       `json:"description"`
	CoverURL      string       `json:"cover_url"`
	CreatedBy     string       `json:"created_by"`
	CreatedAt     string       `json:"created_at"`
	Reviews       []ReviewItem `json:"reviews"`
	ReviewCount   int          `json:"review_count"`
	AverageRating float64      `json:"average_rating"` // 无评论时为0
	HasRating     bool         `json:"has_rating"`     // 区分"无评论"与"平均分恰好为0"
}

// Execute 根据ISBN查询图书详情
func (uc *BookDetailUseCase) Execute(ctx context.Context, rawISBN string) (*BookDetailResponse, error) {
	b, err := uc.bookService.GetBookByISBN(ctx, rawISBN)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.reviewService.ListForBook(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	items := make([]ReviewItem, len(reviews))
	for i, r := range reviews {
		items[i] = toReviewItem(r)
	}

	avg, ok := review.AverageRating(reviews)

	return &BookDetailResponse{
		ID:            b.ID,
		ISBN:          b.ISBN,
		Title:         b.Title,
		Author:        b.Author,
		Description:   b.Description,
		CoverURL:      b.CoverURL,
		CreatedBy:     b.CreatedBy,
		CreatedAt:     b.CreatedAt.Format("2006-01-02 15:04:05"),
		Reviews:       items,
		ReviewCount:   len(items),
		AverageRating: avg,
		HasRating:     ok,
	}, nil
}

func toReviewItem(r *review.Review) ReviewItem {
	return ReviewItem{
		ID:        r.ID,
		UserID:    r.UserID,
		Username:  r.Username,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: r.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
