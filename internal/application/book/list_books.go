package book

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/review"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 列表按录入顺序返回全部图书
// 2. 每本书附带评论数与平均评分,首页展示直接可用
type ListBooksUseCase struct {
	bookService   book.Service
	reviewService review.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service, reviewService review.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService:   bookService,
		reviewService: reviewService,
	}
}

// BookListItem 列表项DTO(不含description)
type BookListItem struct {
	ID            string  `json:"id"`
	ISBN          string  `json:"isbn"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	CoverURL      string  `json:"cover_url"`
	ReviewCount   int     `json:"review_count"`
	AverageRating float64 `json:"average_rating"`
	HasRating     bool    `json:"has_rating"` // 无书评时为false,区别于平均0分
	CreatedAt     string  `json:"created_at"`
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	List  []BookListItem `json:"list"`
	Total int            `json:"total"`
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context) (*ListBooksResponse, error) {
	books, err := uc.bookService.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]BookListItem, len(books))
	for i, b := range books {
		reviews, err := uc.reviewService.ListForBook(ctx, b.ID)
		if err != nil {
			return nil, err
		}

		avg, ok := review.AverageRating(reviews)
		list[i] = BookListItem{
			ID:            b.ID,
			ISBN:          b.ISBN,
			Title:         b.Title,
			Author:        b.Author,
			CoverURL:      b.CoverURL,
			ReviewCount:   len(reviews),
			AverageRating: avg,
			HasRating:     ok,
			CreatedAt:     b.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	return &ListBooksResponse{
		List:  list,
		Total: len(list),
	}, nil
}
