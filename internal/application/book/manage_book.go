package book

import (
	"context"
	"errors"

	"github.com/xiebiao/bookreview/internal/domain/book"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
	"github.com/xiebiao/bookreview/pkg/metrics"
)

// UpdateBookUseCase 图书信息修改用例
// 设计说明:
// 1. 只有录入者本人可以修改(所有权校验在领域服务内完成)
// 2. ISBN创建后不可变更,不在可修改字段之列
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建修改用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService}
}

// UpdateBookRequest 修改请求DTO
// 空字段表示保持原值
type UpdateBookRequest struct {
	BookID      string
	UserID      string // 操作者用户ID(从认证中间件获取)
	Title       string
	Author      string
	Description string
	CoverURL    string
}

// Execute 执行修改用例
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*CreateBookResponse, error) {
	b, err := uc.bookService.UpdateBookInfo(
		ctx,
		req.BookID,
		req.UserID,
		req.Title,
		req.Author,
		req.Description,
		req.CoverURL,
	)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			metrics.IncOwnershipDenied("book")
		}
		return nil, err
	}

	return &CreateBookResponse{
		ID:          b.ID,
		ISBN:        b.ISBN,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		CoverURL:    b.CoverURL,
		CreatedBy:   b.CreatedBy,
		CreatedAt:   b.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// DeleteBookUseCase 图书删除用例
// 只有录入者本人可以删除
type DeleteBookUseCase struct {
	bookService book.Service
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookService: bookService}
}

// Execute 执行删除用例
func (uc *DeleteBookUseCase) Execute(ctx context.Context, bookID, userID string) error {
	if err := uc.bookService.DeleteBook(ctx, bookID, userID); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			metrics.IncOwnershipDenied("book")
		}
		return err
	}
	return nil
}
