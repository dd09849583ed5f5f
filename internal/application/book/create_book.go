package book

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/pkg/metrics"
)

// CreateBookUseCase 图书录入用例
// 设计说明:
// 1. 应用层负责用例编排,协调领域服务完成业务流程
// 2. 输入输出使用DTO(Data Transfer Object),与HTTP层解耦
// 3. 此用例比较简单,只需调用领域服务即可
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建录入用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
	}
}

// CreateBookRequest 录入请求DTO
type CreateBookRequest struct {
	ISBN        string // ISBN号(允许带连字符)
	Title       string // 书名
	Author      string // 作者
	Description string // 图书简介
	CoverURL    string // 封面图URL
	CreatedBy   string // 录入者用户ID(从认证中间件获取)
}

// CreateBookResponse 录入响应DTO
type CreateBookResponse struct {
	ID          string `json:"id"`
	ISBN        string `json:"isbn"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	CoverURL    string `json:"cover_url"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at"`
}

// Execute 执行录入用例
// 学习要点:
// 1. 应用层不直接操作Repository,通过领域服务间接操作
// 2. 业务规则校验由领域服务负责(ISBN格式、ISBN重复检查等)
// 3. 应用层只负责流程编排
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*CreateBookResponse, error) {
	// 领域服务会处理:ISBN归一化与格式校验、ISBN重复检查
	b, err := uc.bookService.CreateBook(
		ctx,
		req.CreatedBy,
		req.ISBN,
		req.Title,
		req.Author,
		req.Description,
		req.CoverURL,
	)
	if err != nil {
		return nil, err
	}

	metrics.IncBookCreated()

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
