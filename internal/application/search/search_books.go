package search

import (
	"context"
	"errors"

	"github.com/xiebiao/bookreview/internal/domain/book"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
	"github.com/xiebiao/bookreview/pkg/isbn"
	"github.com/xiebiao/bookreview/pkg/metrics"
)

// 搜索类型
const (
	KindTitle  = "title"
	KindAuthor = "author"
	KindISBN   = "isbn"
)

// SearchBooksUseCase 图书检索用例
// 设计说明:
// 1. 按类型分发:title/author走子串匹配,isbn走精确命中
// 2. ISBN精确命中返回redirect信号,前端可直接跳转详情页
// 3. ISBN格式非法或未命中都返回空列表,不报错也不降级为子串匹配
type SearchBooksUseCase struct {
	bookService book.Service
}

// NewSearchBooksUseCase 创建检索用例
func NewSearchBooksUseCase(bookService book.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{bookService: bookService}
}

// SearchItem 检索结果项DTO
type SearchItem struct {
	ID       string `json:"id"`
	ISBN     string `json:"isbn"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	CoverURL string `json:"cover_url"`
}

// SearchBooksResponse 检索响应DTO
// Redirect非空时表示ISBN精确命中,值为该图书的ISBN
type SearchBooksResponse struct {
	List     []SearchItem `json:"list"`
	Total    int          `json:"total"`
	Redirect string       `json:"redirect,omitempty"`
}

// Execute 执行检索
// kind为空或不认识时按title处理
func (uc *SearchBooksUseCase) Execute(ctx context.Context, query, kind string) (*SearchBooksResponse, error) {
	switch kind {
	case KindISBN:
		return uc.searchByISBN(ctx, query)
	case KindAuthor:
		return uc.searchByKeyword(ctx, query, KindAuthor)
	default:
		return uc.searchByKeyword(ctx, query, KindTitle)
	}
}

func (uc *SearchBooksUseCase) searchByKeyword(ctx context.Context, query, kind string) (*SearchBooksResponse, error) {
	var (
		books []*book.Book
		err   error
	)
	if kind == KindAuthor {
		books, err = uc.bookService.SearchByAuthor(ctx, query)
	} else {
		books, err = uc.bookService.SearchByTitle(ctx, query)
	}
	if err != nil {
		return nil, err
	}

	result := "miss"
	if len(books) > 0 {
		result = "hit"
	}
	metrics.IncSearch(kind, result)

	list := make([]SearchItem, len(books))
	for i, b := range books {
		list[i] = toSearchItem(b)
	}

	return &SearchBooksResponse{List: list, Total: len(list)}, nil
}

func (uc *SearchBooksUseCase) searchByISBN(ctx context.Context, query string) (*SearchBooksResponse, error) {
	// 格式非法直接按未命中处理
	normalized, ok := isbn.NormalizeAndValidate(query)
	if !ok {
		metrics.IncSearch(KindISBN, "miss")
		return &SearchBooksResponse{List: []SearchItem{}}, nil
	}

	b, err := uc.bookService.GetBookByISBN(ctx, normalized)
	if err != nil {
		if errors.Is(err, apperrors.ErrBookNotFound) {
			metrics.IncSearch(KindISBN, "miss")
			return &SearchBooksResponse{List: []SearchItem{}}, nil
		}
		return nil, err
	}

	metrics.IncSearch(KindISBN, "hit")

	// 精确命中:单条结果+跳转信号
	return &SearchBooksResponse{
		List:     []SearchItem{toSearchItem(b)},
		Total:    1,
		Redirect: b.ISBN,
	}, nil
}

func toSearchItem(b *book.Book) SearchItem {
	return SearchItem{
		ID:       b.ID,
		ISBN:     b.ISBN,
		Title:    b.Title,
		Author:   b.Author,
		CoverURL: b.CoverURL,
	}
}
