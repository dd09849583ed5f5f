package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookreview/internal/application/search"
	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/infrastructure/persistence/memory"
)

func newSearchUseCase(t *testing.T) *search.SearchBooksUseCase {
	t.Helper()
	ctx := context.Background()

	svc := book.NewService(memory.NewBookStore())

	seed := []struct {
		isbn, title, author string
	}{
		{"9780451524935", "1984", "George Orwell"},
		{"9780544003415", "The Lord of the Rings", "J.R.R. Tolkien"},
		{"9780061120084", "To Kill a Mockingbird", "Harper Lee"},
	}
	for _, s := range seed {
		_, err := svc.CreateBook(ctx, "seed-user", s.isbn, s.title, s.author, "", "")
		require.NoError(t, err)
	}

	return search.NewSearchBooksUseCase(svc)
}

// TestSearchByTitle 测试书名检索
func TestSearchByTitle(t *testing.T) {
	ctx := context.Background()
	uc := newSearchUseCase(t)

	t.Run("子串命中", func(t *testing.T) {
		resp, err := uc.Execute(ctx, "1984", search.KindTitle)
		require.NoError(t, err)

		require.Len(t, resp.List, 1)
		assert.Equal(t, "1984", resp.List[0].Title)
		assert.Empty(t, resp.Redirect, "书名检索不带跳转信号")
	})

	t.Run("类型为空时按书名处理", func(t *testing.T) {
		resp, err := uc.Execute(ctx, "lord", "")
		require.NoError(t, err)

		require.Len(t, resp.List, 1)
		assert.Equal(t, "The Lord of the Rings", resp.List[0].Title)
	})

	t.Run("未命中返回空列表", func(t *testing.T) {
		resp, err := uc.Execute(ctx, "nonexistent", search.KindTitle)
		require.NoError(t, err)
		assert.Empty(t, resp.List)
		assert.Zero(t, resp.Total)
	})
}

// TestSearchByAuthor 测试作者检索
func TestSearchByAuthor(t *testing.T) {
	ctx := context.Background()
	uc := newSearchUseCase(t)

	resp, err := uc.Execute(ctx, "tolkien", search.KindAuthor)
	require.NoError(t, err)

	require.Len(t, resp.List, 1)
	assert.Equal(t, "The Lord of the Rings", resp.List[0].Title)
}

// TestSearchByISBN 测试ISBN精确检索
func TestSearchByISBN(t *testing.T) {
	ctx := context.Background()
	uc := newSearchUseCase(t)

	t.Run("精确命中返回跳转信号", func(t *testing.T) {
		resp, err := uc.Execute(ctx, "978-0-451-52493-5", search.KindISBN)
		require.NoError(t, err)

		require.Len(t, resp.List, 1)
		assert.Equal(t, "1984", resp.List[0].Title)
		assert.Equal(t, "9780451524935", resp.Redirect)
	})

	t.Run("格式合法但未命中返回空列表", func(t *testing.T) {
		resp, err := uc.Execute(ctx, "0000000000", search.KindISBN)
		require.NoError(t, err)

		assert.Empty(t, resp.List)
		assert.Empty(t, resp.Redirect)
	})

	t.Run("格式非法按未命中处理且不降级为子串匹配", func(t *testing.T) {
		// "1984"是某书名的子串,但作为ISBN不合法,不应返回结果
		resp, err := uc.Execute(ctx, "1984", search.KindISBN)
		require.NoError(t, err)

		assert.Empty(t, resp.List)
		assert.Empty(t, resp.Redirect)
	})
}
