package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/review"
)

// TestBookStore_SnapshotIsolation 读操作返回副本,外部修改不影响store内部状态
func TestBookStore_SnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewBookStore()

	b := book.NewBook("9780451524935", "1984", "George Orwell", "", "", "u1")
	require.NoError(t, store.Create(ctx, b))

	got, err := store.FindByISBN(ctx, "9780451524935")
	require.NoError(t, err)

	// 篡改返回值
	got.Title = "被篡改的标题"

	again, err := store.FindByISBN(ctx, "9780451524935")
	require.NoError(t, err)
	assert.Equal(t, "1984", again.Title, "外部修改不应穿透到store内部")
}

// TestBookStore_InsertionOrder List应保持稳定的插入顺序
func TestBookStore_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewBookStore()

	for i := 0; i < 5; i++ {
		b := book.NewBook(fmt.Sprintf("978045152493%d", i), fmt.Sprintf("图书%d", i), "作者", "", "", "u1")
		require.NoError(t, store.Create(ctx, b))
	}

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)
	for i, b := range list {
		assert.Equal(t, fmt.Sprintf("图书%d", i), b.Title)
	}
}

// TestReviewStore_ConcurrentDelete 并发删除同一图书的不同书评,序列不应错乱
// (两个并发splice如果不串行化,可能删错元素或越界)
func TestReviewStore_ConcurrentDelete(t *testing.T) {
	ctx := context.Background()
	store := NewReviewStore()

	const n = 100
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		r := review.NewReview("book1", fmt.Sprintf("user%d", i), fmt.Sprintf("用户%d", i), 5, "不错")
		require.NoError(t, store.Create(ctx, r))
		ids[i] = r.ID
	}

	// 并发删除偶数下标的书评
	var wg sync.WaitGroup
	for i := 0; i < n; i += 2 {
		wg.Add(1)
		go func(reviewID string) {
			defer wg.Done()
			assert.NoError(t, store.Delete(ctx, "book1", reviewID))
		}(ids[i])
	}
	wg.Wait()

	remaining, err := store.ListByBook(ctx, "book1")
	require.NoError(t, err)
	assert.Len(t, remaining, n/2, "应恰好剩余一半书评")

	// 剩余的应全部是奇数下标的,且保持原有相对顺序
	for i, r := range remaining {
		assert.Equal(t, ids[i*2+1], r.ID)
	}
}

// TestReviewStore_DeleteTwice 重复删除第二次应返回NotFound
func TestReviewStore_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	store := NewReviewStore()

	r := review.NewReview("book1", "user1", "用户1", 4, "还行")
	require.NoError(t, store.Create(ctx, r))

	require.NoError(t, store.Delete(ctx, "book1", r.ID))
	err := store.Delete(ctx, "book1", r.ID)
	assert.True(t, errors.Is(err, review.ErrReviewNotFound), "第二次删除应返回ErrReviewNotFound")
}

// TestReviewStore_UniquePerUserPerBook 同一用户对同一图书只能有一条书评
func TestReviewStore_UniquePerUserPerBook(t *testing.T) {
	ctx := context.Background()
	store := NewReviewStore()

	r1 := review.NewReview("book1", "user1", "用户1", 5, "很好")
	require.NoError(t, store.Create(ctx, r1))

	r2 := review.NewReview("book1", "user1", "用户1", 1, "改主意了")
	err := store.Create(ctx, r2)
	assert.Error(t, err, "同一(用户,图书)重复创建应失败")

	// 对另一本图书不受影响
	r3 := review.NewReview("book2", "user1", "用户1", 3, "一般")
	assert.NoError(t, store.Create(ctx, r3))
}

// TestBookStore_ConcurrentCreate 并发创建不同ISBN的图书,全部可见且无竞态
func TestBookStore_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	store := NewBookStore()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b := book.NewBook(fmt.Sprintf("97800000000%02d", i), "并发图书", "作者", "", "", "u1")
			assert.NoError(t, store.Create(ctx, b))
		}(i)
	}
	wg.Wait()

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, n)
}

// TestSeed 示例数据应可完整写入且目录可检索
func TestSeed(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore()
	books := NewBookStore()
	reviews := NewReviewStore()

	require.NoError(t, Seed(ctx, users, books, reviews))

	list, err := books.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 6)

	b, err := books.FindByISBN(ctx, "9780451524935")
	require.NoError(t, err)
	assert.Equal(t, "1984", b.Title)

	rs, err := reviews.ListByBook(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, rs, 2)
}
