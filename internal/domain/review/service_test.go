package review_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/review"
	"github.com/xiebiao/bookreview/internal/domain/user"
	"github.com/xiebiao/bookreview/internal/infrastructure/persistence/memory"
)

// 测试夹具:书评服务及其依赖的图书/用户数据
type fixture struct {
	svc    review.Service
	bookID string
	alice  *user.User
	bob    *user.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	userStore := memory.NewUserStore()
	bookStore := memory.NewBookStore()
	reviewStore := memory.NewReviewStore()

	alice := user.NewUser("Alice", "alice@example.com", "hashed")
	bob := user.NewUser("Bob", "bob@example.com", "hashed")
	require.NoError(t, userStore.Create(ctx, alice))
	require.NoError(t, userStore.Create(ctx, bob))

	b := book.NewBook("9780451524935", "1984", "George Orwell", "", "", alice.ID)
	require.NoError(t, bookStore.Create(ctx, b))

	return &fixture{
		svc:    review.NewService(reviewStore, bookStore, userStore),
		bookID: b.ID,
		alice:  alice,
		bob:    bob,
	}
}

// TestUpsertCreate 测试书评新增
func TestUpsertCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("正常新增", func(t *testing.T) {
		f := newFixture(t)

		r, err := f.svc.Upsert(ctx, review.UpsertParams{
			BookID:  f.bookID,
			UserID:  f.alice.ID,
			Rating:  5,
			Comment: "A masterpiece.",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, r.ID)
		assert.Equal(t, f.alice.ID, r.UserID)
		assert.Equal(t, "Alice", r.Username, "应冗余提交者用户名")
		assert.Equal(t, 5, r.Rating)
	})

	t.Run("评分超出范围应失败", func(t *testing.T) {
		f := newFixture(t)

		for _, rating := range []int{0, 6, -1} {
			_, err := f.svc.Upsert(ctx, review.UpsertParams{
				BookID:  f.bookID,
				UserID:  f.alice.ID,
				Rating:  rating,
				Comment: "ok",
			})
			assert.ErrorIs(t, err, review.ErrInvalidRating, "评分 %d 应判为非法", rating)
		}
	})

	t.Run("空白评论应失败", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Upsert(ctx, review.UpsertParams{
			BookID:  f.bookID,
			UserID:  f.alice.ID,
			Rating:  4,
			Comment: "   \t  ",
		})
		assert.ErrorIs(t, err, review.ErrEmptyComment)
	})

	t.Run("图书不存在应失败", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Upsert(ctx, review.UpsertParams{
			BookID:  "no-such-book",
			UserID:  f.alice.ID,
			Rating:  4,
			Comment: "ok",
		})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("同一用户重复评价同一本书时就地更新", func(t *testing.T) {
		f := newFixture(t)

		first, err := f.svc.Upsert(ctx, review.UpsertParams{
			BookID:  f.bookID,
			UserID:  f.alice.ID,
			Rating:  3,
			Comment: "Decent.",
		})
		require.NoError(t, err)

		// 不带ReviewID再次提交,应更新原书评而不是新增
		second, err := f.svc.Upsert(ctx, review.UpsertParams{
			BookID:  f.bookID,
			UserID:  f.alice.ID,
			Rating:  5,
			Comment: "Changed my mind, brilliant.",
		})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID, "应复用原书评ID")
		assert.Equal(t, 5, second.Rating)

		reviews, err := f.svc.ListForBook(ctx, f.bookID)
		require.NoError(t, err)
		assert.Len(t, reviews, 1, "一人一书一评")
	})
}

// TestUpsertUpdate 测试指定ReviewID的修改
func TestUpsertUpdate(t *testing.T) {
	ctx := context.Background()

	submit := func(t *testing.T, f *fixture, userID string, rating int, comment string) *review.Review {
		t.Helper()
		r, err := f.svc.Upsert(ctx, review.UpsertParams{
			BookID:  f.bookID,
			UserID:  userID,
			Rating:  rating,
			Comment: comment,
		})
		require.NoError(t, err)
		return r
	}

	t.Run("作者本人修改成功", func(t *testing.T) {
		f := newFixture(t)
		r := submit(t, f, f.alice.ID, 3, "Decent.")

		updated, err := f.svc.Upsert(ctx, review.UpsertParams{
			BookID:   f.bookID,
			UserID:   f.alice.ID,
			Rating:   5,
			Comment:  "Re-read it, superb.",
			ReviewID: r.ID,
		})
		require.NoError(t, err)

		assert.Equal(t, r.ID, updated.ID)
		assert.Equal(t, 5, updated.Rating)
		assert.Equal(t, "Re-read it, superb.", updated.Comment)
		assert.Equal(t, r.CreatedAt, updated.CreatedAt, "创建时间保持不变")
	})

	t.Run("修改他人书评被拒绝且内容不变", func(t *testing.T) {
		f := newFixture(t)
		r := submit(t, f, f.alice.ID, 3, "Decent.")

		_, err := f.svc.Upsert(ctx, review.UpsertParams{
			BookID:   f.bookID,
			UserID:   f.bob.ID,
			Rating:   1,
			Comment:  "Hijacked.",
			ReviewID: r.ID,
		})
		assert.ErrorIs(t, err, review.ErrForbidden)

		reviews, err := f.svc.ListForBook(ctx, f.bookID)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, "Decent.", reviews[0].Comment, "校验失败后书评应保持原样")
		assert.Equal(t, 3, reviews[0].Rating)
	})

	t.Run("修改不存在的书评", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Upsert(ctx, review.UpsertParams{
			BookID:   f.bookID,
			UserID:   f.alice.ID,
			Rating:   4,
			Comment:  "ok",
			ReviewID: "no-such-review",
		})
		assert.ErrorIs(t, err, review.ErrReviewNotFound)
	})
}

// TestRemove 测试书评删除
func TestRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("作者本人删除成功", func(t *testing.T) {
		f := newFixture(t)
		r, err := f.svc.Upsert(ctx, review.UpsertParams{
			BookID: f.bookID, UserID: f.alice.ID, Rating: 4, Comment: "ok",
		})
		require.NoError(t, err)

		require.NoError(t, f.svc.Remove(ctx, f.bookID, r.ID, f.alice.ID))

		reviews, err := f.svc.ListForBook(ctx, f.bookID)
		require.NoError(t, err)
		assert.Empty(t, reviews)
	})

	t.Run("重复删除返回NotFound", func(t *testing.T) {
		f := newFixture(t)
		r, err := f.svc.Upsert(ctx, review.UpsertParams{
			BookID: f.bookID, UserID: f.alice.ID, Rating: 4, Comment: "ok",
		})
		require.NoError(t, err)

		require.NoError(t, f.svc.Remove(ctx, f.bookID, r.ID, f.alice.ID))
		err = f.svc.Remove(ctx, f.bookID, r.ID, f.alice.ID)
		assert.ErrorIs(t, err, review.ErrReviewNotFound)
	})

	t.Run("删除他人书评被拒绝且书评仍在", func(t *testing.T) {
		f := newFixture(t)
		r, err := f.svc.Upsert(ctx, review.UpsertParams{
			BookID: f.bookID, UserID: f.alice.ID, Rating: 4, Comment: "ok",
		})
		require.NoError(t, err)

		err = f.svc.Remove(ctx, f.bookID, r.ID, f.bob.ID)
		assert.ErrorIs(t, err, review.ErrForbidden)

		reviews, err := f.svc.ListForBook(ctx, f.bookID)
		require.NoError(t, err)
		assert.Len(t, reviews, 1)
	})

	t.Run("图书不存在", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Remove(ctx, "no-such-book", "whatever", f.alice.ID)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

// TestListForBook 测试书评列表查询
func TestListForBook(t *testing.T) {
	ctx := context.Background()

	t.Run("未知图书返回空列表而非报错", func(t *testing.T) {
		f := newFixture(t)

		reviews, err := f.svc.ListForBook(ctx, "no-such-book")
		require.NoError(t, err)
		assert.Empty(t, reviews)
	})

	t.Run("按插入顺序返回", func(t *testing.T) {
		f := newFixture(t)

		first, err := f.svc.Upsert(ctx, review.UpsertParams{
			BookID: f.bookID, UserID: f.alice.ID, Rating: 5, Comment: "First.",
		})
		require.NoError(t, err)
		second, err := f.svc.Upsert(ctx, review.UpsertParams{
			BookID: f.bookID, UserID: f.bob.ID, Rating: 3, Comment: "Second.",
		})
		require.NoError(t, err)

		reviews, err := f.svc.ListForBook(ctx, f.bookID)
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, first.ID, reviews[0].ID)
		assert.Equal(t, second.ID, reviews[1].ID)
	})
}

// TestAverageRating 测试评分均值
func TestAverageRating(t *testing.T) {
	t.Run("无书评返回未评分状态", func(t *testing.T) {
		avg, ok := review.AverageRating(nil)
		assert.False(t, ok)
		assert.Zero(t, avg)
	})

	t.Run("单条书评", func(t *testing.T) {
		avg, ok := review.AverageRating([]*review.Review{{Rating: 4}})
		assert.True(t, ok)
		assert.Equal(t, 4.0, avg)
	})

	t.Run("多条书评取均值", func(t *testing.T) {
		avg, ok := review.AverageRating([]*review.Review{
			{Rating: 5}, {Rating: 4}, {Rating: 4},
		})
		assert.True(t, ok)
		assert.InDelta(t, 4.333, avg, 0.001)
	})
}
