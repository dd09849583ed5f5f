package review

import (
	"context"
)

// Repository 书评仓储接口
// 设计说明:
// 1. 书评按(BookID, ReviewID)寻址,一条书评只归属一本图书
// 2. ListByBook按插入顺序返回,没有书评时返回空切片(不是错误)
// 3. FindByBookAndUser支撑"一人一书一评"的唯一性约束
//    (mysql适配器另有(book_id, user_id)复合唯一索引兜底)
type Repository interface {
	// Create 追加书评
	Create(ctx context.Context, review *Review) error

	// FindByID 在指定图书下查找书评
	// 图书下无此书评时返回ErrReviewNotFound
	FindByID(ctx context.Context, bookID, reviewID string) (*Review, error)

	// FindByBookAndUser 查找某用户对某图书的书评
	// 不存在时返回ErrReviewNotFound
	FindByBookAndUser(ctx context.Context, bookID, userID string) (*Review, error)

	// Update 更新书评内容
	Update(ctx context.Context, review *Review) error

	// Delete 从图书的书评序列中移除
	// 不存在时返回ErrReviewNotFound(重复删除第二次即失败)
	Delete(ctx context.Context, bookID, reviewID string) error

	// ListByBook 返回图书的全部书评(插入顺序)
	ListByBook(ctx context.Context, bookID string) ([]*Review, error)
}
