package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/bookreview/internal/domain/review"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// ReviewStore 书评仓储的内存实现
// byBook按图书维护插入顺序的书评序列;所有切片拼接都在写锁内完成,
// 两个并发删除不可能同时对同一序列做错位splice
type ReviewStore struct {
	mu     sync.RWMutex
	byBook map[string][]*review.Review
}

// NewReviewStore 创建书评内存仓储
func NewReviewStore() *ReviewStore {
	return &ReviewStore{
		byBook: make(map[string][]*review.Review),
	}
}

// Create 追加书评
// (BookID, UserID)唯一性在写锁内检查,镜像mysql适配器的复合唯一索引
func (s *ReviewStore) Create(ctx context.Context, r *review.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.byBook[r.BookID] {
		if item.UserID == r.UserID {
			return apperrors.New(apperrors.ErrCodeDuplicateEntry, "该用户已评价过此图书")
		}
	}

	clone := cloneReview(r)
	s.byBook[r.BookID] = append(s.byBook[r.BookID], clone)
	return nil
}

// FindByID 在指定图书下查找书评
func (s *ReviewStore) FindByID(ctx context.Context, bookID, reviewID string) (*review.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.byBook[bookID] {
		if item.ID == reviewID {
			return cloneReview(item), nil
		}
	}
	return nil, review.ErrReviewNotFound
}

// FindByBookAndUser 查找某用户对某图书的书评
func (s *ReviewStore) FindByBookAndUser(ctx context.Context, bookID, userID string) (*review.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.byBook[bookID] {
		if item.UserID == userID {
			return cloneReview(item), nil
		}
	}
	return nil, review.ErrReviewNotFound
}

// Update 更新书评内容(按BookID+ID定位,保持序列位置不变)
func (s *ReviewStore) Update(ctx context.Context, r *review.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.byBook[r.BookID] {
		if item.ID == r.ID {
			*item = *cloneReview(r)
			return nil
		}
	}
	return review.ErrReviewNotFound
}

// Delete 从图书的书评序列中移除
// 不存在时返回ErrReviewNotFound,因此重复删除第二次必然失败
func (s *ReviewStore) Delete(ctx context.Context, bookID, reviewID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.byBook[bookID]
	for i, item := range seq {
		if item.ID == reviewID {
			s.byBook[bookID] = append(seq[:i], seq[i+1:]...)
			return nil
		}
	}
	return review.ErrReviewNotFound
}

// ListByBook 返回图书的全部书评(插入顺序),无书评返回空切片
func (s *ReviewStore) ListByBook(ctx context.Context, bookID string) ([]*review.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seq := s.byBook[bookID]
	result := make([]*review.Review, len(seq))
	for i, r := range seq {
		result[i] = cloneReview(r)
	}
	return result, nil
}

// cloneReview 复制书评实体
func cloneReview(r *review.Review) *review.Review {
	c := *r
	return &c
}
