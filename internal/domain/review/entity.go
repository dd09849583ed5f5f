package review

import (
	"time"

	"github.com/google/uuid"
)

// Review 书评实体
// DDD设计说明:
// 1. 每条书评恰好归属一本图书(BookID)和一个作者用户(UserID)
// 2. Username是写入时从用户聚合冗余的快照,此后不随用户变化
// 3. 更新时只允许变更Rating和Comment,其余字段保持不变
type Review struct {
	ID        string
	BookID    string
	UserID    string
	Username  string // 写入时冗余的用户名快照
	Rating    int    // 评分,1-5的整数
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewReview 创建新书评(工厂方法)
// rating/comment必须是调用方校验过的值
func NewReview(bookID, userID, username string, rating int, comment string) *Review {
	now := time.Now()
	return &Review{
		ID:        uuid.NewString(),
		BookID:    bookID,
		UserID:    userID,
		Username:  username,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateContent 就地更新评分与评论
// 保持ID、UserID、Username、CreatedAt不变
func (r *Review) UpdateContent(rating int, comment string) {
	r.Rating = rating
	r.Comment = comment
	r.UpdatedAt = time.Now()
}

// OwnerID 返回书评归属者(所有权守卫使用)
func (r *Review) OwnerID() string {
	return r.UserID
}
