package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookreview/internal/domain/review"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// reviewRepository 评论仓储实现(MySQL)
// 设计说明:
// 1. (book_id, user_id)复合唯一索引在数据库层兜底"一人一书一评"约束
// 2. 查找与删除都以book_id限定范围,评论ID不会跨图书生效
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评论仓储
func NewReviewRepository(db *gorm.DB) review.Repository {
	return &reviewRepository{db: db}
}

// Create 创建评论
func (r *reviewRepository) Create(ctx context.Context, rev *review.Review) error {
	model := toReviewModel(rev)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.New(apperrors.ErrCodeDuplicateEntry, "该用户已评价过此图书")
		}
		return apperrors.Wrap(err, "创建评论失败")
	}

	return nil
}

// FindByID 在指定图书下根据ID查找评论
func (r *reviewRepository) FindByID(ctx context.Context, bookID, reviewID string) (*review.Review, error) {
	var model ReviewModel
	err := r.db.WithContext(ctx).
		Where("book_id = ? AND id = ?", bookID, reviewID).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, apperrors.Wrap(err, "查询评论失败")
	}

	return toReviewEntity(&model), nil
}

// FindByBookAndUser 查找某用户对某图书的评论
func (r *reviewRepository) FindByBookAndUser(ctx context.Context, bookID, userID string) (*review.Review, error) {
	var model ReviewModel
	err := r.db.WithContext(ctx).
		Where("book_id = ? AND user_id = ?", bookID, userID).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, apperrors.Wrap(err, "查询评论失败")
	}

	return toReviewEntity(&model), nil
}

// Update 更新评论内容
func (r *reviewRepository) Update(ctx context.Context, rev *review.Review) error {
	result := r.db.WithContext(ctx).Model(&ReviewModel{}).
		Where("book_id = ? AND id = ?", rev.BookID, rev.ID).
		Updates(map[string]interface{}{
			"rating":     rev.Rating,
			"comment":    rev.Comment,
			"updated_at": rev.UpdatedAt,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新评论失败")
	}

	if result.RowsAffected == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}

// Delete 删除评论
// 评论不存在时返回ErrReviewNotFound,重复删除不会静默成功
func (r *reviewRepository) Delete(ctx context.Context, bookID, reviewID string) error {
	result := r.db.WithContext(ctx).
		Where("book_id = ? AND id = ?", bookID, reviewID).
		Delete(&ReviewModel{})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除评论失败")
	}

	if result.RowsAffected == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}

// ListByBook 返回某图书的全部评论,按创建时间升序
func (r *reviewRepository) ListByBook(ctx context.Context, bookID string) ([]*review.Review, error) {
	var models []ReviewModel
	err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询评论列表失败")
	}

	reviews := make([]*review.Review, len(models))
	for i := range models {
		reviews[i] = toReviewEntity(&models[i])
	}
	return reviews, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toReviewModel(rev *review.Review) *ReviewModel {
	return &ReviewModel{
		ID:        rev.ID,
		BookID:    rev.BookID,
		UserID:    rev.UserID,
		Username:  rev.Username,
		Rating:    rev.Rating,
		Comment:   rev.Comment,
		CreatedAt: rev.CreatedAt,
		UpdatedAt: rev.UpdatedAt,
	}
}

func toReviewEntity(model *ReviewModel) *review.Review {
	return &review.Review{
		ID:        model.ID,
		BookID:    model.BookID,
		UserID:    model.UserID,
		Username:  model.Username,
		Rating:    model.Rating,
		Comment:   model.Comment,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
