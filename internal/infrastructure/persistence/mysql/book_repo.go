package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookreview/internal/domain/book"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(如ISBN重复),转换为业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id string) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindByISBN 根据归一化ISBN精确查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// Update 更新图书信息
// ISBN不在更新列中:数据库层同样保证创建后不可变更
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	result := r.db.WithContext(ctx).Model(&BookModel{}).
		Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"title":       b.Title,
			"author":      b.Author,
			"description": b.Description,
			"cover_url":   b.CoverURL,
			"updated_at":  b.UpdatedAt,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新图书失败")
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// Delete 删除图书
func (r *bookRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&BookModel{})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// List 返回全部图书
// 按created_at升序=稳定的插入顺序
func (r *bookRepository) List(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}
	return toBookEntities(models), nil
}

// SearchByTitle 书名大小写不敏感子串匹配
// utf8mb4默认排序规则大小写不敏感,LIKE即满足要求
func (r *bookRepository) SearchByTitle(ctx context.Context, keyword string) ([]*book.Book, error) {
	return r.searchBy(ctx, "title LIKE ?", keyword)
}

// SearchByAuthor 作者大小写不敏感子串匹配
func (r *bookRepository) SearchByAuthor(ctx context.Context, keyword string) ([]*book.Book, error) {
	return r.searchBy(ctx, "author LIKE ?", keyword)
}

func (r *bookRepository) searchBy(ctx context.Context, cond, keyword string) ([]*book.Book, error) {
	var models []BookModel
	err := r.db.WithContext(ctx).
		Where(cond, "%"+keyword+"%").
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "检索图书失败")
	}
	return toBookEntities(models), nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:          b.ID,
		ISBN:        b.ISBN,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		CoverURL:    b.CoverURL,
		CreatedBy:   b.CreatedBy,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:          model.ID,
		ISBN:        model.ISBN,
		Title:       model.Title,
		Author:      model.Author,
		Description: model.Description,
		CoverURL:    model.CoverURL,
		CreatedBy:   model.CreatedBy,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func toBookEntities(models []BookModel) []*book.Book {
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books
}
