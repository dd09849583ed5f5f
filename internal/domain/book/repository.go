package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现(memory与mysql两套适配器)
// 2. List/Search类方法按插入顺序返回,查不到时返回空切片而非错误
// 3. FindByISBN按归一化后的存储值精确匹配,归一化是调用方的责任
type Repository interface {
	// Create 创建图书
	// ISBN已存在时返回ErrISBNDuplicate
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id string) (*Book, error)

	// FindByISBN 根据归一化ISBN精确查找图书
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// Update 更新图书信息
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书
	Delete(ctx context.Context, id string) error

	// List 返回全部图书(稳定的插入顺序)
	List(ctx context.Context) ([]*Book, error)

	// SearchByTitle 书名大小写不敏感子串匹配
	SearchByTitle(ctx context.Context, keyword string) ([]*Book, error)

	// SearchByAuthor 作者大小写不敏感子串匹配
	SearchByAuthor(ctx context.Context, keyword string) ([]*Book, error)
}
