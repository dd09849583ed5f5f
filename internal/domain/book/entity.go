package book

import (
	"time"

	"github.com/google/uuid"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书聚合的根实体,包含图书的核心属性
// 2. ISBN作为业务唯一标识,创建时归一化(去连字符)后存储,此后不可变更
// 3. CreatedBy关联创建图书的用户,是变更操作的所有权依据
// 4. 书评不内嵌在实体中,由review聚合单独管理(按BookID关联)
type Book struct {
	ID          string
	ISBN        string // 归一化后的ISBN号(10或13位数字)
	Title       string // 书名
	Author      string // 作者
	Description string // 图书描述
	CoverURL    string // 封面图片URL
	CreatedBy   string // 创建者用户ID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook 创建新图书(工厂方法)
// isbn必须是调用方归一化并校验过的值
func NewBook(isbn, title, author, description, coverURL, createdBy string) *Book {
	now := time.Now()
	return &Book{
		ID:          uuid.NewString(),
		ISBN:        isbn,
		Title:       title,
		Author:      author,
		Description: description,
		CoverURL:    coverURL,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateInfo 更新图书基本信息
// 注意:ISBN不在参数中,创建后不可变更
func (b *Book) UpdateInfo(title, author, description, coverURL string) {
	if title != "" {
		b.Title = title
	}
	if author != "" {
		b.Author = author
	}
	if description != "" {
		b.Description = description
	}
	if coverURL != "" {
		b.CoverURL = coverURL
	}
	b.UpdatedAt = time.Now()
}

// OwnerID 返回图书归属者(所有权守卫使用)
func (b *Book) OwnerID() string {
	return b.CreatedBy
}
