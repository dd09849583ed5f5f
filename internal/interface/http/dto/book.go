package dto

import "fmt"

// CreateBookRequest HTTP图书录入请求
// validator tag说明:
// - required: 必填字段
// - min/max: 长度范围校验
// - ISBN格式(10/13位数字,允许连字符)由领域服务归一化后校验
type CreateBookRequest struct {
	ISBN        string `json:"isbn" binding:"required,max=20" example:"978-0-451-52493-5"`
	Title       string `json:"title" binding:"required,max=200" example:"1984"`
	Author      string `json:"author" binding:"required,max=100" example:"George Orwell"`
	Description string `json:"description" binding:"max=5000" example:"A dystopian social science fiction novel"`
	CoverURL    string `json:"cover_url" binding:"omitempty,url,max=500" example:"https://example.com/cover.jpg"`
}

// UpdateBookRequest HTTP图书修改请求
// 所有字段可选,空字段保持原值;不含ISBN(创建后不可变更)
type UpdateBookRequest struct {
	Title       string `json:"title" binding:"omitempty,max=200" example:"1984"`
	Author      string `json:"author" binding:"omitempty,max=100" example:"George Orwell"`
	Description string `json:"description" binding:"omitempty,max=5000" example:"A dystopian social science fiction novel"`
	CoverURL    string `json:"cover_url" binding:"omitempty,url,max=500" example:"https://example.com/cover.jpg"`
}

// BookResponse HTTP图书响应
// 用于录入/修改后的单体返回
type BookResponse struct {
	ID          string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	ISBN        string `json:"isbn" example:"9780451524935"`
	Title       string `json:"title" example:"1984"`
	Author      string `json:"author" example:"George Orwell"`
	Description string `json:"description" example:"A dystopian social science fiction novel"`
	CoverURL    string `json:"cover_url" example:"https://example.com/cover.jpg"`
	CreatedBy   string `json:"created_by" example:"550e8400-e29b-41d4-a716-446655440001"`
	CreatedAt   string `json:"created_at" example:"2024-01-15 10:30:00"`
}

// BookListItem HTTP图书列表项
// 列表查询时不返回Description字段(减少数据传输量)
type BookListItem struct {
	ID            string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	ISBN          string `json:"isbn" example:"9780451524935"`
	Title         string `json:"title" example:"1984"`
	Author        string `json:"author" example:"George Orwell"`
	CoverURL      string `json:"cover_url" example:"https://example.com/cover.jpg"`
	ReviewCount   int    `json:"review_count" example:"3"`
	AverageRating string `json:"average_rating" example:"4.5"` // 无书评时为"0.0",配合has_rating区分
	HasRating     bool   `json:"has_rating" example:"true"`
	CreatedAt     string `json:"created_at" example:"2024-01-15 10:30:00"`
}

// ListBooksResponse HTTP图书列表响应
type ListBooksResponse struct {
	List  []BookListItem `json:"list"`
	Total int            `json:"total" example:"6"`
}

// BookDetailResponse HTTP图书详情响应(含评论与平均评分)
type BookDetailResponse struct {
	ID            string           `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	ISBN          string           `json:"isbn" example:"9780451524935"`
	Title         string           `json:"title" example:"1984"`
	Author        string           `json:"author" example:"George Orwell"`
	Description   string           `json:"description" example:"A dystopian social science fiction novel"`
	CoverURL      string           `json:"cover_url" example:"https://example.com/cover.jpg"`
	CreatedBy     string           `json:"created_by" example:"550e8400-e29b-41d4-a716-446655440001"`
	CreatedAt     string           `json:"created_at" example:"2024-01-15 10:30:00"`
	Reviews       []ReviewResponse `json:"reviews"`
	ReviewCount   int              `json:"review_count" example:"3"`
	AverageRating string           `json:"average_rating" example:"4.5"` // 无书评时为"0.0",配合has_rating区分
	HasRating     bool             `json:"has_rating" example:"true"`
}

// FormatRating 格式化平均评分(保留一位小数)
// 例如:4.333... → "4.3"
func FormatRating(avg float64) string {
	return fmt.Sprintf("%.1f", avg)
}
