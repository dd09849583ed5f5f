package dto

// SubmitReviewRequest HTTP书评提交请求
// review_id非空表示修改指定书评,为空表示新增
type SubmitReviewRequest struct {
	BookID   string `json:"book_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5" example:"5"`
	Comment  string `json:"comment" binding:"required,max=5000" example:"A masterpiece."`
	ReviewID string `json:"review_id" binding:"omitempty" example:""`
}

// ReviewResponse HTTP书评响应
type ReviewResponse struct {
	ID        string `json:"id" example:"550e8400-e29b-41d4-a716-446655440002"`
	BookID    string `json:"book_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID    string `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	Username  string `json:"username" example:"BookLover"`
	Rating    int    `json:"rating" example:"5"`
	Comment   string `json:"comment" example:"A masterpiece."`
	CreatedAt string `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt string `json:"updated_at" example:"2024-01-15 10:30:00"`
}

// ListReviewsResponse HTTP书评列表响应
type ListReviewsResponse struct {
	List          []ReviewResponse `json:"list"`
	Total         int              `json:"total" example:"3"`
	AverageRating string           `json:"average_rating" example:"4.5"` // 无书评时为"0.0",配合has_rating区分
	HasRating     bool             `json:"has_rating" example:"true"`
}
