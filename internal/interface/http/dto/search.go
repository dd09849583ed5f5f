package dto

// SearchRequest HTTP检索请求(query参数)
type SearchRequest struct {
	Query string `form:"q" binding:"required,max=200" example:"1984"`
	Type  string `form:"type" binding:"omitempty,oneof=title author isbn" example:"title"`
}

// SearchItem HTTP检索结果项
type SearchItem struct {
	ID       string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	ISBN     string `json:"isbn" example:"9780451524935"`
	Title    string `json:"title" example:"1984"`
	Author   string `json:"author" example:"George Orwell"`
	CoverURL string `json:"cover_url" example:"https://example.com/cover.jpg"`
}

// SearchResponse HTTP检索响应
// redirect非空时表示ISBN精确命中,值为该图书的ISBN,前端可直接跳转详情页
type SearchResponse struct {
	List     []SearchItem `json:"list"`
	Total    int          `json:"total" example:"1"`
	Redirect string       `json:"redirect,omitempty" example:"9780451524935"`
}
