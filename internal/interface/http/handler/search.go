package handler

import (
	"github.com/gin-gonic/gin"

	appsearch "github.com/xiebiao/bookreview/internal/application/search"
	"github.com/xiebiao/bookreview/internal/interface/http/dto"
	"github.com/xiebiao/bookreview/pkg/response"
)

// SearchHandler 检索HTTP处理器
type SearchHandler struct {
	searchBooksUseCase *appsearch.SearchBooksUseCase
}

// NewSearchHandler 创建检索处理器
func NewSearchHandler(searchBooksUseCase *appsearch.SearchBooksUseCase) *SearchHandler {
	return &SearchHandler{searchBooksUseCase: searchBooksUseCase}
}

// SearchBooks 检索图书
// @Summary      检索图书
// @Description  按书名/作者子串匹配,或按ISBN精确命中(命中时返回redirect字段)
// @Tags         检索
// @Produce      json
// @Param        q query string true "检索关键词"
// @Param        type query string false "检索类型" Enums(title, author, isbn) default(title)
// @Success      200 {object} response.Response{data=dto.SearchResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/search [get]
func (h *SearchHandler) SearchBooks(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.searchBooksUseCase.Execute(c.Request.Context(), req.Query, req.Type)
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.SearchItem, len(result.List))
	for i, b := range result.List {
		list[i] = dto.SearchItem{
			ID:       b.ID,
			ISBN:     b.ISBN,
			Title:    b.Title,
			Author:   b.Author,
			CoverURL: b.CoverURL,
		}
	}

	response.Success(c, &dto.SearchResponse{
		List:     list,
		Total:    result.Total,
		Redirect: result.Redirect,
	})
}
