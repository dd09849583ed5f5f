package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookreview/internal/application/book"
	"github.com/xiebiao/bookreview/internal/interface/http/dto"
	"github.com/xiebiao/bookreview/internal/interface/http/middleware"
	"github.com/xiebiao/bookreview/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	createBookUseCase *appbook.CreateBookUseCase
	listBooksUseCase  *appbook.ListBooksUseCase
	bookDetailUseCase *appbook.BookDetailUseCase
	updateBookUseCase *appbook.UpdateBookUseCase
	deleteBookUseCase *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createBookUseCase *appbook.CreateBookUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	bookDetailUseCase *appbook.BookDetailUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		createBookUseCase: createBookUseCase,
		listBooksUseCase:  listBooksUseCase,
		bookDetailUseCase: bookDetailUseCase,
		updateBookUseCase: updateBookUseCase,
		deleteBookUseCase: deleteBookUseCase,
	}
}

// CreateBook 录入图书
// @Summary      录入图书
// @Description  登录用户录入新图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误或ISBN格式错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      409 {object} response.Response "ISBN已存在"
// @Router       /api/v1/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	// 2. 获取当前登录用户ID(从认证中间件注入的Context中获取)
	userID := middleware.MustGetUserID(c)

	// 3. 调用应用层用例
	result, err := h.createBookUseCase.Execute(c.Request.Context(), appbook.CreateBookRequest{
		ISBN:        req.ISBN,
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		CoverURL:    req.CoverURL,
		CreatedBy:   userID,
	})

	if err != nil {
		response.Error(c, err)
		return
	}

	// 4. 构建HTTP响应
	response.Success(c, &dto.BookResponse{
		ID:          result.ID,
		ISBN:        result.ISBN,
		Title:       result.Title,
		Author:      result.Author,
		Description: result.Description,
		CoverURL:    result.CoverURL,
		CreatedBy:   result.CreatedBy,
		CreatedAt:   result.CreatedAt,
	})
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  按录入顺序返回全部图书,附带评论数与平均评分
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=dto.ListBooksResponse}
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	result, err := h.listBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.BookListItem, len(result.List))
	for i, b := range result.List {
		list[i] = dto.BookListItem{
			ID:            b.ID,
			ISBN:          b.ISBN,
			Title:         b.Title,
			Author:        b.Author,
			CoverURL:      b.CoverURL,
			ReviewCount:   b.ReviewCount,
			AverageRating: dto.FormatRating(b.AverageRating),
			HasRating:     b.HasRating,
			CreatedAt:     b.CreatedAt,
		}
	}

	response.Success(c, &dto.ListBooksResponse{
		List:  list,
		Total: result.Total,
	})
}

// GetBook 图书详情
// @Summary      图书详情
// @Description  根据ISBN返回图书详情,含全部评论与平均评分
// @Tags         图书
// @Produce      json
// @Param        isbn path string true "ISBN(允许带连字符)"
// @Success      200 {object} response.Response{data=dto.BookDetailResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{isbn} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	rawISBN := c.Param("isbn")

	result, err := h.bookDetailUseCase.Execute(c.Request.Context(), rawISBN)
	if err != nil {
		response.Error(c, err)
		return
	}

	reviews := make([]dto.ReviewResponse, len(result.Reviews))
	for i, r := range result.Reviews {
		reviews[i] = dto.ReviewResponse{
			ID:        r.ID,
			BookID:    result.ID,
			UserID:    r.UserID,
			Username:  r.Username,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		}
	}

	response.Success(c, &dto.BookDetailResponse{
		ID:            result.ID,
		ISBN:          result.ISBN,
		Title:         result.Title,
		Author:        result.Author,
		Description:   result.Description,
		CoverURL:      result.CoverURL,
		CreatedBy:     result.CreatedBy,
		CreatedAt:     result.CreatedAt,
		Reviews:       reviews,
		ReviewCount:   result.ReviewCount,
		AverageRating: dto.FormatRating(result.AverageRating),
		HasRating:     result.HasRating,
	})
}

// UpdateBook 修改图书信息
// @Summary      修改图书
// @Description  录入者本人修改图书信息(ISBN不可变更)
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "图书ID"
// @Param        request body dto.UpdateBookRequest true "修改内容(空字段保持原值)"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "非录入者本人"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.updateBookUseCase.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		BookID:      c.Param("id"),
		UserID:      userID,
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		CoverURL:    req.CoverURL,
	})

	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.BookResponse{
		ID:          result.ID,
		ISBN:        result.ISBN,
		Title:       result.Title,
		Author:      result.Author,
		Description: result.Description,
		CoverURL:    result.CoverURL,
		CreatedBy:   result.CreatedBy,
		CreatedAt:   result.CreatedAt,
	})
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  录入者本人删除图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response "删除成功"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "非录入者本人"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	if err := h.deleteBookUseCase.Execute(c.Request.Context(), c.Param("id"), userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
