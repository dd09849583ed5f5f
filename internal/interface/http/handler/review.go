package handler

import (
	"github.com/gin-gonic/gin"

	appreview "github.com/xiebiao/bookreview/internal/application/review"
	"github.com/xiebiao/bookreview/internal/interface/http/dto"
	"github.com/xiebiao/bookreview/internal/interface/http/middleware"
	"github.com/xiebiao/bookreview/pkg/response"
)

// ReviewHandler 书评HTTP处理器
type ReviewHandler struct {
	submitReviewUseCase *appreview.SubmitReviewUseCase
	removeReviewUseCase *appreview.RemoveReviewUseCase
	listReviewsUseCase  *appreview.ListReviewsUseCase
}

// NewReviewHandler 创建书评处理器
func NewReviewHandler(
	submitReviewUseCase *appreview.SubmitReviewUseCase,
	removeReviewUseCase *appreview.RemoveReviewUseCase,
	listReviewsUseCase *appreview.ListReviewsUseCase,
) *ReviewHandler {
	return &ReviewHandler{
		submitReviewUseCase: submitReviewUseCase,
		removeReviewUseCase: removeReviewUseCase,
		listReviewsUseCase:  listReviewsUseCase,
	}
}

// SubmitReview 提交书评
// @Summary      提交书评
// @Description  新增或修改书评:带review_id为修改,不带为新增;同一用户重复评价同一本书时就地更新
// @Tags         书评
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.SubmitReviewRequest true "书评内容"
// @Success      200 {object} response.Response{data=dto.ReviewResponse}
// @Failure      400 {object} response.Response "评分超出范围或评论为空"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "非书评作者本人"
// @Failure      404 {object} response.Response "图书或书评不存在"
// @Router       /api/v1/reviews [post]
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var req dto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.submitReviewUseCase.Execute(c.Request.Context(), appreview.SubmitReviewRequest{
		BookID:   req.BookID,
		UserID:   userID,
		Rating:   req.Rating,
		Comment:  req.Comment,
		ReviewID: req.ReviewID,
	})

	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toReviewDTO(result))
}

// ListReviews 书评列表
// @Summary      书评列表
// @Description  返回指定图书的全部书评(按提交顺序)与平均评分;未知图书返回空列表
// @Tags         书评
// @Produce      json
// @Param        book_id query string true "图书ID"
// @Success      200 {object} response.Response{data=dto.ListReviewsResponse}
// @Router       /api/v1/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	bookID := c.Query("book_id")
	if bookID == "" {
		response.ErrorWithCode(c, 40900, "缺少book_id参数")
		return
	}

	result, err := h.listReviewsUseCase.Execute(c.Request.Context(), bookID)
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.ReviewResponse, len(result.List))
	for i := range result.List {
		list[i] = *toReviewDTO(&result.List[i])
	}

	response.Success(c, &dto.ListReviewsResponse{
		List:          list,
		Total:         result.Total,
		AverageRating: dto.FormatRating(result.AverageRating),
		HasRating:     result.HasRating,
	})
}

// RemoveReview 删除书评
// @Summary      删除书评
// @Description  书评作者本人删除自己的书评
// @Tags         书评
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "书评ID"
// @Param        book_id query string true "图书ID"
// @Success      200 {object} response.Response "删除成功"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "非书评作者本人"
// @Failure      404 {object} response.Response "图书或书评不存在"
// @Router       /api/v1/reviews/{id} [delete]
func (h *ReviewHandler) RemoveReview(c *gin.Context) {
	bookID := c.Query("book_id")
	if bookID == "" {
		response.ErrorWithCode(c, 40900, "缺少book_id参数")
		return
	}

	userID := middleware.MustGetUserID(c)

	if err := h.removeReviewUseCase.Execute(c.Request.Context(), bookID, c.Param("id"), userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func toReviewDTO(r *appreview.ReviewResponse) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:        r.ID,
		BookID:    r.BookID,
		UserID:    r.UserID,
		Username:  r.Username,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
