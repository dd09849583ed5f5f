package review

import (
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// 书评领域错误定义
var (
	// ErrReviewNotFound 书评不存在
	ErrReviewNotFound = apperrors.ErrReviewNotFound

	// ErrInvalidRating 评分必须为1-5的整数
	ErrInvalidRating = apperrors.ErrInvalidRating

	// ErrEmptyComment 评论内容不能为空
	ErrEmptyComment = apperrors.ErrEmptyComment

	// ErrForbidden 无权操作此书评
	ErrForbidden = apperrors.ErrForbidden
)
