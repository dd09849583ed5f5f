package book

import (
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.ErrBookNotFound

	// ErrISBNDuplicate ISBN已存在
	ErrISBNDuplicate = apperrors.ErrISBNDuplicate

	// ErrInvalidISBN ISBN格式不正确
	ErrInvalidISBN = apperrors.ErrInvalidISBN

	// ErrForbidden 无权操作此图书
	ErrForbidden = apperrors.ErrForbidden
)
