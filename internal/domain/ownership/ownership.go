// Package ownership 提供统一的资源所有权守卫
//
// 设计说明：
// 1. 图书和书评的变更操作都要求"操作者 == 资源归属者"
// 2. 守卫逻辑集中在一处，避免各调用点重复实现导致规则分叉
// 3. 校验失败统一返回apperrors.ErrForbidden，绝不静默放行
package ownership

import (
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// Resource 可做所有权校验的资源
// 实体实现OwnerID()返回其记录的归属者（图书为CreatedBy，书评为UserID）
type Resource interface {
	OwnerID() string
}

// Require 要求userID为资源归属者，否则返回ErrForbidden
func Require(res Resource, userID string) error {
	if res.OwnerID() != userID {
		return apperrors.ErrForbidden
	}
	return nil
}
