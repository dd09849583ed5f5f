package review

import (
	"context"
	"errors"
	"strings"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/ownership"
	"github.com/xiebiao/bookreview/internal/domain/user"
)

// UpsertParams 书评提交参数
// ReviewID为空表示新增,非空表示就地更新指定书评
type UpsertParams struct {
	BookID   string
	UserID   string
	Rating   int
	Comment  string
	ReviewID string // 可选
}

// Service 书评领域服务接口
// 设计说明:
// 1. 封装书评的全部业务规则:输入校验、所有权守卫、一人一书一评
// 2. 依赖图书仓储(确认图书存在)和用户仓储(冗余用户名),均为接口
type Service interface {
	// Upsert 提交书评(新增或更新)
	// 业务规则:
	// - 评分必须为1-5的整数,评论去除首尾空白后不能为空
	// - 指定ReviewID时:书评必须存在且归属提交者,否则NotFound/Forbidden
	// - 未指定ReviewID时:提交者必须存在;若其已评过该书,则就地更新
	//   原书评(一人一书一评),否则追加新书评
	Upsert(ctx context.Context, params UpsertParams) (*Review, error)

	// ListForBook 返回图书的全部书评(插入顺序)
	// 无书评或图书不存在时均返回空切片,查询路径不报错
	ListForBook(ctx context.Context, bookID string) ([]*Review, error)

	// Remove 删除书评
	// 业务规则:图书和书评必须存在,且书评归属操作者
	Remove(ctx context.Context, bookID, reviewID, userID string) error
}

// service 领域服务实现
type service struct {
	repo     Repository
	bookRepo book.Repository
	userRepo user.Repository
}

// NewService 创建书评领域服务
func NewService(repo Repository, bookRepo book.Repository, userRepo user.Repository) Service {
	return &service{
		repo:     repo,
		bookRepo: bookRepo,
		userRepo: userRepo,
	}
}

// Upsert 提交书评
func (s *service) Upsert(ctx context.Context, params UpsertParams) (*Review, error) {
	// 1. 输入校验
	if params.Rating < 1 || params.Rating > 5 {
		return nil, ErrInvalidRating
	}
	comment := strings.TrimSpace(params.Comment)
	if comment == "" {
		return nil, ErrEmptyComment
	}

	// 2. 图书必须存在
	if _, err := s.bookRepo.FindByID(ctx, params.BookID); err != nil {
		return nil, err
	}

	// 3. 指定了ReviewID:就地更新
	if params.ReviewID != "" {
		return s.update(ctx, params.BookID, params.ReviewID, params.UserID, params.Rating, comment)
	}

	// 4. 未指定ReviewID:提交者必须存在(同时取用户名做冗余)
	u, err := s.userRepo.FindByID(ctx, params.UserID)
	if err != nil {
		return nil, err
	}

	// 5. 一人一书一评:该用户已评过此书则就地更新原书评
	existing, err := s.repo.FindByBookAndUser(ctx, params.BookID, params.UserID)
	if err == nil {
		existing.UpdateContent(params.Rating, comment)
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, ErrReviewNotFound) {
		return nil, err
	}

	// 6. 追加新书评
	r := NewReview(params.BookID, params.UserID, u.Username, params.Rating, comment)
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

// update 就地更新指定书评
// 保持ID、UserID、Username、CreatedAt不变
func (s *service) update(ctx context.Context, bookID, reviewID, userID string, rating int, comment string) (*Review, error) {
	// 1. 书评必须存在于该图书下
	r, err := s.repo.FindByID(ctx, bookID, reviewID)
	if err != nil {
		return nil, err
	}

	// 2. 所有权校验:只能编辑自己的书评
	if err := ownership.Require(r, userID); err != nil {
		return nil, err
	}

	// 3. 更新内容并持久化
	r.UpdateContent(rating, comment)
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

// ListForBook 返回图书的全部书评
// 未知图书视为无书评,不做存在性校验(写路径Upsert/Remove才校验)
func (s *service) ListForBook(ctx context.Context, bookID string) ([]*Review, error) {
	return s.repo.ListByBook(ctx, bookID)
}

// Remove 删除书评
func (s *service) Remove(ctx context.Context, bookID, reviewID, userID string) error {
	// 1. 图书必须存在
	if _, err := s.bookRepo.FindByID(ctx, bookID); err != nil {
		return err
	}

	// 2. 书评必须存在
	r, err := s.repo.FindByID(ctx, bookID, reviewID)
	if err != nil {
		return err
	}

	// 3. 所有权校验:只能删除自己的书评
	if err := ownership.Require(r, userID); err != nil {
		return err
	}

	// 4. 执行删除
	return s.repo.Delete(ctx, bookID, reviewID)
}

// AverageRating 计算评分均值
// 没有书评时返回(0, false)——"暂无评分"状态,而非0分或NaN;
// 展示层负责保留一位小数
func AverageRating(reviews []*Review) (float64, bool) {
	if len(reviews) == 0 {
		return 0, false
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews)), true
}
