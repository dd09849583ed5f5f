package book

import (
	"context"
	"errors"

	"github.com/xiebiao/bookreview/internal/domain/ownership"
	"github.com/xiebiao/bookreview/pkg/isbn"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装跨实体的业务规则校验(ISBN格式、唯一性、所有权)
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// CreateBook 创建图书
	// 业务规则:
	// - ISBN归一化后必须为10位或13位数字
	// - ISBN不能重复
	// - 创建者记录为createdBy,此后变更操作只允许该用户
	CreateBook(ctx context.Context, createdBy, rawISBN, title, author, description, coverURL string) (*Book, error)

	// GetBookByID 根据ID获取图书详情
	GetBookByID(ctx context.Context, id string) (*Book, error)

	// GetBookByISBN 根据ISBN获取图书
	// 入参先归一化,格式非法返回ErrInvalidISBN
	GetBookByISBN(ctx context.Context, rawISBN string) (*Book, error)

	// ListBooks 返回全部图书(稳定插入顺序)
	ListBooks(ctx context.Context) ([]*Book, error)

	// SearchByTitle 书名子串检索(大小写不敏感),无结果返回空切片
	SearchByTitle(ctx context.Context, keyword string) ([]*Book, error)

	// SearchByAuthor 作者子串检索(大小写不敏感),无结果返回空切片
	SearchByAuthor(ctx context.Context, keyword string) ([]*Book, error)

	// UpdateBookInfo 更新图书信息
	// 业务规则:只有创建者本人可以修改;ISBN不可变更(不在参数中)
	UpdateBookInfo(ctx context.Context, id, userID, title, author, description, coverURL string) (*Book, error)

	// DeleteBook 删除图书
	// 业务规则:只有创建者本人可以删除
	DeleteBook(ctx context.Context, id, userID string) error
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, createdBy, rawISBN, title, author, description, coverURL string) (*Book, error) {
	// 1. ISBN归一化与格式校验
	normalized, ok := isbn.NormalizeAndValidate(rawISBN)
	if !ok {
		return nil, ErrInvalidISBN
	}

	// 2. 检查ISBN是否已存在
	existing, err := s.repo.FindByISBN(ctx, normalized)
	if err == nil && existing != nil {
		return nil, ErrISBNDuplicate
	}
	if err != nil && !errors.Is(err, ErrBookNotFound) {
		return nil, err
	}

	// 3. 创建图书实体
	b := NewBook(normalized, title, author, description, coverURL, createdBy)

	// 4. 持久化(存储层对ISBN也有唯一性保护,防止并发窗口)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id string) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// GetBookByISBN 根据ISBN获取图书
func (s *service) GetBookByISBN(ctx context.Context, rawISBN string) (*Book, error) {
	normalized, ok := isbn.NormalizeAndValidate(rawISBN)
	if !ok {
		return nil, ErrInvalidISBN
	}
	return s.repo.FindByISBN(ctx, normalized)
}

// ListBooks 返回全部图书
func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}

// SearchByTitle 书名子串检索
func (s *service) SearchByTitle(ctx context.Context, keyword string) ([]*Book, error) {
	return s.repo.SearchByTitle(ctx, keyword)
}

// SearchByAuthor 作者子串检索
func (s *service) SearchByAuthor(ctx context.Context, keyword string) ([]*Book, error) {
	return s.repo.SearchByAuthor(ctx, keyword)
}

// UpdateBookInfo 更新图书信息
func (s *service) UpdateBookInfo(ctx context.Context, id, userID, title, author, description, coverURL string) (*Book, error) {
	// 1. 查询图书
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 所有权校验:只有创建者可以修改
	if err := ownership.Require(b, userID); err != nil {
		return nil, err
	}

	// 3. 更新信息(ISBN不可变更)
	b.UpdateInfo(title, author, description, coverURL)

	// 4. 持久化
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id, userID string) error {
	// 1. 查询图书
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	// 2. 所有权校验
	if err := ownership.Require(b, userID); err != nil {
		return err
	}

	// 3. 执行删除
	return s.repo.Delete(ctx, id)
}
