// Package memory 提供各仓储接口的内存实现
//
// 设计说明:
// 1. 每个store持有独立的sync.RWMutex:所有变更串行化,读操作并发执行
//    且只返回副本(一致性快照,外部拿不到内部指针)
// 2. store以实例方式构造、显式注入,不使用包级全局变量——
//    测试中每个用例构造全新store即可互相隔离
// 3. 与mysql适配器实现同一组domain仓储接口,通过配置切换
package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/bookreview/internal/domain/user"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// UserStore 用户仓储的内存实现
type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]*user.User
	byEmail map[string]*user.User
}

// NewUserStore 创建用户内存仓储
func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[string]*user.User),
		byEmail: make(map[string]*user.User),
	}
}

// Create 创建用户
// 邮箱唯一性在写锁内检查,与插入原子完成(没有SELECT再INSERT的时间窗口)
func (s *UserStore) Create(ctx context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[u.Email]; ok {
		return apperrors.ErrEmailDuplicate
	}

	clone := cloneUser(u)
	s.byID[clone.ID] = clone
	s.byEmail[clone.Email] = clone
	return nil
}

// FindByID 根据ID查找用户
func (s *UserStore) FindByID(ctx context.Context, id string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return cloneUser(u), nil
}

// FindByEmail 根据邮箱查找用户
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byEmail[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return cloneUser(u), nil
}

// cloneUser 复制用户实体(store内部状态与外部互不可见)
func cloneUser(u *user.User) *user.User {
	c := *u
	return &c
}
