package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/xiebiao/bookreview/internal/domain/book"
)

// BookStore 图书仓储的内存实现
// seq保存插入顺序(List/Search按此顺序返回),byID/byISBN是查找索引,
// 三者指向同一批实体指针,全部变更都在写锁内完成
type BookStore struct {
	mu     sync.RWMutex
	seq    []*book.Book
	byID   map[string]*book.Book
	byISBN map[string]*book.Book
}

// NewBookStore 创建图书内存仓储
func NewBookStore() *BookStore {
	return &BookStore{
		byID:   make(map[string]*book.Book),
		byISBN: make(map[string]*book.Book),
	}
}

// Create 创建图书
// ISBN唯一性在写锁内检查,与插入原子完成
func (s *BookStore) Create(ctx context.Context, b *book.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byISBN[b.ISBN]; ok {
		return book.ErrISBNDuplicate
	}

	clone := cloneBook(b)
	s.seq = append(s.seq, clone)
	s.byID[clone.ID] = clone
	s.byISBN[clone.ISBN] = clone
	return nil
}

// FindByID 根据ID查找图书
func (s *BookStore) FindByID(ctx context.Context, id string) (*book.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byID[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return cloneBook(b), nil
}

// FindByISBN 根据归一化ISBN精确查找图书
func (s *BookStore) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byISBN[isbn]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return cloneBook(b), nil
}

// Update 更新图书信息
// ISBN在store层也保持不可变:无论入参ISBN是什么,保留已存储的值
func (s *BookStore) Update(ctx context.Context, b *book.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.byID[b.ID]
	if !ok {
		return book.ErrBookNotFound
	}

	clone := cloneBook(b)
	clone.ISBN = existing.ISBN
	clone.CreatedAt = existing.CreatedAt
	*existing = *clone
	return nil
}

// Delete 删除图书
func (s *BookStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.byID[id]
	if !ok {
		return book.ErrBookNotFound
	}

	delete(s.byID, id)
	delete(s.byISBN, b.ISBN)
	for i, item := range s.seq {
		if item.ID == id {
			s.seq = append(s.seq[:i], s.seq[i+1:]...)
			break
		}
	}
	return nil
}

// List 返回全部图书(稳定插入顺序)
func (s *BookStore) List(ctx context.Context) ([]*book.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*book.Book, len(s.seq))
	for i, b := range s.seq {
		result[i] = cloneBook(b)
	}
	return result, nil
}

// SearchByTitle 书名大小写不敏感子串匹配
func (s *BookStore) SearchByTitle(ctx context.Context, keyword string) ([]*book.Book, error) {
	return s.search(func(b *book.Book) string { return b.Title }, keyword), nil
}

// SearchByAuthor 作者大小写不敏感子串匹配
func (s *BookStore) SearchByAuthor(ctx context.Context, keyword string) ([]*book.Book, error) {
	return s.search(func(b *book.Book) string { return b.Author }, keyword), nil
}

// search 按字段做大小写不敏感子串匹配,无结果返回空切片
func (s *BookStore) search(field func(*book.Book) string, keyword string) []*book.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lower := strings.ToLower(keyword)
	result := make([]*book.Book, 0)
	for _, b := range s.seq {
		if strings.Contains(strings.ToLower(field(b)), lower) {
			result = append(result, cloneBook(b))
		}
	}
	return result
}

// cloneBook 复制图书实体
func cloneBook(b *book.Book) *book.Book {
	c := *b
	return &c
}
