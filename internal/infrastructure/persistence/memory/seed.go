package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/review"
	"github.com/xiebiao/bookreview/internal/domain/user"
)

// Seed 写入示例目录数据(memory驱动启动时调用)
// 含3个示例用户(密码均为password123)和6本图书及其书评,
// 方便本地起服务后直接浏览和登录体验
func Seed(ctx context.Context, users *UserStore, books *BookStore, reviews *ReviewStore) error {
	type seedUser struct {
		username string
		email    string
	}
	seedUsers := []seedUser{
		{"BookLover", "booklover@example.com"},
		{"LitFan", "litfan@example.com"},
		{"FantasyReader", "fantasy@example.com"},
	}

	// 示例数据用默认cost,避免启动时3次cost=12的加密耗时
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("生成示例密码失败: %w", err)
	}

	userIDs := make(map[string]string) // username → id
	for _, su := range seedUsers {
		u := user.NewUser(su.username, su.email, string(hash))
		if err := users.Create(ctx, u); err != nil {
			return fmt.Errorf("写入示例用户失败: %w", err)
		}
		userIDs[su.username] = u.ID
	}

	type seedReview struct {
		username  string
		rating    int
		comment   string
		createdAt string // 2006-01-02
	}
	type seedBook struct {
		isbn        string
		title       string
		author      string
		description string
		cover       string
		createdBy   string // username
		reviews     []seedReview
	}

	seedBooks := []seedBook{
		{
			isbn:        "9780451524935",
			title:       "1984",
			author:      "George Orwell",
			description: "A dystopian social science fiction novel that examines the consequences of totalitarianism, mass surveillance, and repressive regimentation.",
			cover:       "https://images.unsplash.com/photo-1504610926078-a1611febcad3?q=80&w=500&auto=format&fit=crop",
			createdBy:   "BookLover",
			reviews: []seedReview{
				{"BookLover", 5, "A timeless masterpiece that remains relevant today.", "2023-01-15"},
				{"LitFan", 4, "Thought-provoking and chilling. A must-read.", "2023-02-10"},
			},
		},
		{
			isbn:        "9780544003415",
			title:       "The Lord of the Rings",
			author:      "J.R.R. Tolkien",
			description: "An epic high-fantasy novel that follows the quest to destroy the One Ring, which was created by the Dark Lord Sauron.",
			cover:       "https://images.unsplash.com/photo-1618666012174-83b441c0bc76?q=80&w=500&auto=format&fit=crop",
			createdBy:   "FantasyReader",
			reviews: []seedReview{
				{"FantasyReader", 5, "The foundational work of modern fantasy. Incredible world-building.", "2023-03-05"},
			},
		},
		{
			isbn:        "9780061120084",
			title:       "To Kill a Mockingbird",
			author:      "Harper Lee",
			description: "A novel that examines racism and moral growth in the American South through the eyes of a young girl.",
			cover:       "https://images.unsplash.com/photo-1544947950-fa07a98d237f?q=80&w=500&auto=format&fit=crop",
			createdBy:   "BookLover",
			reviews: []seedReview{
				{"BookLover", 5, "A powerful story with unforgettable characters.", "2023-04-20"},
			},
		},
		{
			isbn:        "9780316769174",
			title:       "The Catcher in the Rye",
			author:      "J.D. Salinger",
			description: "A novel about the teenage angst and alienation of its protagonist, Holden Caulfield.",
			cover:       "https://images.unsplash.com/photo-1476275466078-4007374efbbe?q=80&w=500&auto=format&fit=crop",
			createdBy:   "LitFan",
			reviews:     nil, // 无书评,用于展示"暂无评分"状态
		},
		{
			isbn:        "9780143127550",
			title:       "The Great Gatsby",
			author:      "F. Scott Fitzgerald",
			description: "A novel set during the Roaring Twenties that explores themes of decadence, idealism, and the American Dream.",
			cover:       "https://images.unsplash.com/photo-1491841573634-28140fc7ced7?q=80&w=500&auto=format&fit=crop",
			createdBy:   "LitFan",
			reviews: []seedReview{
				{"LitFan", 4, "Beautifully written with complex characters.", "2023-05-12"},
			},
		},
		{
			isbn:        "9780307474278",
			title:       "The Road",
			author:      "Cormac McCarthy",
			description: "A post-apocalyptic novel following a father and son as they journey through a devastated America.",
			cover:       "https://images.unsplash.com/photo-1510172951991-856a62a9cde1?q=80&w=500&auto=format&fit=crop",
			createdBy:   "FantasyReader",
			reviews: []seedReview{
				{"FantasyReader", 5, "Haunting and poetic. One of McCarthy's best.", "2023-06-08"},
			},
		},
	}

	for _, sb := range seedBooks {
		b := book.NewBook(sb.isbn, sb.title, sb.author, sb.description, sb.cover, userIDs[sb.createdBy])
		if err := books.Create(ctx, b); err != nil {
			return fmt.Errorf("写入示例图书失败: %w", err)
		}

		for _, sr := range sb.reviews {
			createdAt, err := time.Parse("2006-01-02", sr.createdAt)
			if err != nil {
				return fmt.Errorf("解析示例书评日期失败: %w", err)
			}
			// 直接构造实体以保留历史日期(工厂方法会盖成当前时间)
			r := &review.Review{
				ID:        uuid.NewString(),
				BookID:    b.ID,
				UserID:    userIDs[sr.username],
				Username:  sr.username,
				Rating:    sr.rating,
				Comment:   sr.comment,
				CreatedAt: createdAt,
				UpdatedAt: createdAt,
			}
			if err := reviews.Create(ctx, r); err != nil {
				return fmt.Errorf("写入示例书评失败: %w", err)
			}
		}
	}

	return nil
}
