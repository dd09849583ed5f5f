package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookreview/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	// 1. 构建DSN连接字符串
	dsn := cfg.Database.DSN()

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 6. 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&BookModel{},
		&ReviewModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/user/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type UserModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Username  string    `gorm:"size:50;not null;comment:用户名"`
	Email     string    `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string    `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// BookModel GORM图书模型
// 设计说明:
// 1. ISBN有唯一索引,防止重复(与应用层检查双重保护)
// 2. CreatedBy关联用户表,所有权校验的依据
// 3. Title/Author加索引支撑子串检索
type BookModel struct {
	ID          string    `gorm:"primaryKey;size:36"`
	ISBN        string    `gorm:"uniqueIndex;size:20;not null;comment:ISBN号(归一化后)"`
	Title       string    `gorm:"index:idx_search;size:200;not null;comment:书名"`
	Author      string    `gorm:"index:idx_search;size:100;not null;comment:作者"`
	Description string    `gorm:"type:text;comment:图书描述"`
	CoverURL    string    `gorm:"size:500;comment:封面图片URL"`
	CreatedBy   string    `gorm:"index;size:36;not null;comment:创建者用户ID"`
	CreatedAt   time.Time `gorm:"index;comment:创建时间"` // 按创建时间排序=插入顺序
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// ReviewModel GORM书评模型
// 设计说明:
// 1. (BookID, UserID)复合唯一索引:一人一书一评,数据库层兜底
// 2. Username是写入时的冗余快照
// 3. 按CreatedAt升序返回=插入顺序
type ReviewModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	BookID    string    `gorm:"uniqueIndex:idx_book_user;size:36;not null;comment:图书ID"`
	UserID    string    `gorm:"uniqueIndex:idx_book_user;size:36;not null;comment:作者用户ID"`
	Username  string    `gorm:"size:50;not null;comment:用户名快照"`
	Rating    int       `gorm:"type:tinyint;not null;comment:评分(1-5)"`
	Comment   string    `gorm:"type:text;not null;comment:评论内容"`
	CreatedAt time.Time `gorm:"index;comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (ReviewModel) TableName() string {
	return "reviews"
}
