//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 教学说明：
// 1. Wire是Google开发的编译期依赖注入工具
// 2. 与运行时反射注入（如Spring的@Autowired）不同，Wire在编译期生成代码
// 3. 优势：零运行时开销、类型安全、编译期检测循环依赖
//
// Wire工作流程：
// Step 1: 编写wire.go（本文件），定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeApp()
//
// 说明：此Injector组装的是MySQL+Redis的生产组合；
// 内存驱动与可选Redis的切换逻辑保留在main.go的手动注入中。

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	appbook "github.com/xiebiao/bookreview/internal/application/book"
	appreview "github.com/xiebiao/bookreview/internal/application/review"
	appsearch "github.com/xiebiao/bookreview/internal/application/search"
	appuser "github.com/xiebiao/bookreview/internal/application/user"
	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/review"
	"github.com/xiebiao/bookreview/internal/domain/user"
	"github.com/xiebiao/bookreview/internal/infrastructure/config"
	"github.com/xiebiao/bookreview/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookreview/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookreview/internal/interface/http/handler"
	"github.com/xiebiao/bookreview/internal/interface/http/middleware"
	"github.com/xiebiao/bookreview/pkg/jwt"
	"github.com/xiebiao/bookreview/pkg/metrics"
)

// ========================================
// Wire Provider Sets (依赖分组)
// ========================================

// infrastructureSet 基础设施层依赖
// 包含：配置加载、数据库连接、Redis连接
var infrastructureSet = wire.NewSet(
	config.Load,     // 加载配置文件
	mysql.NewDB,     // 创建MySQL连接
	redis.NewClient, // 创建Redis连接
)

// repositorySet 仓储层依赖
// 包含：所有Repository的构造函数
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,   // 用户仓储
	mysql.NewBookRepository,   // 图书仓储
	mysql.NewReviewRepository, // 书评仓储
)

// domainSet 领域层依赖
// 包含：所有领域服务的构造函数
var domainSet = wire.NewSet(
	user.NewService,   // 用户领域服务
	book.NewService,   // 图书领域服务
	review.NewService, // 书评领域服务
)

// applicationSet 应用层依赖
// 包含：所有Use Case的构造函数
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,      // 用户注册用例
	appuser.NewLoginUseCase,         // 用户登录用例
	appuser.NewLogoutUseCase,        // 用户登出用例
	appuser.NewProfileUseCase,       // 用户资料用例
	appbook.NewCreateBookUseCase,    // 图书录入用例
	appbook.NewListBooksUseCase,     // 图书列表用例
	appbook.NewBookDetailUseCase,    // 图书详情用例
	appbook.NewUpdateBookUseCase,    // 图书修改用例
	appbook.NewDeleteBookUseCase,    // 图书删除用例
	appreview.NewSubmitReviewUseCase, // 书评提交用例
	appreview.NewRemoveReviewUseCase, // 书评删除用例
	appreview.NewListReviewsUseCase,  // 书评列表用例
	appsearch.NewSearchBooksUseCase,  // 图书检索用例
)

// middlewareSet 中间件依赖
// 包含：JWT管理器、认证中间件
var middlewareSet = wire.NewSet(
	provideJWTManager,            // JWT管理器（需要从config提取参数）
	provideSessionStore,          // Session存储（需要从Redis创建）
	middleware.NewAuthMiddleware, // 认证中间件
)

// handlerSet HTTP处理器依赖
// 包含：所有Handler的构造函数
var handlerSet = wire.NewSet(
	handler.NewUserHandler,   // 用户处理器
	handler.NewBookHandler,   // 图书处理器
	handler.NewReviewHandler, // 书评处理器
	handler.NewSearchHandler, // 检索处理器
)

// ========================================
// Custom Providers (自定义Provider)
// ========================================

// provideJWTManager 从配置创建JWT管理器
// Wire无法自动知道如何从Config提取参数，所以需要手动编写Provider
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideGinEngine 创建并配置Gin引擎
// 路由注册需要所有的Handler和Middleware，Wire会自动注入这些依赖
func provideGinEngine(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	reviewHandler *handler.ReviewHandler,
	searchHandler *handler.SearchHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	// 设置运行模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.InitMetrics()

	r := gin.Default()
	r.Use(metrics.GinMiddleware())

	registerRoutes(r, userHandler, bookHandler, reviewHandler, searchHandler, authMiddleware)

	return r
}

// ========================================
// Wire Injector (依赖注入器)
// ========================================
//
// 依赖链示例：
// *gin.Engine 需要 → *handler.BookHandler
// *handler.BookHandler 需要 → *appbook.CreateBookUseCase
// *appbook.CreateBookUseCase 需要 → book.Service
// book.Service 需要 → book.Repository
// book.Repository 需要 → *gorm.DB
// *gorm.DB 需要 → *config.Config

// InitializeApp 初始化整个应用
// 返回：配置好的Gin引擎
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		// 基础设施层
		infrastructureSet,

		// 仓储层
		repositorySet,

		// 领域层
		domainSet,

		// 应用层
		applicationSet,

		// 中间件层
		middlewareSet,

		// 接口层
		handlerSet,

		// Gin引擎
		provideGinEngine,
	)

	// 返回值是占位符，实际运行时会被wire_gen.go替代
	return nil, nil
}
