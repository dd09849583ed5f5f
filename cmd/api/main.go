package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appbook "github.com/xiebiao/bookreview/internal/application/book"
	appreview "github.com/xiebiao/bookreview/internal/application/review"
	appsearch "github.com/xiebiao/bookreview/internal/application/search"
	appuser "github.com/xiebiao/bookreview/internal/application/user"
	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/review"
	"github.com/xiebiao/bookreview/internal/domain/user"
	"github.com/xiebiao/bookreview/internal/infrastructure/config"
	"github.com/xiebiao/bookreview/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookreview/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookreview/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookreview/internal/interface/http/handler"
	"github.com/xiebiao/bookreview/internal/interface/http/middleware"
	"github.com/xiebiao/bookreview/pkg/jwt"
	"github.com/xiebiao/bookreview/pkg/metrics"
	"github.com/xiebiao/bookreview/pkg/response"
)

// main 主程序入口
// 说明：手动依赖注入（wire.go提供Wire版本，`wire gen ./cmd/api`可生成）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 存储驱动: %s\n", cfg.Database.Driver)

	// 2. 初始化Prometheus指标
	metrics.InitMetrics()

	// 3. 按驱动选择仓储适配器
	// 学习要点：domain层只依赖Repository接口,内存/MySQL实现可互换
	var (
		userRepo   user.Repository
		bookRepo   book.Repository
		reviewRepo review.Repository
	)

	switch cfg.Database.Driver {
	case "mysql":
		db, err := mysql.NewDB(cfg)
		if err != nil {
			log.Fatalf("初始化数据库失败: %v", err)
		}
		userRepo = mysql.NewUserRepository(db)
		bookRepo = mysql.NewBookRepository(db)
		reviewRepo = mysql.NewReviewRepository(db)
	default:
		userStore := memory.NewUserStore()
		bookStore := memory.NewBookStore()
		reviewStore := memory.NewReviewStore()

		// 内存模式预置演示数据
		if err := memory.Seed(context.Background(), userStore, bookStore, reviewStore); err != nil {
			log.Fatalf("预置数据失败: %v", err)
		}
		fmt.Println("✓ 演示数据已预置")

		userRepo = userStore
		bookRepo = bookStore
		reviewRepo = reviewStore
	}

	// 4. 初始化Redis连接（可选）
	var sessionStore *redis.SessionStore
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(cfg)
		if err != nil {
			log.Fatalf("初始化Redis失败: %v", err)
		}
		sessionStore = redis.NewSessionStore(redisClient)
	}

	// 5. 依赖注入（手动组装）
	// 学习要点：依赖注入链
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)
	bookService := book.NewService(bookRepo)
	reviewService := review.NewService(reviewRepo, bookRepo, userRepo)

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore)
	profileUseCase := appuser.NewProfileUseCase(userService)
	createBookUseCase := appbook.NewCreateBookUseCase(bookService)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService, reviewService)
	bookDetailUseCase := appbook.NewBookDetailUseCase(bookService, reviewService)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookService)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookService)
	submitReviewUseCase := appreview.NewSubmitReviewUseCase(reviewService)
	removeReviewUseCase := appreview.NewRemoveReviewUseCase(reviewService)
	listReviewsUseCase := appreview.NewListReviewsUseCase(reviewService)
	searchBooksUseCase := appsearch.NewSearchBooksUseCase(bookService)

	// 接口层
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase, profileUseCase)
	bookHandler := handler.NewBookHandler(createBookUseCase, listBooksUseCase, bookDetailUseCase, updateBookUseCase, deleteBookUseCase)
	reviewHandler := handler.NewReviewHandler(submitReviewUseCase, removeReviewUseCase, listReviewsUseCase)
	searchHandler := handler.NewSearchHandler(searchBooksUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 6. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(metrics.GinMiddleware())

	// 7. 注册路由
	registerRoutes(r, userHandler, bookHandler, reviewHandler, searchHandler, authMiddleware)

	// 8. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档: http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   图书列表: GET http://localhost%s/api/v1/books\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	reviewHandler *handler.ReviewHandler,
	searchHandler *handler.SearchHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	// 访问 http://localhost:8080/swagger/index.html 查看API文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 用户模块
		users := v1.Group("/users")
		{
			users.POST("/register", userHandler.Register) // 注册(公开)
			users.POST("/login", userHandler.Login)       // 登录(公开)
			users.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
		}

		// 个人信息（需要登录）
		v1.GET("/profile", authMiddleware.RequireAuth(), userHandler.GetProfile)

		// 图书模块
		books := v1.Group("/books")
		{
			// 公开接口
			books.GET("", bookHandler.ListBooks)
			books.GET("/:isbn", bookHandler.GetBook)

			// 需要登录
			books.POST("", authMiddleware.RequireAuth(), bookHandler.CreateBook)
			books.PUT("/:id", authMiddleware.RequireAuth(), bookHandler.UpdateBook)
			books.DELETE("/:id", authMiddleware.RequireAuth(), bookHandler.DeleteBook)
		}

		// 检索（公开接口）
		v1.GET("/search", searchHandler.SearchBooks)

		// 书评模块
		reviews := v1.Group("/reviews")
		{
			// 公开接口
			reviews.GET("", reviewHandler.ListReviews)

			// 需要登录
			reviews.POST("", authMiddleware.RequireAuth(), reviewHandler.SubmitReview)
			reviews.DELETE("/:id", authMiddleware.RequireAuth(), reviewHandler.RemoveReview)
		}
	}
}
