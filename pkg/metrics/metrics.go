// Package metrics 提供基于Prometheus的指标收集
//
// 指标命名规范：
// 1. Counter以_total结尾（http_requests_total、reviews_submitted_total）
// 2. Histogram包含单位（http_request_duration_seconds）
// 3. 标签只用低基数维度（method、path、status），不要用user_id等高基数标签
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板）、status（200/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// ReviewsSubmittedTotal 书评提交总数（Counter）
	// 标签：op（create/update）
	ReviewsSubmittedTotal *prometheus.CounterVec

	// ReviewsDeletedTotal 书评删除总数（Counter）
	ReviewsDeletedTotal prometheus.Counter

	// BooksCreatedTotal 图书创建总数（Counter）
	BooksCreatedTotal prometheus.Counter

	// SearchesTotal 检索总数（Counter）
	// 标签：kind（title/author/isbn）、result（hit/miss）
	SearchesTotal *prometheus.CounterVec

	// OwnershipDeniedTotal 所有权校验拒绝总数（Counter）
	// 标签：resource（book/review）
	OwnershipDeniedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 必须在程序启动时调用一次，注册所有指标到默认Registry
func InitMetrics() {
	// 防止重复初始化
	if initialized {
		return
	}
	initialized = true

	// HTTP请求指标
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP请求耗时（秒）",
			// 桶设置：1ms、10ms、100ms、500ms、1s、5s，覆盖大部分请求耗时范围
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	// 业务指标
	ReviewsSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviews_submitted_total",
			Help: "书评提交总数",
		},
		[]string{"op"},
	)

	ReviewsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_deleted_total",
			Help: "书评删除总数",
		},
	)

	BooksCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_created_total",
			Help: "图书创建总数",
		},
	)

	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "searches_total",
			Help: "检索总数",
		},
		[]string{"kind", "result"},
	)

	OwnershipDeniedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ownership_denied_total",
			Help: "所有权校验拒绝总数",
		},
		[]string{"resource"},
	)
}

// =========================================
// 业务指标辅助函数
// =========================================
// 统一做initialized检查，未调用InitMetrics时（如单元测试）为空操作

// IncReviewSubmitted 书评提交计数（op: create/update）
func IncReviewSubmitted(op string) {
	if !initialized {
		return
	}
	ReviewsSubmittedTotal.WithLabelValues(op).Inc()
}

// IncReviewDeleted 书评删除计数
func IncReviewDeleted() {
	if !initialized {
		return
	}
	ReviewsDeletedTotal.Inc()
}

// IncBookCreated 图书创建计数
func IncBookCreated() {
	if !initialized {
		return
	}
	BooksCreatedTotal.Inc()
}

// IncSearch 检索计数（kind: title/author/isbn，result: hit/miss/list）
func IncSearch(kind, result string) {
	if !initialized {
		return
	}
	SearchesTotal.WithLabelValues(kind, result).Inc()
}

// IncOwnershipDenied 所有权拒绝计数（resource: book/review）
func IncOwnershipDenied(resource string) {
	if !initialized {
		return
	}
	OwnershipDeniedTotal.WithLabelValues(resource).Inc()
}

// GinMiddleware HTTP指标采集中间件
// 使用c.FullPath()作为path标签（路由模板，如/api/v1/books/:isbn），
// 避免把真实参数值写入标签造成高基数
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		HTTPRequestsInProgress.Inc()

		c.Next()

		HTTPRequestsInProgress.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched" // 404等未匹配路由归到一个桶
		}

		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}
