package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestInitMetrics_Idempotent 重复初始化不应panic（promauto重复注册会panic）
func TestInitMetrics_Idempotent(t *testing.T) {
	InitMetrics()
	InitMetrics() // 第二次调用应被initialized标记拦截

	if HTTPRequestsTotal == nil {
		t.Fatal("HTTPRequestsTotal未初始化")
	}
}

// TestGinMiddleware_CountsRequests 中间件应按路由模板统计请求
func TestGinMiddleware_CountsRequests(t *testing.T) {
	InitMetrics()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/api/v1/books/:isbn", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/books/:isbn", "200"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/books/9780451524935", nil)
	r.ServeHTTP(w, req)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/books/:isbn", "200"))
	if after != before+1 {
		t.Errorf("请求计数未增加: before=%v after=%v", before, after)
	}
}
