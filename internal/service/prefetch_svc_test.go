package service

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"cargo_dev_v1_202609/internal/model"
	"cargo_dev_v1_202609/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPrefetchFixture 预取服务 + 请求计数
func newPrefetchFixture(t *testing.T, setup func(r *gin.Engine)) (*PrefetchService, *atomic.Int64) {
	t.Helper()

	var calls atomic.Int64
	api := newMockAPI(t, func(r *gin.Engine) {
		r.Use(func(c *gin.Context) {
			calls.Add(1)
			c.Next()
		})
		setup(r)
	})

	session := newTestSession(t)
	seedSession(t, session, "tok", "ops", model.RoleOperator)

	catalog := NewCatalogService(api, session)
	return NewPrefetchService(catalog, utils.NewTTLCache(time.Minute)), &calls
}

func emptyList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": 1, "page_size": 100, "total": 0, "items": []any{}})
}

// ==================== 目录预取 ====================

func TestQuoteFormCatalogs_FetchesAllFour(t *testing.T) {
	svc, calls := newPrefetchFixture(t, func(r *gin.Engine) {
		r.GET("/customers", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"page": 1, "page_size": 100, "total": 1,
				"items": []gin.H{{"id": 1, "name": "Acme"}},
			})
		})
		r.GET("/product-types", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"page": 1, "page_size": 100, "total": 1,
				"items": []gin.H{{"id": 2, "name": "Frágil"}},
			})
		})
		r.GET("/warehouses", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"page": 1, "page_size": 100, "total": 1,
				"items": []gin.H{{"id": 3, "name": "Central"}},
			})
		})
		r.GET("/ports", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"page": 1, "page_size": 100, "total": 1,
				"items": []gin.H{{"id": 4, "name": "Cartagena"}},
			})
		})
	})

	catalogs, err := svc.QuoteFormCatalogs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), calls.Load(), "四份目录各取一次")
	require.Len(t, catalogs.Customers, 1)
	require.Len(t, catalogs.ProductTypes, 1)
	require.Len(t, catalogs.Warehouses, 1)
	require.Len(t, catalogs.Ports, 1)
	assert.Equal(t, "Cartagena", catalogs.Ports[0].Name)
}

func TestQuoteFormCatalogs_CacheHitSkipsNetwork(t *testing.T) {
	svc, calls := newPrefetchFixture(t, func(r *gin.Engine) {
		r.GET("/customers", emptyList)
		r.GET("/product-types", emptyList)
		r.GET("/warehouses", emptyList)
		r.GET("/ports", emptyList)
	})

	_, err := svc.QuoteFormCatalogs(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(4), calls.Load())

	// 第二次命中缓存，不再发请求
	_, err = svc.QuoteFormCatalogs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), calls.Load())

	// 作废后重新拉取
	svc.InvalidateCatalogs()
	_, err = svc.QuoteFormCatalogs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(8), calls.Load())
}

func TestQuoteFormCatalogs_OneFailureAbortsBatch(t *testing.T) {
	svc, _ := newPrefetchFixture(t, func(r *gin.Engine) {
		r.GET("/customers", emptyList)
		r.GET("/product-types", emptyList)
		r.GET("/warehouses", func(c *gin.Context) {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "storage down"})
		})
		r.GET("/ports", emptyList)
	})

	_, err := svc.QuoteFormCatalogs(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "storage down", apiErr.Message)

	// 失败的批次不写缓存，重试仍会打到服务端
	_, err = svc.QuoteFormCatalogs(context.Background())
	require.Error(t, err, "失败结果不应被缓存")
}

func TestQuoteFormCatalogs_FirstFailureWins(t *testing.T) {
	svc, _ := newPrefetchFixture(t, func(r *gin.Engine) {
		r.GET("/customers", func(c *gin.Context) {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "customers down"})
		})
		r.GET("/product-types", emptyList)
		r.GET("/warehouses", emptyList)
		r.GET("/ports", func(c *gin.Context) {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "ports down"})
		})
	})

	// 多个失败时按固定顺序返回第一个
	_, err := svc.QuoteFormCatalogs(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "customers down", apiErr.Message)
}
