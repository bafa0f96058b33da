package service

import (
	"context"
	"net/http"
	"testing"

	"cargo_dev_v1_202609/internal/api/dto"
	"cargo_dev_v1_202609/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== 折扣预览 ====================

func TestPreviewDiscount(t *testing.T) {
	base := decimal.RequireFromString("2000")

	cases := []struct {
		name     string
		mode     model.Mode
		quantity int
		expected string
	}{
		{"陆运数量不足不打折", model.ModeLand, 10, "0"},
		{"海运数量不足不打折", model.ModeSea, 1, "0"},
		{"陆运过阈值打 5%", model.ModeLand, 11, "100"},
		{"海运过阈值打 3%", model.ModeSea, 11, "60"},
		{"未知方式不打折", model.Mode("AIR"), 99, "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PreviewDiscount(tc.mode, tc.quantity, base)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.expected)),
				"期望 %s，得到 %s", tc.expected, got)
		})
	}
}

func TestPreviewDiscount_ExactDecimal(t *testing.T) {
	// 0.1 这类值走十进制不会出现浮点尾数
	base := decimal.RequireFromString("0.10")
	got := PreviewDiscount(model.ModeLand, 11, base)
	assert.Equal(t, "0.005", got.String())
}

// ==================== 报价服务 ====================

func landQuoteReq() *dto.LandQuoteRequest {
	return &dto.LandQuoteRequest{
		TrackingNumber: "GUIA-2026-000001",
		CustomerID:     1,
		VehiclePlate:   "ABC123",
		FleetCode:      "FLT-0001",
		Quantity:       5,
	}
}

func seaQuoteReq() *dto.SeaQuoteRequest {
	return &dto.SeaQuoteRequest{
		TrackingNumber:    "GUIA-2026-000002",
		CustomerID:        1,
		OriginPortID:      3,
		DestinationPortID: 4,
		Quantity:          20,
	}
}

func TestQuoteLand_UnauthenticatedBeforeNetwork(t *testing.T) {
	var calls int
	api := newMockAPI(t, func(r *gin.Engine) {
		r.POST("/shipments/land/quote", func(c *gin.Context) {
			calls++
			c.JSON(http.StatusOK, gin.H{})
		})
	})

	svc := NewQuoteService(api, newTestSession(t))
	_, err := svc.QuoteLand(context.Background(), landQuoteReq())

	var unauthErr *UnauthenticatedError
	require.ErrorAs(t, err, &unauthErr)
	assert.Equal(t, 0, calls, "未登录不应发出任何网络请求")
}

func TestQuoteSea_UnauthenticatedBeforeNetwork(t *testing.T) {
	var calls int
	api := newMockAPI(t, func(r *gin.Engine) {
		r.POST("/shipments/sea/quote", func(c *gin.Context) {
			calls++
			c.JSON(http.StatusOK, gin.H{})
		})
	})

	svc := NewQuoteService(api, newTestSession(t))
	_, err := svc.QuoteSea(context.Background(), seaQuoteReq())

	var unauthErr *UnauthenticatedError
	require.ErrorAs(t, err, &unauthErr)
	assert.Equal(t, 0, calls)
}

func TestQuoteLand_Success(t *testing.T) {
	api := newMockAPI(t, func(r *gin.Engine) {
		r.POST("/shipments/land/quote", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"tracking_number": "GUIA-2026-000001",
				"customer_id":     1,
				"computed_price":  "1425.475",
				"discount":        "75.025",
				"breakdown":       gin.H{"fuel": "12.5"},
			})
		})
	})

	session := newTestSession(t)
	seedSession(t, session, "tok", "ops", model.RoleOperator)

	svc := NewQuoteService(api, session)
	result, err := svc.QuoteLand(context.Background(), landQuoteReq())
	require.NoError(t, err)

	// 服务端数字原样透出，不做二次解释
	assert.Equal(t, "1425.475", result.ComputedPrice)
	assert.Equal(t, "75.025", result.Discount)
	assert.JSONEq(t, `{
		"tracking_number": "GUIA-2026-000001",
		"customer_id":     1,
		"computed_price":  "1425.475",
		"discount":        "75.025",
		"breakdown":       {"fuel": "12.5"}
	}`, string(result.Raw))
}

func TestQuoteLand_ValidationBeforeNetwork(t *testing.T) {
	var calls int
	api := newMockAPI(t, func(r *gin.Engine) {
		r.POST("/shipments/land/quote", func(c *gin.Context) {
			calls++
			c.JSON(http.StatusOK, gin.H{})
		})
	})

	session := newTestSession(t)
	seedSession(t, session, "tok", "ops", model.RoleOperator)
	svc := NewQuoteService(api, session)

	bad := []*dto.LandQuoteRequest{
		{TrackingNumber: "", VehiclePlate: "ABC123", FleetCode: "FLT-0001", Quantity: 1},
		{TrackingNumber: "GUIA-2026-000001", VehiclePlate: "", FleetCode: "FLT-0001", Quantity: 1},
		{TrackingNumber: "GUIA-2026-000001", VehiclePlate: "ABC123", FleetCode: "", Quantity: 1},
		{TrackingNumber: "GUIA-2026-000001", VehiclePlate: "ABC123", FleetCode: "FLT-0001", Quantity: 0},
	}
	for i, req := range bad {
		_, err := svc.QuoteLand(context.Background(), req)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr, "用例 %d 应被本地拦截", i)
	}
	assert.Equal(t, 0, calls)
}

func TestQuoteSea_ValidationBeforeNetwork(t *testing.T) {
	var calls int
	api := newMockAPI(t, func(r *gin.Engine) {
		r.POST("/shipments/sea/quote", func(c *gin.Context) {
			calls++
			c.JSON(http.StatusOK, gin.H{})
		})
	})

	session := newTestSession(t)
	seedSession(t, session, "tok", "ops", model.RoleOperator)
	svc := NewQuoteService(api, session)

	req := seaQuoteReq()
	req.DestinationPortID = 0

	_, err := svc.QuoteSea(context.Background(), req)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, calls)
}

func TestQuoteSea_ServerErrorSurfaced(t *testing.T) {
	api := newMockAPI(t, func(r *gin.Engine) {
		r.POST("/shipments/sea/quote", func(c *gin.Context) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "unknown port"})
		})
	})

	session := newTestSession(t)
	seedSession(t, session, "tok", "ops", model.RoleOperator)

	svc := NewQuoteService(api, session)
	_, err := svc.QuoteSea(context.Background(), seaQuoteReq())

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "unknown port", apiErr.Message)
}
