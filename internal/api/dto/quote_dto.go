package dto

import "encoding/json"

// ==================== 报价 ====================

// LandQuoteRequest 陆运报价请求 (POST /shipments/land/quote)
type LandQuoteRequest struct {
	TrackingNumber string `json:"tracking_number"`
	CustomerID     int64  `json:"customer_id"`
	VehiclePlate   string `json:"vehicle_plate"`
	FleetCode      string `json:"fleet_code"`
	Quantity       int    `json:"quantity"`
}

// SeaQuoteRequest 海运报价请求 (POST /shipments/sea/quote)
type SeaQuoteRequest struct {
	TrackingNumber    string `json:"tracking_number"`
	CustomerID        int64  `json:"customer_id"`
	OriginPortID      int64  `json:"origin_port_id"`
	DestinationPortID int64  `json:"destination_port_id"`
	Quantity          int    `json:"quantity"`
}

// QuoteResult 报价结果
// 报价是临时对象，不持久化；只有单独的创建调用才会把它变成运单。
// Raw 保留定价服务返回的完整对象，客户端不对其数字字段做二次解释
type QuoteResult struct {
	TrackingNumber string          `json:"tracking_number"`
	CustomerID     int64           `json:"customer_id"`
	ComputedPrice  string          `json:"computed_price"`
	Discount       string          `json:"discount"`
	Breakdown      json.RawMessage `json:"breakdown,omitempty"`

	Raw json.RawMessage `json:"-"`
}
