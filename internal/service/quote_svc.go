package service

import (
	"context"
	"encoding/json"
	"strings"

	"cargo_dev_v1_202609/internal/api/dto"
	"cargo_dev_v1_202609/internal/model"

	"github.com/shopspring/decimal"
)

// ==================== 折扣预览 ====================

// 预览折扣率：数量 > 10 时陆运 5%、海运 3%，否则不打折
var (
	landPreviewRate = decimal.NewFromFloat(0.05)
	seaPreviewRate  = decimal.NewFromFloat(0.03)
)

// PreviewDiscount 创建表单展示用的折扣估算
// 只是客户端预览；创建运单时服务端返回的折扣/终价才是持久化的权威值
func PreviewDiscount(mode model.Mode, quantity int, basePrice decimal.Decimal) decimal.Decimal {
	if quantity <= 10 {
		return decimal.Zero
	}

	switch mode {
	case model.ModeLand:
		return basePrice.Mul(landPreviewRate)
	case model.ModeSea:
		return basePrice.Mul(seaPreviewRate)
	default:
		return decimal.Zero
	}
}

// ==================== 报价服务 ====================

// QuoteService 报价引擎客户端
// 实际定价由外部定价服务完成；这里负责认证预检、方式专属字段校验、
// 以及把服务端结果原样透出
type QuoteService struct {
	api     *APIClient
	session *SessionService
}

// NewQuoteService 创建报价服务
func NewQuoteService(api *APIClient, session *SessionService) *QuoteService {
	return &QuoteService{api: api, session: session}
}

// QuoteLand 陆运报价
// 未登录在任何网络调用之前就返回 UnauthenticatedError
func (s *QuoteService) QuoteLand(ctx context.Context, req *dto.LandQuoteRequest) (*dto.QuoteResult, error) {
	if strings.TrimSpace(req.TrackingNumber) == "" {
		return nil, &ValidationError{Message: "tracking_number 不能为空"}
	}
	if strings.TrimSpace(req.VehiclePlate) == "" {
		return nil, &ValidationError{Message: "陆运报价必须提供 vehicle_plate"}
	}
	if strings.TrimSpace(req.FleetCode) == "" {
		return nil, &ValidationError{Message: "陆运报价必须提供 fleet_code"}
	}
	if req.Quantity < 1 {
		return nil, &ValidationError{Message: "quantity 必须 ≥ 1"}
	}

	return s.quote(ctx, "/shipments/land/quote", req)
}

// QuoteSea 海运报价
func (s *QuoteService) QuoteSea(ctx context.Context, req *dto.SeaQuoteRequest) (*dto.QuoteResult, error) {
	if strings.TrimSpace(req.TrackingNumber) == "" {
		return nil, &ValidationError{Message: "tracking_number 不能为空"}
	}
	if req.OriginPortID < 1 || req.DestinationPortID < 1 {
		return nil, &ValidationError{Message: "海运报价必须提供起运港和目的港"}
	}
	if req.Quantity < 1 {
		return nil, &ValidationError{Message: "quantity 必须 ≥ 1"}
	}

	return s.quote(ctx, "/shipments/sea/quote", req)
}

// quote 共享的报价调用
// 服务端返回的完整对象保留在 Raw 里，数字字段不做二次解释
func (s *QuoteService) quote(ctx context.Context, path string, body any) (*dto.QuoteResult, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		// 预检：没令牌不发请求
		return nil, &UnauthenticatedError{}
	}

	var result dto.QuoteResult
	var raw json.RawMessage

	err = s.api.Post(ctx, path, RequestOptions{
		Token:  token,
		Body:   body,
		Result: &result,
		Raw:    &raw,
	})
	if err != nil {
		return nil, err
	}

	result.Raw = raw
	return &result, nil
}
