package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cargo_dev_v1_202609/internal/api/dto"
	"cargo_dev_v1_202609/internal/model"

	"github.com/shopspring/decimal"
)

// dateLayout 运单日期的传输格式
const dateLayout = "2006-01-02"

// ==================== 运单服务 ====================

// ShipmentService 运单客户端
// 变更验证器在这里：出站载荷在发请求之前构建并校验，
// 本地校验失败的请求永远到不了网络层
type ShipmentService struct {
	api     *APIClient
	session *SessionService
}

// NewShipmentService 创建运单服务
func NewShipmentService(api *APIClient, session *SessionService) *ShipmentService {
	return &ShipmentService{api: api, session: session}
}

// ==================== 创建载荷验证 ====================

// BuildCreatePayload 把表单草稿转成规范出站载荷
// 规则：
//   - 方式排他：LAND 只带仓库+车牌，SEA 只带港口+船队编号，
//     草稿里不适用一侧的字段直接丢弃，不会进出站载荷
//   - 数字字段从表单字符串转成数字类型
//   - 价格字段保持字符串十进制，不经过浮点
func (s *ShipmentService) BuildCreatePayload(draft *dto.ShipmentDraft) (*dto.CreateShipmentRequest, error) {
	if !draft.Mode.Valid() {
		return nil, &ValidationError{Message: fmt.Sprintf("无效的运输方式: %q", draft.Mode)}
	}

	customerID, err := parseRequiredID("customer_id", draft.CustomerID)
	if err != nil {
		return nil, err
	}
	productTypeID, err := parseRequiredID("product_type_id", draft.ProductTypeID)
	if err != nil {
		return nil, err
	}

	quantity, err := parseQuantity(draft.Quantity)
	if err != nil {
		return nil, err
	}

	tracking := strings.TrimSpace(draft.TrackingNumber)
	if tracking == "" {
		return nil, &ValidationError{Message: "tracking_number 不能为空"}
	}
	if !model.TrackingRE.MatchString(tracking) {
		return nil, &ValidationError{Message: "tracking_number 格式不正确，应形如 GUIA-2026-000001"}
	}

	regDate, err := parseDate("registration_date", draft.RegistrationDate)
	if err != nil {
		return nil, err
	}
	delDate, err := parseDate("delivery_date", draft.DeliveryDate)
	if err != nil {
		return nil, err
	}
	if delDate.Before(regDate) {
		return nil, &ValidationError{Message: "delivery_date 不能早于 registration_date"}
	}

	basePrice, err := parsePrice("base_price", draft.BasePrice)
	if err != nil {
		return nil, err
	}
	discount, err := parsePrice("discount", draft.Discount)
	if err != nil {
		return nil, err
	}
	if discount.GreaterThan(basePrice) {
		return nil, &ValidationError{Message: "discount 不能大于 base_price"}
	}

	req := &dto.CreateShipmentRequest{
		CustomerID:       customerID,
		ProductTypeID:    productTypeID,
		Quantity:         quantity,
		RegistrationDate: draft.RegistrationDate,
		DeliveryDate:     draft.DeliveryDate,
		BasePrice:        basePrice.String(),
		Discount:         discount.String(),
		TrackingNumber:   tracking,
		Mode:             draft.Mode,
	}

	// 方式专属明细；不适用一侧保持 nil，序列化时整个不出现
	switch draft.Mode {
	case model.ModeLand:
		warehouseID, err := parseRequiredID("warehouse_id", draft.WarehouseID)
		if err != nil {
			return nil, err
		}
		plate := strings.TrimSpace(draft.VehiclePlate)
		if plate == "" {
			return nil, &ValidationError{Message: "陆运必须提供 vehicle_plate"}
		}
		if !model.PlateRE.MatchString(plate) {
			return nil, &ValidationError{Message: "vehicle_plate 格式不正确，应形如 ABC123"}
		}
		req.WarehouseID = &warehouseID
		req.VehiclePlate = &plate

	case model.ModeSea:
		portID, err := parseRequiredID("port_id", draft.PortID)
		if err != nil {
			return nil, err
		}
		fleet := strings.TrimSpace(draft.FleetNumber)
		if fleet == "" {
			return nil, &ValidationError{Message: "海运必须提供 fleet_number"}
		}
		if !model.FleetRE.MatchString(fleet) {
			return nil, &ValidationError{Message: "fleet_number 格式不正确，应形如 FLT-0001"}
		}
		req.PortID = &portID
		req.FleetNumber = &fleet
	}

	return req, nil
}

// BuildUpdatePayload 把更新草稿转成 PATCH 载荷 (空串字段视为未提供)
func (s *ShipmentService) BuildUpdatePayload(draft *dto.ShipmentUpdateDraft) (*dto.UpdateShipmentRequest, error) {
	req := &dto.UpdateShipmentRequest{}

	if draft.Quantity != "" {
		quantity, err := parseQuantity(draft.Quantity)
		if err != nil {
			return nil, err
		}
		req.Quantity = &quantity
	}

	var regDate, delDate *time.Time
	if draft.RegistrationDate != "" {
		d, err := parseDate("registration_date", draft.RegistrationDate)
		if err != nil {
			return nil, err
		}
		regDate = &d
		req.RegistrationDate = &draft.RegistrationDate
	}
	if draft.DeliveryDate != "" {
		d, err := parseDate("delivery_date", draft.DeliveryDate)
		if err != nil {
			return nil, err
		}
		delDate = &d
		req.DeliveryDate = &draft.DeliveryDate
	}
	// 两侧都提供时才做先后校验，单侧更新交给服务端
	if regDate != nil && delDate != nil && delDate.Before(*regDate) {
		return nil, &ValidationError{Message: "delivery_date 不能早于 registration_date"}
	}

	var basePrice, discount *decimal.Decimal
	if draft.BasePrice != "" {
		p, err := parsePrice("base_price", draft.BasePrice)
		if err != nil {
			return nil, err
		}
		basePrice = &p
		str := p.String()
		req.BasePrice = &str
	}
	if draft.Discount != "" {
		p, err := parsePrice("discount", draft.Discount)
		if err != nil {
			return nil, err
		}
		discount = &p
		str := p.String()
		req.Discount = &str
	}
	if basePrice != nil && discount != nil && discount.GreaterThan(*basePrice) {
		return nil, &ValidationError{Message: "discount 不能大于 base_price"}
	}

	if draft.TrackingNumber != "" {
		tracking := strings.TrimSpace(draft.TrackingNumber)
		if !model.TrackingRE.MatchString(tracking) {
			return nil, &ValidationError{Message: "tracking_number 格式不正确，应形如 GUIA-2026-000001"}
		}
		req.TrackingNumber = &tracking
	}

	return req, nil
}

// ==================== 字段转换 ====================

// parseRequiredID 表单字符串转正整数 id
func parseRequiredID(field, raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &ValidationError{Message: fmt.Sprintf("%s 不能为空", field)}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, &ValidationError{Message: fmt.Sprintf("%s 必须是正整数: %q", field, raw)}
	}
	return id, nil
}

// parseQuantity 数量必须 ≥ 1
func parseQuantity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	quantity, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ValidationError{Message: fmt.Sprintf("quantity 必须是整数: %q", raw)}
	}
	if quantity < 1 {
		return 0, &ValidationError{Message: "quantity 必须 ≥ 1"}
	}
	return quantity, nil
}

// parseDate 日期必须是 YYYY-MM-DD
func parseDate(field, raw string) (time.Time, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, &ValidationError{Message: fmt.Sprintf("%s 必须是 YYYY-MM-DD 格式: %q", field, raw)}
	}
	return d, nil
}

// parsePrice 价格字段：字符串十进制，≥ 0
// 解析只为校验，出站仍是字符串，不走浮点
func parsePrice(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, &ValidationError{Message: fmt.Sprintf("%s 不能为空", field)}
	}
	p, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &ValidationError{Message: fmt.Sprintf("%s 必须是十进制数: %q", field, raw)}
	}
	if p.IsNegative() {
		return decimal.Zero, &ValidationError{Message: fmt.Sprintf("%s 不能为负", field)}
	}
	return p, nil
}

// ==================== CRUD ====================

// CreateShipment 校验草稿并创建运单
// 服务端返回的 discount / final_price 才是持久化的权威值
func (s *ShipmentService) CreateShipment(ctx context.Context, draft *dto.ShipmentDraft) (*dto.Shipment, error) {
	payload, err := s.BuildCreatePayload(draft)
	if err != nil {
		return nil, err
	}

	token, err := s.requireToken(ctx)
	if err != nil {
		return nil, err
	}

	var resp dto.Shipment
	err = s.api.Post(ctx, "/shipments", RequestOptions{
		Token:  token,
		Body:   payload,
		Result: &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateShipment 校验更新草稿并提交 PATCH
func (s *ShipmentService) UpdateShipment(ctx context.Context, id int64, draft *dto.ShipmentUpdateDraft) (*dto.Shipment, error) {
	payload, err := s.BuildUpdatePayload(draft)
	if err != nil {
		return nil, err
	}

	token, err := s.requireToken(ctx)
	if err != nil {
		return nil, err
	}

	var resp dto.Shipment
	err = s.api.Patch(ctx, fmt.Sprintf("/shipments/%d", id), RequestOptions{
		Token:  token,
		Body:   payload,
		Result: &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetShipment 运单详情
func (s *ShipmentService) GetShipment(ctx context.Context, id int64) (*dto.Shipment, error) {
	token, err := s.requireToken(ctx)
	if err != nil {
		return nil, err
	}

	var resp dto.Shipment
	err = s.api.Get(ctx, fmt.Sprintf("/shipments/%d", id), RequestOptions{
		Token:  token,
		Result: &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListShipments 运单列表 (q 匹配运单号，另有方式/客户/产品过滤)
func (s *ShipmentService) ListShipments(ctx context.Context, q dto.ShipmentListQuery) (*dto.ListResponse[dto.Shipment], error) {
	token, err := s.requireToken(ctx)
	if err != nil {
		return nil, err
	}

	var resp dto.ListResponse[dto.Shipment]
	err = s.api.Get(ctx, "/shipments", RequestOptions{
		Token: token,
		Query: q.Values(map[string]any{
			"mode":            string(q.Mode),
			"customer_id":     q.CustomerID,
			"product_type_id": q.ProductTypeID,
		}),
		Result: &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteShipment 删除运单 (管理操作，先做角色预检)
func (s *ShipmentService) DeleteShipment(ctx context.Context, id int64) (*dto.DeleteResponse, error) {
	sess, err := s.session.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	var resp dto.DeleteResponse
	err = s.api.Delete(ctx, fmt.Sprintf("/shipments/%d", id), RequestOptions{
		Token:  sess.AccessToken,
		Result: &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// requireToken 读取令牌，未登录直接拦截
func (s *ShipmentService) requireToken(ctx context.Context) (string, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", &UnauthenticatedError{}
	}
	return token, nil
}
