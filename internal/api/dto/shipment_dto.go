package dto

import "cargo_dev_v1_202609/internal/model"

// ==================== 运单 ====================

// Shipment 运单响应
// 价格字段以字符串十进制传输，避免货币值的浮点舍入
// 方式专属字段：LAND 填 warehouse_id + vehicle_plate，SEA 填 port_id + fleet_number，
// 不适用一侧恒为 null
type Shipment struct {
	ID               int64      `json:"id"`
	CustomerID       int64      `json:"customer_id"`
	ProductTypeID    int64      `json:"product_type_id"`
	Quantity         int        `json:"quantity"`
	RegistrationDate string     `json:"registration_date"` // YYYY-MM-DD
	DeliveryDate     string     `json:"delivery_date"`     // YYYY-MM-DD
	BasePrice        string     `json:"base_price"`
	Discount         string     `json:"discount"`
	FinalPrice       string     `json:"final_price"`
	TrackingNumber   string     `json:"tracking_number"`
	Mode             model.Mode `json:"mode"`

	// 陆运明细
	WarehouseID  *int64  `json:"warehouse_id,omitempty"`
	VehiclePlate *string `json:"vehicle_plate,omitempty"`

	// 海运明细
	PortID      *int64  `json:"port_id,omitempty"`
	FleetNumber *string `json:"fleet_number,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`
}

// Detail 提取方式明细联合体
func (s *Shipment) Detail() model.ShipmentDetail {
	d := model.ShipmentDetail{Mode: s.Mode}
	switch s.Mode {
	case model.ModeLand:
		if s.WarehouseID != nil && s.VehiclePlate != nil {
			d.Land = &model.LandDetail{WarehouseID: *s.WarehouseID, VehiclePlate: *s.VehiclePlate}
		}
	case model.ModeSea:
		if s.PortID != nil && s.FleetNumber != nil {
			d.Sea = &model.SeaDetail{PortID: *s.PortID, FleetNumber: *s.FleetNumber}
		}
	}
	return d
}

// CreateShipmentRequest 创建运单的出站载荷
// 由验证器构建；不适用方式的字段保持 nil 不序列化
type CreateShipmentRequest struct {
	CustomerID       int64      `json:"customer_id"`
	ProductTypeID    int64      `json:"product_type_id"`
	Quantity         int        `json:"quantity"`
	RegistrationDate string     `json:"registration_date"`
	DeliveryDate     string     `json:"delivery_date"`
	BasePrice        string     `json:"base_price"`
	Discount         string     `json:"discount"`
	TrackingNumber   string     `json:"tracking_number"`
	Mode             model.Mode `json:"mode"`

	WarehouseID  *int64  `json:"warehouse_id,omitempty"`
	VehiclePlate *string `json:"vehicle_plate,omitempty"`
	PortID       *int64  `json:"port_id,omitempty"`
	FleetNumber  *string `json:"fleet_number,omitempty"`
}

// UpdateShipmentRequest 更新运单的出站载荷 (PATCH，未提供的字段不变)
type UpdateShipmentRequest struct {
	Quantity         *int    `json:"quantity,omitempty"`
	RegistrationDate *string `json:"registration_date,omitempty"`
	DeliveryDate     *string `json:"delivery_date,omitempty"`
	BasePrice        *string `json:"base_price,omitempty"`
	Discount         *string `json:"discount,omitempty"`
	TrackingNumber   *string `json:"tracking_number,omitempty"`
}

// ShipmentDraft 创建表单的原始输入
// 数字字段保持字符串形态 (表单值)，由验证器做类型转换；
// 两种方式的字段可以同时出现，验证器按 mode 丢弃不适用一侧
type ShipmentDraft struct {
	CustomerID       string
	ProductTypeID    string
	Quantity         string
	RegistrationDate string
	DeliveryDate     string
	BasePrice        string
	Discount         string
	TrackingNumber   string
	Mode             model.Mode

	WarehouseID  string
	VehiclePlate string
	PortID       string
	FleetNumber  string
}

// ShipmentUpdateDraft 更新表单的原始输入 (空串表示未提供)
type ShipmentUpdateDraft struct {
	Quantity         string
	RegistrationDate string
	DeliveryDate     string
	BasePrice        string
	Discount         string
	TrackingNumber   string
}

// ShipmentListQuery 运单列表过滤
type ShipmentListQuery struct {
	ListQuery
	Mode          model.Mode // 为空不过滤
	CustomerID    *int64
	ProductTypeID *int64
}
