package model

import "regexp"

// ==================== 运输方式 ====================

// Mode 运输方式：陆运或海运
// 一旦创建不可变更；切换方式等于换掉整个方式专属的明细
type Mode string

const (
	ModeLand Mode = "LAND" // 陆运：仓库 + 车牌
	ModeSea  Mode = "SEA"  // 海运：港口 + 船队编号
)

// Valid 校验运输方式取值
func (m Mode) Valid() bool {
	return m == ModeLand || m == ModeSea
}

// ==================== 字段格式规则 ====================

// 车牌 (简化规则): ABC123 或 ABC12D
var PlateRE = regexp.MustCompile(`^[A-Z]{3}\d{2}[A-Z0-9]$`)

// 船队编号: FLT-0001
var FleetRE = regexp.MustCompile(`^FLT-\d{4}$`)

// 运单号: GUIA-2026-000001
var TrackingRE = regexp.MustCompile(`^GUIA-\d{4}-\d{6}$`)

// ==================== 方式明细 ====================

// LandDetail 陆运明细
type LandDetail struct {
	WarehouseID  int64
	VehiclePlate string
}

// SeaDetail 海运明细
type SeaDetail struct {
	PortID      int64
	FleetNumber string
}

// ShipmentDetail 方式明细联合体
// 不变式：Land 和 Sea 恰好一个非 nil，且与 Mode 一致
type ShipmentDetail struct {
	Mode Mode
	Land *LandDetail
	Sea  *SeaDetail
}

// Consistent 校验明细与运输方式的排他性
func (d ShipmentDetail) Consistent() bool {
	switch d.Mode {
	case ModeLand:
		return d.Land != nil && d.Sea == nil
	case ModeSea:
		return d.Sea != nil && d.Land == nil
	default:
		return false
	}
}
