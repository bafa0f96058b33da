package dto

// ==================== 客户 ====================

// Customer 客户
type Customer struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	DocumentID string `json:"document_id,omitempty"`
}

// CreateCustomerRequest 创建客户请求
type CreateCustomerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	DocumentID string `json:"document_id,omitempty"`
}

// UpdateCustomerRequest 更新客户请求 (PATCH，未提供的字段不变)
type UpdateCustomerRequest struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	DocumentID *string `json:"document_id,omitempty"`
}

// CustomerListQuery 客户列表过滤
type CustomerListQuery struct {
	ListQuery
	Email string // 精确过滤
}

// ==================== 产品类型 ====================

// ProductType 产品类型
type ProductType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateProductTypeRequest 创建产品类型请求
type CreateProductTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateProductTypeRequest 更新产品类型请求
type UpdateProductTypeRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ==================== 仓库 (仅陆运使用) ====================

// Warehouse 仓库
type Warehouse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// CreateWarehouseRequest 创建仓库请求
type CreateWarehouseRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// UpdateWarehouseRequest 更新仓库请求
type UpdateWarehouseRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	Country *string `json:"country,omitempty"`
}

// ==================== 港口 (仅海运使用) ====================

// Port 港口
type Port struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// CreatePortRequest 创建港口请求
type CreatePortRequest struct {
	Name    string `json:"name"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// UpdatePortRequest 更新港口请求
type UpdatePortRequest struct {
	Name    *string `json:"name,omitempty"`
	City    *string `json:"city,omitempty"`
	Country *string `json:"country,omitempty"`
}
