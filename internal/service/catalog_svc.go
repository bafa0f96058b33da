package service

import (
	"context"
	"fmt"

	"cargo_dev_v1_202609/internal/api/dto"
)

// ==================== 目录服务 ====================

// CatalogService 目录 CRUD 客户端 (客户/产品类型/仓库/港口)
// 这些都是对外部 API 的直通调用，业务规则只有两条：
//   - 带令牌 (每个动作读一次会话)
//   - 管理操作逐接口对齐服务端：产品类型和仓库的维护、客户删除是管理操作，
//     港口全程对普通用户开放；角色不足时预检拦截，不发网络请求
type CatalogService struct {
	api     *APIClient
	session *SessionService
}

// NewCatalogService 创建目录服务
func NewCatalogService(api *APIClient, session *SessionService) *CatalogService {
	return &CatalogService{api: api, session: session}
}

// requireToken 读取令牌，未登录直接拦截
func (s *CatalogService) requireToken(ctx context.Context) (string, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", &UnauthenticatedError{}
	}
	return token, nil
}

// ==================== 通用直通调用 ====================

// listResource 列表直通
func listResource[T any](ctx context.Context, s *CatalogService, path string, q dto.ListQuery, extra map[string]any) (*dto.ListResponse[T], error) {
	token, err := s.requireToken(ctx)
	if err != nil {
		return nil, err
	}

	var resp dto.ListResponse[T]
	err = s.api.Get(ctx, path, RequestOptions{
		Token:  token,
		Query:  q.Values(extra),
		Result: &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// getResource 详情直通
func getResource[T any](ctx context.Context, s *CatalogService, path string, id int64) (*T, error) {
	token, err := s.requireToken(ctx)
	if err != nil {
		return nil, err
	}

	var resp T
	err = s.api.Get(ctx, fmt.Sprintf("%s/%d", path, id), RequestOptions{
		Token:  token,
		Result: &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// createResource 创建直通
func createResource[T any](ctx context.Context, s *CatalogService, path string, body any, admin bool) (*T, error) {
	token, err := s.requireToken(ctx)
	if err != nil {
		return nil, err
	}
	if admin {
		if _, err := s.session.RequireAdmin(ctx); err != nil {
			return nil, err
		}
	}

	var resp T
	err = s.api.Post(ctx, path, RequestOptions{
		Token:  token,
		Body:   body,
		Result: &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// updateResource 更新直通 (PATCH)
func updateResource[T any](ctx context.Context, s *CatalogService, path string, id int64, body any, admin bool) (*T, error) {
	token, err := s.requireToken(ctx)
	if err != nil {
		return nil, err
	}
	if admin {
		if _, err := s.session.RequireAdmin(ctx); err != nil {
			return nil, err
		}
	}

	var resp T
	err = s.api.Patch(ctx, fmt.Sprintf("%s/%d", path, id), RequestOptions{
		Token:  token,
		Body:   body,
		Result: &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// deleteResource 删除直通
// admin 为 true 时先做角色预检，通过才发请求
func (s *CatalogService) deleteResource(ctx context.Context, path string, id int64, admin bool) (*dto.DeleteResponse, error) {
	token, err := s.requireToken(ctx)
	if err != nil {
		return nil, err
	}
	if admin {
		if _, err := s.session.RequireAdmin(ctx); err != nil {
			return nil, err
		}
	}

	var resp dto.DeleteResponse
	err = s.api.Delete(ctx, fmt.Sprintf("%s/%d", path, id), RequestOptions{
		Token:  token,
		Result: &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ==================== 客户 ====================

// ListCustomers 客户列表 (q 匹配名称类字段，email 精确过滤)
func (s *CatalogService) ListCustomers(ctx context.Context, q dto.CustomerListQuery) (*dto.ListResponse[dto.Customer], error) {
	return listResource[dto.Customer](ctx, s, "/customers", q.ListQuery, map[string]any{
		"email": q.Email,
	})
}

// GetCustomer 客户详情
func (s *CatalogService) GetCustomer(ctx context.Context, id int64) (*dto.Customer, error) {
	return getResource[dto.Customer](ctx, s, "/customers", id)
}

// CreateCustomer 创建客户
func (s *CatalogService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*dto.Customer, error) {
	return createResource[dto.Customer](ctx, s, "/customers", req, false)
}

// UpdateCustomer 更新客户
func (s *CatalogService) UpdateCustomer(ctx context.Context, id int64, req dto.UpdateCustomerRequest) (*dto.Customer, error) {
	return updateResource[dto.Customer](ctx, s, "/customers", id, req, false)
}

// DeleteCustomer 删除客户 (管理操作)
func (s *CatalogService) DeleteCustomer(ctx context.Context, id int64) (*dto.DeleteResponse, error) {
	return s.deleteResource(ctx, "/customers", id, true)
}

// ==================== 产品类型 ====================

// ListProductTypes 产品类型列表
func (s *CatalogService) ListProductTypes(ctx context.Context, q dto.ListQuery) (*dto.ListResponse[dto.ProductType], error) {
	return listResource[dto.ProductType](ctx, s, "/product-types", q, nil)
}

// GetProductType 产品类型详情
func (s *CatalogService) GetProductType(ctx context.Context, id int64) (*dto.ProductType, error) {
	return getResource[dto.ProductType](ctx, s, "/product-types", id)
}

// CreateProductType 创建产品类型 (管理操作)
func (s *CatalogService) CreateProductType(ctx context.Context, req dto.CreateProductTypeRequest) (*dto.ProductType, error) {
	return createResource[dto.ProductType](ctx, s, "/product-types", req, true)
}

// UpdateProductType 更新产品类型 (管理操作)
func (s *CatalogService) UpdateProductType(ctx context.Context, id int64, req dto.UpdateProductTypeRequest) (*dto.ProductType, error) {
	return updateResource[dto.ProductType](ctx, s, "/product-types", id, req, true)
}

// DeleteProductType 删除产品类型 (管理操作)
func (s *CatalogService) DeleteProductType(ctx context.Context, id int64) (*dto.DeleteResponse, error) {
	return s.deleteResource(ctx, "/product-types", id, true)
}

// ==================== 仓库 ====================

// ListWarehouses 仓库列表
func (s *CatalogService) ListWarehouses(ctx context.Context, q dto.ListQuery) (*dto.ListResponse[dto.Warehouse], error) {
	return listResource[dto.Warehouse](ctx, s, "/warehouses", q, nil)
}

// GetWarehouse 仓库详情
func (s *CatalogService) GetWarehouse(ctx context.Context, id int64) (*dto.Warehouse, error) {
	return getResource[dto.Warehouse](ctx, s, "/warehouses", id)
}

// CreateWarehouse 创建仓库 (管理操作)
func (s *CatalogService) CreateWarehouse(ctx context.Context, req dto.CreateWarehouseRequest) (*dto.Warehouse, error) {
	return createResource[dto.Warehouse](ctx, s, "/warehouses", req, true)
}

// UpdateWarehouse 更新仓库 (管理操作)
func (s *CatalogService) UpdateWarehouse(ctx context.Context, id int64, req dto.UpdateWarehouseRequest) (*dto.Warehouse, error) {
	return updateResource[dto.Warehouse](ctx, s, "/warehouses", id, req, true)
}

// DeleteWarehouse 删除仓库 (管理操作)
func (s *CatalogService) DeleteWarehouse(ctx context.Context, id int64) (*dto.DeleteResponse, error) {
	return s.deleteResource(ctx, "/warehouses", id, true)
}

// ==================== 港口 ====================

// ListPorts 港口列表
func (s *CatalogService) ListPorts(ctx context.Context, q dto.ListQuery) (*dto.ListResponse[dto.Port], error) {
	return listResource[dto.Port](ctx, s, "/ports", q, nil)
}

// GetPort 港口详情
func (s *CatalogService) GetPort(ctx context.Context, id int64) (*dto.Port, error) {
	return getResource[dto.Port](ctx, s, "/ports", id)
}

// CreatePort 创建港口
func (s *CatalogService) CreatePort(ctx context.Context, req dto.CreatePortRequest) (*dto.Port, error) {
	return createResource[dto.Port](ctx, s, "/ports", req, false)
}

// UpdatePort 更新港口
func (s *CatalogService) UpdatePort(ctx context.Context, id int64, req dto.UpdatePortRequest) (*dto.Port, error) {
	return updateResource[dto.Port](ctx, s, "/ports", id, req, false)
}

// DeletePort 删除港口
// 港口维护对普通用户开放，只要求已登录
func (s *CatalogService) DeletePort(ctx context.Context, id int64) (*dto.DeleteResponse, error) {
	return s.deleteResource(ctx, "/ports", id, false)
}
