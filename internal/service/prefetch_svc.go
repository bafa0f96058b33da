package service

import (
	"context"
	"sync"

	"cargo_dev_v1_202609/internal/api/dto"
	"cargo_dev_v1_202609/pkg/utils"
)

// prefetchCacheKey 报价表单目录在缓存里的键
const prefetchCacheKey = "quote_form_catalogs"

// ==================== 目录预取 ====================

// QuoteFormCatalogs 报价/创建表单需要的四份目录
type QuoteFormCatalogs struct {
	Customers    []dto.Customer
	ProductTypes []dto.ProductType
	Warehouses   []dto.Warehouse
	Ports        []dto.Port
}

// PrefetchService 表单目录预取
// 四个读取并发发出，全部等完；任何一个失败就放弃整批，
// 返回第一个失败 (按 客户/产品类型/仓库/港口 的固定顺序)
type PrefetchService struct {
	catalog *CatalogService
	cache   *utils.TTLCache
}

// NewPrefetchService 创建预取服务
func NewPrefetchService(catalog *CatalogService, cache *utils.TTLCache) *PrefetchService {
	return &PrefetchService{catalog: catalog, cache: cache}
}

// QuoteFormCatalogs 拉取 (或命中缓存) 表单目录
func (s *PrefetchService) QuoteFormCatalogs(ctx context.Context) (*QuoteFormCatalogs, error) {
	if cached, ok := s.cache.Get(prefetchCacheKey); ok {
		if catalogs, ok := cached.(*QuoteFormCatalogs); ok {
			return catalogs, nil
		}
	}

	// 表单下拉一次最多展示 100 条
	query := dto.ListQuery{Page: 1, PageSize: 100}

	var (
		wg       sync.WaitGroup
		catalogs QuoteFormCatalogs
		errs     [4]error
	)

	wg.Add(4)

	go func() {
		defer wg.Done()
		resp, err := s.catalog.ListCustomers(ctx, dto.CustomerListQuery{ListQuery: query})
		if err != nil {
			errs[0] = err
			return
		}
		catalogs.Customers = resp.Items
	}()

	go func() {
		defer wg.Done()
		resp, err := s.catalog.ListProductTypes(ctx, query)
		if err != nil {
			errs[1] = err
			return
		}
		catalogs.ProductTypes = resp.Items
	}()

	go func() {
		defer wg.Done()
		resp, err := s.catalog.ListWarehouses(ctx, query)
		if err != nil {
			errs[2] = err
			return
		}
		catalogs.Warehouses = resp.Items
	}()

	go func() {
		defer wg.Done()
		resp, err := s.catalog.ListPorts(ctx, query)
		if err != nil {
			errs[3] = err
			return
		}
		catalogs.Ports = resp.Items
	}()

	wg.Wait()

	// 任何一个失败都不填表单，部分结果直接丢弃
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	s.cache.Set(prefetchCacheKey, &catalogs)
	return &catalogs, nil
}

// InvalidateCatalogs 目录变更后作废缓存
func (s *PrefetchService) InvalidateCatalogs() {
	s.cache.Delete(prefetchCacheKey)
}
