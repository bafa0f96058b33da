package dto

import (
	"net/url"

	pkgnet "cargo_dev_v1_202609/pkg/net"
)

// ==================== 列表契约 ====================

// ListQuery 所有列表接口共享的查询形状
// page ≥ 1, page_size ∈ [1,100]；q 为自由文本过滤，修剪后为空则不发送
type ListQuery struct {
	Page     int
	PageSize int
	Q        string
}

// Values 构建规范化查询参数；extra 为各实体的字段过滤
func (q ListQuery) Values(extra map[string]any) url.Values {
	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	params := map[string]any{
		"page":      page,
		"page_size": pageSize,
		"q":         pkgnet.TrimmedQ(q.Q),
	}
	for k, v := range extra {
		params[k] = v
	}

	return pkgnet.CanonicalQuery(params)
}

// ListResponse 所有列表接口共享的响应形状
// total 是不分页的全量匹配数；len(Items) ≤ PageSize
type ListResponse[T any] struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
	Items    []T `json:"items"`
}

// DeleteResponse 删除接口的响应
type DeleteResponse struct {
	Status string `json:"status"`
}
