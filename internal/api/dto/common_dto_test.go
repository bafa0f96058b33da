package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==================== 列表查询 ====================

func TestListQuery_Defaults(t *testing.T) {
	values := ListQuery{}.Values(nil)
	assert.Equal(t, "page=1&page_size=20", values.Encode())
}

func TestListQuery_Bounds(t *testing.T) {
	// page < 1 归到 1，page_size 夹在 [1,100]
	values := ListQuery{Page: -3, PageSize: 500}.Values(nil)
	assert.Equal(t, "1", values.Get("page"))
	assert.Equal(t, "100", values.Get("page_size"))

	values = ListQuery{Page: 2, PageSize: 100}.Values(nil)
	assert.Equal(t, "100", values.Get("page_size"))
}

func TestListQuery_TrimmedQ(t *testing.T) {
	values := ListQuery{Page: 1, PageSize: 10, Q: "  acme  "}.Values(nil)
	assert.Equal(t, "acme", values.Get("q"))

	// 修剪后为空的 q 整个键不发送
	values = ListQuery{Page: 1, PageSize: 10, Q: "   "}.Values(nil)
	assert.False(t, values.Has("q"))
}
