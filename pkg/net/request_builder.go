package net

import (
	"fmt"
	"net/url"
	"strings"
)

// CanonicalQuery 通用查询串构建器
// 适用方：所有列表接口的分页/过滤参数
// 职责：统一省略规则 —— nil 和空字符串的键整个不发送 (而不是发空参数)，
// 其余值一律转成字符串表示
func CanonicalQuery(params map[string]any) url.Values {
	values := url.Values{}

	for key, raw := range params {
		s, ok := stringify(raw)
		if !ok {
			continue
		}
		values.Set(key, s)
	}

	return values
}

// stringify 把单个参数值转成字符串；第二个返回值为 false 表示该键应省略
func stringify(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return stringify(*v)
	case *int:
		if v == nil {
			return "", false
		}
		return fmt.Sprintf("%d", *v), true
	case *int64:
		if v == nil {
			return "", false
		}
		return fmt.Sprintf("%d", *v), true
	case fmt.Stringer:
		return stringify(v.String())
	default:
		return fmt.Sprintf("%v", v), true
	}
}

// TrimmedQ 过滤关键字的规范化：去掉首尾空白，空串视为未提供
func TrimmedQ(q string) string {
	return strings.TrimSpace(q)
}
