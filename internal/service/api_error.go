package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ==================== 错误类型 ====================

// AuthError 凭证错误 (登录失败)
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// InvalidTokenError 令牌被拒绝 (过期/畸形)
// 收到该错误时本地会话已被清除，调用方必须强制重新登录
type InvalidTokenError struct {
	Message string
}

func (e *InvalidTokenError) Error() string { return e.Message }

// UnauthenticatedError 未登录，任何网络调用之前就会抛出
type UnauthenticatedError struct{}

func (e *UnauthenticatedError) Error() string { return "未登录，请先执行 login" }

// AuthorizationError 角色不足 (客户端预检，不发网络请求)
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// ValidationError 本地输入不合法 (客户端预检，不发网络请求)
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NetworkError 传输层失败
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("网络请求失败: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// APIError 通用非 2xx 响应
// Message 是按固定优先级从错误体推导出的唯一展示文本；
// 只要能推导出消息，就绝不单独暴露状态码
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string { return e.Message }

// ==================== 错误体解析 ====================

// validationEntry 服务端结构化校验条目 (detail 列表里的元素)
type validationEntry struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// DeriveErrorMessage 从错误体推导人类可读消息
// 优先级：
//  1. 错误体本身是字符串 → 原样使用
//  2. detail 字段是字符串 → 使用
//  3. detail 是校验条目列表 → 逐条 "<点分位置>: <消息>" 换行拼接
//  4. 整个错误体序列化为文本；失败则兜底 "HTTP error <状态码>"
func DeriveErrorMessage(status int, body []byte) string {
	fallback := fmt.Sprintf("HTTP error %d", status)

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return fallback
	}

	var parsed any
	if err := json.Unmarshal(trimmed, &parsed); err != nil {
		// 不是 JSON：原始文本就是错误体
		return string(trimmed)
	}

	switch v := parsed.(type) {
	case string:
		if v != "" {
			return v
		}
		return fallback
	case map[string]any:
		if detail, ok := v["detail"]; ok {
			switch d := detail.(type) {
			case string:
				return d
			case []any:
				if msg := joinValidationDetail(d); msg != "" {
					return msg
				}
			}
		}
	}

	serialized, err := json.Marshal(parsed)
	if err != nil || len(serialized) == 0 {
		return fallback
	}
	return string(serialized)
}

// joinValidationDetail 拼接结构化校验列表
// 缺少可用位置的条目省略前缀；完全拼不出内容时返回空串走兜底
func joinValidationDetail(entries []any) string {
	lines := make([]string, 0, len(entries))

	for _, raw := range entries {
		m, ok := raw.(map[string]any)
		if !ok {
			if b, err := json.Marshal(raw); err == nil {
				lines = append(lines, string(b))
			}
			continue
		}

		msg, _ := m["msg"].(string)
		if msg == "" {
			if b, err := json.Marshal(m); err == nil {
				lines = append(lines, string(b))
			}
			continue
		}

		loc := dottedLoc(m["loc"])
		if loc == "" {
			lines = append(lines, msg)
		} else {
			lines = append(lines, loc+": "+msg)
		}
	}

	return strings.Join(lines, "\n")
}

// dottedLoc 把 loc 路径 ["body","quantity",0] 转成 "body.quantity.0"
func dottedLoc(raw any) string {
	items, ok := raw.([]any)
	if !ok || len(items) == 0 {
		return ""
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		switch p := item.(type) {
		case string:
			parts = append(parts, p)
		case float64:
			// JSON 数字解出来是 float64，位置索引都是整数
			parts = append(parts, fmt.Sprintf("%d", int64(p)))
		default:
			parts = append(parts, fmt.Sprintf("%v", p))
		}
	}
	return strings.Join(parts, ".")
}
