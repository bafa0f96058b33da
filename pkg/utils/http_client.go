package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// NewRestyClient 创建一个配置好超时和调试模式的 Resty 客户端
// 它是全系统统一的网络请求入口，所有 API 调用都走这个客户端
func NewRestyClient(baseURL string, timeout time.Duration, debug bool) *resty.Client {
	if timeout == 0 {
		// 默认超时 (报价接口可能比较慢，给 20s)
		timeout = 20 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetDebug(debug).
		SetTimeout(timeout).
		SetHeader("User-Agent", "Cargo-Go-Client/1.0")

	// 关键：禁用 resty 的自动重试
	// 失败对当前操作是终态的，由用户手动重新触发
	client.SetRetryCount(0)

	return client
}
