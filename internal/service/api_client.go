package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"cargo_dev_v1_202609/pkg/utils"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// ==================== 配置 ====================

// APIClientConfig 网关客户端配置
type APIClientConfig struct {
	BaseURL string // 含版本前缀，如 http://localhost:8000/api/v1
	Timeout time.Duration
	Debug   bool
}

// ==================== 网关客户端 ====================

// APIClient 类型化请求/响应层
// 职责：挂鉴权头、编码查询串、解析响应、把非 2xx 错误体归一成可读消息
type APIClient struct {
	http *resty.Client
}

// NewAPIClient 创建网关客户端
func NewAPIClient(cfg APIClientConfig) *APIClient {
	return &APIClient{
		http: utils.NewRestyClient(cfg.BaseURL, cfg.Timeout, cfg.Debug),
	}
}

// RequestOptions 单次请求的可选项
type RequestOptions struct {
	Token  string     // 非空才会携带 Authorization: Bearer
	Query  url.Values // 已按规范省略空值的查询参数
	Body   any        // 非 nil 则 JSON 序列化并带 Content-Type
	Result any        // 非 nil 则把 2xx 响应体解到这里
	Raw    *json.RawMessage
}

// Do 发送一次请求
// 传输失败 → NetworkError，非 2xx → APIError (消息按 DeriveErrorMessage 推导)
func (c *APIClient) Do(ctx context.Context, method, path string, opts RequestOptions) error {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())

	if opts.Token != "" {
		req.SetHeader("Authorization", "Bearer "+opts.Token)
	}
	if opts.Query != nil {
		req.SetQueryParamsFromValues(opts.Query)
	}
	if opts.Body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(opts.Body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return &NetworkError{Err: err}
	}

	body := resp.Body()

	if resp.StatusCode() >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode(),
			Message:    DeriveErrorMessage(resp.StatusCode(), body),
			Body:       body,
		}
	}

	if opts.Raw != nil {
		*opts.Raw = json.RawMessage(append([]byte(nil), body...))
	}

	if opts.Result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, opts.Result); err != nil {
			return fmt.Errorf("解析响应失败: %w", err)
		}
	}

	return nil
}

// Get 便捷方法
func (c *APIClient) Get(ctx context.Context, path string, opts RequestOptions) error {
	return c.Do(ctx, "GET", path, opts)
}

// Post 便捷方法
func (c *APIClient) Post(ctx context.Context, path string, opts RequestOptions) error {
	return c.Do(ctx, "POST", path, opts)
}

// Patch 便捷方法
func (c *APIClient) Patch(ctx context.Context, path string, opts RequestOptions) error {
	return c.Do(ctx, "PATCH", path, opts)
}

// Delete 便捷方法
func (c *APIClient) Delete(ctx context.Context, path string, opts RequestOptions) error {
	return c.Do(ctx, "DELETE", path, opts)
}
