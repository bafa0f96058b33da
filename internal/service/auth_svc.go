package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"cargo_dev_v1_202609/internal/api/dto"
)

// ==================== 认证服务 ====================

// AuthService 认证客户端
// 职责：凭证换令牌、解析当前身份/角色、维护本地会话
type AuthService struct {
	api     *APIClient
	session *SessionService
}

// NewAuthService 创建认证服务
func NewAuthService(api *APIClient, session *SessionService) *AuthService {
	return &AuthService{api: api, session: session}
}

// Login 凭证换取 Bearer 令牌并持久化会话
// 非 2xx (凭证错误) 返回 AuthError
func (s *AuthService) Login(ctx context.Context, username, password string) (*dto.TokenResponse, error) {
	var token dto.TokenResponse
	err := s.api.Post(ctx, "/auth/token", RequestOptions{
		Body:   dto.LoginRequest{Username: username, Password: password},
		Result: &token,
	})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return nil, &AuthError{Message: apiErr.Message}
		}
		return nil, err
	}

	// 登录后立即解析身份，拿到角色供后续授权预检
	identity, raw, err := s.whoAmI(ctx, token.AccessToken)
	if err != nil {
		return nil, err
	}

	if err := s.session.Save(ctx, token.AccessToken, identity.Subject, identity.Role, raw); err != nil {
		return nil, err
	}

	return &token, nil
}

// WhoAmI 解析当前会话的身份与角色
// 令牌被拒绝时先清除本地会话再返回 InvalidTokenError
func (s *AuthService) WhoAmI(ctx context.Context) (*dto.Identity, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, &UnauthenticatedError{}
	}

	identity, _, err := s.whoAmI(ctx, token)
	if err != nil {
		return nil, err
	}
	return identity, nil
}

// whoAmI 用指定令牌调用 /auth/me
func (s *AuthService) whoAmI(ctx context.Context, token string) (*dto.Identity, []byte, error) {
	var identity dto.Identity
	var raw json.RawMessage

	err := s.api.Get(ctx, "/auth/me", RequestOptions{
		Token:  token,
		Result: &identity,
		Raw:    &raw,
	})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			// 令牌失效：清掉缓存令牌，强制重新登录
			_ = s.session.Invalidate(ctx)
			return nil, nil, &InvalidTokenError{Message: apiErr.Message}
		}
		return nil, nil, err
	}

	return &identity, raw, nil
}

// Register 注册新用户
func (s *AuthService) Register(ctx context.Context, username, password string) (*dto.User, error) {
	var user dto.User
	err := s.api.Post(ctx, "/auth/register", RequestOptions{
		Body:   dto.RegisterRequest{Username: username, Password: password},
		Result: &user,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout 登出并清除本地会话
func (s *AuthService) Logout(ctx context.Context) error {
	return s.session.Invalidate(ctx)
}
