package dto

// ==================== 认证 ====================

// LoginRequest 登录请求 (POST /auth/token)
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse 令牌响应
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Identity 当前身份 (GET /auth/me)
type Identity struct {
	Subject string `json:"sub"`
	Role    string `json:"role"`
}

// RegisterRequest 注册请求 (POST /auth/register)
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User 用户响应
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
