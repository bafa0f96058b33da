package service

import (
	"context"
	"time"

	"cargo_dev_v1_202609/internal/model"
	"cargo_dev_v1_202609/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/datatypes"
)

// ==================== 会话服务 ====================

// SessionService 显式注入的会话上下文
// 需要授权的组件全部依赖它，不读任何全局状态；
// 令牌每个动作读一次，不加锁
type SessionService struct {
	repo repository.SessionRepository
}

// NewSessionService 创建会话服务
func NewSessionService(repo repository.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

// Current 读取当前会话；未登录返回 (nil, nil)
func (s *SessionService) Current(ctx context.Context) (*model.Session, error) {
	rec, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.AccessToken == "" {
		return nil, nil
	}

	return &model.Session{
		AccessToken: rec.AccessToken,
		Subject:     rec.Subject,
		Role:        rec.Role,
		UpdatedAt:   rec.UpdatedAt,
	}, nil
}

// Token 读取当前令牌；未登录返回空串
func (s *SessionService) Token(ctx context.Context) (string, error) {
	sess, err := s.Current(ctx)
	if err != nil {
		return "", err
	}
	if sess == nil {
		return "", nil
	}
	return sess.AccessToken, nil
}

// Save 持久化会话 (登录成功后调用)
func (s *SessionService) Save(ctx context.Context, token, subject, role string, rawIdentity []byte) error {
	return s.repo.Save(ctx, &repository.SessionRecord{
		AccessToken: token,
		Subject:     subject,
		Role:        role,
		Identity:    datatypes.JSON(rawIdentity),
	})
}

// Invalidate 清除会话
// 在登出和令牌被服务端拒绝 (InvalidTokenError) 时触发
func (s *SessionService) Invalidate(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

// RequireAdmin 特权角色预检
// 删除等管理操作在发请求之前调用；角色不足直接返回 AuthorizationError
func (s *SessionService) RequireAdmin(ctx context.Context) (*model.Session, error) {
	sess, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, &UnauthenticatedError{}
	}
	if !sess.IsAdmin() {
		return nil, &AuthorizationError{Message: "该操作需要 admin 角色"}
	}
	return sess, nil
}

// TokenExpiry 本地查看令牌过期时间 (不验签，仅展示用)
// 拒绝令牌的权威判断始终在服务端；解析失败返回 nil
func (s *SessionService) TokenExpiry(token string) *time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}

	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	return &exp.Time
}
