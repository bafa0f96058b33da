package service

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"cargo_dev_v1_202609/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ==================== 测试辅助 ====================

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestSession 基于内存 sqlite 的会话服务
func newTestSession(t *testing.T) *SessionService {
	t.Helper()

	db, err := repository.OpenStateDB(":memory:")
	if err != nil {
		t.Fatalf("打开测试状态库失败: %v", err)
	}

	return NewSessionService(repository.NewSessionRepository(db))
}

// seedSession 预置一个已登录会话
func seedSession(t *testing.T, s *SessionService, token, subject, role string) {
	t.Helper()

	if err := s.Save(context.Background(), token, subject, role, []byte(`{"sub":"`+subject+`","role":"`+role+`"}`)); err != nil {
		t.Fatalf("预置会话失败: %v", err)
	}
}

// newMockAPI 启动一个 gin 模拟 API，返回网关客户端
// setup 里注册路由；服务器随测试自动关闭
func newMockAPI(t *testing.T, setup func(r *gin.Engine)) *APIClient {
	t.Helper()

	r := gin.New()
	r.Use(gin.Recovery())
	setup(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return NewAPIClient(APIClientConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	})
}

// mintToken 生成一个带过期时间的 HS256 令牌 (仅测试用)
func mintToken(t *testing.T, subject, role string, exp time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("生成测试令牌失败: %v", err)
	}
	return token
}
