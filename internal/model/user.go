package model

import "time"

// ==================== 角色 ====================

// 角色是封闭集合，授权判断基于角色而不是权限列表
const (
	RoleAdmin    = "admin"    // 特权角色：可执行删除等管理操作
	RoleOperator = "operator" // 普通角色：只读 + 常规录入
)

// ==================== 会话 ====================

// Session 当前登录会话 (本地持久化的快照)
type Session struct {
	AccessToken string
	Subject     string
	Role        string
	UpdatedAt   time.Time
}

// IsAdmin 是否特权角色
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
