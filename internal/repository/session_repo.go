package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// ==================== 会话存储 ====================

// SessionKey 固定的本地存储键
// 令牌只存这一条记录，登出或令牌被拒绝时整条清除
const SessionKey = "token_bearer"

// SessionRecord 本地会话记录
type SessionRecord struct {
	Key         string `gorm:"primaryKey;column:key"`
	AccessToken string
	Subject     string
	Role        string
	Identity    datatypes.JSON // /auth/me 的原始响应体
	UpdatedAt   time.Time
}

// TableName 表名
func (SessionRecord) TableName() string { return "sessions" }

// SessionRepository 会话仓库接口
type SessionRepository interface {
	Get(ctx context.Context) (*SessionRecord, error)
	Save(ctx context.Context, rec *SessionRecord) error
	Clear(ctx context.Context) error
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository 创建会话仓库
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Get 读取当前会话；没有记录返回 (nil, nil)
func (r *sessionRepository) Get(ctx context.Context) (*SessionRecord, error) {
	var rec SessionRecord
	err := r.db.WithContext(ctx).Where("key = ?", SessionKey).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Save 写入会话 (upsert 到固定键)
func (r *sessionRepository) Save(ctx context.Context, rec *SessionRecord) error {
	rec.Key = SessionKey
	rec.UpdatedAt = time.Now()

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(rec).Error
}

// Clear 清除会话
func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("key = ?", SessionKey).
		Delete(&SessionRecord{}).Error
}

// ==================== 本地状态库 ====================

// OpenStateDB 打开本地 sqlite 状态库并迁移表结构
// path 传 ":memory:" 可用于测试
func OpenStateDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&SessionRecord{}); err != nil {
		return nil, err
	}

	return db, nil
}
