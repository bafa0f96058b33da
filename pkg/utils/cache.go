package utils

import (
	"sync"
	"time"
)

// TTLCache 带过期时间的内存缓存
// 使用 sync.Map 保证并发安全；用于报价表单的目录预取结果
type TTLCache struct {
	items sync.Map
	ttl   time.Duration
}

// cacheItem 内部结构，包含值和过期时间
type cacheItem struct {
	value      any
	expiration int64
}

// NewTTLCache 创建缓存
func NewTTLCache(ttl time.Duration) *TTLCache {
	if ttl == 0 {
		// 默认 5 分钟过期，目录数据变化不频繁
		ttl = 5 * time.Minute
	}
	return &TTLCache{ttl: ttl}
}

// Set 设置缓存
func (c *TTLCache) Set(key string, value any) {
	exp := time.Now().Add(c.ttl).UnixNano()

	c.items.Store(key, cacheItem{
		value:      value,
		expiration: exp,
	})
}

// Get 获取缓存并验证是否过期
func (c *TTLCache) Get(key string) (any, bool) {
	val, ok := c.items.Load(key)
	if !ok {
		return nil, false
	}

	item := val.(cacheItem)

	// 检查是否过期
	if time.Now().UnixNano() > item.expiration {
		c.items.Delete(key) // 懒删除
		return nil, false
	}

	return item.value, true
}

// Delete 删除缓存 (用完即焚)
func (c *TTLCache) Delete(key string) {
	c.items.Delete(key)
}
