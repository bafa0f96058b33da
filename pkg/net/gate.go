package net

import (
	"errors"
	"sync"
)

// ErrActionInFlight 同一个动作已有请求在途
var ErrActionInFlight = errors.New("该操作正在处理中，请等待完成后再试")

// ActionGate 动作闸门 (通用组件)
// 约束：同一个 key 同时最多允许一个在途请求，等价于 UI 上"提交后禁用按钮"
// 注意：不做取消也不做排队，第二次触发直接拒绝
type ActionGate struct {
	mu       sync.Mutex
	inFlight map[string]bool
}

// NewActionGate 创建闸门
func NewActionGate() *ActionGate {
	return &ActionGate{
		inFlight: make(map[string]bool),
	}
}

// Acquire 占用一个动作槽位
// key: 动作的唯一标识 (如 "shipment.create")
func (g *ActionGate) Acquire(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.inFlight[key] {
		return ErrActionInFlight
	}
	g.inFlight[key] = true
	return nil
}

// Release 释放槽位
func (g *ActionGate) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, key)
}

// Run 执行一个受闸门保护的动作
// 无论 fn 成功失败还是 panic，槽位都会被释放
func (g *ActionGate) Run(key string, fn func() error) error {
	if err := g.Acquire(key); err != nil {
		return err
	}
	defer g.Release(key)

	return fn()
}
