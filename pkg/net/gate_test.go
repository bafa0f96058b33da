package net

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== 动作闸门 ====================

func TestActionGate_RejectsSecondTrigger(t *testing.T) {
	g := NewActionGate()

	require.NoError(t, g.Acquire("shipment.create"))

	// 同一动作在途期间再触发直接拒绝
	err := g.Acquire("shipment.create")
	assert.ErrorIs(t, err, ErrActionInFlight)

	// 不同动作互不影响
	require.NoError(t, g.Acquire("shipment.delete"))

	g.Release("shipment.create")
	require.NoError(t, g.Acquire("shipment.create"))
}

func TestActionGate_RunReleasesOnError(t *testing.T) {
	g := NewActionGate()

	boom := errors.New("boom")
	err := g.Run("quote.land", func() error { return boom })
	assert.ErrorIs(t, err, boom)

	// 失败后槽位已释放
	assert.NoError(t, g.Acquire("quote.land"))
}

func TestActionGate_ConcurrentSingleWinner(t *testing.T) {
	g := NewActionGate()

	const workers = 16
	var (
		wg       sync.WaitGroup
		hold     = make(chan struct{})
		accepted int
		rejected int
		mu       sync.Mutex
	)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()

			err := g.Run("shipment.create", func() error {
				// 占住槽位，让并发触发都撞上闸门
				<-hold
				return nil
			})

			mu.Lock()
			defer mu.Unlock()
			if errors.Is(err, ErrActionInFlight) {
				rejected++
			} else {
				accepted++
			}
		}()
	}

	// 稍等让所有 goroutine 都触发过闸门，再放行持有者
	for {
		mu.Lock()
		done := rejected >= workers-1
		mu.Unlock()
		if done {
			break
		}
		runtime.Gosched()
	}
	close(hold)
	wg.Wait()

	assert.Equal(t, 1, accepted, "并发触发只有一个动作真正执行")
	assert.Equal(t, workers-1, rejected)
}
