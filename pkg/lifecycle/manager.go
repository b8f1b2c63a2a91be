package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Manager 는 백그라운드 서비스들의 수명주기를 조정합니다.
// 상위 모듈(shutdown)이 생성해 보유하고, 각 서비스에 핸들(Handle)을 분배합니다.
type Manager struct {
	wg       sync.WaitGroup
	mu       sync.Mutex
	services map[string]bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewManager 는 새 수명주기 관리자를 생성합니다.
func NewManager() *Manager {
	m := &Manager{
		services: make(map[string]bool),
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	return m
}

// NewServiceHandle 은 서비스 하나를 등록하고 수명주기 핸들을 발급합니다.
// 같은 이름의 서비스를 중복 등록할 수 없습니다.
func (m *Manager) NewServiceHandle(name string) (*Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.services[name] {
		return nil, fmt.Errorf("수명주기 관리자: 서비스 '%s' 는 이미 등록되어 있습니다", name)
	}
	m.services[name] = true
	m.wg.Add(1)
	fmt.Printf("수명주기 관리자: 서비스 [%s] 등록 완료.\n", name)

	return &Handle{
		ctx: m.ctx,
		Close: func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, exists := m.services[name]; !exists {
				return
			}
			delete(m.services, name)
			m.wg.Done()
		},
	}, nil
}

// Shutdown 은 모든 핸들에 종료 신호를 방송합니다.
func (m *Manager) Shutdown() {
	fmt.Println("수명주기 관리자: 종료 신호 방송...")
	m.cancel()
}

// WaitWithTimeout 은 등록된 모든 서비스의 종료를 지정된 시간까지 기다립니다.
// 타임아웃 시 아직 남아 있는 서비스 이름 목록을 반환합니다.
func (m *Manager) WaitWithTimeout(timeout time.Duration) []string {
	doneChan := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(doneChan)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-doneChan:
		return nil
	case <-timer.C:
		m.mu.Lock()
		defer m.mu.Unlock()
		remaining := make([]string, 0, len(m.services))
		for name := range m.services {
			remaining = append(remaining, name)
		}
		return remaining
	}
}
