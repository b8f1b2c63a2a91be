package lifecycle

import (
	"context"
	"time"
)

// Handle 은 각 백그라운드 서비스에 분배되는 수명주기 컨트롤러입니다.
// Manager가 생성하며, 서비스 종료 통지 로직을 캡슐화합니다.
type Handle struct {
	ctx context.Context
	// Close 는 서비스가 정리를 마쳤음을 Manager에 알립니다.
	// 서비스 고루틴이 빠져나가기 전에 defer로 호출해야 합니다.
	Close func()
}

// Ctx 는 핸들 내부의 컨텍스트를 반환합니다
func (h *Handle) Ctx() context.Context {
	return h.ctx
}

// Done 은 종료 신호가 방송되면 닫히는 채널을 반환합니다.
func (h *Handle) Done() <-chan struct{} {
	return h.ctx.Done()
}

// Err 는 Done() 채널이 닫힌 뒤 취소 사유를 반환합니다.
func (h *Handle) Err() error {
	return h.ctx.Err()
}

// Sleep 은 지정 시간 동안 대기하되, 종료 신호를 받으면 즉시 에러와 함께 반환합니다.
// 백그라운드 주기 작업의 표준 대기 방법입니다.
func (h *Handle) Sleep(duration time.Duration) error {
	timer := time.NewTimer(duration)

	select {
	case <-h.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return h.Err()
	case <-timer.C:
		return nil
	}
}
