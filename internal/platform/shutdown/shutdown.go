package shutdown

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moyeobab/moyeobab-backend/pkg/lifecycle"
)

// Coordinator 는 애플리케이션의 우아한 종료 절차를 편성합니다
type Coordinator struct {
	Manager *lifecycle.Manager
}

// NewCoordinator 는 새 종료 코디네이터를 만듭니다
func NewCoordinator(mgr *lifecycle.Manager) *Coordinator {
	return &Coordinator{Manager: mgr}
}

// ListenForSignalsAndShutdown 은 종료 신호를 기다렸다가 순서대로 정리합니다.
// HTTP 서버를 먼저 닫아 진행 중인 요청을 끝내고, 그다음 백그라운드 작업을 기다립니다
func (c *Coordinator) ListenForSignalsAndShutdown(server *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	fmt.Println("\n종료 신호를 받았습니다. 우아한 종료를 시작합니다...")

	httpTimeout := 15 * time.Second
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), httpTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Printf("HTTP 서버 종료 오류: %v\n", err)
	} else {
		fmt.Println("HTTP 서버가 종료되었습니다.")
	}

	gracefulTimeout := 30 * time.Second
	fmt.Printf("백그라운드 작업 종료 대기 (최대 %v)...\n", gracefulTimeout)
	c.Manager.Shutdown()

	remaining := c.Manager.WaitWithTimeout(gracefulTimeout)
	if len(remaining) == 0 {
		fmt.Println("모든 백그라운드 작업이 정리되었습니다.")
	} else {
		fmt.Printf("다음 작업이 시간 안에 끝나지 않았습니다: %v\n", remaining)
	}

	fmt.Println("우아한 종료 완료.")
}
