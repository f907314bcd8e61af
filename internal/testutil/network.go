// Package testutil 여러 패키지의 테스트에서 공통으로 사용하는 헬퍼를 제공합니다.
package testutil

import (
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"
)

// GetFreePort 테스트용으로 사용 가능한 임의의 포트를 반환합니다.
func GetFreePort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}

	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}

// OccupyPort 임의의 포트를 점유한 리스너를 열고 포트 번호를 반환합니다. 리스너는 테스트 종료 시 닫힙니다.
func OccupyPort(t testing.TB) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("포트 점유 실패: %v", err)
	}
	t.Cleanup(func() { l.Close() })

	return l.Addr().(*net.TCPAddr).Port
}

// WaitForServer 서버가 해당 주소에서 리스닝할 때까지 대기합니다.
func WaitForServer(addr string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.Dial("tcp", addr)
		if err == nil {
			conn.Close()
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("server did not start on %s within %v", addr, timeout)
}

// NewHTTPClient Keep-Alive 연결을 재사용하지 않는 테스트용 HTTP 클라이언트를 생성합니다.
// 유휴 연결 고루틴이 남지 않아 goleak 검사와 함께 사용할 수 있습니다.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &http.Transport{DisableKeepAlives: true},
	}
}
