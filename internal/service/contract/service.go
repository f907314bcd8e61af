// Package contract 서비스 간에 공유하는 인터페이스를 정의합니다.
package contract

import (
	"context"
	"sync"
)

// Service 애플리케이션 수명 동안 실행되는 백그라운드 서비스입니다.
//
// Start는 서비스를 시작한 뒤 즉시 반환하며, serviceStopCtx가 취소되면 서비스를 정리하고
// serviceStopWG.Done()을 호출합니다. 시작에 실패한 경우에도 serviceStopWG.Done()을 호출한 뒤 에러를 반환합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
