package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/learn-go/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ===== Test Helpers =====

func startScheduler(t *testing.T, jobs ...Job) (*Scheduler, context.CancelFunc, *sync.WaitGroup) {
	t.Helper()

	s := NewService(jobs...)
	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)

	require.NoError(t, s.Start(ctx, wg))

	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})

	return s, cancel, wg
}

// ===== Tests =====

func TestScheduler_Start(t *testing.T) {
	tests := []struct {
		name    string
		jobs    []Job
		errType apperrors.ErrorType
	}{
		{
			name:    "실패: 작업 없음",
			errType: apperrors.Internal,
		},
		{
			name:    "실패: 잘못된 Cron 표현식",
			jobs:    []Job{{Name: "bad", Spec: "every minute", Run: func(context.Context) {}}},
			errType: apperrors.InvalidInput,
		},
		{
			name:    "실패: 실행 함수 없음",
			jobs:    []Job{{Name: "nil", Spec: "@every 1s"}},
			errType: apperrors.InvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(tt.jobs...)
			wg := &sync.WaitGroup{}
			wg.Add(1)

			err := s.Start(context.Background(), wg)

			require.Error(t, err)
			assert.True(t, apperrors.Is(err, tt.errType), "에러 타입 불일치: %v", err)
			assert.False(t, s.running)

			// 실패 시에도 WaitGroup은 반드시 해제되어야 합니다.
			wg.Wait()
		})
	}
}

func TestScheduler_RunOnStart(t *testing.T) {
	ran := make(chan struct{}, 1)

	startScheduler(t, Job{
		Name:       "sample",
		Spec:       "@every 1h",
		RunOnStart: true,
		Run: func(context.Context) {
			select {
			case ran <- struct{}{}:
			default:
			}
		},
	})

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("시작 직후 작업이 실행되지 않았습니다")
	}
}

func TestScheduler_Periodic(t *testing.T) {
	var count atomic.Int32

	startScheduler(t, Job{
		Name: "tick",
		Spec: "@every 1s",
		Run:  func(context.Context) { count.Add(1) },
	})

	assert.Eventually(t, func() bool { return count.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
}

func TestScheduler_Stop(t *testing.T) {
	t.Run("종료 시 진행 중인 작업의 Context 취소", func(t *testing.T) {
		started := make(chan struct{})
		cancelled := make(chan struct{})

		_, cancel, wg := startScheduler(t, Job{
			Name:       "long",
			Spec:       "@every 1h",
			RunOnStart: true,
			Run: func(ctx context.Context) {
				close(started)
				<-ctx.Done()
				close(cancelled)
			},
		})

		<-started
		cancel()
		wg.Wait()

		select {
		case <-cancelled:
		default:
			t.Fatal("종료 후에도 작업이 취소되지 않았습니다")
		}
	})

	t.Run("중복 호출", func(t *testing.T) {
		s, _, _ := startScheduler(t, Job{Name: "noop", Spec: "@every 1h", Run: func(context.Context) {}})

		s.Stop()
		assert.NotPanics(t, s.Stop)
		assert.False(t, s.running)
	})

	t.Run("중복 시작은 무시", func(t *testing.T) {
		s, _, _ := startScheduler(t, Job{Name: "noop", Spec: "@every 1h", Run: func(context.Context) {}})

		wg := &sync.WaitGroup{}
		wg.Add(1)
		assert.NoError(t, s.Start(context.Background(), wg))
		wg.Wait()
	})
}
