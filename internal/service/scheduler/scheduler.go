// Package scheduler Cron 스케줄에 맞춰 주기 작업을 실행하는 서비스를 제공합니다.
package scheduler

import (
	"context"
	"errors"
	"sync"

	"github.com/darkkaiser/learn-go/pkg/cronx"
	applog "github.com/darkkaiser/learn-go/pkg/log"
	"github.com/robfig/cron/v3"
)

// component Scheduler 서비스의 로깅용 컴포넌트 이름
const component = "scheduler.service"

// Job 스케줄러에 등록할 주기 작업입니다.
type Job struct {
	// Name 로그에 표시할 작업 이름
	Name string

	// Spec 실행 주기 (6필드 Cron 또는 @every)
	Spec string

	// RunOnStart true이면 서비스 시작 직후 한 번 실행합니다.
	RunOnStart bool

	// Run 작업 본문. 전달되는 ctx는 서비스 종료 시 취소됩니다.
	Run func(ctx context.Context)
}

// Scheduler 등록된 작업들을 Cron 스케줄에 맞춰 자동으로 실행하는 서비스입니다.
type Scheduler struct {
	jobs []Job

	cron *cron.Cron

	// runCancel 실행 중인 작업에 전달한 Context를 취소합니다.
	runCancel context.CancelFunc

	// onStartWG Cron 엔진 밖에서 시작 직후 실행한 작업들의 완료를 추적합니다.
	onStartWG sync.WaitGroup

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Scheduler 서비스 인스턴스를 생성합니다.
func NewService(jobs ...Job) *Scheduler {
	return &Scheduler{
		jobs: jobs,
	}
}

// Start 작업들을 Cron 엔진에 등록하고 스케줄러를 시작합니다.
//
// 매개변수:
//   - serviceStopCtx: 서비스 종료 신호를 받기 위한 Context
//   - serviceStopWG: 서비스 종료 완료를 알리기 위한 WaitGroup
//
// 반환값:
//   - error: 등록할 작업이 없거나 작업 정의가 올바르지 않은 경우
func (s *Scheduler) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Scheduler 서비스 초기화 프로세스를 시작합니다")

	if len(s.jobs) == 0 {
		serviceStopWG.Done()
		return ErrNoJobs
	}

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Scheduler 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	// 1. Cron 엔진 초기화
	// - StandardParser: 초 단위 스케줄링 지원 (6개 필드: 초 분 시 일 월 요일)
	// - Recover: Panic 발생 시 복구하여 다른 작업에 영향을 주지 않음
	// - SkipIfStillRunning: 이전 실행이 끝나지 않았으면 다음 실행을 건너뜀
	c := cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	runCtx, runCancel := context.WithCancel(context.Background())

	// 2. 작업 등록
	wrapped, err := s.registerJobs(c, runCtx)
	if err != nil {
		runCancel()
		serviceStopWG.Done()
		return err
	}

	// 3. 시작 직후 실행이 필요한 작업은 Cron 체인을 거쳐 한 번 실행합니다.
	for _, job := range wrapped {
		s.onStartWG.Add(1)
		go func() {
			defer s.onStartWG.Done()
			job.Run()
		}()
	}

	// 4. 스케줄러 시작
	c.Start()
	s.cron = c
	s.runCancel = runCancel
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"registered_schedules": len(c.Entries()),
	}).Info("서비스 시작 완료: Scheduler 서비스가 정상적으로 초기화되었습니다")

	// 5. 종료 신호 대기 (고루틴)
	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop 실행 중인 스케줄러를 중지하고 진행 중인 작업이 끝날 때까지 기다립니다.
func (s *Scheduler) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Scheduler 서비스 중지 시그널을 수신했습니다")

	// 진행 중인 작업에 취소를 알린 뒤 완료를 대기합니다.
	s.runCancel()
	<-s.cron.Stop().Done()
	s.onStartWG.Wait()

	s.cron = nil
	s.runCancel = nil
	s.running = false

	applog.WithComponent(component).Info("Scheduler 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}

// registerJobs 작업들을 Cron 엔진에 등록하고, 시작 직후 실행할 작업 목록을 반환합니다.
func (s *Scheduler) registerJobs(c *cron.Cron, runCtx context.Context) ([]cron.Job, error) {
	var onStart []cron.Job

	for _, j := range s.jobs {
		if j.Run == nil {
			return nil, NewErrInvalidJob(j.Name, j.Spec, errors.New("실행 함수가 없습니다"))
		}

		run := j.Run
		name := j.Name
		id, err := c.AddFunc(j.Spec, func() {
			applog.WithComponentAndFields(component, applog.Fields{"job": name}).Debug("스케줄 작업을 실행합니다")
			run(runCtx)
		})
		if err != nil {
			return nil, NewErrInvalidJob(j.Name, j.Spec, err)
		}

		// WrappedJob은 Recover/SkipIfStillRunning 체인이 적용된 작업이므로 주기 실행과 겹치지 않습니다.
		if j.RunOnStart {
			onStart = append(onStart, c.Entry(id).WrappedJob)
		}
	}

	return onStart, nil
}
