package config

import (
	"fmt"
	"slices"
	"time"

	apperrors "github.com/darkkaiser/learn-go/internal/pkg/errors"
	"github.com/darkkaiser/learn-go/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug       bool            `json:"debug"`
	Environment string          `json:"environment" validate:"required"`
	App         AppMetaConfig   `json:"app"`
	Server      ServerConfig    `json:"server"`
	Telemetry   TelemetryConfig `json:"telemetry"`
	Metrics     MetricsConfig   `json:"metrics"`
	Log         LogConfig       `json:"log"`
}

// IsProduction 운영 환경 여부를 반환합니다.
func (c *AppConfig) IsProduction() bool {
	return c.Environment == EnvProduction
}

// validate 로드된 설정 항목의 정합성을 검증합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "설정"); err != nil {
		return err
	}

	if err := c.Server.validate(); err != nil {
		return err
	}

	return nil
}

// VerifyRecommendations 강제하지는 않지만 운영 안정성을 위해 권장되는 설정 준수 여부를 진단하여 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.Server.Port < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.Server.Port))
	}

	if c.IsProduction() && c.Debug {
		warnings = append(warnings, "운영(production) 환경에서 디버그 모드가 활성화되어 있습니다")
	}

	if c.IsProduction() && slices.Contains(c.Server.AllowOrigins, validation.WildcardOrigin) {
		warnings = append(warnings, "운영(production) 환경에서 모든 Origin(*)의 교차 출처 요청을 허용하고 있습니다")
	}

	if c.Server.ShutdownTimeout < c.Server.RequestTimeout {
		warnings = append(warnings, fmt.Sprintf("종료 대기 시간(%s)이 요청 타임아웃(%s)보다 짧아 처리 중인 요청이 강제 종료될 수 있습니다", c.Server.ShutdownTimeout, c.Server.RequestTimeout))
	}

	return warnings
}

// AppMetaConfig 애플리케이션 메타 정보 설정
type AppMetaConfig struct {
	// 빌드 시점의 버전 대신 노출할 버전 (APP_VERSION). 비어 있으면 빌드 정보를 사용합니다.
	Version string `json:"version"`
}

// ServerConfig HTTP 서버 설정
type ServerConfig struct {
	Host string `json:"host" validate:"listen_host"`
	Port int    `json:"port" validate:"min=1,max=65535"`

	ShutdownTimeout time.Duration `json:"shutdown_timeout" validate:"gt=0"`
	RequestTimeout  time.Duration `json:"request_timeout" validate:"gt=0"`
	BodyLimit       string        `json:"body_limit" validate:"required"`

	AllowOrigins []string        `json:"allow_origins" validate:"min=1,dive,cors_origin"`
	RateLimit    RateLimitConfig `json:"rate_limit"`
}

func (c *ServerConfig) validate() error {
	if len(c.AllowOrigins) > 1 && slices.Contains(c.AllowOrigins, validation.WildcardOrigin) {
		return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
	}

	if c.RateLimit.Enabled() && c.RateLimit.Burst < 1 {
		return apperrors.New(apperrors.InvalidInput, "요청 속도 제한을 사용하려면 버스트(rate_limit.burst)는 1 이상이어야 합니다")
	}

	return nil
}

// Address 리슨 주소(host:port)를 반환합니다.
func (c *ServerConfig) Address() string {
	return joinHostPort(c.Host, c.Port)
}

// RateLimitConfig IP별 요청 속도 제한 설정 (RequestsPerSecond가 0이면 비활성화)
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requests_per_second" validate:"gte=0"`
	Burst             int     `json:"burst" validate:"gte=0"`
}

// Enabled 속도 제한 사용 여부를 반환합니다.
func (c RateLimitConfig) Enabled() bool {
	return c.RequestsPerSecond > 0
}

// TelemetryConfig 분산 추적 설정
type TelemetryConfig struct {
	// OTLP/HTTP 수집기 주소 (OTEL_EXPORTER_OTLP_ENDPOINT). 비어 있으면 추적을 비활성화합니다.
	OTLPEndpoint string  `json:"otlp_endpoint" validate:"omitempty,url"`
	ServiceName  string  `json:"service_name" validate:"required"`
	SampleRatio  float64 `json:"sample_ratio" validate:"gte=0,lte=1"`
}

// Enabled 추적 사용 여부를 반환합니다.
func (c TelemetryConfig) Enabled() bool {
	return c.OTLPEndpoint != ""
}

// MetricsConfig 메트릭 수집 설정
type MetricsConfig struct {
	// 시스템 메모리 게이지를 갱신하는 주기 (6필드 Cron 또는 @every)
	SystemSampleSpec string `json:"system_sample_spec" validate:"cron_spec"`

	// 시스템 정보 조회 1회에 허용하는 최대 시간 (/healthz, /info, 샘플러 공통)
	SystemInfoTimeout time.Duration `json:"system_info_timeout" validate:"gt=0"`
}

// LogConfig 로깅 설정
type LogConfig struct {
	Dir    string `json:"dir"`
	Level  string `json:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Format string `json:"format" validate:"omitempty,oneof=text json"`
}
