package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/learn-go/internal/pkg/errors"
	"github.com/darkkaiser/learn-go/pkg/strutil"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName = "learn-go"

	// AppDescription 애플리케이션 소개 문구입니다.
	AppDescription = "Go 언어 학습을 위한 최소한의 HTTP 마이크로서비스"

	// DefaultFilename 설정 파일 경로가 지정되지 않았을 때 탐색하는 기본 설정 파일명입니다. (없어도 됨)
	DefaultFilename = AppName + ".json"

	// DefaultDotEnvFilename 환경변수를 보충하기 위해 읽는 파일명입니다. (없어도 됨)
	DefaultDotEnvFilename = ".env"

	// EnvPrefix 계층형 설정 키를 지정하는 환경변수 접두사입니다.
	// 예: LEARN_GO_SERVER__SHUTDOWN_TIMEOUT=30s -> server.shutdown_timeout
	EnvPrefix = "LEARN_GO_"

	// EnvConfigFile 설정 파일 경로를 지정하는 환경변수입니다. 지정된 경우 파일이 반드시 존재해야 합니다.
	EnvConfigFile = EnvPrefix + "CONFIG"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// ------------------------------------------------------------------------------------------------
// 기본값
// ------------------------------------------------------------------------------------------------

const (
	DefaultHost              = "0.0.0.0"
	DefaultPort              = 8080
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultRequestTimeout    = 5 * time.Second
	DefaultBodyLimit         = "1M"
	DefaultSystemSampleSpec  = "@every 15s"
	DefaultSystemInfoTimeout = 500 * time.Millisecond
)

// envAliases 접두사 없이 널리 쓰이는 환경변수를 설정 키로 연결합니다.
var envAliases = map[string]string{
	"HOST":                        "server.host",
	"PORT":                        "server.port",
	"APP_ENV":                     "environment",
	"APP_VERSION":                 "app.version",
	"APP_DEBUG":                   "debug",
	"LOG_DIR":                     "log.dir",
	"LOG_LEVEL":                   "log.level",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "telemetry.otlp_endpoint",
	"OTEL_SERVICE_NAME":           "telemetry.service_name",
}

// listKeys 쉼표로 구분된 문자열을 슬라이스로 변환해야 하는 설정 키
var listKeys = map[string]bool{
	"server.allow_origins": true,
}

// newDefaultConfig 모든 설정의 기본값을 담은 구조체를 반환합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Debug:       false,
		Environment: EnvDevelopment,
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ShutdownTimeout: DefaultShutdownTimeout,
			RequestTimeout:  DefaultRequestTimeout,
			BodyLimit:       DefaultBodyLimit,
			AllowOrigins:    []string{"*"},
		},
		Telemetry: TelemetryConfig{
			ServiceName: AppName,
			SampleRatio: 1.0,
		},
		Metrics: MetricsConfig{
			SystemSampleSpec:  DefaultSystemSampleSpec,
			SystemInfoTimeout: DefaultSystemInfoTimeout,
		},
	}
}

// LoadOptions 설정 로드 방식을 지정합니다.
type LoadOptions struct {
	// ConfigFile 명시적으로 지정된 설정 파일 경로입니다. 지정된 경우 파일이 반드시 존재해야 합니다.
	ConfigFile string

	// DotEnvFile 읽어들일 .env 파일 경로입니다. 비어 있으면 읽지 않으며, 파일이 없어도 에러가 아닙니다.
	DotEnvFile string
}

// Load 기본 경로와 환경변수를 사용하여 설정을 로드합니다.
//
// 우선순위 (낮음 -> 높음): 기본값 < JSON 설정 파일 < 환경변수 별칭(PORT 등) < 접두사 환경변수(LEARN_GO_*)
func Load() (*AppConfig, error) {
	return LoadWithOptions(LoadOptions{
		ConfigFile: os.Getenv(EnvConfigFile),
		DotEnvFile: DefaultDotEnvFilename,
	})
}

// LoadWithOptions 지정된 옵션으로 설정을 로드하고 검증합니다.
func LoadWithOptions(opts LoadOptions) (*AppConfig, error) {
	if err := loadDotEnv(opts.DotEnvFile); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	// 1. 기본값
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if err := loadFile(k, opts.ConfigFile); err != nil {
		return nil, err
	}

	// 3. 환경변수 별칭 (PORT, HOST, OTEL_EXPORTER_OTLP_ENDPOINT ...)
	if err := k.Load(env.ProviderWithValue("", ".", aliasKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 접두사 환경변수 (LEARN_GO_SECTION__KEY)
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", prefixedKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		},
	}

	var cfg AppConfig
	unmarshalConf.DecoderConfig.Result = &cfg
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))

	if err := cfg.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 유효성 검증에 실패했습니다")
	}

	return &cfg, nil
}

// loadDotEnv .env 파일의 값을 프로세스 환경변수로 읽어들입니다. 이미 설정된 환경변수는 덮어쓰지 않습니다.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return apperrors.Wrapf(err, apperrors.InvalidInput, "환경 변수 파일을 읽을 수 없습니다: '%s'", path)
	}

	return nil
}

// loadFile 설정 파일을 로드합니다.
// 명시적으로 지정된 파일은 반드시 존재해야 하며, 기본 설정 파일은 없으면 건너뜁니다.
func loadFile(k *koanf.Koanf, explicit string) error {
	path := explicit
	if path == "" {
		path = DefaultFilename
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
	}

	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return apperrors.Wrap(err, apperrors.NotFound, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", path))
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", path))
	}

	return nil
}

// aliasKey 별칭 환경변수를 설정 키로 변환합니다. 빈 키를 반환하면 koanf가 해당 변수를 무시합니다.
func aliasKey(name, value string) (string, interface{}) {
	key, ok := envAliases[name]
	if !ok || strings.TrimSpace(value) == "" {
		return "", nil
	}
	return key, normalizeValue(key, value)
}

// prefixedKey LEARN_GO_SERVER__ALLOW_ORIGINS -> server.allow_origins
func prefixedKey(name, value string) (string, interface{}) {
	if name == EnvConfigFile {
		return "", nil
	}

	key := normalizeEnvKey(name)
	if key == "" {
		return "", nil
	}
	return key, normalizeValue(key, value)
}

func normalizeEnvKey(name string) string {
	s := strings.TrimPrefix(name, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}

func normalizeValue(key, value string) interface{} {
	if listKeys[key] {
		return strutil.SplitAndTrim(value, ",")
	}
	return strings.TrimSpace(value)
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(strings.Trim(host, "[]"), strconv.Itoa(port))
}
