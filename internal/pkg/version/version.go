// Package version 빌드 시점에 주입된 메타데이터와 실행 환경 정보를 제공합니다.
//
// 버전 정보는 다음 우선순위로 결정됩니다.
//  1. 링커 플래그(-ldflags "-X ...")로 주입된 값
//  2. Go 모듈의 VCS 메타데이터 (debug.ReadBuildInfo)
//  3. 기본값 (DefaultVersion, unknown)
//
// 실행 시점에 APP_VERSION 환경변수가 지정되면 main에서 WithVersion으로 버전만 덮어씁니다.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync/atomic"
)

// DefaultVersion 버전 정보를 어디에서도 얻을 수 없을 때 사용하는 기본 버전입니다.
const DefaultVersion = "0.0.1"

const unknown = "unknown"

var current atomic.Pointer[Info]

// readBuildInfo 테스트에서 교체할 수 있도록 변수로 선언합니다.
var readBuildInfo = debug.ReadBuildInfo

// 링커 플래그로 주입되는 값입니다. 직접 접근하지 말고 Get()을 사용해야 합니다.
//
//	go build -ldflags "-X github.com/darkkaiser/learn-go/internal/pkg/version.appVersion=1.2.0"
var (
	appVersion    = ""
	gitCommitHash = ""
	gitTreeState  = ""
	buildDate     = ""
	buildNumber   = ""
)

func init() {
	bi := Info{
		Version:     strings.TrimSpace(appVersion),
		Commit:      strings.TrimSpace(gitCommitHash),
		BuildDate:   strings.TrimSpace(buildDate),
		BuildNumber: strings.TrimSpace(buildNumber),
		DirtyBuild:  strings.EqualFold(strings.TrimSpace(gitTreeState), "dirty"),
	}

	Set(enrich(bi))
}

// Info 애플리케이션의 빌드 정보입니다.
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	DirtyBuild  bool   `json:"dirty_build"`
}

// Get 현재 빌드 정보를 반환합니다.
func Get() Info {
	if bi := current.Load(); bi != nil {
		return *bi
	}
	return enrich(Info{})
}

// Set 전역 빌드 정보를 교체합니다.
func Set(bi Info) {
	current.Store(&bi)
}

// WithVersion 버전 문자열만 교체한 복사본을 반환합니다. v가 비어 있으면 그대로 반환합니다.
func (i Info) WithVersion(v string) Info {
	if v = strings.TrimSpace(v); v != "" {
		i.Version = v
	}
	return i
}

// enrich 비어 있는 필드를 런타임 정보와 VCS 메타데이터로 채웁니다.
func enrich(bi Info) Info {
	if bi.GoVersion == "" {
		bi.GoVersion = runtime.Version()
	}
	if bi.OS == "" {
		bi.OS = runtime.GOOS
	}
	if bi.Arch == "" {
		bi.Arch = runtime.GOARCH
	}

	if val, ok := readBuildInfo(); ok && val != nil {
		for _, s := range val.Settings {
			switch s.Key {
			case "vcs.revision":
				if bi.Commit == "" {
					bi.Commit = s.Value
				}
			case "vcs.time":
				if bi.BuildDate == "" {
					bi.BuildDate = s.Value
				}
			case "vcs.modified":
				if s.Value == "true" {
					bi.DirtyBuild = true
				}
			}
		}

		if bi.Version == "" && val.Main.Version != "" && val.Main.Version != "(devel)" {
			bi.Version = val.Main.Version
		}
	}

	if bi.Version == "" {
		bi.Version = DefaultVersion
	}
	if bi.Commit == "" {
		bi.Commit = unknown
	}
	if bi.BuildDate == "" {
		bi.BuildDate = unknown
	}

	return bi
}

// ToMap 구조적 로깅을 위해 빌드 정보를 맵으로 반환합니다.
func (i Info) ToMap() map[string]any {
	return map[string]any{
		"version":      i.Version,
		"commit":       i.Commit,
		"build_date":   i.BuildDate,
		"build_number": i.BuildNumber,
		"go_version":   i.GoVersion,
		"os":           i.OS,
		"arch":         i.Arch,
		"dirty_build":  i.DirtyBuild,
	}
}

// String 빌드 정보를 한 줄로 요약합니다. 예: "1.2.0+dirty (commit: f25b8bf, go: go1.24.0)"
func (i Info) String() string {
	v := i.Version
	if v == "" {
		v = unknown
	}
	if i.DirtyBuild {
		v += "+dirty"
	}

	var details []string
	if i.Commit != "" && i.Commit != unknown {
		c := i.Commit
		if len(c) > 7 {
			c = c[:7]
		}
		details = append(details, "commit: "+c)
	}
	if i.BuildNumber != "" {
		details = append(details, "build: "+i.BuildNumber)
	}
	if i.BuildDate != "" && i.BuildDate != unknown {
		details = append(details, "date: "+i.BuildDate)
	}
	if i.GoVersion != "" {
		details = append(details, "go: "+i.GoVersion)
	}

	if len(details) == 0 {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, strings.Join(details, ", "))
}
