package log

// NewProductionOptions 운영(컨테이너) 환경에 맞춘 로그 설정을 반환합니다.
// 표준 출력으로 JSON 로그를 내보내고, dir이 지정된 경우에만 파일 로그를 함께 기록합니다.
func NewProductionOptions(appName, dir string) Options {
	return Options{
		Name:   appName,
		Level:  InfoLevel,
		Format: FormatJSON,
		Dir:    dir,

		MaxAge:     30,
		MaxSizeMB:  100,
		MaxBackups: 20,

		EnableCriticalLog: dir != "",
		EnableVerboseLog:  false,
		EnableConsoleLog:  true,

		ReportCaller: false,
	}
}

// NewDevelopmentOptions 개발 환경에 맞춘 로그 설정을 반환합니다.
func NewDevelopmentOptions(appName, dir string) Options {
	return Options{
		Name:   appName,
		Level:  TraceLevel,
		Format: FormatText,
		Dir:    dir,

		MaxAge:     1,
		MaxSizeMB:  50,
		MaxBackups: 5,

		EnableCriticalLog: false,
		EnableVerboseLog:  false,
		EnableConsoleLog:  true,

		ReportCaller: true,
	}
}
