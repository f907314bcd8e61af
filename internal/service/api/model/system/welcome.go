// Package system 시스템 엔드포인트의 응답 데이터 모델을 정의합니다.
package system

// WelcomeData 루트 경로(/) 응답 데이터
type WelcomeData struct {
	Message       string        `json:"message" example:"learn-go 서비스에 오신 것을 환영합니다"`
	Description   string        `json:"description"`
	Documentation Documentation `json:"documentation"`
	Links         Links         `json:"links"`
	Endpoints     []Endpoint    `json:"endpoints"`
}

// Documentation API 문서 경로
type Documentation struct {
	Swagger string `json:"swagger" example:"/swagger/index.html"`
	OpenAPI string `json:"openapi" example:"/openapi.json"`
}

// Links 프로젝트 관련 외부 링크
type Links struct {
	Repository string `json:"repository" example:"https://github.com/darkkaiser/learn-go"`
	Issues     string `json:"issues" example:"https://github.com/darkkaiser/learn-go/issues"`
}

// Endpoint 제공하는 엔드포인트 정보
type Endpoint struct {
	Path        string `json:"path" example:"/healthz"`
	Method      string `json:"method" example:"GET"`
	Description string `json:"description" example:"서비스 상태 확인"`
}
