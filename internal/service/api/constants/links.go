package constants

// 환영 페이지에 노출하는 문서 및 프로젝트 링크입니다.
const (
	SwaggerUIPath   = "/swagger/index.html"
	OpenAPIPath     = "/openapi.json"
	RepositoryURL   = "https://github.com/darkkaiser/learn-go"
	IssueTrackerURL = RepositoryURL + "/issues"
)
