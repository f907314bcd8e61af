package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/darkkaiser/learn-go/internal/service/api/httputil"
	applog "github.com/darkkaiser/learn-go/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// ===== Test Helpers =====

// captureLogs 로거 출력을 JSON 형식의 버퍼로 바꾸고 테스트 종료 시 복구합니다.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	logger := applog.StandardLogger()
	origOut, origFmt, origLevel := logger.Out, logger.Formatter, logger.Level

	applog.SetOutput(buf)
	applog.SetFormatter(&applog.JSONFormatter{})
	applog.SetLevel(applog.DebugLevel)

	t.Cleanup(func() {
		applog.SetOutput(origOut)
		applog.SetFormatter(origFmt)
		applog.SetLevel(origLevel)
	})

	return buf
}

// logEntries 버퍼에 기록된 JSON 로그를 줄 단위로 파싱합니다.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	return entries
}

// newTestEcho 전역 에러 핸들러가 설정된 Echo 인스턴스를 생성합니다.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler
	return e
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

type recordedRequest struct {
	method, route string
	status        int
	d             time.Duration
}

type fakeRecorder struct {
	records []recordedRequest
}

func (f *fakeRecorder) Record(method, route string, status int, d time.Duration) {
	f.records = append(f.records, recordedRequest{method: method, route: route, status: status, d: d})
}
