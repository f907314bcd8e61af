package middleware

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	captureLogs(t)

	rec := &fakeRecorder{}

	e := newTestEcho()
	e.Use(Metrics(rec))
	e.GET("/", okHandler)
	e.GET("/users/:id", okHandler)
	e.POST("/echo", func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadRequest, "bad") })
	e.GET("/fail", func(c echo.Context) error { return errors.New("boom") })

	serve(e, http.MethodGet, "/users/42")
	serve(e, http.MethodPost, "/echo")
	serve(e, http.MethodGet, "/fail")
	serve(e, http.MethodGet, "/no/such/path")
	serve(e, http.MethodPut, "/echo")

	require.Len(t, rec.records, 5)

	assert.Equal(t, recordedRequest{method: "GET", route: "/users/:id", status: http.StatusOK}, withoutDuration(rec.records[0]), "라우트 템플릿을 사용해야 합니다")
	assert.Equal(t, recordedRequest{method: "POST", route: "/echo", status: http.StatusBadRequest}, withoutDuration(rec.records[1]))
	assert.Equal(t, recordedRequest{method: "GET", route: "/fail", status: http.StatusInternalServerError}, withoutDuration(rec.records[2]))
	assert.Equal(t, recordedRequest{method: "GET", route: "", status: http.StatusNotFound}, withoutDuration(rec.records[3]))
	assert.Equal(t, recordedRequest{method: "PUT", route: "", status: http.StatusMethodNotAllowed}, withoutDuration(rec.records[4]))

	for _, r := range rec.records {
		assert.GreaterOrEqual(t, int64(r.d), int64(0))
	}
}

func TestMetrics_RecoveredPanic(t *testing.T) {
	captureLogs(t)

	rec := &fakeRecorder{}

	e := newTestEcho()
	e.Use(Metrics(rec))
	e.Use(PanicRecovery())
	e.GET("/boom", func(c echo.Context) error { panic("boom") })

	resp := serve(e, http.MethodGet, "/boom")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	require.Len(t, rec.records, 1)
	assert.Equal(t, recordedRequest{method: "GET", route: "/boom", status: http.StatusInternalServerError}, withoutDuration(rec.records[0]))
}

func withoutDuration(r recordedRequest) recordedRequest {
	r.d = 0
	return r
}
