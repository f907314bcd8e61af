package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	e, _ := newTestServer(t, HTTPServerConfig{}, fixedProvider())

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"GET /",
		"GET /ping",
		"GET /healthz",
		"GET /info",
		"GET /version",
		"GET /metrics",
		"POST /echo",
		"GET /openapi.json",
		"GET /swagger/*",
	} {
		assert.True(t, registered[route], "라우트가 등록되어야 합니다: %s", route)
	}
}

func TestRegisterRoutes_Documents(t *testing.T) {
	e, _ := newTestServer(t, HTTPServerConfig{}, fixedProvider())

	tests := []struct {
		name        string
		target      string
		wantType    string
		wantContain string
	}{
		{name: "OpenAPI 문서", target: "/openapi.json", wantType: echo.MIMEApplicationJSON, wantContain: `"/healthz"`},
		{name: "Swagger 문서", target: "/swagger/doc.json", wantType: echo.MIMEApplicationJSON, wantContain: `"/echo"`},
		{name: "Swagger UI", target: "/swagger/index.html", wantType: echo.MIMETextHTML, wantContain: "swagger"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), tt.wantType)
			assert.Contains(t, rec.Body.String(), tt.wantContain)
		})
	}
}
