package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"blog-agent/api/router"
)

func TestHealthRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := router.New()

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestCallbackRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := router.New()

	body := `{"payload": {"text": "Hello, world!"}}`
	request := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "<h2>Blog Post</h2><p>Hello, world!</p>", resp["blog_post"])

	// 트레이스 미들웨어가 응답 헤더에 request id 를 싣는다.
	assert.NotEmpty(t, recorder.Header().Get("X-Request-Id"))
}

func TestCallbackRouteMalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := router.New()

	request := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(`{"payload":`))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCallbackRoutePropagatesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := router.New()

	request := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(`{}`))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("X-Request-Id", "req-123")

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "req-123", recorder.Header().Get("X-Request-Id"))
}
