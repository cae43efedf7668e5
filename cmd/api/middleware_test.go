package main

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RecoverPanic(t *testing.T) {
	app := newTestApplication(t)
	h := app.recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr, resp := send(t, h, http.MethodGet, "/books", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "close", rr.Header().Get("Connection"))
	assert.Equal(t, "fail", resp.Status)
	assert.Equal(t, "the server encountered a problem and could not process your request", resp.Message)
}

func Test_RecoverPanic_LogsStack(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApplication(t)
	app.logger = slog.New(slog.NewTextHandler(&buf, nil))
	h := app.recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	send(t, h, http.MethodGet, "/books", "")

	out := buf.String()
	assert.Contains(t, out, `msg="handler panicked"`)
	assert.Contains(t, out, "stack=")
	assert.Contains(t, out, "panic: boom")
}

func Test_EnableCORS_AllowsAnyOrigin(t *testing.T) {
	app := newTestApplication(t)
	h := app.routes()

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Origin", "http://example.com")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func Test_EnableCORS_AnswersPreflight(t *testing.T) {
	app := newTestApplication(t)
	h := app.routes()

	req := httptest.NewRequest(http.MethodOptions, "/books/abc", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}

func Test_EnableCORS_RestrictedOrigins(t *testing.T) {
	app := newTestApplication(t)
	app.config.cors.trustedOrigins = []string{"https://shelf.example"}
	h := app.routes()

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Origin", "http://evil.example")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func Test_RateLimit_RejectsAfterBurst(t *testing.T) {
	app := newTestApplication(t)
	app.limiter = newClientLimiter(0.001, 2)
	h := app.routes()

	for i := 0; i < 2; i++ {
		rr, _ := send(t, h, http.MethodGet, "/books", "")
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr, resp := send(t, h, http.MethodGet, "/books", "")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "rate limit exceeded", resp.Message)
}

func Test_RateLimit_DisabledPassesThrough(t *testing.T) {
	app := newTestApplication(t)
	require.Nil(t, app.limiter)
	h := app.routes()

	for i := 0; i < 5; i++ {
		rr, _ := send(t, h, http.MethodGet, "/books", "")
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}

func Test_LogRequest_WritesOneRecordPerRequest(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApplication(t)
	app.config.accessLog = true
	app.logger = slog.New(slog.NewTextHandler(&buf, nil))
	h := app.routes()

	send(t, h, http.MethodGet, "/books/missing", "")

	out := buf.String()
	assert.Contains(t, out, "msg=request")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "uri=/books/missing")
	assert.Contains(t, out, "status=404")
}
