package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bookshelf/bookshelf-api/internal/data"
)

type testResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func newTestApplication(t *testing.T) *applicationDependencies {
	t.Helper()

	var settings serverConfig
	settings.host = "localhost"
	settings.port = 9000
	settings.environment = "testing"
	settings.cors.trustedOrigins = []string{"*"}

	return &applicationDependencies{
		config: settings,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		models: data.NewModels(),
	}
}

func send(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, testResponse) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	var resp testResponse
	if rr.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	}
	return rr, resp
}

func createBook(t *testing.T, h http.Handler, body string) string {
	t.Helper()

	rr, resp := send(t, h, http.MethodPost, "/books", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var payload struct {
		BookID string `json:"bookId"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &payload))
	require.NotEmpty(t, payload.BookID)
	return payload.BookID
}

func fetchBook(t *testing.T, h http.Handler, id string) data.Book {
	t.Helper()

	rr, resp := send(t, h, http.MethodGet, "/books/"+id, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var payload struct {
		Book data.Book `json:"book"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &payload))
	return payload.Book
}

func listBooks(t *testing.T, h http.Handler, target string) []map[string]any {
	t.Helper()

	rr, resp := send(t, h, http.MethodGet, target, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var payload struct {
		Books []map[string]any `json:"books"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &payload))
	return payload.Books
}
