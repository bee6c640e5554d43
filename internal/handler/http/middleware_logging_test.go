package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeRequest creates a test request carrying a logger that writes to buf,
// the same way withTraceID attaches it.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func decodeLogEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	return entry
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		status    int
		body      string
		wantLevel string
	}{
		{name: "ok", method: http.MethodGet, path: "/api/clients", status: http.StatusOK, body: "[]", wantLevel: "info"},
		{name: "created", method: http.MethodPut, path: "/api/client/new", status: http.StatusCreated, body: "{}", wantLevel: "info"},
		{name: "not found", method: http.MethodGet, path: "/api/client/x", status: http.StatusNotFound, wantLevel: "info"},
		{name: "bad gateway", method: http.MethodPut, path: "/api/client/x", status: http.StatusBadGateway, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			rec := httptest.NewRecorder()
			newTestHandler().withLogging(next).ServeHTTP(rec, makeRequest(tt.method, tt.path, &buf))

			entry := decodeLogEntry(t, &buf)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.path, entry["uri"])
			assert.Equal(t, tt.method, entry["method"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.EqualValues(t, len(tt.body), entry["size"])
			assert.Contains(t, entry, "duration")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestWithLogging_NoStatusWrittenLogs200(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &buf))

	assert.EqualValues(t, http.StatusOK, decodeLogEntry(t, &buf)["status"])
}

func TestWithLogging_AccumulatesSize(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 10)))
		_, _ = w.Write([]byte(strings.Repeat("b", 5)))
	})

	newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &buf))

	assert.EqualValues(t, 15, decodeLogEntry(t, &buf)["size"])
}
