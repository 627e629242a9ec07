package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/tasks-api/internal/api"
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            8080,
			RequestTimeout:  5 * time.Second,
			ShutdownTimeout: 2 * time.Second,
		},
		Log: config.LogConfig{Level: "debug", Format: "json"},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T) *application {
	t.Helper()
	app, err := newApplication(testConfig(), testLogger())
	require.NoError(t, err)
	return app
}

// call sends a request with an optional JSON body through the app router.
func call(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, r))
	return rec
}

func TestNewApplication(t *testing.T) {
	app := newTestApp(t)

	assert.NotNil(t, app.taskStore)
	assert.NotNil(t, app.categoryStore)
	assert.NotNil(t, app.eventEmitter)
	assert.NotNil(t, app.categoryService)
	assert.NotNil(t, app.taskService)

	_, err := newApplication(nil, testLogger())
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestApp(t).setupRouter()

	rec := call(t, router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestCategoryAndTaskFlow(t *testing.T) {
	router := newTestApp(t).setupRouter()

	// Create a category and read it back through the Location header.
	rec := call(t, router, http.MethodPost, "/api/categories", `{"name":"Work","description":"Office"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var work api.CategoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &work))

	rec = call(t, router, http.MethodGet, rec.Header().Get("Location"), "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Names collide regardless of case.
	rec = call(t, router, http.MethodPost, "/api/categories", `{"name":"WORK"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// A task referencing a category that does not exist is rejected.
	rec = call(t, router, http.MethodPost, "/api/tasks",
		`{"title":"Orphan","category_id":"00000000-0000-0000-0000-000000000001"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// An overdue task in the Work category.
	rec = call(t, router, http.MethodPost, "/api/tasks",
		`{"title":"Report","priority":"high","category_id":"`+work.ID.String()+`","due_date":"2000-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var task api.TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
	assert.Equal(t, "pending", task.Status.String())

	assertTaskCount(t, router, "/api/tasks/overdue", 1)
	assertTaskCount(t, router, "/api/tasks/priority/high", 1)
	assertTaskCount(t, router, "/api/tasks/priority/low", 0)
	assertTaskCount(t, router, "/api/tasks/category/"+work.ID.String(), 1)
	assertTaskCount(t, router, "/api/tasks/status/pending", 1)

	rec = call(t, router, http.MethodPatch, "/api/tasks/"+task.ID.String()+"/complete", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assertTaskCount(t, router, "/api/tasks/overdue", 0)
	assertTaskCount(t, router, "/api/tasks/status/completed", 1)

	// Deleting the category leaves the task's reference in place.
	rec = call(t, router, http.MethodDelete, "/api/categories/"+work.ID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assertTaskCount(t, router, "/api/tasks/category/"+work.ID.String(), 1)

	rec = call(t, router, http.MethodDelete, "/api/tasks/"+task.ID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = call(t, router, http.MethodGet, "/api/tasks/"+task.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestErrorResponsesCarryTraceID(t *testing.T) {
	router := newTestApp(t).setupRouter()

	rec := call(t, router, http.MethodGet, "/api/tasks/not-a-uuid", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["trace_id"])
	assert.NotEmpty(t, body["error"])
}

func assertTaskCount(t *testing.T, h http.Handler, path string, want int) {
	t.Helper()
	rec := call(t, h, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rec.Code, "GET %s: %s", path, rec.Body.String())
	var tasks []api.TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	assert.Len(t, tasks, want, "GET %s", path)
}
