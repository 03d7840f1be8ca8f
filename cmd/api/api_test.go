package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kstyle2198/data-pipeline/internal/logger"
	"github.com/kstyle2198/data-pipeline/internal/store"
)

type stubRunStore struct {
	runs    []store.PipelineRun
	updated map[int64]string
}

func (s *stubRunStore) InsertRun(ctx context.Context, run *store.PipelineRun) error {
	s.runs = append(s.runs, *run)
	return nil
}

func (s *stubRunStore) GetLatest(ctx context.Context, limit int) ([]store.PipelineRun, error) {
	if limit < len(s.runs) {
		return s.runs[:limit], nil
	}
	return s.runs, nil
}

func (s *stubRunStore) UpdateRunStatus(ctx context.Context, id int64, status string) error {
	if s.updated == nil {
		s.updated = map[int64]string{}
	}
	s.updated[id] = status
	return nil
}

func newTestApp(t *testing.T, runs *stubRunStore) *application {
	t.Helper()
	reg := logger.NewRegistry(filepath.Join(t.TempDir(), "logs"))
	lg, err := reg.GetLogger("api-test")
	require.NoError(t, err)

	return &application{
		store:  store.Storage{Runs: runs},
		logger: lg,
	}
}

func TestHealthCheckHandler(t *testing.T) {
	app := newTestApp(t, &stubRunStore{})

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()
	app.mount().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "available", body["status"])
}

func TestGetPipelineRunsReturnsLatest(t *testing.T) {
	runs := &stubRunStore{
		runs: []store.PipelineRun{
			{ID: 2, SourceFile: "sales-0802.csv", Status: store.StatusSuccess, RowCount: 42, ProcessedAt: time.Now()},
			{ID: 1, SourceFile: "sales-0801.csv", Status: store.StatusPartial, RowCount: 17, ProcessedAt: time.Now().Add(-24 * time.Hour)},
		},
	}
	app := newTestApp(t, runs)

	req := httptest.NewRequest(http.MethodGet, "/v1/runs?limit=1", nil)
	rec := httptest.NewRecorder()
	app.mount().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body GetPipelineRunsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "sales-0802.csv", body.Data[0].SourceFile)
}

func TestUpdateRunStatus(t *testing.T) {
	runs := &stubRunStore{}
	app := newTestApp(t, runs)

	req := httptest.NewRequest(http.MethodPatch, "/v1/runs/7/status", strings.NewReader(`{"status":"failure"}`))
	rec := httptest.NewRecorder()
	app.mount().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, store.StatusFailure, runs.updated[7])
}

func TestUpdateRunStatusRejectsUnknownStatus(t *testing.T) {
	app := newTestApp(t, &stubRunStore{})

	req := httptest.NewRequest(http.MethodPatch, "/v1/runs/7/status", strings.NewReader(`{"status":"exploded"}`))
	rec := httptest.NewRecorder()
	app.mount().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateRunStatusRejectsBadID(t *testing.T) {
	app := newTestApp(t, &stubRunStore{})

	req := httptest.NewRequest(http.MethodPatch, "/v1/runs/not-a-number/status", strings.NewReader(`{"status":"success"}`))
	rec := httptest.NewRecorder()
	app.mount().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
