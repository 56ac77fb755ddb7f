package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/palintape"
	httpAdapter "github.com/aretw0/palintape/pkg/adapters/http"
	"github.com/aretw0/palintape/pkg/adapters/memory"
	"github.com/aretw0/palintape/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	return httpAdapter.NewHandler(palintape.New(), memory.NewStore())
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestServer_CreateRun(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodPost, "/runs", `{"input":"abba","trace":true}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var record domain.RunRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "abba", record.Input)
	assert.Equal(t, "YES", record.Output)
	assert.Equal(t, domain.VerdictYes, record.Verdict)
	assert.NotEmpty(t, record.Trace)
	assert.Equal(t, uint64(len(record.Trace)), record.Steps)
}

func TestServer_CreateRun_ClientSuppliedID(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodPost, "/runs", `{"input":"ab","id":"my-run"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var record domain.RunRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, "my-run", record.ID)
	assert.Equal(t, domain.VerdictNo, record.Verdict)
	assert.Empty(t, record.Trace, "trace not requested")
}

func TestServer_CreateRun_InvalidInput(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodPost, "/runs", `{"input":"abcba"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid input")
}

func TestServer_CreateRun_BadBody(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodPost, "/runs", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_RunLifecycle(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodPost, "/runs", `{"input":"aabaa","id":"lifecycle","trace":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Get
	rec = doJSON(t, handler, http.MethodGet, "/runs/lifecycle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var record domain.RunRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, domain.VerdictYes, record.Verdict)

	// Trace
	rec = doJSON(t, handler, http.MethodGet, "/runs/lifecycle/trace", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var traceResp struct {
		ID    string              `json:"id"`
		Trace []domain.StepRecord `json:"trace"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &traceResp))
	assert.Equal(t, "lifecycle", traceResp.ID)
	assert.NotEmpty(t, traceResp.Trace)
	assert.Equal(t, domain.StateQ0, traceResp.Trace[0].StateBefore)

	// List
	rec = doJSON(t, handler, http.MethodGet, "/runs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lifecycle")

	// Delete
	rec = doJSON(t, handler, http.MethodDelete, "/runs/lifecycle", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/runs/lifecycle", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_GetRun_NotFound(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodGet, "/runs/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_GetMachine(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodGet, "/machine", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Alphabet []string           `json:"alphabet"`
		Blank    string             `json:"blank"`
		Rules    []domain.TableEntry `json:"rules"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"a", "b"}, resp.Alphabet)
	assert.Equal(t, "B", resp.Blank)
	assert.NotEmpty(t, resp.Rules)
}

func TestServer_HealthAndInfo(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")

	rec = doJSON(t, handler, http.MethodGet, "/info", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "palintape-http")
}

func TestServer_MetricsMounted(t *testing.T) {
	reg := prometheus.NewRegistry()
	handler := httpAdapter.NewHandler(palintape.New(), memory.NewStore(),
		httpAdapter.WithMetricsRegistry(reg))

	rec := doJSON(t, handler, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStreamManager_BroadcastAndDrop(t *testing.T) {
	sm := httpAdapter.NewStreamManager()

	ch, cancel := sm.Subscribe("run-1")
	defer cancel()

	sm.Broadcast("run-1", httpAdapter.Event{Name: "step", Data: `{"step":1}`})
	sm.Broadcast("run-2", httpAdapter.Event{Name: "step", Data: `{"step":1}`})

	select {
	case ev := <-ch:
		assert.Equal(t, "step", ev.Name)
	default:
		t.Fatal("expected a buffered event")
	}

	select {
	case <-ch:
		t.Fatal("run-2 event must not reach run-1 subscriber")
	default:
	}
}

func TestStreamManager_CancelClosesChannel(t *testing.T) {
	sm := httpAdapter.NewStreamManager()

	ch, cancel := sm.Subscribe("run-1")
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// Broadcasting after cancel must not panic.
	sm.Broadcast("run-1", httpAdapter.Event{Name: "step", Data: "{}"})
}
