package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"route-resolver-service/internal/adapters/routeapi"
	"route-resolver-service/internal/domain"
	"route-resolver-service/internal/ports"
	"route-resolver-service/internal/services"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestResolver(t *testing.T, responses map[string]routeapi.MockResponse) *services.RouteResolver {
	t.Helper()
	return newTestResolverWithLog(t, responses, nil)
}

func newTestResolverWithLog(t *testing.T, responses map[string]routeapi.MockResponse, history ports.ResolutionLog) *services.RouteResolver {
	t.Helper()

	endpoints, err := services.NewEndpointResolver([]domain.EndpointTemplate{
		{Name: "primary", URL: "http://localhost:8082/api/ruta"},
		{Name: "secondary", URL: "/api2/ruta"},
	})
	require.NoError(t, err)

	res, err := services.NewRouteResolver(endpoints, routeapi.NewMockFetcher(responses), history, zap.NewNop())
	require.NoError(t, err)
	return res
}

func TestRouterHealth(t *testing.T) {
	h := NewRouter(Dependencies{Resolver: newTestResolver(t, nil)})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouterResolveFallsBack(t *testing.T) {
	h := NewRouter(Dependencies{Resolver: newTestResolver(t, map[string]routeapi.MockResponse{
		"primary":   {Err: &domain.StatusError{Code: http.StatusInternalServerError}},
		"secondary": {Body: "Duración: 3 horas y 10 minutos"},
	})})

	req := httptest.NewRequest(http.MethodGet, "/routes/resolve?origen=Quito&destino=Cuenca", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "3 horas y 10 minutos", body["duration"])
	assert.Equal(t, "secondary", body["endpoint"])
	assert.Nil(t, body["map_link"])
}

func TestRouterResolveAllFail(t *testing.T) {
	h := NewRouter(Dependencies{Resolver: newTestResolver(t, map[string]routeapi.MockResponse{
		"primary":   {Err: &domain.StatusError{Code: http.StatusInternalServerError}},
		"secondary": {Err: &domain.StatusError{Code: http.StatusNotFound}},
	})})

	req := httptest.NewRequest(http.MethodGet, "/routes/resolve?origen=Quito&destino=Cuenca", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), `"error_kind":"not_found"`)
}

func TestRouterHistoryNotMountedWithoutLog(t *testing.T) {
	h := NewRouter(Dependencies{Resolver: newTestResolver(t, nil)})

	req := httptest.NewRequest(http.MethodGet, "/routes/history", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := NewRouter(Dependencies{Resolver: newTestResolver(t, nil), Logger: zap.New(core)})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc")
	h.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "abc", fields["req_id"])
	assert.Equal(t, "/health", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestRouterCORS(t *testing.T) {
	h := NewRouter(Dependencies{
		Resolver:       newTestResolver(t, nil),
		AllowedOrigins: []string{"http://localhost:3000"},
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://elsewhere.example.com")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

type recordingLog struct {
	mu      sync.Mutex
	records []domain.ResolutionRecord
}

func (l *recordingLog) Record(ctx context.Context, rec domain.ResolutionRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
	return nil
}

func (l *recordingLog) Recent(ctx context.Context, limit int) ([]domain.ResolutionRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.ResolutionRecord(nil), l.records...), nil
}

func TestRouterRecordsMissingAndBlankInputAlike(t *testing.T) {
	history := &recordingLog{}
	h := NewRouter(Dependencies{
		Resolver: newTestResolverWithLog(t, nil, history),
		History:  history,
	})

	for _, target := range []string{
		"/routes/resolve?origen=Quito",
		"/routes/resolve?origen=Quito&destino=%20%20",
	} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), `"error_kind":"invalid_input"`, target)
	}

	require.Len(t, history.records, 2)
	for _, rec := range history.records {
		assert.Equal(t, string(domain.KindInvalidInput), rec.Outcome)
		assert.Equal(t, "Quito", rec.Origin)
	}
}
