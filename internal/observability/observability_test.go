package observability

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		" error ": slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for input, expected := range cases {
		assert.Equal(t, expected, ParseLevel(input), input)
	}
}

func TestNewLogger_File(t *testing.T) {
	// Given: a log file path
	path := filepath.Join(t.TempDir(), "app.log")

	// When: a record is logged
	logger := NewLogger("info", path)
	logger.Info("game created", "game_id", "123")

	// Then: it lands in the file as JSON
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"game created"`)
	assert.Contains(t, string(content), `"game_id":"123"`)
}

func TestMetrics_Handler(t *testing.T) {
	// Given: metrics with an extra collector
	extra := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_extra_total", Help: "extra"})
	metrics := NewMetrics(extra)
	extra.Inc()
	metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/ping", "200").Inc()

	// When: the handler is scraped
	recorder := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	// Then: both metrics are exposed
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "test_extra_total 1")
	assert.Contains(t, recorder.Body.String(), `tictactoe_http_requests_total{code="200",method="GET",route="/ping"} 1`)
}

func TestSetupTracing_Disabled(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), "")

	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
