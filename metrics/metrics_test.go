package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/finance-calculators/metrics"
)

func TestInstrument_PathLabelsStayBounded(t *testing.T) {
	// GIVEN: an instrumented router with one known route
	r := chi.NewRouter()
	r.Use(metrics.Instrument)
	r.Get("/api/hello", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// WHEN: a known route and two arbitrary scanner-style paths are hit
	for _, path := range []string{"/api/hello", "/wp-admin/setup.php", "/probe/12345"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	// THEN: labels carry route patterns, and every unmatched path
	// shares a single bucket instead of minting new series
	paths := requestPathLabels(t)
	assert.True(t, paths["/api/hello"])
	assert.True(t, paths["other"])
	assert.False(t, paths["/wp-admin/setup.php"])
	assert.False(t, paths["/probe/12345"])
}

// requestPathLabels gathers the registry and collects every "path"
// label value recorded on the HTTP request counter.
func requestPathLabels(t *testing.T) map[string]bool {
	t.Helper()

	families, err := metrics.Registry.Gather()
	require.NoError(t, err)

	paths := make(map[string]bool)
	for _, mf := range families {
		if mf.GetName() != "finance_calculators_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "path" {
					paths[label.GetValue()] = true
				}
			}
		}
	}
	return paths
}
