package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New()

	m.Observe("login", OutcomeOK, 10*time.Millisecond)
	m.Observe("login", OutcomeUnauthorized, time.Millisecond)
	m.Observe("login", OutcomeUnauthorized, time.Millisecond)

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	var observed uint64
	for _, f := range families {
		switch f.GetName() {
		case "palace_auth_requests_total":
			for _, metric := range f.GetMetric() {
				for _, l := range metric.GetLabel() {
					if l.GetName() == "outcome" {
						counts[l.GetValue()] = metric.GetCounter().GetValue()
					}
				}
			}
		case "palace_auth_request_duration_seconds":
			for _, metric := range f.GetMetric() {
				observed += metric.GetHistogram().GetSampleCount()
			}
		}
	}

	assert.Equal(t, 1.0, counts[OutcomeOK])
	assert.Equal(t, 2.0, counts[OutcomeUnauthorized])
	assert.Equal(t, uint64(3), observed)
}

func TestObserve_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.Observe("login", OutcomeOK, time.Second) })
}

func TestHandler(t *testing.T) {
	m := New()
	m.Observe("signup", OutcomeConflict, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `palace_auth_requests_total{op="signup",outcome="conflict"} 1`)
	assert.Contains(t, string(body), "palace_auth_request_duration_seconds")
}
