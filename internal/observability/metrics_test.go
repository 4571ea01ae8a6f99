package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatherValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		require.NotEmpty(t, mf.GetMetric())
		m := mf.GetMetric()[0]
		if c := m.GetCounter(); c != nil {
			return c.GetValue()
		}
		return m.GetGauge().GetValue()
	}
	require.FailNow(t, "metric not gathered", name)
	return 0
}

func TestNewMetricsForTesting(t *testing.T) {
	m := NewMetricsForTesting()
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(m.DatasetFetches))
	require.NoError(t, reg.Register(m.ActiveSessions))

	m.DatasetFetches.WithLabelValues("power-outages", "success").Inc()
	m.DatasetFetches.WithLabelValues("power-outages", "success").Inc()
	m.ActiveSessions.Set(3)

	assert.Equal(t, 2.0, gatherValue(t, reg, "event_dashboard_dataset_fetches_total"))
	assert.Equal(t, 3.0, gatherValue(t, reg, "event_dashboard_active_sessions"))
}

func TestNewMetricsForTesting_Independent(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()

	regA := prometheus.NewRegistry()
	regB := prometheus.NewRegistry()
	require.NoError(t, regA.Register(a.Selections))
	require.NoError(t, regB.Register(b.Selections))

	a.Selections.WithLabelValues("historic-weather-hazards", "hazard").Inc()
	b.Selections.WithLabelValues("historic-weather-hazards", "hazard").Add(4)

	assert.Equal(t, 1.0, gatherValue(t, regA, "event_dashboard_selections_total"))
	assert.Equal(t, 4.0, gatherValue(t, regB, "event_dashboard_selections_total"))
}
