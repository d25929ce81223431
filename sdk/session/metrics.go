package session

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts session lifecycle outcomes. A nil *Metrics is valid and
// counts nothing, so instrumentation is strictly opt-in.
type Metrics struct {
	logins    *prometheus.CounterVec
	refreshes *prometheus.CounterVec
}

// NewMetrics registers session lifecycle counters with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assetgrid_session_logins_total",
				Help: "Login attempts by result.",
			},
			[]string{"result"},
		),
		refreshes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assetgrid_session_refreshes_total",
				Help: "Token refresh attempts by result.",
			},
			[]string{"result"},
		),
	}
	reg.MustRegister(m.logins, m.refreshes)
	return m
}

func (m *Metrics) observeLogin(result string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(result).Inc()
}

func (m *Metrics) observeRefresh(result string) {
	if m == nil {
		return
	}
	m.refreshes.WithLabelValues(result).Inc()
}
