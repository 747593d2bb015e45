package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "rescueops"

// Metrics holds the service collectors. A nil *Metrics is valid and records
// nothing, so components can be built without a registry.
type Metrics struct {
	Registry *prometheus.Registry

	admissions  *prometheus.CounterVec
	swept       prometheus.Counter
	transitions *prometheus.CounterVec
	failures    *prometheus.CounterVec
	notices     *prometheus.CounterVec
	relayed     *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		admissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "admission",
			Name:      "decisions_total",
			Help:      "Submission admission decisions by result and denied scope.",
		}, []string{"result", "scope"}),
		swept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "admission",
			Name:      "swept_entries_total",
			Help:      "Expired admission windows removed by the sweep.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lifecycle",
			Name:      "transitions_total",
			Help:      "Committed request state transitions.",
		}, []string{"from", "to"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lifecycle",
			Name:      "failures_total",
			Help:      "Rejected lifecycle operations by operation and error code.",
		}, []string{"operation", "code"}),
		notices: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notify",
			Name:      "notices_total",
			Help:      "Notices handed to the notifier by type and result.",
		}, []string{"type", "result"}),
		relayed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notify",
			Name:      "relayed_total",
			Help:      "Queued notices posted to the webhook by type and result.",
		}, []string{"type", "result"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.admissions,
		m.swept,
		m.transitions,
		m.failures,
		m.notices,
		m.relayed,
	)
	return m
}

func (m *Metrics) Admission(admitted bool, scope string) {
	if m == nil {
		return
	}
	result := "denied"
	if admitted {
		result = "admitted"
	}
	m.admissions.WithLabelValues(result, scope).Inc()
}

func (m *Metrics) Swept(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.swept.Add(float64(n))
}

func (m *Metrics) Transition(from, to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) Failure(operation, code string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(operation, code).Inc()
}

func (m *Metrics) Notice(typ string, err error) {
	if m == nil {
		return
	}
	result := "queued"
	if err != nil {
		result = "failed"
	}
	m.notices.WithLabelValues(typ, result).Inc()
}

func (m *Metrics) Relayed(typ string, err error) {
	if m == nil {
		return
	}
	result := "delivered"
	if err != nil {
		result = "dropped"
	}
	m.relayed.WithLabelValues(typ, result).Inc()
}
