package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := New()
	m.Admission(true, "none")
	m.Admission(false, "ip")
	m.Admission(false, "ip")
	m.Swept(3)
	m.Swept(0)
	m.Transition("submitted", "validated")
	m.Failure("confirm", "TOKEN_NOT_FOUND")
	m.Notice("mission.created", errors.New("down"))
	m.Relayed("request.submitted", nil)

	require.Equal(t, 1.0, testutil.ToFloat64(m.admissions.WithLabelValues("admitted", "none")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.admissions.WithLabelValues("denied", "ip")))
	require.Equal(t, 3.0, testutil.ToFloat64(m.swept))
	require.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("submitted", "validated")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("confirm", "TOKEN_NOT_FOUND")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.notices.WithLabelValues("mission.created", "failed")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.relayed.WithLabelValues("request.submitted", "delivered")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.Admission(true, "none")
	m.Swept(1)
	m.Transition("a", "b")
	m.Failure("op", "code")
	m.Notice("t", nil)
	m.Relayed("t", nil)
}
