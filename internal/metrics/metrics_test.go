package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

func TestRunCounters(t *testing.T) {
	m := New("jumper", nil)

	m.RunStarted()
	m.RunStarted()
	m.RunEnded(core.RunResult{Steps: 12, Success: false})
	m.RunEnded(core.RunResult{Steps: 50, Success: true})
	m.Jumped(1)
	m.Jumped(2)
	m.Jumped(2)

	if got := testutil.ToFloat64(m.RunsStarted); got != 2 {
		t.Errorf("runs started = %v, expected 2", got)
	}
	if got := testutil.ToFloat64(m.RunsEnded.WithLabelValues("fail")); got != 1 {
		t.Errorf("failed runs = %v, expected 1", got)
	}
	if got := testutil.ToFloat64(m.RunsEnded.WithLabelValues("success")); got != 1 {
		t.Errorf("successful runs = %v, expected 1", got)
	}
	if got := testutil.ToFloat64(m.Jumps.WithLabelValues("2")); got != 2 {
		t.Errorf("two-step jumps = %v, expected 2", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.RunStarted()
	m.RunEnded(core.RunResult{Steps: 1})
	m.Jumped(1)
	m.SessionOpened()
	m.SessionClosed()
}

func TestHandlerServesMetrics(t *testing.T) {
	m := New("jumper", nil)
	m.SessionOpened()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "jumper_ssh_sessions 1") {
		t.Errorf("metrics output missing session gauge:\n%s", body)
	}
}
