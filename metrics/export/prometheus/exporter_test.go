package prometheus

import (
	"net/http/httptest"
	"strings"
	"testing"

	authclient "github.com/hamzafarrukh73/authclient"
)

type fakeSource struct {
	snapshot authclient.MetricsSnapshot
	dropped  uint64
}

func (f *fakeSource) MetricsSnapshot() authclient.MetricsSnapshot {
	return f.snapshot
}

func (f *fakeSource) NotificationsDropped() uint64 {
	return f.dropped
}

func TestRenderIncludesCountersAndDropped(t *testing.T) {
	src := &fakeSource{
		snapshot: authclient.MetricsSnapshot{
			Counters: map[authclient.MetricID]uint64{
				authclient.MetricLoginSuccess:   5,
				authclient.MetricRefreshFailure: 2,
			},
		},
		dropped: 3,
	}

	out := NewPrometheusExporterFromSource(src).Render()
	for _, want := range []string{
		"authclient_login_success_total 5",
		"authclient_refresh_failure_total 2",
		"authclient_notifications_dropped_total 3",
		"# TYPE authclient_login_success_total counter",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEmptyWhenIdle(t *testing.T) {
	src := &fakeSource{snapshot: authclient.MetricsSnapshot{Counters: map[authclient.MetricID]uint64{}}}
	if out := NewPrometheusExporterFromSource(src).Render(); out != "" {
		t.Fatalf("expected empty render, got %q", out)
	}
}

func TestHandlerServesTextFormat(t *testing.T) {
	src := &fakeSource{
		snapshot: authclient.MetricsSnapshot{
			Counters: map[authclient.MetricID]uint64{
				authclient.MetricLogout: 1,
			},
		},
	}

	rec := httptest.NewRecorder()
	NewPrometheusExporterFromSource(src).Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "authclient_logout_total 1") {
		t.Fatalf("body = %q", rec.Body.String())
	}
}
