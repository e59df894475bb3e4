package healthcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type staticChecker struct {
	status  Status
	message string
}

func (c staticChecker) Check(ctx context.Context) Check {
	return Check{Status: c.status, Message: c.message, LastChecked: time.Now()}
}

func TestCheckAllHealthy(t *testing.T) {
	h := New("1.0.0", zaptest.NewLogger(t))
	h.Register("a", staticChecker{status: StatusHealthy})
	h.Register("b", staticChecker{status: StatusHealthy})

	resp := h.Check(context.Background())

	assert.Equal(t, StatusHealthy, resp.Status)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Len(t, resp.Checks, 2)
}

func TestCheckUnhealthyDominates(t *testing.T) {
	h := New("1.0.0", zaptest.NewLogger(t))
	h.Register("ok", staticChecker{status: StatusHealthy})
	h.Register("bad", staticChecker{status: StatusUnhealthy, message: "down"})
	h.Register("slow", staticChecker{status: StatusDegraded})

	resp := h.Check(context.Background())

	assert.Equal(t, StatusUnhealthy, resp.Status)
}

func TestCheckDegradedWithoutUnhealthy(t *testing.T) {
	h := New("1.0.0", zaptest.NewLogger(t))
	h.Register("ok", staticChecker{status: StatusHealthy})
	h.Register("slow", staticChecker{status: StatusDegraded})

	resp := h.Check(context.Background())

	assert.Equal(t, StatusDegraded, resp.Status)
}

func TestCheckResultIsCached(t *testing.T) {
	h := New("1.0.0", zaptest.NewLogger(t))
	h.Register("a", staticChecker{status: StatusHealthy})

	first := h.Check(context.Background())

	h.Register("b", staticChecker{status: StatusUnhealthy})
	second := h.Check(context.Background())

	assert.Equal(t, first.Timestamp, second.Timestamp)
	assert.Equal(t, StatusHealthy, second.Status)
}

func TestCheckCacheExpiry(t *testing.T) {
	h := New("1.0.0", zaptest.NewLogger(t))
	h.SetCacheTTL(time.Nanosecond)
	h.Register("a", staticChecker{status: StatusHealthy})

	first := h.Check(context.Background())
	time.Sleep(time.Millisecond)

	h.Register("b", staticChecker{status: StatusUnhealthy})
	second := h.Check(context.Background())

	assert.NotEqual(t, first.Status, second.Status)
	assert.Equal(t, StatusUnhealthy, second.Status)
}

func TestHandlerStatusCodes(t *testing.T) {
	h := New("1.0.0", zaptest.NewLogger(t))
	h.Register("bad", staticChecker{status: StatusUnhealthy})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Handler()(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "unhealthy")
}

func TestReadinessNotReadyWhenDegraded(t *testing.T) {
	h := New("1.0.0", zaptest.NewLogger(t))
	h.Register("slow", staticChecker{status: StatusDegraded})

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	h.ReadinessHandler()(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLivenessAlwaysOK(t *testing.T) {
	h := New("1.0.0", zaptest.NewLogger(t))

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	h.LivenessHandler()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
