package healthcheck

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MyelinBots/heartbeat-go/repeater"
	"github.com/stretchr/testify/assert"
)

type staticStatus bool

func (s staticStatus) Running() bool { return bool(s) }

func TestHealthCheckHandler(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		code   int
		body   string
	}{
		{"running", staticStatus(true), http.StatusOK, "OK"},
		{"stopped", staticStatus(false), http.StatusServiceUnavailable, "STOPPED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HealthCheckHandler(tt.status)(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestHealthCheckHandler_Repeater(t *testing.T) {
	r := repeater.MustNew(time.Hour, func() error { return nil })
	h := HealthCheckHandler(r)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	r.Start()
	defer r.Stop()
	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
