package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/TessVincent/prismhealth/models"
)

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuth()
	m.records.EXPECT().GetHealthRecord(gomock.Any(), testOwner, uint64(42)).Return(models.HealthRecord{ID: 42}, nil)

	rr := serve(h, http.MethodGet, "/api/v1/records/health/42", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	metrics := serve(h, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, metrics.Code)

	body := metrics.Body.String()
	assert.Contains(t, body, `prismhealth_http_requests_total{method="GET",route="/api/v1/records/{kind}/{id}",status="200"} 1`)
	assert.NotContains(t, body, "/records/health/42")
	assert.Contains(t, body, "prismhealth_http_in_flight_requests")
}

func TestWithMetrics_Unmatched(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	body := serve(h, http.MethodGet, "/metrics", nil).Body.String()
	assert.Contains(t, body, `route="unmatched",status="404"`)
}
