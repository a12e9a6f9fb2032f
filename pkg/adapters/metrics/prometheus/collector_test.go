package prometheus

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollectorRecordsRequests(t *testing.T) {
	c := NewCollector()

	c.IncRequestsInFlight()
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requestsInFlight))

	c.DecRequestsInFlight()
	assert.Equal(t, 0.0, testutil.ToFloat64(c.requestsInFlight))

	c.RecordRequest("GET", "/", 200, 5*time.Millisecond)
	c.RecordRequest("GET", "/", 200, 5*time.Millisecond)
	c.RecordRequest("GET", "/missing", 404, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.requestsTotal.WithLabelValues("GET", "/", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requestsTotal.WithLabelValues("GET", "/missing", "404")))
}
