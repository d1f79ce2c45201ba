package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHTTPRequestsTotal(t *testing.T) {
	counter := HTTPRequestsTotal.WithLabelValues("/users/:id", "GET", "200")
	before := testutil.ToFloat64(counter)

	counter.Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestTransfersEchoed(t *testing.T) {
	before := testutil.ToFloat64(TransfersEchoed)
	TransfersEchoed.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(TransfersEchoed))
}
