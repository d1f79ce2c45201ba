package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPercentile(t *testing.T) {
	assert.Zero(t, Percentile(nil, 0.5))

	in := []time.Duration{5, 1, 4, 2, 3}
	assert.Equal(t, time.Duration(1), Percentile(in, 0))
	assert.Equal(t, time.Duration(1), Percentile(in, 0.2))
	assert.Equal(t, time.Duration(2), Percentile(in, 0.21))
	assert.Equal(t, time.Duration(3), Percentile(in, 0.5))
	assert.Equal(t, time.Duration(4), Percentile(in, 0.8))
	assert.Equal(t, time.Duration(5), Percentile(in, 0.99))
	assert.Equal(t, time.Duration(5), Percentile(in, 1))
	assert.Equal(t, time.Duration(5), Percentile(in, 1.5))
	assert.Equal(t, []time.Duration{5, 1, 4, 2, 3}, in, "input must not be reordered")

	even := []time.Duration{10, 20, 30, 40}
	assert.Equal(t, time.Duration(20), Percentile(even, 0.5))
	assert.Equal(t, time.Duration(40), Percentile(even, 0.95))
}
