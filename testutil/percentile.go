// Package testutil holds helpers shared by the load and concurrency tests.
package testutil

import (
	"math"
	"sort"
	"time"
)

// Percentile returns the p-th percentile (0..1) of the latencies using
// nearest-rank rounding. The input slice is not modified.
func Percentile(latencies []time.Duration, p float64) time.Duration {
	if len(latencies) == 0 {
		return 0
	}
	sorted := make([]time.Duration, len(latencies))
	copy(sorted, latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	idx := int(math.Ceil(float64(len(sorted))*p)) - 1
	idx = max(0, min(idx, len(sorted)-1))
	return sorted[idx]
}
