package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aidin1998/walletapi/pkg/models"
	"github.com/Aidin1998/walletapi/testutil"
)

// Handlers share no mutable state, so concurrent callers must each get
// their own id back.
func TestConcurrentRequests(t *testing.T) {
	router := setupRouter(t)

	const workers = 16
	const perWorker = 50

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		latencies []time.Duration
		failures  []string
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := int32(worker*perWorker + i)
				start := time.Now()
				rec := do(router, http.MethodGet, fmt.Sprintf("/users/%d", id), "")
				elapsed := time.Since(start)

				var user models.User
				err := json.Unmarshal(rec.Body.Bytes(), &user)

				mu.Lock()
				latencies = append(latencies, elapsed)
				if rec.Code != http.StatusOK || err != nil || user.ID != id {
					failures = append(failures, fmt.Sprintf("id %d: status %d, got %d", id, rec.Code, user.ID))
				}
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()

	require.Empty(t, failures)
	assert.Len(t, latencies, workers*perWorker)
	t.Logf("p50=%v p95=%v p99=%v",
		testutil.Percentile(latencies, 0.50),
		testutil.Percentile(latencies, 0.95),
		testutil.Percentile(latencies, 0.99))
}

func BenchmarkCreateTransfer(b *testing.B) {
	router := setupRouter(b)
	body := `{"from_wallet_id":1,"to_wallet_id":2,"amount":25.5,"idempotency_key":"bench"}`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec := do(router, http.MethodPost, "/transfers", body)
		if rec.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", rec.Code)
		}
	}
}
