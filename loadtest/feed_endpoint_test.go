// ABOUTME: Load tests for the /feed endpoint
// ABOUTME: Drives the full stack concurrently against a local upstream feed

package loadtest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"essential-feed-api/api"
	"essential-feed-api/api/dto/responses"
	"essential-feed-api/api/handlers"
	"essential-feed-api/core/feed"
	stdhttp "essential-feed-api/infrastructure/http/standard"
	"github.com/google/uuid"
)

// LoadTestMetrics summarizes one run
type LoadTestMetrics struct {
	TotalRequests  int64
	SuccessfulReqs int64
	FailedReqs     int64
	TotalDuration  time.Duration
	MinLatency     time.Duration
	MaxLatency     time.Duration
	AvgLatency     time.Duration
	P95Latency     time.Duration
	RequestsPerSec float64
}

func upstreamFeed(t *testing.T, items int, delay time.Duration) (*httptest.Server, *int64) {
	t.Helper()

	records := make([]map[string]string, 0, items)
	for i := 0; i < items; i++ {
		records = append(records, map[string]string{
			"id":    uuid.NewString(),
			"image": "https://images.example.com/" + uuid.NewString() + ".jpg",
		})
	}
	body, err := json.Marshal(map[string]interface{}{"items": records})
	if err != nil {
		t.Fatalf("failed to build feed: %v", err)
	}

	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		if delay > 0 {
			time.Sleep(delay)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}))
	t.Cleanup(server.Close)

	return server, &hits
}

func TestFeedEndpoint_100ConcurrentClients(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping load test in short mode")
	}

	upstream, hits := upstreamFeed(t, 8, 5*time.Millisecond)
	loader := feed.NewRemoteFeedLoader(upstream.URL, stdhttp.NewStandardHTTPClient(10*time.Second))

	apiInstance, router := api.NewAPI()
	handlers.NewFeedHandler(loader, loader.URL(), nil, nil).RegisterRoutes(apiInstance)

	server := httptest.NewServer(router)
	defer server.Close()

	concurrency := 100
	requestsPerWorker := 5
	totalRequests := concurrency * requestsPerWorker

	var (
		successCount int64
		failCount    int64
		latencies    []time.Duration
		mu           sync.Mutex
		wg           sync.WaitGroup
	)

	wg.Add(concurrency)
	startTime := time.Now()

	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()
			client := &http.Client{Timeout: 30 * time.Second}

			for j := 0; j < requestsPerWorker; j++ {
				reqStart := time.Now()
				resp, err := client.Get(server.URL + "/feed")
				latency := time.Since(reqStart)

				mu.Lock()
				latencies = append(latencies, latency)
				mu.Unlock()

				if err != nil {
					atomic.AddInt64(&failCount, 1)
					continue
				}

				var body responses.FeedResponse
				decodeErr := json.NewDecoder(resp.Body).Decode(&body)
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()

				if resp.StatusCode == http.StatusOK && decodeErr == nil && body.Count == 8 {
					atomic.AddInt64(&successCount, 1)
				} else {
					atomic.AddInt64(&failCount, 1)
				}
			}
		}()
	}

	wg.Wait()

	metrics := calculateMetrics(latencies, time.Since(startTime), totalRequests)
	metrics.SuccessfulReqs = successCount
	metrics.FailedReqs = failCount

	t.Logf("Load Test Results - 100 Concurrent Clients")
	t.Logf("Total Requests: %d", metrics.TotalRequests)
	t.Logf("Successful: %d", metrics.SuccessfulReqs)
	t.Logf("Failed: %d", metrics.FailedReqs)
	t.Logf("Requests/sec: %.2f", metrics.RequestsPerSec)
	t.Logf("Avg Latency: %v", metrics.AvgLatency)
	t.Logf("P95 Latency: %v", metrics.P95Latency)
	t.Logf("Max Latency: %v", metrics.MaxLatency)

	if metrics.FailedReqs > 0 {
		t.Errorf("Had %d failed requests", metrics.FailedReqs)
	}

	// Every API request is exactly one upstream request
	if got := atomic.LoadInt64(hits); got != int64(totalRequests) {
		t.Errorf("Upstream hits = %d, want %d", got, totalRequests)
	}

	if metrics.P95Latency > 2*time.Second {
		t.Errorf("P95 latency too high: %v", metrics.P95Latency)
	}
}

// calculateMetrics computes performance metrics from latency data
func calculateMetrics(latencies []time.Duration, totalDuration time.Duration, totalRequests int) LoadTestMetrics {
	if len(latencies) == 0 {
		return LoadTestMetrics{}
	}

	sorted := make([]time.Duration, len(latencies))
	copy(sorted, latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, l := range sorted {
		sum += l
	}

	return LoadTestMetrics{
		TotalRequests:  int64(totalRequests),
		TotalDuration:  totalDuration,
		MinLatency:     sorted[0],
		MaxLatency:     sorted[len(sorted)-1],
		AvgLatency:     sum / time.Duration(len(sorted)),
		P95Latency:     sorted[int(float64(len(sorted)-1)*0.95)],
		RequestsPerSec: float64(totalRequests) / totalDuration.Seconds(),
	}
}
