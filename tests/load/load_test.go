package load_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jftravel/flight-offer-service/internal/app/dto"
)

type Stats struct {
	LiveResults   int
	StaticResults int
	NotFound      int
	RateLimited   int
}

func (s *Stats) Add(other Stats) {
	s.LiveResults += other.LiveResults
	s.StaticResults += other.StaticResults
	s.NotFound += other.NotFound
	s.RateLimited += other.RateLimited
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func clearRedis(t *testing.T, ctx context.Context, rdb *redis.Client) {
	err := rdb.FlushDB(ctx).Err()
	require.NoError(t, err, "Failed to flush Redis")
}

func searchFlights(ctx context.Context, baseURL, origin, destination, date string) (Stats, error) {
	query := url.Values{}
	query.Set("origin", origin)
	query.Set("destination", destination)
	query.Set("departureDate", date)

	req, err := http.NewRequestWithContext(ctx, "GET",
		baseURL+"/api/v1/flights/search-fallback?"+query.Encode(), nil)
	if err != nil {
		return Stats{}, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Stats{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotFound:
		return Stats{NotFound: 1}, nil
	case http.StatusTooManyRequests:
		return Stats{RateLimited: 1}, nil
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Stats{}, fmt.Errorf("bad status: %d, body: %s", resp.StatusCode, string(body))
	}

	var r dto.OfferSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return Stats{}, err
	}

	stats := Stats{}
	if r.Meta.Source == dto.SourceLive {
		stats.LiveResults = 1
	} else {
		stats.StaticResults = 1
	}

	return stats, nil
}

// TestFlightSearchLoad drives concurrent searches against a running instance.
// Requires a running service and a reachable Redis; skipped in short mode.
func TestFlightSearchLoad(t *testing.T) {
	if testing.Short() {
		t.Skip("load test requires a running instance")
	}

	appHost := getEnv("APP_HOST", "http://localhost:8080")
	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	redisPass := getEnv("REDIS_PASSWORD", "")

	ctx := context.Background()

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	defer rdb.Close()

	departureDate := getEnv("DEPARTURE_DATE", "2026-10-15")

	t.Run("Fallback Path Test", func(t *testing.T) {
		clearRedis(t, ctx, rdb)
		vus := 5
		stats := runScenario(t, ctx, appHost, "LOS", "ABV", departureDate, vus)

		// Every request resolves one way or the other; the static catalog
		// seeds LOS-ABV so nothing should come back 404.
		assert.Equal(t, 0, stats.NotFound)
		assert.Equal(t, vus, stats.LiveResults+stats.StaticResults+stats.RateLimited)
	})

	t.Run("Token Reuse Test", func(t *testing.T) {
		clearRedis(t, ctx, rdb)

		// Prime the token cache.
		_, err := searchFlights(ctx, appHost, "LOS", "ABV", departureDate)
		require.NoError(t, err)

		exists, err := rdb.Exists(ctx, "amadeus:access_token").Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), exists, "access token should be cached after first search")
	})

	t.Run("Rate Limit Test", func(t *testing.T) {
		clearRedis(t, ctx, rdb)

		vus := 20
		stats := runScenario(t, ctx, appHost, "ABV", "KAN", departureDate, vus)

		fmt.Printf("Rate Limit Test Result: Live = %d, Static = %d, Rate Limited = %d\n",
			stats.LiveResults, stats.StaticResults, stats.RateLimited)
		assert.Equal(t, vus, stats.LiveResults+stats.StaticResults+stats.NotFound+stats.RateLimited)
	})
}

// TestLiveRatesLoad verifies the rate snapshot is fetched once and served
// from cache for concurrent readers.
func TestLiveRatesLoad(t *testing.T) {
	if testing.Short() {
		t.Skip("load test requires a running instance")
	}

	appHost := getEnv("APP_HOST", "http://localhost:8080")
	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	redisPass := getEnv("REDIS_PASSWORD", "")

	ctx := context.Background()

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	defer rdb.Close()

	clearRedis(t, ctx, rdb)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			resp, err := http.Get(appHost + "/api/v1/exchange-rates/live?base=USD")
			if err != nil {
				t.Errorf("VU %d failed: %v", id, err)
				return
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusServiceUnavailable {
				t.Errorf("VU %d bad status: %d", id, resp.StatusCode)
			}
		}(i)
	}
	wg.Wait()

	exists, err := rdb.Exists(ctx, "rates:common:USD").Result()
	require.NoError(t, err)
	if exists == 1 {
		t.Log("common rates cached after concurrent reads")
	}
}

func runScenario(t *testing.T, ctx context.Context, baseURL, origin, destination, date string, vus int) Stats {
	var wg sync.WaitGroup
	var mu sync.Mutex
	scenarioStats := Stats{}

	for i := 0; i < vus; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			stats, err := searchFlights(ctx, baseURL, origin, destination, date)
			if err != nil {
				t.Errorf("VU %d failed: %v", id, err)
				return
			}
			mu.Lock()
			scenarioStats.Add(stats)
			mu.Unlock()
		}(i)
	}

	wg.Wait()
	return scenarioStats
}
