package rates

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type stubProvider struct {
	rates      map[string]float64
	err        error
	configured bool
	calls      int
}

func (s *stubProvider) LatestRates(_ context.Context, _ string) (map[string]float64, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}

	return s.rates, nil
}

func (s *stubProvider) Configured() bool {
	return s.configured
}

func TestRateCache_GetRates(t *testing.T) {
	usdRates := map[string]float64{"NGN": 1500, "EUR": 0.9}

	t.Run("cache_hit_skips_provider", func(t *testing.T) {
		m := NewMockRedisClient(t)
		provider := &stubProvider{configured: true}
		cache := NewRateCache(m, provider, time.Hour)

		cached, _ := json.Marshal(Snapshot{Base: "USD", Rates: usdRates, FetchedAt: time.Now()})
		m.On("Get", mock.Anything, "rates:live:USD").Return(redis.NewStringResult(string(cached), nil))

		got := cache.GetRates(context.Background(), "USD")

		assert.Equal(t, 0, provider.calls)
		if diff := cmp.Diff(usdRates, got.Rates); diff != "" {
			t.Fatalf("GetRates mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("cache_miss_fetches_and_stores", func(t *testing.T) {
		m := NewMockRedisClient(t)
		provider := &stubProvider{configured: true, rates: usdRates}
		cache := NewRateCache(m, provider, time.Hour)

		m.On("Get", mock.Anything, "rates:live:USD").Return(redis.NewStringResult("", redis.Nil))
		m.On("Set", mock.Anything, "rates:live:USD", mock.Anything, time.Hour).
			Return(redis.NewStatusResult("OK", nil))

		got := cache.GetRates(context.Background(), "USD")

		assert.Equal(t, 1, provider.calls)
		assert.Equal(t, "USD", got.Base)
		assert.Equal(t, usdRates, got.Rates)
		assert.False(t, got.Empty())
	})

	t.Run("corrupt_cached_snapshot_falls_through_to_fetch", func(t *testing.T) {
		m := NewMockRedisClient(t)
		provider := &stubProvider{configured: true, rates: usdRates}
		cache := NewRateCache(m, provider, time.Hour)

		m.On("Get", mock.Anything, "rates:live:USD").Return(redis.NewStringResult("not-json", nil))
		m.On("Set", mock.Anything, "rates:live:USD", mock.Anything, time.Hour).
			Return(redis.NewStatusResult("OK", nil))

		got := cache.GetRates(context.Background(), "USD")

		assert.Equal(t, 1, provider.calls)
		assert.Equal(t, usdRates, got.Rates)
	})

	t.Run("provider_failure_yields_empty_snapshot", func(t *testing.T) {
		m := NewMockRedisClient(t)
		provider := &stubProvider{configured: true, err: errors.New("connection refused")}
		cache := NewRateCache(m, provider, time.Hour)

		m.On("Get", mock.Anything, "rates:live:USD").Return(redis.NewStringResult("", redis.Nil))

		got := cache.GetRates(context.Background(), "USD")

		assert.True(t, got.Empty())
		assert.Equal(t, "USD", got.Base)
	})

	t.Run("base_is_normalized", func(t *testing.T) {
		m := NewMockRedisClient(t)
		provider := &stubProvider{configured: true, rates: usdRates}
		cache := NewRateCache(m, provider, time.Hour)

		m.On("Get", mock.Anything, "rates:live:USD").Return(redis.NewStringResult("", redis.Nil))
		m.On("Set", mock.Anything, "rates:live:USD", mock.Anything, time.Hour).
			Return(redis.NewStatusResult("OK", nil))

		got := cache.GetRates(context.Background(), "usd")
		assert.Equal(t, "USD", got.Base)
	})
}

func TestRateCache_CommonRates(t *testing.T) {
	allRates := map[string]float64{
		"NGN": 1500, "EUR": 0.9, "GBP": 0.78, "XAF": 600, "CHF": 0.88,
	}

	t.Run("projects_common_currencies_only", func(t *testing.T) {
		m := NewMockRedisClient(t)
		provider := &stubProvider{configured: true, rates: allRates}
		cache := NewRateCache(m, provider, time.Hour)

		m.On("Get", mock.Anything, "rates:common:USD").Return(redis.NewStringResult("", redis.Nil))
		m.On("Get", mock.Anything, "rates:live:USD").Return(redis.NewStringResult("", redis.Nil))
		m.On("Set", mock.Anything, "rates:live:USD", mock.Anything, time.Hour).
			Return(redis.NewStatusResult("OK", nil))
		m.On("Set", mock.Anything, "rates:common:USD", mock.Anything, time.Hour).
			Return(redis.NewStatusResult("OK", nil))

		got := cache.CommonRates(context.Background(), "USD")

		want := map[string]float64{"NGN": 1500, "EUR": 0.9, "GBP": 0.78}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("CommonRates mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("projection_served_from_its_own_key", func(t *testing.T) {
		m := NewMockRedisClient(t)
		provider := &stubProvider{configured: true}
		cache := NewRateCache(m, provider, time.Hour)

		cached, _ := json.Marshal(map[string]float64{"NGN": 1499})
		m.On("Get", mock.Anything, "rates:common:USD").Return(redis.NewStringResult(string(cached), nil))

		got := cache.CommonRates(context.Background(), "USD")

		assert.Equal(t, 0, provider.calls)
		assert.Equal(t, map[string]float64{"NGN": 1499}, got)
	})
}

func TestRateCache_Rate(t *testing.T) {
	m := NewMockRedisClient(t)
	provider := &stubProvider{configured: true}
	cache := NewRateCache(m, provider, time.Hour)

	cached, _ := json.Marshal(Snapshot{
		Base:      "USD",
		Rates:     map[string]float64{"NGN": 1500},
		FetchedAt: time.Now(),
	})
	m.On("Get", mock.Anything, "rates:live:USD").Return(redis.NewStringResult(string(cached), nil))

	rate, ok := cache.Rate(context.Background(), "USD", "NGN")
	assert.True(t, ok)
	assert.Equal(t, float64(1500), rate)

	_, ok = cache.Rate(context.Background(), "USD", "GBP")
	assert.False(t, ok)
}

func TestRateCache_Clear(t *testing.T) {
	m := NewMockRedisClient(t)
	provider := &stubProvider{configured: true}
	cache := NewRateCache(m, provider, time.Hour)

	m.On("Del", mock.Anything, "rates:live:USD", "rates:common:USD").
		Return(redis.NewIntResult(2, nil))

	err := cache.Clear(context.Background(), "USD")
	assert.NoError(t, err)
}
