package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// CommonCurrencies is the projection served by the live rate board.
var CommonCurrencies = []string{
	"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "NGN", "KES", "ZAR", "EGP",
}

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RateProvider is the external rate lookup behind the cache.
type RateProvider interface {
	LatestRates(ctx context.Context, base string) (map[string]float64, error)
	Configured() bool
}

// Snapshot is a full rate table relative to a base currency. Empty Rates
// means the provider could not be reached; callers degrade gracefully.
type Snapshot struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetched_at"`
}

func (s Snapshot) Empty() bool {
	return len(s.Rates) == 0
}

// RateCache is a read-through cache of rate snapshots keyed by base
// currency. Concurrent refreshes of the same key race last-write-wins;
// the provider call is idempotent so no single-flight guard is needed.
type RateCache struct {
	redis    RedisClient
	provider RateProvider
	ttl      time.Duration
}

func NewRateCache(redisClient RedisClient, provider RateProvider, ttl time.Duration) *RateCache {
	return &RateCache{
		redis:    redisClient,
		provider: provider,
		ttl:      ttl,
	}
}

func (c *RateCache) Configured() bool {
	return c.provider.Configured()
}

func (c *RateCache) snapshotKey(base string) string {
	return fmt.Sprintf("rates:live:%s", strings.ToUpper(base))
}

func (c *RateCache) commonKey(base string) string {
	return fmt.Sprintf("rates:common:%s", strings.ToUpper(base))
}

// GetRates returns the cached snapshot for base, fetching from the provider
// on a miss. Provider failures yield an empty snapshot, never an error.
func (c *RateCache) GetRates(ctx context.Context, base string) Snapshot {
	base = strings.ToUpper(base)
	key := c.snapshotKey(base)

	if data, err := c.redis.Get(ctx, key).Bytes(); err == nil {
		var snapshot Snapshot

		uerr := json.Unmarshal(data, &snapshot)
		if uerr == nil {
			return snapshot
		}

		slog.WarnContext(ctx, "discarding unreadable rate snapshot",
			slog.String("base", base), slog.String("error", uerr.Error()))
	}

	fetched, err := c.provider.LatestRates(ctx, base)
	if err != nil {
		slog.WarnContext(ctx, "failed to fetch live rates",
			slog.String("base", base), slog.String("error", err.Error()))

		return Snapshot{Base: base}
	}

	snapshot := Snapshot{
		Base:      base,
		Rates:     fetched,
		FetchedAt: time.Now(),
	}

	data, err := json.Marshal(snapshot)
	if err == nil {
		if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
			slog.WarnContext(ctx, "failed to cache rate snapshot",
				slog.String("base", base), slog.String("error", err.Error()))
		}
	}

	return snapshot
}

// CommonRates returns only the common display currencies, cached under its
// own key so the board refresh does not disturb the full snapshot.
func (c *RateCache) CommonRates(ctx context.Context, base string) map[string]float64 {
	base = strings.ToUpper(base)
	key := c.commonKey(base)

	if data, err := c.redis.Get(ctx, key).Bytes(); err == nil {
		var cached map[string]float64
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached
		}
	}

	snapshot := c.GetRates(ctx, base)
	if snapshot.Empty() {
		return map[string]float64{}
	}

	common := make(map[string]float64, len(CommonCurrencies))
	for _, currency := range CommonCurrencies {
		if rate, ok := snapshot.Rates[currency]; ok {
			common[currency] = rate
		}
	}

	if data, err := json.Marshal(common); err == nil {
		if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
			slog.WarnContext(ctx, "failed to cache common rates",
				slog.String("base", base), slog.String("error", err.Error()))
		}
	}

	return common
}

// Rate resolves a single from/to rate through the cached snapshot.
func (c *RateCache) Rate(ctx context.Context, from, to string) (float64, bool) {
	snapshot := c.GetRates(ctx, from)

	rate, ok := snapshot.Rates[strings.ToUpper(to)]

	return rate, ok
}

// Clear evicts the snapshot and the derived common-currencies projection.
func (c *RateCache) Clear(ctx context.Context, base string) error {
	if err := c.redis.Del(ctx, c.snapshotKey(base), c.commonKey(base)).Err(); err != nil {
		return fmt.Errorf("failed to clear rate cache: %w", err)
	}

	return nil
}
